package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/CaseForge_Go/internal/config"
	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/fairness"
	"github.com/osse101/CaseForge_Go/internal/utils"
)

// RandomSources holds the draws for reward generation and upgrade
// resolution. Fair is set only in fair mode, where both share one
// verifiable source.
type RandomSources struct {
	Rewards  utils.RandomSource
	Upgrades utils.RandomSource
	Fair     *fairness.Source

	// fairMaster never leaves the process; each epoch's server seed is
	// derived from it
	fairMaster string
}

// InitializeRandomSources builds the random sources for cfg.RNGMode.
// In fair mode FAIR_SERVER_SEED is a master seed: every start opens a new
// epoch with its own derived server seed, so nonces never repeat under a
// seed that was already in use.
func InitializeRandomSources(cfg *config.Config) (*RandomSources, error) {
	var rs *RandomSources
	switch cfg.RNGMode {
	case config.RNGModeMath:
		rs = &RandomSources{Rewards: utils.MathSource(), Upgrades: utils.MathSource()}

	case config.RNGModeCrypto:
		rs = &RandomSources{Rewards: utils.CryptoSource(), Upgrades: utils.CryptoSource()}

	case config.RNGModeFair:
		master := cfg.FairServerSeed
		if master == "" {
			generated, err := fairness.GenerateSeed()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", ErrMsgFailedGenerateSeed, err)
			}
			master = generated
			slog.Warn(LogMsgGeneratedServerSeed)
		}
		seed, err := newFairEpoch(master)
		if err != nil {
			return nil, err
		}
		src := fairness.NewSource(seed, cfg.FairClientSeed)
		rs = &RandomSources{Rewards: src, Upgrades: src, Fair: src, fairMaster: master}

	default:
		return nil, fmt.Errorf(ErrMsgUnknownRNGMode, cfg.RNGMode)
	}

	attrs := []any{"mode", cfg.RNGMode}
	if rs.Fair != nil {
		attrs = append(attrs, "commitment", rs.Fair.Commitment())
	}
	slog.Info(LogMsgRandomSource, attrs...)
	return rs, nil
}

// RotateFair reveals the active server seed and moves the fair source to a
// new epoch starting at nonce 0
func (rs *RandomSources) RotateFair() (fairness.Reveal, error) {
	if rs.Fair == nil {
		return fairness.Reveal{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgFairModeDisabled)
	}
	seed, err := newFairEpoch(rs.fairMaster)
	if err != nil {
		return fairness.Reveal{}, err
	}
	reveal := rs.Fair.Rotate(seed)
	slog.Info(LogMsgFairSeedRotated,
		"revealed_commitment", reveal.Commitment,
		"draws", reveal.Draws,
		"commitment", reveal.NextCommitment)
	return reveal, nil
}

// newFairEpoch derives the server seed for a fresh random epoch. The epoch
// id is logged so the seed can be re-derived from the master later.
func newFairEpoch(master string) (string, error) {
	epoch, err := fairness.GenerateSeed()
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgFailedGenerateSeed, err)
	}
	seed := fairness.DeriveSeed(master, epoch)
	slog.Info(LogMsgFairEpochStarted, "epoch", epoch, "commitment", fairness.Commitment(seed))
	return seed, nil
}
