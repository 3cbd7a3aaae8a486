// Package simulation runs Monte Carlo checks of the drop table, the upgrade
// resolver and the daily bonus against their advertised distributions.
package simulation

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/logger"
	"github.com/osse101/CaseForge_Go/internal/resolver"
	"github.com/osse101/CaseForge_Go/internal/reward"
	"github.com/osse101/CaseForge_Go/internal/utils"
)

// Params describes one simulation. Each run gets its own source seeded with
// Seed+run so results are reproducible.
type Params struct {
	Draws  int
	Runs   int
	Chance float64
	Seed   uint64
}

// Stats summarizes a sample
type Stats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	P50    float64 `json:"p50"`
	P90    float64 `json:"p90"`
	P99    float64 `json:"p99"`
}

// TierResult compares observed and advertised drop rates for one tier
type TierResult struct {
	Rarity   domain.Rarity `json:"rarity"`
	Count    int           `json:"count"`
	Observed float64       `json:"observed"`
	Expected float64       `json:"expected"`
}

// Report is the outcome of Run
type Report struct {
	Params        Params       `json:"params"`
	Tiers         []TierResult `json:"tiers"`
	WinRate       float64      `json:"win_rate"`
	WinRateByRun  Stats        `json:"win_rate_by_run"`
	ArcViolations int          `json:"arc_violations"`
	DailyBonus    Stats        `json:"daily_bonus"`
}

func (p Params) validate() error {
	if p.Draws <= 0 {
		return fmt.Errorf("%w: "+ErrMsgInvalidDraws, domain.ErrInvalidInput, p.Draws)
	}
	if p.Runs <= 0 {
		return fmt.Errorf("%w: "+ErrMsgInvalidRuns, domain.ErrInvalidInput, p.Runs)
	}
	if math.IsNaN(p.Chance) || p.Chance < 0 || p.Chance > 100 {
		return fmt.Errorf("%w: "+ErrMsgInvalidChance, domain.ErrInvalidInput, p.Chance)
	}
	return nil
}

// Run draws Params.Draws case tiers, upgrade attempts and daily bonuses in
// each of Params.Runs runs. It stops early when ctx is cancelled.
func Run(ctx context.Context, p Params) (*Report, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx)

	var tierCounts [domain.RarityCount]int
	winRates := make([]float64, 0, p.Runs)
	bonuses := make([]float64, 0, p.Draws*p.Runs)
	totalWins, violations := 0, 0

	for run := 0; run < p.Runs; run++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		log.Debug(LogMsgRunStarted, "run", run)

		src := utils.SeededSource(p.Seed + uint64(run))
		gen := reward.NewGenerator(src, nil)
		res := resolver.New(src)

		wins := 0
		for i := 0; i < p.Draws; i++ {
			tier := reward.RollTier(src.Float64())
			idx, _ := tier.Index()
			tierCounts[idx]++

			out := res.Resolve(ctx, p.Chance)
			if out.Won {
				wins++
			}
			if !resolver.Verify(out) {
				violations++
			}

			bonuses = append(bonuses, float64(gen.DailyBonusAmount()))
		}

		totalWins += wins
		winRates = append(winRates, float64(wins)/float64(p.Draws))
	}

	total := p.Draws * p.Runs
	report := &Report{
		Params:        p,
		WinRate:       float64(totalWins) / float64(total),
		WinRateByRun:  calcStats(winRates),
		ArcViolations: violations,
		DailyBonus:    calcStats(bonuses),
	}
	for i, r := range domain.AllRarities() {
		report.Tiers = append(report.Tiers, TierResult{
			Rarity:   r,
			Count:    tierCounts[i],
			Observed: float64(tierCounts[i]) / float64(total),
			Expected: reward.TierProbability(r),
		})
	}

	log.Info(LogMsgRunFinished,
		"draws", total,
		"win_rate", report.WinRate,
		"arc_violations", violations)
	return report, nil
}

// calcStats computes mean, deviation and interpolated percentiles
func calcStats(xs []float64) Stats {
	n := len(xs)
	if n == 0 {
		return Stats{}
	}

	var sum float64
	for _, v := range xs {
		sum += v
	}
	mean := sum / float64(n)

	var acc float64
	for _, v := range xs {
		d := v - mean
		acc += d * d
	}

	cp := append([]float64(nil), xs...)
	sort.Float64s(cp)
	percentile := func(p float64) float64 {
		if n == 1 {
			return cp[0]
		}
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		f := pos - float64(i)
		if i+1 >= n {
			return cp[i]
		}
		return cp[i]*(1-f) + cp[i+1]*f
	}

	return Stats{
		Mean:   mean,
		StdDev: math.Sqrt(acc / float64(n)),
		Min:    cp[0],
		Max:    cp[n-1],
		P50:    percentile(0.50),
		P90:    percentile(0.90),
		P99:    percentile(0.99),
	}
}
