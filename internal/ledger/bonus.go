package ledger

import (
	"context"
	"time"

	"github.com/osse101/CaseForge_Go/internal/cooldown"
	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/event"
	"github.com/osse101/CaseForge_Go/internal/logger"
)

// DailyBonusStatus reports whether the bonus can be claimed at now
func (s *service) DailyBonusStatus(ctx context.Context, sessionID string, now time.Time) (*DailyBonusStatus, error) {
	state, err := s.read(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	onCooldown, remaining := cooldown.Check(now, state.LastDailyClaim, s.cooldowns.GetCooldownDuration(domain.ActionDailyBonus))
	if s.cooldowns.DevMode {
		onCooldown, remaining = false, 0
	}
	streak := cooldown.EffectiveStreak(state.DailyStreak, state.LastDailyClaim, now)

	status := &DailyBonusStatus{
		Available:   !onCooldown,
		Remaining:   remaining,
		LastClaimAt: state.LastDailyClaim,
		Streak:      streak,
		StreakDay:   cooldown.StreakDay(streak),
	}
	if onCooldown {
		status.NextClaimAt = s.cooldowns.NextAvailable(domain.ActionDailyBonus, state.LastDailyClaim)
	}
	return status, nil
}

// ClaimDailyBonus grants a random bonus if the cooldown has passed
func (s *service) ClaimDailyBonus(ctx context.Context, sessionID string, now time.Time) (*DailyBonusResult, error) {
	var result DailyBonusResult

	_, err := s.mutate(ctx, sessionID, func(st *domain.SessionState) error {
		if err := s.cooldowns.Enforce(domain.ActionDailyBonus, now, st.LastDailyClaim); err != nil {
			return err
		}

		amount := float64(s.generator.DailyBonusAmount())
		st.Balance += amount
		st.DailyStreak = cooldown.NextStreak(st.DailyStreak, st.LastDailyClaim, now)
		claimed := now
		st.LastDailyClaim = &claimed

		result = DailyBonusResult{
			Amount:      amount,
			Streak:      st.DailyStreak,
			StreakDay:   cooldown.StreakDay(st.DailyStreak),
			Balance:     st.Balance,
			NextClaimAt: now.Add(s.cooldowns.GetCooldownDuration(domain.ActionDailyBonus)),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgDailyBonusClaimed,
		"session_id", sessionID,
		"amount", result.Amount,
		"streak", result.Streak)
	s.publish(ctx, event.DailyBonusClaim, sessionID, event.DailyBonusPayloadV1{
		Amount:     result.Amount,
		Streak:     result.Streak,
		NewBalance: result.Balance,
	})
	return &result, nil
}
