package cooldown

import (
	"time"

	"github.com/osse101/CaseForge_Go/internal/domain"
)

// NextStreak returns the streak after a claim at now. A claim made
// domain.StreakBreakAfter or later after the previous one restarts at 1.
func NextStreak(current int, lastClaim *time.Time, now time.Time) int {
	if lastClaim == nil || current <= 0 {
		return 1
	}
	if now.Sub(*lastClaim) >= domain.StreakBreakAfter {
		return 1
	}
	return current + 1
}

// EffectiveStreak is the streak as shown before the next claim. It reads as
// zero once a day has been skipped.
func EffectiveStreak(current int, lastClaim *time.Time, now time.Time) int {
	if lastClaim == nil || now.Sub(*lastClaim) >= domain.StreakBreakAfter {
		return 0
	}
	return current
}

// StreakDay maps a streak to its 1..7 cell in the weekly calendar
func StreakDay(streak int) int {
	if streak <= 0 {
		return 0
	}
	day := streak % domain.StreakCycleDays
	if day == 0 {
		return domain.StreakCycleDays
	}
	return day
}
