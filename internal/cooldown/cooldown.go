package cooldown

import (
	"errors"
	"fmt"
	"time"

	"github.com/osse101/CaseForge_Go/internal/domain"
)

// ErrOnCooldown is returned when action is still on cooldown
type ErrOnCooldown struct {
	Action    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	hours := int(e.Remaining.Hours())
	minutes := int(e.Remaining.Minutes()) % MinutesPerHour
	seconds := int(e.Remaining.Seconds()) % SecondsPerMinute

	if hours > 0 {
		return fmt.Sprintf(ErrFmtCooldownWithHours, e.Action, hours, minutes, seconds)
	}
	if minutes > 0 {
		return fmt.Sprintf(ErrFmtCooldownWithMinutes, e.Action, minutes, seconds)
	}
	return fmt.Sprintf(ErrFmtCooldownSecondsOnly, e.Action, seconds)
}

// Is allows errors.Is() to match both ErrOnCooldown values and domain.ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	if errors.Is(target, domain.ErrOnCooldown) {
		return true
	}
	_, ok := target.(ErrOnCooldown)
	return ok
}

// Check reports whether an action last performed at lastUsed is still gated
// at now, and for how long. A nil lastUsed means the action was never used.
func Check(now time.Time, lastUsed *time.Time, duration time.Duration) (bool, time.Duration) {
	if lastUsed == nil {
		return false, 0
	}

	elapsed := now.Sub(*lastUsed)
	if elapsed >= duration {
		return false, 0
	}
	return true, duration - elapsed
}

// Enforce returns ErrOnCooldown when the action is still gated
func (c *Config) Enforce(action string, now time.Time, lastUsed *time.Time) error {
	if c.DevMode {
		return nil
	}
	onCooldown, remaining := Check(now, lastUsed, c.GetCooldownDuration(action))
	if onCooldown {
		return ErrOnCooldown{Action: action, Remaining: remaining}
	}
	return nil
}

// NextAvailable returns when the action can next be performed
func (c *Config) NextAvailable(action string, lastUsed *time.Time) *time.Time {
	if lastUsed == nil {
		return nil
	}
	next := lastUsed.Add(c.GetCooldownDuration(action))
	return &next
}
