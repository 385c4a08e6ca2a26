package core

import "time"

// Default trigger periods for the simulation clock.
const (
	DefaultResetEvery = 30 * time.Second
	DefaultInfoEvery  = 5 * time.Second
)

// Clock evaluates the two wall-clock triggers that drive grid resets and
// overlay messages. Both triggers are checked on every tick; pausing the
// simulation does not pause them.
type Clock struct {
	resetEvery time.Duration
	infoEvery  time.Duration
	lastReset  time.Time
	lastInfo   time.Time
}

// NewClock builds a clock with the given trigger periods. Non-positive
// periods fall back to the defaults.
func NewClock(resetEvery, infoEvery time.Duration) *Clock {
	if resetEvery <= 0 {
		resetEvery = DefaultResetEvery
	}
	if infoEvery <= 0 {
		infoEvery = DefaultInfoEvery
	}
	return &Clock{resetEvery: resetEvery, infoEvery: infoEvery}
}

// Tick evaluates both triggers at the given time. The timestamps arm lazily:
// the first call only records now, so neither trigger fires at startup.
func (c *Clock) Tick(now time.Time) (reset, info bool) {
	if c.lastReset.IsZero() {
		c.lastReset = now
		c.lastInfo = now
		return false, false
	}
	if now.Sub(c.lastReset) >= c.resetEvery {
		c.lastReset = now
		reset = true
	}
	if now.Sub(c.lastInfo) >= c.infoEvery {
		c.lastInfo = now
		info = true
	}
	return reset, info
}
