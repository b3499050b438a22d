package polling

import (
	"log/slog"
	"math"
	"sync"
	"time"
)

// Controller decides the badge poll cadence for one session. The fast/slow
// decision is derived from the recorded boost start time on every query -
// there is no stored boolean to expire, so the flag can never drift from
// the actual elapsed time.
//
// A Controller is owned by exactly one session and passed explicitly;
// multiple sessions in the same process do not interfere.
type Controller struct {
	mu         sync.Mutex
	boostStart time.Time // zero value means no purchase recorded yet
	now        func() time.Time
}

// NewController creates a controller with the wall clock
func NewController() *Controller {
	return NewControllerWithClock(time.Now)
}

// NewControllerWithClock creates a controller with an injected clock for tests
func NewControllerWithClock(now func() time.Time) *Controller {
	return &Controller{now: now}
}

// TriggerFastPolling records the current time as the boost start. Repeated
// calls simply reset the start time, extending the boost window.
func (c *Controller) TriggerFastPolling() {
	c.mu.Lock()
	c.boostStart = c.now()
	c.mu.Unlock()

	slog.Debug(LogMsgFastPollingTriggered, "boost_duration", BoostDuration)
}

// IsFastPolling reports whether a purchase boost is currently active
func (c *Controller) IsFastPolling() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isFastPollingLocked()
}

func (c *Controller) isFastPollingLocked() bool {
	if c.boostStart.IsZero() {
		return false
	}
	return c.now().Sub(c.boostStart) < BoostDuration
}

// RemainingFastPollingTime returns the whole seconds left in the current
// boost, rounded up, or 0 when no boost is active.
func (c *Controller) RemainingFastPollingTime() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isFastPollingLocked() {
		return 0
	}

	remaining := BoostDuration - c.now().Sub(c.boostStart)
	return int(math.Ceil(remaining.Seconds()))
}

// Interval returns the poll interval for the current boost state
func (c *Controller) Interval() time.Duration {
	if c.IsFastPolling() {
		return FastInterval
	}
	return SlowInterval
}
