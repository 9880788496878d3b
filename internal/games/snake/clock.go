package snake

import "time"

// TickPeriod is the fixed simulation step: ten updates per second.
const TickPeriod = 100 * time.Millisecond

// FrameClock decides when the next simulation update is due.
// It never catches up on missed ticks: a late poll runs one update and
// schedules the next one a full period after the poll.
type FrameClock struct {
	period time.Duration
	next   time.Time
}

// NewFrameClock creates a clock with the given period.
func NewFrameClock(period time.Duration) *FrameClock {
	return &FrameClock{period: period}
}

// Reset makes an update due immediately at now.
func (c *FrameClock) Reset(now time.Time) {
	c.next = now
}

// Due reports whether an update should run at now, and if so schedules
// the next one at now + period.
func (c *FrameClock) Due(now time.Time) bool {
	if now.Before(c.next) {
		return false
	}
	c.next = now.Add(c.period)
	return true
}

// Next returns the time the next update becomes due.
func (c *FrameClock) Next() time.Time {
	return c.next
}

// Period returns the update period.
func (c *FrameClock) Period() time.Duration {
	return c.period
}
