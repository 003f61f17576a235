package engine

import "time"

// TimeProvider abstracts the frame clock so elapsed time can be driven
// deterministically in tests
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock
// readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// FrameClock samples elapsed real time between frames. The session's phase
// timers are real-time-scaled, not frame-count-scaled, so a slow frame
// advances them by its true duration.
type FrameClock struct {
	provider TimeProvider
	last     time.Time
}

// NewFrameClock creates a frame clock starting at the provider's current time
func NewFrameClock(p TimeProvider) *FrameClock {
	return &FrameClock{provider: p, last: p.Now()}
}

// Tick returns seconds elapsed since the previous Tick (or creation)
func (c *FrameClock) Tick() float64 {
	now := c.provider.Now()
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return dt
}
