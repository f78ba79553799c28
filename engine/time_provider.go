package engine

import "time"

// TimeProvider supplies the wall clock used for drop timestamps, hazard timing and delayed spawns
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider returns the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
