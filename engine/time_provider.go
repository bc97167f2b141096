package engine

import "time"

// TimeProvider provides the real system time with monotonic clock readings,
// injected so frame timing is mockable in tests
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider is the production clock
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
