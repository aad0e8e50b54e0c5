package dailylog

import "time"

type TimeProvider = timeProvider

// WithTimeProvider overrides the clock used for file rotation and timestamps.
func WithTimeProvider(tp TimeProvider) Options {
	return func(o *options) {
		o.timeProvider = tp
	}
}

// MockTimeProvider is a settable clock.
type MockTimeProvider struct {
	CurrentTime time.Time
}

// Now returns the configured time.
func (m *MockTimeProvider) Now() time.Time {
	return m.CurrentTime
}
