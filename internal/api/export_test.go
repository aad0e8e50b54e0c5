package api

import (
	"time"
)

type TimeProvider = timeProvider

// WithTimeProvider overrides the clock used for the timestamp request parameter.
func WithTimeProvider(tp TimeProvider) Options {
	return func(o *options) {
		o.timeProvider = tp
	}
}

// MockTimeProvider is a fixed clock.
type MockTimeProvider struct {
	CurrentTime int64
}

// Now returns the fixed time.
func (m MockTimeProvider) Now() time.Time {
	return time.Unix(m.CurrentTime, 0)
}
