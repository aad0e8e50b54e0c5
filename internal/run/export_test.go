package run

import (
	"time"

	"github.com/greenbier/sportsfetch/internal/api"
)

type Sleeper = sleeper

// WithSleeper overrides the inter-call pause implementation.
func WithSleeper(s Sleeper) Options {
	return func(o *options) {
		o.sleeper = s
	}
}

// WithEndpoints overrides the endpoint set, preserving order.
func WithEndpoints(endpoints []api.Endpoint) Options {
	return func(o *options) {
		o.endpoints = endpoints
	}
}

// RecordingSleeper records every requested pause instead of sleeping.
type RecordingSleeper struct {
	Slept []time.Duration
}

// Sleep records d.
func (s *RecordingSleeper) Sleep(d time.Duration) {
	s.Slept = append(s.Slept, d)
}
