// Package resilience wraps calls to external providers in a circuit breaker.
package resilience

import (
	"time"

	"github.com/sony/gobreaker"
)

// BreakerConfig tunes NewCircuitBreaker. Zero fields take the defaults.
type BreakerConfig struct {
	MaxRequests  uint32
	Interval     time.Duration
	OpenTimeout  time.Duration
	MinRequests  uint32
	FailureRatio float64
}

func (c BreakerConfig) withDefaults() BreakerConfig {
	if c.MaxRequests == 0 {
		c.MaxRequests = 3
	}
	if c.Interval == 0 {
		c.Interval = 30 * time.Second
	}
	if c.OpenTimeout == 0 {
		c.OpenTimeout = 10 * time.Second
	}
	if c.MinRequests == 0 {
		c.MinRequests = 5
	}
	if c.FailureRatio == 0 {
		c.FailureRatio = 0.6
	}
	return c
}

// NewCircuitBreaker creates a breaker that opens once at least MinRequests
// were seen in the interval and FailureRatio of them failed.
//
// isSuccessful lets callers count business outcomes (e.g. an address the
// provider could not find) as successes; nil counts every error as a failure.
func NewCircuitBreaker(name string, cfg BreakerConfig, isSuccessful func(err error) bool) *gobreaker.CircuitBreaker {
	cfg = cfg.withDefaults()
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests, // half-open probes
		Interval:    cfg.Interval,    // closed: counters reset
		Timeout:     cfg.OpenTimeout, // open -> half-open
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= cfg.MinRequests && failureRatio >= cfg.FailureRatio
		},
		IsSuccessful: isSuccessful,
	})
}
