// Package middleware carries the gin middlewares shared across routes.
package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"syllabus-sync/pkg/log"
)

const (
	// limiterCacheSize bounds how many client IPs are tracked at once.
	limiterCacheSize = 1024

	// limiterTTL ages out buckets for idle clients.
	limiterTTL = 5 * time.Minute
)

type Middleware struct {
	l          log.Logger
	ratePerMin int
	limiters   *expirable.LRU[string, *rate.Limiter]
}

// New creates the middleware set. ratePerMin <= 0 disables rate limiting.
func New(l log.Logger, ratePerMin int) Middleware {
	return newWithTTL(l, ratePerMin, limiterTTL)
}

func newWithTTL(l log.Logger, ratePerMin int, ttl time.Duration) Middleware {
	return Middleware{
		l:          l,
		ratePerMin: ratePerMin,
		limiters:   expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, ttl),
	}
}
