package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"syllabus-sync/pkg/response"
)

// RateLimit throttles requests per client IP. Each IP gets its own
// token bucket refilled at the configured per-minute rate, with a burst
// of the full minute allowance.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.ratePerMin <= 0 {
			c.Next()
			return
		}

		ip := c.ClientIP()
		limiter, ok := m.limiters.Get(ip)
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(float64(m.ratePerMin)/60.0), m.ratePerMin)
			m.limiters.Add(ip, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", ip)
			response.TooManyRequests(c)
			return
		}

		c.Next()
	}
}
