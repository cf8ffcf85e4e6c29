package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type RateLimitConfig struct {
	RPS   float64 `env:"CONTACT_RATE_LIMIT_RPS" envDefault:"0.2"`
	Burst int     `env:"CONTACT_RATE_LIMIT_BURST" envDefault:"3"`
}

// RateLimit applies one token bucket to every request through the route. onLimit renders the
// rejection; nil answers a plain 429.
func RateLimit(cfg RateLimitConfig, onLimit gin.HandlerFunc) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.Header("Retry-After", strconv.Itoa(retryAfter(cfg.RPS)))
			if onLimit != nil {
				onLimit(c)
			} else {
				c.Status(http.StatusTooManyRequests)
			}
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Burst))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))

		c.Next()
	}
}

func retryAfter(rps float64) int {
	if rps <= 0 {
		return 60
	}
	secs := int(1 / rps)
	if secs < 1 {
		return 1
	}
	return secs
}
