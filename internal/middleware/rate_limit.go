package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"mindgarden-backend/pkg/response"
)

// defaultRateLimitPerMin applies when no limit is configured.
const defaultRateLimitPerMin = 60

// rateLimiterCacheSize bounds the per-client limiter cache; the least
// recently seen clients are evicted first.
const rateLimiterCacheSize = 1024

// RateLimit limits requests per client IP using a token bucket.
func (m Middleware) RateLimit() gin.HandlerFunc {
	perMin := m.rateLimitPerMin
	if perMin <= 0 {
		perMin = defaultRateLimitPerMin
	}

	limiters, err := lru.New[string, *rate.Limiter](rateLimiterCacheSize)
	if err != nil {
		// Only fails for a non-positive size.
		panic(err)
	}

	return func(c *gin.Context) {
		ip := c.ClientIP()

		limiter, ok := limiters.Get(ip)
		if !ok {
			limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMin)), perMin)
			limiters.Add(ip, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", ip)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "Too Many Requests",
			})
			return
		}

		c.Next()
	}
}
