package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/modeemi/spacestatus/infrastructure/logger"
	"github.com/modeemi/spacestatus/infrastructure/ratelimiter"
	"go.uber.org/zap"
)

func RateLimiterMiddleware(limiter *ratelimiter.FixedWindowRateLimiter, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		allow, retryAfter := limiter.Allow(c.ClientIP())
		if !allow {
			log.Warn("rate limit exceeded",
				zap.String("ip", c.ClientIP()),
				zap.String("path", c.Request.URL.Path),
			)

			c.Header("Retry-After", fmt.Sprintf("%d", int(retryAfter.Seconds())))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate_limit_exceeded",
				"message":     "Too many requests. Please try again later.",
				"retry_after": int(retryAfter.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
