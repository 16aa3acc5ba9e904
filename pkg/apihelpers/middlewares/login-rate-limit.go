package middlewares

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/acai-prime/store-backend/pkg/ratelimit"
	"github.com/gin-gonic/gin"
)

// LoginRateLimit checks the limiter for the client IP before the login
// handler runs. The handler is expected to call Reset on success.
func LoginRateLimit(limiter *ratelimit.LoginLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientKey := c.ClientIP()
		if clientKey == "" {
			clientKey = "unknown"
		}

		decision := limiter.Check(clientKey)
		if !decision.Allowed {
			slog.Warn("login attempt rate limited", slog.String("clientKey", clientKey), slog.Int("retryAfterMinutes", decision.RetryAfterMinutes))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": fmt.Sprintf("too many login attempts, try again in %d minutes", decision.RetryAfterMinutes),
			})
			return
		}
		c.Next()
	}
}
