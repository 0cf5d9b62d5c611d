package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/portalkit/portalkit/internal/infrastructure/ratelimit"
	"github.com/portalkit/portalkit/internal/shared/logger"
	"github.com/portalkit/portalkit/internal/shared/utils"
)

// RateLimiter throttles requests per client IP on the shared redis
// limiter, so every instance counts against the same windows.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	config  ratelimit.RateLimitConfig
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.RateLimiter, config ratelimit.RateLimitConfig, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		config:  config,
		logger:  logger,
	}
}

// Limit fails open when redis is unavailable. A nil limiter lets every
// request through.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	if rl == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()

		allowed, err := rl.limiter.Allow(c.Request.Context(), key, rl.config)
		if err != nil {
			rl.logger.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
