package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/portalkit/portalkit/internal/shared/constants"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

// quietRoutes are polled by monitors and only logged when they fail.
var quietRoutes = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// Logger writes one line per request. The query string is left out because
// check-email and check-username carry personal data in it.
func Logger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		if status < 400 && quietRoutes[c.Request.URL.Path] {
			return
		}

		args := []any{
			"method", c.Request.Method,
			"route", c.FullPath(),
			"status", status,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
			"body_size", c.Writer.Size(),
		}
		if requestID := c.GetString(constants.ContextKeyRequestID); requestID != "" {
			args = append(args, "request_id", requestID)
		}
		if userID, ok := c.Get(constants.ContextKeyUserID); ok {
			args = append(args, "user_id", userID)
		}
		if len(c.Errors) > 0 {
			args = append(args, "error", c.Errors.String())
		}

		switch {
		case status >= 500:
			log.Errorw("request failed", args...)
		case status >= 400:
			log.Warnw("request rejected", args...)
		default:
			log.Debugw("request served", args...)
		}
	}
}
