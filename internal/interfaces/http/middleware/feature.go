package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/portalkit/portalkit/internal/shared/logger"
	"github.com/portalkit/portalkit/internal/shared/utils"
)

// FeatureGate answers whether the user's plan grants a boolean feature.
type FeatureGate interface {
	FeatureAllowed(ctx context.Context, userID uint, feature string) (bool, error)
}

type FeatureMiddleware struct {
	gate   FeatureGate
	logger logger.Interface
}

func NewFeatureMiddleware(gate FeatureGate, logger logger.Interface) *FeatureMiddleware {
	return &FeatureMiddleware{
		gate:   gate,
		logger: logger,
	}
}

// RequireFeature must run after RequireAuth.
func (m *FeatureMiddleware) RequireFeature(feature string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		allowed, err := m.gate.FeatureAllowed(c.Request.Context(), userID, feature)
		if err != nil {
			m.logger.Errorw("feature check failed", "error", err, "user_id", userID, "feature", feature)
			utils.ErrorResponse(c, http.StatusInternalServerError, "feature check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Infow("plan lacks required feature", "user_id", userID, "feature", feature)
			utils.ErrorResponse(c, http.StatusForbidden, fmt.Sprintf("feature not available: %s", feature))
			c.Abort()
			return
		}

		c.Next()
	}
}
