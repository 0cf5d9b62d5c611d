package middleware

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/portalkit/portalkit/internal/infrastructure/auth"
	"github.com/portalkit/portalkit/internal/shared/constants"
	"github.com/portalkit/portalkit/internal/shared/errors"
	"github.com/portalkit/portalkit/internal/shared/logger"
	"github.com/portalkit/portalkit/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth accepts the access token from its cookie or, failing that,
// from a Bearer Authorization header.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetTokenFromCookie(c, constants.CookieAccessToken)

		if token == "" {
			authHeader := c.GetHeader(constants.HeaderAuthorization)
			if authHeader == "" {
				utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
				c.Abort()
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
				c.Abort()
				return
			}

			token = strings.TrimSpace(parts[1])
		}

		claims, err := m.jwtService.Verify(token, auth.TokenTypeAccess)
		if err != nil {
			m.reject(c, err)
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			m.reject(c, err)
			return
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Set(constants.ContextKeyUsername, claims.Username)
		c.Set(constants.ContextKeySessionID, claims.SessionID)

		c.Next()
	}
}

// reject answers 401 with token_expired or token_invalid. Expired tokens are
// routine and stay at debug level.
func (m *AuthMiddleware) reject(c *gin.Context, cause error) {
	var authErr *errors.AuthError
	if stderrors.Is(cause, auth.ErrTokenExpired) {
		authErr = errors.NewTokenExpiredError("access token")
	} else {
		authErr = errors.NewTokenInvalidError("access token")
	}

	if errors.ShouldLogAuthError(authErr) {
		m.logger.Warnw("access token rejected",
			"error", cause,
			"path", c.Request.URL.Path,
			"client_ip", c.ClientIP(),
			"security_event", errors.IsSecurityEvent(authErr),
		)
	} else {
		m.logger.Debugw("access token rejected", "error", cause)
	}

	utils.ErrorResponseWithError(c, authErr)
	c.Abort()
}

// CurrentUserID returns the id stored by RequireAuth.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}
