package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/portalkit/portalkit/internal/domain/permission"
	"github.com/portalkit/portalkit/internal/shared/constants"
	"github.com/portalkit/portalkit/internal/shared/logger"
	"github.com/portalkit/portalkit/internal/shared/utils"
)

// PrincipalLoader builds the policy principal of a signed-in user.
type PrincipalLoader interface {
	Principal(ctx context.Context, userID uint) (permission.Principal, error)
}

// PolicyMiddleware guards administrative routes with the casbin route
// policy.
type PolicyMiddleware struct {
	principals PrincipalLoader
	enforcer   permission.PolicyEnforcer
	logger     logger.Interface
}

func NewPolicyMiddleware(principals PrincipalLoader, enforcer permission.PolicyEnforcer, logger logger.Interface) *PolicyMiddleware {
	return &PolicyMiddleware{
		principals: principals,
		enforcer:   enforcer,
		logger:     logger,
	}
}

// RequirePolicy must run after RequireAuth.
func (m *PolicyMiddleware) RequirePolicy(object, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := m.loadPrincipal(c)
		if !ok {
			return
		}

		allowed, err := m.enforcer.Enforce(principal, object, action)
		if err != nil {
			m.logger.Errorw("policy check failed", "error", err, "user_id", principal.UserID, "object", object, "action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("policy denied", "user_id", principal.UserID, "object", object, "action", action)
			utils.ErrorResponse(c, http.StatusForbidden, "You do not have permission to perform this action.")
			c.Abort()
			return
		}

		c.Next()
	}
}

// LoadPrincipal stores the principal without enforcing anything, for routes
// whose handlers decide themselves.
func (m *PolicyMiddleware) LoadPrincipal() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := m.loadPrincipal(c); ok {
			c.Next()
		}
	}
}

// Allowed evaluates the policy for the principal loaded into c. Errors
// count as a denial.
func (m *PolicyMiddleware) Allowed(c *gin.Context, object, action string) bool {
	principal, ok := PrincipalFromContext(c)
	if !ok {
		return false
	}
	allowed, err := m.enforcer.Enforce(principal, object, action)
	if err != nil {
		m.logger.Warnw("policy check failed", "error", err, "user_id", principal.UserID, "object", object)
		return false
	}
	return allowed
}

func (m *PolicyMiddleware) loadPrincipal(c *gin.Context) (permission.Principal, bool) {
	if principal, ok := PrincipalFromContext(c); ok {
		return principal, true
	}

	userID, ok := CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		c.Abort()
		return permission.Principal{}, false
	}

	principal, err := m.principals.Principal(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		c.Abort()
		return permission.Principal{}, false
	}

	c.Set(constants.ContextKeyPrincipal, principal)
	return principal, true
}

func PrincipalFromContext(c *gin.Context) (permission.Principal, bool) {
	v, exists := c.Get(constants.ContextKeyPrincipal)
	if !exists {
		return permission.Principal{}, false
	}
	principal, ok := v.(permission.Principal)
	return principal, ok
}
