package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/portalkit/portalkit/internal/shared/constants"
	"github.com/portalkit/portalkit/internal/shared/errors"
	"github.com/portalkit/portalkit/internal/shared/utils"
)

// bindJSON decodes the body into req and answers 400 on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return false
	}
	return true
}

// currentUserID answers 401 when the auth middleware did not run.
func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return 0, false
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return 0, false
	}
	return id, true
}

// PolicyChecker evaluates the route policy for the principal of the request.
type PolicyChecker interface {
	Allowed(c *gin.Context, object, action string) bool
}
