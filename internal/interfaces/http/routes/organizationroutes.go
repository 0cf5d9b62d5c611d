package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/portalkit/portalkit/internal/domain/permission"
	"github.com/portalkit/portalkit/internal/interfaces/http/handlers"
	"github.com/portalkit/portalkit/internal/interfaces/http/middleware"
)

type OrganizationRouteConfig struct {
	OrganizationHandler *handlers.OrganizationHandler
	AuthMiddleware      *middleware.AuthMiddleware
	PolicyMiddleware    *middleware.PolicyMiddleware
}

// SetupOrganizationRoutes exposes departments and roles. Reads are public so
// the registration form can offer them.
func SetupOrganizationRoutes(api *gin.RouterGroup, cfg *OrganizationRouteConfig) {
	h := cfg.OrganizationHandler
	manage := []gin.HandlerFunc{
		cfg.AuthMiddleware.RequireAuth(),
		cfg.PolicyMiddleware.RequirePolicy(permission.ObjectOrganization, permission.ActionManage),
	}
	toggle := []gin.HandlerFunc{
		cfg.AuthMiddleware.RequireAuth(),
		cfg.PolicyMiddleware.RequirePolicy(permission.ObjectOrgStatus, permission.ActionManage),
	}

	departments := api.Group("/departments")
	{
		departments.GET("", h.ListDepartments)
		departments.GET("/:id", h.GetDepartment)
		departments.POST("", append(manage, h.CreateDepartment)...)
		departments.PUT("/:id", append(manage, h.UpdateDepartment)...)
		departments.PATCH("/:id", append(manage, h.UpdateDepartment)...)
		departments.DELETE("/:id", append(manage, h.DeleteDepartment)...)
		departments.POST("/:id/toggle", append(toggle, h.ToggleDepartment)...)
	}

	roles := api.Group("/roles")
	{
		roles.GET("", h.ListRoles)
		roles.GET("/:id", h.GetRole)
		roles.POST("", append(manage, h.CreateRole)...)
		roles.PUT("/:id", append(manage, h.UpdateRole)...)
		roles.PATCH("/:id", append(manage, h.UpdateRole)...)
		roles.DELETE("/:id", append(manage, h.DeleteRole)...)
		roles.POST("/:id/toggle", append(toggle, h.ToggleRole)...)
	}
}
