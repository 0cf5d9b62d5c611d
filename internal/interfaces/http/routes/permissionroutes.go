package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/portalkit/portalkit/internal/domain/permission"
	"github.com/portalkit/portalkit/internal/interfaces/http/handlers"
	"github.com/portalkit/portalkit/internal/interfaces/http/middleware"
)

type PermissionRouteConfig struct {
	PermissionHandler *handlers.PermissionHandler
	AuthMiddleware    *middleware.AuthMiddleware
	PolicyMiddleware  *middleware.PolicyMiddleware
}

func SetupPermissionRoutes(api *gin.RouterGroup, cfg *PermissionRouteConfig) {
	h := cfg.PermissionHandler

	api.GET("/permissions/has_permission", cfg.AuthMiddleware.RequireAuth(), h.HasPermission)

	admin := api.Group("")
	admin.Use(
		cfg.AuthMiddleware.RequireAuth(),
		cfg.PolicyMiddleware.RequirePolicy(permission.ObjectPermissions, permission.ActionManage),
	)
	{
		admin.GET("/permissions", h.ListPermissions)
		admin.POST("/permissions", h.CreatePermission)
		admin.GET("/permissions/:id", h.GetPermission)
		admin.PUT("/permissions/:id", h.UpdatePermission)
		admin.PATCH("/permissions/:id", h.UpdatePermission)
		admin.DELETE("/permissions/:id", h.DeletePermission)

		admin.GET("/role-permissions", h.ListRoleGrants)
		admin.POST("/role-permissions", h.SaveRoleGrant)
		admin.DELETE("/role-permissions/:id", h.DeleteRoleGrant)

		admin.GET("/department-permissions", h.ListDepartmentGrants)
		admin.POST("/department-permissions", h.SaveDepartmentGrant)
		admin.DELETE("/department-permissions/:id", h.DeleteDepartmentGrant)

		admin.GET("/user-permissions", h.ListUserOverrides)
		admin.POST("/user-permissions", h.SaveUserOverride)
		admin.DELETE("/user-permissions/:id", h.DeleteUserOverride)
	}
}
