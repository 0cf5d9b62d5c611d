package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/portalkit/portalkit/internal/domain/permission"
	"github.com/portalkit/portalkit/internal/domain/subscription"
	"github.com/portalkit/portalkit/internal/interfaces/http/handlers"
	"github.com/portalkit/portalkit/internal/interfaces/http/middleware"
)

// UserRouteConfig holds dependencies for profile and user administration
// routes.
type UserRouteConfig struct {
	ProfileHandler    *handlers.ProfileHandler
	UserHandler       *handlers.UserHandler
	AuthMiddleware    *middleware.AuthMiddleware
	PolicyMiddleware  *middleware.PolicyMiddleware
	FeatureMiddleware *middleware.FeatureMiddleware
}

func SetupUserRoutes(api *gin.RouterGroup, cfg *UserRouteConfig) {
	profile := api.Group("")
	profile.Use(cfg.AuthMiddleware.RequireAuth())
	{
		profile.GET("/profile", cfg.ProfileHandler.GetProfile)
		profile.PUT("/profile",
			cfg.FeatureMiddleware.RequireFeature(subscription.FeatureCanEditProfile),
			cfg.ProfileHandler.UpdateProfile,
		)
		profile.POST("/change-password",
			cfg.FeatureMiddleware.RequireFeature(subscription.FeatureCanChangePassword),
			cfg.ProfileHandler.ChangePassword,
		)
	}

	users := api.Group("/admin/users")
	users.Use(
		cfg.AuthMiddleware.RequireAuth(),
		cfg.PolicyMiddleware.RequirePolicy(permission.ObjectUsers, permission.ActionManage),
	)
	{
		users.GET("", cfg.UserHandler.ListUsers)
		users.POST("", cfg.UserHandler.CreateUser)
		users.GET("/stats", cfg.UserHandler.Stats)
		users.GET("/:id", cfg.UserHandler.GetUser)
		users.PUT("/:id", cfg.UserHandler.UpdateUser)
		users.PATCH("/:id", cfg.UserHandler.UpdateUser)
		users.DELETE("/:id", cfg.UserHandler.DeleteUser)
		users.POST("/:id/toggle", cfg.UserHandler.ToggleUser)
	}
}
