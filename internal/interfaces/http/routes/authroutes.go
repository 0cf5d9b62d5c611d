package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/portalkit/portalkit/internal/domain/permission"
	"github.com/portalkit/portalkit/internal/interfaces/http/handlers"
	"github.com/portalkit/portalkit/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler          *handlers.AuthHandler
	PasswordResetHandler *handlers.PasswordResetHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PolicyMiddleware     *middleware.PolicyMiddleware
	RateLimiter          *middleware.RateLimiter
}

// SetupAuthRoutes configures account entry points and the one-time-code
// flows.
func SetupAuthRoutes(api *gin.RouterGroup, cfg *AuthRouteConfig) {
	api.POST("/register", cfg.RateLimiter.Limit(), cfg.AuthHandler.Register)
	api.POST("/login", cfg.RateLimiter.Limit(), cfg.AuthHandler.Login)
	api.POST("/token/refresh", cfg.AuthHandler.Refresh)
	api.POST("/logout", cfg.AuthHandler.Logout)
	api.GET("/check-username", cfg.AuthHandler.CheckUsername)
	api.GET("/check-email", cfg.AuthHandler.CheckEmail)

	reset := api.Group("/password-reset")
	{
		reset.POST("/send-otp", cfg.RateLimiter.Limit(), cfg.PasswordResetHandler.SendOTP)
		reset.POST("/verify-otp", cfg.RateLimiter.Limit(), cfg.PasswordResetHandler.VerifyOTP)
	}

	api.POST("/send-credentials",
		cfg.AuthMiddleware.RequireAuth(),
		cfg.PolicyMiddleware.RequirePolicy(permission.ObjectCredentials, permission.ActionManage),
		cfg.PasswordResetHandler.SendCredentials,
	)
	api.POST("/verify-otp-set-password", cfg.RateLimiter.Limit(), cfg.PasswordResetHandler.SetPassword)
}
