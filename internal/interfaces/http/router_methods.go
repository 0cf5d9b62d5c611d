package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/portalkit/portalkit/internal/infrastructure/config"
	"github.com/portalkit/portalkit/internal/infrastructure/metrics"
	"github.com/portalkit/portalkit/internal/interfaces/http/middleware"
	"github.com/portalkit/portalkit/internal/interfaces/http/routes"

	_ "github.com/portalkit/portalkit/docs"
)

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(middleware.APIVersion())
	if cfg.Metrics.Enabled {
		r.engine.Use(middleware.Metrics(r.metrics))
		r.engine.GET(cfg.Metrics.Path, gin.WrapH(metrics.Handler(r.gatherer)))
	}

	r.engine.GET("/health", r.userHandler.HealthCheck)
	r.engine.GET("/version", r.userHandler.Version)
	if cfg.Server.Mode != gin.ReleaseMode {
		r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.engine.Group("/api")
	if !cfg.RateLimit.Enabled {
		r.rateLimiter = nil
	}

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:          r.authHandler,
		PasswordResetHandler: r.passwordResetHandler,
		AuthMiddleware:       r.authMiddleware,
		PolicyMiddleware:     r.policyMiddleware,
		RateLimiter:          r.rateLimiter,
	})

	routes.SetupUserRoutes(api, &routes.UserRouteConfig{
		ProfileHandler:    r.profileHandler,
		UserHandler:       r.userHandler,
		AuthMiddleware:    r.authMiddleware,
		PolicyMiddleware:  r.policyMiddleware,
		FeatureMiddleware: r.featureMiddleware,
	})

	routes.SetupOrganizationRoutes(api, &routes.OrganizationRouteConfig{
		OrganizationHandler: r.organizationHandler,
		AuthMiddleware:      r.authMiddleware,
		PolicyMiddleware:    r.policyMiddleware,
	})

	routes.SetupPermissionRoutes(api, &routes.PermissionRouteConfig{
		PermissionHandler: r.permissionHandler,
		AuthMiddleware:    r.authMiddleware,
		PolicyMiddleware:  r.policyMiddleware,
	})

	routes.SetupSubscriptionRoutes(api, &routes.SubscriptionRouteConfig{
		SubscriptionHandler:  r.subscriptionHandler,
		FeatureMatrixHandler: r.featureMatrixHandler,
		AuthMiddleware:       r.authMiddleware,
		PolicyMiddleware:     r.policyMiddleware,
	})

	routes.SetupAddressRoutes(api, &routes.AddressRouteConfig{
		AddressHandler:   r.addressHandler,
		AuthMiddleware:   r.authMiddleware,
		PolicyMiddleware: r.policyMiddleware,
	})

	routes.SetupChatRoutes(api, &routes.ChatRouteConfig{
		ChatHandler:       r.chatHandler,
		AuthMiddleware:    r.authMiddleware,
		FeatureMiddleware: r.featureMiddleware,
	})

	routes.SetupMessageRoutes(api, r.messageHandler)
}

// StartScheduler starts the background jobs (expired OTP purge).
func (r *Router) StartScheduler() {
	if r.schedulerManager != nil {
		r.schedulerManager.Start()
	}
}

// Shutdown stops background jobs and releases the redis connection.
func (r *Router) Shutdown() {
	if r.schedulerManager != nil {
		if err := r.schedulerManager.Stop(); err != nil {
			r.logger.Errorw("failed to stop scheduler", "error", err)
		}
	}

	if r.redis != nil {
		if err := r.redis.Close(); err != nil {
			r.logger.Errorw("failed to close redis connection", "error", err)
		}
	}
}
