package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/portalkit/portalkit/internal/domain/permission"
	"github.com/portalkit/portalkit/internal/interfaces/http/handlers"
	"github.com/portalkit/portalkit/internal/interfaces/http/middleware"
)

type SubscriptionRouteConfig struct {
	SubscriptionHandler  *handlers.SubscriptionHandler
	FeatureMatrixHandler *handlers.FeatureMatrixHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PolicyMiddleware     *middleware.PolicyMiddleware
}

func SetupSubscriptionRoutes(api *gin.RouterGroup, cfg *SubscriptionRouteConfig) {
	h := cfg.SubscriptionHandler

	api.GET("/plans", h.ListPlans)

	authed := api.Group("")
	authed.Use(cfg.AuthMiddleware.RequireAuth())
	{
		authed.POST("/subscribe", h.Subscribe)
		authed.GET("/subscription", h.Current)
		authed.GET("/subscription/history", h.History)
	}

	matrix := api.Group("/feature-matrix")
	matrix.Use(
		cfg.AuthMiddleware.RequireAuth(),
		cfg.PolicyMiddleware.RequirePolicy(permission.ObjectFeatureMatrix, permission.ActionManage),
	)
	{
		matrix.GET("", cfg.FeatureMatrixHandler.List)
		matrix.PUT("", cfg.FeatureMatrixHandler.Save)
	}
}
