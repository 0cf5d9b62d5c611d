package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/portalkit/portalkit/internal/interfaces/http/handlers"
	"github.com/portalkit/portalkit/internal/interfaces/http/middleware"
)

type AddressRouteConfig struct {
	AddressHandler   *handlers.AddressHandler
	AuthMiddleware   *middleware.AuthMiddleware
	PolicyMiddleware *middleware.PolicyMiddleware
}

func SetupAddressRoutes(api *gin.RouterGroup, cfg *AddressRouteConfig) {
	h := cfg.AddressHandler

	addresses := api.Group("/addresses")
	addresses.Use(cfg.AuthMiddleware.RequireAuth(), cfg.PolicyMiddleware.LoadPrincipal())
	{
		addresses.GET("", h.List)
		addresses.POST("", h.Create)
		addresses.GET("/check", h.Check)
		addresses.GET("/:id", h.Get)
		addresses.PUT("/:id", h.Update)
		addresses.PATCH("/:id", h.Update)
	}
}
