package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/portalkit/portalkit/internal/domain/subscription"
	"github.com/portalkit/portalkit/internal/interfaces/http/handlers"
	"github.com/portalkit/portalkit/internal/interfaces/http/middleware"
)

type ChatRouteConfig struct {
	ChatHandler       *handlers.ChatHandler
	AuthMiddleware    *middleware.AuthMiddleware
	FeatureMiddleware *middleware.FeatureMiddleware
}

// SetupChatRoutes mounts the AI chat behind the can_use_ai feature.
func SetupChatRoutes(api *gin.RouterGroup, cfg *ChatRouteConfig) {
	h := cfg.ChatHandler

	chat := api.Group("/chat/sessions")
	chat.Use(
		cfg.AuthMiddleware.RequireAuth(),
		cfg.FeatureMiddleware.RequireFeature(subscription.FeatureCanUseAI),
	)
	{
		chat.GET("", h.ListSessions)
		chat.POST("", h.CreateSession)
		chat.GET("/:id", h.Messages)
		chat.DELETE("/:id", h.DeleteSession)
		chat.POST("/:id/send", h.Send)
	}
}
