package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/portalkit/portalkit/internal/interfaces/http/handlers"
)

func SetupMessageRoutes(api *gin.RouterGroup, h *handlers.MessageHandler) {
	api.GET("/messages", h.GetMessages)
}
