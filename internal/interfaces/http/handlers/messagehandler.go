package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/portalkit/portalkit/internal/application/message/dto"
	"github.com/portalkit/portalkit/internal/shared/utils"
)

type messageCatalog interface {
	Messages(ctx context.Context) *dto.MessagesDTO
}

type MessageHandler struct {
	catalog messageCatalog
}

func NewMessageHandler(catalog messageCatalog) *MessageHandler {
	return &MessageHandler{catalog: catalog}
}

// @Summary Message catalog
// @Description Error, validation and information texts keyed by code
// @Tags Messages
// @Produce json
// @Success 200 {object} utils.APIResponse{data=dto.MessagesDTO}
// @Router /api/messages [get]
func (h *MessageHandler) GetMessages(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.catalog.Messages(c.Request.Context()))
}
