package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/portalkit/portalkit/internal/application/chat/dto"
	"github.com/portalkit/portalkit/internal/shared/logger"
	"github.com/portalkit/portalkit/internal/shared/utils"
)

type chatService interface {
	ListSessions(ctx context.Context, userID uint) ([]*dto.SessionDTO, error)
	CreateSession(ctx context.Context, userID uint, req dto.CreateSessionRequest) (*dto.SessionDTO, error)
	Messages(ctx context.Context, userID, sessionID uint) ([]*dto.MessageDTO, error)
	DeleteSession(ctx context.Context, userID, sessionID uint) error
	Send(ctx context.Context, userID, sessionID uint, req dto.SendMessageRequest) (*dto.SendMessageResponse, error)
}

// ChatHandler serves the AI chat sessions. Routes are gated on can_use_ai.
type ChatHandler struct {
	chat   chatService
	logger logger.Interface
}

func NewChatHandler(chat chatService, log logger.Interface) *ChatHandler {
	return &ChatHandler{
		chat:   chat,
		logger: log,
	}
}

// @Summary List chat sessions, most recently updated first
// @Tags Chat
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]dto.SessionDTO}
// @Router /api/chat/sessions [get]
func (h *ChatHandler) ListSessions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	items, err := h.chat.ListSessions(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", items)
}

func (h *ChatHandler) CreateSession(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateSessionRequest
	if c.Request.ContentLength > 0 {
		if !bindJSON(c, &req) {
			return
		}
	}

	session, err := h.chat.CreateSession(c.Request.Context(), userID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, session, "Session created")
}

func (h *ChatHandler) Messages(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	sessionID, err := utils.ParseUintParam(c, "id", "session")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items, err := h.chat.Messages(c.Request.Context(), userID, sessionID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", items)
}

func (h *ChatHandler) DeleteSession(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	sessionID, err := utils.ParseUintParam(c, "id", "session")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.chat.DeleteSession(c.Request.Context(), userID, sessionID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// @Summary Send a prompt to the AI assistant
// @Tags Chat
// @Accept json
// @Produce json
// @Param id path int true "Session ID"
// @Param request body dto.SendMessageRequest true "Prompt"
// @Success 200 {object} utils.APIResponse{data=dto.SendMessageResponse}
// @Failure 403 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /api/chat/sessions/{id}/send [post]
func (h *ChatHandler) Send(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	sessionID, err := utils.ParseUintParam(c, "id", "session")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.SendMessageRequest
	if !bindJSON(c, &req) {
		return
	}

	reply, err := h.chat.Send(c.Request.Context(), userID, sessionID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", reply)
}
