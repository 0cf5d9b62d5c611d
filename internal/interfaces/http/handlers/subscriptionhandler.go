package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/portalkit/portalkit/internal/application/subscription/dto"
	"github.com/portalkit/portalkit/internal/shared/logger"
	"github.com/portalkit/portalkit/internal/shared/utils"
)

type subscriptionService interface {
	ListPlans(ctx context.Context) ([]*dto.PlanDTO, error)
	Subscribe(ctx context.Context, userID uint, req dto.SubscribeRequest) (*dto.SubscriptionDTO, error)
	CurrentSubscription(ctx context.Context, userID uint) (*dto.SubscriptionClaim, error)
	History(ctx context.Context, userID uint) ([]*dto.SubscriptionDTO, error)
}

type SubscriptionHandler struct {
	subscriptions subscriptionService
	logger        logger.Interface
}

func NewSubscriptionHandler(subscriptions subscriptionService, log logger.Interface) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptions: subscriptions,
		logger:        log,
	}
}

// @Summary List active plans
// @Description Active plans ordered by price, each with its feature set
// @Tags Plans
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]dto.PlanDTO}
// @Router /api/plans [get]
func (h *SubscriptionHandler) ListPlans(c *gin.Context) {
	plans, err := h.subscriptions.ListPlans(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", plans)
}

// @Summary Subscribe to a plan
// @Description Expires the current subscription and starts a new one in a single transaction
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body dto.SubscribeRequest true "Plan slug and payment reference"
// @Success 201 {object} utils.APIResponse{data=dto.SubscriptionDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/subscribe [post]
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.SubscribeRequest
	if !bindJSON(c, &req) {
		return
	}

	sub, err := h.subscriptions.Subscribe(c.Request.Context(), userID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, sub, "Subscribed")
}

// @Summary Current subscription claim
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} utils.APIResponse{data=dto.SubscriptionClaim}
// @Router /api/subscription [get]
func (h *SubscriptionHandler) Current(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	claim, err := h.subscriptions.CurrentSubscription(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", claim)
}

// @Summary Subscription history, newest first
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]dto.SubscriptionDTO}
// @Router /api/subscription/history [get]
func (h *SubscriptionHandler) History(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	items, err := h.subscriptions.History(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", items)
}
