package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/portalkit/portalkit/internal/application/user/dto"
	"github.com/portalkit/portalkit/internal/shared/constants"
	"github.com/portalkit/portalkit/internal/shared/logger"
	"github.com/portalkit/portalkit/internal/shared/utils"
)

type profileService interface {
	Profile(ctx context.Context, userID uint) (*dto.ProfileDTO, error)
	UpdateProfile(ctx context.Context, userID uint, req dto.UpdateProfileRequest) error
	ChangePassword(ctx context.Context, userID uint, req dto.ChangePasswordRequest) error
}

type ProfileHandler struct {
	profiles profileService
	logger   logger.Interface
}

func NewProfileHandler(profiles profileService, logger logger.Interface) *ProfileHandler {
	return &ProfileHandler{
		profiles: profiles,
		logger:   logger,
	}
}

// @Summary Get the signed-in user's profile
// @Tags Profile
// @Produce json
// @Success 200 {object} utils.APIResponse{data=dto.ProfileDTO}
// @Failure 401 {object} utils.APIResponse
// @Router /api/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := h.profiles.Profile(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", profile)
}

// @Summary Update the signed-in user's profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.profiles.UpdateProfile(c.Request.Context(), userID, req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CodeResponse(c, http.StatusOK, constants.MsgProfileUpdated, nil)
}

// @Summary Change the signed-in user's password
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Old and new password"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/change-password [post]
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.profiles.ChangePassword(c.Request.Context(), userID, req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("password changed", "user_id", userID)
	utils.CodeResponse(c, http.StatusOK, constants.MsgPasswordChanged, nil)
}
