package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/portalkit/portalkit/internal/application/passwordreset/dto"
	"github.com/portalkit/portalkit/internal/shared/constants"
	"github.com/portalkit/portalkit/internal/shared/logger"
	"github.com/portalkit/portalkit/internal/shared/utils"
)

type passwordResetService interface {
	SendOTP(ctx context.Context, req dto.SendOTPRequest) error
	VerifyOTP(ctx context.Context, req dto.VerifyOTPRequest) error
	SendCredentials(ctx context.Context, req dto.SendCredentialsRequest) error
	SetPassword(ctx context.Context, req dto.SetPasswordRequest) error
}

// PasswordResetHandler serves the one-time-code flows.
type PasswordResetHandler struct {
	resets passwordResetService
	logger logger.Interface
}

func NewPasswordResetHandler(resets passwordResetService, log logger.Interface) *PasswordResetHandler {
	return &PasswordResetHandler{
		resets: resets,
		logger: log,
	}
}

// @Summary Mail a password reset code
// @Tags Password reset
// @Accept json
// @Produce json
// @Param request body dto.SendOTPRequest true "Registered email"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Router /api/password-reset/send-otp [post]
func (h *PasswordResetHandler) SendOTP(c *gin.Context) {
	var req dto.SendOTPRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.resets.SendOTP(c.Request.Context(), req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CodeResponse(c, http.StatusOK, constants.MsgOTPSent, nil)
}

// @Summary Reset the password with a mailed code
// @Tags Password reset
// @Accept json
// @Produce json
// @Param request body dto.VerifyOTPRequest true "Code and new password"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/password-reset/verify-otp [post]
func (h *PasswordResetHandler) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.resets.VerifyOTP(c.Request.Context(), req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CodeResponse(c, http.StatusOK, constants.MsgPasswordReset, nil)
}

// SendCredentials mails a set-password code to an account on behalf of an
// administrator.
func (h *PasswordResetHandler) SendCredentials(c *gin.Context) {
	var req dto.SendCredentialsRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.resets.SendCredentials(c.Request.Context(), req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CodeResponse(c, http.StatusOK, constants.MsgOperationCompleted, nil)
}

func (h *PasswordResetHandler) SetPassword(c *gin.Context) {
	var req dto.SetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.resets.SetPassword(c.Request.Context(), req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CodeResponse(c, http.StatusOK, constants.MsgPasswordSet, nil)
}
