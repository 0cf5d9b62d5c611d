package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/portalkit/portalkit/internal/application/user/dto"
	"github.com/portalkit/portalkit/internal/shared/config"
	"github.com/portalkit/portalkit/internal/shared/constants"
	"github.com/portalkit/portalkit/internal/shared/errors"
	"github.com/portalkit/portalkit/internal/shared/logger"
	"github.com/portalkit/portalkit/internal/shared/utils"
)

type accountService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserDTO, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResult, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type AuthHandler struct {
	accounts     accountService
	cookieConfig config.CookieConfig
	logger       logger.Interface
}

func NewAuthHandler(accounts accountService, cookieConfig config.CookieConfig, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		accounts:     accounts,
		cookieConfig: cookieConfig,
		logger:       logger,
	}
}

type RefreshTokenRequest struct {
	Refresh string `json:"refresh" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// @Summary Register an account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Account details"
// @Success 201 {object} utils.APIResponse{data=dto.UserDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.accounts.Register(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CodeResponse(c, http.StatusCreated, constants.MsgRegistered, created)
}

// @Summary Sign in with username and password
// @Description Sets the access and refresh cookies and returns the account summary with its permissions
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse{data=dto.LoginResponse}
// @Failure 401 {object} utils.APIResponse
// @Router /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.accounts.Login(c.Request.Context(), req)
	if err != nil {
		if errors.ShouldLogAuthError(err) {
			h.logger.Errorw("login failed", "error", err, "client_ip", c.ClientIP())
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetAuthCookies(c, h.cookieConfig,
		result.Tokens.AccessToken, result.Tokens.RefreshToken,
		time.Duration(result.Tokens.AccessMaxAge)*time.Second,
		time.Duration(result.Tokens.RefreshMaxAge)*time.Second,
	)

	utils.SuccessResponse(c, http.StatusOK, "", result.Session)
}

// Refresh issues a new access token from the refresh cookie, or from the
// body when the cookie is absent.
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := utils.GetTokenFromCookie(c, constants.CookieRefreshToken)
	if token == "" {
		var req RefreshTokenRequest
		if c.Request.ContentLength > 0 {
			if !bindJSON(c, &req) {
				return
			}
		}
		token = strings.TrimSpace(req.Refresh)
	}
	if token == "" {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("refresh token is required"))
		return
	}

	result, err := h.accounts.Refresh(c.Request.Context(), token)
	if err != nil {
		utils.ClearAuthCookies(c, h.cookieConfig)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetAccessTokenCookie(c, h.cookieConfig, result.AccessToken, time.Duration(result.AccessMaxAge)*time.Second)
	utils.CodeResponse(c, http.StatusOK, constants.MsgTokenRefreshed, nil)
}

// Logout clears the token cookies. Tokens are stateless, so nothing is
// revoked server side.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearAuthCookies(c, h.cookieConfig)
	utils.CodeResponse(c, http.StatusOK, constants.MsgLoggedOut, nil)
}

// CheckUsername answers {exists} for the username query parameter.
func (h *AuthHandler) CheckUsername(c *gin.Context) {
	h.checkExists(c, "username", h.accounts.UsernameExists)
}

// CheckEmail answers {exists} for the email query parameter.
func (h *AuthHandler) CheckEmail(c *gin.Context) {
	h.checkExists(c, "email", h.accounts.EmailExists)
}

func (h *AuthHandler) checkExists(c *gin.Context, param string, lookup func(context.Context, string) (bool, error)) {
	value := strings.TrimSpace(c.Query(param))
	if value == "" {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(param+" is required").WithMessageCode(constants.MsgFieldRequired))
		return
	}

	exists, err := lookup(c.Request.Context(), value)
	if err != nil {
		h.logger.Errorw("availability check failed", "error", err, "param", param)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"exists": exists})
}
