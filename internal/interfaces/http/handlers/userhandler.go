package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/portalkit/portalkit/internal/application/user/dto"
	"github.com/portalkit/portalkit/internal/shared/constants"
	"github.com/portalkit/portalkit/internal/shared/errors"
	"github.com/portalkit/portalkit/internal/shared/logger"
	"github.com/portalkit/portalkit/internal/shared/utils"
	"github.com/portalkit/portalkit/internal/shared/version"
)

type userAdminService interface {
	ListUsers(ctx context.Context, req dto.ListUsersRequest) ([]*dto.UserDTO, int64, error)
	GetUser(ctx context.Context, id uint) (*dto.UserDTO, error)
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*dto.UserDTO, error)
	UpdateUser(ctx context.Context, id uint, req dto.UpdateUserRequest) (*dto.UserDTO, error)
	DeleteUser(ctx context.Context, id uint) error
	ToggleUser(ctx context.Context, id uint) (bool, error)
	Stats(ctx context.Context) (*dto.StatsDTO, error)
}

// UserHandler serves the administrator user endpoints.
type UserHandler struct {
	users  userAdminService
	logger logger.Interface
}

func NewUserHandler(users userAdminService, log logger.Interface) *UserHandler {
	return &UserHandler{
		users:  users,
		logger: log,
	}
}

// ListUsers handles GET /api/admin/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	departmentID, err := utils.ParseOptionalUintQuery(c, "department_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	roleID, err := utils.ParseOptionalUintQuery(c, "role_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var active *bool
	if raw := c.Query("is_active"); raw != "" {
		v, parseErr := strconv.ParseBool(raw)
		if parseErr != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid is_active"))
			return
		}
		active = &v
	}

	req := dto.ListUsersRequest{
		Page:         pagination.Page,
		PageSize:     pagination.PageSize,
		Search:       strings.TrimSpace(c.Query("search")),
		DepartmentID: departmentID,
		RoleID:       roleID,
		Active:       active,
	}

	items, total, err := h.users.ListUsers(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items, total, pagination.Page, pagination.PageSize)
}

// CreateUser handles POST /api/admin/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.users.CreateUser(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CodeResponse(c, http.StatusCreated, constants.MsgRegistered, created)
}

// GetUser handles GET /api/admin/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	u, err := h.users.GetUser(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", u)
}

// UpdateUser handles PUT and PATCH /api/admin/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.users.UpdateUser(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CodeResponse(c, http.StatusOK, constants.MsgOperationCompleted, updated)
}

// DeleteUser handles DELETE /api/admin/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.users.DeleteUser(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("user deleted", "user_id", id)
	utils.NoContentResponse(c)
}

// ToggleUser handles POST /api/admin/users/:id/toggle
func (h *UserHandler) ToggleUser(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	active, err := h.users.ToggleUser(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"id": id, "is_active": active})
}

// Stats handles GET /api/admin/users/stats
func (h *UserHandler) Stats(c *gin.Context) {
	stats, err := h.users.Stats(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", stats)
}

// HealthCheck handles GET /health
func (h *UserHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "portalkit",
	})
}

// Version handles GET /version
func (h *UserHandler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": version.String(),
		"commit":  version.Commit,
	})
}
