package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/portalkit/portalkit/internal/application/permission/dto"
	"github.com/portalkit/portalkit/internal/domain/permission"
	"github.com/portalkit/portalkit/internal/shared/errors"
	"github.com/portalkit/portalkit/internal/shared/logger"
	"github.com/portalkit/portalkit/internal/shared/utils"
)

type permissionChecker interface {
	HasPermission(ctx context.Context, userID uint, codename string) (*dto.CheckResult, error)
}

type permissionAdminService interface {
	ListPermissions(ctx context.Context) ([]*dto.PermissionDTO, error)
	GetPermission(ctx context.Context, id uint) (*dto.PermissionDTO, error)
	CreatePermission(ctx context.Context, req dto.CreatePermissionRequest) (*dto.PermissionDTO, error)
	UpdatePermission(ctx context.Context, id uint, req dto.UpdatePermissionRequest) (*dto.PermissionDTO, error)
	DeletePermission(ctx context.Context, id uint) error
	ListRoleGrants(ctx context.Context, roleID *uint) ([]*dto.RoleGrantDTO, error)
	SaveRoleGrant(ctx context.Context, req dto.SaveRoleGrantRequest) (*dto.RoleGrantDTO, error)
	DeleteRoleGrant(ctx context.Context, id uint) error
	ListDepartmentGrants(ctx context.Context, departmentID *uint) ([]*dto.DepartmentGrantDTO, error)
	SaveDepartmentGrant(ctx context.Context, req dto.SaveDepartmentGrantRequest) (*dto.DepartmentGrantDTO, error)
	DeleteDepartmentGrant(ctx context.Context, id uint) error
	ListUserOverrides(ctx context.Context, userID *uint) ([]*dto.UserOverrideDTO, error)
	SaveUserOverride(ctx context.Context, req dto.SaveUserOverrideRequest) (*dto.UserOverrideDTO, error)
	DeleteUserOverride(ctx context.Context, id uint) error
}

type permissionService interface {
	permissionChecker
	permissionAdminService
}

type PermissionHandler struct {
	permissions permissionService
	logger      logger.Interface
}

func NewPermissionHandler(permissions permissionService, log logger.Interface) *PermissionHandler {
	return &PermissionHandler{
		permissions: permissions,
		logger:      log,
	}
}

// @Summary Check a permission for the signed-in user
// @Description Resolves the codename through user overrides, then role grants, then department grants
// @Tags Permissions
// @Produce json
// @Param codename query string true "Permission codename"
// @Success 200 {object} utils.APIResponse{data=dto.CheckResult}
// @Failure 400 {object} utils.APIResponse{data=dto.CheckResult}
// @Router /api/permissions/has_permission [get]
func (h *PermissionHandler) HasPermission(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	codename := strings.TrimSpace(c.Query("codename"))
	if codename == "" {
		c.JSON(http.StatusBadRequest, utils.APIResponse{
			Success: false,
			Data:    dto.CheckResult{Has: false, Reason: string(permission.ReasonCodenameMissing)},
			Error:   utils.NewErrorInfo(http.StatusBadRequest, string(errors.ErrorTypeValidation), "codename is required"),
		})
		return
	}

	result, err := h.permissions.HasPermission(c.Request.Context(), userID, codename)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *PermissionHandler) ListPermissions(c *gin.Context) {
	items, err := h.permissions.ListPermissions(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", items)
}

func (h *PermissionHandler) GetPermission(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "permission")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	p, err := h.permissions.GetPermission(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", p)
}

func (h *PermissionHandler) CreatePermission(c *gin.Context) {
	var req dto.CreatePermissionRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.permissions.CreatePermission(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, p, "Permission created")
}

func (h *PermissionHandler) UpdatePermission(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "permission")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdatePermissionRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.permissions.UpdatePermission(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", p)
}

func (h *PermissionHandler) DeletePermission(c *gin.Context) {
	h.deleteByID(c, "permission", h.permissions.DeletePermission)
}

// ListRoleGrants handles GET /api/role-permissions?role_id=
func (h *PermissionHandler) ListRoleGrants(c *gin.Context) {
	roleID, err := utils.ParseOptionalUintQuery(c, "role_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items, err := h.permissions.ListRoleGrants(c.Request.Context(), roleID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// SaveRoleGrant upserts on (role, permission).
func (h *PermissionHandler) SaveRoleGrant(c *gin.Context) {
	var req dto.SaveRoleGrantRequest
	if !bindJSON(c, &req) {
		return
	}

	g, err := h.permissions.SaveRoleGrant(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, g, "Role permission saved")
}

func (h *PermissionHandler) DeleteRoleGrant(c *gin.Context) {
	h.deleteByID(c, "role permission", h.permissions.DeleteRoleGrant)
}

// ListDepartmentGrants handles GET /api/department-permissions?department_id=
func (h *PermissionHandler) ListDepartmentGrants(c *gin.Context) {
	departmentID, err := utils.ParseOptionalUintQuery(c, "department_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items, err := h.permissions.ListDepartmentGrants(c.Request.Context(), departmentID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", items)
}

func (h *PermissionHandler) SaveDepartmentGrant(c *gin.Context) {
	var req dto.SaveDepartmentGrantRequest
	if !bindJSON(c, &req) {
		return
	}

	g, err := h.permissions.SaveDepartmentGrant(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, g, "Department permission saved")
}

func (h *PermissionHandler) DeleteDepartmentGrant(c *gin.Context) {
	h.deleteByID(c, "department permission", h.permissions.DeleteDepartmentGrant)
}

// ListUserOverrides handles GET /api/user-permissions?user_id=
func (h *PermissionHandler) ListUserOverrides(c *gin.Context) {
	userID, err := utils.ParseOptionalUintQuery(c, "user_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items, err := h.permissions.ListUserOverrides(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// SaveUserOverride upserts on (user, permission).
func (h *PermissionHandler) SaveUserOverride(c *gin.Context) {
	var req dto.SaveUserOverrideRequest
	if !bindJSON(c, &req) {
		return
	}

	o, err := h.permissions.SaveUserOverride(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, o, "User permission saved")
}

func (h *PermissionHandler) DeleteUserOverride(c *gin.Context) {
	h.deleteByID(c, "user permission", h.permissions.DeleteUserOverride)
}

func (h *PermissionHandler) deleteByID(c *gin.Context, entity string, del func(context.Context, uint) error) {
	id, err := utils.ParseUintParam(c, "id", entity)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := del(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("grant deleted", "entity", entity, "id", id)
	utils.NoContentResponse(c)
}
