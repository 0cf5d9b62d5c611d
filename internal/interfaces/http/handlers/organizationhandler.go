package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/portalkit/portalkit/internal/application/organization/dto"
	"github.com/portalkit/portalkit/internal/shared/logger"
	"github.com/portalkit/portalkit/internal/shared/utils"
)

type organizationService interface {
	ListDepartments(ctx context.Context) ([]*dto.DepartmentDTO, error)
	GetDepartment(ctx context.Context, id uint) (*dto.DepartmentDTO, error)
	CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest) (*dto.DepartmentDTO, error)
	UpdateDepartment(ctx context.Context, id uint, req dto.UpdateDepartmentRequest) (*dto.DepartmentDTO, error)
	DeleteDepartment(ctx context.Context, id uint) error
	ToggleDepartment(ctx context.Context, id uint) (bool, error)
	ListRoles(ctx context.Context, departmentID *uint) ([]*dto.RoleDTO, error)
	GetRole(ctx context.Context, id uint) (*dto.RoleDTO, error)
	CreateRole(ctx context.Context, req dto.CreateRoleRequest) (*dto.RoleDTO, error)
	UpdateRole(ctx context.Context, id uint, req dto.UpdateRoleRequest) (*dto.RoleDTO, error)
	DeleteRole(ctx context.Context, id uint) error
	ToggleRole(ctx context.Context, id uint) (bool, error)
}

// OrganizationHandler serves departments and roles.
type OrganizationHandler struct {
	org    organizationService
	logger logger.Interface
}

func NewOrganizationHandler(org organizationService, log logger.Interface) *OrganizationHandler {
	return &OrganizationHandler{
		org:    org,
		logger: log,
	}
}

// @Summary List departments
// @Tags Organization
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]dto.DepartmentDTO}
// @Router /api/departments [get]
func (h *OrganizationHandler) ListDepartments(c *gin.Context) {
	items, err := h.org.ListDepartments(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", items)
}

func (h *OrganizationHandler) GetDepartment(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "department")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	d, err := h.org.GetDepartment(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", d)
}

func (h *OrganizationHandler) CreateDepartment(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if !bindJSON(c, &req) {
		return
	}

	d, err := h.org.CreateDepartment(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, d, "Department created")
}

func (h *OrganizationHandler) UpdateDepartment(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "department")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateDepartmentRequest
	if !bindJSON(c, &req) {
		return
	}

	d, err := h.org.UpdateDepartment(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", d)
}

func (h *OrganizationHandler) DeleteDepartment(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "department")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.org.DeleteDepartment(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// ToggleDepartment flips is_active and answers the new value.
func (h *OrganizationHandler) ToggleDepartment(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "department")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	active, err := h.org.ToggleDepartment(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"id": id, "is_active": active})
}

// @Summary List roles
// @Tags Organization
// @Produce json
// @Param department query int false "Department ID"
// @Success 200 {object} utils.APIResponse{data=[]dto.RoleDTO}
// @Router /api/roles [get]
func (h *OrganizationHandler) ListRoles(c *gin.Context) {
	departmentID, err := utils.ParseOptionalUintQuery(c, "department")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items, err := h.org.ListRoles(c.Request.Context(), departmentID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", items)
}

func (h *OrganizationHandler) GetRole(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "role")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	r, err := h.org.GetRole(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", r)
}

func (h *OrganizationHandler) CreateRole(c *gin.Context) {
	var req dto.CreateRoleRequest
	if !bindJSON(c, &req) {
		return
	}

	r, err := h.org.CreateRole(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, r, "Role created")
}

func (h *OrganizationHandler) UpdateRole(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "role")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateRoleRequest
	if !bindJSON(c, &req) {
		return
	}

	r, err := h.org.UpdateRole(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", r)
}

func (h *OrganizationHandler) DeleteRole(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "role")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.org.DeleteRole(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func (h *OrganizationHandler) ToggleRole(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "role")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	active, err := h.org.ToggleRole(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"id": id, "is_active": active})
}
