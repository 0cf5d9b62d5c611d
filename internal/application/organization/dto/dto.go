package dto

import (
	"github.com/portalkit/portalkit/internal/domain/organization"
	"github.com/portalkit/portalkit/internal/shared/mapper"
)

type DepartmentDTO struct {
	ID             uint   `json:"id"`
	DepartmentName string `json:"department_name"`
	IsActive       bool   `json:"is_active"`
}

type CreateDepartmentRequest struct {
	DepartmentName string `json:"department_name"`
	IsActive       *bool  `json:"is_active"`
}

type UpdateDepartmentRequest struct {
	DepartmentName *string `json:"department_name"`
	IsActive       *bool   `json:"is_active"`
}

type RoleDTO struct {
	ID         uint   `json:"id"`
	RoleName   string `json:"role_name"`
	Department uint   `json:"department"`
	IsActive   bool   `json:"is_active"`
}

type CreateRoleRequest struct {
	RoleName   string `json:"role_name"`
	Department *uint  `json:"department"`
	IsActive   *bool  `json:"is_active"`
}

type UpdateRoleRequest struct {
	RoleName   *string `json:"role_name"`
	Department *uint   `json:"department"`
	IsActive   *bool   `json:"is_active"`
}

func ToDepartmentDTO(d *organization.Department) *DepartmentDTO {
	return &DepartmentDTO{ID: d.ID(), DepartmentName: d.Name(), IsActive: d.IsActive()}
}

func ToDepartmentDTOs(ds []*organization.Department) []*DepartmentDTO {
	return mapper.MapSlicePtr(ds, ToDepartmentDTO)
}

func ToRoleDTO(r *organization.Role) *RoleDTO {
	return &RoleDTO{ID: r.ID(), RoleName: r.Name(), Department: r.DepartmentID(), IsActive: r.IsActive()}
}

func ToRoleDTOs(rs []*organization.Role) []*RoleDTO {
	return mapper.MapSlicePtr(rs, ToRoleDTO)
}
