package dto

import "github.com/portalkit/portalkit/internal/domain/permission"

// CheckResult is the body of the has_permission endpoint.
type CheckResult struct {
	Has    bool   `json:"has"`
	Reason string `json:"reason"`
}

type PermissionDTO struct {
	ID          uint   `json:"id"`
	Codename    string `json:"codename"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreatePermissionRequest struct {
	Codename    string `json:"codename" binding:"required,max=100"`
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
}

type UpdatePermissionRequest struct {
	Codename    *string `json:"codename" binding:"omitempty,max=100"`
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Description *string `json:"description"`
}

type RoleGrantDTO struct {
	ID         uint           `json:"id"`
	Role       uint           `json:"role"`
	Permission *PermissionDTO `json:"permission"`
	IsAllowed  bool           `json:"is_allowed"`
}

type DepartmentGrantDTO struct {
	ID         uint           `json:"id"`
	Department uint           `json:"department"`
	Permission *PermissionDTO `json:"permission"`
}

type UserOverrideDTO struct {
	ID         uint           `json:"id"`
	User       uint           `json:"user"`
	Permission *PermissionDTO `json:"permission"`
	IsAllowed  bool           `json:"is_allowed"`
}

// SaveRoleGrantRequest creates or updates the grant for (role, permission).
type SaveRoleGrantRequest struct {
	Role         uint  `json:"role" binding:"required"`
	PermissionID uint  `json:"permission_id" binding:"required"`
	IsAllowed    *bool `json:"is_allowed"`
}

type SaveDepartmentGrantRequest struct {
	Department   uint `json:"department" binding:"required"`
	PermissionID uint `json:"permission_id" binding:"required"`
}

type SaveUserOverrideRequest struct {
	User         uint  `json:"user" binding:"required"`
	PermissionID uint  `json:"permission_id" binding:"required"`
	IsAllowed    *bool `json:"is_allowed"`
}

func ToPermissionDTO(p *permission.Permission) *PermissionDTO {
	if p == nil {
		return nil
	}
	return &PermissionDTO{
		ID:          p.ID(),
		Codename:    p.Codename(),
		Name:        p.Name(),
		Description: p.Description(),
	}
}

func ToPermissionDTOs(perms []*permission.Permission) []*PermissionDTO {
	out := make([]*PermissionDTO, 0, len(perms))
	for _, p := range perms {
		out = append(out, ToPermissionDTO(p))
	}
	return out
}
