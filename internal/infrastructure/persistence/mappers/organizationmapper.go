package mappers

import (
	"github.com/portalkit/portalkit/internal/domain/organization"
	"github.com/portalkit/portalkit/internal/infrastructure/persistence/models"
	"github.com/portalkit/portalkit/internal/shared/utils"
)

func DepartmentToEntity(m *models.DepartmentModel) *organization.Department {
	if m == nil {
		return nil
	}
	return organization.ReconstructDepartment(m.ID, m.Name, m.IsActive, m.CreatedAt, m.UpdatedAt)
}

func DepartmentToModel(d *organization.Department) *models.DepartmentModel {
	return &models.DepartmentModel{
		ID:        d.ID(),
		Name:      d.Name(),
		NameKey:   utils.FoldKey(d.Name()),
		IsActive:  d.IsActive(),
		CreatedAt: d.CreatedAt(),
		UpdatedAt: d.UpdatedAt(),
	}
}

func RoleToEntity(m *models.RoleModel) *organization.Role {
	if m == nil {
		return nil
	}
	return organization.ReconstructRole(m.ID, m.Name, m.DepartmentID, m.IsActive, m.CreatedAt, m.UpdatedAt)
}

func RoleToModel(r *organization.Role) *models.RoleModel {
	return &models.RoleModel{
		ID:           r.ID(),
		Name:         r.Name(),
		NameKey:      utils.FoldKey(r.Name()),
		DepartmentID: r.DepartmentID(),
		IsActive:     r.IsActive(),
		CreatedAt:    r.CreatedAt(),
		UpdatedAt:    r.UpdatedAt(),
	}
}
