package mappers

import (
	"fmt"

	"github.com/portalkit/portalkit/internal/domain/permission"
	"github.com/portalkit/portalkit/internal/infrastructure/persistence/models"
)

func PermissionToEntity(m *models.PermissionModel) (*permission.Permission, error) {
	if m == nil {
		return nil, nil
	}
	p, err := permission.ReconstructPermission(m.ID, m.Codename, m.Name, m.Description, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct permission entity: %w", err)
	}
	return p, nil
}

func PermissionToModel(p *permission.Permission) *models.PermissionModel {
	return &models.PermissionModel{
		ID:          p.ID(),
		Codename:    p.Codename(),
		Name:        p.Name(),
		Description: p.Description(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func UserOverrideToEntity(m *models.UserPermissionOverrideModel) *permission.UserOverride {
	if m == nil {
		return nil
	}
	return permission.ReconstructUserOverride(m.ID, m.UserID, m.PermissionID, m.IsAllowed)
}

func RoleGrantToEntity(m *models.RolePermissionModel) *permission.RoleGrant {
	if m == nil {
		return nil
	}
	return permission.ReconstructRoleGrant(m.ID, m.RoleID, m.PermissionID, m.IsAllowed)
}

func DepartmentGrantToEntity(m *models.DepartmentPermissionModel) *permission.DepartmentGrant {
	if m == nil {
		return nil
	}
	return permission.ReconstructDepartmentGrant(m.ID, m.DepartmentID, m.PermissionID)
}

func CodenameGrants(rows []models.CodenameGrantRow) []permission.CodenameGrant {
	out := make([]permission.CodenameGrant, 0, len(rows))
	for _, r := range rows {
		out = append(out, permission.CodenameGrant{Codename: r.Codename, Allowed: r.IsAllowed})
	}
	return out
}
