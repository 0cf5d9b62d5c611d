package usecases

import (
	"context"
	"fmt"

	"github.com/portalkit/portalkit/internal/domain/organization"
	"github.com/portalkit/portalkit/internal/shared/errors"
)

// orgAssigner resolves the department and role for a new or edited account.
type orgAssigner struct {
	deptRepo organization.DepartmentRepository
	roleRepo organization.RoleRepository
	defaults OrgDefaults
}

// resolve validates the requested ids. A role without a department takes
// the role's department. When applyDefaults is set, missing values fall
// back to the active default department and the active default role in the
// resolved department; a default that does not exist is left empty.
func (a *orgAssigner) resolve(ctx context.Context, departmentID, roleID *uint, applyDefaults bool) (*uint, *uint, error) {
	var role *organization.Role
	if roleID != nil {
		r, err := a.roleRepo.GetByID(ctx, *roleID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get role: %w", err)
		}
		if r == nil {
			return nil, nil, errors.NewValidationError("role does not exist", "role_id")
		}
		role = r
	}

	if departmentID != nil {
		d, err := a.deptRepo.GetByID(ctx, *departmentID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get department: %w", err)
		}
		if d == nil {
			return nil, nil, errors.NewValidationError("department does not exist", "department_id")
		}
	} else if role != nil {
		id := role.DepartmentID()
		departmentID = &id
	}

	if role != nil && departmentID != nil && role.DepartmentID() != *departmentID {
		return nil, nil, errors.NewValidationError("role does not belong to department", "role_id")
	}

	if !applyDefaults {
		return departmentID, roleID, nil
	}

	if departmentID == nil && a.defaults.Department != "" {
		d, err := a.deptRepo.GetByName(ctx, a.defaults.Department)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get default department: %w", err)
		}
		if d != nil && d.IsActive() {
			id := d.ID()
			departmentID = &id
		}
	}

	if roleID == nil && departmentID != nil && a.defaults.Role != "" {
		r, err := a.roleRepo.GetByName(ctx, a.defaults.Role, *departmentID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get default role: %w", err)
		}
		if r != nil && r.IsActive() {
			id := r.ID()
			roleID = &id
		}
	}

	return departmentID, roleID, nil
}
