package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/portalkit/portalkit/internal/application/organization/dto"
	"github.com/portalkit/portalkit/internal/domain/organization"
	"github.com/portalkit/portalkit/internal/shared/constants"
	"github.com/portalkit/portalkit/internal/shared/errors"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

type ManageRolesUseCase struct {
	roleRepo organization.RoleRepository
	deptRepo organization.DepartmentRepository
	logger   logger.Interface
}

func NewManageRolesUseCase(roleRepo organization.RoleRepository, deptRepo organization.DepartmentRepository, logger logger.Interface) *ManageRolesUseCase {
	return &ManageRolesUseCase{roleRepo: roleRepo, deptRepo: deptRepo, logger: logger}
}

// List returns roles ordered by name, optionally for one department.
func (uc *ManageRolesUseCase) List(ctx context.Context, departmentID *uint) ([]*dto.RoleDTO, error) {
	roles, err := uc.roleRepo.List(ctx, departmentID)
	if err != nil {
		uc.logger.Errorw("failed to list roles", "error", err)
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	return dto.ToRoleDTOs(roles), nil
}

func (uc *ManageRolesUseCase) Get(ctx context.Context, id uint) (*dto.RoleDTO, error) {
	r, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToRoleDTO(r), nil
}

func (uc *ManageRolesUseCase) Create(ctx context.Context, req dto.CreateRoleRequest) (*dto.RoleDTO, error) {
	name := strings.TrimSpace(req.RoleName)
	if name == "" || req.Department == nil || *req.Department == 0 {
		return nil, errors.NewValidationError("role name and department are required", "role_name").
			WithMessageCode(constants.MsgFieldRequired)
	}
	if err := uc.ensureDepartment(ctx, *req.Department); err != nil {
		return nil, err
	}
	if err := uc.ensureNameFree(ctx, name, *req.Department, 0); err != nil {
		return nil, err
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	r, err := organization.NewRole(name, *req.Department, active)
	if err != nil {
		return nil, errors.NewValidationError(err.Error(), "role_name")
	}

	if err := uc.roleRepo.Create(ctx, r); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, roleExists()
		}
		uc.logger.Errorw("failed to create role", "name", name, "error", err)
		return nil, fmt.Errorf("failed to create role: %w", err)
	}

	uc.logger.Infow("role created", "role_id", r.ID(), "department_id", r.DepartmentID())
	return dto.ToRoleDTO(r), nil
}

func (uc *ManageRolesUseCase) Update(ctx context.Context, id uint, req dto.UpdateRoleRequest) (*dto.RoleDTO, error) {
	r, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}

	name, departmentID := r.Name(), r.DepartmentID()
	if req.RoleName != nil {
		name = *req.RoleName
	}
	if req.Department != nil {
		if err := uc.ensureDepartment(ctx, *req.Department); err != nil {
			return nil, err
		}
		departmentID = *req.Department
	}
	if req.RoleName != nil || req.Department != nil {
		if err := uc.ensureNameFree(ctx, name, departmentID, id); err != nil {
			return nil, err
		}
		if err := r.Update(name, departmentID); err != nil {
			return nil, errors.NewValidationError(err.Error(), "role_name").WithMessageCode(constants.MsgFieldRequired)
		}
	}
	if req.IsActive != nil {
		r.SetActive(*req.IsActive)
	}

	if err := uc.roleRepo.Update(ctx, r); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, roleExists()
		}
		return nil, fmt.Errorf("failed to update role: %w", err)
	}
	return dto.ToRoleDTO(r), nil
}

func (uc *ManageRolesUseCase) Delete(ctx context.Context, id uint) error {
	if _, err := uc.load(ctx, id); err != nil {
		return err
	}
	if err := uc.roleRepo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete role", "role_id", id, "error", err)
		return fmt.Errorf("failed to delete role: %w", err)
	}
	uc.logger.Infow("role deleted", "role_id", id)
	return nil
}

func (uc *ManageRolesUseCase) ToggleActive(ctx context.Context, id uint) (bool, error) {
	r, err := uc.load(ctx, id)
	if err != nil {
		return false, err
	}
	active := r.ToggleActive()
	if err := uc.roleRepo.Update(ctx, r); err != nil {
		return false, fmt.Errorf("failed to update role: %w", err)
	}
	return active, nil
}

func (uc *ManageRolesUseCase) ensureDepartment(ctx context.Context, id uint) error {
	d, err := uc.deptRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get department: %w", err)
	}
	if d == nil {
		return errors.NewValidationError(organization.ErrDepartmentNotFound.Error(), "department")
	}
	return nil
}

func (uc *ManageRolesUseCase) ensureNameFree(ctx context.Context, name string, departmentID, selfID uint) error {
	existing, err := uc.roleRepo.GetByName(ctx, strings.TrimSpace(name), departmentID)
	if err != nil {
		return fmt.Errorf("failed to check role name: %w", err)
	}
	if existing != nil && existing.ID() != selfID {
		return roleExists()
	}
	return nil
}

func (uc *ManageRolesUseCase) load(ctx context.Context, id uint) (*organization.Role, error) {
	r, err := uc.roleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get role: %w", err)
	}
	if r == nil {
		return nil, errors.NewNotFoundError(organization.ErrRoleNotFound.Error()).WithMessageCode(constants.MsgNotFound)
	}
	return r, nil
}

func roleExists() error {
	return errors.NewValidationError(organization.ErrRoleExists.Error(), "role_name").
		WithMessageCode(constants.MsgRoleExists)
}
