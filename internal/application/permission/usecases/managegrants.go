package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/portalkit/portalkit/internal/application/permission/dto"
	"github.com/portalkit/portalkit/internal/domain/permission"
	"github.com/portalkit/portalkit/internal/shared/errors"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

// ManageGrantsUseCase administers the three grant tiers. Saving a grant for
// an existing pair updates it in place.
type ManageGrantsUseCase struct {
	permissionRepo permission.PermissionRepository
	overrideRepo   permission.UserOverrideRepository
	roleGrantRepo  permission.RoleGrantRepository
	deptGrantRepo  permission.DepartmentGrantRepository
	userRepo       UserReader
	roleRepo       RoleReader
	deptRepo       DepartmentReader
	logger         logger.Interface
}

func NewManageGrantsUseCase(
	permissionRepo permission.PermissionRepository,
	overrideRepo permission.UserOverrideRepository,
	roleGrantRepo permission.RoleGrantRepository,
	deptGrantRepo permission.DepartmentGrantRepository,
	userRepo UserReader,
	roleRepo RoleReader,
	deptRepo DepartmentReader,
	logger logger.Interface,
) *ManageGrantsUseCase {
	return &ManageGrantsUseCase{
		permissionRepo: permissionRepo,
		overrideRepo:   overrideRepo,
		roleGrantRepo:  roleGrantRepo,
		deptGrantRepo:  deptGrantRepo,
		userRepo:       userRepo,
		roleRepo:       roleRepo,
		deptRepo:       deptRepo,
		logger:         logger,
	}
}

func (uc *ManageGrantsUseCase) ListRoleGrants(ctx context.Context, roleID *uint) ([]*dto.RoleGrantDTO, error) {
	grants, err := uc.roleGrantRepo.List(ctx, roleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list role permissions: %w", err)
	}
	perms, err := uc.permissionIndex(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.RoleGrantDTO, 0, len(grants))
	for _, g := range grants {
		out = append(out, &dto.RoleGrantDTO{
			ID:         g.ID(),
			Role:       g.RoleID(),
			Permission: perms[g.PermissionID()],
			IsAllowed:  g.Allowed(),
		})
	}
	return out, nil
}

func (uc *ManageGrantsUseCase) SaveRoleGrant(ctx context.Context, req dto.SaveRoleGrantRequest) (*dto.RoleGrantDTO, error) {
	perm, err := uc.requirePermission(ctx, req.PermissionID)
	if err != nil {
		return nil, err
	}
	role, err := uc.roleRepo.GetByID(ctx, req.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to get role: %w", err)
	}
	if role == nil {
		return nil, errors.NewValidationError("role does not exist")
	}

	// Role grants allow unless told otherwise.
	allowed := true
	if req.IsAllowed != nil {
		allowed = *req.IsAllowed
	}

	grant, err := permission.NewRoleGrant(role.ID(), perm.ID(), allowed)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.roleGrantRepo.Upsert(ctx, grant); err != nil {
		return nil, fmt.Errorf("failed to save role permission: %w", err)
	}

	uc.logger.Infow("role permission saved", "role_id", role.ID(), "codename", perm.Codename(), "allowed", allowed)
	return &dto.RoleGrantDTO{
		ID:         grant.ID(),
		Role:       grant.RoleID(),
		Permission: dto.ToPermissionDTO(perm),
		IsAllowed:  grant.Allowed(),
	}, nil
}

func (uc *ManageGrantsUseCase) DeleteRoleGrant(ctx context.Context, id uint) error {
	return uc.deleteGrant(ctx, "role permission", id, uc.roleGrantRepo.Delete)
}

func (uc *ManageGrantsUseCase) ListDepartmentGrants(ctx context.Context, departmentID *uint) ([]*dto.DepartmentGrantDTO, error) {
	grants, err := uc.deptGrantRepo.List(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list department permissions: %w", err)
	}
	perms, err := uc.permissionIndex(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.DepartmentGrantDTO, 0, len(grants))
	for _, g := range grants {
		out = append(out, &dto.DepartmentGrantDTO{
			ID:         g.ID(),
			Department: g.DepartmentID(),
			Permission: perms[g.PermissionID()],
		})
	}
	return out, nil
}

func (uc *ManageGrantsUseCase) SaveDepartmentGrant(ctx context.Context, req dto.SaveDepartmentGrantRequest) (*dto.DepartmentGrantDTO, error) {
	perm, err := uc.requirePermission(ctx, req.PermissionID)
	if err != nil {
		return nil, err
	}
	dept, err := uc.deptRepo.GetByID(ctx, req.Department)
	if err != nil {
		return nil, fmt.Errorf("failed to get department: %w", err)
	}
	if dept == nil {
		return nil, errors.NewValidationError("department does not exist")
	}

	grant, err := permission.NewDepartmentGrant(dept.ID(), perm.ID())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.deptGrantRepo.Create(ctx, grant); err != nil {
		return nil, fmt.Errorf("failed to save department permission: %w", err)
	}

	uc.logger.Infow("department permission saved", "department_id", dept.ID(), "codename", perm.Codename())
	return &dto.DepartmentGrantDTO{
		ID:         grant.ID(),
		Department: grant.DepartmentID(),
		Permission: dto.ToPermissionDTO(perm),
	}, nil
}

func (uc *ManageGrantsUseCase) DeleteDepartmentGrant(ctx context.Context, id uint) error {
	return uc.deleteGrant(ctx, "department permission", id, uc.deptGrantRepo.Delete)
}

func (uc *ManageGrantsUseCase) ListUserOverrides(ctx context.Context, userID *uint) ([]*dto.UserOverrideDTO, error) {
	overrides, err := uc.overrideRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user overrides: %w", err)
	}
	perms, err := uc.permissionIndex(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.UserOverrideDTO, 0, len(overrides))
	for _, o := range overrides {
		out = append(out, &dto.UserOverrideDTO{
			ID:         o.ID(),
			User:       o.UserID(),
			Permission: perms[o.PermissionID()],
			IsAllowed:  o.Allowed(),
		})
	}
	return out, nil
}

func (uc *ManageGrantsUseCase) SaveUserOverride(ctx context.Context, req dto.SaveUserOverrideRequest) (*dto.UserOverrideDTO, error) {
	// An override must state its decision explicitly.
	if req.IsAllowed == nil {
		return nil, errors.NewValidationError("is_allowed is required")
	}

	perm, err := uc.requirePermission(ctx, req.PermissionID)
	if err != nil {
		return nil, err
	}
	u, err := uc.userRepo.GetByID(ctx, req.User)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, errors.NewValidationError("user does not exist")
	}

	override, err := permission.NewUserOverride(u.ID(), perm.ID(), *req.IsAllowed)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.overrideRepo.Upsert(ctx, override); err != nil {
		return nil, fmt.Errorf("failed to save user override: %w", err)
	}

	uc.logger.Infow("user override saved", "user_id", u.ID(), "codename", perm.Codename(), "allowed", *req.IsAllowed)
	return &dto.UserOverrideDTO{
		ID:         override.ID(),
		User:       override.UserID(),
		Permission: dto.ToPermissionDTO(perm),
		IsAllowed:  override.Allowed(),
	}, nil
}

func (uc *ManageGrantsUseCase) DeleteUserOverride(ctx context.Context, id uint) error {
	return uc.deleteGrant(ctx, "user override", id, uc.overrideRepo.Delete)
}

func (uc *ManageGrantsUseCase) requirePermission(ctx context.Context, id uint) (*permission.Permission, error) {
	perm, err := uc.permissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get permission: %w", err)
	}
	if perm == nil {
		return nil, errors.NewValidationError("permission does not exist")
	}
	return perm, nil
}

func (uc *ManageGrantsUseCase) permissionIndex(ctx context.Context) (map[uint]*dto.PermissionDTO, error) {
	perms, err := uc.permissionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}
	index := make(map[uint]*dto.PermissionDTO, len(perms))
	for _, p := range perms {
		index[p.ID()] = dto.ToPermissionDTO(p)
	}
	return index, nil
}

func (uc *ManageGrantsUseCase) deleteGrant(ctx context.Context, kind string, id uint, del func(context.Context, uint) error) error {
	if err := del(ctx, id); err != nil {
		if stderrors.Is(err, permission.ErrGrantNotFound) {
			return errors.NewNotFoundError(kind + " not found")
		}
		return fmt.Errorf("failed to delete %s: %w", kind, err)
	}
	uc.logger.Infow("grant deleted", "kind", kind, "id", id)
	return nil
}
