// Package permission is the application service for permission checks and
// grant administration.
package permission

import (
	"context"

	"github.com/portalkit/portalkit/internal/application/permission/dto"
	"github.com/portalkit/portalkit/internal/application/permission/usecases"
	domainPermission "github.com/portalkit/portalkit/internal/domain/permission"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

type ServiceDDD struct {
	checkUC       *usecases.CheckPermissionUseCase
	effectiveUC   *usecases.EffectivePermissionsUseCase
	permissionsUC *usecases.ManagePermissionsUseCase
	grantsUC      *usecases.ManageGrantsUseCase
	logger        logger.Interface
}

type Repositories struct {
	Permissions domainPermission.PermissionRepository
	Overrides   domainPermission.UserOverrideRepository
	RoleGrants  domainPermission.RoleGrantRepository
	DeptGrants  domainPermission.DepartmentGrantRepository
	Users       usecases.UserReader
	Roles       usecases.RoleReader
	Departments usecases.DepartmentReader
}

func NewServiceDDD(repos Repositories, recorder usecases.DecisionRecorder, logger logger.Interface) *ServiceDDD {
	resolver := domainPermission.NewResolver(repos.Permissions, repos.Overrides, repos.RoleGrants, repos.DeptGrants)

	return &ServiceDDD{
		checkUC:       usecases.NewCheckPermissionUseCase(repos.Users, resolver, recorder, logger),
		effectiveUC:   usecases.NewEffectivePermissionsUseCase(resolver, logger),
		permissionsUC: usecases.NewManagePermissionsUseCase(repos.Permissions, logger),
		grantsUC: usecases.NewManageGrantsUseCase(
			repos.Permissions, repos.Overrides, repos.RoleGrants, repos.DeptGrants,
			repos.Users, repos.Roles, repos.Departments, logger,
		),
		logger: logger,
	}
}

// HasPermission decides codename for the user and reports the deciding tier.
func (s *ServiceDDD) HasPermission(ctx context.Context, userID uint, codename string) (*dto.CheckResult, error) {
	return s.checkUC.Execute(ctx, userID, codename)
}

// EffectivePermissions returns the sorted allowed codenames for subject.
func (s *ServiceDDD) EffectivePermissions(ctx context.Context, subject domainPermission.Subject) ([]string, error) {
	return s.effectiveUC.Execute(ctx, subject)
}

func (s *ServiceDDD) ListPermissions(ctx context.Context) ([]*dto.PermissionDTO, error) {
	return s.permissionsUC.List(ctx)
}

func (s *ServiceDDD) GetPermission(ctx context.Context, id uint) (*dto.PermissionDTO, error) {
	return s.permissionsUC.Get(ctx, id)
}

func (s *ServiceDDD) CreatePermission(ctx context.Context, req dto.CreatePermissionRequest) (*dto.PermissionDTO, error) {
	return s.permissionsUC.Create(ctx, req)
}

func (s *ServiceDDD) UpdatePermission(ctx context.Context, id uint, req dto.UpdatePermissionRequest) (*dto.PermissionDTO, error) {
	return s.permissionsUC.Update(ctx, id, req)
}

func (s *ServiceDDD) DeletePermission(ctx context.Context, id uint) error {
	return s.permissionsUC.Delete(ctx, id)
}

func (s *ServiceDDD) ListRoleGrants(ctx context.Context, roleID *uint) ([]*dto.RoleGrantDTO, error) {
	return s.grantsUC.ListRoleGrants(ctx, roleID)
}

func (s *ServiceDDD) SaveRoleGrant(ctx context.Context, req dto.SaveRoleGrantRequest) (*dto.RoleGrantDTO, error) {
	return s.grantsUC.SaveRoleGrant(ctx, req)
}

func (s *ServiceDDD) DeleteRoleGrant(ctx context.Context, id uint) error {
	return s.grantsUC.DeleteRoleGrant(ctx, id)
}

func (s *ServiceDDD) ListDepartmentGrants(ctx context.Context, departmentID *uint) ([]*dto.DepartmentGrantDTO, error) {
	return s.grantsUC.ListDepartmentGrants(ctx, departmentID)
}

func (s *ServiceDDD) SaveDepartmentGrant(ctx context.Context, req dto.SaveDepartmentGrantRequest) (*dto.DepartmentGrantDTO, error) {
	return s.grantsUC.SaveDepartmentGrant(ctx, req)
}

func (s *ServiceDDD) DeleteDepartmentGrant(ctx context.Context, id uint) error {
	return s.grantsUC.DeleteDepartmentGrant(ctx, id)
}

func (s *ServiceDDD) ListUserOverrides(ctx context.Context, userID *uint) ([]*dto.UserOverrideDTO, error) {
	return s.grantsUC.ListUserOverrides(ctx, userID)
}

func (s *ServiceDDD) SaveUserOverride(ctx context.Context, req dto.SaveUserOverrideRequest) (*dto.UserOverrideDTO, error) {
	return s.grantsUC.SaveUserOverride(ctx, req)
}

func (s *ServiceDDD) DeleteUserOverride(ctx context.Context, id uint) error {
	return s.grantsUC.DeleteUserOverride(ctx, id)
}
