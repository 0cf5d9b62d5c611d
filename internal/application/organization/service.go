// Package organization is the application service for departments and
// roles.
package organization

import (
	"context"

	"github.com/portalkit/portalkit/internal/application/organization/dto"
	"github.com/portalkit/portalkit/internal/application/organization/usecases"
	domainOrg "github.com/portalkit/portalkit/internal/domain/organization"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

type ServiceDDD struct {
	departmentsUC *usecases.ManageDepartmentsUseCase
	rolesUC       *usecases.ManageRolesUseCase
}

func NewServiceDDD(deptRepo domainOrg.DepartmentRepository, roleRepo domainOrg.RoleRepository, logger logger.Interface) *ServiceDDD {
	return &ServiceDDD{
		departmentsUC: usecases.NewManageDepartmentsUseCase(deptRepo, logger),
		rolesUC:       usecases.NewManageRolesUseCase(roleRepo, deptRepo, logger),
	}
}

func (s *ServiceDDD) ListDepartments(ctx context.Context) ([]*dto.DepartmentDTO, error) {
	return s.departmentsUC.List(ctx)
}

func (s *ServiceDDD) GetDepartment(ctx context.Context, id uint) (*dto.DepartmentDTO, error) {
	return s.departmentsUC.Get(ctx, id)
}

func (s *ServiceDDD) CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest) (*dto.DepartmentDTO, error) {
	return s.departmentsUC.Create(ctx, req)
}

func (s *ServiceDDD) UpdateDepartment(ctx context.Context, id uint, req dto.UpdateDepartmentRequest) (*dto.DepartmentDTO, error) {
	return s.departmentsUC.Update(ctx, id, req)
}

func (s *ServiceDDD) DeleteDepartment(ctx context.Context, id uint) error {
	return s.departmentsUC.Delete(ctx, id)
}

func (s *ServiceDDD) ToggleDepartment(ctx context.Context, id uint) (bool, error) {
	return s.departmentsUC.ToggleActive(ctx, id)
}

func (s *ServiceDDD) ListRoles(ctx context.Context, departmentID *uint) ([]*dto.RoleDTO, error) {
	return s.rolesUC.List(ctx, departmentID)
}

func (s *ServiceDDD) GetRole(ctx context.Context, id uint) (*dto.RoleDTO, error) {
	return s.rolesUC.Get(ctx, id)
}

func (s *ServiceDDD) CreateRole(ctx context.Context, req dto.CreateRoleRequest) (*dto.RoleDTO, error) {
	return s.rolesUC.Create(ctx, req)
}

func (s *ServiceDDD) UpdateRole(ctx context.Context, id uint, req dto.UpdateRoleRequest) (*dto.RoleDTO, error) {
	return s.rolesUC.Update(ctx, id, req)
}

func (s *ServiceDDD) DeleteRole(ctx context.Context, id uint) error {
	return s.rolesUC.Delete(ctx, id)
}

func (s *ServiceDDD) ToggleRole(ctx context.Context, id uint) (bool, error) {
	return s.rolesUC.ToggleActive(ctx, id)
}
