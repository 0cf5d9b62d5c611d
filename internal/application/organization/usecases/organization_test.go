package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/portalkit/portalkit/internal/application/organization/dto"
	"github.com/portalkit/portalkit/internal/domain/organization"
	"github.com/portalkit/portalkit/internal/shared/constants"
	sharedErrors "github.com/portalkit/portalkit/internal/shared/errors"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

func TestManageDepartments_Create(t *testing.T) {
	t.Run("blank name", func(t *testing.T) {
		repo := new(mockDeptRepo)
		uc := NewManageDepartmentsUseCase(repo, logger.NewNop())

		_, err := uc.Create(context.Background(), dto.CreateDepartmentRequest{DepartmentName: "  "})

		appErr := sharedErrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "department_name", appErr.Details)
		assert.Equal(t, constants.MsgFieldRequired, appErr.MessageCode)
	})

	t.Run("duplicate ignoring case", func(t *testing.T) {
		repo := new(mockDeptRepo)
		repo.On("GetByName", mock.Anything, "sales").Return(dept(2, "Sales", true), nil)
		uc := NewManageDepartmentsUseCase(repo, logger.NewNop())

		_, err := uc.Create(context.Background(), dto.CreateDepartmentRequest{DepartmentName: "sales"})

		assert.Equal(t, constants.MsgDepartmentExists, sharedErrors.GetAppError(err).MessageCode)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("defaults to active", func(t *testing.T) {
		repo := new(mockDeptRepo)
		repo.On("GetByName", mock.Anything, "Finance").Return(nil, nil)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(d *organization.Department) bool {
			return d.Name() == "Finance" && d.IsActive()
		})).Return(nil)
		uc := NewManageDepartmentsUseCase(repo, logger.NewNop())

		result, err := uc.Create(context.Background(), dto.CreateDepartmentRequest{DepartmentName: " Finance "})

		require.NoError(t, err)
		assert.True(t, result.IsActive)
	})

	t.Run("unique index race", func(t *testing.T) {
		repo := new(mockDeptRepo)
		repo.On("GetByName", mock.Anything, "Finance").Return(nil, nil)
		repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("UNIQUE constraint failed: departments.name_folded"))
		uc := NewManageDepartmentsUseCase(repo, logger.NewNop())

		_, err := uc.Create(context.Background(), dto.CreateDepartmentRequest{DepartmentName: "Finance"})

		assert.Equal(t, constants.MsgDepartmentExists, sharedErrors.GetAppError(err).MessageCode)
	})
}

func TestManageDepartments_Toggle(t *testing.T) {
	repo := new(mockDeptRepo)
	d := dept(3, "Ops", true)
	repo.On("GetByID", mock.Anything, uint(3)).Return(d, nil)
	repo.On("GetByID", mock.Anything, uint(4)).Return(nil, nil)
	repo.On("Update", mock.Anything, d).Return(nil)
	uc := NewManageDepartmentsUseCase(repo, logger.NewNop())

	active, err := uc.ToggleActive(context.Background(), 3)
	require.NoError(t, err)
	assert.False(t, active)

	_, err = uc.ToggleActive(context.Background(), 4)
	require.Error(t, err)
	assert.Equal(t, constants.MsgNotFound, sharedErrors.GetAppError(err).MessageCode)
}

func TestManageDepartments_RenameToOwnName(t *testing.T) {
	repo := new(mockDeptRepo)
	d := dept(3, "Ops", true)
	repo.On("GetByID", mock.Anything, uint(3)).Return(d, nil)
	repo.On("GetByName", mock.Anything, "OPS").Return(d, nil)
	repo.On("Update", mock.Anything, d).Return(nil)
	uc := NewManageDepartmentsUseCase(repo, logger.NewNop())

	name := "OPS"
	result, err := uc.Update(context.Background(), 3, dto.UpdateDepartmentRequest{DepartmentName: &name})

	require.NoError(t, err)
	assert.Equal(t, "OPS", result.DepartmentName)
}

func TestManageRoles_Create(t *testing.T) {
	t.Run("department required", func(t *testing.T) {
		uc := NewManageRolesUseCase(new(mockRoleRepo), new(mockDeptRepo), logger.NewNop())

		_, err := uc.Create(context.Background(), dto.CreateRoleRequest{RoleName: "Lead"})

		appErr := sharedErrors.GetAppError(err)
		assert.Equal(t, "role_name", appErr.Details)
		assert.Equal(t, constants.MsgFieldRequired, appErr.MessageCode)
	})

	t.Run("duplicate within department", func(t *testing.T) {
		roles := new(mockRoleRepo)
		depts := new(mockDeptRepo)
		depts.On("GetByID", mock.Anything, uint(2)).Return(dept(2, "Sales", true), nil)
		roles.On("GetByName", mock.Anything, "lead", uint(2)).Return(role(8, "Lead", 2, true), nil)
		uc := NewManageRolesUseCase(roles, depts, logger.NewNop())

		_, err := uc.Create(context.Background(), dto.CreateRoleRequest{RoleName: "lead", Department: uintPtr(2)})

		assert.Equal(t, constants.MsgRoleExists, sharedErrors.GetAppError(err).MessageCode)
	})

	t.Run("unknown department", func(t *testing.T) {
		depts := new(mockDeptRepo)
		depts.On("GetByID", mock.Anything, uint(9)).Return(nil, nil)
		uc := NewManageRolesUseCase(new(mockRoleRepo), depts, logger.NewNop())

		_, err := uc.Create(context.Background(), dto.CreateRoleRequest{RoleName: "Lead", Department: uintPtr(9)})

		assert.True(t, sharedErrors.IsValidationError(err))
	})

	t.Run("created", func(t *testing.T) {
		roles := new(mockRoleRepo)
		depts := new(mockDeptRepo)
		depts.On("GetByID", mock.Anything, uint(2)).Return(dept(2, "Sales", true), nil)
		roles.On("GetByName", mock.Anything, "Lead", uint(2)).Return(nil, nil)
		roles.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			_ = args.Get(1).(*organization.Role).SetID(15)
		}).Return(nil)
		uc := NewManageRolesUseCase(roles, depts, logger.NewNop())

		inactive := false
		result, err := uc.Create(context.Background(), dto.CreateRoleRequest{RoleName: "Lead", Department: uintPtr(2), IsActive: &inactive})

		require.NoError(t, err)
		assert.Equal(t, &dto.RoleDTO{ID: 15, RoleName: "Lead", Department: 2, IsActive: false}, result)
	})
}

func TestManageRoles_MoveDepartment(t *testing.T) {
	roles := new(mockRoleRepo)
	depts := new(mockDeptRepo)
	r := role(8, "Lead", 2, true)
	roles.On("GetByID", mock.Anything, uint(8)).Return(r, nil)
	depts.On("GetByID", mock.Anything, uint(5)).Return(dept(5, "Ops", true), nil)
	roles.On("GetByName", mock.Anything, "Lead", uint(5)).Return(nil, nil)
	roles.On("Update", mock.Anything, r).Return(nil)
	uc := NewManageRolesUseCase(roles, depts, logger.NewNop())

	result, err := uc.Update(context.Background(), 8, dto.UpdateRoleRequest{Department: uintPtr(5)})

	require.NoError(t, err)
	assert.Equal(t, uint(5), result.Department)
}
