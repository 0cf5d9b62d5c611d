package usecases

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/portalkit/portalkit/internal/domain/organization"
	"github.com/portalkit/portalkit/internal/domain/permission"
	"github.com/portalkit/portalkit/internal/domain/user"
)

type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) Resolve(ctx context.Context, subject permission.Subject, codename string) (permission.Decision, error) {
	args := m.Called(ctx, subject, codename)
	return args.Get(0).(permission.Decision), args.Error(1)
}

func (m *mockResolver) ResolveAll(ctx context.Context, subject permission.Subject) ([]string, error) {
	args := m.Called(ctx, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type mockRecorder struct {
	mock.Mock
}

func (m *mockRecorder) RecordDecision(reason string, allowed bool) {
	m.Called(reason, allowed)
}

type mockUserReader struct {
	mock.Mock
}

func (m *mockUserReader) GetByID(ctx context.Context, id uint) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type mockRoleReader struct {
	mock.Mock
}

func (m *mockRoleReader) GetByID(ctx context.Context, id uint) (*organization.Role, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organization.Role), args.Error(1)
}

type mockDepartmentReader struct {
	mock.Mock
}

func (m *mockDepartmentReader) GetByID(ctx context.Context, id uint) (*organization.Department, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organization.Department), args.Error(1)
}

type mockPermissionRepo struct {
	mock.Mock
}

func (m *mockPermissionRepo) Create(ctx context.Context, p *permission.Permission) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPermissionRepo) GetByID(ctx context.Context, id uint) (*permission.Permission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*permission.Permission), args.Error(1)
}

func (m *mockPermissionRepo) GetByCodename(ctx context.Context, codename string) (*permission.Permission, error) {
	args := m.Called(ctx, codename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*permission.Permission), args.Error(1)
}

func (m *mockPermissionRepo) List(ctx context.Context) ([]*permission.Permission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*permission.Permission), args.Error(1)
}

func (m *mockPermissionRepo) Update(ctx context.Context, p *permission.Permission) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPermissionRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockRoleGrantRepo struct {
	mock.Mock
}

func (m *mockRoleGrantRepo) Upsert(ctx context.Context, g *permission.RoleGrant) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *mockRoleGrantRepo) GetByID(ctx context.Context, id uint) (*permission.RoleGrant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*permission.RoleGrant), args.Error(1)
}

func (m *mockRoleGrantRepo) List(ctx context.Context, roleID *uint) ([]*permission.RoleGrant, error) {
	args := m.Called(ctx, roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*permission.RoleGrant), args.Error(1)
}

func (m *mockRoleGrantRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRoleGrantRepo) FindForRole(ctx context.Context, roleID, permissionID uint) (*permission.RoleGrant, error) {
	args := m.Called(ctx, roleID, permissionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*permission.RoleGrant), args.Error(1)
}

func (m *mockRoleGrantRepo) ListCodenamesForRole(ctx context.Context, roleID uint) ([]permission.CodenameGrant, error) {
	args := m.Called(ctx, roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]permission.CodenameGrant), args.Error(1)
}

type mockOverrideRepo struct {
	mock.Mock
}

func (m *mockOverrideRepo) Upsert(ctx context.Context, o *permission.UserOverride) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *mockOverrideRepo) GetByID(ctx context.Context, id uint) (*permission.UserOverride, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*permission.UserOverride), args.Error(1)
}

func (m *mockOverrideRepo) List(ctx context.Context, userID *uint) ([]*permission.UserOverride, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*permission.UserOverride), args.Error(1)
}

func (m *mockOverrideRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockOverrideRepo) FindForUser(ctx context.Context, userID, permissionID uint) (*permission.UserOverride, error) {
	args := m.Called(ctx, userID, permissionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*permission.UserOverride), args.Error(1)
}

func (m *mockOverrideRepo) ListCodenamesForUser(ctx context.Context, userID uint) ([]permission.CodenameGrant, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]permission.CodenameGrant), args.Error(1)
}

type mockDeptGrantRepo struct {
	mock.Mock
}

func (m *mockDeptGrantRepo) Create(ctx context.Context, g *permission.DepartmentGrant) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *mockDeptGrantRepo) GetByID(ctx context.Context, id uint) (*permission.DepartmentGrant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*permission.DepartmentGrant), args.Error(1)
}

func (m *mockDeptGrantRepo) List(ctx context.Context, departmentID *uint) ([]*permission.DepartmentGrant, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*permission.DepartmentGrant), args.Error(1)
}

func (m *mockDeptGrantRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockDeptGrantRepo) ExistsForDepartment(ctx context.Context, departmentID, permissionID uint) (bool, error) {
	args := m.Called(ctx, departmentID, permissionID)
	return args.Bool(0), args.Error(1)
}

func (m *mockDeptGrantRepo) ListCodenamesForDepartment(ctx context.Context, departmentID uint) ([]string, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func uintPtr(v uint) *uint { return &v }

func boolPtr(v bool) *bool { return &v }

func newTestUser(id uint, roleID, deptID *uint) *user.User {
	u, err := user.ReconstructUser(user.UserData{
		ID:           id,
		Username:     "alice",
		Email:        "alice@example.com",
		RoleID:       roleID,
		DepartmentID: deptID,
		Active:       true,
	})
	if err != nil {
		panic(err)
	}
	return u
}

func newTestPermission(id uint, codename string) *permission.Permission {
	p, err := permission.ReconstructPermission(id, codename, codename, "", time.Time{}, time.Time{})
	if err != nil {
		panic(err)
	}
	return p
}
