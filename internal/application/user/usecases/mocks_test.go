package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/stretchr/testify/mock"

	subscriptionDTO "github.com/portalkit/portalkit/internal/application/subscription/dto"
	"github.com/portalkit/portalkit/internal/domain/organization"
	"github.com/portalkit/portalkit/internal/domain/permission"
	"github.com/portalkit/portalkit/internal/domain/user"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepo) GetByUsernameAndEmail(ctx context.Context, username, email string) (*user.User, error) {
	args := m.Called(ctx, username, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByUsername(ctx context.Context, username string, excludeID uint) (bool, error) {
	args := m.Called(ctx, username, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockUserRepo) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*user.User), args.Get(1).(int64), args.Error(2)
}

func (m *mockUserRepo) Stats(ctx context.Context) (*user.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Stats), args.Error(1)
}

type mockDeptRepo struct {
	mock.Mock
}

func (m *mockDeptRepo) Create(ctx context.Context, d *organization.Department) error {
	return m.Called(ctx, d).Error(0)
}

func (m *mockDeptRepo) GetByID(ctx context.Context, id uint) (*organization.Department, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organization.Department), args.Error(1)
}

func (m *mockDeptRepo) GetByName(ctx context.Context, name string) (*organization.Department, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organization.Department), args.Error(1)
}

func (m *mockDeptRepo) List(ctx context.Context) ([]*organization.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*organization.Department), args.Error(1)
}

func (m *mockDeptRepo) Update(ctx context.Context, d *organization.Department) error {
	return m.Called(ctx, d).Error(0)
}

func (m *mockDeptRepo) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockRoleRepo struct {
	mock.Mock
}

func (m *mockRoleRepo) Create(ctx context.Context, r *organization.Role) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockRoleRepo) GetByID(ctx context.Context, id uint) (*organization.Role, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organization.Role), args.Error(1)
}

func (m *mockRoleRepo) GetByName(ctx context.Context, name string, departmentID uint) (*organization.Role, error) {
	args := m.Called(ctx, name, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organization.Role), args.Error(1)
}

func (m *mockRoleRepo) List(ctx context.Context, departmentID *uint) ([]*organization.Role, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*organization.Role), args.Error(1)
}

func (m *mockRoleRepo) Update(ctx context.Context, r *organization.Role) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockRoleRepo) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

// plainHasher stores "hashed:" + password so tests can check what was set.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return user.ErrInvalidCredentials
	}
	return nil
}

type mockTokenIssuer struct {
	mock.Mock
}

func (m *mockTokenIssuer) Issue(userID uint, username string) (*TokenPair, error) {
	args := m.Called(userID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TokenPair), args.Error(1)
}

func (m *mockTokenIssuer) Refresh(refreshToken string) (string, uint, error) {
	args := m.Called(refreshToken)
	return args.String(0), args.Get(1).(uint), args.Error(2)
}

func (m *mockTokenIssuer) AccessTTL() time.Duration {
	return time.Hour
}

type mockPermissionLister struct {
	mock.Mock
}

func (m *mockPermissionLister) ResolveAll(ctx context.Context, subject permission.Subject) ([]string, error) {
	args := m.Called(ctx, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// staticEnforcer allows the users object for the listed role names.
type staticEnforcer struct {
	adminRoles map[string]bool
	err        error
}

func (e staticEnforcer) Enforce(p permission.Principal, object, action string) (bool, error) {
	if e.err != nil {
		return false, e.err
	}
	return p.Superuser || e.adminRoles[p.RoleName], nil
}

type mockClaimer struct {
	mock.Mock
}

func (m *mockClaimer) CurrentSubscription(ctx context.Context, userID uint) (*subscriptionDTO.SubscriptionClaim, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscriptionDTO.SubscriptionClaim), args.Error(1)
}

var errBoom = errors.New("boom")

func uintPtr(v uint) *uint { return &v }

func testUser(id uint, password string, active bool, deptID, roleID *uint) *user.User {
	u, err := user.ReconstructUser(user.UserData{
		ID:           id,
		Username:     "Alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed:" + password,
		DepartmentID: deptID,
		RoleID:       roleID,
		Active:       active,
		DateJoined:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	})
	if err != nil {
		panic(err)
	}
	return u
}

func testDept(id uint, name string, active bool) *organization.Department {
	return organization.ReconstructDepartment(id, name, active, time.Time{}, time.Time{})
}

func testRole(id uint, name string, deptID uint, active bool) *organization.Role {
	return organization.ReconstructRole(id, name, deptID, active, time.Time{}, time.Time{})
}
