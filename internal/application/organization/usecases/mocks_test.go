package usecases

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/portalkit/portalkit/internal/domain/organization"
)

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

func dept(id uint, name string, active bool) *organization.Department {
	return organization.ReconstructDepartment(id, name, active, time.Time{}, time.Time{})
}

func role(id uint, name string, deptID uint, active bool) *organization.Role {
	return organization.ReconstructRole(id, name, deptID, active, time.Time{}, time.Time{})
}

func uintPtr(v uint) *uint { return &v }
