package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	subscriptionDTO "github.com/portalkit/portalkit/internal/application/subscription/dto"
	"github.com/portalkit/portalkit/internal/application/user/dto"
	"github.com/portalkit/portalkit/internal/domain/user"
	"github.com/portalkit/portalkit/internal/shared/constants"
	sharedErrors "github.com/portalkit/portalkit/internal/shared/errors"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

func TestChangePasswordUseCase_CheckOrder(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.ChangePasswordRequest
		wantCode string
	}{
		{
			name:     "wrong old password wins over everything",
			req:      dto.ChangePasswordRequest{OldPassword: "wrong", NewPassword: "a", ConfirmPassword: "b"},
			wantCode: constants.MsgWrongOldPassword,
		},
		{
			name:     "mismatch before length",
			req:      dto.ChangePasswordRequest{OldPassword: "oldpassword", NewPassword: "a", ConfirmPassword: "b"},
			wantCode: constants.MsgPasswordMismatch,
		},
		{
			name:     "too short",
			req:      dto.ChangePasswordRequest{OldPassword: "oldpassword", NewPassword: "short", ConfirmPassword: "short"},
			wantCode: constants.MsgPasswordTooShort,
		},
		{
			name:     "same as old",
			req:      dto.ChangePasswordRequest{OldPassword: "oldpassword", NewPassword: "oldpassword", ConfirmPassword: "oldpassword"},
			wantCode: constants.MsgPasswordSameAsOld,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(mockUserRepo)
			users.On("GetByID", mock.Anything, uint(3)).Return(testUser(3, "oldpassword", true, nil, nil), nil)

			uc := NewChangePasswordUseCase(users, plainHasher{}, user.DefaultPasswordPolicy(), logger.NewNop())
			err := uc.Execute(context.Background(), 3, tt.req)

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, sharedErrors.GetAppError(err).MessageCode)
			users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestChangePasswordUseCase_Success(t *testing.T) {
	users := new(mockUserRepo)
	account := testUser(3, "oldpassword", true, nil, nil)
	users.On("GetByID", mock.Anything, uint(3)).Return(account, nil)
	users.On("Update", mock.Anything, account).Return(nil)

	uc := NewChangePasswordUseCase(users, plainHasher{}, user.DefaultPasswordPolicy(), logger.NewNop())
	err := uc.Execute(context.Background(), 3, dto.ChangePasswordRequest{
		OldPassword:     "oldpassword",
		NewPassword:     "brand-new-pass",
		ConfirmPassword: "brand-new-pass",
	})

	require.NoError(t, err)
	assert.Equal(t, "hashed:brand-new-pass", account.PasswordHash())
}

func TestUpdateProfileUseCase_EmailTaken(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByID", mock.Anything, uint(3)).Return(testUser(3, "x", true, nil, nil), nil)
	users.On("ExistsByEmail", mock.Anything, "taken@example.com", uint(3)).Return(true, nil)

	email := "taken@example.com"
	uc := NewUpdateProfileUseCase(users, logger.NewNop())
	err := uc.Execute(context.Background(), 3, dto.UpdateProfileRequest{FirstName: "A", Email: &email})

	require.Error(t, err)
	assert.Equal(t, constants.MsgEmailExists, sharedErrors.GetAppError(err).MessageCode)
}

func TestGetProfileUseCase(t *testing.T) {
	users := new(mockUserRepo)
	depts := new(mockDeptRepo)
	roles := new(mockRoleRepo)
	perms := new(mockPermissionLister)
	claims := new(mockClaimer)

	account := testUser(3, "x", true, uintPtr(1), uintPtr(5))
	users.On("GetByID", mock.Anything, uint(3)).Return(account, nil)
	depts.On("GetByID", mock.Anything, uint(1)).Return(testDept(1, "General", true), nil)
	roles.On("GetByID", mock.Anything, uint(5)).Return(testRole(5, "User", 1, true), nil)
	perms.On("ResolveAll", mock.Anything, account.Subject()).Return([]string{"reports.view"}, nil)
	claims.On("CurrentSubscription", mock.Anything, uint(3)).Return(&subscriptionDTO.SubscriptionClaim{Slug: "free"}, nil)

	uc := NewGetProfileUseCase(users, depts, roles, perms, staticEnforcer{}, claims, logger.NewNop())
	profile, err := uc.Execute(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, "General", *profile.DepartmentName)
	assert.Equal(t, "User", *profile.RoleName)
	assert.False(t, profile.IsAdmin)
	assert.Equal(t, []string{"reports.view"}, profile.Permissions)
	assert.Equal(t, "free", profile.Subscription.Slug)
	assert.Equal(t, "2026-01-02T03:04:05Z", *profile.DateJoined)
}

func TestGetProfileUseCase_PartFails(t *testing.T) {
	users := new(mockUserRepo)
	perms := new(mockPermissionLister)
	claims := new(mockClaimer)

	account := testUser(3, "x", true, nil, nil)
	users.On("GetByID", mock.Anything, uint(3)).Return(account, nil)
	perms.On("ResolveAll", mock.Anything, account.Subject()).Return(nil, errBoom)
	claims.On("CurrentSubscription", mock.Anything, uint(3)).Return(&subscriptionDTO.SubscriptionClaim{}, nil)

	uc := NewGetProfileUseCase(users, new(mockDeptRepo), new(mockRoleRepo), perms, staticEnforcer{}, claims, logger.NewNop())
	_, err := uc.Execute(context.Background(), 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)
}

func TestManageUsersUseCase(t *testing.T) {
	t.Run("toggle unknown user", func(t *testing.T) {
		users := new(mockUserRepo)
		users.On("GetByID", mock.Anything, uint(99)).Return(nil, nil)
		uc := NewManageUsersUseCase(users, new(mockDeptRepo), new(mockRoleRepo), plainHasher{}, user.DefaultPasswordPolicy(), logger.NewNop())

		_, err := uc.ToggleActive(context.Background(), 99)

		require.Error(t, err)
		assert.True(t, sharedErrors.IsNotFoundError(err))
		assert.Equal(t, constants.MsgNotFound, sharedErrors.GetAppError(err).MessageCode)
	})

	t.Run("toggle flips flag", func(t *testing.T) {
		users := new(mockUserRepo)
		account := testUser(4, "x", true, nil, nil)
		users.On("GetByID", mock.Anything, uint(4)).Return(account, nil)
		users.On("Update", mock.Anything, account).Return(nil)
		uc := NewManageUsersUseCase(users, new(mockDeptRepo), new(mockRoleRepo), plainHasher{}, user.DefaultPasswordPolicy(), logger.NewNop())

		active, err := uc.ToggleActive(context.Background(), 4)

		require.NoError(t, err)
		assert.False(t, active)
	})

	t.Run("stats", func(t *testing.T) {
		users := new(mockUserRepo)
		users.On("Stats", mock.Anything).Return(&user.Stats{Total: 10, Active: 7, Inactive: 3}, nil)
		uc := NewManageUsersUseCase(users, new(mockDeptRepo), new(mockRoleRepo), plainHasher{}, user.DefaultPasswordPolicy(), logger.NewNop())

		stats, err := uc.Stats(context.Background())

		require.NoError(t, err)
		assert.Equal(t, &dto.StatsDTO{TotalUsers: 10, ActiveUsers: 7, HoldUsers: 3}, stats)
	})

	t.Run("update moves department and clears role", func(t *testing.T) {
		users := new(mockUserRepo)
		depts := new(mockDeptRepo)
		account := testUser(4, "x", true, uintPtr(1), uintPtr(5))
		users.On("GetByID", mock.Anything, uint(4)).Return(account, nil)
		depts.On("GetByID", mock.Anything, uint(2)).Return(testDept(2, "Ops", true), nil)
		users.On("Update", mock.Anything, account).Return(nil)
		uc := NewManageUsersUseCase(users, depts, new(mockRoleRepo), plainHasher{}, user.DefaultPasswordPolicy(), logger.NewNop())

		result, err := uc.Update(context.Background(), 4, dto.UpdateUserRequest{DepartmentID: uintPtr(2)})

		require.NoError(t, err)
		assert.Equal(t, uintPtr(2), result.DepartmentID)
		assert.Nil(t, result.RoleID)
	})
}
