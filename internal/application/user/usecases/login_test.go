package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/portalkit/portalkit/internal/application/user/dto"
	"github.com/portalkit/portalkit/internal/shared/biztime"
	sharedErrors "github.com/portalkit/portalkit/internal/shared/errors"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

func newLoginUseCase(users *mockUserRepo, roles *mockRoleRepo, tokens *mockTokenIssuer, perms *mockPermissionLister) *LoginUseCase {
	enforcer := staticEnforcer{adminRoles: map[string]bool{"Admin": true}}
	clock := biztime.FixedClock(time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC))
	return NewLoginUseCase(users, roles, plainHasher{}, tokens, perms, enforcer, clock, logger.NewNop())
}

func TestLoginUseCase_Success(t *testing.T) {
	users := new(mockUserRepo)
	roles := new(mockRoleRepo)
	tokens := new(mockTokenIssuer)
	perms := new(mockPermissionLister)

	account := testUser(3, "hunter22", true, uintPtr(1), uintPtr(5))
	users.On("GetByUsername", mock.Anything, "alice").Return(account, nil)
	users.On("Update", mock.Anything, account).Return(nil)
	tokens.On("Issue", uint(3), "Alice").Return(&TokenPair{
		AccessToken:  "access",
		RefreshToken: "refresh",
		AccessTTL:    time.Hour,
		RefreshTTL:   7 * 24 * time.Hour,
	}, nil)
	perms.On("ResolveAll", mock.Anything, account.Subject()).Return([]string{"reports.view", "users.edit"}, nil)
	roles.On("GetByID", mock.Anything, uint(5)).Return(testRole(5, "Admin", 1, true), nil)

	uc := newLoginUseCase(users, roles, tokens, perms)
	result, err := uc.Execute(context.Background(), dto.LoginRequest{Username: "alice", Password: "hunter22"})

	require.NoError(t, err)
	assert.Equal(t, "Alice", result.Session.Username)
	assert.Equal(t, []string{"reports.view", "users.edit"}, result.Session.Permissions)
	require.NotNil(t, result.Session.RoleName)
	assert.Equal(t, "Admin", *result.Session.RoleName)
	assert.True(t, result.Session.IsAdmin)
	assert.Equal(t, 3600, result.Tokens.AccessMaxAge)
	assert.Equal(t, "refresh", result.Tokens.RefreshToken)
	require.NotNil(t, account.LastLogin())
	assert.Equal(t, 2026, account.LastLogin().Year())
}

func TestLoginUseCase_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name     string
		password string
		account  bool
		active   bool
	}{
		{name: "unknown user", password: "hunter22", account: false},
		{name: "wrong password", password: "nope", account: true, active: true},
		{name: "inactive", password: "hunter22", account: true, active: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(mockUserRepo)
			tokens := new(mockTokenIssuer)
			if tt.account {
				users.On("GetByUsername", mock.Anything, "alice").Return(testUser(3, "hunter22", tt.active, nil, nil), nil)
			} else {
				users.On("GetByUsername", mock.Anything, "alice").Return(nil, nil)
			}

			uc := newLoginUseCase(users, new(mockRoleRepo), tokens, new(mockPermissionLister))
			_, err := uc.Execute(context.Background(), dto.LoginRequest{Username: "alice", Password: tt.password})

			require.Error(t, err)
			appErr := sharedErrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, 401, appErr.Code)
			assert.Equal(t, "EL001", appErr.MessageCode)
			tokens.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
		})
	}
}

func TestRefreshTokenUseCase(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		uc := NewRefreshTokenUseCase(new(mockTokenIssuer), new(mockUserRepo), logger.NewNop())
		_, err := uc.Execute(context.Background(), " ")
		require.Error(t, err)
		assert.Equal(t, "refresh_token_missing", sharedErrors.GetAppError(err).Message)
	})

	t.Run("invalid", func(t *testing.T) {
		tokens := new(mockTokenIssuer)
		tokens.On("Refresh", "bad").Return("", uint(0), errBoom)
		uc := NewRefreshTokenUseCase(tokens, new(mockUserRepo), logger.NewNop())
		_, err := uc.Execute(context.Background(), "bad")
		require.Error(t, err)
		appErr := sharedErrors.GetAppError(err)
		assert.Equal(t, 401, appErr.Code)
		assert.Equal(t, "invalid_refresh", appErr.Message)
	})

	t.Run("deactivated user", func(t *testing.T) {
		tokens := new(mockTokenIssuer)
		users := new(mockUserRepo)
		tokens.On("Refresh", "good").Return("new-access", uint(3), nil)
		users.On("GetByID", mock.Anything, uint(3)).Return(testUser(3, "x", false, nil, nil), nil)
		uc := NewRefreshTokenUseCase(tokens, users, logger.NewNop())
		_, err := uc.Execute(context.Background(), "good")
		require.Error(t, err)
	})

	t.Run("success", func(t *testing.T) {
		tokens := new(mockTokenIssuer)
		users := new(mockUserRepo)
		tokens.On("Refresh", "good").Return("new-access", uint(3), nil)
		users.On("GetByID", mock.Anything, uint(3)).Return(testUser(3, "x", true, nil, nil), nil)
		uc := NewRefreshTokenUseCase(tokens, users, logger.NewNop())
		result, err := uc.Execute(context.Background(), "good")
		require.NoError(t, err)
		assert.Equal(t, "new-access", result.AccessToken)
		assert.Equal(t, 3600, result.AccessMaxAge)
	})
}
