package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/portalkit/portalkit/internal/domain/permission"
	apperrors "github.com/portalkit/portalkit/internal/shared/errors"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

func TestCheckPermissionUseCase_Execute(t *testing.T) {
	tests := []struct {
		name     string
		decision permission.Decision
	}{
		{name: "user override deny", decision: permission.Decision{Reason: permission.ReasonUserOverrideDeny}},
		{name: "role allowed", decision: permission.Decision{Allowed: true, Reason: permission.ReasonRoleAllowed}},
		{name: "unknown codename", decision: permission.Decision{Reason: permission.ReasonInvalidPermission}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(mockUserReader)
			resolver := new(mockResolver)
			recorder := new(mockRecorder)

			u := newTestUser(7, uintPtr(2), uintPtr(1))
			users.On("GetByID", mock.Anything, uint(7)).Return(u, nil)
			resolver.On("Resolve", mock.Anything, u.Subject(), "edit_user").Return(tt.decision, nil)
			recorder.On("RecordDecision", string(tt.decision.Reason), tt.decision.Allowed).Return()

			uc := NewCheckPermissionUseCase(users, resolver, recorder, logger.NewNop())
			result, err := uc.Execute(context.Background(), 7, "edit_user")

			require.NoError(t, err)
			assert.Equal(t, tt.decision.Allowed, result.Has)
			assert.Equal(t, string(tt.decision.Reason), result.Reason)
			recorder.AssertExpectations(t)
		})
	}
}

func TestCheckPermissionUseCase_Execute_UserMissing(t *testing.T) {
	users := new(mockUserReader)
	users.On("GetByID", mock.Anything, uint(9)).Return(nil, nil)

	uc := NewCheckPermissionUseCase(users, new(mockResolver), new(mockRecorder), logger.NewNop())
	_, err := uc.Execute(context.Background(), 9, "edit_user")

	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestCheckPermissionUseCase_Execute_StoreFailure(t *testing.T) {
	users := new(mockUserReader)
	resolver := new(mockResolver)
	storeErr := errors.New("connection refused")

	u := newTestUser(7, nil, nil)
	users.On("GetByID", mock.Anything, uint(7)).Return(u, nil)
	resolver.On("Resolve", mock.Anything, u.Subject(), "edit_user").Return(permission.Decision{}, storeErr)

	uc := NewCheckPermissionUseCase(users, resolver, new(mockRecorder), logger.NewNop())
	_, err := uc.Execute(context.Background(), 7, "edit_user")

	assert.ErrorIs(t, err, storeErr)
}

func TestEffectivePermissionsUseCase_Execute(t *testing.T) {
	resolver := new(mockResolver)
	subject := permission.Subject{UserID: 3}
	resolver.On("ResolveAll", mock.Anything, subject).Return([]string{"a", "b"}, nil)

	uc := NewEffectivePermissionsUseCase(resolver, logger.NewNop())
	got, err := uc.Execute(context.Background(), subject)

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
}
