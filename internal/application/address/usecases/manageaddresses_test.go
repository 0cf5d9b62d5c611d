package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/portalkit/portalkit/internal/application/address/dto"
	"github.com/portalkit/portalkit/internal/domain/address"
	"github.com/portalkit/portalkit/internal/domain/user"
	sharedErrors "github.com/portalkit/portalkit/internal/shared/errors"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

type mockAddressRepo struct {
	mock.Mock
}

func (m *mockAddressRepo) Create(ctx context.Context, a *address.Address) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockAddressRepo) GetByID(ctx context.Context, id uint) (*address.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*address.Address), args.Error(1)
}

func (m *mockAddressRepo) ListByUser(ctx context.Context, userID uint) ([]*address.Address, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*address.Address), args.Error(1)
}

func (m *mockAddressRepo) ExistsForUser(ctx context.Context, userID uint) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockAddressRepo) Update(ctx context.Context, a *address.Address) error {
	return m.Called(ctx, a).Error(0)
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

func strPtr(s string) *string { return &s }

func uintPtr(v uint) *uint { return &v }

func existingAddress(id, owner uint) *address.Address {
	return address.ReconstructAddress(id, owner, address.Fields{
		City:    strPtr("Pune"),
		Street:  strPtr("MG Road"),
		Country: "India",
	}, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestManageAddresses_ListScope(t *testing.T) {
	tests := []struct {
		name      string
		actor     dto.Actor
		forUser   *uint
		wantOwner uint
	}{
		{name: "own", actor: dto.Actor{UserID: 3}, wantOwner: 3},
		{name: "user param ignored without policy", actor: dto.Actor{UserID: 3}, forUser: uintPtr(8), wantOwner: 3},
		{name: "staff views other user", actor: dto.Actor{UserID: 3, ManageOthers: true}, forUser: uintPtr(8), wantOwner: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockAddressRepo)
			repo.On("ListByUser", mock.Anything, tt.wantOwner).Return([]*address.Address{existingAddress(1, tt.wantOwner)}, nil)
			uc := NewManageAddressesUseCase(repo, new(mockUserReader), logger.NewNop())

			result, err := uc.List(context.Background(), tt.actor, tt.forUser)

			require.NoError(t, err)
			require.Len(t, result, 1)
			assert.Equal(t, tt.wantOwner, result[0].User)
		})
	}
}

func TestManageAddresses_CreateForOtherUser(t *testing.T) {
	repo := new(mockAddressRepo)
	users := new(mockUserReader)
	users.On("GetByID", mock.Anything, uint(8)).Return(nil, nil)
	uc := NewManageAddressesUseCase(repo, users, logger.NewNop())

	_, err := uc.Create(context.Background(), dto.Actor{UserID: 3, ManageOthers: true}, dto.AddressRequest{User: uintPtr(8)})

	require.Error(t, err)
	assert.True(t, sharedErrors.IsValidationError(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestManageAddresses_CreateDefaultsCountry(t *testing.T) {
	repo := new(mockAddressRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	uc := NewManageAddressesUseCase(repo, new(mockUserReader), logger.NewNop())

	result, err := uc.Create(context.Background(), dto.Actor{UserID: 3}, dto.AddressRequest{City: strPtr(" Pune ")})

	require.NoError(t, err)
	assert.Equal(t, uint(3), result.User)
	assert.Equal(t, "India", result.Country)
	assert.Equal(t, "Pune", *result.City)
}

func TestManageAddresses_ForeignAddressIsHidden(t *testing.T) {
	repo := new(mockAddressRepo)
	repo.On("GetByID", mock.Anything, uint(5)).Return(existingAddress(5, 8), nil)
	uc := NewManageAddressesUseCase(repo, new(mockUserReader), logger.NewNop())

	_, err := uc.Get(context.Background(), dto.Actor{UserID: 3}, 5)
	require.Error(t, err)
	assert.True(t, sharedErrors.IsNotFoundError(err))

	result, err := uc.Get(context.Background(), dto.Actor{UserID: 3, ManageOthers: true}, 5)
	require.NoError(t, err)
	assert.Equal(t, uint(8), result.User)
}

func TestManageAddresses_PartialUpdate(t *testing.T) {
	repo := new(mockAddressRepo)
	a := existingAddress(5, 3)
	repo.On("GetByID", mock.Anything, uint(5)).Return(a, nil)
	repo.On("Update", mock.Anything, a).Return(nil)
	uc := NewManageAddressesUseCase(repo, new(mockUserReader), logger.NewNop())

	result, err := uc.Update(context.Background(), dto.Actor{UserID: 3}, 5, dto.AddressRequest{State: strPtr("MH")}, true)
	require.NoError(t, err)
	assert.Equal(t, "Pune", *result.City)
	assert.Equal(t, "MH", *result.State)

	result, err = uc.Update(context.Background(), dto.Actor{UserID: 3}, 5, dto.AddressRequest{State: strPtr("KA")}, false)
	require.NoError(t, err)
	assert.Nil(t, result.City)
	assert.Equal(t, "India", result.Country)
}
