package usecases

import (
	"context"
	"fmt"

	"github.com/portalkit/portalkit/internal/application/address/dto"
	"github.com/portalkit/portalkit/internal/domain/address"
	"github.com/portalkit/portalkit/internal/domain/user"
	"github.com/portalkit/portalkit/internal/shared/errors"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

type UserReader interface {
	GetByID(ctx context.Context, id uint) (*user.User, error)
}

// ManageAddressesUseCase scopes every operation to the actor's own
// addresses unless the actor may manage other accounts.
type ManageAddressesUseCase struct {
	addressRepo address.Repository
	users       UserReader
	logger      logger.Interface
}

func NewManageAddressesUseCase(addressRepo address.Repository, users UserReader, logger logger.Interface) *ManageAddressesUseCase {
	return &ManageAddressesUseCase{addressRepo: addressRepo, users: users, logger: logger}
}

// List returns the actor's addresses, or forUser's when the actor manages
// other accounts.
func (uc *ManageAddressesUseCase) List(ctx context.Context, actor dto.Actor, forUser *uint) ([]*dto.AddressDTO, error) {
	owner := uc.owner(actor, forUser)
	addresses, err := uc.addressRepo.ListByUser(ctx, owner)
	if err != nil {
		uc.logger.Errorw("failed to list addresses", "user_id", owner, "error", err)
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	return dto.ToAddressDTOs(addresses), nil
}

func (uc *ManageAddressesUseCase) Create(ctx context.Context, actor dto.Actor, req dto.AddressRequest) (*dto.AddressDTO, error) {
	owner := uc.owner(actor, req.User)
	if owner != actor.UserID {
		u, err := uc.users.GetByID(ctx, owner)
		if err != nil {
			return nil, fmt.Errorf("failed to get user: %w", err)
		}
		if u == nil {
			return nil, errors.NewValidationError(user.ErrUserNotFound.Error(), "user")
		}
	}

	a, err := address.NewAddress(owner, req.Fields(nil))
	if err != nil {
		return nil, errors.NewValidationError(err.Error(), "user")
	}
	if err := uc.addressRepo.Create(ctx, a); err != nil {
		uc.logger.Errorw("failed to create address", "user_id", owner, "error", err)
		return nil, fmt.Errorf("failed to create address: %w", err)
	}

	uc.logger.Infow("address created", "address_id", a.ID(), "user_id", owner, "actor_id", actor.UserID)
	return dto.ToAddressDTO(a), nil
}

func (uc *ManageAddressesUseCase) Get(ctx context.Context, actor dto.Actor, id uint) (*dto.AddressDTO, error) {
	a, err := uc.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return dto.ToAddressDTO(a), nil
}

// Update replaces every line, or with partial set only the lines present in
// req.
func (uc *ManageAddressesUseCase) Update(ctx context.Context, actor dto.Actor, id uint, req dto.AddressRequest, partial bool) (*dto.AddressDTO, error) {
	a, err := uc.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	var base *address.Fields
	if partial {
		current := a.Fields()
		base = &current
	}
	a.Update(req.Fields(base))

	if err := uc.addressRepo.Update(ctx, a); err != nil {
		uc.logger.Errorw("failed to update address", "address_id", id, "error", err)
		return nil, fmt.Errorf("failed to update address: %w", err)
	}
	return dto.ToAddressDTO(a), nil
}

func (uc *ManageAddressesUseCase) HasAddress(ctx context.Context, userID uint) (bool, error) {
	exists, err := uc.addressRepo.ExistsForUser(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check address: %w", err)
	}
	return exists, nil
}

func (uc *ManageAddressesUseCase) owner(actor dto.Actor, requested *uint) uint {
	if actor.ManageOthers && requested != nil && *requested != 0 {
		return *requested
	}
	return actor.UserID
}

// load hides addresses the actor may not see behind a not-found error.
func (uc *ManageAddressesUseCase) load(ctx context.Context, actor dto.Actor, id uint) (*address.Address, error) {
	a, err := uc.addressRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get address: %w", err)
	}
	if a == nil || (!actor.ManageOthers && !a.OwnedBy(actor.UserID)) {
		return nil, errors.NewNotFoundError("Not found")
	}
	return a, nil
}
