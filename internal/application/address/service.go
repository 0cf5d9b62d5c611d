// Package address is the application service for user postal addresses.
package address

import (
	"context"

	"github.com/portalkit/portalkit/internal/application/address/dto"
	"github.com/portalkit/portalkit/internal/application/address/usecases"
	domainAddress "github.com/portalkit/portalkit/internal/domain/address"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

type ServiceDDD struct {
	manageUC *usecases.ManageAddressesUseCase
}

func NewServiceDDD(addressRepo domainAddress.Repository, users usecases.UserReader, logger logger.Interface) *ServiceDDD {
	return &ServiceDDD{manageUC: usecases.NewManageAddressesUseCase(addressRepo, users, logger)}
}

func (s *ServiceDDD) List(ctx context.Context, actor dto.Actor, forUser *uint) ([]*dto.AddressDTO, error) {
	return s.manageUC.List(ctx, actor, forUser)
}

func (s *ServiceDDD) Create(ctx context.Context, actor dto.Actor, req dto.AddressRequest) (*dto.AddressDTO, error) {
	return s.manageUC.Create(ctx, actor, req)
}

func (s *ServiceDDD) Get(ctx context.Context, actor dto.Actor, id uint) (*dto.AddressDTO, error) {
	return s.manageUC.Get(ctx, actor, id)
}

func (s *ServiceDDD) Update(ctx context.Context, actor dto.Actor, id uint, req dto.AddressRequest, partial bool) (*dto.AddressDTO, error) {
	return s.manageUC.Update(ctx, actor, id, req, partial)
}

func (s *ServiceDDD) HasAddress(ctx context.Context, userID uint) (bool, error) {
	return s.manageUC.HasAddress(ctx, userID)
}
