package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/portalkit/portalkit/internal/domain/address"
	"github.com/portalkit/portalkit/internal/infrastructure/persistence/models"
	"github.com/portalkit/portalkit/internal/shared/db"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

type AddressRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewAddressRepository(db *gorm.DB, logger logger.Interface) *AddressRepository {
	return &AddressRepository{db: db, logger: logger}
}

func (r *AddressRepository) Create(ctx context.Context, a *address.Address) error {
	model := addressToModel(a)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create address", "user_id", model.UserID, "error", err)
		return fmt.Errorf("failed to create address: %w", err)
	}
	return a.SetID(model.ID)
}

func (r *AddressRepository) GetByID(ctx context.Context, id uint) (*address.Address, error) {
	var model models.AddressModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get address", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get address: %w", err)
	}
	return addressToEntity(&model), nil
}

func (r *AddressRepository) ListByUser(ctx context.Context, userID uint) ([]*address.Address, error) {
	var list []*models.AddressModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&list).Error
	if err != nil {
		r.logger.Errorw("failed to list addresses", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}

	out := make([]*address.Address, 0, len(list))
	for _, m := range list {
		out = append(out, addressToEntity(m))
	}
	return out, nil
}

func (r *AddressRepository) ExistsForUser(ctx context.Context, userID uint) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.AddressModel{}).
		Where("user_id = ?", userID).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check addresses: %w", err)
	}
	return count > 0, nil
}

func (r *AddressRepository) Update(ctx context.Context, a *address.Address) error {
	model := addressToModel(a)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.AddressModel{}).
		Where("id = ?", model.ID).
		Select("house_flat", "street", "landmark", "area", "district", "city", "state", "postal_code", "country").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update address", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update address: %w", result.Error)
	}
	return nil
}

func addressToModel(a *address.Address) *models.AddressModel {
	f := a.Fields()
	return &models.AddressModel{
		ID:         a.ID(),
		UserID:     a.UserID(),
		HouseFlat:  f.HouseFlat,
		Street:     f.Street,
		Landmark:   f.Landmark,
		Area:       f.Area,
		District:   f.District,
		City:       f.City,
		State:      f.State,
		PostalCode: f.PostalCode,
		Country:    f.Country,
		CreatedAt:  a.CreatedAt(),
	}
}

func addressToEntity(m *models.AddressModel) *address.Address {
	return address.ReconstructAddress(m.ID, m.UserID, address.Fields{
		HouseFlat:  m.HouseFlat,
		Street:     m.Street,
		Landmark:   m.Landmark,
		Area:       m.Area,
		District:   m.District,
		City:       m.City,
		State:      m.State,
		PostalCode: m.PostalCode,
		Country:    m.Country,
	}, m.CreatedAt)
}
