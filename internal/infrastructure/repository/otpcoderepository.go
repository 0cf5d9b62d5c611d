package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/portalkit/portalkit/internal/domain/passwordreset"
	"github.com/portalkit/portalkit/internal/infrastructure/persistence/models"
	"github.com/portalkit/portalkit/internal/shared/db"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

type OTPCodeRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewOTPCodeRepository(db *gorm.DB, logger logger.Interface) *OTPCodeRepository {
	return &OTPCodeRepository{db: db, logger: logger}
}

func (r *OTPCodeRepository) Create(ctx context.Context, code *passwordreset.OTPCode) error {
	model := &models.OTPCodeModel{
		Email:      code.Email(),
		OTPCode:    code.Code(),
		ExpiryTime: code.ExpiresAt(),
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to store otp code", "error", err)
		return fmt.Errorf("failed to store otp code: %w", err)
	}
	code.SetID(model.ID)
	return nil
}

func (r *OTPCodeRepository) Find(ctx context.Context, email, code string) (*passwordreset.OTPCode, error) {
	var model models.OTPCodeModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("email = ? AND otp_code = ?", email, code).
		Order("id DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to find otp code", "error", err)
		return nil, fmt.Errorf("failed to find otp code: %w", err)
	}
	return passwordreset.ReconstructOTPCode(model.ID, model.Email, model.OTPCode, model.ExpiryTime), nil
}

func (r *OTPCodeRepository) Delete(ctx context.Context, id uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Delete(&models.OTPCodeModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete otp code: %w", err)
	}
	return nil
}

func (r *OTPCodeRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).Where("expiry_time < ?", now).Delete(&models.OTPCodeModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to purge expired otp codes", "error", result.Error)
		return 0, fmt.Errorf("failed to purge expired otp codes: %w", result.Error)
	}
	return result.RowsAffected, nil
}
