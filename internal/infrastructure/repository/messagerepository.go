package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/portalkit/portalkit/internal/domain/message"
	"github.com/portalkit/portalkit/internal/infrastructure/persistence/models"
	"github.com/portalkit/portalkit/internal/shared/db"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

// MessageRepository reads the three message tables, each with its own
// column names.
type MessageRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewMessageRepository(db *gorm.DB, logger logger.Interface) *MessageRepository {
	return &MessageRepository{db: db, logger: logger}
}

func (r *MessageRepository) ListAll(ctx context.Context) ([]message.Entry, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var errs []models.UserErrorModel
	var vals []models.UserValidationModel
	var infos []models.UserInformationModel

	if err := tx.Find(&errs).Error; err != nil {
		r.logger.Errorw("failed to read user_error", "error", err)
		return nil, fmt.Errorf("failed to read error messages: %w", err)
	}
	if err := tx.Find(&vals).Error; err != nil {
		r.logger.Errorw("failed to read user_validation", "error", err)
		return nil, fmt.Errorf("failed to read validation messages: %w", err)
	}
	if err := tx.Find(&infos).Error; err != nil {
		r.logger.Errorw("failed to read user_information", "error", err)
		return nil, fmt.Errorf("failed to read information messages: %w", err)
	}

	out := make([]message.Entry, 0, len(errs)+len(vals)+len(infos))
	for _, m := range errs {
		out = append(out, message.Entry{Kind: message.KindError, Code: m.ErrorCode, Text: m.ErrorMessage})
	}
	for _, m := range vals {
		out = append(out, message.Entry{Kind: message.KindValidation, Code: m.ValidationCode, Text: m.ValidationMessage})
	}
	for _, m := range infos {
		out = append(out, message.Entry{Kind: message.KindInformation, Code: m.InformationCode, Text: m.InformationText})
	}
	return out, nil
}

func (r *MessageRepository) Find(ctx context.Context, kind message.Kind, code string) (*message.Entry, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var text string
	var err error
	switch kind {
	case message.KindError:
		var m models.UserErrorModel
		err = tx.Where("error_code = ?", code).First(&m).Error
		text = m.ErrorMessage
	case message.KindValidation:
		var m models.UserValidationModel
		err = tx.Where("validation_code = ?", code).First(&m).Error
		text = m.ValidationMessage
	case message.KindInformation:
		var m models.UserInformationModel
		err = tx.Where("information_code = ?", code).First(&m).Error
		text = m.InformationText
	default:
		return nil, nil
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to find message", "kind", kind, "code", code, "error", err)
		return nil, fmt.Errorf("failed to find message: %w", err)
	}
	return &message.Entry{Kind: kind, Code: code, Text: text}, nil
}
