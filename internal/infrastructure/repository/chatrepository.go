package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/portalkit/portalkit/internal/domain/chat"
	"github.com/portalkit/portalkit/internal/infrastructure/persistence/models"
	"github.com/portalkit/portalkit/internal/shared/db"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

type ChatSessionRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewChatSessionRepository(db *gorm.DB, logger logger.Interface) *ChatSessionRepository {
	return &ChatSessionRepository{db: db, logger: logger}
}

func (r *ChatSessionRepository) Create(ctx context.Context, s *chat.Session) error {
	model := &models.ChatSessionModel{
		UserID:    s.UserID(),
		Title:     s.Title(),
		CreatedAt: s.CreatedAt(),
		UpdatedAt: s.UpdatedAt(),
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create chat session", "user_id", s.UserID(), "error", err)
		return fmt.Errorf("failed to create chat session: %w", err)
	}
	return s.SetID(model.ID)
}

func (r *ChatSessionRepository) GetForUser(ctx context.Context, id, userID uint) (*chat.Session, error) {
	var model models.ChatSessionModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("id = ? AND user_id = ?", id, userID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get chat session", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get chat session: %w", err)
	}
	return chat.ReconstructSession(model.ID, model.UserID, model.Title, model.CreatedAt, model.UpdatedAt, 0), nil
}

func (r *ChatSessionRepository) ListForUser(ctx context.Context, userID uint, limit int) ([]*chat.Session, error) {
	sessions := models.ChatSessionModel{}.TableName()
	messages := models.ChatMessageModel{}.TableName()

	var rows []models.ChatSessionWithCount
	query := db.GetTxFromContext(ctx, r.db).
		Table(sessions+" AS s").
		Select("s.id, s.user_id, s.title, s.created_at, s.updated_at, COUNT(m.id) AS message_count").
		Joins("LEFT JOIN "+messages+" AS m ON m.session_id = s.id").
		Where("s.user_id = ?", userID).
		Group("s.id, s.user_id, s.title, s.created_at, s.updated_at").
		Order("s.updated_at DESC, s.id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Scan(&rows).Error; err != nil {
		r.logger.Errorw("failed to list chat sessions", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list chat sessions: %w", err)
	}

	out := make([]*chat.Session, 0, len(rows))
	for _, row := range rows {
		out = append(out, chat.ReconstructSession(row.ID, row.UserID, row.Title, row.CreatedAt, row.UpdatedAt, row.MessageCount))
	}
	return out, nil
}

func (r *ChatSessionRepository) Touch(ctx context.Context, id uint, at time.Time) error {
	err := db.GetTxFromContext(ctx, r.db).Model(&models.ChatSessionModel{}).
		Where("id = ?", id).
		UpdateColumn("updated_at", at).Error
	if err != nil {
		return fmt.Errorf("failed to touch chat session: %w", err)
	}
	return nil
}

// Delete removes the session and its messages.
func (r *ChatSessionRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("session_id = ?", id).Delete(&models.ChatMessageModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete chat messages", "session_id", id, "error", err)
		return fmt.Errorf("failed to delete chat messages: %w", err)
	}
	result := tx.Delete(&models.ChatSessionModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete chat session", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete chat session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return chat.ErrSessionNotFound
	}
	return nil
}

type ChatMessageRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewChatMessageRepository(db *gorm.DB, logger logger.Interface) *ChatMessageRepository {
	return &ChatMessageRepository{db: db, logger: logger}
}

func (r *ChatMessageRepository) Create(ctx context.Context, m *chat.Message) error {
	model := &models.ChatMessageModel{
		SessionID: m.SessionID(),
		UserID:    m.UserID(),
		Role:      string(m.Role()),
		Text:      m.Text(),
		CreatedAt: m.CreatedAt(),
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to store chat message", "session_id", m.SessionID(), "error", err)
		return fmt.Errorf("failed to store chat message: %w", err)
	}
	m.SetID(model.ID)
	return nil
}

func (r *ChatMessageRepository) ListBySession(ctx context.Context, sessionID uint) ([]*chat.Message, error) {
	var list []*models.ChatMessageModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("session_id = ?", sessionID).
		Order("created_at ASC, id ASC").
		Find(&list).Error
	if err != nil {
		r.logger.Errorw("failed to list chat messages", "session_id", sessionID, "error", err)
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}

	out := make([]*chat.Message, 0, len(list))
	for _, m := range list {
		out = append(out, chat.ReconstructMessage(m.ID, m.SessionID, m.UserID, chat.Role(m.Role), m.Text, m.CreatedAt))
	}
	return out, nil
}

func (r *ChatMessageRepository) CountBySession(ctx context.Context, sessionID uint) (int64, error) {
	return r.count(ctx, "session_id = ?", sessionID)
}

func (r *ChatMessageRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	return r.count(ctx, "user_id = ?", userID)
}

func (r *ChatMessageRepository) count(ctx context.Context, query string, arg uint) (int64, error) {
	var n int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.ChatMessageModel{}).Where(query, arg).Count(&n).Error; err != nil {
		r.logger.Errorw("failed to count chat messages", "query", query, "error", err)
		return 0, fmt.Errorf("failed to count chat messages: %w", err)
	}
	return n, nil
}
