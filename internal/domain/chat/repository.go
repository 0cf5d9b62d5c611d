package chat

import (
	"context"
	"time"
)

type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	// GetForUser returns (nil, nil) unless the session exists and belongs to userID.
	GetForUser(ctx context.Context, id, userID uint) (*Session, error)
	// ListForUser returns sessions newest-updated first with message counts.
	ListForUser(ctx context.Context, userID uint, limit int) ([]*Session, error)
	Touch(ctx context.Context, id uint, at time.Time) error
	Delete(ctx context.Context, id uint) error
}

type MessageRepository interface {
	Create(ctx context.Context, message *Message) error
	// ListBySession returns messages oldest first.
	ListBySession(ctx context.Context, sessionID uint) ([]*Message, error)
	CountBySession(ctx context.Context, sessionID uint) (int64, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
}

// Provider turns a prompt into a reply.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
