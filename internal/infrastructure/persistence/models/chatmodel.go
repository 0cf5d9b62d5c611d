package models

import (
	"time"

	"github.com/portalkit/portalkit/internal/shared/constants"
)

type ChatSessionModel struct {
	ID        uint   `gorm:"primarykey"`
	UserID    uint   `gorm:"not null;index"`
	Title     string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time `gorm:"index"`
}

func (ChatSessionModel) TableName() string {
	return constants.TableChatSessions
}

type ChatMessageModel struct {
	ID        uint   `gorm:"primarykey"`
	SessionID uint   `gorm:"not null;index"`
	UserID    uint   `gorm:"not null;index"`
	Role      string `gorm:"not null;size:20"`
	Text      string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

func (ChatMessageModel) TableName() string {
	return constants.TableChatMessages
}

// ChatSessionWithCount is a session row joined with its message count.
type ChatSessionWithCount struct {
	ChatSessionModel
	MessageCount int64
}
