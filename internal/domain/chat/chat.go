package chat

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const DefaultSessionTitle = "New chat"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

var (
	ErrSessionNotFound     = errors.New("chat session not found")
	ErrPromptRequired      = errors.New("prompt is required")
	ErrSessionLimitReached = errors.New("session message limit reached")
	ErrUserLimitReached    = errors.New("user message limit reached")
	ErrProviderFailed      = errors.New("AI backend error")
)

// Session is a conversation owned by one user.
type Session struct {
	id           uint
	userID       uint
	title        string
	createdAt    time.Time
	updatedAt    time.Time
	messageCount int64
}

func NewSession(userID uint, title string) *Session {
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultSessionTitle
	}
	now := time.Now().UTC()
	return &Session{userID: userID, title: title, createdAt: now, updatedAt: now}
}

func ReconstructSession(id, userID uint, title string, createdAt, updatedAt time.Time, messageCount int64) *Session {
	return &Session{
		id:           id,
		userID:       userID,
		title:        title,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		messageCount: messageCount,
	}
}

func (s *Session) ID() uint             { return s.id }
func (s *Session) UserID() uint         { return s.userID }
func (s *Session) Title() string        { return s.title }
func (s *Session) CreatedAt() time.Time { return s.createdAt }
func (s *Session) UpdatedAt() time.Time { return s.updatedAt }
func (s *Session) MessageCount() int64  { return s.messageCount }

func (s *Session) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("session ID is already set")
	}
	s.id = id
	return nil
}

// Message is one turn of a session.
type Message struct {
	id        uint
	sessionID uint
	userID    uint
	role      Role
	text      string
	createdAt time.Time
}

func NewMessage(sessionID, userID uint, role Role, text string) *Message {
	return &Message{
		sessionID: sessionID,
		userID:    userID,
		role:      role,
		text:      text,
		createdAt: time.Now().UTC(),
	}
}

func ReconstructMessage(id, sessionID, userID uint, role Role, text string, createdAt time.Time) *Message {
	return &Message{id: id, sessionID: sessionID, userID: userID, role: role, text: text, createdAt: createdAt}
}

func (m *Message) ID() uint             { return m.id }
func (m *Message) SessionID() uint      { return m.sessionID }
func (m *Message) UserID() uint         { return m.userID }
func (m *Message) Role() Role           { return m.role }
func (m *Message) Text() string         { return m.text }
func (m *Message) CreatedAt() time.Time { return m.createdAt }

func (m *Message) SetID(id uint) {
	m.id = id
}

// Limits caps stored messages. A zero limit disables the check.
type Limits struct {
	PerSession int64
	PerUser    int64
}

// Check applies the per-user limit before the per-session one.
func (l Limits) Check(userTotal, sessionTotal int64) error {
	if l.PerUser > 0 && userTotal >= l.PerUser {
		return ErrUserLimitReached
	}
	if l.PerSession > 0 && sessionTotal >= l.PerSession {
		return ErrSessionLimitReached
	}
	return nil
}
