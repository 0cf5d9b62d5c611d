package dto

import (
	"github.com/portalkit/portalkit/internal/domain/chat"
	"github.com/portalkit/portalkit/internal/shared/biztime"
	"github.com/portalkit/portalkit/internal/shared/mapper"
)

type CreateSessionRequest struct {
	Title string `json:"title"`
}

// SendMessageRequest accepts the prompt under either key.
type SendMessageRequest struct {
	Prompt string `json:"prompt"`
	Text   string `json:"text"`
}

func (r SendMessageRequest) Content() string {
	if r.Prompt != "" {
		return r.Prompt
	}
	return r.Text
}

type SessionDTO struct {
	ID           uint    `json:"id"`
	Title        string  `json:"title"`
	CreatedAt    *string `json:"created_at"`
	UpdatedAt    *string `json:"updated_at"`
	MessageCount int64   `json:"message_count"`
}

type MessageDTO struct {
	ID        uint    `json:"id"`
	Role      string  `json:"role"`
	Text      string  `json:"text"`
	CreatedAt *string `json:"created_at"`
}

type SendMessageResponse struct {
	Response string `json:"response"`
	HTML     string `json:"html"`
}

func ToSessionDTO(s *chat.Session) *SessionDTO {
	created, updated := s.CreatedAt(), s.UpdatedAt()
	return &SessionDTO{
		ID:           s.ID(),
		Title:        s.Title(),
		CreatedAt:    biztime.FormatISO(&created),
		UpdatedAt:    biztime.FormatISO(&updated),
		MessageCount: s.MessageCount(),
	}
}

func ToSessionDTOs(sessions []*chat.Session) []*SessionDTO {
	return mapper.MapSlicePtr(sessions, ToSessionDTO)
}

func ToMessageDTO(m *chat.Message) *MessageDTO {
	created := m.CreatedAt()
	return &MessageDTO{
		ID:        m.ID(),
		Role:      string(m.Role()),
		Text:      m.Text(),
		CreatedAt: biztime.FormatISO(&created),
	}
}

func ToMessageDTOs(messages []*chat.Message) []*MessageDTO {
	return mapper.MapSlicePtr(messages, ToMessageDTO)
}
