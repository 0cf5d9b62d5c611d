// Package chat is the application service for AI chat sessions.
package chat

import (
	"context"

	"github.com/portalkit/portalkit/internal/application/chat/dto"
	"github.com/portalkit/portalkit/internal/application/chat/usecases"
	domainChat "github.com/portalkit/portalkit/internal/domain/chat"
	"github.com/portalkit/portalkit/internal/shared/biztime"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

type Config struct {
	Limits           domainChat.Limits
	SessionListLimit int
}

type ServiceDDD struct {
	sessionsUC *usecases.ManageSessionsUseCase
	sendUC     *usecases.SendMessageUseCase
}

func NewServiceDDD(
	sessionRepo domainChat.SessionRepository,
	messageRepo domainChat.MessageRepository,
	provider domainChat.Provider,
	renderer usecases.Renderer,
	recorder usecases.ReplyRecorder,
	cfg Config,
	logger logger.Interface,
) *ServiceDDD {
	return &ServiceDDD{
		sessionsUC: usecases.NewManageSessionsUseCase(sessionRepo, messageRepo, cfg.SessionListLimit, logger),
		sendUC: usecases.NewSendMessageUseCase(
			sessionRepo, messageRepo, provider, renderer, cfg.Limits, recorder, biztime.SystemClock, logger,
		),
	}
}

func (s *ServiceDDD) ListSessions(ctx context.Context, userID uint) ([]*dto.SessionDTO, error) {
	return s.sessionsUC.List(ctx, userID)
}

func (s *ServiceDDD) CreateSession(ctx context.Context, userID uint, req dto.CreateSessionRequest) (*dto.SessionDTO, error) {
	return s.sessionsUC.Create(ctx, userID, req)
}

func (s *ServiceDDD) Messages(ctx context.Context, userID, sessionID uint) ([]*dto.MessageDTO, error) {
	return s.sessionsUC.Messages(ctx, userID, sessionID)
}

func (s *ServiceDDD) DeleteSession(ctx context.Context, userID, sessionID uint) error {
	return s.sessionsUC.Delete(ctx, userID, sessionID)
}

func (s *ServiceDDD) Send(ctx context.Context, userID, sessionID uint, req dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	return s.sendUC.Execute(ctx, userID, sessionID, req)
}
