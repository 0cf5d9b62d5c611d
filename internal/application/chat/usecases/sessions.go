package usecases

import (
	"context"
	"fmt"

	"github.com/portalkit/portalkit/internal/application/chat/dto"
	"github.com/portalkit/portalkit/internal/domain/chat"
	"github.com/portalkit/portalkit/internal/shared/errors"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

const defaultSessionListLimit = 50

type ManageSessionsUseCase struct {
	sessionRepo chat.SessionRepository
	messageRepo chat.MessageRepository
	listLimit   int
	logger      logger.Interface
}

func NewManageSessionsUseCase(
	sessionRepo chat.SessionRepository,
	messageRepo chat.MessageRepository,
	listLimit int,
	logger logger.Interface,
) *ManageSessionsUseCase {
	if listLimit <= 0 {
		listLimit = defaultSessionListLimit
	}
	return &ManageSessionsUseCase{
		sessionRepo: sessionRepo,
		messageRepo: messageRepo,
		listLimit:   listLimit,
		logger:      logger,
	}
}

func (uc *ManageSessionsUseCase) List(ctx context.Context, userID uint) ([]*dto.SessionDTO, error) {
	sessions, err := uc.sessionRepo.ListForUser(ctx, userID, uc.listLimit)
	if err != nil {
		uc.logger.Errorw("failed to list chat sessions", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list chat sessions: %w", err)
	}
	return dto.ToSessionDTOs(sessions), nil
}

func (uc *ManageSessionsUseCase) Create(ctx context.Context, userID uint, req dto.CreateSessionRequest) (*dto.SessionDTO, error) {
	session := chat.NewSession(userID, req.Title)
	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		uc.logger.Errorw("failed to create chat session", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to create chat session: %w", err)
	}

	uc.logger.Infow("chat session created", "session_id", session.ID(), "user_id", userID)
	return dto.ToSessionDTO(session), nil
}

// Messages returns a session's messages oldest first.
func (uc *ManageSessionsUseCase) Messages(ctx context.Context, userID, sessionID uint) ([]*dto.MessageDTO, error) {
	if _, err := loadSession(ctx, uc.sessionRepo, userID, sessionID, "Not found"); err != nil {
		return nil, err
	}

	messages, err := uc.messageRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	return dto.ToMessageDTOs(messages), nil
}

func (uc *ManageSessionsUseCase) Delete(ctx context.Context, userID, sessionID uint) error {
	if _, err := loadSession(ctx, uc.sessionRepo, userID, sessionID, "Not found"); err != nil {
		return err
	}

	if err := uc.sessionRepo.Delete(ctx, sessionID); err != nil {
		uc.logger.Errorw("failed to delete chat session", "session_id", sessionID, "error", err)
		return fmt.Errorf("failed to delete chat session: %w", err)
	}

	uc.logger.Infow("chat session deleted", "session_id", sessionID, "user_id", userID)
	return nil
}

func loadSession(ctx context.Context, repo chat.SessionRepository, userID, sessionID uint, notFound string) (*chat.Session, error) {
	session, err := repo.GetForUser(ctx, sessionID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get chat session: %w", err)
	}
	if session == nil {
		return nil, errors.NewNotFoundError(notFound)
	}
	return session, nil
}
