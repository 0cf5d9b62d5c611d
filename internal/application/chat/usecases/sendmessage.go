package usecases

import (
	"context"
	goerrors "errors"
	"fmt"
	"strings"

	"github.com/portalkit/portalkit/internal/application/chat/dto"
	"github.com/portalkit/portalkit/internal/domain/chat"
	"github.com/portalkit/portalkit/internal/shared/biztime"
	"github.com/portalkit/portalkit/internal/shared/constants"
	"github.com/portalkit/portalkit/internal/shared/errors"
	"github.com/portalkit/portalkit/internal/shared/logger"
	"github.com/portalkit/portalkit/internal/shared/utils/logutil"
)

const promptLogLength = 80

// SendMessageUseCase stores the prompt, asks the provider for a reply and
// stores the reply. The prompt stays stored when the provider fails.
type SendMessageUseCase struct {
	sessionRepo chat.SessionRepository
	messageRepo chat.MessageRepository
	provider    chat.Provider
	renderer    Renderer
	limits      chat.Limits
	recorder    ReplyRecorder
	clock       biztime.Clock
	logger      logger.Interface
}

func NewSendMessageUseCase(
	sessionRepo chat.SessionRepository,
	messageRepo chat.MessageRepository,
	provider chat.Provider,
	renderer Renderer,
	limits chat.Limits,
	recorder ReplyRecorder,
	clock biztime.Clock,
	logger logger.Interface,
) *SendMessageUseCase {
	if clock == nil {
		clock = biztime.SystemClock
	}
	return &SendMessageUseCase{
		sessionRepo: sessionRepo,
		messageRepo: messageRepo,
		provider:    provider,
		renderer:    renderer,
		limits:      limits,
		recorder:    recorder,
		clock:       clock,
		logger:      logger,
	}
}

func (uc *SendMessageUseCase) Execute(ctx context.Context, userID, sessionID uint, req dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	prompt := strings.TrimSpace(req.Content())
	if prompt == "" {
		return nil, errors.NewBadRequestError(chat.ErrPromptRequired.Error(), "prompt")
	}

	session, err := loadSession(ctx, uc.sessionRepo, userID, sessionID, "Session not found")
	if err != nil {
		return nil, err
	}

	if err := uc.checkLimits(ctx, userID, session.ID()); err != nil {
		return nil, err
	}

	if err := uc.messageRepo.Create(ctx, chat.NewMessage(session.ID(), userID, chat.RoleUser, prompt)); err != nil {
		return nil, fmt.Errorf("failed to store prompt: %w", err)
	}

	reply, err := uc.provider.Generate(ctx, prompt)
	if err != nil {
		uc.recorder.RecordChatReply(OutcomeProviderError)
		uc.logger.Errorw("AI provider failed",
			"session_id", session.ID(),
			"user_id", userID,
			"prompt", logutil.TruncateForLog(prompt, promptLogLength),
			"error", err)
		return nil, errors.NewBadGatewayError(chat.ErrProviderFailed.Error(), err.Error())
	}

	if err := uc.messageRepo.Create(ctx, chat.NewMessage(session.ID(), userID, chat.RoleAssistant, reply)); err != nil {
		return nil, fmt.Errorf("failed to store reply: %w", err)
	}
	if err := uc.sessionRepo.Touch(ctx, session.ID(), uc.clock()); err != nil {
		uc.logger.Warnw("failed to touch chat session", "session_id", session.ID(), "error", err)
	}

	html, err := uc.renderer.Render(reply)
	if err != nil {
		uc.logger.Warnw("failed to render reply", "session_id", session.ID(), "error", err)
		html = ""
	}

	uc.recorder.RecordChatReply(OutcomeReplied)
	return &dto.SendMessageResponse{Response: reply, HTML: html}, nil
}

func (uc *SendMessageUseCase) checkLimits(ctx context.Context, userID, sessionID uint) error {
	userTotal, err := uc.messageRepo.CountByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to count user messages: %w", err)
	}
	sessionTotal, err := uc.messageRepo.CountBySession(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to count session messages: %w", err)
	}

	err = uc.limits.Check(userTotal, sessionTotal)
	switch {
	case err == nil:
		return nil
	case goerrors.Is(err, chat.ErrUserLimitReached):
		uc.recorder.RecordChatReply(OutcomeLimited)
		return errors.NewForbiddenError(
			fmt.Sprintf("You have reached your limit of %d messages.", uc.limits.PerUser),
		).WithMessageCode(constants.MsgUserLimitReached)
	case goerrors.Is(err, chat.ErrSessionLimitReached):
		uc.recorder.RecordChatReply(OutcomeLimited)
		return errors.NewForbiddenError(
			fmt.Sprintf("This chat reached its %d message limit. Start a new chat.", uc.limits.PerSession),
		).WithMessageCode(constants.MsgSessionLimitReached)
	default:
		return err
	}
}
