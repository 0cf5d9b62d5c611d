package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/portalkit/portalkit/internal/application/chat/dto"
	"github.com/portalkit/portalkit/internal/domain/chat"
	"github.com/portalkit/portalkit/internal/shared/biztime"
	"github.com/portalkit/portalkit/internal/shared/constants"
	sharedErrors "github.com/portalkit/portalkit/internal/shared/errors"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

func newSendUseCase(sessions *mockSessionRepo, messages *mockMessageRepo, provider chat.Provider, recorder *outcomeLog) *SendMessageUseCase {
	return NewSendMessageUseCase(
		sessions, messages, provider, stubRenderer{},
		chat.Limits{PerSession: 20, PerUser: 1000},
		recorder, biztime.FixedClock(testNow), logger.NewNop(),
	)
}

func TestSendMessage_StoresPromptAndReply(t *testing.T) {
	sessions := new(mockSessionRepo)
	messages := new(mockMessageRepo)
	recorder := &outcomeLog{}
	sessions.On("GetForUser", mock.Anything, uint(4), uint(7)).Return(testSession(4, 7), nil)
	sessions.On("Touch", mock.Anything, uint(4), testNow).Return(nil)
	messages.On("CountByUser", mock.Anything, uint(7)).Return(int64(10), nil)
	messages.On("CountBySession", mock.Anything, uint(4)).Return(int64(2), nil)
	messages.On("Create", mock.Anything, mock.Anything).Return(nil)

	uc := newSendUseCase(sessions, messages, stubProvider{reply: "**hi**"}, recorder)
	result, err := uc.Execute(context.Background(), 7, 4, dto.SendMessageRequest{Text: " hello "})

	require.NoError(t, err)
	assert.Equal(t, "**hi**", result.Response)
	assert.Equal(t, "<p>**hi**</p>", result.HTML)
	require.Len(t, messages.created, 2)
	assert.Equal(t, chat.RoleUser, messages.created[0].Role())
	assert.Equal(t, "hello", messages.created[0].Text())
	assert.Equal(t, chat.RoleAssistant, messages.created[1].Role())
	assert.Equal(t, []string{OutcomeReplied}, recorder.outcomes)
	sessions.AssertExpectations(t)
}

func TestSendMessage_ProviderFailureKeepsPrompt(t *testing.T) {
	sessions := new(mockSessionRepo)
	messages := new(mockMessageRepo)
	recorder := &outcomeLog{}
	sessions.On("GetForUser", mock.Anything, uint(4), uint(7)).Return(testSession(4, 7), nil)
	messages.On("CountByUser", mock.Anything, uint(7)).Return(int64(0), nil)
	messages.On("CountBySession", mock.Anything, uint(4)).Return(int64(0), nil)
	messages.On("Create", mock.Anything, mock.Anything).Return(nil)

	uc := newSendUseCase(sessions, messages, stubProvider{err: errBoom}, recorder)
	_, err := uc.Execute(context.Background(), 7, 4, dto.SendMessageRequest{Prompt: "hello"})

	require.Error(t, err)
	appErr := sharedErrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 502, appErr.Code)
	require.Len(t, messages.created, 1)
	assert.Equal(t, chat.RoleUser, messages.created[0].Role())
	assert.Equal(t, []string{OutcomeProviderError}, recorder.outcomes)
	sessions.AssertNotCalled(t, "Touch", mock.Anything, mock.Anything, mock.Anything)
}

func TestSendMessage_Limits(t *testing.T) {
	tests := []struct {
		name         string
		userTotal    int64
		sessionTotal int64
		wantCode     string
	}{
		{name: "user limit checked first", userTotal: 1000, sessionTotal: 20, wantCode: constants.MsgUserLimitReached},
		{name: "session limit", userTotal: 40, sessionTotal: 20, wantCode: constants.MsgSessionLimitReached},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := new(mockSessionRepo)
			messages := new(mockMessageRepo)
			recorder := &outcomeLog{}
			sessions.On("GetForUser", mock.Anything, uint(4), uint(7)).Return(testSession(4, 7), nil)
			messages.On("CountByUser", mock.Anything, uint(7)).Return(tt.userTotal, nil)
			messages.On("CountBySession", mock.Anything, uint(4)).Return(tt.sessionTotal, nil)

			uc := newSendUseCase(sessions, messages, stubProvider{reply: "x"}, recorder)
			_, err := uc.Execute(context.Background(), 7, 4, dto.SendMessageRequest{Prompt: "hello"})

			appErr := sharedErrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, 403, appErr.Code)
			assert.Equal(t, tt.wantCode, appErr.MessageCode)
			assert.Empty(t, messages.created)
			assert.Equal(t, []string{OutcomeLimited}, recorder.outcomes)
		})
	}
}

func TestSendMessage_Rejections(t *testing.T) {
	sessions := new(mockSessionRepo)
	messages := new(mockMessageRepo)
	sessions.On("GetForUser", mock.Anything, uint(9), uint(7)).Return(nil, nil)
	uc := newSendUseCase(sessions, messages, stubProvider{reply: "x"}, &outcomeLog{})

	_, err := uc.Execute(context.Background(), 7, 9, dto.SendMessageRequest{Prompt: "   "})
	appErr := sharedErrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.Code)

	_, err = uc.Execute(context.Background(), 7, 9, dto.SendMessageRequest{Prompt: "hello"})
	assert.True(t, sharedErrors.IsNotFoundError(err))
}

func TestManageSessions(t *testing.T) {
	sessions := new(mockSessionRepo)
	messages := new(mockMessageRepo)
	uc := NewManageSessionsUseCase(sessions, messages, 0, logger.NewNop())

	t.Run("create uses default title", func(t *testing.T) {
		sessions.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		result, err := uc.Create(context.Background(), 7, dto.CreateSessionRequest{Title: "  "})

		require.NoError(t, err)
		assert.Equal(t, chat.DefaultSessionTitle, result.Title)
		assert.Zero(t, result.MessageCount)
	})

	t.Run("list applies default limit", func(t *testing.T) {
		sessions.On("ListForUser", mock.Anything, uint(7), defaultSessionListLimit).
			Return([]*chat.Session{testSession(4, 7)}, nil).Once()

		result, err := uc.List(context.Background(), 7)

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Trip plans", result[0].Title)
	})

	t.Run("foreign session is not found", func(t *testing.T) {
		sessions.On("GetForUser", mock.Anything, uint(5), uint(7)).Return(nil, nil)

		_, err := uc.Messages(context.Background(), 7, 5)
		assert.True(t, sharedErrors.IsNotFoundError(err))

		err = uc.Delete(context.Background(), 7, 5)
		assert.True(t, sharedErrors.IsNotFoundError(err))
		sessions.AssertNotCalled(t, "Delete", mock.Anything, uint(5))
	})

	t.Run("messages oldest first", func(t *testing.T) {
		sessions.On("GetForUser", mock.Anything, uint(4), uint(7)).Return(testSession(4, 7), nil)
		messages.On("ListBySession", mock.Anything, uint(4)).Return([]*chat.Message{
			chat.ReconstructMessage(1, 4, 7, chat.RoleUser, "hi", testNow),
			chat.ReconstructMessage(2, 4, 7, chat.RoleAssistant, "hello", testNow),
		}, nil)

		result, err := uc.Messages(context.Background(), 7, 4)

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "user", result[0].Role)
		assert.Equal(t, "assistant", result[1].Role)
	})
}
