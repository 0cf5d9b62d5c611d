package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portalkit/portalkit/internal/domain/chat"
	sharedlogger "github.com/portalkit/portalkit/internal/shared/logger"
)

func TestChatRepositories(t *testing.T) {
	gdb := setupTestDB(t)
	sessions := NewChatSessionRepository(gdb, sharedlogger.NewNop())
	messages := NewChatMessageRepository(gdb, sharedlogger.NewNop())
	ctx := context.Background()

	first := chat.NewSession(1, "")
	require.NoError(t, sessions.Create(ctx, first))
	second := chat.NewSession(1, "Second")
	require.NoError(t, sessions.Create(ctx, second))
	foreign := chat.NewSession(2, "Other user")
	require.NoError(t, sessions.Create(ctx, foreign))

	for _, text := range []string{"hi", "hello"} {
		require.NoError(t, messages.Create(ctx, chat.NewMessage(first.ID(), 1, chat.RoleUser, text)))
	}
	require.NoError(t, messages.Create(ctx, chat.NewMessage(second.ID(), 1, chat.RoleUser, "x")))

	require.NoError(t, sessions.Touch(ctx, first.ID(), time.Now().UTC().Add(time.Hour)))

	list, err := sessions.ListForUser(ctx, 1, 50)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID(), list[0].ID(), "most recently updated first")
	assert.Equal(t, "New chat", list[0].Title())
	assert.Equal(t, int64(2), list[0].MessageCount())
	assert.Equal(t, int64(1), list[1].MessageCount())

	limited, err := sessions.ListForUser(ctx, 1, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	notMine, err := sessions.GetForUser(ctx, foreign.ID(), 1)
	require.NoError(t, err)
	assert.Nil(t, notMine)

	n, err := messages.CountByUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	history, err := messages.ListBySession(ctx, first.ID())
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "hi", history[0].Text())

	require.NoError(t, sessions.Delete(ctx, first.ID()))
	n, err = messages.CountBySession(ctx, first.ID())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.ErrorIs(t, sessions.Delete(ctx, first.ID()), chat.ErrSessionNotFound)
}
