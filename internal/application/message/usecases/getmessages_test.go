package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portalkit/portalkit/internal/domain/message"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

type stubMessageRepo struct {
	entries []message.Entry
	err     error
}

func (s stubMessageRepo) ListAll(context.Context) ([]message.Entry, error) {
	return s.entries, s.err
}

func (s stubMessageRepo) Find(_ context.Context, kind message.Kind, code string) (*message.Entry, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, e := range s.entries {
		if e.Kind == kind && e.Code == code {
			e := e
			return &e, nil
		}
	}
	return nil, nil
}

func testDefaults() message.Catalog {
	c := message.NewCatalog()
	c.Set(message.Entry{Kind: message.KindError, Code: "EP016", Text: "Username already exists."})
	c.Set(message.Entry{Kind: message.KindError, Code: "EL001", Text: "Invalid credentials."})
	c.Set(message.Entry{Kind: message.KindInformation, Code: "IF001", Text: "OTP sent."})
	return c
}

func TestGetMessages_DatabaseWinsPerCode(t *testing.T) {
	repo := stubMessageRepo{entries: []message.Entry{
		{Kind: message.KindError, Code: "EP016", Text: "That username is taken."},
		{Kind: message.KindValidation, Code: "VA008", Text: "Too short."},
	}}
	uc := NewGetMessagesUseCase(repo, testDefaults(), logger.NewNop())

	result := uc.Execute(context.Background())

	require.Len(t, result.UserError, 2)
	assert.Equal(t, "EL001", result.UserError[0].ErrorCode)
	assert.Equal(t, "EP016", result.UserError[1].ErrorCode)
	assert.Equal(t, "That username is taken.", result.UserError[1].ErrorMessage)
	require.Len(t, result.UserValidation, 1)
	assert.Equal(t, "Too short.", result.UserValidation[0].ValidationMessage)
	require.Len(t, result.UserInformation, 1)
}

func TestGetMessages_StoreFailureServesDefaults(t *testing.T) {
	uc := NewGetMessagesUseCase(stubMessageRepo{err: errors.New("down")}, testDefaults(), logger.NewNop())

	result := uc.Execute(context.Background())

	assert.Len(t, result.UserError, 2)
	assert.Empty(t, result.UserValidation)
	assert.NotNil(t, result.UserValidation)
}

func TestGetMessages_Text(t *testing.T) {
	repo := stubMessageRepo{entries: []message.Entry{{Kind: message.KindInformation, Code: "IF001", Text: "Check your inbox."}}}
	uc := NewGetMessagesUseCase(repo, testDefaults(), logger.NewNop())

	assert.Equal(t, "Check your inbox.", uc.Text(context.Background(), "IF001"))
	assert.Equal(t, "Invalid credentials.", uc.Text(context.Background(), "EL001"))
	assert.Equal(t, message.FallbackText(message.KindValidation), uc.Text(context.Background(), "VA999"))
}
