package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/portalkit/portalkit/internal/domain/chat"
)

var errBoom = errors.New("boom")

type mockSessionRepo struct {
	mock.Mock
}

func (m *mockSessionRepo) Create(ctx context.Context, session *chat.Session) error {
	args := m.Called(ctx, session)
	if args.Error(0) == nil {
		_ = session.SetID(1)
	}
	return args.Error(0)
}

func (m *mockSessionRepo) GetForUser(ctx context.Context, id, userID uint) (*chat.Session, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chat.Session), args.Error(1)
}

func (m *mockSessionRepo) ListForUser(ctx context.Context, userID uint, limit int) ([]*chat.Session, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*chat.Session), args.Error(1)
}

func (m *mockSessionRepo) Touch(ctx context.Context, id uint, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

func (m *mockSessionRepo) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockMessageRepo struct {
	mock.Mock
	created []*chat.Message
}

func (m *mockMessageRepo) Create(ctx context.Context, message *chat.Message) error {
	args := m.Called(ctx, message)
	if args.Error(0) == nil {
		m.created = append(m.created, message)
	}
	return args.Error(0)
}

func (m *mockMessageRepo) ListBySession(ctx context.Context, sessionID uint) ([]*chat.Message, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*chat.Message), args.Error(1)
}

func (m *mockMessageRepo) CountBySession(ctx context.Context, sessionID uint) (int64, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMessageRepo) CountByUser(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type stubProvider struct {
	reply string
	err   error
}

func (p stubProvider) Generate(_ context.Context, prompt string) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return p.reply, nil
}

type stubRenderer struct{}

func (stubRenderer) Render(markdown string) (string, error) {
	return "<p>" + markdown + "</p>", nil
}

type outcomeLog struct {
	outcomes []string
}

func (o *outcomeLog) RecordChatReply(outcome string) {
	o.outcomes = append(o.outcomes, outcome)
}

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testSession(id, userID uint) *chat.Session {
	return chat.ReconstructSession(id, userID, "Trip plans", testNow, testNow, 0)
}
