package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/portalkit/portalkit/internal/domain/passwordreset"
	"github.com/portalkit/portalkit/internal/domain/user"
)

var (
	errBoom = errors.New("boom")
	testNow = time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC)
)

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserStore) GetByUsernameAndEmail(ctx context.Context, username, email string) (*user.User, error) {
	args := m.Called(ctx, username, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserStore) Update(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

type mockOTPRepo struct {
	mock.Mock
}

func (m *mockOTPRepo) Create(ctx context.Context, code *passwordreset.OTPCode) error {
	return m.Called(ctx, code).Error(0)
}

func (m *mockOTPRepo) Find(ctx context.Context, email, code string) (*passwordreset.OTPCode, error) {
	args := m.Called(ctx, email, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*passwordreset.OTPCode), args.Error(1)
}

func (m *mockOTPRepo) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockOTPRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type memoryCredentialStore struct {
	codes map[string]string
}

func newMemoryCredentialStore() *memoryCredentialStore {
	return &memoryCredentialStore{codes: map[string]string{}}
}

func (s *memoryCredentialStore) Save(_ context.Context, username, code string, _ time.Duration) error {
	s.codes[username] = code
	return nil
}

func (s *memoryCredentialStore) Get(_ context.Context, username string) (string, error) {
	return s.codes[username], nil
}

func (s *memoryCredentialStore) Delete(_ context.Context, username string) error {
	delete(s.codes, username)
	return nil
}

type sentMail struct {
	to       string
	username string
	code     string
}

type fakeMailer struct {
	err  error
	sent []sentMail
}

func (f *fakeMailer) SendPasswordResetOTP(_ context.Context, to, code string, _ time.Duration) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, code: code})
	return nil
}

func (f *fakeMailer) SendCredentialOTP(_ context.Context, to, username, code string, _ time.Duration) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, username: username, code: code})
	return nil
}

type fixedLimiter struct {
	allowed bool
	err     error
	keys    []string
}

func (l *fixedLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.keys = append(l.keys, key)
	return l.allowed, l.err
}

type outcomeLog struct {
	outcomes []string
}

func (o *outcomeLog) RecordOTPSend(flow, outcome string) {
	o.outcomes = append(o.outcomes, flow+":"+outcome)
}

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainHasher) Verify(password, hash string) error {
	if strings.TrimPrefix(hash, "hashed:") != password {
		return errors.New("mismatch")
	}
	return nil
}

func testAccount() *user.User {
	u, err := user.ReconstructUser(user.UserData{
		ID:           11,
		Username:     "Bob",
		Email:        "bob@example.com",
		PasswordHash: "hashed:old-password1",
		Active:       true,
		DateJoined:   testNow,
	})
	if err != nil {
		panic(err)
	}
	return u
}
