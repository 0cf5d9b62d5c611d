package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/portalkit/portalkit/internal/domain/passwordreset"
)

const credentialOTPPrefix = "pwd_otp:"

var ErrUsernameEmpty = errors.New("username cannot be empty")

var _ passwordreset.CredentialStore = (*RedisCredentialStore)(nil)

// RedisCredentialStore keeps administrator-issued set-password codes under
// pwd_otp:<username> with a TTL.
type RedisCredentialStore struct {
	client *redis.Client
}

func NewRedisCredentialStore(client *redis.Client) *RedisCredentialStore {
	return &RedisCredentialStore{client: client}
}

// Save replaces any code already issued for username.
func (s *RedisCredentialStore) Save(ctx context.Context, username, code string, ttl time.Duration) error {
	if strings.TrimSpace(username) == "" {
		return ErrUsernameEmpty
	}
	if err := s.client.Set(ctx, s.buildKey(username), code, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store credential code: %w", err)
	}
	return nil
}

func (s *RedisCredentialStore) Get(ctx context.Context, username string) (string, error) {
	if strings.TrimSpace(username) == "" {
		return "", ErrUsernameEmpty
	}
	code, err := s.client.Get(ctx, s.buildKey(username)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read credential code: %w", err)
	}
	return code, nil
}

func (s *RedisCredentialStore) Delete(ctx context.Context, username string) error {
	if err := s.client.Del(ctx, s.buildKey(username)).Err(); err != nil {
		return fmt.Errorf("failed to delete credential code: %w", err)
	}
	return nil
}

func (s *RedisCredentialStore) buildKey(username string) string {
	return credentialOTPPrefix + username
}
