package http

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portalkit/portalkit/internal/infrastructure/auth"
	"github.com/portalkit/portalkit/internal/infrastructure/ratelimit"
)

func TestJWTServiceAdapter(t *testing.T) {
	adapter := &jwtServiceAdapter{auth.NewJWTService("adapter-secret", 30, 2)}

	pair, err := adapter.Issue(11, "bob")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, 30*time.Minute, pair.AccessTTL)
	assert.Equal(t, 48*time.Hour, pair.RefreshTTL)
	assert.Equal(t, 30*time.Minute, adapter.AccessTTL())

	access, userID, err := adapter.Refresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, uint(11), userID)
	assert.NotEmpty(t, access)

	_, _, err = adapter.Refresh(pair.AccessToken)
	assert.Error(t, err)
}

func TestOTPLimiterAdapter(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	adapter := newOTPLimiterAdapter(ratelimit.NewRedisRateLimiter(client), 1, 5)
	ctx := context.Background()

	allowed, err := adapter.Allow(ctx, "otp:reset:alice@example.com")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = adapter.Allow(ctx, "otp:reset:alice@example.com")
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = adapter.Allow(ctx, "otp:reset:bob@example.com")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestHTTPLimitConfig(t *testing.T) {
	assert.Equal(t, ratelimit.RateLimitConfig{RequestsPerMinute: 120}, httpLimitConfig(120, time.Minute))

	cfg := httpLimitConfig(30, 10*time.Second)
	assert.Zero(t, cfg.RequestsPerMinute)
	assert.Equal(t, []ratelimit.Window{{Duration: 10 * time.Second, Limit: 30}}, cfg.Extra)
}
