package http

import (
	"context"
	"time"

	"github.com/portalkit/portalkit/internal/application/user/usecases"
	"github.com/portalkit/portalkit/internal/infrastructure/auth"
	"github.com/portalkit/portalkit/internal/infrastructure/ratelimit"
)

// jwtServiceAdapter adapts JWTService to usecases.TokenIssuer.
type jwtServiceAdapter struct {
	*auth.JWTService
}

func (a *jwtServiceAdapter) Issue(userID uint, username string) (*usecases.TokenPair, error) {
	pair, err := a.JWTService.Generate(userID, username)
	if err != nil {
		return nil, err
	}
	return &usecases.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		AccessTTL:    pair.AccessTTL,
		RefreshTTL:   pair.RefreshTTL,
	}, nil
}

func (a *jwtServiceAdapter) Refresh(refreshToken string) (string, uint, error) {
	access, claims, err := a.JWTService.Refresh(refreshToken)
	if err != nil {
		return "", 0, err
	}
	userID, err := claims.UserID()
	if err != nil {
		return "", 0, err
	}
	return access, userID, nil
}

// otpLimiterAdapter binds the code-mail throttle windows to the shared
// redis limiter.
type otpLimiterAdapter struct {
	limiter ratelimit.RateLimiter
	config  ratelimit.RateLimitConfig
}

func newOTPLimiterAdapter(limiter ratelimit.RateLimiter, perMinute, perHour int) *otpLimiterAdapter {
	return &otpLimiterAdapter{
		limiter: limiter,
		config: ratelimit.RateLimitConfig{
			RequestsPerMinute: perMinute,
			RequestsPerHour:   perHour,
		},
	}
}

func (a *otpLimiterAdapter) Allow(ctx context.Context, key string) (bool, error) {
	return a.limiter.Allow(ctx, key, a.config)
}

// httpLimitConfig turns the configured request budget into a limiter window.
func httpLimitConfig(limit int, window time.Duration) ratelimit.RateLimitConfig {
	if window == time.Minute {
		return ratelimit.RateLimitConfig{RequestsPerMinute: limit}
	}
	return ratelimit.RateLimitConfig{Extra: []ratelimit.Window{{Duration: window, Limit: limit}}}
}
