package ratelimit

import (
	"context"
	"time"
)

// Window caps the number of hits within a sliding duration.
type Window struct {
	Duration time.Duration
	Limit    int
}

// RateLimitConfig combines fixed per-minute/hour/day caps with any extra
// windows. Non-positive limits are ignored.
type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
	RequestsPerDay    int
	Extra             []Window
}

func (c RateLimitConfig) windows() []Window {
	ws := []Window{
		{Duration: time.Minute, Limit: c.RequestsPerMinute},
		{Duration: time.Hour, Limit: c.RequestsPerHour},
		{Duration: 24 * time.Hour, Limit: c.RequestsPerDay},
	}
	return append(ws, c.Extra...)
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, config RateLimitConfig) (bool, error)
	GetCount(ctx context.Context, key string, window time.Duration) (int64, error)
	Reset(ctx context.Context, key string) error
}
