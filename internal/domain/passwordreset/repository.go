package passwordreset

import (
	"context"
	"time"
)

// Repository stores reset codes in the database.
type Repository interface {
	Create(ctx context.Context, code *OTPCode) error
	// Find returns the most recent row for (email, code) or (nil, nil).
	Find(ctx context.Context, email, code string) (*OTPCode, error)
	Delete(ctx context.Context, id uint) error
	// DeleteExpired removes codes that expired before now and returns the count.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// CredentialStore keeps the short-lived codes administrators send so a new
// user can set a first password. Keys are per username.
type CredentialStore interface {
	Save(ctx context.Context, username, code string, ttl time.Duration) error
	// Get returns "" when the code is missing or expired.
	Get(ctx context.Context, username string) (string, error)
	Delete(ctx context.Context, username string) error
}
