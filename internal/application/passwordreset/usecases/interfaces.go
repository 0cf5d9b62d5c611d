package usecases

import (
	"context"
	"time"

	"github.com/portalkit/portalkit/internal/domain/user"
)

type Mailer interface {
	SendPasswordResetOTP(ctx context.Context, to, code string, ttl time.Duration) error
	SendCredentialOTP(ctx context.Context, to, username, code string, ttl time.Duration) error
}

// SendLimiter throttles code mails per key.
type SendLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type OTPRecorder interface {
	RecordOTPSend(flow, outcome string)
}

type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	GetByUsernameAndEmail(ctx context.Context, username, email string) (*user.User, error)
	Update(ctx context.Context, u *user.User) error
}

const (
	FlowReset       = "reset"
	FlowCredentials = "credentials"

	OutcomeSent        = "sent"
	OutcomeRateLimited = "rate_limited"
	OutcomeUnknownUser = "unknown_user"
	OutcomeMailFailed  = "mail_failed"
)
