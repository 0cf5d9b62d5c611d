package usecases

import (
	"context"
	"fmt"

	"github.com/portalkit/portalkit/internal/domain/passwordreset"
	"github.com/portalkit/portalkit/internal/shared/biztime"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

// PurgeExpiredOTPJob deletes reset codes past their expiry. It runs as a
// scheduler batch job.
type PurgeExpiredOTPJob struct {
	otpRepo passwordreset.Repository
	clock   biztime.Clock
	logger  logger.Interface
}

func NewPurgeExpiredOTPJob(otpRepo passwordreset.Repository, clock biztime.Clock, logger logger.Interface) *PurgeExpiredOTPJob {
	if clock == nil {
		clock = biztime.SystemClock
	}
	return &PurgeExpiredOTPJob{otpRepo: otpRepo, clock: clock, logger: logger}
}

func (j *PurgeExpiredOTPJob) Execute(ctx context.Context) (int, error) {
	n, err := j.otpRepo.DeleteExpired(ctx, j.clock())
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired otps: %w", err)
	}
	if n > 0 {
		j.logger.Debugw("expired otps purged", "count", n)
	}
	return int(n), nil
}
