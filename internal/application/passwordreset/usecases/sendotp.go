package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/portalkit/portalkit/internal/application/passwordreset/dto"
	"github.com/portalkit/portalkit/internal/domain/passwordreset"
	"github.com/portalkit/portalkit/internal/shared/biztime"
	"github.com/portalkit/portalkit/internal/shared/constants"
	"github.com/portalkit/portalkit/internal/shared/errors"
	"github.com/portalkit/portalkit/internal/shared/logger"
	"github.com/portalkit/portalkit/internal/shared/utils/logutil"
)

// SendOTPUseCase stores a reset code for a registered email and mails it.
type SendOTPUseCase struct {
	users      UserStore
	otpRepo    passwordreset.Repository
	mailer     Mailer
	limiter    SendLimiter
	recorder   OTPRecorder
	codeLength int
	ttl        time.Duration
	clock      biztime.Clock
	logger     logger.Interface
}

func NewSendOTPUseCase(
	users UserStore,
	otpRepo passwordreset.Repository,
	mailer Mailer,
	limiter SendLimiter,
	recorder OTPRecorder,
	codeLength int,
	ttl time.Duration,
	clock biztime.Clock,
	logger logger.Interface,
) *SendOTPUseCase {
	if clock == nil {
		clock = biztime.SystemClock
	}
	return &SendOTPUseCase{
		users:      users,
		otpRepo:    otpRepo,
		mailer:     mailer,
		limiter:    limiter,
		recorder:   recorder,
		codeLength: codeLength,
		ttl:        ttl,
		clock:      clock,
		logger:     logger,
	}
}

func (uc *SendOTPUseCase) Execute(ctx context.Context, req dto.SendOTPRequest) error {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return errors.NewValidationError("email is required", "email").WithMessageCode(constants.MsgEmailMissing)
	}

	if err := allowSend(ctx, uc.limiter, "otp:reset:"+strings.ToLower(email), uc.logger); err != nil {
		uc.recorder.RecordOTPSend(FlowReset, OutcomeRateLimited)
		return err
	}

	account, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if account == nil {
		uc.recorder.RecordOTPSend(FlowReset, OutcomeUnknownUser)
		return errors.NewValidationError("email is not registered", "email").WithMessageCode(constants.MsgEmailNotRegistered)
	}

	code, err := passwordreset.GenerateCode(uc.codeLength)
	if err != nil {
		return err
	}
	otp, err := passwordreset.NewOTPCode(email, code, uc.clock(), uc.ttl)
	if err != nil {
		return errors.NewValidationError(err.Error(), "email").WithMessageCode(constants.MsgEmailMissing)
	}
	if err := uc.otpRepo.Create(ctx, otp); err != nil {
		uc.logger.Errorw("failed to store otp", "error", err)
		return fmt.Errorf("failed to store otp: %w", err)
	}

	if err := uc.mailer.SendPasswordResetOTP(ctx, email, code, uc.ttl); err != nil {
		uc.recorder.RecordOTPSend(FlowReset, OutcomeMailFailed)
		uc.logger.Errorw("failed to mail otp", "user_id", account.ID(), "email", logutil.MaskEmail(email), "error", err)
		return errors.NewInternalError("failed to send email").WithMessageCode(constants.MsgUnexpected)
	}

	uc.recorder.RecordOTPSend(FlowReset, OutcomeSent)
	uc.logger.Infow("password reset otp sent", "user_id", account.ID(), "email", logutil.MaskEmail(email))
	return nil
}

// allowSend fails open when the limiter itself errors.
func allowSend(ctx context.Context, limiter SendLimiter, key string, log logger.Interface) error {
	if limiter == nil {
		return nil
	}
	allowed, err := limiter.Allow(ctx, key)
	if err != nil {
		log.Warnw("rate limiter unavailable", "key", key, "error", err)
		return nil
	}
	if !allowed {
		return errors.NewRateLimitedError("too many code requests, try again later")
	}
	return nil
}
