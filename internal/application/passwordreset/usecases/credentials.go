package usecases

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/portalkit/portalkit/internal/application/passwordreset/dto"
	"github.com/portalkit/portalkit/internal/domain/passwordreset"
	"github.com/portalkit/portalkit/internal/domain/user"
	"github.com/portalkit/portalkit/internal/shared/constants"
	"github.com/portalkit/portalkit/internal/shared/errors"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

// SendCredentialsUseCase lets an administrator mail a new user a code for
// setting their first password.
type SendCredentialsUseCase struct {
	users      UserStore
	store      passwordreset.CredentialStore
	mailer     Mailer
	limiter    SendLimiter
	recorder   OTPRecorder
	codeLength int
	ttl        time.Duration
	logger     logger.Interface
}

func NewSendCredentialsUseCase(
	users UserStore,
	store passwordreset.CredentialStore,
	mailer Mailer,
	limiter SendLimiter,
	recorder OTPRecorder,
	codeLength int,
	ttl time.Duration,
	logger logger.Interface,
) *SendCredentialsUseCase {
	return &SendCredentialsUseCase{
		users:      users,
		store:      store,
		mailer:     mailer,
		limiter:    limiter,
		recorder:   recorder,
		codeLength: codeLength,
		ttl:        ttl,
		logger:     logger,
	}
}

func (uc *SendCredentialsUseCase) Execute(ctx context.Context, req dto.SendCredentialsRequest) error {
	email := strings.TrimSpace(req.Email)
	username := strings.TrimSpace(req.Username)
	if email == "" || username == "" {
		return errors.NewBadRequestError("email_and_username_required")
	}

	account, err := uc.users.GetByUsernameAndEmail(ctx, username, email)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if account == nil {
		uc.recorder.RecordOTPSend(FlowCredentials, OutcomeUnknownUser)
		return errors.NewNotFoundError("user_not_found")
	}

	if err := allowSend(ctx, uc.limiter, "otp:credentials:"+strings.ToLower(account.Username()), uc.logger); err != nil {
		uc.recorder.RecordOTPSend(FlowCredentials, OutcomeRateLimited)
		return err
	}

	code, err := passwordreset.GenerateCode(uc.codeLength)
	if err != nil {
		return err
	}
	if err := uc.store.Save(ctx, account.Username(), code, uc.ttl); err != nil {
		uc.logger.Errorw("failed to store credential otp", "user_id", account.ID(), "error", err)
		return fmt.Errorf("failed to store credential otp: %w", err)
	}

	if err := uc.mailer.SendCredentialOTP(ctx, email, account.Username(), code, uc.ttl); err != nil {
		uc.recorder.RecordOTPSend(FlowCredentials, OutcomeMailFailed)
		uc.logger.Errorw("failed to mail credential otp", "user_id", account.ID(), "error", err)
		return errors.NewInternalError("failed to send email").WithMessageCode(constants.MsgMailFailed)
	}

	uc.recorder.RecordOTPSend(FlowCredentials, OutcomeSent)
	uc.logger.Infow("credential otp sent", "user_id", account.ID())
	return nil
}

// SetPasswordUseCase consumes a credential code and sets the password.
type SetPasswordUseCase struct {
	users  UserStore
	store  passwordreset.CredentialStore
	hasher user.PasswordHasher
	policy user.PasswordPolicy
	logger logger.Interface
}

func NewSetPasswordUseCase(
	users UserStore,
	store passwordreset.CredentialStore,
	hasher user.PasswordHasher,
	policy user.PasswordPolicy,
	logger logger.Interface,
) *SetPasswordUseCase {
	return &SetPasswordUseCase{users: users, store: store, hasher: hasher, policy: policy, logger: logger}
}

func (uc *SetPasswordUseCase) Execute(ctx context.Context, req dto.SetPasswordRequest) error {
	username := strings.TrimSpace(req.Username)
	code := strings.TrimSpace(req.OTP)
	if username == "" || code == "" || req.NewPassword == "" {
		return errors.NewBadRequestError("username_otp_new_password_required")
	}

	account, err := uc.users.GetByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if account == nil {
		return errors.NewNotFoundError("user_not_found")
	}

	expected, err := uc.store.Get(ctx, account.Username())
	if err != nil {
		return fmt.Errorf("failed to read credential otp: %w", err)
	}
	if expected == "" || subtle.ConstantTimeCompare([]byte(expected), []byte(code)) != 1 {
		return errors.NewBadRequestError("invalid_or_expired_otp", "otp")
	}

	if err := setPassword(ctx, uc.users, uc.hasher, uc.policy, account, req.NewPassword); err != nil {
		return err
	}
	if err := uc.store.Delete(ctx, account.Username()); err != nil {
		uc.logger.Warnw("failed to delete credential otp", "user_id", account.ID(), "error", err)
	}

	uc.logger.Infow("password set from credential otp", "user_id", account.ID())
	return nil
}
