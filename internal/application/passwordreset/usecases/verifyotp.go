package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/portalkit/portalkit/internal/application/passwordreset/dto"
	"github.com/portalkit/portalkit/internal/domain/passwordreset"
	"github.com/portalkit/portalkit/internal/domain/user"
	"github.com/portalkit/portalkit/internal/shared/biztime"
	"github.com/portalkit/portalkit/internal/shared/constants"
	"github.com/portalkit/portalkit/internal/shared/errors"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

// VerifyOTPUseCase resets the password of the account behind an email once
// the mailed code checks out. The code is single use.
type VerifyOTPUseCase struct {
	users   UserStore
	otpRepo passwordreset.Repository
	hasher  user.PasswordHasher
	policy  user.PasswordPolicy
	clock   biztime.Clock
	logger  logger.Interface
}

func NewVerifyOTPUseCase(
	users UserStore,
	otpRepo passwordreset.Repository,
	hasher user.PasswordHasher,
	policy user.PasswordPolicy,
	clock biztime.Clock,
	logger logger.Interface,
) *VerifyOTPUseCase {
	if clock == nil {
		clock = biztime.SystemClock
	}
	return &VerifyOTPUseCase{
		users:   users,
		otpRepo: otpRepo,
		hasher:  hasher,
		policy:  policy,
		clock:   clock,
		logger:  logger,
	}
}

func (uc *VerifyOTPUseCase) Execute(ctx context.Context, req dto.VerifyOTPRequest) error {
	email := strings.TrimSpace(req.Email)
	code := strings.TrimSpace(req.OTP)
	if email == "" || code == "" {
		return errors.NewValidationError("email and otp are required", "email").WithMessageCode(constants.MsgEmailMissing)
	}

	account, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if account == nil {
		return errors.NewValidationError("email is not registered", "email").WithMessageCode(constants.MsgEmailNotRegistered)
	}

	otp, err := uc.otpRepo.Find(ctx, email, code)
	if err != nil {
		return fmt.Errorf("failed to find otp: %w", err)
	}
	if otp == nil {
		return errors.NewValidationError(passwordreset.ErrCodeInvalid.Error(), "otp").WithMessageCode(constants.MsgOTPInvalid)
	}
	if otp.Expired(uc.clock()) {
		return errors.NewValidationError(passwordreset.ErrCodeExpired.Error(), "otp").WithMessageCode(constants.MsgOTPExpired)
	}

	if req.NewPassword != req.ConfirmPassword {
		return errors.NewValidationError("passwords do not match", "confirm_password").WithMessageCode(constants.MsgPasswordMismatch)
	}
	if err := setPassword(ctx, uc.users, uc.hasher, uc.policy, account, req.NewPassword); err != nil {
		return err
	}

	if err := uc.otpRepo.Delete(ctx, otp.ID()); err != nil {
		uc.logger.Warnw("failed to delete used otp", "otp_id", otp.ID(), "error", err)
	}

	uc.logger.Infow("password reset", "user_id", account.ID())
	return nil
}

func setPassword(
	ctx context.Context,
	users UserStore,
	hasher user.PasswordHasher,
	policy user.PasswordPolicy,
	account *user.User,
	password string,
) error {
	if err := policy.Validate(password); err != nil {
		return errors.NewValidationError(err.Error(), "new_password").WithMessageCode(constants.MsgPasswordTooShort)
	}
	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	account.SetPasswordHash(hash)
	if err := users.Update(ctx, account); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}
