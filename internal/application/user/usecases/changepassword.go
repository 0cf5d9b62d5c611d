package usecases

import (
	"context"
	"fmt"

	"github.com/portalkit/portalkit/internal/application/user/dto"
	"github.com/portalkit/portalkit/internal/domain/user"
	"github.com/portalkit/portalkit/internal/shared/constants"
	"github.com/portalkit/portalkit/internal/shared/errors"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

type ChangePasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	passwordPolicy user.PasswordPolicy
	logger         logger.Interface
}

func NewChangePasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	policy user.PasswordPolicy,
	logger logger.Interface,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		passwordPolicy: policy,
		logger:         logger,
	}
}

// Execute checks, in order: the old password, the confirmation, the length
// policy, and that the new password differs from the old one.
func (uc *ChangePasswordUseCase) Execute(ctx context.Context, userID uint, req dto.ChangePasswordRequest) error {
	account, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if account == nil {
		return errors.NewNotFoundError("user not found")
	}

	if err := uc.passwordHasher.Verify(req.OldPassword, account.PasswordHash()); err != nil {
		return errors.NewValidationError("old password is incorrect", "old_password").WithMessageCode(constants.MsgWrongOldPassword)
	}
	if req.NewPassword != req.ConfirmPassword {
		return errors.NewValidationError("passwords do not match", "confirm_password").WithMessageCode(constants.MsgPasswordMismatch)
	}
	if err := uc.passwordPolicy.Validate(req.NewPassword); err != nil {
		return errors.NewValidationError(err.Error(), "new_password").WithMessageCode(constants.MsgPasswordTooShort)
	}
	if req.NewPassword == req.OldPassword {
		return errors.NewValidationError("new password must differ from the old one", "new_password").WithMessageCode(constants.MsgPasswordSameAsOld)
	}

	hash, err := uc.passwordHasher.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	account.SetPasswordHash(hash)

	if err := uc.userRepo.Update(ctx, account); err != nil {
		uc.logger.Errorw("failed to save password", "user_id", userID, "error", err)
		return fmt.Errorf("failed to save password: %w", err)
	}

	uc.logger.Infow("password changed", "user_id", userID)
	return nil
}
