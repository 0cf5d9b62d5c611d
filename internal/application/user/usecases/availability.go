package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/portalkit/portalkit/internal/domain/user"
	"github.com/portalkit/portalkit/internal/shared/errors"
)

// AvailabilityUseCase answers whether a username or email is already taken,
// ignoring case.
type AvailabilityUseCase struct {
	userRepo user.Repository
}

func NewAvailabilityUseCase(userRepo user.Repository) *AvailabilityUseCase {
	return &AvailabilityUseCase{userRepo: userRepo}
}

func (uc *AvailabilityUseCase) UsernameExists(ctx context.Context, username string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return false, errors.NewBadRequestError("username is required")
	}
	exists, err := uc.userRepo.ExistsByUsername(ctx, username, 0)
	if err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return exists, nil
}

func (uc *AvailabilityUseCase) EmailExists(ctx context.Context, email string) (bool, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return false, errors.NewBadRequestError("email is required")
	}
	exists, err := uc.userRepo.ExistsByEmail(ctx, email, 0)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}
