package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/portalkit/portalkit/internal/domain/user"
)

// BcryptPasswordHasher implements user.PasswordHasher.
type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to generate password hash: %w", err)
	}
	return string(hash), nil
}

// Verify reports every failure, malformed hashes included, as
// user.ErrInvalidCredentials.
func (h *BcryptPasswordHasher) Verify(password, hash string) error {
	if hash == "" {
		return user.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return user.ErrInvalidCredentials
		}
		return fmt.Errorf("%w: %v", user.ErrInvalidCredentials, err)
	}
	return nil
}
