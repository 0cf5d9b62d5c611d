package user

import (
	"fmt"
	"unicode"
)

// bcrypt ignores input past 72 bytes.
const maxPasswordLength = 72

// PasswordHasher hashes and checks passwords. Implemented with bcrypt in
// infrastructure.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type PasswordPolicy struct {
	MinLength     int
	RequireLetter bool
	RequireNumber bool
}

func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{MinLength: 8}
}

func (p PasswordPolicy) Validate(password string) error {
	if len(password) < p.MinLength {
		return fmt.Errorf("%w: must be at least %d characters long", ErrWeakPassword, p.MinLength)
	}
	if len(password) > maxPasswordLength {
		return fmt.Errorf("%w: must not exceed %d characters", ErrWeakPassword, maxPasswordLength)
	}

	var hasLetter, hasNumber bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsNumber(r):
			hasNumber = true
		}
	}

	if p.RequireLetter && !hasLetter {
		return fmt.Errorf("%w: must contain at least one letter", ErrWeakPassword)
	}
	if p.RequireNumber && !hasNumber {
		return fmt.Errorf("%w: must contain at least one number", ErrWeakPassword)
	}
	return nil
}
