package user

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const maxEmailLength = 254

// Email is a validated address. The original casing is kept; comparisons
// go through the repository's folded lookups.
type Email struct {
	value string
}

func NewEmail(value string) (*Email, error) {
	value = strings.TrimSpace(value)

	if value == "" {
		return nil, ErrEmailRequired
	}
	if len(value) > maxEmailLength {
		return nil, fmt.Errorf("email cannot exceed %d characters", maxEmailLength)
	}
	if !emailRegex.MatchString(value) {
		return nil, fmt.Errorf("%w: %s", ErrEmailInvalid, value)
	}

	return &Email{value: value}, nil
}

func (e *Email) String() string {
	if e == nil {
		return ""
	}
	return e.value
}

func (e *Email) Domain() string {
	if _, domain, ok := strings.Cut(e.value, "@"); ok {
		return domain
	}
	return ""
}
