package passwordreset

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"
)

const DefaultCodeLength = 6

var (
	ErrEmailRequired = errors.New("email is required")
	ErrCodeInvalid   = errors.New("invalid verification code")
	ErrCodeExpired   = errors.New("verification code expired")
)

// OTPCode is a one-time code mailed to an address for a password reset.
type OTPCode struct {
	id        uint
	email     string
	code      string
	expiresAt time.Time
}

func NewOTPCode(email, code string, now time.Time, ttl time.Duration) (*OTPCode, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	return &OTPCode{email: email, code: code, expiresAt: now.Add(ttl)}, nil
}

func ReconstructOTPCode(id uint, email, code string, expiresAt time.Time) *OTPCode {
	return &OTPCode{id: id, email: email, code: code, expiresAt: expiresAt}
}

func (o *OTPCode) ID() uint             { return o.id }
func (o *OTPCode) Email() string        { return o.email }
func (o *OTPCode) Code() string         { return o.code }
func (o *OTPCode) ExpiresAt() time.Time { return o.expiresAt }

func (o *OTPCode) SetID(id uint) {
	o.id = id
}

// Expired reports whether now is past the expiry time.
func (o *OTPCode) Expired(now time.Time) bool {
	return now.After(o.expiresAt)
}

// GenerateCode returns a zero-padded numeric code of the given length.
func GenerateCode(length int) (string, error) {
	if length <= 0 {
		length = DefaultCodeLength
	}
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length)), nil)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	return fmt.Sprintf("%0*d", length, n), nil
}
