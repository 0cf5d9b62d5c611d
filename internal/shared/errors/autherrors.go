package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

const (
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
	ErrorTypeAccountInactive    ErrorType = "account_inactive"
	ErrorTypeTokenExpired       ErrorType = "token_expired"
	ErrorTypeTokenInvalid       ErrorType = "token_invalid"
)

// AuthError marks authentication failures. ShouldLog is false for expected
// outcomes such as a wrong password; SecurityEvent flags failures worth
// counting.
type AuthError struct {
	*AppError
	ShouldLog     bool
	SecurityEvent bool
}

func (e *AuthError) Error() string {
	return e.AppError.Error()
}

func (e *AuthError) Unwrap() error {
	return e.AppError
}

// NewInvalidCredentialsError does not reveal which of username or password
// was wrong.
func NewInvalidCredentialsError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:        ErrorTypeInvalidCredentials,
			Message:     "Invalid credentials",
			Code:        http.StatusUnauthorized,
			MessageCode: "EL001",
		},
		SecurityEvent: true,
	}
}

func NewAccountInactiveError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:        ErrorTypeAccountInactive,
			Message:     "Account is not active",
			Code:        http.StatusUnauthorized,
			MessageCode: "EL001",
		},
	}
}

func NewTokenExpiredError(tokenType string) *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeTokenExpired,
			Message: fmt.Sprintf("%s has expired", tokenType),
			Code:    http.StatusUnauthorized,
			Details: "Please login again",
		},
	}
}

func NewTokenInvalidError(tokenType string) *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeTokenInvalid,
			Message: fmt.Sprintf("Invalid %s", tokenType),
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     true,
		SecurityEvent: true,
	}
}

func GetAuthError(err error) *AuthError {
	var authErr *AuthError
	if stderrors.As(err, &authErr) {
		return authErr
	}
	return nil
}

// ShouldLogAuthError defaults to true for errors that are not AuthErrors.
func ShouldLogAuthError(err error) bool {
	if authErr := GetAuthError(err); authErr != nil {
		return authErr.ShouldLog
	}
	return true
}

func IsSecurityEvent(err error) bool {
	if authErr := GetAuthError(err); authErr != nil {
		return authErr.SecurityEvent
	}
	return false
}
