package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameRequired   = errors.New("username is required")
	ErrUsernameInvalid    = errors.New("username cannot contain whitespace")
	ErrUsernameExists     = errors.New("username already exists")
	ErrEmailRequired      = errors.New("email is required")
	ErrEmailInvalid       = errors.New("invalid email format")
	ErrEmailExists        = errors.New("email already exists")
	ErrPhoneTooLong       = errors.New("phone cannot exceed 15 characters")
	ErrWeakPassword       = errors.New("password does not meet policy")
	ErrPasswordMismatch   = errors.New("password does not match")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is inactive")
)
