package permission

import "errors"

var (
	ErrPermissionNotFound = errors.New("permission not found")
	ErrCodenameRequired   = errors.New("codename is required")
	ErrCodenameExists     = errors.New("codename already exists")
	ErrGrantNotFound      = errors.New("permission grant not found")
)
