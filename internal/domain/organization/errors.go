package organization

import "errors"

var (
	ErrNameRequired       = errors.New("name is required")
	ErrDepartmentRequired = errors.New("department is required")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrDepartmentExists   = errors.New("department already exists")
	ErrRoleNotFound       = errors.New("role not found")
	ErrRoleExists         = errors.New("role already exists in department")
)
