package organization

import "context"

// DepartmentRepository lookups return (nil, nil) when no row matches.
type DepartmentRepository interface {
	Create(ctx context.Context, department *Department) error
	GetByID(ctx context.Context, id uint) (*Department, error)
	// GetByName matches case-insensitively.
	GetByName(ctx context.Context, name string) (*Department, error)
	List(ctx context.Context) ([]*Department, error)
	Update(ctx context.Context, department *Department) error
	Delete(ctx context.Context, id uint) error
}

type RoleRepository interface {
	Create(ctx context.Context, role *Role) error
	GetByID(ctx context.Context, id uint) (*Role, error)
	// GetByName matches the role name case-insensitively within a department.
	GetByName(ctx context.Context, name string, departmentID uint) (*Role, error)
	// List returns roles ordered by name, optionally restricted to one department.
	List(ctx context.Context, departmentID *uint) ([]*Role, error)
	Update(ctx context.Context, role *Role) error
	Delete(ctx context.Context, id uint) error
}
