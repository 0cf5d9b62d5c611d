package permission

import "context"

// Lookups return (nil, nil) when the row does not exist.

type PermissionRepository interface {
	Create(ctx context.Context, p *Permission) error
	GetByID(ctx context.Context, id uint) (*Permission, error)
	GetByCodename(ctx context.Context, codename string) (*Permission, error)
	List(ctx context.Context) ([]*Permission, error)
	Update(ctx context.Context, p *Permission) error
	Delete(ctx context.Context, id uint) error
}

type UserOverrideRepository interface {
	// Upsert inserts or updates the row for (user, permission).
	Upsert(ctx context.Context, o *UserOverride) error
	GetByID(ctx context.Context, id uint) (*UserOverride, error)
	List(ctx context.Context, userID *uint) ([]*UserOverride, error)
	Delete(ctx context.Context, id uint) error

	FindForUser(ctx context.Context, userID, permissionID uint) (*UserOverride, error)
	ListCodenamesForUser(ctx context.Context, userID uint) ([]CodenameGrant, error)
}

type RoleGrantRepository interface {
	Upsert(ctx context.Context, g *RoleGrant) error
	GetByID(ctx context.Context, id uint) (*RoleGrant, error)
	List(ctx context.Context, roleID *uint) ([]*RoleGrant, error)
	Delete(ctx context.Context, id uint) error

	FindForRole(ctx context.Context, roleID, permissionID uint) (*RoleGrant, error)
	ListCodenamesForRole(ctx context.Context, roleID uint) ([]CodenameGrant, error)
}

type DepartmentGrantRepository interface {
	// Create is idempotent on (department, permission).
	Create(ctx context.Context, g *DepartmentGrant) error
	GetByID(ctx context.Context, id uint) (*DepartmentGrant, error)
	List(ctx context.Context, departmentID *uint) ([]*DepartmentGrant, error)
	Delete(ctx context.Context, id uint) error

	ExistsForDepartment(ctx context.Context, departmentID, permissionID uint) (bool, error)
	ListCodenamesForDepartment(ctx context.Context, departmentID uint) ([]string, error)
}
