package user

import "context"

// Repository lookups return (nil, nil) when no row matches. Username and
// email lookups compare folded values.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// GetByUsernameAndEmail requires both to match the same row.
	GetByUsernameAndEmail(ctx context.Context, username, email string) (*User, error)
	ExistsByUsername(ctx context.Context, username string, excludeID uint) (bool, error)
	ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)
	Stats(ctx context.Context) (*Stats, error)
}

type ListFilter struct {
	Page         int
	PageSize     int
	Search       string
	DepartmentID *uint
	RoleID       *uint
	Active       *bool
}

type Stats struct {
	Total    int64
	Active   int64
	Inactive int64
}
