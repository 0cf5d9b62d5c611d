package address

import "context"

type Repository interface {
	Create(ctx context.Context, address *Address) error
	// GetByID returns (nil, nil) when the address does not exist.
	GetByID(ctx context.Context, id uint) (*Address, error)
	// ListByUser returns the user's addresses, newest first.
	ListByUser(ctx context.Context, userID uint) ([]*Address, error)
	ExistsForUser(ctx context.Context, userID uint) (bool, error)
	Update(ctx context.Context, address *Address) error
}
