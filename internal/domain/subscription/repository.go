package subscription

import "context"

// Lookups return (nil, nil) when the row does not exist.

type PlanRepository interface {
	Create(ctx context.Context, plan *Plan) error
	GetByID(ctx context.Context, id uint) (*Plan, error)
	GetBySlug(ctx context.Context, slug string) (*Plan, error)
	// ListActive returns active plans ordered by price ascending.
	ListActive(ctx context.Context) ([]*Plan, error)
}

type UserSubscriptionRepository interface {
	Create(ctx context.Context, sub *UserSubscription) error
	Update(ctx context.Context, sub *UserSubscription) error
	// FindActiveForUser returns the active row with the latest started_at,
	// ties broken by the latest created_at.
	FindActiveForUser(ctx context.Context, userID uint) (*UserSubscription, error)
	// LockActiveForUser locks the user row and every active subscription row
	// of that user for the rest of the surrounding transaction.
	LockActiveForUser(ctx context.Context, userID uint) ([]*UserSubscription, error)
	// ListByUser returns all rows of a user, newest first.
	ListByUser(ctx context.Context, userID uint) ([]*UserSubscription, error)
	CountActiveForUser(ctx context.Context, userID uint) (int64, error)
}

type FeatureMatrixRepository interface {
	ListRows(ctx context.Context) ([]*FeatureMatrixRow, error)
	// Save inserts or updates the row identified by its key.
	Save(ctx context.Context, row *FeatureMatrixRow) error
}
