package subscription

import "context"

type ActiveSubscriptionReader interface {
	FindActiveForUser(ctx context.Context, userID uint) (*UserSubscription, error)
}

type PlanReader interface {
	GetByID(ctx context.Context, id uint) (*Plan, error)
}

type FeatureMatrixReader interface {
	ListRows(ctx context.Context) ([]*FeatureMatrixRow, error)
}

// FeatureResolver projects the feature matrix onto the tier of a user's
// current subscription. It never fails for missing data: no subscription,
// a dangling plan or an unknown slug all resolve to the free tier. Store
// errors are returned unchanged.
type FeatureResolver struct {
	subscriptions ActiveSubscriptionReader
	plans         PlanReader
	matrix        FeatureMatrixReader
	fallback      FallbackFeatures
}

func NewFeatureResolver(subscriptions ActiveSubscriptionReader, plans PlanReader, matrix FeatureMatrixReader, fallback FallbackFeatures) *FeatureResolver {
	return &FeatureResolver{
		subscriptions: subscriptions,
		plans:         plans,
		matrix:        matrix,
		fallback:      fallback,
	}
}

// ActivePlan returns the user's active subscription and its plan, both nil
// when there is none.
func (r *FeatureResolver) ActivePlan(ctx context.Context, userID uint) (*UserSubscription, *Plan, error) {
	sub, err := r.subscriptions.FindActiveForUser(ctx, userID)
	if err != nil || sub == nil {
		return nil, nil, err
	}

	plan, err := r.plans.GetByID(ctx, sub.PlanID())
	if err != nil {
		return nil, nil, err
	}
	return sub, plan, nil
}

// TierForSubject returns the normalized tier the user is entitled to.
func (r *FeatureResolver) TierForSubject(ctx context.Context, userID uint) (string, error) {
	_, plan, err := r.ActivePlan(ctx, userID)
	if err != nil {
		return "", err
	}
	if plan == nil {
		return TierFree, nil
	}
	return NormalizeTier(plan.Slug()), nil
}

// FeaturesForSubject returns the projected features for the user's tier.
// The result is empty when the matrix has no rows.
func (r *FeatureResolver) FeaturesForSubject(ctx context.Context, userID uint) (Features, error) {
	tier, err := r.TierForSubject(ctx, userID)
	if err != nil {
		return nil, err
	}
	return r.FeaturesForPlan(ctx, tier)
}

// FeaturesForPlan projects the matrix column for slug. Unknown slugs read the
// free column.
func (r *FeatureResolver) FeaturesForPlan(ctx context.Context, slug string) (Features, error) {
	tier := NormalizeTier(slug)

	rows, err := r.matrix.ListRows(ctx)
	if err != nil {
		return nil, err
	}

	features := make(Features, len(rows))
	for _, row := range rows {
		features[row.Key()] = row.Value(tier)
	}
	return features, nil
}

func (r *FeatureResolver) Fallback() FallbackFeatures {
	return r.fallback
}
