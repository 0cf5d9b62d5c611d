package usecases

import (
	"context"

	"github.com/portalkit/portalkit/internal/domain/subscription"
)

// TransactionRunner is satisfied by db.TransactionManager.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// PlanFeatureSource projects the feature matrix for a plan slug. The feature
// cache and the resolver itself both satisfy it.
type PlanFeatureSource interface {
	FeaturesForPlan(ctx context.Context, slug string) (subscription.Features, error)
}

// EntitlementResolver is the subscription half of subscription.FeatureResolver.
type EntitlementResolver interface {
	ActivePlan(ctx context.Context, userID uint) (*subscription.UserSubscription, *subscription.Plan, error)
	TierForSubject(ctx context.Context, userID uint) (string, error)
}

type OutcomeRecorder interface {
	RecordSubscribe(outcome string)
	RecordFeatureGate(feature string, allowed, fallback bool)
}

// Subscribe outcomes reported to the recorder.
const (
	OutcomeCreated      = "created"
	OutcomeInvalid      = "invalid"
	OutcomePlanNotFound = "plan_not_found"
	OutcomeError        = "error"
)
