package usecases

import (
	"context"
	"fmt"

	"github.com/portalkit/portalkit/internal/domain/subscription"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

// FeatureGateUseCase answers feature questions for a user. Subscription
// lookups must succeed; a missing or unreadable matrix falls back to the
// configured feature set.
type FeatureGateUseCase struct {
	resolver EntitlementResolver
	features PlanFeatureSource
	fallback subscription.FallbackFeatures
	recorder OutcomeRecorder
	logger   logger.Interface
}

func NewFeatureGateUseCase(
	resolver EntitlementResolver,
	features PlanFeatureSource,
	fallback subscription.FallbackFeatures,
	recorder OutcomeRecorder,
	logger logger.Interface,
) *FeatureGateUseCase {
	return &FeatureGateUseCase{
		resolver: resolver,
		features: features,
		fallback: fallback,
		recorder: recorder,
		logger:   logger,
	}
}

// Features returns the user's projected features and whether the fallback
// set was served.
func (uc *FeatureGateUseCase) Features(ctx context.Context, userID uint) (subscription.Features, bool, error) {
	tier, err := uc.resolver.TierForSubject(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to resolve subscription tier", "user_id", userID, "error", err)
		return nil, false, fmt.Errorf("failed to resolve tier: %w", err)
	}

	features, fallback := projectFeatures(ctx, uc.features, uc.fallback, tier, uc.logger)
	return features, fallback, nil
}

// Allowed reports whether the boolean feature is enabled for the user. A
// feature the matrix does not mention is disabled.
func (uc *FeatureGateUseCase) Allowed(ctx context.Context, userID uint, feature string) (bool, error) {
	features, fallback, err := uc.Features(ctx, userID)
	if err != nil {
		return false, err
	}

	allowed := features.Bool(feature, false)
	uc.recorder.RecordFeatureGate(feature, allowed, fallback)
	if !allowed {
		uc.logger.Infow("feature gate denied", "user_id", userID, "feature", feature, "fallback", fallback)
	}
	return allowed, nil
}
