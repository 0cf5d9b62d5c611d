package usecases

import (
	"context"
	"fmt"

	"github.com/portalkit/portalkit/internal/application/subscription/dto"
	"github.com/portalkit/portalkit/internal/domain/subscription"
	"github.com/portalkit/portalkit/internal/shared/biztime"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

// CurrentSubscriptionUseCase builds the subscription claim. The chain is:
// the active subscription, then the active "free" plan row, then a
// hard-coded free claim built from the fallback features.
type CurrentSubscriptionUseCase struct {
	resolver EntitlementResolver
	features PlanFeatureSource
	planRepo subscription.PlanRepository
	fallback subscription.FallbackFeatures
	logger   logger.Interface
}

func NewCurrentSubscriptionUseCase(
	resolver EntitlementResolver,
	features PlanFeatureSource,
	planRepo subscription.PlanRepository,
	fallback subscription.FallbackFeatures,
	logger logger.Interface,
) *CurrentSubscriptionUseCase {
	return &CurrentSubscriptionUseCase{
		resolver: resolver,
		features: features,
		planRepo: planRepo,
		fallback: fallback,
		logger:   logger,
	}
}

func (uc *CurrentSubscriptionUseCase) Execute(ctx context.Context, userID uint) (*dto.SubscriptionClaim, error) {
	sub, plan, err := uc.resolver.ActivePlan(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get active subscription", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get active subscription: %w", err)
	}

	if sub != nil && plan != nil {
		features := uc.projected(ctx, plan.Slug())
		id := sub.ID()
		started := sub.StartedAt()
		return dto.NewClaim(&id, plan.Slug(), plan.Name(), sub.Status(),
			biztime.FormatISO(&started), biztime.FormatISO(sub.ExpiresAt()),
			plan.PriceCents(), features), nil
	}

	free, err := uc.planRepo.GetBySlug(ctx, subscription.TierFree)
	if err != nil {
		uc.logger.Errorw("failed to get free plan", "error", err)
		return nil, fmt.Errorf("failed to get free plan: %w", err)
	}
	if free != nil && free.IsActive() {
		features := uc.projected(ctx, subscription.TierFree)
		return dto.NewClaim(nil, free.Slug(), free.Name(), subscription.StatusFree,
			nil, nil, free.PriceCents(), features), nil
	}

	return dto.HardcodedFreeClaim(uc.fallback), nil
}

func (uc *CurrentSubscriptionUseCase) projected(ctx context.Context, slug string) subscription.Features {
	features, _ := projectFeatures(ctx, uc.features, uc.fallback, slug, uc.logger)
	return features
}
