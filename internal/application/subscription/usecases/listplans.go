package usecases

import (
	"context"
	"fmt"

	"github.com/portalkit/portalkit/internal/application/subscription/dto"
	"github.com/portalkit/portalkit/internal/domain/subscription"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

// ListPlansUseCase returns the active plans, cheapest first, each with its
// projected feature column.
type ListPlansUseCase struct {
	planRepo subscription.PlanRepository
	features PlanFeatureSource
	logger   logger.Interface
}

func NewListPlansUseCase(planRepo subscription.PlanRepository, features PlanFeatureSource, logger logger.Interface) *ListPlansUseCase {
	return &ListPlansUseCase{planRepo: planRepo, features: features, logger: logger}
}

func (uc *ListPlansUseCase) Execute(ctx context.Context) ([]*dto.PlanDTO, error) {
	plans, err := uc.planRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list plans", "error", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	out := make([]*dto.PlanDTO, 0, len(plans))
	for _, p := range plans {
		features, err := uc.features.FeaturesForPlan(ctx, p.Slug())
		if err != nil {
			uc.logger.Errorw("failed to project plan features", "plan_slug", p.Slug(), "error", err)
			return nil, fmt.Errorf("failed to get plan features: %w", err)
		}
		out = append(out, dto.ToPlanDTO(p, features))
	}
	return out, nil
}

// SubscriptionHistoryUseCase lists every subscription row of a user, newest
// first.
type SubscriptionHistoryUseCase struct {
	subscriptionRepo subscription.UserSubscriptionRepository
	planRepo         subscription.PlanRepository
	features         PlanFeatureSource
	fallback         subscription.FallbackFeatures
	logger           logger.Interface
}

func NewSubscriptionHistoryUseCase(
	subscriptionRepo subscription.UserSubscriptionRepository,
	planRepo subscription.PlanRepository,
	features PlanFeatureSource,
	fallback subscription.FallbackFeatures,
	logger logger.Interface,
) *SubscriptionHistoryUseCase {
	return &SubscriptionHistoryUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		features:         features,
		fallback:         fallback,
		logger:           logger,
	}
}

func (uc *SubscriptionHistoryUseCase) Execute(ctx context.Context, userID uint) ([]*dto.SubscriptionDTO, error) {
	subs, err := uc.subscriptionRepo.ListByUser(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	plans := make(map[uint]*subscription.Plan)
	features := make(map[uint]subscription.Features)
	for _, s := range subs {
		if _, seen := plans[s.PlanID()]; seen {
			continue
		}
		plan, err := uc.planRepo.GetByID(ctx, s.PlanID())
		if err != nil {
			return nil, fmt.Errorf("failed to get plan: %w", err)
		}
		plans[s.PlanID()] = plan
		if plan != nil {
			features[s.PlanID()], _ = projectFeatures(ctx, uc.features, uc.fallback, plan.Slug(), uc.logger)
		}
	}

	return dto.ToSubscriptionDTOs(subs, plans, features), nil
}
