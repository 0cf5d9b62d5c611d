package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/portalkit/portalkit/internal/application/subscription/dto"
	"github.com/portalkit/portalkit/internal/domain/subscription"
	"github.com/portalkit/portalkit/internal/shared/biztime"
	"github.com/portalkit/portalkit/internal/shared/errors"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

// SubscribeUseCase replaces the user's active subscription with a new one for
// the requested plan. Expiring the old rows and inserting the new row happen
// in one transaction that holds locks on the user's active rows, so a user
// never ends up with two active subscriptions.
type SubscribeUseCase struct {
	planRepo         subscription.PlanRepository
	subscriptionRepo subscription.UserSubscriptionRepository
	features         PlanFeatureSource
	fallback         subscription.FallbackFeatures
	txMgr            TransactionRunner
	clock            biztime.Clock
	recorder         OutcomeRecorder
	logger           logger.Interface
}

func NewSubscribeUseCase(
	planRepo subscription.PlanRepository,
	subscriptionRepo subscription.UserSubscriptionRepository,
	features PlanFeatureSource,
	fallback subscription.FallbackFeatures,
	txMgr TransactionRunner,
	clock biztime.Clock,
	recorder OutcomeRecorder,
	logger logger.Interface,
) *SubscribeUseCase {
	if clock == nil {
		clock = biztime.NowUTC
	}
	return &SubscribeUseCase{
		planRepo:         planRepo,
		subscriptionRepo: subscriptionRepo,
		features:         features,
		fallback:         fallback,
		txMgr:            txMgr,
		clock:            clock,
		recorder:         recorder,
		logger:           logger,
	}
}

func (uc *SubscribeUseCase) Execute(ctx context.Context, userID uint, req dto.SubscribeRequest) (*dto.SubscriptionDTO, error) {
	slug := strings.TrimSpace(req.PlanSlug)
	if slug == "" {
		uc.recorder.RecordSubscribe(OutcomeInvalid)
		return nil, errors.NewValidationError(subscription.ErrPlanSlugRequired.Error())
	}

	plan, err := uc.planRepo.GetBySlug(ctx, slug)
	if err != nil {
		uc.recorder.RecordSubscribe(OutcomeError)
		uc.logger.Errorw("failed to get plan", "plan_slug", slug, "error", err)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if plan == nil || !plan.IsActive() {
		uc.recorder.RecordSubscribe(OutcomePlanNotFound)
		return nil, errors.NewNotFoundError("plan not found")
	}

	now := uc.clock()
	var created *subscription.UserSubscription

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		current, err := uc.subscriptionRepo.LockActiveForUser(txCtx, userID)
		if err != nil {
			return err
		}

		for _, sub := range current {
			if err := sub.Expire(now); err != nil {
				return err
			}
			if err := uc.subscriptionRepo.Update(txCtx, sub); err != nil {
				return err
			}
		}

		sub, err := subscription.NewUserSubscription(userID, plan.ID(), now, req.PaymentProvider, req.PaymentReference)
		if err != nil {
			return err
		}
		if err := uc.subscriptionRepo.Create(txCtx, sub); err != nil {
			return err
		}

		active, err := uc.subscriptionRepo.CountActiveForUser(txCtx, userID)
		if err != nil {
			return err
		}
		if active != 1 {
			return fmt.Errorf("%w: user %d has %d", subscription.ErrMultipleActive, userID, active)
		}
		created = sub
		return nil
	})
	if err != nil {
		uc.recorder.RecordSubscribe(OutcomeError)
		uc.logger.Errorw("subscribe transaction failed", "user_id", userID, "plan_slug", slug, "error", err)
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	uc.recorder.RecordSubscribe(OutcomeCreated)
	uc.logger.Infow("user subscribed",
		"user_id", userID,
		"plan_slug", plan.Slug(),
		"subscription_id", created.ID(),
	)

	features, _ := projectFeatures(ctx, uc.features, uc.fallback, plan.Slug(), uc.logger)
	return dto.ToSubscriptionDTO(created, plan, features), nil
}
