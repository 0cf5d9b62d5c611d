// Package subscription is the application service for plans, subscriptions
// and feature gates.
package subscription

import (
	"context"

	"github.com/portalkit/portalkit/internal/application/subscription/dto"
	"github.com/portalkit/portalkit/internal/application/subscription/usecases"
	domainSubscription "github.com/portalkit/portalkit/internal/domain/subscription"
	"github.com/portalkit/portalkit/internal/shared/biztime"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

type ServiceDDD struct {
	subscribeUC *usecases.SubscribeUseCase
	currentUC   *usecases.CurrentSubscriptionUseCase
	listPlansUC *usecases.ListPlansUseCase
	historyUC   *usecases.SubscriptionHistoryUseCase
	gateUC      *usecases.FeatureGateUseCase
	matrixUC    *usecases.FeatureMatrixUseCase
	logger      logger.Interface
}

// NewServiceDDD wires the use cases. features is normally the feature cache
// sitting in front of resolver, and invalidator the same cache.
func NewServiceDDD(
	planRepo domainSubscription.PlanRepository,
	subscriptionRepo domainSubscription.UserSubscriptionRepository,
	matrixRepo domainSubscription.FeatureMatrixRepository,
	resolver *domainSubscription.FeatureResolver,
	features usecases.PlanFeatureSource,
	invalidator usecases.ProjectionInvalidator,
	txMgr usecases.TransactionRunner,
	recorder usecases.OutcomeRecorder,
	logger logger.Interface,
) *ServiceDDD {
	fallback := resolver.Fallback()
	return &ServiceDDD{
		subscribeUC: usecases.NewSubscribeUseCase(planRepo, subscriptionRepo, features, fallback, txMgr, biztime.NowUTC, recorder, logger),
		currentUC:   usecases.NewCurrentSubscriptionUseCase(resolver, features, planRepo, fallback, logger),
		listPlansUC: usecases.NewListPlansUseCase(planRepo, features, logger),
		historyUC:   usecases.NewSubscriptionHistoryUseCase(subscriptionRepo, planRepo, features, fallback, logger),
		gateUC:      usecases.NewFeatureGateUseCase(resolver, features, fallback, recorder, logger),
		matrixUC:    usecases.NewFeatureMatrixUseCase(matrixRepo, invalidator, logger),
		logger:      logger,
	}
}

func (s *ServiceDDD) Subscribe(ctx context.Context, userID uint, req dto.SubscribeRequest) (*dto.SubscriptionDTO, error) {
	return s.subscribeUC.Execute(ctx, userID, req)
}

// CurrentSubscription returns the subscription claim for the user.
func (s *ServiceDDD) CurrentSubscription(ctx context.Context, userID uint) (*dto.SubscriptionClaim, error) {
	return s.currentUC.Execute(ctx, userID)
}

func (s *ServiceDDD) ListPlans(ctx context.Context) ([]*dto.PlanDTO, error) {
	return s.listPlansUC.Execute(ctx)
}

func (s *ServiceDDD) History(ctx context.Context, userID uint) ([]*dto.SubscriptionDTO, error) {
	return s.historyUC.Execute(ctx, userID)
}

func (s *ServiceDDD) FeatureAllowed(ctx context.Context, userID uint, feature string) (bool, error) {
	return s.gateUC.Allowed(ctx, userID, feature)
}

func (s *ServiceDDD) ListFeatureMatrix(ctx context.Context) ([]*dto.FeatureRowDTO, error) {
	return s.matrixUC.List(ctx)
}

// SaveFeatureRow creates or replaces a matrix row and drops cached projections.
func (s *ServiceDDD) SaveFeatureRow(ctx context.Context, req dto.SaveFeatureRowRequest) (*dto.FeatureRowDTO, error) {
	return s.matrixUC.Save(ctx, req)
}
