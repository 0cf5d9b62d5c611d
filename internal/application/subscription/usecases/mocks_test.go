package usecases

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/portalkit/portalkit/internal/domain/subscription"
)

type mockPlanRepo struct {
	mock.Mock
}

func (m *mockPlanRepo) Create(ctx context.Context, plan *subscription.Plan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *mockPlanRepo) GetByID(ctx context.Context, id uint) (*subscription.Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Plan), args.Error(1)
}

func (m *mockPlanRepo) GetBySlug(ctx context.Context, slug string) (*subscription.Plan, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Plan), args.Error(1)
}

func (m *mockPlanRepo) ListActive(ctx context.Context) ([]*subscription.Plan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*subscription.Plan), args.Error(1)
}

type mockSubscriptionRepo struct {
	mock.Mock
}

func (m *mockSubscriptionRepo) Create(ctx context.Context, sub *subscription.UserSubscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *mockSubscriptionRepo) Update(ctx context.Context, sub *subscription.UserSubscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *mockSubscriptionRepo) FindActiveForUser(ctx context.Context, userID uint) (*subscription.UserSubscription, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.UserSubscription), args.Error(1)
}

func (m *mockSubscriptionRepo) LockActiveForUser(ctx context.Context, userID uint) ([]*subscription.UserSubscription, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*subscription.UserSubscription), args.Error(1)
}

func (m *mockSubscriptionRepo) ListByUser(ctx context.Context, userID uint) ([]*subscription.UserSubscription, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*subscription.UserSubscription), args.Error(1)
}

func (m *mockSubscriptionRepo) CountActiveForUser(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type mockEntitlementResolver struct {
	mock.Mock
}

func (m *mockEntitlementResolver) ActivePlan(ctx context.Context, userID uint) (*subscription.UserSubscription, *subscription.Plan, error) {
	args := m.Called(ctx, userID)
	var sub *subscription.UserSubscription
	var plan *subscription.Plan
	if args.Get(0) != nil {
		sub = args.Get(0).(*subscription.UserSubscription)
	}
	if args.Get(1) != nil {
		plan = args.Get(1).(*subscription.Plan)
	}
	return sub, plan, args.Error(2)
}

func (m *mockEntitlementResolver) TierForSubject(ctx context.Context, userID uint) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

type mockFeatureSource struct {
	mock.Mock
}

func (m *mockFeatureSource) FeaturesForPlan(ctx context.Context, slug string) (subscription.Features, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(subscription.Features), args.Error(1)
}

type mockOutcomeRecorder struct {
	mock.Mock
}

func (m *mockOutcomeRecorder) RecordSubscribe(outcome string) {
	m.Called(outcome)
}

func (m *mockOutcomeRecorder) RecordFeatureGate(feature string, allowed, fallback bool) {
	m.Called(feature, allowed, fallback)
}

// passThroughTx runs fn directly and counts the calls.
type passThroughTx struct {
	calls int
}

func (t *passThroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestPlan(id uint, slug string, priceCents int, active bool) *subscription.Plan {
	return subscription.ReconstructPlan(id, slug, slug+" plan", "", priceCents, "INR", "monthly", "monthly",
		active, testNow, testNow)
}

func newActiveSubscription(id, userID, planID uint, startedAt time.Time) *subscription.UserSubscription {
	return subscription.ReconstructUserSubscription(id, userID, planID, startedAt, nil, true,
		subscription.StatusActive, nil, nil, startedAt, startedAt)
}

type mockMatrixRepo struct {
	mock.Mock
}

func (m *mockMatrixRepo) ListRows(ctx context.Context) ([]*subscription.FeatureMatrixRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*subscription.FeatureMatrixRow), args.Error(1)
}

func (m *mockMatrixRepo) Save(ctx context.Context, row *subscription.FeatureMatrixRow) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

type countingInvalidator struct {
	calls int
}

func (c *countingInvalidator) Invalidate() { c.calls++ }
