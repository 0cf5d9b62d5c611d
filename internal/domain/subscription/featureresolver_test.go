package subscription

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockActiveSubscriptions struct {
	FindActiveForUserFunc func(ctx context.Context, userID uint) (*UserSubscription, error)
}

func (m *mockActiveSubscriptions) FindActiveForUser(ctx context.Context, userID uint) (*UserSubscription, error) {
	return m.FindActiveForUserFunc(ctx, userID)
}

type mockPlans struct {
	plans map[uint]*Plan
	err   error
}

func (m *mockPlans) GetByID(_ context.Context, id uint) (*Plan, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.plans[id], nil
}

type mockMatrix struct {
	rows  []*FeatureMatrixRow
	err   error
	calls int
}

func (m *mockMatrix) ListRows(context.Context) ([]*FeatureMatrixRow, error) {
	m.calls++
	return m.rows, m.err
}

func sampleMatrix() *mockMatrix {
	return &mockMatrix{rows: []*FeatureMatrixRow{
		ReconstructFeatureMatrixRow(1, FeatureCanUseAI, "Use AI", DataTypeBoolean,
			strPtr("false"), strPtr("false"), strPtr("true"), strPtr("true")),
		ReconstructFeatureMatrixRow(2, FeatureCanEditProfile, "Edit profile", DataTypeBoolean,
			strPtr("Yes"), strPtr("yes"), strPtr("yes"), strPtr("yes")),
		ReconstructFeatureMatrixRow(3, FeatureMaxProjects, "Max projects", DataTypeInteger,
			strPtr("1"), strPtr("5"), strPtr("20"), nil),
	}}
}

func noSubscription() *mockActiveSubscriptions {
	return &mockActiveSubscriptions{FindActiveForUserFunc: func(context.Context, uint) (*UserSubscription, error) {
		return nil, nil
	}}
}

func activeOn(planID uint) *mockActiveSubscriptions {
	return &mockActiveSubscriptions{FindActiveForUserFunc: func(_ context.Context, userID uint) (*UserSubscription, error) {
		return ReconstructUserSubscription(10, userID, planID, time.Now(), nil, true, StatusActive, nil, nil, time.Now(), time.Now()), nil
	}}
}

func plansFixture() *mockPlans {
	now := time.Now()
	return &mockPlans{plans: map[uint]*Plan{
		1: ReconstructPlan(1, "free", "Free", "", 0, "INR", "monthly", "monthly", true, now, now),
		3: ReconstructPlan(3, "pro", "Pro", "", 49900, "INR", "monthly", "monthly", true, now, now),
		9: ReconstructPlan(9, "legacy-gold", "Gold", "", 99900, "INR", "monthly", "monthly", true, now, now),
	}}
}

func TestFeatureResolver_FeaturesForSubject(t *testing.T) {
	ctx := context.Background()

	t.Run("no subscription projects the free column", func(t *testing.T) {
		r := NewFeatureResolver(noSubscription(), plansFixture(), sampleMatrix(), DefaultFallbackFeatures())

		got, err := r.FeaturesForSubject(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, Features{
			FeatureCanUseAI:       false,
			FeatureCanEditProfile: true,
			FeatureMaxProjects:    int64(1),
		}, got)
	})

	t.Run("active pro subscription", func(t *testing.T) {
		r := NewFeatureResolver(activeOn(3), plansFixture(), sampleMatrix(), DefaultFallbackFeatures())

		got, err := r.FeaturesForSubject(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, true, got[FeatureCanUseAI])
		assert.Equal(t, int64(20), got[FeatureMaxProjects])
	})

	t.Run("unknown plan slug coerces to free", func(t *testing.T) {
		r := NewFeatureResolver(activeOn(9), plansFixture(), sampleMatrix(), DefaultFallbackFeatures())

		tier, err := r.TierForSubject(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, TierFree, tier)
	})

	t.Run("dangling plan reference resolves to free", func(t *testing.T) {
		r := NewFeatureResolver(activeOn(404), plansFixture(), sampleMatrix(), DefaultFallbackFeatures())

		tier, err := r.TierForSubject(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, TierFree, tier)
	})

	t.Run("store error propagates", func(t *testing.T) {
		storeErr := errors.New("connection reset")
		subs := &mockActiveSubscriptions{FindActiveForUserFunc: func(context.Context, uint) (*UserSubscription, error) {
			return nil, storeErr
		}}
		r := NewFeatureResolver(subs, plansFixture(), sampleMatrix(), DefaultFallbackFeatures())

		_, err := r.FeaturesForSubject(ctx, 1)
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestFeatureResolver_FeaturesForPlan_IsIdempotent(t *testing.T) {
	matrix := sampleMatrix()
	r := NewFeatureResolver(noSubscription(), plansFixture(), matrix, DefaultFallbackFeatures())

	first, err := r.FeaturesForPlan(context.Background(), "basic")
	require.NoError(t, err)
	second, err := r.FeaturesForPlan(context.Background(), "basic")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(5), first[FeatureMaxProjects])
}

func TestFallbackFeatures_Or(t *testing.T) {
	ctx := context.Background()

	t.Run("empty matrix falls back", func(t *testing.T) {
		r := NewFeatureResolver(noSubscription(), plansFixture(), &mockMatrix{}, DefaultFallbackFeatures())

		got, used := r.Fallback().Or(r.FeaturesForSubject(ctx, 1))
		assert.True(t, used)
		assert.Equal(t, Features{
			FeatureCanUseAI:          false,
			FeatureCanEditProfile:    true,
			FeatureCanChangePassword: true,
			FeatureMaxProjects:       int64(1),
		}, got)
	})

	t.Run("matrix failure falls back to configured set", func(t *testing.T) {
		fallback := FallbackFeatures{CanUseAI: true, CanEditProfile: false, CanChangePassword: true, MaxProjects: 3}
		r := NewFeatureResolver(noSubscription(), plansFixture(), &mockMatrix{err: errors.New("table missing")}, fallback)

		got, used := r.Fallback().Or(r.FeaturesForPlan(ctx, "pro"))
		assert.True(t, used)
		assert.True(t, got.Bool(FeatureCanUseAI, false))
		assert.Equal(t, int64(3), *got.Int(FeatureMaxProjects))
	})

	t.Run("populated matrix is returned as is", func(t *testing.T) {
		r := NewFeatureResolver(noSubscription(), plansFixture(), sampleMatrix(), DefaultFallbackFeatures())

		got, used := r.Fallback().Or(r.FeaturesForPlan(ctx, "free"))
		assert.False(t, used)
		assert.Len(t, got, 3)
	})
}
