package subscription

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTier(t *testing.T) {
	assert.Equal(t, TierPro, NormalizeTier("pro"))
	assert.Equal(t, TierEnterprise, NormalizeTier(" Enterprise "))
	assert.Equal(t, TierFree, NormalizeTier("platinum"))
	assert.Equal(t, TierFree, NormalizeTier(""))
}

func TestNewPlan(t *testing.T) {
	p, err := NewPlan(" PRO ", "Pro", "", 49900, "", "")
	require.NoError(t, err)
	assert.Equal(t, "pro", p.Slug())
	assert.Equal(t, "INR", p.Currency())
	assert.Equal(t, "monthly", p.BillingCycle())
	assert.True(t, p.IsActive())

	_, err = NewPlan("", "Pro", "", 0, "", "")
	assert.ErrorIs(t, err, ErrPlanSlugRequired)

	_, err = NewPlan("pro", "Pro", "", -1, "", "")
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestUserSubscription_Expire(t *testing.T) {
	start := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	provider := "razorpay"

	sub, err := NewUserSubscription(1, 2, start, &provider, nil)
	require.NoError(t, err)
	assert.True(t, sub.IsActive())
	assert.Equal(t, StatusActive, sub.Status())
	assert.Nil(t, sub.ExpiresAt())

	later := start.Add(time.Hour)
	require.NoError(t, sub.Expire(later))
	assert.False(t, sub.IsActive())
	assert.Equal(t, StatusExpired, sub.Status())
	require.NotNil(t, sub.ExpiresAt())
	assert.Equal(t, later, *sub.ExpiresAt())
	assert.Equal(t, start, sub.StartedAt(), "start time never changes")

	err = sub.Expire(later.Add(time.Hour))
	assert.True(t, errors.Is(err, ErrInvalidStatusTransition))
}

func TestNewUserSubscription_RequiresIDs(t *testing.T) {
	_, err := NewUserSubscription(0, 1, time.Now(), nil, nil)
	assert.Error(t, err)
	_, err = NewUserSubscription(1, 0, time.Now(), nil, nil)
	assert.Error(t, err)
}
