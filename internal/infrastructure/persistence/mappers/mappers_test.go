package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portalkit/portalkit/internal/domain/subscription"
	"github.com/portalkit/portalkit/internal/domain/user"
	"github.com/portalkit/portalkit/internal/infrastructure/persistence/models"
)

func TestUserMapper_ToModelFoldsKeys(t *testing.T) {
	email, err := user.NewEmail("Alice@Example.com")
	require.NoError(t, err)
	u, err := user.NewUser("Alice", email, "hash")
	require.NoError(t, err)

	m := NewUserMapper().ToModel(u)
	assert.Equal(t, "Alice", m.Username)
	assert.Equal(t, "alice", m.UsernameKey)
	assert.Equal(t, "Alice@Example.com", m.Email)
	assert.Equal(t, "alice@example.com", m.EmailKey)
	assert.True(t, m.IsActive)
}

func TestUserMapper_ToEntityNil(t *testing.T) {
	u, err := NewUserMapper().ToEntity(nil)
	assert.NoError(t, err)
	assert.Nil(t, u)
}

func TestPlanMapper_DescriptionNullability(t *testing.T) {
	now := time.Now()
	p := PlanToEntity(&models.PlanModel{ID: 1, Slug: "pro", Name: "Pro", Currency: "INR", IsActive: true, CreatedAt: now, UpdatedAt: now})
	assert.Equal(t, "", p.Description())
	assert.Nil(t, PlanToModel(p).Description)
}

func TestFeatureRowRoundTrip(t *testing.T) {
	yes := "yes"
	m := &models.FeatureMatrixModel{ID: 2, Slug: "can_use_ai", Name: "AI", Pro: &yes, DataType: subscription.DataTypeBoolean}

	back := FeatureRowToModel(FeatureRowToEntity(m))
	assert.Equal(t, m, back)
}
