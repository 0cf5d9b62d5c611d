package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/portalkit/portalkit/internal/domain/permission"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

func newTestEnforcer(t *testing.T) *Enforcer {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	e, err := NewEnforcer(db, "", logger.NewNop())
	require.NoError(t, err)
	require.NoError(t, e.SeedDefaults([]string{"Admin"}))
	return e
}

func TestEnforcerDefaultPolicy(t *testing.T) {
	e := newTestEnforcer(t)

	tests := []struct {
		name      string
		principal permission.Principal
		object    string
		want      bool
	}{
		{"plain user cannot manage users", permission.Principal{UserID: 1, RoleName: "User"}, permission.ObjectUsers, false},
		{"admin role manages users", permission.Principal{UserID: 2, RoleName: "Admin"}, permission.ObjectUsers, true},
		{"admin role cannot edit permissions", permission.Principal{UserID: 2, RoleName: "Admin"}, permission.ObjectPermissions, false},
		{"staff edits permissions", permission.Principal{UserID: 3, Staff: true}, permission.ObjectPermissions, true},
		{"staff inherits role admin", permission.Principal{UserID: 3, Staff: true}, permission.ObjectCredentials, true},
		{"superuser inherits staff", permission.Principal{UserID: 4, Superuser: true}, permission.ObjectOrgStatus, true},
		{"staff edits feature matrix", permission.Principal{UserID: 3, Staff: true}, permission.ObjectFeatureMatrix, true},
		{"admin role cannot edit feature matrix", permission.Principal{UserID: 2, RoleName: "Admin"}, permission.ObjectFeatureMatrix, false},
		{"no subjects", permission.Principal{UserID: 5}, permission.ObjectUsers, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, err := e.Enforce(tt.principal, tt.object, permission.ActionManage)
			require.NoError(t, err)
			assert.Equal(t, tt.want, allowed)
		})
	}
}

func TestEnforcerSeedIsIdempotent(t *testing.T) {
	e := newTestEnforcer(t)
	require.NoError(t, e.SeedDefaults([]string{"Admin"}))

	allowed, err := e.Enforce(permission.Principal{RoleName: "Admin"}, permission.ObjectOrganization, permission.ActionManage)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestEnforcerPolicyChangesApply(t *testing.T) {
	e := newTestEnforcer(t)
	auditor := permission.Principal{UserID: 9, RoleName: "Auditor"}

	allowed, err := e.Enforce(auditor, permission.ObjectUsers, permission.ActionManage)
	require.NoError(t, err)
	assert.False(t, allowed)

	require.NoError(t, e.AddPolicy(permission.RoleSubject("Auditor"), permission.ObjectUsers, permission.ActionManage))
	allowed, err = e.Enforce(auditor, permission.ObjectUsers, permission.ActionManage)
	require.NoError(t, err)
	assert.True(t, allowed)

	require.NoError(t, e.RemovePolicy(permission.RoleSubject("Auditor"), permission.ObjectUsers, permission.ActionManage))
	require.NoError(t, e.LoadPolicy())
	allowed, err = e.Enforce(auditor, permission.ObjectUsers, permission.ActionManage)
	require.NoError(t, err)
	assert.False(t, allowed)
}
