package permission

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryGrants is an in-memory store satisfying every reader the resolver
// needs. Calls are counted so tests can assert short-circuiting.
type memoryGrants struct {
	permissions map[string]uint
	codenames   map[uint]string
	overrides   map[[2]uint]bool
	roles       map[[2]uint]bool
	departments map[[2]uint]bool

	roleCalls int
	deptCalls int
	failWith  error
}

func newMemoryGrants() *memoryGrants {
	return &memoryGrants{
		permissions: map[string]uint{},
		codenames:   map[uint]string{},
		overrides:   map[[2]uint]bool{},
		roles:       map[[2]uint]bool{},
		departments: map[[2]uint]bool{},
	}
}

func (m *memoryGrants) addPermission(codename string) uint {
	id := uint(len(m.permissions) + 1)
	m.permissions[codename] = id
	m.codenames[id] = codename
	return id
}

func (m *memoryGrants) GetByCodename(_ context.Context, codename string) (*Permission, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	id, ok := m.permissions[codename]
	if !ok {
		return nil, nil
	}
	return ReconstructPermission(id, codename, codename, "", zeroTime, zeroTime)
}

func (m *memoryGrants) FindForUser(_ context.Context, userID, permissionID uint) (*UserOverride, error) {
	allowed, ok := m.overrides[[2]uint{userID, permissionID}]
	if !ok {
		return nil, nil
	}
	return ReconstructUserOverride(1, userID, permissionID, allowed), nil
}

func (m *memoryGrants) ListCodenamesForUser(_ context.Context, userID uint) ([]CodenameGrant, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	var out []CodenameGrant
	for k, v := range m.overrides {
		if k[0] == userID {
			out = append(out, CodenameGrant{Codename: m.codenames[k[1]], Allowed: v})
		}
	}
	return out, nil
}

func (m *memoryGrants) FindForRole(_ context.Context, roleID, permissionID uint) (*RoleGrant, error) {
	m.roleCalls++
	allowed, ok := m.roles[[2]uint{roleID, permissionID}]
	if !ok {
		return nil, nil
	}
	return ReconstructRoleGrant(1, roleID, permissionID, allowed), nil
}

func (m *memoryGrants) ListCodenamesForRole(_ context.Context, roleID uint) ([]CodenameGrant, error) {
	var out []CodenameGrant
	for k, v := range m.roles {
		if k[0] == roleID {
			out = append(out, CodenameGrant{Codename: m.codenames[k[1]], Allowed: v})
		}
	}
	return out, nil
}

func (m *memoryGrants) ExistsForDepartment(_ context.Context, departmentID, permissionID uint) (bool, error) {
	m.deptCalls++
	return m.departments[[2]uint{departmentID, permissionID}], nil
}

func (m *memoryGrants) ListCodenamesForDepartment(_ context.Context, departmentID uint) ([]string, error) {
	var out []string
	for k := range m.departments {
		if k[0] == departmentID {
			out = append(out, m.codenames[k[1]])
		}
	}
	return out, nil
}

func (m *memoryGrants) resolver() *Resolver {
	return NewResolver(m, m, m, m)
}

func uintPtr(v uint) *uint { return &v }

const (
	userID = uint(7)
	roleID = uint(3)
	deptID = uint(2)
)

func fullSubject() Subject {
	return Subject{UserID: userID, RoleID: uintPtr(roleID), DepartmentID: uintPtr(deptID)}
}

func TestResolver_Resolve(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		setup   func(m *memoryGrants, permID uint)
		subject Subject
		want    Decision
	}{
		{
			name:    "no rows anywhere denies",
			setup:   func(m *memoryGrants, permID uint) {},
			subject: fullSubject(),
			want:    Decision{Allowed: false, Reason: ReasonNotAllowed},
		},
		{
			name: "user override allow",
			setup: func(m *memoryGrants, permID uint) {
				m.overrides[[2]uint{userID, permID}] = true
				m.roles[[2]uint{roleID, permID}] = false
			},
			subject: fullSubject(),
			want:    Decision{Allowed: true, Reason: ReasonUserOverrideAllow},
		},
		{
			name: "user override deny beats role and department allow",
			setup: func(m *memoryGrants, permID uint) {
				m.overrides[[2]uint{userID, permID}] = false
				m.roles[[2]uint{roleID, permID}] = true
				m.departments[[2]uint{deptID, permID}] = true
			},
			subject: fullSubject(),
			want:    Decision{Allowed: false, Reason: ReasonUserOverrideDeny},
		},
		{
			name: "role allow",
			setup: func(m *memoryGrants, permID uint) {
				m.roles[[2]uint{roleID, permID}] = true
			},
			subject: fullSubject(),
			want:    Decision{Allowed: true, Reason: ReasonRoleAllowed},
		},
		{
			name: "role deny beats department allow",
			setup: func(m *memoryGrants, permID uint) {
				m.roles[[2]uint{roleID, permID}] = false
				m.departments[[2]uint{deptID, permID}] = true
			},
			subject: fullSubject(),
			want:    Decision{Allowed: false, Reason: ReasonRoleDenied},
		},
		{
			name: "department row alone allows",
			setup: func(m *memoryGrants, permID uint) {
				m.departments[[2]uint{deptID, permID}] = true
			},
			subject: fullSubject(),
			want:    Decision{Allowed: true, Reason: ReasonDepartmentAllowed},
		},
		{
			name: "role row is ignored when subject has no role",
			setup: func(m *memoryGrants, permID uint) {
				m.roles[[2]uint{roleID, permID}] = true
			},
			subject: Subject{UserID: userID, DepartmentID: uintPtr(deptID)},
			want:    Decision{Allowed: false, Reason: ReasonNotAllowed},
		},
		{
			name: "department row is ignored when subject has no department",
			setup: func(m *memoryGrants, permID uint) {
				m.departments[[2]uint{deptID, permID}] = true
			},
			subject: Subject{UserID: userID, RoleID: uintPtr(roleID)},
			want:    Decision{Allowed: false, Reason: ReasonNotAllowed},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMemoryGrants()
			permID := m.addPermission("edit_user")
			tt.setup(m, permID)

			got, err := m.resolver().Resolve(ctx, tt.subject, "edit_user")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_Resolve_ShortCircuits(t *testing.T) {
	m := newMemoryGrants()
	permID := m.addPermission("edit_user")
	m.roles[[2]uint{roleID, permID}] = false
	m.departments[[2]uint{deptID, permID}] = true

	got, err := m.resolver().Resolve(context.Background(), fullSubject(), "edit_user")
	require.NoError(t, err)

	assert.Equal(t, ReasonRoleDenied, got.Reason)
	assert.Equal(t, 1, m.roleCalls)
	assert.Equal(t, 0, m.deptCalls, "department tier must not be consulted once the role tier decided")
}

func TestResolver_Resolve_CodenameEdgeCases(t *testing.T) {
	m := newMemoryGrants()
	m.addPermission("view_reports")
	r := m.resolver()

	got, err := r.Resolve(context.Background(), fullSubject(), "")
	require.NoError(t, err)
	assert.Equal(t, Decision{Reason: ReasonCodenameMissing}, got)

	got, err = r.Resolve(context.Background(), fullSubject(), "does_not_exist")
	require.NoError(t, err)
	assert.Equal(t, Decision{Reason: ReasonInvalidPermission}, got)
}

func TestResolver_Resolve_IsDeterministic(t *testing.T) {
	m := newMemoryGrants()
	permID := m.addPermission("edit_user")
	m.departments[[2]uint{deptID, permID}] = true
	r := m.resolver()

	first, err := r.Resolve(context.Background(), fullSubject(), "edit_user")
	require.NoError(t, err)
	second, err := r.Resolve(context.Background(), fullSubject(), "edit_user")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResolver_Resolve_PropagatesStoreErrors(t *testing.T) {
	storeErr := errors.New("store unavailable")
	m := newMemoryGrants()
	m.failWith = storeErr

	_, err := m.resolver().Resolve(context.Background(), fullSubject(), "edit_user")
	assert.ErrorIs(t, err, storeErr)

	_, err = m.resolver().ResolveAll(context.Background(), fullSubject())
	assert.ErrorIs(t, err, storeErr)
}

func TestResolver_ResolveAll(t *testing.T) {
	m := newMemoryGrants()
	editUser := m.addPermission("edit_user")
	viewReports := m.addPermission("view_reports")
	deleteUser := m.addPermission("delete_user")
	exportData := m.addPermission("Export_data")
	approve := m.addPermission("approve")

	// user tier: deny delete_user, allow approve
	m.overrides[[2]uint{userID, deleteUser}] = false
	m.overrides[[2]uint{userID, approve}] = true
	// role tier: deny edit_user, allow delete_user (shadowed by override)
	m.roles[[2]uint{roleID, editUser}] = false
	m.roles[[2]uint{roleID, deleteUser}] = true
	// department tier: edit_user (shadowed by role deny), view_reports, Export_data
	m.departments[[2]uint{deptID, editUser}] = true
	m.departments[[2]uint{deptID, viewReports}] = true
	m.departments[[2]uint{deptID, exportData}] = true

	got, err := m.resolver().ResolveAll(context.Background(), fullSubject())
	require.NoError(t, err)

	assert.Equal(t, []string{"Export_data", "approve", "view_reports"}, got)
}

func TestResolver_ResolveAll_MatchesResolve(t *testing.T) {
	m := newMemoryGrants()
	codenames := []string{"a", "b", "c", "d"}
	ids := make([]uint, len(codenames))
	for i, c := range codenames {
		ids[i] = m.addPermission(c)
	}
	m.overrides[[2]uint{userID, ids[0]}] = false
	m.roles[[2]uint{roleID, ids[0]}] = true
	m.roles[[2]uint{roleID, ids[1]}] = true
	m.departments[[2]uint{deptID, ids[2]}] = true

	r := m.resolver()
	bulk, err := r.ResolveAll(context.Background(), fullSubject())
	require.NoError(t, err)

	var single []string
	for _, c := range codenames {
		d, err := r.Resolve(context.Background(), fullSubject(), c)
		require.NoError(t, err)
		if d.Allowed {
			single = append(single, c)
		}
	}
	assert.Equal(t, single, bulk)
}

func TestResolver_ResolveAll_EmptySubject(t *testing.T) {
	m := newMemoryGrants()
	got, err := m.resolver().ResolveAll(context.Background(), Subject{UserID: 99})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}
