package permission

import "strings"

// Objects and actions guarded by the route policy. These are separate from
// permission codenames: the policy decides who may administer the system,
// codenames decide what a user may do inside it.
const (
	ObjectUsers         = "users"
	ObjectOrganization  = "organization"
	ObjectOrgStatus     = "organization_status"
	ObjectCredentials   = "credentials"
	ObjectPermissions   = "permissions"
	ObjectOtherAccounts = "other_accounts"
	ObjectFeatureMatrix = "feature_matrix"

	ActionManage = "manage"
)

// Policy subjects. A principal maps to every subject it qualifies for.
const (
	SubjectSuperuser  = "superuser"
	SubjectStaff      = "staff"
	SubjectRoleAdmin  = "role_admin"
	roleSubjectPrefix = "role:"
)

// Principal carries the account attributes the route policy is evaluated
// over.
type Principal struct {
	UserID    uint
	Staff     bool
	Superuser bool
	RoleName  string
}

// RoleSubject names the policy subject for a role.
func RoleSubject(roleName string) string {
	return roleSubjectPrefix + strings.TrimSpace(roleName)
}

func (p Principal) Subjects() []string {
	subjects := make([]string, 0, 3)
	if p.Superuser {
		subjects = append(subjects, SubjectSuperuser)
	}
	if p.Staff {
		subjects = append(subjects, SubjectStaff)
	}
	if strings.TrimSpace(p.RoleName) != "" {
		subjects = append(subjects, RoleSubject(p.RoleName))
	}
	return subjects
}

// PolicyEnforcer answers whether a principal may perform action on object.
type PolicyEnforcer interface {
	Enforce(p Principal, object, action string) (bool, error)
}
