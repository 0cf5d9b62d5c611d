package permission

import (
	"context"
	"sort"
)

// Reason explains which tier decided a permission check. The values are part
// of the public API.
type Reason string

const (
	ReasonUserOverrideAllow Reason = "user_override_allow"
	ReasonUserOverrideDeny  Reason = "user_override_deny"
	ReasonRoleAllowed       Reason = "role_allowed"
	ReasonRoleDenied        Reason = "role_denied"
	ReasonDepartmentAllowed Reason = "department_allowed"
	ReasonNotAllowed        Reason = "not_allowed"
	ReasonInvalidPermission Reason = "invalid_permission"
	ReasonCodenameMissing   Reason = "codename_missing"
)

// Subject is the identity being authorized. RoleID and DepartmentID are nil
// when the user has no role or department.
type Subject struct {
	UserID       uint
	RoleID       *uint
	DepartmentID *uint
}

type Decision struct {
	Allowed bool
	Reason  Reason
}

type PermissionLookup interface {
	GetByCodename(ctx context.Context, codename string) (*Permission, error)
}

type OverrideReader interface {
	FindForUser(ctx context.Context, userID, permissionID uint) (*UserOverride, error)
	ListCodenamesForUser(ctx context.Context, userID uint) ([]CodenameGrant, error)
}

type RoleGrantReader interface {
	FindForRole(ctx context.Context, roleID, permissionID uint) (*RoleGrant, error)
	ListCodenamesForRole(ctx context.Context, roleID uint) ([]CodenameGrant, error)
}

type DepartmentGrantReader interface {
	ExistsForDepartment(ctx context.Context, departmentID, permissionID uint) (bool, error)
	ListCodenamesForDepartment(ctx context.Context, departmentID uint) ([]string, error)
}

// Resolver computes effective permissions with the precedence
// user override > role grant > department grant > deny. The first tier that
// has a row decides, even when that row denies. Store errors are returned
// unchanged.
type Resolver struct {
	permissions PermissionLookup
	overrides   OverrideReader
	roles       RoleGrantReader
	departments DepartmentGrantReader
}

func NewResolver(permissions PermissionLookup, overrides OverrideReader, roles RoleGrantReader, departments DepartmentGrantReader) *Resolver {
	return &Resolver{
		permissions: permissions,
		overrides:   overrides,
		roles:       roles,
		departments: departments,
	}
}

// Resolve decides a single codename for subject.
func (r *Resolver) Resolve(ctx context.Context, subject Subject, codename string) (Decision, error) {
	if codename == "" {
		return Decision{Reason: ReasonCodenameMissing}, nil
	}

	perm, err := r.permissions.GetByCodename(ctx, codename)
	if err != nil {
		return Decision{}, err
	}
	if perm == nil {
		return Decision{Reason: ReasonInvalidPermission}, nil
	}

	override, err := r.overrides.FindForUser(ctx, subject.UserID, perm.ID())
	if err != nil {
		return Decision{}, err
	}
	if override != nil {
		if override.Allowed() {
			return Decision{Allowed: true, Reason: ReasonUserOverrideAllow}, nil
		}
		return Decision{Reason: ReasonUserOverrideDeny}, nil
	}

	if subject.RoleID != nil {
		grant, err := r.roles.FindForRole(ctx, *subject.RoleID, perm.ID())
		if err != nil {
			return Decision{}, err
		}
		if grant != nil {
			if grant.Allowed() {
				return Decision{Allowed: true, Reason: ReasonRoleAllowed}, nil
			}
			return Decision{Reason: ReasonRoleDenied}, nil
		}
	}

	if subject.DepartmentID != nil {
		exists, err := r.departments.ExistsForDepartment(ctx, *subject.DepartmentID, perm.ID())
		if err != nil {
			return Decision{}, err
		}
		if exists {
			return Decision{Allowed: true, Reason: ReasonDepartmentAllowed}, nil
		}
	}

	return Decision{Reason: ReasonNotAllowed}, nil
}

// ResolveAll returns every codename subject is allowed, sorted ascending by
// byte order. Each codename is decided by the highest tier that mentions it.
func (r *Resolver) ResolveAll(ctx context.Context, subject Subject) ([]string, error) {
	decided := make(map[string]bool)

	overrides, err := r.overrides.ListCodenamesForUser(ctx, subject.UserID)
	if err != nil {
		return nil, err
	}
	for _, g := range overrides {
		decided[g.Codename] = g.Allowed
	}

	if subject.RoleID != nil {
		grants, err := r.roles.ListCodenamesForRole(ctx, *subject.RoleID)
		if err != nil {
			return nil, err
		}
		for _, g := range grants {
			if _, ok := decided[g.Codename]; !ok {
				decided[g.Codename] = g.Allowed
			}
		}
	}

	if subject.DepartmentID != nil {
		codenames, err := r.departments.ListCodenamesForDepartment(ctx, *subject.DepartmentID)
		if err != nil {
			return nil, err
		}
		for _, c := range codenames {
			if _, ok := decided[c]; !ok {
				decided[c] = true
			}
		}
	}

	allowed := make([]string, 0, len(decided))
	for codename, ok := range decided {
		if ok {
			allowed = append(allowed, codename)
		}
	}
	sort.Strings(allowed)

	return allowed, nil
}
