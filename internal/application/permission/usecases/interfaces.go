package usecases

import (
	"context"

	"github.com/portalkit/portalkit/internal/domain/organization"
	"github.com/portalkit/portalkit/internal/domain/permission"
	"github.com/portalkit/portalkit/internal/domain/user"
)

// PermissionResolver is satisfied by permission.Resolver.
type PermissionResolver interface {
	Resolve(ctx context.Context, subject permission.Subject, codename string) (permission.Decision, error)
	ResolveAll(ctx context.Context, subject permission.Subject) ([]string, error)
}

// DecisionRecorder counts authorization outcomes.
type DecisionRecorder interface {
	RecordDecision(reason string, allowed bool)
}

type UserReader interface {
	GetByID(ctx context.Context, id uint) (*user.User, error)
}

type RoleReader interface {
	GetByID(ctx context.Context, id uint) (*organization.Role, error)
}

type DepartmentReader interface {
	GetByID(ctx context.Context, id uint) (*organization.Department, error)
}
