package usecases

import (
	"context"
	"fmt"

	"github.com/portalkit/portalkit/internal/domain/organization"
	"github.com/portalkit/portalkit/internal/domain/permission"
	"github.com/portalkit/portalkit/internal/domain/user"
	"github.com/portalkit/portalkit/internal/shared/errors"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

// PrincipalUseCase loads the attributes the route policy is evaluated over.
type PrincipalUseCase struct {
	userRepo user.Repository
	roleRepo organization.RoleRepository
	logger   logger.Interface
}

func NewPrincipalUseCase(userRepo user.Repository, roleRepo organization.RoleRepository, logger logger.Interface) *PrincipalUseCase {
	return &PrincipalUseCase{userRepo: userRepo, roleRepo: roleRepo, logger: logger}
}

// Execute returns an unauthorized error for unknown or inactive users.
func (uc *PrincipalUseCase) Execute(ctx context.Context, userID uint) (permission.Principal, error) {
	account, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return permission.Principal{}, fmt.Errorf("failed to get user: %w", err)
	}
	if account == nil || !account.IsActive() {
		return permission.Principal{}, errors.NewUnauthorizedError("user not found or inactive")
	}

	roleName, err := roleNameOf(ctx, uc.roleRepo, account.RoleID())
	if err != nil {
		return permission.Principal{}, err
	}
	return principalOf(account, roleName), nil
}

func principalOf(u *user.User, roleName *string) permission.Principal {
	p := permission.Principal{
		UserID:    u.ID(),
		Staff:     u.IsStaff(),
		Superuser: u.IsSuperuser(),
	}
	if roleName != nil {
		p.RoleName = *roleName
	}
	return p
}

func roleNameOf(ctx context.Context, roleRepo organization.RoleRepository, roleID *uint) (*string, error) {
	if roleID == nil {
		return nil, nil
	}
	role, err := roleRepo.GetByID(ctx, *roleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get role: %w", err)
	}
	if role == nil {
		return nil, nil
	}
	name := role.Name()
	return &name, nil
}

// isAdmin reports whether the principal may manage users, which is what the
// client treats as the administrator flag.
func isAdmin(enforcer permission.PolicyEnforcer, p permission.Principal) (bool, error) {
	allowed, err := enforcer.Enforce(p, permission.ObjectUsers, permission.ActionManage)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate admin policy: %w", err)
	}
	return allowed, nil
}
