package usecases

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	subscriptionDTO "github.com/portalkit/portalkit/internal/application/subscription/dto"
	"github.com/portalkit/portalkit/internal/application/user/dto"
	"github.com/portalkit/portalkit/internal/domain/organization"
	"github.com/portalkit/portalkit/internal/domain/permission"
	"github.com/portalkit/portalkit/internal/domain/user"
	"github.com/portalkit/portalkit/internal/shared/biztime"
	"github.com/portalkit/portalkit/internal/shared/constants"
	"github.com/portalkit/portalkit/internal/shared/errors"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

type GetProfileUseCase struct {
	userRepo      user.Repository
	deptRepo      organization.DepartmentRepository
	roleRepo      organization.RoleRepository
	permissions   PermissionLister
	enforcer      permission.PolicyEnforcer
	subscriptions SubscriptionClaimer
	logger        logger.Interface
}

func NewGetProfileUseCase(
	userRepo user.Repository,
	deptRepo organization.DepartmentRepository,
	roleRepo organization.RoleRepository,
	permissions PermissionLister,
	enforcer permission.PolicyEnforcer,
	subscriptions SubscriptionClaimer,
	logger logger.Interface,
) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo:      userRepo,
		deptRepo:      deptRepo,
		roleRepo:      roleRepo,
		permissions:   permissions,
		enforcer:      enforcer,
		subscriptions: subscriptions,
		logger:        logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, userID uint) (*dto.ProfileDTO, error) {
	account, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if account == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	var (
		deptName  *string
		roleName  *string
		codenames []string
		claim     *subscriptionDTO.SubscriptionClaim
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if account.DepartmentID() == nil {
			return nil
		}
		d, err := uc.deptRepo.GetByID(gctx, *account.DepartmentID())
		if err != nil {
			return fmt.Errorf("failed to get department: %w", err)
		}
		if d != nil {
			name := d.Name()
			deptName = &name
		}
		return nil
	})
	g.Go(func() error {
		var err error
		roleName, err = roleNameOf(gctx, uc.roleRepo, account.RoleID())
		return err
	})
	g.Go(func() error {
		var err error
		codenames, err = uc.permissions.ResolveAll(gctx, account.Subject())
		if err != nil {
			return fmt.Errorf("failed to resolve permissions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		claim, err = uc.subscriptions.CurrentSubscription(gctx, account.ID())
		return err
	})
	if err := g.Wait(); err != nil {
		uc.logger.Errorw("failed to build profile", "user_id", userID, "error", err)
		return nil, err
	}

	admin, err := isAdmin(uc.enforcer, principalOf(account, roleName))
	if err != nil {
		return nil, err
	}

	joined := account.DateJoined()
	return &dto.ProfileDTO{
		ID:             account.ID(),
		Username:       account.Username(),
		Email:          account.Email().String(),
		Phone:          account.Phone(),
		FirstName:      account.FirstName(),
		LastName:       account.LastName(),
		FullName:       account.FullName(),
		DepartmentID:   account.DepartmentID(),
		DepartmentName: deptName,
		RoleID:         account.RoleID(),
		RoleName:       roleName,
		IsActive:       account.IsActive(),
		IsStaff:        account.IsStaff(),
		IsSuperuser:    account.IsSuperuser(),
		IsAdmin:        admin,
		Permissions:    codenames,
		Subscription:   claim,
		DateJoined:     biztime.FormatISO(&joined),
	}, nil
}

type UpdateProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateProfileUseCase(userRepo user.Repository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{userRepo: userRepo, logger: logger}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, userID uint, req dto.UpdateProfileRequest) error {
	account, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if account == nil {
		return errors.NewNotFoundError("user not found")
	}

	var email *user.Email
	if req.Email != nil {
		email, err = user.NewEmail(*req.Email)
		if err != nil {
			return errors.NewValidationError(err.Error(), "email")
		}
		taken, err := uc.userRepo.ExistsByEmail(ctx, email.String(), userID)
		if err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if taken {
			return errors.NewValidationError(user.ErrEmailExists.Error(), "email").WithMessageCode(constants.MsgEmailExists)
		}
	}

	if err := account.UpdateProfile(user.Profile{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     email,
		Phone:     req.Phone,
	}); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, account); err != nil {
		uc.logger.Errorw("failed to update profile", "user_id", userID, "error", err)
		return fmt.Errorf("failed to update profile: %w", err)
	}

	uc.logger.Infow("profile updated", "user_id", userID)
	return nil
}
