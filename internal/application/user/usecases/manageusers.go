package usecases

import (
	"context"
	"fmt"

	"github.com/portalkit/portalkit/internal/application/user/dto"
	"github.com/portalkit/portalkit/internal/domain/organization"
	"github.com/portalkit/portalkit/internal/domain/user"
	"github.com/portalkit/portalkit/internal/shared/constants"
	"github.com/portalkit/portalkit/internal/shared/errors"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

// ManageUsersUseCase backs the administrator user screens.
type ManageUsersUseCase struct {
	userRepo       user.Repository
	org            *orgAssigner
	passwordHasher user.PasswordHasher
	passwordPolicy user.PasswordPolicy
	logger         logger.Interface
}

func NewManageUsersUseCase(
	userRepo user.Repository,
	deptRepo organization.DepartmentRepository,
	roleRepo organization.RoleRepository,
	hasher user.PasswordHasher,
	policy user.PasswordPolicy,
	logger logger.Interface,
) *ManageUsersUseCase {
	return &ManageUsersUseCase{
		userRepo:       userRepo,
		org:            &orgAssigner{deptRepo: deptRepo, roleRepo: roleRepo},
		passwordHasher: hasher,
		passwordPolicy: policy,
		logger:         logger,
	}
}

// List returns users newest first.
func (uc *ManageUsersUseCase) List(ctx context.Context, req dto.ListUsersRequest) ([]*dto.UserDTO, int64, error) {
	users, total, err := uc.userRepo.List(ctx, user.ListFilter{
		Page:         req.Page,
		PageSize:     req.PageSize,
		Search:       req.Search,
		DepartmentID: req.DepartmentID,
		RoleID:       req.RoleID,
		Active:       req.Active,
	})
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return dto.ToUserDTOs(users), total, nil
}

func (uc *ManageUsersUseCase) Get(ctx context.Context, id uint) (*dto.UserDTO, error) {
	account, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToUserDTO(account), nil
}

func (uc *ManageUsersUseCase) Update(ctx context.Context, id uint, req dto.UpdateUserRequest) (*dto.UserDTO, error) {
	account, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		taken, err := uc.userRepo.ExistsByUsername(ctx, *req.Username, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check username: %w", err)
		}
		if taken {
			return nil, errors.NewValidationError(user.ErrUsernameExists.Error(), "username").WithMessageCode(constants.MsgUsernameExists)
		}
		if err := account.Rename(*req.Username); err != nil {
			return nil, errors.NewValidationError(err.Error(), "username")
		}
	}

	profile := user.Profile{
		FirstName: account.FirstName(),
		LastName:  account.LastName(),
		Phone:     account.Phone(),
	}
	if req.FirstName != nil {
		profile.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		profile.LastName = *req.LastName
	}
	if req.Phone != nil {
		profile.Phone = req.Phone
	}
	if req.Email != nil {
		email, err := user.NewEmail(*req.Email)
		if err != nil {
			return nil, errors.NewValidationError(err.Error(), "email")
		}
		taken, err := uc.userRepo.ExistsByEmail(ctx, email.String(), id)
		if err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if taken {
			return nil, errors.NewValidationError(user.ErrEmailExists.Error(), "email").WithMessageCode(constants.MsgEmailExists)
		}
		profile.Email = email
	}
	if err := account.UpdateProfile(profile); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Moving to another department without naming a role clears the role.
	if req.DepartmentID != nil || req.RoleID != nil {
		departmentID, roleID, err := uc.org.resolve(ctx, req.DepartmentID, req.RoleID, false)
		if err != nil {
			return nil, err
		}
		account.AssignOrganization(departmentID, roleID)
	}

	if req.IsActive != nil {
		account.SetActive(*req.IsActive)
	}

	if req.Password != nil {
		if err := uc.passwordPolicy.Validate(*req.Password); err != nil {
			return nil, errors.NewValidationError(err.Error(), "password").WithMessageCode(constants.MsgPasswordTooShort)
		}
		hash, err := uc.passwordHasher.Hash(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		account.SetPasswordHash(hash)
	}

	if err := uc.userRepo.Update(ctx, account); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", id, "error", err)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	uc.logger.Infow("user updated by administrator", "user_id", id)
	return dto.ToUserDTO(account), nil
}

func (uc *ManageUsersUseCase) Delete(ctx context.Context, id uint) error {
	if _, err := uc.load(ctx, id); err != nil {
		return err
	}
	if err := uc.userRepo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete user", "user_id", id, "error", err)
		return fmt.Errorf("failed to delete user: %w", err)
	}
	uc.logger.Infow("user deleted", "user_id", id)
	return nil
}

// ToggleActive flips the account's active flag and returns the new value.
func (uc *ManageUsersUseCase) ToggleActive(ctx context.Context, id uint) (bool, error) {
	account, err := uc.load(ctx, id)
	if err != nil {
		return false, err
	}
	active := account.ToggleActive()
	if err := uc.userRepo.Update(ctx, account); err != nil {
		return false, fmt.Errorf("failed to update user: %w", err)
	}
	uc.logger.Infow("user active flag toggled", "user_id", id, "active", active)
	return active, nil
}

func (uc *ManageUsersUseCase) Stats(ctx context.Context) (*dto.StatsDTO, error) {
	stats, err := uc.userRepo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}
	return &dto.StatsDTO{
		TotalUsers:  stats.Total,
		ActiveUsers: stats.Active,
		HoldUsers:   stats.Inactive,
	}, nil
}

func (uc *ManageUsersUseCase) load(ctx context.Context, id uint) (*user.User, error) {
	account, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if account == nil {
		return nil, errors.NewNotFoundError("user not found").WithMessageCode(constants.MsgNotFound)
	}
	return account, nil
}
