package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/portalkit/portalkit/internal/application/user/dto"
	"github.com/portalkit/portalkit/internal/domain/organization"
	"github.com/portalkit/portalkit/internal/domain/user"
	"github.com/portalkit/portalkit/internal/shared/constants"
	"github.com/portalkit/portalkit/internal/shared/errors"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

// RegisterUseCase creates accounts for self-registration and for
// administrators.
type RegisterUseCase struct {
	userRepo       user.Repository
	org            *orgAssigner
	passwordHasher user.PasswordHasher
	passwordPolicy user.PasswordPolicy
	logger         logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	deptRepo organization.DepartmentRepository,
	roleRepo organization.RoleRepository,
	hasher user.PasswordHasher,
	policy user.PasswordPolicy,
	defaults OrgDefaults,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:       userRepo,
		org:            &orgAssigner{deptRepo: deptRepo, roleRepo: roleRepo, defaults: defaults},
		passwordHasher: hasher,
		passwordPolicy: policy,
		logger:         logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, req dto.RegisterRequest) (*dto.UserDTO, error) {
	return uc.create(ctx, dto.CreateUserRequest{RegisterRequest: req})
}

// ExecuteAdmin creates an account with the administrator-only flags.
func (uc *RegisterUseCase) ExecuteAdmin(ctx context.Context, req dto.CreateUserRequest) (*dto.UserDTO, error) {
	return uc.create(ctx, req)
}

func (uc *RegisterUseCase) create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserDTO, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, errors.NewValidationError(user.ErrUsernameRequired.Error(), "username")
	}

	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error(), "email")
	}

	if err := uc.passwordPolicy.Validate(req.Password); err != nil {
		return nil, errors.NewValidationError(err.Error(), "password").WithMessageCode(constants.MsgPasswordTooShort)
	}

	exists, err := uc.userRepo.ExistsByUsername(ctx, username, 0)
	if err != nil {
		uc.logger.Errorw("failed to check username", "error", err)
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, errors.NewValidationError(user.ErrUsernameExists.Error(), "username").WithMessageCode(constants.MsgUsernameExists)
	}

	exists, err = uc.userRepo.ExistsByEmail(ctx, email.String(), 0)
	if err != nil {
		uc.logger.Errorw("failed to check email", "error", err)
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, errors.NewValidationError(user.ErrEmailExists.Error(), "email").WithMessageCode(constants.MsgEmailExists)
	}

	departmentID, roleID, err := uc.org.resolve(ctx, req.DepartmentID, req.RoleID, true)
	if err != nil {
		return nil, err
	}

	hash, err := uc.passwordHasher.Hash(req.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := user.NewUser(username, email, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error(), "username")
	}
	if err := newUser.UpdateProfile(user.Profile{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	}); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	newUser.AssignOrganization(departmentID, roleID)
	if req.IsActive != nil {
		newUser.SetActive(*req.IsActive)
	}
	if req.IsStaff {
		newUser.SetStaff(true, false)
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError(user.ErrUsernameExists.Error()).WithMessageCode(constants.MsgUsernameExists)
		}
		uc.logger.Errorw("failed to create user", "username", username, "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.logger.Infow("user registered",
		"user_id", newUser.ID(),
		"department_id", departmentID,
		"role_id", roleID,
	)

	return dto.ToUserDTO(newUser), nil
}
