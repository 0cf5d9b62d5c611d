// Package user is the application service for accounts: registration,
// sessions, profiles and administrator user management.
package user

import (
	"context"

	"github.com/portalkit/portalkit/internal/application/user/dto"
	"github.com/portalkit/portalkit/internal/application/user/usecases"
	"github.com/portalkit/portalkit/internal/domain/organization"
	"github.com/portalkit/portalkit/internal/domain/permission"
	domainUser "github.com/portalkit/portalkit/internal/domain/user"
	"github.com/portalkit/portalkit/internal/shared/biztime"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

type Dependencies struct {
	Users          domainUser.Repository
	Departments    organization.DepartmentRepository
	Roles          organization.RoleRepository
	PasswordHasher domainUser.PasswordHasher
	PasswordPolicy domainUser.PasswordPolicy
	Tokens         usecases.TokenIssuer
	Permissions    usecases.PermissionLister
	Enforcer       permission.PolicyEnforcer
	Subscriptions  usecases.SubscriptionClaimer
	Defaults       usecases.OrgDefaults
}

type ServiceDDD struct {
	registerUC       *usecases.RegisterUseCase
	loginUC          *usecases.LoginUseCase
	refreshUC        *usecases.RefreshTokenUseCase
	getProfileUC     *usecases.GetProfileUseCase
	updateProfileUC  *usecases.UpdateProfileUseCase
	changePasswordUC *usecases.ChangePasswordUseCase
	availabilityUC   *usecases.AvailabilityUseCase
	manageUsersUC    *usecases.ManageUsersUseCase
	principalUC      *usecases.PrincipalUseCase
	logger           logger.Interface
}

func NewServiceDDD(deps Dependencies, logger logger.Interface) *ServiceDDD {
	return &ServiceDDD{
		registerUC: usecases.NewRegisterUseCase(deps.Users, deps.Departments, deps.Roles,
			deps.PasswordHasher, deps.PasswordPolicy, deps.Defaults, logger),
		loginUC: usecases.NewLoginUseCase(deps.Users, deps.Roles, deps.PasswordHasher, deps.Tokens,
			deps.Permissions, deps.Enforcer, biztime.SystemClock, logger),
		refreshUC: usecases.NewRefreshTokenUseCase(deps.Tokens, deps.Users, logger),
		getProfileUC: usecases.NewGetProfileUseCase(deps.Users, deps.Departments, deps.Roles,
			deps.Permissions, deps.Enforcer, deps.Subscriptions, logger),
		updateProfileUC:  usecases.NewUpdateProfileUseCase(deps.Users, logger),
		changePasswordUC: usecases.NewChangePasswordUseCase(deps.Users, deps.PasswordHasher, deps.PasswordPolicy, logger),
		availabilityUC:   usecases.NewAvailabilityUseCase(deps.Users),
		manageUsersUC: usecases.NewManageUsersUseCase(deps.Users, deps.Departments, deps.Roles,
			deps.PasswordHasher, deps.PasswordPolicy, logger),
		principalUC: usecases.NewPrincipalUseCase(deps.Users, deps.Roles, logger),
		logger:      logger,
	}
}

func (s *ServiceDDD) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserDTO, error) {
	return s.registerUC.Execute(ctx, req)
}

func (s *ServiceDDD) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResult, error) {
	return s.loginUC.Execute(ctx, req)
}

func (s *ServiceDDD) Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResult, error) {
	return s.refreshUC.Execute(ctx, refreshToken)
}

func (s *ServiceDDD) Profile(ctx context.Context, userID uint) (*dto.ProfileDTO, error) {
	return s.getProfileUC.Execute(ctx, userID)
}

func (s *ServiceDDD) UpdateProfile(ctx context.Context, userID uint, req dto.UpdateProfileRequest) error {
	return s.updateProfileUC.Execute(ctx, userID, req)
}

func (s *ServiceDDD) ChangePassword(ctx context.Context, userID uint, req dto.ChangePasswordRequest) error {
	return s.changePasswordUC.Execute(ctx, userID, req)
}

func (s *ServiceDDD) UsernameExists(ctx context.Context, username string) (bool, error) {
	return s.availabilityUC.UsernameExists(ctx, username)
}

func (s *ServiceDDD) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.availabilityUC.EmailExists(ctx, email)
}

// Principal is used by the route policy middleware.
func (s *ServiceDDD) Principal(ctx context.Context, userID uint) (permission.Principal, error) {
	return s.principalUC.Execute(ctx, userID)
}

func (s *ServiceDDD) ListUsers(ctx context.Context, req dto.ListUsersRequest) ([]*dto.UserDTO, int64, error) {
	return s.manageUsersUC.List(ctx, req)
}

func (s *ServiceDDD) GetUser(ctx context.Context, id uint) (*dto.UserDTO, error) {
	return s.manageUsersUC.Get(ctx, id)
}

func (s *ServiceDDD) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*dto.UserDTO, error) {
	return s.registerUC.ExecuteAdmin(ctx, req)
}

func (s *ServiceDDD) UpdateUser(ctx context.Context, id uint, req dto.UpdateUserRequest) (*dto.UserDTO, error) {
	return s.manageUsersUC.Update(ctx, id, req)
}

func (s *ServiceDDD) DeleteUser(ctx context.Context, id uint) error {
	return s.manageUsersUC.Delete(ctx, id)
}

func (s *ServiceDDD) ToggleUser(ctx context.Context, id uint) (bool, error) {
	return s.manageUsersUC.ToggleActive(ctx, id)
}

func (s *ServiceDDD) Stats(ctx context.Context) (*dto.StatsDTO, error) {
	return s.manageUsersUC.Stats(ctx)
}
