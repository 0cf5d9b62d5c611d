package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/portalkit/portalkit/internal/application/user/dto"
	"github.com/portalkit/portalkit/internal/domain/organization"
	"github.com/portalkit/portalkit/internal/domain/permission"
	"github.com/portalkit/portalkit/internal/domain/user"
	"github.com/portalkit/portalkit/internal/shared/biztime"
	"github.com/portalkit/portalkit/internal/shared/errors"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

type LoginUseCase struct {
	userRepo       user.Repository
	roleRepo       organization.RoleRepository
	passwordHasher user.PasswordHasher
	tokens         TokenIssuer
	permissions    PermissionLister
	enforcer       permission.PolicyEnforcer
	clock          biztime.Clock
	logger         logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	roleRepo organization.RoleRepository,
	hasher user.PasswordHasher,
	tokens TokenIssuer,
	permissions PermissionLister,
	enforcer permission.PolicyEnforcer,
	clock biztime.Clock,
	logger logger.Interface,
) *LoginUseCase {
	if clock == nil {
		clock = biztime.SystemClock
	}
	return &LoginUseCase{
		userRepo:       userRepo,
		roleRepo:       roleRepo,
		passwordHasher: hasher,
		tokens:         tokens,
		permissions:    permissions,
		enforcer:       enforcer,
		clock:          clock,
		logger:         logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, req dto.LoginRequest) (*dto.LoginResult, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, errors.NewInvalidCredentialsError()
	}

	account, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		uc.logger.Errorw("failed to get user by username", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	// Unknown users, unusable passwords and inactive accounts all look the
	// same to the client.
	if account == nil || !account.HasUsablePassword() {
		return nil, errors.NewInvalidCredentialsError()
	}
	if err := uc.passwordHasher.Verify(req.Password, account.PasswordHash()); err != nil {
		uc.logger.Infow("login rejected", "user_id", account.ID(), "reason", "bad_password")
		return nil, errors.NewInvalidCredentialsError()
	}
	if !account.IsActive() {
		uc.logger.Infow("login rejected", "user_id", account.ID(), "reason", "inactive")
		return nil, errors.NewAccountInactiveError()
	}

	pair, err := uc.tokens.Issue(account.ID(), account.Username())
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "user_id", account.ID(), "error", err)
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	codenames, err := uc.permissions.ResolveAll(ctx, account.Subject())
	if err != nil {
		uc.logger.Errorw("failed to resolve permissions", "user_id", account.ID(), "error", err)
		return nil, fmt.Errorf("failed to resolve permissions: %w", err)
	}

	roleName, err := roleNameOf(ctx, uc.roleRepo, account.RoleID())
	if err != nil {
		return nil, err
	}

	isAdmin, err := isAdmin(uc.enforcer, principalOf(account, roleName))
	if err != nil {
		return nil, err
	}

	account.RecordLogin(uc.clock())
	if err := uc.userRepo.Update(ctx, account); err != nil {
		uc.logger.Warnw("failed to record last login", "user_id", account.ID(), "error", err)
	}

	uc.logger.Infow("user logged in", "user_id", account.ID())

	return &dto.LoginResult{
		Session: dto.LoginResponse{
			Username:    account.Username(),
			Email:       account.Email().String(),
			RoleID:      account.RoleID(),
			RoleName:    roleName,
			Permissions: codenames,
			IsAdmin:     isAdmin,
		},
		Tokens: dto.Tokens{
			AccessToken:   pair.AccessToken,
			RefreshToken:  pair.RefreshToken,
			AccessMaxAge:  int(pair.AccessTTL.Seconds()),
			RefreshMaxAge: int(pair.RefreshTTL.Seconds()),
		},
	}, nil
}

// RefreshTokenUseCase exchanges a refresh token for a new access token. The
// account must still exist and be active.
type RefreshTokenUseCase struct {
	tokens   TokenIssuer
	userRepo user.Repository
	logger   logger.Interface
}

func NewRefreshTokenUseCase(tokens TokenIssuer, userRepo user.Repository, logger logger.Interface) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{tokens: tokens, userRepo: userRepo, logger: logger}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, refreshToken string) (*dto.RefreshResult, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, errors.NewBadRequestError("refresh_token_missing")
	}

	access, userID, err := uc.tokens.Refresh(refreshToken)
	if err != nil {
		uc.logger.Infow("refresh token rejected", "error", err)
		return nil, errors.NewUnauthorizedError("invalid_refresh")
	}

	account, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if account == nil || !account.IsActive() {
		return nil, errors.NewUnauthorizedError("invalid_refresh")
	}

	return &dto.RefreshResult{
		AccessToken:  access,
		AccessMaxAge: int(uc.tokens.AccessTTL().Seconds()),
	}, nil
}
