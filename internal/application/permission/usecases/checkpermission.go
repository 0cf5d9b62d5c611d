package usecases

import (
	"context"
	"fmt"

	"github.com/portalkit/portalkit/internal/application/permission/dto"
	"github.com/portalkit/portalkit/internal/domain/permission"
	"github.com/portalkit/portalkit/internal/shared/errors"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

// CheckPermissionUseCase decides one codename for the calling user.
type CheckPermissionUseCase struct {
	userRepo UserReader
	resolver PermissionResolver
	recorder DecisionRecorder
	logger   logger.Interface
}

func NewCheckPermissionUseCase(
	userRepo UserReader,
	resolver PermissionResolver,
	recorder DecisionRecorder,
	logger logger.Interface,
) *CheckPermissionUseCase {
	return &CheckPermissionUseCase{
		userRepo: userRepo,
		resolver: resolver,
		recorder: recorder,
		logger:   logger,
	}
}

func (uc *CheckPermissionUseCase) Execute(ctx context.Context, userID uint, codename string) (*dto.CheckResult, error) {
	subject, err := loadSubject(ctx, uc.userRepo, userID)
	if err != nil {
		return nil, err
	}

	decision, err := uc.resolver.Resolve(ctx, subject, codename)
	if err != nil {
		uc.logger.Errorw("failed to resolve permission", "user_id", userID, "codename", codename, "error", err)
		return nil, fmt.Errorf("failed to resolve permission: %w", err)
	}

	uc.recorder.RecordDecision(string(decision.Reason), decision.Allowed)
	uc.logger.Debugw("permission decided",
		"user_id", userID,
		"codename", codename,
		"allowed", decision.Allowed,
		"reason", decision.Reason,
	)

	return &dto.CheckResult{Has: decision.Allowed, Reason: string(decision.Reason)}, nil
}

// EffectivePermissionsUseCase builds the sorted permissions claim embedded
// in login and profile responses.
type EffectivePermissionsUseCase struct {
	resolver PermissionResolver
	logger   logger.Interface
}

func NewEffectivePermissionsUseCase(resolver PermissionResolver, logger logger.Interface) *EffectivePermissionsUseCase {
	return &EffectivePermissionsUseCase{resolver: resolver, logger: logger}
}

func (uc *EffectivePermissionsUseCase) Execute(ctx context.Context, subject permission.Subject) ([]string, error) {
	codenames, err := uc.resolver.ResolveAll(ctx, subject)
	if err != nil {
		uc.logger.Errorw("failed to resolve permissions claim", "user_id", subject.UserID, "error", err)
		return nil, fmt.Errorf("failed to resolve permissions: %w", err)
	}
	return codenames, nil
}

func loadSubject(ctx context.Context, users UserReader, userID uint) (permission.Subject, error) {
	u, err := users.GetByID(ctx, userID)
	if err != nil {
		return permission.Subject{}, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return permission.Subject{}, errors.NewNotFoundError("user not found")
	}
	return u.Subject(), nil
}
