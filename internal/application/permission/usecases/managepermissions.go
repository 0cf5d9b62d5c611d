package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/portalkit/portalkit/internal/application/permission/dto"
	"github.com/portalkit/portalkit/internal/domain/permission"
	"github.com/portalkit/portalkit/internal/shared/errors"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

// ManagePermissionsUseCase is the staff CRUD over permission definitions.
type ManagePermissionsUseCase struct {
	permissionRepo permission.PermissionRepository
	logger         logger.Interface
}

func NewManagePermissionsUseCase(permissionRepo permission.PermissionRepository, logger logger.Interface) *ManagePermissionsUseCase {
	return &ManagePermissionsUseCase{permissionRepo: permissionRepo, logger: logger}
}

func (uc *ManagePermissionsUseCase) List(ctx context.Context) ([]*dto.PermissionDTO, error) {
	perms, err := uc.permissionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}
	return dto.ToPermissionDTOs(perms), nil
}

func (uc *ManagePermissionsUseCase) Get(ctx context.Context, id uint) (*dto.PermissionDTO, error) {
	p, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToPermissionDTO(p), nil
}

func (uc *ManagePermissionsUseCase) Create(ctx context.Context, req dto.CreatePermissionRequest) (*dto.PermissionDTO, error) {
	p, err := permission.NewPermission(req.Codename, req.Name, req.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ensureCodenameFree(ctx, p.Codename(), 0); err != nil {
		return nil, err
	}

	if err := uc.permissionRepo.Create(ctx, p); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError(permission.ErrCodenameExists.Error())
		}
		return nil, fmt.Errorf("failed to create permission: %w", err)
	}

	uc.logger.Infow("permission created", "id", p.ID(), "codename", p.Codename())
	return dto.ToPermissionDTO(p), nil
}

func (uc *ManagePermissionsUseCase) Update(ctx context.Context, id uint, req dto.UpdatePermissionRequest) (*dto.PermissionDTO, error) {
	p, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}

	codename, name, description := p.Codename(), p.Name(), p.Description()
	if req.Codename != nil {
		codename = *req.Codename
	}
	if req.Name != nil {
		name = *req.Name
	}
	if req.Description != nil {
		description = *req.Description
	}

	if err := p.Update(codename, name, description); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.ensureCodenameFree(ctx, p.Codename(), p.ID()); err != nil {
		return nil, err
	}

	if err := uc.permissionRepo.Update(ctx, p); err != nil {
		if stderrors.Is(err, permission.ErrPermissionNotFound) {
			return nil, errors.NewNotFoundError("permission not found")
		}
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError(permission.ErrCodenameExists.Error())
		}
		return nil, fmt.Errorf("failed to update permission: %w", err)
	}

	uc.logger.Infow("permission updated", "id", p.ID(), "codename", p.Codename())
	return dto.ToPermissionDTO(p), nil
}

func (uc *ManagePermissionsUseCase) Delete(ctx context.Context, id uint) error {
	if err := uc.permissionRepo.Delete(ctx, id); err != nil {
		if stderrors.Is(err, permission.ErrPermissionNotFound) {
			return errors.NewNotFoundError("permission not found")
		}
		return fmt.Errorf("failed to delete permission: %w", err)
	}
	uc.logger.Infow("permission deleted", "id", id)
	return nil
}

func (uc *ManagePermissionsUseCase) get(ctx context.Context, id uint) (*permission.Permission, error) {
	p, err := uc.permissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get permission: %w", err)
	}
	if p == nil {
		return nil, errors.NewNotFoundError("permission not found")
	}
	return p, nil
}

func (uc *ManagePermissionsUseCase) ensureCodenameFree(ctx context.Context, codename string, selfID uint) error {
	existing, err := uc.permissionRepo.GetByCodename(ctx, codename)
	if err != nil {
		return fmt.Errorf("failed to check codename: %w", err)
	}
	if existing != nil && existing.ID() != selfID {
		return errors.NewConflictError(permission.ErrCodenameExists.Error())
	}
	return nil
}
