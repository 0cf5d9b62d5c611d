package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/portalkit/portalkit/internal/application/organization/dto"
	"github.com/portalkit/portalkit/internal/domain/organization"
	"github.com/portalkit/portalkit/internal/shared/constants"
	"github.com/portalkit/portalkit/internal/shared/errors"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

type ManageDepartmentsUseCase struct {
	deptRepo organization.DepartmentRepository
	logger   logger.Interface
}

func NewManageDepartmentsUseCase(deptRepo organization.DepartmentRepository, logger logger.Interface) *ManageDepartmentsUseCase {
	return &ManageDepartmentsUseCase{deptRepo: deptRepo, logger: logger}
}

// List returns every department ordered by name.
func (uc *ManageDepartmentsUseCase) List(ctx context.Context) ([]*dto.DepartmentDTO, error) {
	departments, err := uc.deptRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list departments", "error", err)
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return dto.ToDepartmentDTOs(departments), nil
}

func (uc *ManageDepartmentsUseCase) Get(ctx context.Context, id uint) (*dto.DepartmentDTO, error) {
	d, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToDepartmentDTO(d), nil
}

func (uc *ManageDepartmentsUseCase) Create(ctx context.Context, req dto.CreateDepartmentRequest) (*dto.DepartmentDTO, error) {
	name := strings.TrimSpace(req.DepartmentName)
	if name == "" {
		return nil, errors.NewValidationError(organization.ErrNameRequired.Error(), "department_name").
			WithMessageCode(constants.MsgFieldRequired)
	}
	if err := uc.ensureNameFree(ctx, name, 0); err != nil {
		return nil, err
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	d, err := organization.NewDepartment(name, active)
	if err != nil {
		return nil, errors.NewValidationError(err.Error(), "department_name")
	}

	if err := uc.deptRepo.Create(ctx, d); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, departmentExists()
		}
		uc.logger.Errorw("failed to create department", "name", name, "error", err)
		return nil, fmt.Errorf("failed to create department: %w", err)
	}

	uc.logger.Infow("department created", "department_id", d.ID(), "name", name)
	return dto.ToDepartmentDTO(d), nil
}

func (uc *ManageDepartmentsUseCase) Update(ctx context.Context, id uint, req dto.UpdateDepartmentRequest) (*dto.DepartmentDTO, error) {
	d, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DepartmentName != nil {
		if err := uc.ensureNameFree(ctx, *req.DepartmentName, id); err != nil {
			return nil, err
		}
		if err := d.Rename(*req.DepartmentName); err != nil {
			return nil, errors.NewValidationError(err.Error(), "department_name").WithMessageCode(constants.MsgFieldRequired)
		}
	}
	if req.IsActive != nil {
		d.SetActive(*req.IsActive)
	}

	if err := uc.deptRepo.Update(ctx, d); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, departmentExists()
		}
		return nil, fmt.Errorf("failed to update department: %w", err)
	}
	return dto.ToDepartmentDTO(d), nil
}

func (uc *ManageDepartmentsUseCase) Delete(ctx context.Context, id uint) error {
	if _, err := uc.load(ctx, id); err != nil {
		return err
	}
	if err := uc.deptRepo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete department", "department_id", id, "error", err)
		return fmt.Errorf("failed to delete department: %w", err)
	}
	uc.logger.Infow("department deleted", "department_id", id)
	return nil
}

func (uc *ManageDepartmentsUseCase) ToggleActive(ctx context.Context, id uint) (bool, error) {
	d, err := uc.load(ctx, id)
	if err != nil {
		return false, err
	}
	active := d.ToggleActive()
	if err := uc.deptRepo.Update(ctx, d); err != nil {
		return false, fmt.Errorf("failed to update department: %w", err)
	}
	return active, nil
}

func (uc *ManageDepartmentsUseCase) ensureNameFree(ctx context.Context, name string, selfID uint) error {
	existing, err := uc.deptRepo.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return fmt.Errorf("failed to check department name: %w", err)
	}
	if existing != nil && existing.ID() != selfID {
		return departmentExists()
	}
	return nil
}

func (uc *ManageDepartmentsUseCase) load(ctx context.Context, id uint) (*organization.Department, error) {
	d, err := uc.deptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get department: %w", err)
	}
	if d == nil {
		return nil, errors.NewNotFoundError(organization.ErrDepartmentNotFound.Error()).WithMessageCode(constants.MsgNotFound)
	}
	return d, nil
}

func departmentExists() error {
	return errors.NewValidationError(organization.ErrDepartmentExists.Error(), "department_name").
		WithMessageCode(constants.MsgDepartmentExists)
}
