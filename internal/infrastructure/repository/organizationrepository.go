package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/portalkit/portalkit/internal/domain/organization"
	"github.com/portalkit/portalkit/internal/infrastructure/persistence/mappers"
	"github.com/portalkit/portalkit/internal/infrastructure/persistence/models"
	"github.com/portalkit/portalkit/internal/shared/db"
	"github.com/portalkit/portalkit/internal/shared/logger"
	"github.com/portalkit/portalkit/internal/shared/utils"
)

type DepartmentRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewDepartmentRepository(db *gorm.DB, logger logger.Interface) *DepartmentRepository {
	return &DepartmentRepository{db: db, logger: logger}
}

func (r *DepartmentRepository) Create(ctx context.Context, d *organization.Department) error {
	model := mappers.DepartmentToModel(d)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create department", "name", model.Name, "error", err)
		return fmt.Errorf("failed to create department: %w", err)
	}
	return d.SetID(model.ID)
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id uint) (*organization.Department, error) {
	var model models.DepartmentModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get department", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get department: %w", err)
	}
	return mappers.DepartmentToEntity(&model), nil
}

func (r *DepartmentRepository) GetByName(ctx context.Context, name string) (*organization.Department, error) {
	var model models.DepartmentModel
	if err := db.GetTxFromContext(ctx, r.db).Where("name_key = ?", utils.FoldKey(name)).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get department by name", "name", name, "error", err)
		return nil, fmt.Errorf("failed to get department: %w", err)
	}
	return mappers.DepartmentToEntity(&model), nil
}

func (r *DepartmentRepository) List(ctx context.Context) ([]*organization.Department, error) {
	var list []*models.DepartmentModel
	if err := db.GetTxFromContext(ctx, r.db).Order("department_name ASC").Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list departments", "error", err)
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	out := make([]*organization.Department, 0, len(list))
	for _, m := range list {
		out = append(out, mappers.DepartmentToEntity(m))
	}
	return out, nil
}

func (r *DepartmentRepository) Update(ctx context.Context, d *organization.Department) error {
	model := mappers.DepartmentToModel(d)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.DepartmentModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"department_name": model.Name,
			"name_key":        model.NameKey,
			"is_active":       model.IsActive,
			"updated_at":      model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update department", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update department: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return organization.ErrDepartmentNotFound
	}
	return nil
}

// Delete removes the department and its roles and grants. Users keep their
// rows with the department and role links cleared.
func (r *DepartmentRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var roleIDs []uint
	if err := tx.Model(&models.RoleModel{}).Where("department_id = ?", id).Pluck("id", &roleIDs).Error; err != nil {
		return fmt.Errorf("failed to load department roles: %w", err)
	}

	steps := []func() error{
		func() error {
			return tx.Model(&models.UserModel{}).Where("department_id = ?", id).Update("department_id", nil).Error
		},
		func() error {
			if len(roleIDs) == 0 {
				return nil
			}
			return tx.Model(&models.UserModel{}).Where("role_id IN ?", roleIDs).Update("role_id", nil).Error
		},
		func() error {
			if len(roleIDs) == 0 {
				return nil
			}
			return tx.Where("role_id IN ?", roleIDs).Delete(&models.RolePermissionModel{}).Error
		},
		func() error { return tx.Where("department_id = ?", id).Delete(&models.RoleModel{}).Error },
		func() error { return tx.Where("department_id = ?", id).Delete(&models.DepartmentPermissionModel{}).Error },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			r.logger.Errorw("failed to detach department", "id", id, "error", err)
			return fmt.Errorf("failed to delete department: %w", err)
		}
	}

	result := tx.Delete(&models.DepartmentModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete department", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete department: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return organization.ErrDepartmentNotFound
	}
	return nil
}

type RoleRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewRoleRepository(db *gorm.DB, logger logger.Interface) *RoleRepository {
	return &RoleRepository{db: db, logger: logger}
}

func (r *RoleRepository) Create(ctx context.Context, role *organization.Role) error {
	model := mappers.RoleToModel(role)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create role", "name", model.Name, "error", err)
		return fmt.Errorf("failed to create role: %w", err)
	}
	return role.SetID(model.ID)
}

func (r *RoleRepository) GetByID(ctx context.Context, id uint) (*organization.Role, error) {
	var model models.RoleModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get role", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get role: %w", err)
	}
	return mappers.RoleToEntity(&model), nil
}

func (r *RoleRepository) GetByName(ctx context.Context, name string, departmentID uint) (*organization.Role, error) {
	var model models.RoleModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("name_key = ? AND department_id = ?", utils.FoldKey(name), departmentID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get role by name", "name", name, "error", err)
		return nil, fmt.Errorf("failed to get role: %w", err)
	}
	return mappers.RoleToEntity(&model), nil
}

func (r *RoleRepository) List(ctx context.Context, departmentID *uint) ([]*organization.Role, error) {
	query := db.GetTxFromContext(ctx, r.db).Order("role_name ASC")
	if departmentID != nil {
		query = query.Where("department_id = ?", *departmentID)
	}

	var list []*models.RoleModel
	if err := query.Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list roles", "error", err)
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	out := make([]*organization.Role, 0, len(list))
	for _, m := range list {
		out = append(out, mappers.RoleToEntity(m))
	}
	return out, nil
}

func (r *RoleRepository) Update(ctx context.Context, role *organization.Role) error {
	model := mappers.RoleToModel(role)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.RoleModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"role_name":     model.Name,
			"name_key":      model.NameKey,
			"department_id": model.DepartmentID,
			"is_active":     model.IsActive,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update role", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update role: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return organization.ErrRoleNotFound
	}
	return nil
}

// Delete removes the role and its grants and clears it from users.
func (r *RoleRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.UserModel{}).Where("role_id = ?", id).Update("role_id", nil).Error; err != nil {
		r.logger.Errorw("failed to detach role from users", "id", id, "error", err)
		return fmt.Errorf("failed to delete role: %w", err)
	}
	if err := tx.Where("role_id = ?", id).Delete(&models.RolePermissionModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete role grants", "id", id, "error", err)
		return fmt.Errorf("failed to delete role: %w", err)
	}

	result := tx.Delete(&models.RoleModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete role", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete role: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return organization.ErrRoleNotFound
	}
	return nil
}
