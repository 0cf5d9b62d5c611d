package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/portalkit/portalkit/internal/domain/permission"
	"github.com/portalkit/portalkit/internal/infrastructure/persistence/mappers"
	"github.com/portalkit/portalkit/internal/infrastructure/persistence/models"
	"github.com/portalkit/portalkit/internal/shared/db"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

type PermissionRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPermissionRepository(db *gorm.DB, logger logger.Interface) *PermissionRepository {
	return &PermissionRepository{db: db, logger: logger}
}

func (r *PermissionRepository) Create(ctx context.Context, p *permission.Permission) error {
	model := mappers.PermissionToModel(p)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create permission", "codename", model.Codename, "error", err)
		return fmt.Errorf("failed to create permission: %w", err)
	}
	return p.SetID(model.ID)
}

func (r *PermissionRepository) GetByID(ctx context.Context, id uint) (*permission.Permission, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *PermissionRepository) GetByCodename(ctx context.Context, codename string) (*permission.Permission, error) {
	return r.first(ctx, "codename = ?", codename)
}

func (r *PermissionRepository) first(ctx context.Context, query string, arg any) (*permission.Permission, error) {
	var model models.PermissionModel
	if err := db.GetTxFromContext(ctx, r.db).Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get permission", "query", query, "error", err)
		return nil, fmt.Errorf("failed to get permission: %w", err)
	}
	return mappers.PermissionToEntity(&model)
}

func (r *PermissionRepository) List(ctx context.Context) ([]*permission.Permission, error) {
	var list []*models.PermissionModel
	if err := db.GetTxFromContext(ctx, r.db).Order("codename ASC").Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list permissions", "error", err)
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}

	out := make([]*permission.Permission, 0, len(list))
	for _, m := range list {
		p, err := mappers.PermissionToEntity(m)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *PermissionRepository) Update(ctx context.Context, p *permission.Permission) error {
	model := mappers.PermissionToModel(p)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.PermissionModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"codename":    model.Codename,
			"name":        model.Name,
			"description": model.Description,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update permission", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update permission: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return permission.ErrPermissionNotFound
	}
	return nil
}

// Delete cascades to every grant that references the permission.
func (r *PermissionRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	for _, m := range []any{
		&models.UserPermissionOverrideModel{},
		&models.RolePermissionModel{},
		&models.DepartmentPermissionModel{},
	} {
		if err := tx.Where("permission_id = ?", id).Delete(m).Error; err != nil {
			r.logger.Errorw("failed to delete permission grants", "id", id, "error", err)
			return fmt.Errorf("failed to delete permission grants: %w", err)
		}
	}

	result := tx.Delete(&models.PermissionModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete permission", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete permission: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return permission.ErrPermissionNotFound
	}
	return nil
}

// UserOverrideRepository stores per-user allow/deny rows.
type UserOverrideRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewUserOverrideRepository(db *gorm.DB, logger logger.Interface) *UserOverrideRepository {
	return &UserOverrideRepository{db: db, logger: logger}
}

func (r *UserOverrideRepository) Upsert(ctx context.Context, o *permission.UserOverride) error {
	tx := db.GetTxFromContext(ctx, r.db)
	model := &models.UserPermissionOverrideModel{
		UserID:       o.UserID(),
		PermissionID: o.PermissionID(),
		IsAllowed:    o.Allowed(),
	}

	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "permission_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_allowed", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to upsert user override", "user_id", o.UserID(), "permission_id", o.PermissionID(), "error", err)
		return fmt.Errorf("failed to upsert user override: %w", err)
	}

	// The conflict path does not report the existing id on every dialect.
	stored, err := r.FindForUser(ctx, o.UserID(), o.PermissionID())
	if err != nil {
		return err
	}
	if stored != nil {
		o.SetID(stored.ID())
	}
	return nil
}

func (r *UserOverrideRepository) GetByID(ctx context.Context, id uint) (*permission.UserOverride, error) {
	var model models.UserPermissionOverrideModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user override: %w", err)
	}
	return mappers.UserOverrideToEntity(&model), nil
}

func (r *UserOverrideRepository) List(ctx context.Context, userID *uint) ([]*permission.UserOverride, error) {
	query := db.GetTxFromContext(ctx, r.db).Order("id ASC")
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	var list []*models.UserPermissionOverrideModel
	if err := query.Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list user overrides", "error", err)
		return nil, fmt.Errorf("failed to list user overrides: %w", err)
	}

	out := make([]*permission.UserOverride, 0, len(list))
	for _, m := range list {
		out = append(out, mappers.UserOverrideToEntity(m))
	}
	return out, nil
}

func (r *UserOverrideRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.UserPermissionOverrideModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user override: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return permission.ErrGrantNotFound
	}
	return nil
}

func (r *UserOverrideRepository) FindForUser(ctx context.Context, userID, permissionID uint) (*permission.UserOverride, error) {
	var model models.UserPermissionOverrideModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ? AND permission_id = ?", userID, permissionID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to find user override", "user_id", userID, "permission_id", permissionID, "error", err)
		return nil, fmt.Errorf("failed to find user override: %w", err)
	}
	return mappers.UserOverrideToEntity(&model), nil
}

func (r *UserOverrideRepository) ListCodenamesForUser(ctx context.Context, userID uint) ([]permission.CodenameGrant, error) {
	var rows []models.CodenameGrantRow
	err := db.GetTxFromContext(ctx, r.db).
		Table(models.UserPermissionOverrideModel{}.TableName()+" AS o").
		Select("p.codename AS codename, o.is_allowed AS is_allowed").
		Joins("JOIN "+models.PermissionModel{}.TableName()+" AS p ON p.id = o.permission_id").
		Where("o.user_id = ?", userID).
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to list user override codenames", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list user override codenames: %w", err)
	}
	return mappers.CodenameGrants(rows), nil
}

// RoleGrantRepository stores per-role allow/deny rows.
type RoleGrantRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewRoleGrantRepository(db *gorm.DB, logger logger.Interface) *RoleGrantRepository {
	return &RoleGrantRepository{db: db, logger: logger}
}

func (r *RoleGrantRepository) Upsert(ctx context.Context, g *permission.RoleGrant) error {
	tx := db.GetTxFromContext(ctx, r.db)
	model := &models.RolePermissionModel{
		RoleID:       g.RoleID(),
		PermissionID: g.PermissionID(),
		IsAllowed:    g.Allowed(),
	}

	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "role_id"}, {Name: "permission_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_allowed", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to upsert role grant", "role_id", g.RoleID(), "permission_id", g.PermissionID(), "error", err)
		return fmt.Errorf("failed to upsert role grant: %w", err)
	}

	stored, err := r.FindForRole(ctx, g.RoleID(), g.PermissionID())
	if err != nil {
		return err
	}
	if stored != nil {
		g.SetID(stored.ID())
	}
	return nil
}

func (r *RoleGrantRepository) GetByID(ctx context.Context, id uint) (*permission.RoleGrant, error) {
	var model models.RolePermissionModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get role grant: %w", err)
	}
	return mappers.RoleGrantToEntity(&model), nil
}

func (r *RoleGrantRepository) List(ctx context.Context, roleID *uint) ([]*permission.RoleGrant, error) {
	query := db.GetTxFromContext(ctx, r.db).Order("id ASC")
	if roleID != nil {
		query = query.Where("role_id = ?", *roleID)
	}

	var list []*models.RolePermissionModel
	if err := query.Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list role grants", "error", err)
		return nil, fmt.Errorf("failed to list role grants: %w", err)
	}

	out := make([]*permission.RoleGrant, 0, len(list))
	for _, m := range list {
		out = append(out, mappers.RoleGrantToEntity(m))
	}
	return out, nil
}

func (r *RoleGrantRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.RolePermissionModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete role grant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return permission.ErrGrantNotFound
	}
	return nil
}

func (r *RoleGrantRepository) FindForRole(ctx context.Context, roleID, permissionID uint) (*permission.RoleGrant, error) {
	var model models.RolePermissionModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("role_id = ? AND permission_id = ?", roleID, permissionID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to find role grant", "role_id", roleID, "permission_id", permissionID, "error", err)
		return nil, fmt.Errorf("failed to find role grant: %w", err)
	}
	return mappers.RoleGrantToEntity(&model), nil
}

func (r *RoleGrantRepository) ListCodenamesForRole(ctx context.Context, roleID uint) ([]permission.CodenameGrant, error) {
	var rows []models.CodenameGrantRow
	err := db.GetTxFromContext(ctx, r.db).
		Table(models.RolePermissionModel{}.TableName()+" AS g").
		Select("p.codename AS codename, g.is_allowed AS is_allowed").
		Joins("JOIN "+models.PermissionModel{}.TableName()+" AS p ON p.id = g.permission_id").
		Where("g.role_id = ?", roleID).
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to list role grant codenames", "role_id", roleID, "error", err)
		return nil, fmt.Errorf("failed to list role grant codenames: %w", err)
	}
	return mappers.CodenameGrants(rows), nil
}

// DepartmentGrantRepository stores department allow rows. A row's presence
// is the grant.
type DepartmentGrantRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewDepartmentGrantRepository(db *gorm.DB, logger logger.Interface) *DepartmentGrantRepository {
	return &DepartmentGrantRepository{db: db, logger: logger}
}

func (r *DepartmentGrantRepository) Create(ctx context.Context, g *permission.DepartmentGrant) error {
	tx := db.GetTxFromContext(ctx, r.db)
	model := &models.DepartmentPermissionModel{
		DepartmentID: g.DepartmentID(),
		PermissionID: g.PermissionID(),
	}

	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create department grant", "department_id", g.DepartmentID(), "error", err)
		return fmt.Errorf("failed to create department grant: %w", err)
	}

	var stored models.DepartmentPermissionModel
	if err := tx.Where("department_id = ? AND permission_id = ?", g.DepartmentID(), g.PermissionID()).
		First(&stored).Error; err != nil {
		return fmt.Errorf("failed to reload department grant: %w", err)
	}
	g.SetID(stored.ID)
	return nil
}

func (r *DepartmentGrantRepository) GetByID(ctx context.Context, id uint) (*permission.DepartmentGrant, error) {
	var model models.DepartmentPermissionModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get department grant: %w", err)
	}
	return mappers.DepartmentGrantToEntity(&model), nil
}

func (r *DepartmentGrantRepository) List(ctx context.Context, departmentID *uint) ([]*permission.DepartmentGrant, error) {
	query := db.GetTxFromContext(ctx, r.db).Order("id ASC")
	if departmentID != nil {
		query = query.Where("department_id = ?", *departmentID)
	}

	var list []*models.DepartmentPermissionModel
	if err := query.Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list department grants", "error", err)
		return nil, fmt.Errorf("failed to list department grants: %w", err)
	}

	out := make([]*permission.DepartmentGrant, 0, len(list))
	for _, m := range list {
		out = append(out, mappers.DepartmentGrantToEntity(m))
	}
	return out, nil
}

func (r *DepartmentGrantRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.DepartmentPermissionModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete department grant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return permission.ErrGrantNotFound
	}
	return nil
}

func (r *DepartmentGrantRepository) ExistsForDepartment(ctx context.Context, departmentID, permissionID uint) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.DepartmentPermissionModel{}).
		Where("department_id = ? AND permission_id = ?", departmentID, permissionID).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to check department grant", "department_id", departmentID, "permission_id", permissionID, "error", err)
		return false, fmt.Errorf("failed to check department grant: %w", err)
	}
	return count > 0, nil
}

func (r *DepartmentGrantRepository) ListCodenamesForDepartment(ctx context.Context, departmentID uint) ([]string, error) {
	var codenames []string
	err := db.GetTxFromContext(ctx, r.db).
		Table(models.DepartmentPermissionModel{}.TableName()+" AS g").
		Joins("JOIN "+models.PermissionModel{}.TableName()+" AS p ON p.id = g.permission_id").
		Where("g.department_id = ?", departmentID).
		Pluck("p.codename", &codenames).Error
	if err != nil {
		r.logger.Errorw("failed to list department codenames", "department_id", departmentID, "error", err)
		return nil, fmt.Errorf("failed to list department codenames: %w", err)
	}
	return codenames, nil
}
