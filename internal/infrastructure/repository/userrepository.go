package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/portalkit/portalkit/internal/domain/user"
	"github.com/portalkit/portalkit/internal/infrastructure/persistence/mappers"
	"github.com/portalkit/portalkit/internal/infrastructure/persistence/models"
	"github.com/portalkit/portalkit/internal/shared/db"
	"github.com/portalkit/portalkit/internal/shared/logger"
	"github.com/portalkit/portalkit/internal/shared/utils"
)

// UserRepository implements user.Repository with GORM.
type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

func NewUserRepository(db *gorm.DB, logger logger.Interface) *UserRepository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

func (r *UserRepository) Create(ctx context.Context, entity *user.User) error {
	model := r.mapper.ToModel(entity)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create user", "username", model.Username, "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set user ID: %w", err)
	}

	r.logger.Infow("user created", "id", model.ID, "username", model.Username)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return r.first(ctx, "id", "id = ?", id)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.first(ctx, "username", "username_key = ?", utils.FoldKey(username))
}

// GetByEmail returns the oldest account when legacy rows share an address.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.first(ctx, "email", "email_key = ?", utils.FoldKey(email))
}

func (r *UserRepository) GetByUsernameAndEmail(ctx context.Context, username, email string) (*user.User, error) {
	return r.first(ctx, "username and email", "username_key = ? AND email_key = ?",
		utils.FoldKey(username), utils.FoldKey(email))
}

func (r *UserRepository) first(ctx context.Context, by string, query string, args ...any) (*user.User, error) {
	var model models.UserModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where(query, args...).Order("id ASC").First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by "+by, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string, excludeID uint) (bool, error) {
	return r.exists(ctx, "username_key = ?", utils.FoldKey(username), excludeID)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	return r.exists(ctx, "email_key = ?", utils.FoldKey(email), excludeID)
}

func (r *UserRepository) exists(ctx context.Context, query string, value string, excludeID uint) (bool, error) {
	var count int64

	tx := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{}).Where(query, value)
	if excludeID != 0 {
		tx = tx.Where("id <> ?", excludeID)
	}
	if err := tx.Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check user existence", "error", err)
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) Update(ctx context.Context, entity *user.User) error {
	model := r.mapper.ToModel(entity)

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"username":      model.Username,
			"username_key":  model.UsernameKey,
			"email":         model.Email,
			"email_key":     model.EmailKey,
			"phone":         model.Phone,
			"first_name":    model.FirstName,
			"last_name":     model.LastName,
			"password_hash": model.PasswordHash,
			"department_id": model.DepartmentID,
			"role_id":       model.RoleID,
			"is_active":     model.IsActive,
			"is_staff":      model.IsStaff,
			"is_superuser":  model.IsSuperuser,
			"last_login":    model.LastLogin,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update user", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// Delete removes the user together with the rows that belong only to them.
func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	owned := []any{
		&models.UserPermissionOverrideModel{},
		&models.AddressModel{},
		&models.ChatMessageModel{},
		&models.ChatSessionModel{},
		&models.UserSubscriptionModel{},
	}
	for _, m := range owned {
		if err := tx.Where("user_id = ?", id).Delete(m).Error; err != nil {
			r.logger.Errorw("failed to delete user rows", "id", id, "error", err)
			return fmt.Errorf("failed to delete user rows: %w", err)
		}
	}

	result := tx.Delete(&models.UserModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete user", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}

	r.logger.Infow("user deleted", "id", id)
	return nil
}

func (r *UserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{})

	if filter.Search != "" {
		like := "%" + utils.FoldKey(filter.Search) + "%"
		query = query.Where("username_key LIKE ? OR email_key LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?",
			like, like, like, like)
	}
	if filter.DepartmentID != nil {
		query = query.Where("department_id = ?", *filter.DepartmentID)
	}
	if filter.RoleID != nil {
		query = query.Where("role_id = ?", *filter.RoleID)
	}
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count users", "error", err)
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	var list []*models.UserModel
	if err := query.Scopes(db.Paginate(filter.Page, filter.PageSize)).Order("id DESC").Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list users", "error", err)
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	entities, err := r.mapper.ToEntities(list)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *UserRepository) Stats(ctx context.Context) (*user.Stats, error) {
	var rows []struct {
		IsActive bool
		Count    int64
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.UserModel{}).
		Select("is_active, COUNT(*) AS count").
		Group("is_active").
		Scan(&rows).Error; err != nil {
		r.logger.Errorw("failed to compute user stats", "error", err)
		return nil, fmt.Errorf("failed to compute user stats: %w", err)
	}

	stats := &user.Stats{}
	for _, row := range rows {
		stats.Total += row.Count
		if row.IsActive {
			stats.Active += row.Count
		} else {
			stats.Inactive += row.Count
		}
	}
	return stats, nil
}
