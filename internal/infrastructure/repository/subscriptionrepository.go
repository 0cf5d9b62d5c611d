package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/portalkit/portalkit/internal/domain/subscription"
	"github.com/portalkit/portalkit/internal/infrastructure/persistence/mappers"
	"github.com/portalkit/portalkit/internal/infrastructure/persistence/models"
	"github.com/portalkit/portalkit/internal/shared/db"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

type PlanRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPlanRepository(db *gorm.DB, logger logger.Interface) *PlanRepository {
	return &PlanRepository{db: db, logger: logger}
}

func (r *PlanRepository) Create(ctx context.Context, plan *subscription.Plan) error {
	model := mappers.PlanToModel(plan)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create plan", "slug", model.Slug, "error", err)
		return fmt.Errorf("failed to create plan: %w", err)
	}
	return plan.SetID(model.ID)
}

func (r *PlanRepository) GetByID(ctx context.Context, id uint) (*subscription.Plan, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *PlanRepository) GetBySlug(ctx context.Context, slug string) (*subscription.Plan, error) {
	return r.first(ctx, "slug = ?", slug)
}

func (r *PlanRepository) first(ctx context.Context, query string, arg any) (*subscription.Plan, error) {
	var model models.PlanModel
	if err := db.GetTxFromContext(ctx, r.db).Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan", "query", query, "error", err)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	return mappers.PlanToEntity(&model), nil
}

func (r *PlanRepository) ListActive(ctx context.Context) ([]*subscription.Plan, error) {
	var list []*models.PlanModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("is_active = ?", true).
		Order("price_cents ASC, id ASC").
		Find(&list).Error
	if err != nil {
		r.logger.Errorw("failed to list plans", "error", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	out := make([]*subscription.Plan, 0, len(list))
	for _, m := range list {
		out = append(out, mappers.PlanToEntity(m))
	}
	return out, nil
}

type UserSubscriptionRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewUserSubscriptionRepository(db *gorm.DB, logger logger.Interface) *UserSubscriptionRepository {
	return &UserSubscriptionRepository{db: db, logger: logger}
}

func (r *UserSubscriptionRepository) Create(ctx context.Context, sub *subscription.UserSubscription) error {
	model := mappers.UserSubscriptionToModel(sub)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create subscription", "user_id", model.UserID, "plan_id", model.PlanID, "error", err)
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	return sub.SetID(model.ID)
}

func (r *UserSubscriptionRepository) Update(ctx context.Context, sub *subscription.UserSubscription) error {
	model := mappers.UserSubscriptionToModel(sub)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.UserSubscriptionModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"active":     model.Active,
			"status":     model.Status,
			"expires_at": model.ExpiresAt,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update subscription", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("subscription %d not found", model.ID)
	}
	return nil
}

func (r *UserSubscriptionRepository) FindActiveForUser(ctx context.Context, userID uint) (*subscription.UserSubscription, error) {
	var model models.UserSubscriptionModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ? AND active = ?", userID, true).
		Order("started_at DESC, created_at DESC, id DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to find active subscription", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to find active subscription: %w", err)
	}
	return mappers.UserSubscriptionToEntity(&model), nil
}

// LockActiveForUser must run inside a transaction. Locking the user row
// serializes concurrent subscribes even when the user has no active row yet.
func (r *UserSubscriptionRepository) LockActiveForUser(ctx context.Context, userID uint) ([]*subscription.UserSubscription, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var owner models.UserModel
	err := tx.Scopes(db.ForUpdate()).Select("id").Where("id = ?", userID).Take(&owner).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Errorw("failed to lock user row", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to lock user: %w", err)
	}

	var list []*models.UserSubscriptionModel
	err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND active = ?", userID, true).
		Order("id ASC").
		Find(&list).Error
	if err != nil {
		r.logger.Errorw("failed to lock active subscriptions", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to lock active subscriptions: %w", err)
	}

	out := make([]*subscription.UserSubscription, 0, len(list))
	for _, m := range list {
		out = append(out, mappers.UserSubscriptionToEntity(m))
	}
	return out, nil
}

func (r *UserSubscriptionRepository) ListByUser(ctx context.Context, userID uint) ([]*subscription.UserSubscription, error) {
	var list []*models.UserSubscriptionModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("started_at DESC, id DESC").
		Find(&list).Error
	if err != nil {
		r.logger.Errorw("failed to list subscriptions", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	out := make([]*subscription.UserSubscription, 0, len(list))
	for _, m := range list {
		out = append(out, mappers.UserSubscriptionToEntity(m))
	}
	return out, nil
}

func (r *UserSubscriptionRepository) CountActiveForUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.UserSubscriptionModel{}).
		Where("user_id = ? AND active = ?", userID, true).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count active subscriptions: %w", err)
	}
	return count, nil
}

type FeatureMatrixRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewFeatureMatrixRepository(db *gorm.DB, logger logger.Interface) *FeatureMatrixRepository {
	return &FeatureMatrixRepository{db: db, logger: logger}
}

func (r *FeatureMatrixRepository) ListRows(ctx context.Context) ([]*subscription.FeatureMatrixRow, error) {
	var list []*models.FeatureMatrixModel
	if err := db.GetTxFromContext(ctx, r.db).Order("slug ASC").Find(&list).Error; err != nil {
		r.logger.Errorw("failed to read feature matrix", "error", err)
		return nil, fmt.Errorf("failed to read feature matrix: %w", err)
	}

	out := make([]*subscription.FeatureMatrixRow, 0, len(list))
	for _, m := range list {
		out = append(out, mappers.FeatureRowToEntity(m))
	}
	return out, nil
}

func (r *FeatureMatrixRepository) Save(ctx context.Context, row *subscription.FeatureMatrixRow) error {
	model := mappers.FeatureRowToModel(row)
	model.ID = 0

	err := db.GetTxFromContext(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "free", "basic", "pro", "enterprise", "data_type"}),
	}).Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to save feature row", "slug", model.Slug, "error", err)
		return fmt.Errorf("failed to save feature row: %w", err)
	}
	return nil
}
