package models

import (
	"time"

	"github.com/portalkit/portalkit/internal/shared/constants"
)

type PlanModel struct {
	ID           uint    `gorm:"primarykey"`
	Slug         string  `gorm:"not null;size:50;uniqueIndex:idx_plans_slug"`
	Name         string  `gorm:"not null;size:100"`
	Description  *string `gorm:"type:text"`
	PriceCents   int     `gorm:"not null;default:0"`
	Currency     string  `gorm:"not null;size:10;default:INR"`
	BillingCycle string  `gorm:"not null;size:20;default:monthly"`
	Interval     string  `gorm:"not null;size:20;default:monthly"`
	IsActive     bool    `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (PlanModel) TableName() string {
	return constants.TableSubscriptionPlans
}

// UserSubscriptionModel rows are never deleted; expiring a subscription flips
// Active and Status. The migrations add a unique index that allows a single
// active row per user.
type UserSubscriptionModel struct {
	ID               uint      `gorm:"primarykey"`
	UserID           uint      `gorm:"not null;index:idx_user_subscriptions_user_active"`
	PlanID           uint      `gorm:"not null;index"`
	StartedAt        time.Time `gorm:"not null"`
	ExpiresAt        *time.Time
	Active           bool    `gorm:"not null;index:idx_user_subscriptions_user_active"`
	Status           string  `gorm:"not null;size:20;default:active"`
	PaymentProvider  *string `gorm:"size:50"`
	PaymentReference *string `gorm:"size:100"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (UserSubscriptionModel) TableName() string {
	return constants.TableUserSubscriptions
}

type FeatureMatrixModel struct {
	ID         uint    `gorm:"primarykey"`
	Slug       string  `gorm:"not null;size:100;uniqueIndex:idx_feature_matrix_slug"`
	Name       string  `gorm:"not null;size:255"`
	Free       *string `gorm:"size:50"`
	Basic      *string `gorm:"size:50"`
	Pro        *string `gorm:"size:50"`
	Enterprise *string `gorm:"size:50"`
	DataType   string  `gorm:"not null;size:20;default:boolean"`
}

func (FeatureMatrixModel) TableName() string {
	return constants.TableFeatureMatrix
}
