package subscription

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
	// StatusFree is reported when a user has no subscription row at all.
	StatusFree Status = "free"
)

// UserSubscription is one row of a user's append-only subscription lineage.
// Only active, status and expiresAt change after creation, and only through
// Expire.
type UserSubscription struct {
	id               uint
	userID           uint
	planID           uint
	startedAt        time.Time
	expiresAt        *time.Time
	active           bool
	status           Status
	paymentProvider  *string
	paymentReference *string
	createdAt        time.Time
	updatedAt        time.Time
}

func NewUserSubscription(userID, planID uint, now time.Time, paymentProvider, paymentReference *string) (*UserSubscription, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}

	now = now.UTC()
	return &UserSubscription{
		userID:           userID,
		planID:           planID,
		startedAt:        now,
		active:           true,
		status:           StatusActive,
		paymentProvider:  paymentProvider,
		paymentReference: paymentReference,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func ReconstructUserSubscription(id, userID, planID uint, startedAt time.Time, expiresAt *time.Time, active bool,
	status Status, paymentProvider, paymentReference *string, createdAt, updatedAt time.Time) *UserSubscription {
	return &UserSubscription{
		id:               id,
		userID:           userID,
		planID:           planID,
		startedAt:        startedAt,
		expiresAt:        expiresAt,
		active:           active,
		status:           status,
		paymentProvider:  paymentProvider,
		paymentReference: paymentReference,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (s *UserSubscription) ID() uint                  { return s.id }
func (s *UserSubscription) UserID() uint              { return s.userID }
func (s *UserSubscription) PlanID() uint              { return s.planID }
func (s *UserSubscription) StartedAt() time.Time      { return s.startedAt }
func (s *UserSubscription) ExpiresAt() *time.Time     { return s.expiresAt }
func (s *UserSubscription) IsActive() bool            { return s.active }
func (s *UserSubscription) Status() Status            { return s.status }
func (s *UserSubscription) PaymentProvider() *string  { return s.paymentProvider }
func (s *UserSubscription) PaymentReference() *string { return s.paymentReference }
func (s *UserSubscription) CreatedAt() time.Time      { return s.createdAt }
func (s *UserSubscription) UpdatedAt() time.Time      { return s.updatedAt }

func (s *UserSubscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

// Expire performs the one-way active -> expired transition.
func (s *UserSubscription) Expire(now time.Time) error {
	if !s.active || s.status != StatusActive {
		return ErrInvalidTransition(s.status, StatusExpired)
	}

	now = now.UTC()
	s.active = false
	s.status = StatusExpired
	s.expiresAt = &now
	s.updatedAt = now
	return nil
}
