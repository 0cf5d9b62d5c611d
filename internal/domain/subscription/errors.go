package subscription

import (
	"errors"
	"fmt"
)

var (
	ErrPlanNotFound            = errors.New("subscription plan not found")
	ErrPlanSlugRequired        = errors.New("plan_slug is required")
	ErrPlanSlugExists          = errors.New("plan slug already exists")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrInvalidPrice            = errors.New("invalid price")
	ErrMultipleActive          = errors.New("more than one active subscription")
)

func ErrInvalidTransition(from, to Status) error {
	return fmt.Errorf("%w: from %s to %s", ErrInvalidStatusTransition, from, to)
}
