package subscription

import (
	"fmt"
	"strings"
	"time"
)

// Plan is a purchasable tier. Its slug selects the feature matrix column.
type Plan struct {
	id           uint
	slug         string
	name         string
	description  string
	priceCents   int
	currency     string
	billingCycle string
	interval     string
	active       bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewPlan(slug, name, description string, priceCents int, currency, billingCycle string) (*Plan, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil, ErrPlanSlugRequired
	}
	if len(slug) > 50 {
		return nil, fmt.Errorf("plan slug too long (max 50 characters)")
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if priceCents < 0 {
		return nil, ErrInvalidPrice
	}
	if currency == "" {
		currency = "INR"
	}
	if billingCycle == "" {
		billingCycle = "monthly"
	}

	now := time.Now().UTC()
	return &Plan{
		slug:         slug,
		name:         name,
		description:  description,
		priceCents:   priceCents,
		currency:     currency,
		billingCycle: billingCycle,
		interval:     billingCycle,
		active:       true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructPlan(id uint, slug, name, description string, priceCents int, currency, billingCycle, interval string,
	active bool, createdAt, updatedAt time.Time) *Plan {
	return &Plan{
		id:           id,
		slug:         slug,
		name:         name,
		description:  description,
		priceCents:   priceCents,
		currency:     currency,
		billingCycle: billingCycle,
		interval:     interval,
		active:       active,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (p *Plan) ID() uint             { return p.id }
func (p *Plan) Slug() string         { return p.slug }
func (p *Plan) Name() string         { return p.name }
func (p *Plan) Description() string  { return p.description }
func (p *Plan) PriceCents() int      { return p.priceCents }
func (p *Plan) Currency() string     { return p.currency }
func (p *Plan) BillingCycle() string { return p.billingCycle }
func (p *Plan) Interval() string     { return p.interval }
func (p *Plan) IsActive() bool       { return p.active }
func (p *Plan) CreatedAt() time.Time { return p.createdAt }
func (p *Plan) UpdatedAt() time.Time { return p.updatedAt }

func (p *Plan) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("plan ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Plan) Deactivate() {
	p.active = false
	p.updatedAt = time.Now().UTC()
}
