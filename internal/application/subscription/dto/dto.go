package dto

import (
	"github.com/portalkit/portalkit/internal/domain/subscription"
	"github.com/portalkit/portalkit/internal/shared/biztime"
	"github.com/portalkit/portalkit/internal/shared/mapper"
)

type SubscribeRequest struct {
	PlanSlug         string  `json:"plan_slug"`
	PaymentProvider  *string `json:"payment_provider"`
	PaymentReference *string `json:"payment_reference"`
}

type PlanDTO struct {
	ID           uint                  `json:"id"`
	Slug         string                `json:"slug"`
	Name         string                `json:"name"`
	Description  string                `json:"description"`
	PriceCents   int                   `json:"price_cents"`
	Currency     string                `json:"currency"`
	BillingCycle string                `json:"billing_cycle"`
	Interval     string                `json:"interval"`
	IsActive     bool                  `json:"is_active"`
	Features     subscription.Features `json:"features"`
}

// SubscriptionDTO is one row of a user's subscription lineage. It carries
// the same flattened plan and feature fields as SubscriptionClaim.
type SubscriptionDTO struct {
	ID                uint                  `json:"id"`
	Slug              string                `json:"slug"`
	Name              string                `json:"name"`
	Plan              *PlanDTO              `json:"plan"`
	StartedAt         *string               `json:"started_at"`
	ExpiresAt         *string               `json:"expires_at"`
	Active            bool                  `json:"active"`
	Status            string                `json:"status"`
	PriceCents        int                   `json:"price_cents"`
	Features          subscription.Features `json:"features"`
	CanUseAI          bool                  `json:"can_use_ai"`
	CanEditProfile    bool                  `json:"can_edit_profile"`
	CanChangePassword bool                  `json:"can_change_password"`
	MaxProjects       *int64                `json:"max_projects"`
	PaymentProvider   *string               `json:"payment_provider"`
	PaymentReference  *string               `json:"payment_reference"`
	CreatedAt         *string               `json:"created_at"`
}

// SubscriptionClaim summarizes what the user is entitled to right now. ID
// and the timestamps are null for the free fallbacks.
type SubscriptionClaim struct {
	ID                *uint                 `json:"id"`
	Slug              string                `json:"slug"`
	Name              string                `json:"name"`
	Status            string                `json:"status"`
	Active            bool                  `json:"active"`
	StartedAt         *string               `json:"started_at"`
	ExpiresAt         *string               `json:"expires_at"`
	PriceCents        int                   `json:"price_cents"`
	Features          subscription.Features `json:"features"`
	CanUseAI          bool                  `json:"can_use_ai"`
	CanEditProfile    bool                  `json:"can_edit_profile"`
	CanChangePassword bool                  `json:"can_change_password"`
	MaxProjects       *int64                `json:"max_projects"`
}

// ToPlanDTO converts a plan; features may be nil.
func ToPlanDTO(p *subscription.Plan, features subscription.Features) *PlanDTO {
	if p == nil {
		return nil
	}
	return &PlanDTO{
		ID:           p.ID(),
		Slug:         p.Slug(),
		Name:         p.Name(),
		Description:  p.Description(),
		PriceCents:   p.PriceCents(),
		Currency:     p.Currency(),
		BillingCycle: p.BillingCycle(),
		Interval:     p.Interval(),
		IsActive:     p.IsActive(),
		Features:     features,
	}
}

// ToSubscriptionDTO converts a row together with its plan and the plan's
// projected features. A nil plan leaves the plan fields empty.
func ToSubscriptionDTO(s *subscription.UserSubscription, plan *subscription.Plan, features subscription.Features) *SubscriptionDTO {
	startedAt := s.StartedAt()
	createdAt := s.CreatedAt()
	out := &SubscriptionDTO{
		ID:                s.ID(),
		Plan:              ToPlanDTO(plan, features),
		StartedAt:         biztime.FormatISO(&startedAt),
		ExpiresAt:         biztime.FormatISO(s.ExpiresAt()),
		Active:            s.IsActive(),
		Status:            string(s.Status()),
		Features:          features,
		CanUseAI:          claimFlag(features, subscription.FeatureCanUseAI, false),
		CanEditProfile:    claimFlag(features, subscription.FeatureCanEditProfile, true),
		CanChangePassword: claimFlag(features, subscription.FeatureCanChangePassword, true),
		MaxProjects:       features.Int(subscription.FeatureMaxProjects),
		PaymentProvider:   s.PaymentProvider(),
		PaymentReference:  s.PaymentReference(),
		CreatedAt:         biztime.FormatISO(&createdAt),
	}
	if plan != nil {
		out.Slug = plan.Slug()
		out.Name = plan.Name()
		out.PriceCents = plan.PriceCents()
	}
	return out
}

// ToSubscriptionDTOs resolves each row's plan and features by plan id; rows
// whose plan is gone carry a null plan.
func ToSubscriptionDTOs(subs []*subscription.UserSubscription, plans map[uint]*subscription.Plan, features map[uint]subscription.Features) []*SubscriptionDTO {
	return mapper.MapSlicePtr(subs, func(s *subscription.UserSubscription) *SubscriptionDTO {
		return ToSubscriptionDTO(s, plans[s.PlanID()], features[s.PlanID()])
	})
}

// NewClaim fills the convenience flags from features. A flag that is present
// but null reads as false; an absent flag takes its default.
func NewClaim(id *uint, slug, name string, status subscription.Status, started, expires *string, priceCents int, features subscription.Features) *SubscriptionClaim {
	return &SubscriptionClaim{
		ID:                id,
		Slug:              slug,
		Name:              name,
		Status:            string(status),
		Active:            true,
		StartedAt:         started,
		ExpiresAt:         expires,
		PriceCents:        priceCents,
		Features:          features,
		CanUseAI:          claimFlag(features, subscription.FeatureCanUseAI, false),
		CanEditProfile:    claimFlag(features, subscription.FeatureCanEditProfile, true),
		CanChangePassword: claimFlag(features, subscription.FeatureCanChangePassword, true),
		MaxProjects:       features.Int(subscription.FeatureMaxProjects),
	}
}

// HardcodedFreeClaim is served when neither a subscription nor an active
// free plan row exists.
func HardcodedFreeClaim(fallback subscription.FallbackFeatures) *SubscriptionClaim {
	return NewClaim(nil, subscription.TierFree, "Free", subscription.StatusFree, nil, nil, 0, fallback.Features())
}

func claimFlag(features subscription.Features, key string, def bool) bool {
	v, ok := features[key]
	if !ok {
		return def
	}
	b, _ := v.(bool)
	return b
}

// FeatureRowDTO is one feature matrix row with the raw cell of every tier.
// A null cell means the tier does not mention the feature.
type FeatureRowDTO struct {
	Key        string  `json:"key"`
	Name       string  `json:"name"`
	DataType   string  `json:"data_type"`
	Free       *string `json:"free"`
	Basic      *string `json:"basic"`
	Pro        *string `json:"pro"`
	Enterprise *string `json:"enterprise"`
}

type SaveFeatureRowRequest struct {
	Key        string  `json:"key"`
	Name       string  `json:"name"`
	DataType   string  `json:"data_type"`
	Free       *string `json:"free"`
	Basic      *string `json:"basic"`
	Pro        *string `json:"pro"`
	Enterprise *string `json:"enterprise"`
}

func ToFeatureRowDTO(row *subscription.FeatureMatrixRow) *FeatureRowDTO {
	return &FeatureRowDTO{
		Key:        row.Key(),
		Name:       row.Name(),
		DataType:   row.DataType(),
		Free:       row.RawValue(subscription.TierFree),
		Basic:      row.RawValue(subscription.TierBasic),
		Pro:        row.RawValue(subscription.TierPro),
		Enterprise: row.RawValue(subscription.TierEnterprise),
	}
}
