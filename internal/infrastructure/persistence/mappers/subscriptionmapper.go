package mappers

import (
	"github.com/portalkit/portalkit/internal/domain/subscription"
	"github.com/portalkit/portalkit/internal/infrastructure/persistence/models"
)

func PlanToEntity(m *models.PlanModel) *subscription.Plan {
	if m == nil {
		return nil
	}
	description := ""
	if m.Description != nil {
		description = *m.Description
	}
	return subscription.ReconstructPlan(m.ID, m.Slug, m.Name, description, m.PriceCents,
		m.Currency, m.BillingCycle, m.Interval, m.IsActive, m.CreatedAt, m.UpdatedAt)
}

func PlanToModel(p *subscription.Plan) *models.PlanModel {
	var description *string
	if d := p.Description(); d != "" {
		description = &d
	}
	return &models.PlanModel{
		ID:           p.ID(),
		Slug:         p.Slug(),
		Name:         p.Name(),
		Description:  description,
		PriceCents:   p.PriceCents(),
		Currency:     p.Currency(),
		BillingCycle: p.BillingCycle(),
		Interval:     p.Interval(),
		IsActive:     p.IsActive(),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
}

func UserSubscriptionToEntity(m *models.UserSubscriptionModel) *subscription.UserSubscription {
	if m == nil {
		return nil
	}
	return subscription.ReconstructUserSubscription(m.ID, m.UserID, m.PlanID, m.StartedAt, m.ExpiresAt,
		m.Active, subscription.Status(m.Status), m.PaymentProvider, m.PaymentReference, m.CreatedAt, m.UpdatedAt)
}

func UserSubscriptionToModel(s *subscription.UserSubscription) *models.UserSubscriptionModel {
	return &models.UserSubscriptionModel{
		ID:               s.ID(),
		UserID:           s.UserID(),
		PlanID:           s.PlanID(),
		StartedAt:        s.StartedAt(),
		ExpiresAt:        s.ExpiresAt(),
		Active:           s.IsActive(),
		Status:           string(s.Status()),
		PaymentProvider:  s.PaymentProvider(),
		PaymentReference: s.PaymentReference(),
		CreatedAt:        s.CreatedAt(),
		UpdatedAt:        s.UpdatedAt(),
	}
}

func FeatureRowToEntity(m *models.FeatureMatrixModel) *subscription.FeatureMatrixRow {
	return subscription.ReconstructFeatureMatrixRow(m.ID, m.Slug, m.Name, m.DataType,
		m.Free, m.Basic, m.Pro, m.Enterprise)
}

func FeatureRowToModel(r *subscription.FeatureMatrixRow) *models.FeatureMatrixModel {
	return &models.FeatureMatrixModel{
		ID:         r.ID(),
		Slug:       r.Key(),
		Name:       r.Name(),
		Free:       r.RawValue(subscription.TierFree),
		Basic:      r.RawValue(subscription.TierBasic),
		Pro:        r.RawValue(subscription.TierPro),
		Enterprise: r.RawValue(subscription.TierEnterprise),
		DataType:   r.DataType(),
	}
}
