package usecases

import (
	"context"

	"github.com/portalkit/portalkit/internal/domain/subscription"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

// projectFeatures reads the matrix column for slug and substitutes the
// fallback set when the matrix is empty or unreadable. The flag reports
// whether the fallback was served.
func projectFeatures(ctx context.Context, source PlanFeatureSource, fallback subscription.FallbackFeatures,
	slug string, log logger.Interface) (subscription.Features, bool) {
	features, err := source.FeaturesForPlan(ctx, slug)
	if err != nil {
		log.Warnw("feature matrix unavailable, serving fallback", "plan_slug", slug, "error", err)
	}
	return fallback.Or(features, err)
}
