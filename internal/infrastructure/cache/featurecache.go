package cache

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/portalkit/portalkit/internal/domain/subscription"
)

// PlanFeatureSource projects the feature matrix for a plan slug.
type PlanFeatureSource interface {
	FeaturesForPlan(ctx context.Context, slug string) (subscription.Features, error)
}

// FeatureCache memoizes per-tier projections for a short TTL. Concurrent
// misses for the same tier share one matrix read. Errors are not cached.
type FeatureCache struct {
	source PlanFeatureSource
	cache  *lru.LRU[string, subscription.Features]
	group  singleflight.Group
}

func NewFeatureCache(source PlanFeatureSource, size int, ttl time.Duration) *FeatureCache {
	if size <= 0 {
		size = 16
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &FeatureCache{
		source: source,
		cache:  lru.NewLRU[string, subscription.Features](size, nil, ttl),
	}
}

// FeaturesForPlan returns a copy the caller may modify.
func (c *FeatureCache) FeaturesForPlan(ctx context.Context, slug string) (subscription.Features, error) {
	tier := subscription.NormalizeTier(slug)

	if features, ok := c.cache.Get(tier); ok {
		return features.Clone(), nil
	}

	result, err, _ := c.group.Do(tier, func() (any, error) {
		if features, ok := c.cache.Get(tier); ok {
			return features, nil
		}
		features, err := c.source.FeaturesForPlan(ctx, tier)
		if err != nil {
			return nil, err
		}
		c.cache.Add(tier, features)
		return features, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(subscription.Features).Clone(), nil
}

// Invalidate drops every cached projection. Call after the matrix changes.
func (c *FeatureCache) Invalidate() {
	c.cache.Purge()
}
