package subscription

import "strings"

// Plan tiers that have a column in the feature matrix.
const (
	TierFree       = "free"
	TierBasic      = "basic"
	TierPro        = "pro"
	TierEnterprise = "enterprise"
)

var knownTiers = map[string]bool{
	TierFree:       true,
	TierBasic:      true,
	TierPro:        true,
	TierEnterprise: true,
}

// NormalizeTier lowercases slug and maps anything that is not a known tier,
// including the empty string, to the free tier.
func NormalizeTier(slug string) string {
	s := strings.ToLower(strings.TrimSpace(slug))
	if !knownTiers[s] {
		return TierFree
	}
	return s
}

// KnownTiers lists the tiers in ascending order.
func KnownTiers() []string {
	return []string{TierFree, TierBasic, TierPro, TierEnterprise}
}
