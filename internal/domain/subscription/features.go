package subscription

// Well-known feature keys read by the gates.
const (
	FeatureCanUseAI          = "can_use_ai"
	FeatureCanEditProfile    = "can_edit_profile"
	FeatureCanChangePassword = "can_change_password"
	FeatureMaxProjects       = "max_projects"
)

// Features maps a feature key to its typed value: bool, int64, nil, or the
// raw string for undeclared types.
type Features map[string]any

// Bool returns the feature as a bool, or def when absent, nil or not a bool.
func (f Features) Bool(key string, def bool) bool {
	if v, ok := f[key].(bool); ok {
		return v
	}
	return def
}

// Int returns the feature as an integer, or nil when absent or not numeric.
func (f Features) Int(key string) *int64 {
	if v, ok := f[key].(int64); ok {
		return &v
	}
	return nil
}

func (f Features) Clone() Features {
	out := make(Features, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// FallbackFeatures is the feature set served when the matrix has no rows or
// cannot be read. It is configured once at startup.
type FallbackFeatures struct {
	CanUseAI          bool
	CanEditProfile    bool
	CanChangePassword bool
	MaxProjects       int64
}

// DefaultFallbackFeatures is the built-in fallback used when configuration
// does not override it.
func DefaultFallbackFeatures() FallbackFeatures {
	return FallbackFeatures{
		CanUseAI:          false,
		CanEditProfile:    true,
		CanChangePassword: true,
		MaxProjects:       1,
	}
}

func (f FallbackFeatures) Features() Features {
	return Features{
		FeatureCanUseAI:          f.CanUseAI,
		FeatureCanEditProfile:    f.CanEditProfile,
		FeatureCanChangePassword: f.CanChangePassword,
		FeatureMaxProjects:       f.MaxProjects,
	}
}

// Or is the consumer view of a projection: features come back unchanged
// unless err is set or the matrix produced nothing, in which case the
// fallback set is returned and the flag is true.
func (f FallbackFeatures) Or(features Features, err error) (Features, bool) {
	if err != nil || len(features) == 0 {
		return f.Features(), true
	}
	return features, false
}
