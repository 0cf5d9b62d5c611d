package usecases

import (
	"context"
	"time"

	subscriptionDTO "github.com/portalkit/portalkit/internal/application/subscription/dto"
	"github.com/portalkit/portalkit/internal/domain/permission"
)

// TokenPair is a freshly issued access/refresh pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
}

// TokenIssuer signs and refreshes session tokens.
type TokenIssuer interface {
	Issue(userID uint, username string) (*TokenPair, error)
	// Refresh returns a new access token and the user it was issued for.
	Refresh(refreshToken string) (accessToken string, userID uint, err error)
	AccessTTL() time.Duration
}

// PermissionLister returns the sorted codenames a subject is allowed.
type PermissionLister interface {
	ResolveAll(ctx context.Context, subject permission.Subject) ([]string, error)
}

// SubscriptionClaimer builds the subscription claim shown on the profile.
type SubscriptionClaimer interface {
	CurrentSubscription(ctx context.Context, userID uint) (*subscriptionDTO.SubscriptionClaim, error)
}

// OrgDefaults names the department and role given to accounts created
// without one.
type OrgDefaults struct {
	Department string
	Role       string
}
