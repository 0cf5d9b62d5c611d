package http

import (
	"github.com/portalkit/portalkit/internal/interfaces/http/handlers"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	authHandler          *handlers.AuthHandler
	profileHandler       *handlers.ProfileHandler
	userHandler          *handlers.UserHandler
	organizationHandler  *handlers.OrganizationHandler
	permissionHandler    *handlers.PermissionHandler
	subscriptionHandler  *handlers.SubscriptionHandler
	featureMatrixHandler *handlers.FeatureMatrixHandler
	addressHandler       *handlers.AddressHandler
	chatHandler          *handlers.ChatHandler
	passwordResetHandler *handlers.PasswordResetHandler
	messageHandler       *handlers.MessageHandler
}
