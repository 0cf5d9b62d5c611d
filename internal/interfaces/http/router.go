package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/portalkit/portalkit/internal/infrastructure/config"
	"github.com/portalkit/portalkit/internal/infrastructure/metrics"
	"github.com/portalkit/portalkit/internal/infrastructure/scheduler"
	"github.com/portalkit/portalkit/internal/interfaces/http/handlers"
	"github.com/portalkit/portalkit/internal/interfaces/http/middleware"
	"github.com/portalkit/portalkit/internal/shared/logger"

	"gorm.io/gorm"
)

// Router represents the HTTP router configuration
type Router struct {
	engine *gin.Engine
	logger logger.Interface
	redis  *redis.Client

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

	authMiddleware    *middleware.AuthMiddleware
	policyMiddleware  *middleware.PolicyMiddleware
	featureMiddleware *middleware.FeatureMiddleware
	rateLimiter       *middleware.RateLimiter

	metrics          *metrics.Metrics
	gatherer         prometheus.Gatherer
	schedulerManager *scheduler.SchedulerManager
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	c := NewContainer(db, cfg, log)

	return &Router{
		engine: c.engine,
		logger: log,
		redis:  c.redis,

		authHandler:          c.hdlrs.authHandler,
		profileHandler:       c.hdlrs.profileHandler,
		userHandler:          c.hdlrs.userHandler,
		organizationHandler:  c.hdlrs.organizationHandler,
		permissionHandler:    c.hdlrs.permissionHandler,
		subscriptionHandler:  c.hdlrs.subscriptionHandler,
		featureMatrixHandler: c.hdlrs.featureMatrixHandler,
		addressHandler:       c.hdlrs.addressHandler,
		chatHandler:          c.hdlrs.chatHandler,
		passwordResetHandler: c.hdlrs.passwordResetHandler,
		messageHandler:       c.hdlrs.messageHandler,

		authMiddleware:    c.authMiddleware,
		policyMiddleware:  c.policyMiddleware,
		featureMiddleware: c.featureMiddleware,
		rateLimiter:       c.rateLimiter,

		metrics:          c.metrics,
		gatherer:         c.registry,
		schedulerManager: c.schedulerManager,
	}
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
