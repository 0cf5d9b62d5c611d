package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/portalkit/portalkit/internal/application/chat"
	"github.com/portalkit/portalkit/internal/application/passwordreset"
	"github.com/portalkit/portalkit/internal/application/permission"
	"github.com/portalkit/portalkit/internal/application/subscription"
	"github.com/portalkit/portalkit/internal/application/user"
	"github.com/portalkit/portalkit/internal/infrastructure/auth"
	"github.com/portalkit/portalkit/internal/infrastructure/cache"
	"github.com/portalkit/portalkit/internal/infrastructure/config"
	"github.com/portalkit/portalkit/internal/infrastructure/metrics"
	infraPermission "github.com/portalkit/portalkit/internal/infrastructure/permission"
	"github.com/portalkit/portalkit/internal/infrastructure/ratelimit"
	"github.com/portalkit/portalkit/internal/infrastructure/scheduler"
	"github.com/portalkit/portalkit/internal/interfaces/http/middleware"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

// Container holds all infrastructure components, repositories, services,
// handlers and background jobs. It wires everything together and provides
// Shutdown() for graceful termination.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Repositories
	repos *repositories

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware    *middleware.AuthMiddleware
	policyMiddleware  *middleware.PolicyMiddleware
	featureMiddleware *middleware.FeatureMiddleware
	rateLimiter       *middleware.RateLimiter

	// Infrastructure services
	jwtSvc       *auth.JWTService
	hasher       *auth.BcryptPasswordHasher
	enforcer     *infraPermission.Enforcer
	redisLimiter *ratelimit.RedisRateLimiter
	registry     *prometheus.Registry
	metrics      *metrics.Metrics
	featureCache *cache.FeatureCache

	// Background jobs
	schedulerManager *scheduler.SchedulerManager

	// Application services (created in one section, used in another)
	permissionService    *permission.ServiceDDD
	subscriptionService  *subscription.ServiceDDD
	userService          *user.ServiceDDD
	passwordResetService *passwordreset.ServiceDDD
	chatService          *chat.ServiceDDD
}

// NewContainer creates a new Container with all dependencies wired together.
// Sections run in dependency order: the account service needs the permission
// resolver and the subscription claim.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) *Container {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, Repositories, Metrics, Scheduler
	c.initInfrastructure()

	// Section 2: Access - Permission resolver, Route policy
	c.initAccess()

	// Section 3: Subscription - Feature resolver, Feature cache, Subscribe
	c.initSubscription()

	// Section 4: Accounts - Registration, Login, Profile, Administration
	c.initAccounts()

	// Section 5: Password reset - OTP mail, Credential codes, Purge job
	c.initPasswordReset()

	// Section 6: Chat - Gemini provider, Markdown rendering
	c.initChat()

	// Section 7: Middlewares and Handlers
	c.initHandlers()

	return c
}
