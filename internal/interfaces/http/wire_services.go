package http

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/portalkit/portalkit/internal/application/address"
	"github.com/portalkit/portalkit/internal/application/chat"
	"github.com/portalkit/portalkit/internal/application/message"
	"github.com/portalkit/portalkit/internal/application/organization"
	"github.com/portalkit/portalkit/internal/application/passwordreset"
	"github.com/portalkit/portalkit/internal/application/permission"
	"github.com/portalkit/portalkit/internal/application/subscription"
	"github.com/portalkit/portalkit/internal/application/user"
	"github.com/portalkit/portalkit/internal/application/user/usecases"
	domainChat "github.com/portalkit/portalkit/internal/domain/chat"
	domainPermission "github.com/portalkit/portalkit/internal/domain/permission"
	domainSubscription "github.com/portalkit/portalkit/internal/domain/subscription"
	domainUser "github.com/portalkit/portalkit/internal/domain/user"
	"github.com/portalkit/portalkit/internal/infrastructure/ai"
	"github.com/portalkit/portalkit/internal/infrastructure/auth"
	"github.com/portalkit/portalkit/internal/infrastructure/cache"
	"github.com/portalkit/portalkit/internal/infrastructure/config"
	"github.com/portalkit/portalkit/internal/infrastructure/email"
	"github.com/portalkit/portalkit/internal/infrastructure/messagecatalog"
	"github.com/portalkit/portalkit/internal/infrastructure/metrics"
	infraPermission "github.com/portalkit/portalkit/internal/infrastructure/permission"
	"github.com/portalkit/portalkit/internal/infrastructure/ratelimit"
	"github.com/portalkit/portalkit/internal/infrastructure/scheduler"
	"github.com/portalkit/portalkit/internal/interfaces/http/handlers"
	"github.com/portalkit/portalkit/internal/interfaces/http/middleware"
	sharedConfig "github.com/portalkit/portalkit/internal/shared/config"
	"github.com/portalkit/portalkit/internal/shared/db"
	"github.com/portalkit/portalkit/internal/shared/logger"
	"github.com/portalkit/portalkit/internal/shared/services/markdown"
)

// initInfrastructure sets up Redis, repositories, metrics, the scheduler and
// the token services every later section relies on.
func (c *Container) initInfrastructure() {
	cfg := c.cfg
	log := c.log

	c.redis = initRedis(cfg, log)
	c.repos = newRepositories(c.db, log)

	c.registry = prometheus.NewRegistry()
	if cfg.Metrics.Enabled {
		c.metrics = metrics.NewMetrics(c.registry)
	} else {
		c.metrics = metrics.NewNop()
	}

	schedulerManager, err := scheduler.NewSchedulerManager(log)
	if err != nil {
		log.Fatalw("failed to create scheduler manager", "error", err)
	}
	c.schedulerManager = schedulerManager

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	c.hasher = auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	c.redisLimiter = ratelimit.NewRedisRateLimiter(c.redis)
}

func initRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalw("failed to connect to Redis", "error", err)
	}
	log.Infow("Redis connection established successfully")

	return redisClient
}

// initAccess builds the casbin route policy and the permission service.
func (c *Container) initAccess() {
	enforcer, err := infraPermission.NewEnforcer(c.db, c.cfg.Auth.CasbinModelPath, c.log)
	if err != nil {
		c.log.Fatalw("failed to create policy enforcer", "error", err)
	}
	if err := enforcer.SeedDefaults(c.cfg.Auth.AdminRoleNames); err != nil {
		c.log.Fatalw("failed to seed default policies", "error", err)
	}
	c.enforcer = enforcer

	c.permissionService = permission.NewServiceDDD(permission.Repositories{
		Permissions: c.repos.permissionRepo,
		Overrides:   c.repos.userOverrideRepo,
		RoleGrants:  c.repos.roleGrantRepo,
		DeptGrants:  c.repos.deptGrantRepo,
		Users:       c.repos.userRepo,
		Roles:       c.repos.roleRepo,
		Departments: c.repos.departmentRepo,
	}, c.metrics, c.log)
}

// initSubscription builds the feature resolver, its cache and the
// subscription service.
func (c *Container) initSubscription() {
	cfg := c.cfg.Subscription

	resolver := domainSubscription.NewFeatureResolver(
		c.repos.subscriptionRepo,
		c.repos.planRepo,
		c.repos.featureMatrixRepo,
		fallbackFeatures(cfg.Fallback),
	)
	c.featureCache = cache.NewFeatureCache(resolver, cfg.FeatureCacheSize, cfg.FeatureCacheTTL())

	c.subscriptionService = subscription.NewServiceDDD(
		c.repos.planRepo,
		c.repos.subscriptionRepo,
		c.repos.featureMatrixRepo,
		resolver,
		c.featureCache,
		c.featureCache,
		db.NewTransactionManager(c.db),
		c.metrics,
		c.log.With("component", "subscription"),
	)
}

func fallbackFeatures(cfg sharedConfig.FallbackFeaturesConfig) domainSubscription.FallbackFeatures {
	return domainSubscription.FallbackFeatures{
		CanUseAI:          cfg.CanUseAI,
		CanEditProfile:    cfg.CanEditProfile,
		CanChangePassword: cfg.CanChangePassword,
		MaxProjects:       int64(cfg.MaxProjects),
	}
}

func (c *Container) passwordPolicy() domainUser.PasswordPolicy {
	policy := domainUser.DefaultPasswordPolicy()
	if c.cfg.Auth.Password.MinLength > 0 {
		policy.MinLength = c.cfg.Auth.Password.MinLength
	}
	return policy
}

// initAccounts builds the account service: registration, login, profile and
// user administration.
func (c *Container) initAccounts() {
	resolver := domainPermission.NewResolver(
		c.repos.permissionRepo,
		c.repos.userOverrideRepo,
		c.repos.roleGrantRepo,
		c.repos.deptGrantRepo,
	)

	c.userService = user.NewServiceDDD(user.Dependencies{
		Users:          c.repos.userRepo,
		Departments:    c.repos.departmentRepo,
		Roles:          c.repos.roleRepo,
		PasswordHasher: c.hasher,
		PasswordPolicy: c.passwordPolicy(),
		Tokens:         &jwtServiceAdapter{c.jwtSvc},
		Permissions:    resolver,
		Enforcer:       c.enforcer,
		Subscriptions:  c.subscriptionService,
		Defaults: usecases.OrgDefaults{
			Department: c.cfg.Auth.DefaultDept,
			Role:       c.cfg.Auth.DefaultRole,
		},
	}, c.log)
}

// initPasswordReset builds the one-time-code flows and schedules the purge of
// expired reset codes.
func (c *Container) initPasswordReset() {
	cfg := c.cfg
	otp := cfg.Auth.OTP

	mailer := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		FrontendURL: cfg.Email.FrontendURL,
		MaxRetries:  cfg.Email.MaxRetries,
	}, c.log)

	c.passwordResetService = passwordreset.NewServiceDDD(passwordreset.Dependencies{
		Users:          c.repos.userRepo,
		OTPs:           c.repos.otpRepo,
		Credentials:    cache.NewRedisCredentialStore(c.redis),
		Mailer:         mailer,
		Limiter:        newOTPLimiterAdapter(c.redisLimiter, otp.SendPerMinute, otp.SendPerHour),
		Recorder:       c.metrics,
		PasswordHasher: c.hasher,
		PasswordPolicy: c.passwordPolicy(),
	}, passwordreset.Config{
		CodeLength:    otp.Length,
		ResetTTL:      otp.ResetTTL(),
		CredentialTTL: otp.CredentialTTL(),
	}, c.log.With("component", "password_reset"))

	if otp.PurgeCron != "" {
		if err := c.schedulerManager.RegisterOTPPurgeJob(otp.PurgeCron, c.passwordResetService.PurgeJob()); err != nil {
			c.log.Fatalw("failed to register OTP purge job", "error", err, "cron", otp.PurgeCron)
		}
	}
}

// initChat builds the AI chat service. Without credentials the provider
// answers with the canned reply.
func (c *Container) initChat() {
	cfg := c.cfg.AI

	geminiCfg := ai.GeminiConfig{
		BaseURL:      cfg.BaseURL,
		Model:        cfg.Model,
		APIKey:       cfg.APIKey,
		UseGoogleADC: cfg.UseGoogleADC,
		Timeout:      time.Duration(cfg.TimeoutSeconds) * time.Second,
		RetryCount:   cfg.RetryCount,
	}
	provider, err := ai.NewGeminiClient(context.Background(), geminiCfg, c.log)
	if err != nil {
		c.log.Warnw("google credentials unavailable, chat replies use the fallback", "error", err)
		geminiCfg.UseGoogleADC = false
		provider, err = ai.NewGeminiClient(context.Background(), geminiCfg, c.log)
		if err != nil {
			c.log.Fatalw("failed to create chat provider", "error", err)
		}
	}
	if !provider.Configured() {
		c.log.Warnw("AI provider not configured, chat replies use the fallback")
	}

	c.chatService = chat.NewServiceDDD(
		c.repos.chatSessionRepo,
		c.repos.chatMessageRepo,
		provider,
		markdown.NewRenderer(),
		c.metrics,
		chat.Config{
			Limits: domainChat.Limits{
				PerSession: int64(cfg.SessionLimit),
				PerUser:    int64(cfg.UserLimit),
			},
			SessionListLimit: cfg.SessionListLimit,
		},
		c.log.With("component", "chat"),
	)
}

// initHandlers creates middlewares and HTTP handlers.
func (c *Container) initHandlers() {
	cfg := c.cfg
	log := c.log

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, log)
	c.policyMiddleware = middleware.NewPolicyMiddleware(c.userService, c.enforcer, log)
	c.featureMiddleware = middleware.NewFeatureMiddleware(c.subscriptionService, log)
	c.rateLimiter = middleware.NewRateLimiter(
		c.redisLimiter,
		httpLimitConfig(cfg.RateLimit.Limit, cfg.RateLimit.Window()),
		log,
	)

	catalog, err := messagecatalog.LoadDefaults()
	if err != nil {
		log.Fatalw("failed to load message catalog", "error", err)
	}

	c.hdlrs = &allHandlers{
		authHandler:          handlers.NewAuthHandler(c.userService, cfg.Auth.Cookie, log),
		profileHandler:       handlers.NewProfileHandler(c.userService, log),
		userHandler:          handlers.NewUserHandler(c.userService, log),
		organizationHandler:  handlers.NewOrganizationHandler(organization.NewServiceDDD(c.repos.departmentRepo, c.repos.roleRepo, log), log),
		permissionHandler:    handlers.NewPermissionHandler(c.permissionService, log),
		subscriptionHandler:  handlers.NewSubscriptionHandler(c.subscriptionService, log),
		featureMatrixHandler: handlers.NewFeatureMatrixHandler(c.subscriptionService, log),
		addressHandler:       handlers.NewAddressHandler(address.NewServiceDDD(c.repos.addressRepo, c.repos.userRepo, log), c.policyMiddleware, log),
		chatHandler:          handlers.NewChatHandler(c.chatService, log),
		passwordResetHandler: handlers.NewPasswordResetHandler(c.passwordResetService, log),
		messageHandler:       handlers.NewMessageHandler(message.NewServiceDDD(c.repos.messageRepo, catalog, log)),
	}
}
