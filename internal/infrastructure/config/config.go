package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "github.com/portalkit/portalkit/internal/shared/config"
)

type Config struct {
	Server       sharedConfig.ServerConfig       `mapstructure:"server"`
	Database     sharedConfig.DatabaseConfig     `mapstructure:"database"`
	Logger       sharedConfig.LoggerConfig       `mapstructure:"logger"`
	Auth         sharedConfig.AuthConfig         `mapstructure:"auth"`
	Email        sharedConfig.EmailConfig        `mapstructure:"email"`
	Redis        sharedConfig.RedisConfig        `mapstructure:"redis"`
	Subscription sharedConfig.SubscriptionConfig `mapstructure:"subscription"`
	AI           sharedConfig.AIConfig           `mapstructure:"ai"`
	RateLimit    sharedConfig.RateLimitConfig    `mapstructure:"ratelimit"`
	Metrics      sharedConfig.MetricsConfig      `mapstructure:"metrics"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads configs/config.yaml (or configPath when given) and overlays
// PORTALKIT_* environment variables.
func Load(env string, configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	v.SetEnvPrefix("PORTALKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "portalkit_dev")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 60)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	v.SetDefault("auth.password.bcrypt_cost", 12)
	v.SetDefault("auth.password.min_length", 8)
	v.SetDefault("auth.jwt.secret", "change-me-in-production")
	v.SetDefault("auth.jwt.access_exp_minutes", 60)
	v.SetDefault("auth.jwt.refresh_exp_days", 7)
	v.SetDefault("auth.otp.length", 6)
	v.SetDefault("auth.otp.reset_expires_minutes", 5)
	v.SetDefault("auth.otp.credential_expires_minutes", 10)
	v.SetDefault("auth.otp.send_per_minute", 1)
	v.SetDefault("auth.otp.send_per_hour", 5)
	v.SetDefault("auth.otp.purge_cron", "*/10 * * * *")
	v.SetDefault("auth.cookie.domain", "")
	v.SetDefault("auth.cookie.path", "/")
	v.SetDefault("auth.cookie.secure", false)
	v.SetDefault("auth.cookie.same_site", "Lax")
	v.SetDefault("auth.admin_role_names", []string{"Admin"})
	v.SetDefault("auth.casbin_model_path", "")
	v.SetDefault("auth.default_department", "General")
	v.SetDefault("auth.default_role", "User")

	v.SetDefault("email.smtp_host", "localhost")
	v.SetDefault("email.smtp_port", 1025)
	v.SetDefault("email.smtp_user", "")
	v.SetDefault("email.smtp_password", "")
	v.SetDefault("email.from_address", "noreply@portalkit.local")
	v.SetDefault("email.from_name", "PortalKit")
	v.SetDefault("email.frontend_url", "http://localhost:3000")
	v.SetDefault("email.max_retries", 3)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("subscription.default_currency", "INR")
	v.SetDefault("subscription.default_billing_cycle", "monthly")
	v.SetDefault("subscription.fallback.can_use_ai", false)
	v.SetDefault("subscription.fallback.can_edit_profile", true)
	v.SetDefault("subscription.fallback.can_change_password", true)
	v.SetDefault("subscription.fallback.max_projects", 1)
	v.SetDefault("subscription.feature_cache_size", 16)
	v.SetDefault("subscription.feature_cache_ttl_seconds", 60)

	v.SetDefault("ai.base_url", "https://generativelanguage.googleapis.com")
	v.SetDefault("ai.model", "gemini-2.5-flash")
	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.use_google_adc", false)
	v.SetDefault("ai.timeout_seconds", 30)
	v.SetDefault("ai.retry_count", 2)
	v.SetDefault("ai.session_limit", 20)
	v.SetDefault("ai.user_limit", 1000)
	v.SetDefault("ai.session_list_limit", 50)

	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.limit", 120)
	v.SetDefault("ratelimit.window_seconds", 60)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}
