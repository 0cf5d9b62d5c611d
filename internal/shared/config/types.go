package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=true&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

// GetMigrationDSN enables multi-statement execution, which the SQL migration
// files need.
func (d *DatabaseConfig) GetMigrationDSN() string {
	return d.GetDSN() + "&multiStatements=true"
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
	MinLength  int `mapstructure:"min_length"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
	RefreshExpDays   int    `mapstructure:"refresh_exp_days"`
}

// OTPConfig covers both the database-backed password reset codes and the
// redis-backed credential codes sent by administrators.
type OTPConfig struct {
	Length               int    `mapstructure:"length"`
	ResetExpiresMinutes  int    `mapstructure:"reset_expires_minutes"`
	CredentialExpiresMin int    `mapstructure:"credential_expires_minutes"`
	SendPerMinute        int    `mapstructure:"send_per_minute"`
	SendPerHour          int    `mapstructure:"send_per_hour"`
	PurgeCron            string `mapstructure:"purge_cron"`
}

func (o *OTPConfig) ResetTTL() time.Duration {
	return time.Duration(o.ResetExpiresMinutes) * time.Minute
}

func (o *OTPConfig) CredentialTTL() time.Duration {
	return time.Duration(o.CredentialExpiresMin) * time.Minute
}

// CookieConfig controls the HttpOnly cookies carrying the token pair.
type CookieConfig struct {
	Domain   string `mapstructure:"domain"`
	Path     string `mapstructure:"path"`
	Secure   bool   `mapstructure:"secure"`
	SameSite string `mapstructure:"same_site"`
}

type AuthConfig struct {
	Password        PasswordConfig `mapstructure:"password"`
	JWT             JWTConfig      `mapstructure:"jwt"`
	OTP             OTPConfig      `mapstructure:"otp"`
	Cookie          CookieConfig   `mapstructure:"cookie"`
	AdminRoleNames  []string       `mapstructure:"admin_role_names"`
	CasbinModelPath string         `mapstructure:"casbin_model_path"`
	DefaultDept     string         `mapstructure:"default_department"`
	DefaultRole     string         `mapstructure:"default_role"`
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
	FrontendURL  string `mapstructure:"frontend_url"`
	MaxRetries   int    `mapstructure:"max_retries"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// FallbackFeaturesConfig is the feature set served when the feature matrix
// holds no rows at all.
type FallbackFeaturesConfig struct {
	CanUseAI          bool `mapstructure:"can_use_ai"`
	CanEditProfile    bool `mapstructure:"can_edit_profile"`
	CanChangePassword bool `mapstructure:"can_change_password"`
	MaxProjects       int  `mapstructure:"max_projects"`
}

type SubscriptionConfig struct {
	DefaultCurrency     string                 `mapstructure:"default_currency"`
	DefaultBillingCycle string                 `mapstructure:"default_billing_cycle"`
	Fallback            FallbackFeaturesConfig `mapstructure:"fallback"`
	FeatureCacheSize    int                    `mapstructure:"feature_cache_size"`
	FeatureCacheTTLSecs int                    `mapstructure:"feature_cache_ttl_seconds"`
}

func (s *SubscriptionConfig) FeatureCacheTTL() time.Duration {
	return time.Duration(s.FeatureCacheTTLSecs) * time.Second
}

type AIConfig struct {
	BaseURL          string `mapstructure:"base_url"`
	Model            string `mapstructure:"model"`
	APIKey           string `mapstructure:"api_key"`
	UseGoogleADC     bool   `mapstructure:"use_google_adc"`
	TimeoutSeconds   int    `mapstructure:"timeout_seconds"`
	RetryCount       int    `mapstructure:"retry_count"`
	SessionLimit     int    `mapstructure:"session_limit"`
	UserLimit        int    `mapstructure:"user_limit"`
	SessionListLimit int    `mapstructure:"session_list_limit"`
}

type RateLimitConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	Limit         int  `mapstructure:"limit"`
	WindowSeconds int  `mapstructure:"window_seconds"`
}

func (r *RateLimitConfig) Window() time.Duration {
	return time.Duration(r.WindowSeconds) * time.Second
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}
