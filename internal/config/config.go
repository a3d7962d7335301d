package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/prostech/outbound-api/internal/secrets"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds all application configuration
type Config struct {
	App           AppConfig
	Database      DatabaseConfig
	DeliveryView  DeliveryViewConfig
	Cache         CacheConfig
	Notifications NotificationsConfig
	SMTP          SMTPConfig
	Storage       StorageConfig
	Secrets       SecretsConfig
	Logging       LoggingConfig
	Server        ServerConfig
	CORS          CORSConfig
	Security      SecurityConfig
	RateLimit     RateLimitConfig
	Jobs          JobsConfig
}

type AppConfig struct {
	Name        string
	Environment string
	Port        int
	// Timezone decides what "today" means for timeline status and schedules
	Timezone string
}

// DatabaseConfig is the postgres database holding the notification log
type DatabaseConfig struct {
	Enabled         bool
	Host            string
	Port            int
	Name            string
	User            string
	Password        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
}

// DeliveryViewConfig holds the read-only connection to the delivery view
type DeliveryViewConfig struct {
	// Driver is "mysql" or "sqlserver"
	Driver string
	// URL is host:port/database
	URL      string
	User     string
	Password string
	// ViewName is the relation queried for delivery lines
	ViewName string
	// EmployeesTable is joined for sales recipients and their managers
	EmployeesTable  string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // seconds
	QueryTimeout    int // seconds
}

// CacheConfig controls the row-set read-through cache
type CacheConfig struct {
	// Mode is "memory", "redis" or "none"
	Mode          string
	TTLSeconds    int
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	KeyPrefix     string
}

// NotificationsConfig holds email notification settings
type NotificationsConfig struct {
	Sender              string
	SenderName          string
	CustomsMailbox      string
	WeeksAhead          int
	MaxRecipients       int
	WorkdayStartHour    int
	WorkdayEndHour      int
	ArchiveAttachments  bool
	DashboardURL        string
	CalendarOrganizer   string
	CalendarProductName string
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type StorageConfig struct {
	Mode                  string
	LocalBasePath         string
	CloudConnectionString string
	CloudContainer        string
}

type SecretsConfig struct {
	// Source determines where secrets are loaded from: "environment", "vault", or "auto"
	// "auto" uses environment in development, vault in staging/production
	Source       string
	KeyVaultName string
	CacheEnabled bool
	CacheTTL     int // seconds
}

type LoggingConfig struct {
	Level  string
	Format string
	// FilePath enables a rotating log file next to stdout when set
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type ServerConfig struct {
	ReadTimeout    int
	WriteTimeout   int
	RequestTimeout int
	EnableSwagger  bool
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// SecurityConfig holds security header configuration
type SecurityConfig struct {
	EnableHSTS            bool
	HSTSMaxAge            int
	HSTSIncludeSubdomains bool
	HSTSPreload           bool
	ContentSecurityPolicy string
	FrameDeny             bool
	ContentTypeNosniff    bool
	BrowserXSSFilter      bool
	ReferrerPolicy        string
	PermissionsPolicy     string
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled           bool
	RequestsPerMinute int
	// SendRequestsPerMinute limits the notification send endpoint separately
	SendRequestsPerMinute int
	WhitelistIPs          []string
	WhitelistPaths        []string
}

// JobsConfig holds background job settings
type JobsConfig struct {
	CacheRefreshEnabled bool
	CacheRefreshCron    string
	CacheRefreshTimeout int // seconds
}

// ConnectionString builds PostgreSQL connection string
func (d *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

// ConnMaxLifetimeDuration returns connection max lifetime as duration
func (d *DatabaseConfig) ConnMaxLifetimeDuration() time.Duration {
	return time.Duration(d.ConnMaxLifetime) * time.Second
}

// ConnMaxLifetimeDuration returns connection max lifetime as duration
func (d *DeliveryViewConfig) ConnMaxLifetimeDuration() time.Duration {
	return time.Duration(d.ConnMaxLifetime) * time.Second
}

// QueryTimeoutDuration returns query timeout as duration
func (d *DeliveryViewConfig) QueryTimeoutDuration() time.Duration {
	return time.Duration(d.QueryTimeout) * time.Second
}

// TTL returns the cache time-to-live
func (c *CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// ReadTimeoutDuration returns read timeout as duration
func (s *ServerConfig) ReadTimeoutDuration() time.Duration {
	return time.Duration(s.ReadTimeout) * time.Second
}

// WriteTimeoutDuration returns write timeout as duration
func (s *ServerConfig) WriteTimeoutDuration() time.Duration {
	return time.Duration(s.WriteTimeout) * time.Second
}

// RequestTimeoutDuration returns request timeout as duration
func (s *ServerConfig) RequestTimeoutDuration() time.Duration {
	return time.Duration(s.RequestTimeout) * time.Second
}

// CacheRefreshTimeoutDuration returns the cache refresh job timeout
func (j *JobsConfig) CacheRefreshTimeoutDuration() time.Duration {
	return time.Duration(j.CacheRefreshTimeout) * time.Second
}

// Location resolves the configured timezone, falling back to UTC
func (a *AppConfig) Location() *time.Location {
	if a.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// IsProduction reports whether the app runs in production
func (a *AppConfig) IsProduction() bool {
	return a.Environment == "production"
}

// Load loads configuration from file and environment variables
// This is a basic load that doesn't fetch secrets from vault
// Use LoadWithSecrets for full secret resolution
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables override config file
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Flat variable names used by the existing deployment
	if ttl := v.GetInt("CACHE_TTL_SECONDS"); ttl > 0 {
		cfg.Cache.TTLSeconds = ttl
	}
	if weeks := v.GetInt("DELIVERY_WEEKS_AHEAD"); weeks > 0 {
		cfg.Notifications.WeeksAhead = weeks
	}
	if maxRecipients := v.GetInt("MAX_EMAIL_RECIPIENTS"); maxRecipients > 0 {
		cfg.Notifications.MaxRecipients = maxRecipients
	}
	if tz := v.GetString("TIMEZONE"); tz != "" {
		cfg.App.Timezone = tz
	}
	if sender := v.GetString("EMAIL_SENDER"); sender != "" {
		cfg.Notifications.Sender = sender
	}
	if cfg.Secrets.KeyVaultName == "" {
		cfg.Secrets.KeyVaultName = v.GetString("AZURE_KEY_VAULT_NAME")
	}

	return &cfg, nil
}

// LoadWithSecrets loads configuration and resolves credentials from the
// configured secret source. Environment variables always win over vault values.
func LoadWithSecrets(ctx context.Context, logger *zap.Logger) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	provider, err := secrets.NewProvider(&secrets.ProviderConfig{
		Source:       secrets.SecretSource(cfg.Secrets.Source),
		VaultName:    cfg.Secrets.KeyVaultName,
		Environment:  cfg.App.Environment,
		CacheEnabled: cfg.Secrets.CacheEnabled,
		CacheTTL:     time.Duration(cfg.Secrets.CacheTTL) * time.Second,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize secrets provider: %w", err)
	}

	if err := applySecrets(ctx, cfg, provider); err != nil {
		return nil, err
	}

	logger.Info("Configuration loaded",
		zap.String("environment", cfg.App.Environment),
		zap.String("secret_source", string(provider.Source())),
		zap.String("view_driver", cfg.DeliveryView.Driver),
		zap.String("cache_mode", cfg.Cache.Mode),
	)
	return cfg, nil
}

// SecretGetter is the part of secrets.Provider used while loading configuration
type SecretGetter interface {
	GetSecretOrEnv(ctx context.Context, secretName, envName string) (string, error)
}

// applySecrets fills credentials that are never kept in config files
func applySecrets(ctx context.Context, cfg *Config, provider SecretGetter) error {
	bindings := []struct {
		secret string
		env    string
		target *string
	}{
		{"DELIVERY-VIEW-URL", "DELIVERYVIEW_URL", &cfg.DeliveryView.URL},
		{"DELIVERY-VIEW-USERNAME", "DELIVERYVIEW_USER", &cfg.DeliveryView.User},
		{"DELIVERY-VIEW-PASSWORD", "DELIVERYVIEW_PASSWORD", &cfg.DeliveryView.Password},
		{"SMTP-USERNAME", "SMTP_USER", &cfg.SMTP.User},
		{"SMTP-PASSWORD", "SMTP_PASSWORD", &cfg.SMTP.Password},
		{"POSTGRES-MAIN-PASSWORD", "DATABASE_PASSWORD", &cfg.Database.Password},
		{"REDIS-PASSWORD", "CACHE_REDISPASSWORD", &cfg.Cache.RedisPassword},
		{"storage-connection-string", "STORAGE_CLOUDCONNECTIONSTRING", &cfg.Storage.CloudConnectionString},
	}

	for _, b := range bindings {
		if *b.target != "" && os.Getenv(b.env) == "" {
			// already set through config.json
			continue
		}
		value, err := provider.GetSecretOrEnv(ctx, b.secret, b.env)
		if err != nil || value == "" {
			continue
		}
		*b.target = value
	}

	if cfg.DeliveryView.URL == "" {
		return fmt.Errorf("delivery view URL is not configured (DELIVERYVIEW_URL or DELIVERY-VIEW-URL)")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "Outbound Logistics API")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.timezone", "Asia/Ho_Chi_Minh")

	// Notification log database
	v.SetDefault("database.enabled", true)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "outbound")
	v.SetDefault("database.user", "outbound_user")
	v.SetDefault("database.password", "")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 10)
	v.SetDefault("database.maxIdleConns", 2)
	v.SetDefault("database.connMaxLifetime", 300)

	// Delivery view (read-only)
	v.SetDefault("deliveryView.driver", "mysql")
	v.SetDefault("deliveryView.viewName", "delivery_full_view")
	v.SetDefault("deliveryView.employeesTable", "employees")
	v.SetDefault("deliveryView.maxOpenConns", 10)
	v.SetDefault("deliveryView.maxIdleConns", 2)
	v.SetDefault("deliveryView.connMaxLifetime", 300)
	v.SetDefault("deliveryView.queryTimeout", 30)

	// Cache
	v.SetDefault("cache.mode", "memory")
	v.SetDefault("cache.ttlSeconds", 300)
	v.SetDefault("cache.redisAddr", "localhost:6379")
	v.SetDefault("cache.redisDB", 0)
	v.SetDefault("cache.keyPrefix", "outbound")

	// Notifications
	v.SetDefault("notifications.sender", "outbound@prostech.vn")
	v.SetDefault("notifications.senderName", "Outbound Logistics")
	v.SetDefault("notifications.customsMailbox", "custom.clearance@prostech.vn")
	v.SetDefault("notifications.weeksAhead", 4)
	v.SetDefault("notifications.maxRecipients", 50)
	v.SetDefault("notifications.workdayStartHour", 8)
	v.SetDefault("notifications.workdayEndHour", 17)
	v.SetDefault("notifications.archiveAttachments", false)
	v.SetDefault("notifications.calendarOrganizer", "outbound@prostech.vn")
	v.SetDefault("notifications.calendarProductName", "-//Outbound Logistics//Delivery Schedule//EN")

	// SMTP
	v.SetDefault("smtp.host", "smtp.gmail.com")
	v.SetDefault("smtp.port", 587)

	// Secrets defaults
	v.SetDefault("secrets.source", "auto")
	v.SetDefault("secrets.cacheEnabled", true)
	v.SetDefault("secrets.cacheTTL", 300)

	// Storage defaults
	v.SetDefault("storage.mode", "local")
	v.SetDefault("storage.localBasePath", "./storage")
	v.SetDefault("storage.cloudContainer", "notification-attachments")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.maxSizeMB", 50)
	v.SetDefault("logging.maxBackups", 5)
	v.SetDefault("logging.maxAgeDays", 30)

	// Server defaults
	v.SetDefault("server.readTimeout", 30)
	v.SetDefault("server.writeTimeout", 120)
	v.SetDefault("server.requestTimeout", 90)
	v.SetDefault("server.enableSwagger", true)

	// CORS defaults
	v.SetDefault("cors.allowedOrigins", []string{})
	v.SetDefault("cors.allowedMethods", []string{"GET", "POST", "OPTIONS"})
	v.SetDefault("cors.allowedHeaders", []string{"Accept", "Content-Type", "X-Request-ID"})
	v.SetDefault("cors.exposedHeaders", []string{"Content-Disposition", "X-Request-ID"})
	v.SetDefault("cors.allowCredentials", true)
	v.SetDefault("cors.maxAge", 300)

	// Security header defaults
	v.SetDefault("security.enableHSTS", false)
	v.SetDefault("security.hstsMaxAge", 31536000)
	v.SetDefault("security.hstsIncludeSubdomains", true)
	v.SetDefault("security.hstsPreload", false)
	v.SetDefault("security.contentSecurityPolicy", "default-src 'self'")
	v.SetDefault("security.frameDeny", true)
	v.SetDefault("security.contentTypeNosniff", true)
	v.SetDefault("security.browserXSSFilter", true)
	v.SetDefault("security.referrerPolicy", "strict-origin-when-cross-origin")
	v.SetDefault("security.permissionsPolicy", "geolocation=(), microphone=(), camera=()")

	// Rate limiting defaults
	v.SetDefault("rateLimit.enabled", true)
	v.SetDefault("rateLimit.requestsPerMinute", 120)
	v.SetDefault("rateLimit.sendRequestsPerMinute", 5)
	v.SetDefault("rateLimit.whitelistIPs", []string{"127.0.0.1", "::1"})
	v.SetDefault("rateLimit.whitelistPaths", []string{"/health", "/health/view", "/health/ready", "/metrics"})

	// Jobs
	v.SetDefault("jobs.cacheRefreshEnabled", false)
	v.SetDefault("jobs.cacheRefreshCron", "0 */15 * * * *")
	v.SetDefault("jobs.cacheRefreshTimeout", 120)
}
