package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Services ServicesConfig `mapstructure:"services"`
	Tenants  TenantsConfig  `mapstructure:"tenants"`
	Session  SessionConfig  `mapstructure:"session"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	OTel     OTelConfig     `mapstructure:"otel"`
}

// AppConfig holds application-level settings
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"` // development, staging, production
	Debug       bool   `mapstructure:"debug"`
	Version     string `mapstructure:"version"`
}

// ServerConfig holds HTTP server settings for the portal itself
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// ServicesConfig holds the fixed base address of every backend domain service.
// One address per domain; there is no discovery or fallback list.
type ServicesConfig struct {
	CompensationURL string        `mapstructure:"compensation_url"`
	PerformanceURL  string        `mapstructure:"performance_url"`
	NotificationURL string        `mapstructure:"notification_url"`
	WorkflowURL     string        `mapstructure:"workflow_url"`
	CalendarURL     string        `mapstructure:"calendar_url"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
}

// TenantsConfig holds the static tenant roster. The roster is fixed at process
// start; the first entry is the default tenant.
type TenantsConfig struct {
	// Roster is a comma-separated list of id:name pairs, in display order.
	Roster string `mapstructure:"roster"`
}

// Tenant is a single switchable tenant.
type Tenant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ParseRoster parses the configured roster into ordered tenants.
func (t *TenantsConfig) ParseRoster() ([]Tenant, error) {
	var tenants []Tenant
	for _, entry := range strings.Split(t.Roster, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		id, name, found := strings.Cut(entry, ":")
		if !found || id == "" || name == "" {
			return nil, fmt.Errorf("invalid tenant roster entry %q", entry)
		}
		tenants = append(tenants, Tenant{ID: id, Name: name})
	}
	if len(tenants) == 0 {
		return nil, fmt.Errorf("tenant roster is empty")
	}
	return tenants, nil
}

// SessionConfig holds settings for the persisted local session state
// (auth token, active tenant id, user identity blob).
type SessionConfig struct {
	Backend      string        `mapstructure:"backend"` // memory, file, redis
	FilePath     string        `mapstructure:"file_path"`
	RedisAddr    string        `mapstructure:"redis_addr"`
	RedisPass    string        `mapstructure:"redis_pass"`
	RedisDB      int           `mapstructure:"redis_db"`
	RedisTimeout time.Duration `mapstructure:"redis_timeout"`
}

// JWTConfig holds settings for parsing inbound session tokens
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

// OTelConfig holds OpenTelemetry settings
type OTelConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	ServiceName   string `mapstructure:"service_name"`
	CollectorAddr string `mapstructure:"collector_addr"`
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")

	// .env is optional; environment variables alone are fine
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			_ = err
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{}
	if err := bindConfig(v, cfg); err != nil {
		return nil, fmt.Errorf("failed to bind config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// LoadWithPath loads configuration from a specific path
func LoadWithPath(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{}
	if err := bindConfig(v, cfg); err != nil {
		return nil, fmt.Errorf("failed to bind config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("APP_NAME", "operations-portal")
	v.SetDefault("APP_ENVIRONMENT", "development")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_VERSION", "1.0.0")

	// Server defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8035)
	v.SetDefault("SERVER_READ_TIMEOUT", "30s")
	v.SetDefault("SERVER_WRITE_TIMEOUT", "30s")
	v.SetDefault("SERVER_IDLE_TIMEOUT", "120s")

	// Backend service defaults (one fixed address per domain)
	v.SetDefault("SERVICES_COMPENSATION_URL", "http://localhost:8036")
	v.SetDefault("SERVICES_CALENDAR_URL", "http://localhost:8037")
	v.SetDefault("SERVICES_NOTIFICATION_URL", "http://localhost:8039")
	v.SetDefault("SERVICES_PERFORMANCE_URL", "http://localhost:8100")
	v.SetDefault("SERVICES_WORKFLOW_URL", "http://localhost:8098")
	v.SetDefault("SERVICES_REQUEST_TIMEOUT", "30s")

	// Tenant roster defaults (first entry is the default tenant)
	v.SetDefault("TENANTS_ROSTER",
		"techcorp:TechCorp,"+
			"acme-corp:ACME Corporation,"+
			"globex-industries:Globex Industries,"+
			"stark-enterprises:Stark Enterprises,"+
			"wayne-enterprises:Wayne Enterprises")

	// Session store defaults
	v.SetDefault("SESSION_BACKEND", "file")
	v.SetDefault("SESSION_FILE_PATH", ".portal-session.json")
	v.SetDefault("SESSION_REDIS_ADDR", "localhost:6379")
	v.SetDefault("SESSION_REDIS_PASS", "")
	v.SetDefault("SESSION_REDIS_DB", 0)
	v.SetDefault("SESSION_REDIS_TIMEOUT", "3s")

	// JWT defaults
	v.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")

	// OTel defaults
	v.SetDefault("OTEL_ENABLED", false)
	v.SetDefault("OTEL_SERVICE_NAME", "operations-portal")
	v.SetDefault("OTEL_COLLECTOR_ADDR", "localhost:4317")
}

func bindConfig(v *viper.Viper, cfg *Config) error {
	// App
	cfg.App.Name = v.GetString("APP_NAME")
	cfg.App.Environment = v.GetString("APP_ENVIRONMENT")
	cfg.App.Debug = v.GetBool("APP_DEBUG")
	cfg.App.Version = v.GetString("APP_VERSION")

	// Server
	cfg.Server.Host = v.GetString("SERVER_HOST")
	cfg.Server.Port = v.GetInt("SERVER_PORT")
	cfg.Server.ReadTimeout = v.GetDuration("SERVER_READ_TIMEOUT")
	cfg.Server.WriteTimeout = v.GetDuration("SERVER_WRITE_TIMEOUT")
	cfg.Server.IdleTimeout = v.GetDuration("SERVER_IDLE_TIMEOUT")

	// Services
	cfg.Services.CompensationURL = v.GetString("SERVICES_COMPENSATION_URL")
	cfg.Services.CalendarURL = v.GetString("SERVICES_CALENDAR_URL")
	cfg.Services.NotificationURL = v.GetString("SERVICES_NOTIFICATION_URL")
	cfg.Services.PerformanceURL = v.GetString("SERVICES_PERFORMANCE_URL")
	cfg.Services.WorkflowURL = v.GetString("SERVICES_WORKFLOW_URL")
	cfg.Services.RequestTimeout = v.GetDuration("SERVICES_REQUEST_TIMEOUT")

	// Tenants
	cfg.Tenants.Roster = v.GetString("TENANTS_ROSTER")

	// Session
	cfg.Session.Backend = v.GetString("SESSION_BACKEND")
	cfg.Session.FilePath = v.GetString("SESSION_FILE_PATH")
	cfg.Session.RedisAddr = v.GetString("SESSION_REDIS_ADDR")
	cfg.Session.RedisPass = v.GetString("SESSION_REDIS_PASS")
	cfg.Session.RedisDB = v.GetInt("SESSION_REDIS_DB")
	cfg.Session.RedisTimeout = v.GetDuration("SESSION_REDIS_TIMEOUT")

	// JWT
	cfg.JWT.Secret = v.GetString("JWT_SECRET")

	// OTel
	cfg.OTel.Enabled = v.GetBool("OTEL_ENABLED")
	cfg.OTel.ServiceName = v.GetString("OTEL_SERVICE_NAME")
	cfg.OTel.CollectorAddr = v.GetString("OTEL_COLLECTOR_ADDR")

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name is required")
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	for domain, addr := range map[string]string{
		"compensation": c.Services.CompensationURL,
		"performance":  c.Services.PerformanceURL,
		"notification": c.Services.NotificationURL,
		"workflow":     c.Services.WorkflowURL,
		"calendar":     c.Services.CalendarURL,
	} {
		if addr == "" {
			return fmt.Errorf("%s service URL is required", domain)
		}
	}

	if c.Services.RequestTimeout <= 0 {
		return fmt.Errorf("invalid request timeout: %s", c.Services.RequestTimeout)
	}

	if _, err := c.Tenants.ParseRoster(); err != nil {
		return err
	}

	switch c.Session.Backend {
	case "memory", "file", "redis":
	default:
		return fmt.Errorf("invalid session backend: %s", c.Session.Backend)
	}

	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if c.App.Environment == "production" && c.JWT.Secret == "your-secret-key-change-in-production" {
		return fmt.Errorf("JWT secret must be changed in production")
	}

	return nil
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}
