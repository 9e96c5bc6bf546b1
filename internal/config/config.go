package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// storage
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	RedisHost      string `toml:"redis_host"`
	RedisPort      string `toml:"redis_port"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	LoginRateLimitAllowedPerMin int      `toml:"login_rate_limit_allowed_per_min"`
	AllowedOrigins              []string `toml:"allowed_origins"`
	PhrasesCsvPath              string   `toml:"phrases_csv_path"`
	ProfileCacheTTLSeconds      int      `toml:"profile_cache_ttl_seconds"`
	SessionTTLHours             int      `toml:"session_ttl_hours"`
	SessionCleanupIntervalMin   int      `toml:"session_cleanup_interval_min"`
	PasswordHashCost            int      `toml:"password_hash_cost"`
}

func (c *Config) SessionTTL() time.Duration {
	if c.SessionTTLHours <= 0 {
		return 24 * 7 * time.Hour
	}
	return time.Duration(c.SessionTTLHours) * time.Hour
}

func (c *Config) SessionCleanupInterval() time.Duration {
	if c.SessionCleanupIntervalMin <= 0 {
		return 8 * time.Hour
	}
	return time.Duration(c.SessionCleanupIntervalMin) * time.Minute
}

type Toml struct {
	Development *Config
	Docker      *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "ddev", "dockerdev", "docker":
		cfg = t.Docker
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

// Load reads the TOML config file and picks the section for the given environment.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}
	return t.Get(env)
}

// Secrets are never kept in the config file, they come from FITBUDDY_* env vars.
type Secrets struct {
	SentryDSN        string `envconfig:"SENTRY_DSN"`
	RedisPassword    string `envconfig:"REDIS_PASS"`
	PostgresUser     string `envconfig:"POSTGRES_USER" default:"postgres"`
	PostgresPassword string `envconfig:"POSTGRES_PASSWORD"`
	HoneycombEnabled bool   `envconfig:"HONEYCOMB_ENABLED"`
	HoneycombAPIKey  string `envconfig:"HONEYCOMB_API_KEY"`
}

func LoadSecrets() (*Secrets, error) {
	var s Secrets
	if err := envconfig.Process("fitbuddy", &s); err != nil {
		return nil, fmt.Errorf("process env secrets: %w", err)
	}
	return &s, nil
}
