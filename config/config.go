package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Session    SessionConfig    `mapstructure:"session"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	Platform   PlatformConfig   `mapstructure:"platform"`
	Redemption RedemptionConfig `mapstructure:"redemption"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	Migrate         bool          `mapstructure:"migrate"` // apply embedded migrations at startup
	ApplicationName string        `mapstructure:"application_name"`
}

// DSN returns the PostgreSQL connection string. Credentials are escaped.
func (d DatabaseConfig) DSN() string {
	return d.connURL().String()
}

// RedactedDSN is DSN with the password masked, for logs.
func (d DatabaseConfig) RedactedDSN() string {
	return d.connURL().Redacted()
}

func (d DatabaseConfig) connURL() *url.URL {
	q := url.Values{}
	q.Set("sslmode", d.SSLMode)
	if d.ApplicationName != "" {
		q.Set("application_name", d.ApplicationName)
	}
	return &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.DBName,
		RawQuery: q.Encode(),
	}
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// SessionConfig selects where in-flight redemption sessions are kept.
type SessionConfig struct {
	Backend string        `mapstructure:"backend"` // redis, memory
	TTL     time.Duration `mapstructure:"ttl"`
}

// JWTConfig verifies bearer tokens issued by the platform for signed-in users.
type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Issuer string        `mapstructure:"issuer"`
	Expiry time.Duration `mapstructure:"expiry"`
}

// PlatformConfig points at the upstream gift card platform API.
type PlatformConfig struct {
	BaseURL          string        `mapstructure:"base_url"`
	APIKey           string        `mapstructure:"api_key"`
	Timeout          time.Duration `mapstructure:"timeout"`
	MaxRetryElapsed  time.Duration `mapstructure:"max_retry_elapsed"`
	VendorSearchSize int           `mapstructure:"vendor_search_size"`
}

// RedemptionConfig tunes the redemption workflow.
type RedemptionConfig struct {
	Debounce       time.Duration `mapstructure:"debounce"`
	AmountCacheTTL time.Duration `mapstructure:"amount_cache_ttl"`
	SubmitLockTTL  time.Duration `mapstructure:"submit_lock_ttl"`
	FingerprintKey string        `mapstructure:"fingerprint_key"` // keys phone fingerprints in logs and cache keys
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: DQR_ (Dashqard Redemption).
// Nested keys use underscore: DQR_PLATFORM_BASE_URL, DQR_JWT_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "dashqard_redemption")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("database.migrate", true)
	v.SetDefault("database.application_name", "dashqard-redemption")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("session.backend", "redis")
	v.SetDefault("session.ttl", "30m")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.issuer", "dashqard")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("platform.base_url", "http://localhost:9000/api/v1")
	v.SetDefault("platform.api_key", "")
	v.SetDefault("platform.timeout", "15s")
	v.SetDefault("platform.max_retry_elapsed", "5s")
	v.SetDefault("platform.vendor_search_size", 20)
	v.SetDefault("redemption.debounce", "500ms")
	v.SetDefault("redemption.amount_cache_ttl", "30s")
	v.SetDefault("redemption.submit_lock_ttl", "30s")
	v.SetDefault("redemption.fingerprint_key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: DQR_PLATFORM_BASE_URL -> platform.base_url
	v.SetEnvPrefix("DQR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Session.Backend != "redis" && cfg.Session.Backend != "memory" {
		return nil, fmt.Errorf("unsupported session backend %q", cfg.Session.Backend)
	}

	return &cfg, nil
}
