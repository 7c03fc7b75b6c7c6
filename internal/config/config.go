package config

import (
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName    string
	AppEnv     string
	Port       string
	TrustProxy bool // Honor X-Forwarded-For / X-Real-IP; only set behind a reverse proxy

	// Database (driver switch via ENV, default: pgx)
	DBDriver     string
	DBConnection string // Full DSN; takes precedence over the credential parts below
	DBName       string
	DBUser       string
	DBPassword   string
	DBHost       string
	DBPort       string
	DBTimeout    time.Duration

	// Session
	SessionSecret string
	SessionExpiry time.Duration

	// Observability (optional)
	SentryDSN      string
	MetricsEnabled bool

	// Email (optional, reminder digests)
	EmailFrom           string
	ResendAPIKey        string
	ReminderDigestEmail string

	// Storage (optional, report archive; disabled when S3Bucket is empty)
	S3Region        string
	S3Bucket        string
	S3AccessKey     string
	S3SecretKey     string
	S3Endpoint      string        // Optional: for S3-compatible services (MinIO, R2, etc.)
	S3PresignExpiry time.Duration // Expiry for archived report links
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName:    envString("APP_NAME", "Performance Management"),
		AppEnv:     envString("APP_ENV", "development"),
		Port:       envString("PORT", "8090"),
		TrustProxy: envBool("TRUST_PROXY", false),

		// Database
		DBDriver:     envString("DB_DRIVER", "pgx"),
		DBConnection: envString("DB_CONNECTION", ""),
		DBName:       envString("DB_NAME", "PMS"),
		DBUser:       envString("DB_USER", "postgres"),
		DBPassword:   envString("DB_PASSWORD", ""),
		DBHost:       envString("DB_HOST", "localhost"),
		DBPort:       envString("DB_PORT", "5432"),
		DBTimeout:    envDuration("DB_TIMEOUT", 5*time.Second),

		// Session
		SessionSecret: envString("SESSION_SECRET", ""),
		SessionExpiry: envDuration("SESSION_EXPIRY", 12*time.Hour),

		// Observability
		SentryDSN:      envString("SENTRY_DSN", ""),
		MetricsEnabled: envBool("METRICS_ENABLED", true),

		// Email
		EmailFrom:           envString("EMAIL_FROM", "noreply@example.com"),
		ResendAPIKey:        envString("RESEND_API_KEY", ""),
		ReminderDigestEmail: envString("REMINDER_DIGEST_EMAIL", ""),

		// Storage
		S3Region:        envString("S3_REGION", "us-east-1"),
		S3Bucket:        envString("S3_BUCKET", ""),
		S3AccessKey:     envString("S3_ACCESS_KEY", ""),
		S3SecretKey:     envString("S3_SECRET_KEY", ""),
		S3Endpoint:      envString("S3_ENDPOINT", ""),
		S3PresignExpiry: envDuration("S3_PRESIGN_EXPIRY", 1*time.Hour),
	}

	if cfg.IsProduction() {
		validateProduction(cfg)
	} else if cfg.SessionSecret == "" {
		cfg.SessionSecret = "development-session-secret"
		slog.Warn("SESSION_SECRET not set, using development default")
	}

	return cfg
}

// validateProduction ensures secrets that have development fallbacks are set explicitly.
func validateProduction(cfg *Config) {
	if cfg.SessionSecret == "" {
		slog.Error("production deployment requires SESSION_SECRET")
		os.Exit(1)
	}
	if cfg.ReminderDigestEmail != "" && cfg.ResendAPIKey == "" {
		slog.Error("production deployment with REMINDER_DIGEST_EMAIL requires RESEND_API_KEY",
			"hint", "unset REMINDER_DIGEST_EMAIL to disable reminder digests")
		os.Exit(1)
	}
}

// DSN returns the connection string for DBDriver. DB_CONNECTION wins when set,
// otherwise a postgres URL is assembled from the credential parts.
func (c *Config) DSN() string {
	if c.DBConnection != "" {
		return c.DBConnection
	}
	if c.DBDriver == "sqlite" {
		return "./data/perfdesk.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(c.DBHost, c.DBPort),
		Path:   "/" + c.DBName,
	}
	if c.DBPassword != "" {
		u.User = url.UserPassword(c.DBUser, c.DBPassword)
	} else {
		u.User = url.User(c.DBUser)
	}
	if c.IsDevelopment() {
		u.RawQuery = "sslmode=disable"
	}
	return u.String()
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c *Config) StorageEnabled() bool {
	return c.S3Bucket != ""
}

// Sanitized returns a copy of the config with only public/safe fields.
// Safe to expose in ctx and templates.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName:    c.AppName,
		AppEnv:     c.AppEnv,
		Port:       c.Port,
		TrustProxy: c.TrustProxy,
		S3Bucket:   c.S3Bucket, // Only used to toggle the archive button
		DBDriver:   c.DBDriver,
		DBTimeout:  c.DBTimeout,
	}
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{env=%s driver=%s port=%s}", c.AppEnv, c.DBDriver, c.Port)
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}
