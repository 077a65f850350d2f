package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	MinIO    MinIOConfig
	Notifier NotifierConfig
	Auth     AuthConfig
	Upload   UploadConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MinConns int
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret            string
	AccessTokenExpiry int // hours
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// NotifierConfig configures the companion social-posting API.
// An empty BaseURL disables notification entirely.
type NotifierConfig struct {
	BaseURL string
	Timeout time.Duration
}

// AuthConfig carries the fixed admin alias table. Every alias maps to the
// single gallery admin email, the same way the legacy site resolved
// usernames before signing in.
type AuthConfig struct {
	AdminAliases []string
	AdminEmail   string

	// When set, an admin account is seeded at startup if none exists.
	AdminPassword string

	// Failed login throttling (per username+IP).
	MaxLoginAttempts int
	LoginLockWindow  time.Duration
}

type UploadConfig struct {
	MaxWorkImages int           // exemplary works per artist
	MaxVideoMB    int           // reel/video file cap
	StageTimeout  time.Duration // per pipeline stage
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Midnight Soldiers API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "midnightsoldiers"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 25),
			MinConns: getEnvInt("DB_MIN_CONNS", 5),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:            getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			AccessTokenExpiry: getEnvInt("JWT_ACCESS_EXPIRY", 24),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "midnightsoldiers"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Notifier: NotifierConfig{
			BaseURL: getEnv("SOCIAL_API_URL", ""),
			Timeout: getEnvDuration("SOCIAL_API_TIMEOUT", 15*time.Second),
		},
		Auth: AuthConfig{
			AdminAliases:     getEnvList("ADMIN_ALIASES", []string{"admin", "gallery", "midnight", "sj"}),
			AdminEmail:       getEnv("ADMIN_EMAIL", "sj@sjdev.co"),
			AdminPassword:    getEnv("ADMIN_PASSWORD", ""),
			MaxLoginAttempts: getEnvInt("AUTH_MAX_LOGIN_ATTEMPTS", 5),
			LoginLockWindow:  getEnvDuration("AUTH_LOGIN_LOCK_WINDOW", 15*time.Minute),
		},
		Upload: UploadConfig{
			MaxWorkImages: getEnvInt("UPLOAD_MAX_WORK_IMAGES", 5),
			MaxVideoMB:    getEnvInt("UPLOAD_MAX_VIDEO_MB", 100),
			StageTimeout:  getEnvDuration("UPLOAD_STAGE_TIMEOUT", 2*time.Minute),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate rejects configurations that must never reach production.
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.JWT.Secret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
		if c.Notifier.BaseURL == "" {
			fmt.Println("WARNING: SOCIAL_API_URL not set - reel/video social posting disabled")
		}
	}
	if c.Upload.MaxWorkImages <= 0 {
		return fmt.Errorf("UPLOAD_MAX_WORK_IMAGES must be positive")
	}
	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
