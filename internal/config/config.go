package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the admin console.
type Config struct {
	// Upstream marketplace API
	UpstreamBaseURL string
	UpstreamTimeout time.Duration // zero means no client-side timeout

	// Redis (session records)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Console session
	JwtSecret  string
	SessionTTL time.Duration

	// Server
	ApiPort string

	// CORS
	AllowedOrigin string

	// Screenshot staging: "remote" posts to the upstream /upload endpoint,
	// "s3" puts objects directly into the configured bucket.
	UploadMode     string
	MaxScreenshots int

	// AWS S3 (only read when UploadMode == "s3")
	AwsAccessKeyID     string
	AwsSecretAccessKey string
	AwsRegion          string
	AwsS3Bucket        string
	ScreenshotBaseURL  string

	// Rate Limiting Defaults
	RateLimitSoftBucketSize int
	RateLimitSoftRefillRate int // tokens per second
	RateLimitHardBucketSize int
	RateLimitHardRefillRate int // tokens per second
}

// Load configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file, ignoring errors if it doesn't exist
	godotenv.Load()

	cfg := &Config{}

	var err error

	// Helper function to get env var or default
	getEnv := func(key, defaultValue string) string {
		if value, exists := os.LookupEnv(key); exists {
			return value
		}
		return defaultValue
	}

	// Helper function to get required env var
	getRequiredEnv := func(key string) (string, error) {
		value, exists := os.LookupEnv(key)
		if !exists {
			return "", fmt.Errorf("missing required environment variable: %s", key)
		}
		return value, nil
	}

	cfg.UpstreamBaseURL, err = getRequiredEnv("UPSTREAM_BASE_URL")
	if err != nil {
		return nil, err
	}
	cfg.JwtSecret, err = getRequiredEnv("JWT_SECRET")
	if err != nil {
		return nil, err
	}

	cfg.RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.ApiPort = getEnv("API_PORT", "8090")
	cfg.AllowedOrigin = getEnv("ALLOWED_ORIGIN", "*")
	cfg.UploadMode = getEnv("UPLOAD_MODE", "remote")
	if cfg.UploadMode != "remote" && cfg.UploadMode != "s3" {
		return nil, fmt.Errorf("invalid UPLOAD_MODE: %q (want \"remote\" or \"s3\")", cfg.UploadMode)
	}
	cfg.AwsAccessKeyID = getEnv("AWS_ACCESS_KEY_ID", "")
	cfg.AwsSecretAccessKey = getEnv("AWS_SECRET_ACCESS_KEY", "")
	cfg.AwsRegion = getEnv("AWS_REGION", "")
	cfg.AwsS3Bucket = getEnv("AWS_S3_BUCKET", "")
	cfg.ScreenshotBaseURL = getEnv("SCREENSHOT_BASE_URL", "")

	// Load numeric and time duration values with defaults and parsing
	cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	upstreamTimeoutSeconds, err := strconv.ParseInt(getEnv("UPSTREAM_TIMEOUT_SECONDS", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT_SECONDS: %w", err)
	}
	cfg.UpstreamTimeout = time.Duration(upstreamTimeoutSeconds) * time.Second

	sessionTTLSeconds, err := strconv.ParseInt(getEnv("SESSION_TTL_SECONDS", "86400"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL_SECONDS: %w", err)
	}
	cfg.SessionTTL = time.Duration(sessionTTLSeconds) * time.Second

	cfg.MaxScreenshots, err = strconv.Atoi(getEnv("MAX_SCREENSHOTS_PER_REPLY", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_SCREENSHOTS_PER_REPLY: %w", err)
	}

	// Rate Limiting
	cfg.RateLimitSoftBucketSize, err = strconv.Atoi(getEnv("RATE_LIMIT_SOFT_BUCKET_SIZE", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_SOFT_BUCKET_SIZE: %w", err)
	}
	cfg.RateLimitSoftRefillRate, err = strconv.Atoi(getEnv("RATE_LIMIT_SOFT_REFILL_RATE", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_SOFT_REFILL_RATE: %w", err)
	}
	cfg.RateLimitHardBucketSize, err = strconv.Atoi(getEnv("RATE_LIMIT_HARD_BUCKET_SIZE", "40"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_HARD_BUCKET_SIZE: %w", err)
	}
	cfg.RateLimitHardRefillRate, err = strconv.Atoi(getEnv("RATE_LIMIT_HARD_REFILL_RATE", "20"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_HARD_REFILL_RATE: %w", err)
	}

	return cfg, nil
}
