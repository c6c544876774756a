// Package config loads runtime settings for both binaries.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	APIBaseURL  string
	HTTPTimeout time.Duration

	ServerPort string
	GinMode    string

	RedisURI     string // empty keeps views in process
	ViewCacheTTL time.Duration

	MongoURI      string // empty disables the transaction journal
	MongoDatabase string

	S3Endpoint  string // empty disables artwork uploads
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3UseSSL    bool
	S3PublicURL string

	WarningWorkers       int
	WarningQueueCapacity int

	TokenStore string // file or redis
	TokenFile  string

	LogLevel  string
	LogFormat string
}

// Load reads configuration from .env file and environment variables
func Load() *Config {
	// Load .env file (ignore error if file doesn't exist - env vars may be set directly)
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:  getEnvRequired("API_BASE_URL"),
		HTTPTimeout: parseDuration(getEnv("HTTP_TIMEOUT", "0s")),

		ServerPort: getEnv("SERVER_PORT", "8081"),
		GinMode:    getEnv("GIN_MODE", "debug"),

		RedisURI:     os.Getenv("REDIS_URI"),
		ViewCacheTTL: parseDuration(getEnv("VIEW_CACHE_TTL", "5m")),

		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDatabase: getEnv("MONGO_DATABASE", "frent"),

		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3AccessKey: getEnv("S3_ACCESS_KEY", "minioadmin"),
		S3SecretKey: getEnv("S3_SECRET_KEY", "minioadmin"),
		S3Bucket:    getEnv("S3_BUCKET", "frent-artwork"),
		S3UseSSL:    getEnv("S3_USE_SSL", "false") == "true",
		S3PublicURL: os.Getenv("S3_PUBLIC_URL"),

		WarningWorkers:       parseInt(getEnv("WARNING_WORKERS", "1")),
		WarningQueueCapacity: parseInt(getEnv("WARNING_QUEUE_CAPACITY", "16")),

		TokenStore: getEnv("TOKEN_STORE", "file"),
		TokenFile:  getEnv("TOKEN_FILE", "~/.frent/userToken"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	return cfg
}

// JournalEnabled reports whether a Mongo URI was configured.
func (c *Config) JournalEnabled() bool {
	return c.MongoURI != ""
}

// StorageEnabled reports whether an S3 endpoint was configured.
func (c *Config) StorageEnabled() bool {
	return c.S3Endpoint != ""
}

// getEnv reads an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvRequired reads an environment variable and panics if not set
func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Required environment variable %s is not set", key)
	}
	return value
}

// parseDuration parses a duration string, panics on error
func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Fatalf("Invalid duration format: %s", s)
	}
	return d
}

// parseInt parses a positive integer, panics on error
func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		log.Fatalf("Invalid positive integer: %s", s)
	}
	return n
}
