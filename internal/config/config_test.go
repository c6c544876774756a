package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Run("returns environment variable value when set", func(t *testing.T) {
		t.Setenv("TEST_CONFIG_VAR", "custom_value")

		result := getEnv("TEST_CONFIG_VAR", "default_value")

		assert.Equal(t, "custom_value", result)
	})

	t.Run("returns default value when env var not set", func(t *testing.T) {
		result := getEnv("NONEXISTENT_CONFIG_VAR_12345", "default_value")

		assert.Equal(t, "default_value", result)
	})

	t.Run("returns default value when env var is empty string", func(t *testing.T) {
		t.Setenv("EMPTY_CONFIG_VAR", "")

		result := getEnv("EMPTY_CONFIG_VAR", "default_value")

		assert.Equal(t, "default_value", result)
	})
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
	}{
		{"zero", "0s", 0},
		{"minutes", "5m", 5 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parseDuration(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 1, parseInt("1"))
	assert.Equal(t, 16, parseInt("16"))
}

// clearOptional unsets variables a developer .env or shell might carry.
func clearOptional(t *testing.T) {
	for _, key := range []string{
		"HTTP_TIMEOUT", "SERVER_PORT", "GIN_MODE", "REDIS_URI", "VIEW_CACHE_TTL",
		"MONGO_URI", "MONGO_DATABASE", "S3_ENDPOINT", "S3_ACCESS_KEY", "S3_SECRET_KEY",
		"S3_BUCKET", "S3_USE_SSL", "S3_PUBLIC_URL", "WARNING_WORKERS", "WARNING_QUEUE_CAPACITY",
		"TOKEN_STORE", "TOKEN_FILE", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads config with custom values", func(t *testing.T) {
		clearOptional(t)
		t.Setenv("API_BASE_URL", "http://rental.example.com/api")
		t.Setenv("HTTP_TIMEOUT", "10s")
		t.Setenv("SERVER_PORT", "3000")
		t.Setenv("GIN_MODE", "release")
		t.Setenv("REDIS_URI", "redis.example.com:6379")
		t.Setenv("VIEW_CACHE_TTL", "30s")
		t.Setenv("MONGO_URI", "mongodb://localhost:27017")
		t.Setenv("MONGO_DATABASE", "journal")
		t.Setenv("S3_ENDPOINT", "s3.example.com:9000")
		t.Setenv("S3_BUCKET", "posters")
		t.Setenv("S3_USE_SSL", "true")
		t.Setenv("WARNING_WORKERS", "4")
		t.Setenv("WARNING_QUEUE_CAPACITY", "64")
		t.Setenv("TOKEN_STORE", "redis")
		t.Setenv("LOG_FORMAT", "text")

		cfg := Load()

		require.NotNil(t, cfg)
		assert.Equal(t, "http://rental.example.com/api", cfg.APIBaseURL)
		assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, "3000", cfg.ServerPort)
		assert.Equal(t, "release", cfg.GinMode)
		assert.Equal(t, "redis.example.com:6379", cfg.RedisURI)
		assert.Equal(t, 30*time.Second, cfg.ViewCacheTTL)
		assert.Equal(t, "journal", cfg.MongoDatabase)
		assert.True(t, cfg.JournalEnabled())
		assert.Equal(t, "posters", cfg.S3Bucket)
		assert.True(t, cfg.S3UseSSL)
		assert.True(t, cfg.StorageEnabled())
		assert.Equal(t, 4, cfg.WarningWorkers)
		assert.Equal(t, 64, cfg.WarningQueueCapacity)
		assert.Equal(t, "redis", cfg.TokenStore)
		assert.Equal(t, "text", cfg.LogFormat)
	})

	t.Run("uses default values for optional env vars", func(t *testing.T) {
		clearOptional(t)
		t.Setenv("API_BASE_URL", "http://localhost:8080/api")

		cfg := Load()

		require.NotNil(t, cfg)
		assert.Equal(t, time.Duration(0), cfg.HTTPTimeout)
		assert.Equal(t, "8081", cfg.ServerPort)
		assert.Equal(t, "debug", cfg.GinMode)
		assert.Empty(t, cfg.RedisURI)
		assert.Equal(t, 5*time.Minute, cfg.ViewCacheTTL)
		assert.False(t, cfg.JournalEnabled())
		assert.False(t, cfg.StorageEnabled())
		assert.False(t, cfg.S3UseSSL)
		assert.Equal(t, 1, cfg.WarningWorkers)
		assert.Equal(t, 16, cfg.WarningQueueCapacity)
		assert.Equal(t, "file", cfg.TokenStore)
		assert.Equal(t, "~/.frent/userToken", cfg.TokenFile)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
	})
}
