package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Mistral  MistralConfig
	Images   ImagesConfig
	Upload   UploadConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN             string
	MaxConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

// MistralConfig holds remote extraction configuration. An empty APIKey
// disables the remote path; the local heuristic extractor still runs.
type MistralConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	Timeout     time.Duration
}

// ImagesConfig holds destination image lookup configuration.
type ImagesConfig struct {
	UnsplashAccessKey string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	CacheTTL          time.Duration
}

// UploadConfig bounds the PDF upload endpoint.
type UploadConfig struct {
	MaxBytes int64
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            getEnv("ADDR", ":8080"),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			DSN:             getEnv("DB_DSN", "tripdeck.db"),
			MaxConns:        getEnvAsInt32("DB_MAX_CONNS", 10),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:     getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
		Mistral: MistralConfig{
			APIKey:      getEnv("MISTRAL_API_KEY", ""),
			BaseURL:     getEnv("MISTRAL_BASE_URL", "https://api.mistral.ai/v1"),
			Model:       getEnv("MISTRAL_MODEL", "open-mistral-7b"),
			Temperature: getEnvAsFloat32("MISTRAL_TEMPERATURE", 0.7),
			Timeout:     getEnvAsDuration("MISTRAL_TIMEOUT", 45*time.Second),
		},
		Images: ImagesConfig{
			UnsplashAccessKey: getEnv("UNSPLASH_ACCESS_KEY", ""),
			RedisAddr:         getEnv("REDIS_ADDR", ""),
			RedisPassword:     getEnv("REDIS_PASSWORD", ""),
			RedisDB:           getEnvAsInt("REDIS_DB", 0),
			CacheTTL:          getEnvAsDuration("IMAGE_CACHE_TTL", 24*time.Hour),
		},
		Upload: UploadConfig{
			MaxBytes: getEnvAsInt64("UPLOAD_MAX_BYTES", 5<<20),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return NewAppError("CONFIG_ERROR", "ADDR is required", ErrInvalidInput)
	}
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_DSN is required", ErrInvalidInput)
	}
	if c.Upload.MaxBytes <= 0 {
		return NewAppError("CONFIG_ERROR", "UPLOAD_MAX_BYTES must be positive", ErrInvalidInput)
	}
	return nil
}
