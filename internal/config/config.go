package config

import (
	"os"
	"strconv"
	"time"

	"pdf-word-converter/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort    string
	StoragePath   string
	PublicBaseURL string
	MaxFileSize   int64
	FileRetention time.Duration
	LogLevel      string
	Extractor     string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:    getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		StoragePath:   getEnvOrDefault("STORAGE_PATH", "./converted"),
		PublicBaseURL: getEnvOrDefault("PUBLIC_BASE_URL", "http://localhost:8080"),
		MaxFileSize:   getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		FileRetention: getEnvDurationOrDefault("FILE_RETENTION", time.Hour),
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "info"),
		// "mupdf", "purego" or "auto" (probe at startup).
		Extractor: getEnvOrDefault("EXTRACTOR", "auto"),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetStoragePath returns the directory converted files are written to
func (c *AppConfig) GetStoragePath() string {
	return c.StoragePath
}

// GetPublicBaseURL returns the base URL used to build download locators
func (c *AppConfig) GetPublicBaseURL() string {
	return c.PublicBaseURL
}

// GetMaxFileSize returns the maximum allowed upload size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetFileRetention returns how long converted files are kept on disk
func (c *AppConfig) GetFileRetention() time.Duration {
	return c.FileRetention
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetExtractor returns the configured extractor selection mode
func (c *AppConfig) GetExtractor() string {
	return c.Extractor
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
