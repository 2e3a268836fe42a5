package config

import (
	"os"
)

// Config holds all configuration for the demo runner
type Config struct {
	LogLevel string
	Profile  string
}

// LoadConfig loads configuration from environment variables with defaults
func LoadConfig() *Config {
	return &Config{
		LogLevel: getEnv("LOG_LEVEL", "warn"),
		Profile:  getEnv("LAB_PROFILE", "python"),
	}
}

// Helper functions to get environment variables with defaults
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
