package config

import (
	"os"
	"strconv"
)

// Config holds the application configuration
// Note: This is a stateless configuration - every analysis call is a
// pure function of its inputs, so there is no database to configure.
type Config struct {
	// Environment
	Environment string
	Port        string

	// Analysis defaults
	GlobalKey  string // default global major key for analysis calls
	DebugLevel int    // 0..5, gates diagnostic logging only

	// Observability
	SentryDSN string // Sentry DSN for error tracking

	// CORS
	AllowedOrigins string // comma-separated list, "*" for any
}

func Load() *Config {
	return &Config{
		Environment:    getEnv("ENVIRONMENT", "development"),
		Port:           getEnv("PORT", "8080"),
		GlobalKey:      getEnv("GLOBAL_KEY", "C"),
		DebugLevel:     getEnvInt("DEBUG_LEVEL", 0),
		SentryDSN:      getEnv("SENTRY_DSN", ""),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
