// Package config loads application configuration from the environment.
package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration for the fulfilment service.
type Config struct {
	// General
	Port        string
	Environment string
	LogLevel    string

	// Database (PostgreSQL)
	DatabaseURL     string
	DBMaxConns      int
	DBMinConns      int
	DBMaxConnIdle   time.Duration
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables.
// DATABASE_URL is mandatory; everything else has sensible defaults.
func Load() *Config {
	return &Config{
		Port:        getEnv("APP_PORT", "8080"),
		Environment: getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		DatabaseURL:     mustGetEnv("DATABASE_URL"),
		DBMaxConns:      getIntEnv("DB_MAX_CONNS", 25),
		DBMinConns:      getIntEnv("DB_MIN_CONNS", 5),
		DBMaxConnIdle:   getDurationEnv("DB_MAX_CONN_IDLE_MIN", 30) * time.Minute,
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT_SEC", 30) * time.Second,
	}
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnv reads an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// mustGetEnv reads an environment variable, fatal if absent.
func mustGetEnv(key string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Fatalf("configuration error: environment variable %s must be set", key)
	return ""
}

// getIntEnv reads a numeric environment variable as int.
func getIntEnv(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("warning: value of %s (%q) is not a valid integer, using default %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// getDurationEnv reads a numeric environment variable as time.Duration units.
func getDurationEnv(key string, defaultValue int) time.Duration {
	return time.Duration(getIntEnv(key, defaultValue))
}
