package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP Server
	Port string

	// Database
	SQLiteDBPath string

	// Backend selection
	DataBackend string

	// Dashboard response cache
	DashboardCacheTTL  time.Duration
	DashboardCacheSize int
}

func Load() *Config {
	cfg := &Config{
		Port:         getEnv("PORT", "8082"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/vendas.db"),

		DataBackend: getEnv("DATA_BACKEND", "sqlite"),

		DashboardCacheTTL:  getEnvDuration("DASHBOARD_CACHE_TTL", 30*time.Second),
		DashboardCacheSize: getEnvInt("DASHBOARD_CACHE_SIZE", 16),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate port
	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	// Validate data backend
	validBackends := []string{"memory", "sqlite"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.DataBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	// Validate SQLite configuration if backend is sqlite
	if c.DataBackend == "sqlite" {
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else {
			// Check if directory exists or can be created
			dir := filepath.Dir(c.SQLiteDBPath)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0755); err != nil {
						errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
					}
				}
			}
		}
	}

	// Validate cache configuration
	if c.DashboardCacheTTL < time.Second {
		errors = append(errors, fmt.Sprintf("invalid dashboard cache TTL %v: must be at least 1 second", c.DashboardCacheTTL))
	} else if c.DashboardCacheTTL > time.Hour {
		errors = append(errors, fmt.Sprintf("invalid dashboard cache TTL %v: must be at most 1 hour", c.DashboardCacheTTL))
	}

	if c.DashboardCacheSize < 1 {
		errors = append(errors, fmt.Sprintf("invalid dashboard cache size %d: must be at least 1", c.DashboardCacheSize))
	} else if c.DashboardCacheSize > 1000 {
		errors = append(errors, fmt.Sprintf("invalid dashboard cache size %d: must be at most 1000", c.DashboardCacheSize))
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
