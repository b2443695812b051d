package config

import (
	"os"
	"strconv"
)

// DataBaseURL is where the vote-share and target CSV assets are served from.
func DataBaseURL() string {
	return getEnvWithDefault("DATA_BASE_URL", "http://localhost:8080/csv")
}

// ReportsDir is the fallback directory for generated PDF reports when a
// report cannot be streamed to the client.
func ReportsDir() string {
	return getEnvWithDefault("REPORTS_DIR", "reports")
}

// ServerPort is the HTTP listen port.
func ServerPort() string {
	return getEnvWithDefault("PORT", "8080")
}

// Helper functions
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
