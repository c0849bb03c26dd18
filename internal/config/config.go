// Package config provides the environment-sourced settings for the bridge.
package config

import (
	"os"
	"strconv"
	"time"
)

// Settings holds the configuration for both external services.
// Values are not validated at load time; a missing value surfaces as a
// failure on first use, not at startup.
type Settings struct {
	// ThirdPartyBaseURL is the base URL of the appointment API
	ThirdPartyBaseURL string

	// ThirdPartyUsername and ThirdPartyPassword are the Basic Auth
	// credentials for the appointment API
	ThirdPartyUsername string
	ThirdPartyPassword string

	// GoogleCalendarID is the target calendar
	GoogleCalendarID string

	// GoogleCredentialsFile is the path to the service-account JSON key
	GoogleCredentialsFile string

	// SyncIntervalMin enables the background sync scheduler when > 0
	SyncIntervalMin int

	// Timeout for upstream API requests
	Timeout time.Duration
}

// FromEnv returns settings read from environment variables.
func FromEnv() Settings {
	return Settings{
		ThirdPartyBaseURL:     getEnv("THIRD_PARTY_BASE_URL", ""),
		ThirdPartyUsername:    getEnv("THIRD_PARTY_USERNAME", ""),
		ThirdPartyPassword:    getEnv("THIRD_PARTY_PASSWORD", ""),
		GoogleCalendarID:      getEnv("GOOGLE_CALENDAR_ID", ""),
		GoogleCredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", ""),
		SyncIntervalMin:       getEnvInt("SYNC_INTERVAL_MIN", 0),
		Timeout:               30 * time.Second,
	}
}

// getEnv returns an environment variable value or a default if not set.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns an integer environment variable or a default when
// the variable is unset or not a valid integer.
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
