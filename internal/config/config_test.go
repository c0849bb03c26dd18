package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{
		"THIRD_PARTY_BASE_URL",
		"THIRD_PARTY_USERNAME",
		"THIRD_PARTY_PASSWORD",
		"GOOGLE_CALENDAR_ID",
		"GOOGLE_CREDENTIALS_FILE",
		"SYNC_INTERVAL_MIN",
	} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()

	assert.Empty(t, cfg.ThirdPartyBaseURL)
	assert.Empty(t, cfg.ThirdPartyUsername)
	assert.Empty(t, cfg.ThirdPartyPassword)
	assert.Empty(t, cfg.GoogleCalendarID)
	assert.Empty(t, cfg.GoogleCredentialsFile)
	assert.Equal(t, 0, cfg.SyncIntervalMin)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestFromEnv_ReadsEnvironment(t *testing.T) {
	t.Setenv("THIRD_PARTY_BASE_URL", "https://appointments.example.com")
	t.Setenv("THIRD_PARTY_USERNAME", "bridge")
	t.Setenv("THIRD_PARTY_PASSWORD", "secret")
	t.Setenv("GOOGLE_CALENDAR_ID", "primary")
	t.Setenv("GOOGLE_CREDENTIALS_FILE", "/etc/bridge/sa.json")
	t.Setenv("SYNC_INTERVAL_MIN", "15")

	cfg := FromEnv()

	assert.Equal(t, "https://appointments.example.com", cfg.ThirdPartyBaseURL)
	assert.Equal(t, "bridge", cfg.ThirdPartyUsername)
	assert.Equal(t, "secret", cfg.ThirdPartyPassword)
	assert.Equal(t, "primary", cfg.GoogleCalendarID)
	assert.Equal(t, "/etc/bridge/sa.json", cfg.GoogleCredentialsFile)
	assert.Equal(t, 15, cfg.SyncIntervalMin)
}

func TestFromEnv_BadIntervalFallsBackToDefault(t *testing.T) {
	t.Setenv("SYNC_INTERVAL_MIN", "often")
	assert.Equal(t, 0, FromEnv().SyncIntervalMin)
}
