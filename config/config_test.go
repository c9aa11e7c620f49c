package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("FRONTEND_URL", "https://example.dev/")
	t.Setenv("ALLOWED_EMAILS", " owner@example.com , ,Friend@Example.com")
	t.Setenv("SESSION_TTL_HOURS", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://example.dev", cfg.FrontendURL)
	assert.Equal(t, "https://example.dev/admin", cfg.AdminRedirectURL)
	assert.Equal(t, []string{"owner@example.com", "Friend@Example.com"}, cfg.AllowedEmails)
	assert.Equal(t, 24, cfg.SessionTTLHours)
	assert.Equal(t, 5, cfg.RateLimitContactThreshold)
}

func TestGetEnvList_Empty(t *testing.T) {
	t.Setenv("EMPTY_LIST", "")
	assert.Nil(t, getEnvList("EMPTY_LIST"))
}
