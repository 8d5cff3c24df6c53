package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Introspection.Timeout)
	assert.Equal(t, int64(32<<20), cfg.Introspection.MaxResponseBytes)
	assert.Equal(t, "surviving", cfg.Generation.ReferenceCheck)
	assert.Equal(t, 4, cfg.Generation.Workers)
	assert.False(t, cfg.Platform.Enabled())
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_OverrideDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("GENERATION_WORKERS", "8")
	t.Setenv("GENERATION_REFERENCE_CHECK", "universe")
	t.Setenv("INTROSPECTION_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 8, cfg.Generation.Workers)
	assert.Equal(t, "universe", cfg.Generation.ReferenceCheck)
	assert.Equal(t, 5*time.Second, cfg.Introspection.Timeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_AltEnvVar(t *testing.T) {
	t.Setenv("FLATFILE_API_URL", "https://api.example.com")
	t.Setenv("FLATFILE_API_KEY", "sk_test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.Platform.URL)
	assert.True(t, cfg.Platform.Enabled())
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  string
		val  string
	}{
		{"bad port", "SERVER_PORT", "99999"},
		{"non-numeric port", "SERVER_PORT", "abc"},
		{"bad duration", "INTROSPECTION_TIMEOUT", "soon"},
		{"bad reference check", "GENERATION_REFERENCE_CHECK", "loose"},
		{"zero workers", "GENERATION_WORKERS", "0"},
		{"relative platform url", "PLATFORM_API_URL", "api/v1"},
		{"bad log level", "LOG_LEVEL", "verbose"},
		{"bad log format", "LOG_FORMAT", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.val)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.env)
		})
	}
}

func TestDefault(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")

	cfg := Default()
	assert.Equal(t, 8080, cfg.Server.Port)
	require.NoError(t, cfg.Validate())
}

func TestString_MasksAPIKey(t *testing.T) {
	cfg := Default()
	cfg.Platform.APIKey = "sk_live_secret"

	s := cfg.String()
	assert.NotContains(t, s, "sk_live_secret")
	assert.Contains(t, s, "[MASKED]")
}
