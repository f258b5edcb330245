package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadAndGet(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	Load()

	got := Get("missing", "default")
	require.Equal(t, "default", got)
	require.Equal(t, "http://localhost:8000", Get("backend_url", ""))
	require.Equal(t, 300, GetInt("cache_ttl_seconds", 0))
}

func TestEnvOverrideWins(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("AIDASH_BACKEND_URL", "http://api.example.com:9000/")
	Load()

	require.Equal(t, "http://api.example.com:9000", Get("backend_url", ""))
}

func TestInvalidValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("AIDASH_CACHE_TTL_SECONDS", "-5")
	t.Setenv("AIDASH_THEME", "solarized")
	t.Setenv("AIDASH_BACKEND_URL", "not a url")
	Load()

	require.Equal(t, 300, GetInt("cache_ttl_seconds", 0))
	require.Equal(t, "dark", Get("theme", ""))
	require.Equal(t, "http://localhost:8000", Get("backend_url", ""))
}

func TestGetBoolNormalization(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("AIDASH_LOGGING_ENABLED", "yes")
	Load()

	require.True(t, GetBool("logging_enabled", false))
}

func TestAllowedFileTypesNormalization(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("AIDASH_ALLOWED_FILE_TYPES", "PDF, .txt ,md")
	Load()

	require.Equal(t, []string{".pdf", ".txt", ".md"}, AllowedFileTypes())
}
