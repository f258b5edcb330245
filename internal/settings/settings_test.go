package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/config"
)

func isolateConfig(t *testing.T) string {
	t.Helper()
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("AIDASH_CONFIG_PATH", filepath.Join(configHome, "aidash", "config.toml"))
	config.Load()
	return filepath.Join(configHome, "aidash")
}

func TestLoadReturnsDefaultsWhenFileMissing(t *testing.T) {
	isolateConfig(t)

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, loaded.Theme)
	assert.Equal(t, TabSummarize, loaded.ActiveTab)
	assert.Equal(t, "default", loaded.DefaultCollection)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	isolateConfig(t)

	saved := &Settings{
		Theme:             ThemeLight,
		ActiveTab:         TabAsk,
		DefaultCollection: "research",
	}
	require.NoError(t, Save(saved))

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, loaded.Theme)
	assert.Equal(t, TabAsk, loaded.ActiveTab)
	assert.Equal(t, "research", loaded.DefaultCollection)
}

func TestSaveRejectsInvalidTheme(t *testing.T) {
	isolateConfig(t)

	err := Save(&Settings{Theme: "solarized"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid theme")
}

func TestSaveRejectsInvalidTab(t *testing.T) {
	isolateConfig(t)

	err := Save(&Settings{Theme: ThemeDark, ActiveTab: "imaginary"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid activeTab")
}

func TestLoadNormalizesUnknownTab(t *testing.T) {
	configDir := isolateConfig(t)

	require.NoError(t, os.MkdirAll(configDir, 0755))
	path := filepath.Join(configDir, "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme":"dark","activeTab":"removed-tab"}`), 0644))

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, TabSummarize, loaded.ActiveTab, "unknown tabs fall back to the first tab")
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	configDir := isolateConfig(t)

	require.NoError(t, os.MkdirAll(configDir, 0755))
	path := filepath.Join(configDir, "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{theme:`), 0644))

	_, err := Load()
	assert.Error(t, err)
}

func TestNormalizeTab(t *testing.T) {
	assert.Equal(t, TabDocuments, NormalizeTab("documents"))
	assert.Equal(t, TabSummarize, NormalizeTab(""))
	assert.Equal(t, TabSummarize, NormalizeTab("bogus"))
}

func TestIsValidTab(t *testing.T) {
	for _, tab := range Tabs {
		assert.True(t, IsValidTab(string(tab)))
	}
	assert.False(t, IsValidTab("settings"))
}

func TestTabTitles(t *testing.T) {
	assert.Equal(t, "Summarize", TabSummarize.Title())
	assert.Equal(t, "Learning Path", TabLearningPath.Title())
}
