package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/tally/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv(EnvDataDir, "")
	t.Setenv(EnvLogLevel, "")
	return dir
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.False(t, Exists())
	assert.Equal(t, filepath.Join(dir, "data", "tally"), cfg.DataDir())
	assert.Equal(t, model.DefaultCategories(), cfg.CategoryList())
	assert.Equal(t, model.DefaultSort, cfg.Sort())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	isolate(t)

	cfg := DefaultConfig()
	cfg.General.DataDir = "/tmp/ledger"
	cfg.General.Locale = "de-DE"
	cfg.General.DefaultSort = "amount"
	cfg.General.DefaultOrder = "asc"
	cfg.Appearance.Theme = "terminal"
	cfg.Categories = []model.Category{
		{Name: "Rent", Color: "red", Icon: "home"},
		{Name: "Misc", Color: "gray"},
	}
	require.NoError(t, Save(cfg))
	assert.True(t, Exists())

	info, err := os.Stat(ConfigPath())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
	assert.Equal(t, model.SortConfig{Field: model.SortByAmount, Order: model.Ascending}, got.Sort())
	assert.Equal(t, cfg.Categories, got.CategoryList())
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	require.NoError(t, Save(DefaultConfig()))
	t.Setenv(EnvDataDir, "/srv/tally")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/srv/tally", cfg.DataDir())
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFileIgnoresEnv(t *testing.T) {
	isolate(t)
	t.Setenv(EnvDataDir, "/srv/tally")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := LoadFile()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg, "missing file gives plain defaults")

	base := DefaultConfig()
	base.General.DataDir = "/home/me/ledger"
	require.NoError(t, Save(base))

	cfg, err = LoadFile()
	require.NoError(t, err)
	assert.Equal(t, "/home/me/ledger", cfg.General.DataDir)
	assert.Equal(t, "warn", cfg.Log.Level)

	// saving what LoadFile returned keeps env values out of the file
	cfg.Appearance.Theme = "terminal"
	require.NoError(t, Save(cfg))
	data, err := os.ReadFile(ConfigPath())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "/srv/tally")
	assert.NotContains(t, string(data), "debug")
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"bad toml":           "[general\n",
		"bad sort":           "[general]\ndefault_sort = \"price\"\n",
		"bad order":          "[general]\ndefault_order = \"up\"\n",
		"duplicate category": "[[categories]]\nname = \"A\"\n[[categories]]\nname = \"A\"\n",
		"unnamed category":   "[[categories]]\ncolor = \"red\"\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			isolate(t)
			require.NoError(t, os.MkdirAll(ConfigDir(), 0o755))
			require.NoError(t, os.WriteFile(ConfigPath(), []byte(body), 0o600))

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
