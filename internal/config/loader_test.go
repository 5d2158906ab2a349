package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FileWithDefaults(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 9090
database:
  user: genapp
deadline:
  response_window_days: 7
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 7, cfg.Deadline.ResponseWindowDays)
	// Unset fields fall back to defaults.
	assert.Equal(t, DefaultEndOfBusinessHour, cfg.Deadline.EndOfBusinessHour)
	assert.Equal(t, DefaultHolidayFeedURL, cfg.Holiday.FeedURL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidConfig(t *testing.T) {
	path := writeConfigFile(t, `
server:
  mode: production
database:
  user: genapp
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.mode")
}

func TestLoadFromEnv_Override(t *testing.T) {
	t.Setenv("GENAPP_DATABASE_USER", "svc")
	t.Setenv("GENAPP_SERVER_PORT", "8181")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "svc", cfg.Database.User)
	assert.Equal(t, 8181, cfg.Server.Port)
}

func TestMustLoad_PanicsOnError(t *testing.T) {
	assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "missing.yaml")) })
}
