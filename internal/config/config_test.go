package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() Config {
	var c Config
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "Info_Widget", c.WidgetKind)
	assert.Equal(t, 2*time.Minute, c.RefreshInterval)
	assert.Equal(t, 30*time.Second, c.ImmediateRefreshInterval)
	assert.Equal(t, 500*time.Millisecond, c.ReloadTimeout)
	assert.Equal(t, "slog", c.LogBackend)
	assert.Equal(t, filepath.Dir(c.SharedStorePath), filepath.Dir(c.WidgetSocket), "socket lives next to the shared store")
}

func TestLoad_NoSources(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)
	want := defaults()
	assert.Equal(t, &want, cfg)
}

func TestLoad_Precedence(t *testing.T) {
	t.Setenv("LISTEN_LOCAL_STORE", "/env/local.db")
	t.Setenv("LISTEN_SHARED_STORE", "/env/shared.db")
	t.Setenv("LISTEN_REFRESH_INTERVAL", "1m")
	t.Setenv("LISTEN_LOG_BACKEND", "zap")

	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"shared_store_path": "/json/shared.db",
		"refresh_interval": "45s",
		"immediate_refresh_interval": 5000000000
	}`), 0o600))

	cfg, err := Load([]string{"-c", path, "-s", "/flag/shared.db", "add", "title"})
	require.NoError(t, err)

	assert.Equal(t, "/env/local.db", cfg.LocalStorePath)
	assert.Equal(t, "/flag/shared.db", cfg.SharedStorePath)
	assert.Equal(t, 45*time.Second, cfg.RefreshInterval)
	assert.Equal(t, 5*time.Second, cfg.ImmediateRefreshInterval)
	assert.Equal(t, "zap", cfg.LogBackend)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("bad env duration", func(t *testing.T) {
		t.Setenv("LISTEN_RELOAD_TIMEOUT", "fast")
		_, err := Load(nil)
		require.Error(t, err)
	})

	t.Run("missing json", func(t *testing.T) {
		_, err := Load([]string{"-config", filepath.Join(t.TempDir(), "none.json")})
		require.Error(t, err)
	})

	t.Run("bad json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"refresh_interval": true}`), 0o600))
		_, err := Load([]string{"-c", path})
		require.Error(t, err)
	})

	t.Run("bad flag value", func(t *testing.T) {
		_, err := Load([]string{"-t", "abc"})
		require.Error(t, err)
	})
}

func TestParseFlags(t *testing.T) {
	cfg := defaults()
	require.NoError(t, parseFlags(&cfg, []string{"-headless", "-k", "Other", "-r", "10s", "-log", "debug", "-unknown", "x"}))

	assert.True(t, cfg.Headless)
	assert.Equal(t, "Other", cfg.WidgetKind)
	assert.Equal(t, 10*time.Second, cfg.RefreshInterval)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseEnv_Headless(t *testing.T) {
	t.Setenv("LISTEN_HEADLESS", "true")
	cfg := defaults()
	require.NoError(t, parseEnv(&cfg))
	assert.True(t, cfg.Headless)

	t.Setenv("LISTEN_HEADLESS", "maybe")
	require.Error(t, parseEnv(&cfg))
}
