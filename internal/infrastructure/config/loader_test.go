package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(body), filePerm))
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, 20, mgr.viper.GetInt("tabs.max_tabs"))
	assert.Equal(t, "/base_api/", mgr.viper.GetString("interception.api_prefix"))
	assert.Equal(t, "tabshell-", mgr.viper.GetString("bridge.skip_header_prefix"))
	assert.Equal(t, 300, mgr.viper.GetInt("zoom.debounce_max_ms"))
	assert.Equal(t, "auto", mgr.viper.GetString("gesture.scroll_direction"))
}

func TestLoad_CreatesDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)

	require.NoError(t, mgr.Load())

	assert.FileExists(t, filepath.Join(dir, "config.toml"))
	cfg := mgr.Get()
	assert.Equal(t, 20, cfg.Tabs.MaxTabs)
	assert.Equal(t, []string{"ipc://localhost", "tabshell://"}, cfg.Interception.InternalSchemes)
	assert.InDelta(t, 1.0, cfg.Zoom.Default, 1e-9)
}

func TestLoad_ReadsFileValues(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[app]
start_url = "https://app.example.com/"
env_name = " staging "

[tabs]
max_tabs = 8

[bridge]
base_url = "https://api.example.com/"

[logging]
format = "TEXT"
`)
	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "https://app.example.com/", cfg.App.StartURL)
	assert.Equal(t, "staging", cfg.App.EnvName)
	assert.Equal(t, 8, cfg.Tabs.MaxTabs)
	assert.Equal(t, "https://api.example.com", cfg.Bridge.BaseURL)
	assert.Equal(t, "console", cfg.Logging.Format)
	// Unset keys keep their defaults.
	assert.Equal(t, 100, cfg.Tabs.RetryBackoffMs)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[zoom]\ndefault = 1.0\n")
	t.Setenv("TABSHELL_LOG_LEVEL", "debug")
	t.Setenv("TABSHELL_ZOOM_DEFAULT", "1.5")

	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.InDelta(t, 1.5, cfg.Zoom.Default, 1e-9)
}

func TestLoad_InvalidConfigFails(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[tabs]\nmax_tabs = 0\n")

	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tabs.max_tabs")
}

func TestLoad_MalformedTOML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[tabs\nmax_tabs = ")

	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestReload_NotifiesCallbacks(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[zoom]\ndebounce_base_ms = 60\n")

	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var got []*Config
	mgr.OnConfigChange(func(c *Config) { got = append(got, c) })

	writeConfig(t, dir, "[zoom]\ndebounce_base_ms = 90\n")
	require.NoError(t, mgr.Reload())

	require.Len(t, got, 1)
	assert.Equal(t, 90, got[0].Zoom.DebounceBaseMs)
	assert.Equal(t, 90, mgr.Get().Zoom.DebounceBaseMs)
}

func TestReload_InvalidKeepsLastGoodConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[drag]\nthreshold = 5.0\n")

	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	called := false
	mgr.OnConfigChange(func(*Config) { called = true })

	writeConfig(t, dir, "[drag]\nthreshold = -1.0\n")
	require.Error(t, mgr.Reload())

	assert.False(t, called)
	assert.InDelta(t, 5.0, mgr.Get().Drag.Threshold, 1e-9)
}

func TestGet_ReturnsCopy(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Tabs.MaxTabs = 99
	cfg.Interception.InternalSchemes[0] = "changed://"

	fresh := mgr.Get()
	assert.Equal(t, 20, fresh.Tabs.MaxTabs)
	assert.Equal(t, "ipc://localhost", fresh.Interception.InternalSchemes[0])
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gesture.ScrollDirection = "NATURAL"
	cfg.Logging.Level = " WARN "
	cfg.Logging.Format = "Json"

	normalizeConfig(cfg)

	assert.Equal(t, ScrollDirectionNatural, cfg.Gesture.ScrollDirection)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	cfg.Gesture.ScrollDirection = "sideways"
	normalizeConfig(cfg)
	assert.Equal(t, ScrollDirectionAuto, cfg.Gesture.ScrollDirection)
}
