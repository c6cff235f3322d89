package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetXDGDirs_RespectsEnv(t *testing.T) {
	base := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "cfg"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(base, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(base, "state"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(base, "cache"))

	dirs, err := GetXDGDirs()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(base, "cfg", "tabshell"), dirs.ConfigHome)
	assert.Equal(t, filepath.Join(base, "data", "tabshell"), dirs.DataHome)
	assert.Equal(t, filepath.Join(base, "state", "tabshell"), dirs.StateHome)
	assert.Equal(t, filepath.Join(base, "cache", "tabshell"), dirs.CacheHome)

	logDir, err := GetLogDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "state", "tabshell", "logs"), logDir)

	require.NoError(t, EnsureDirectories())
	assert.DirExists(t, dirs.DataHome)
}

func TestGetXDGDirs_DevMode(t *testing.T) {
	t.Setenv("ENV", "dev")
	cwd, err := os.Getwd()
	require.NoError(t, err)

	dirs, err := GetXDGDirs()
	require.NoError(t, err)

	devDir := filepath.Join(cwd, ".dev", "tabshell")
	assert.Equal(t, devDir, dirs.ConfigHome)
	assert.Equal(t, devDir, dirs.DataHome)
}

func TestSchema_UsesTOMLNames(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	for _, section := range []string{"app", "tabs", "interception", "bridge", "zoom", "drag", "gesture", "window", "logging"} {
		assert.Contains(t, props, section)
	}

	path, err := GenerateSchemaFile(t.TempDir())
	require.NoError(t, err)
	assert.FileExists(t, path)
}
