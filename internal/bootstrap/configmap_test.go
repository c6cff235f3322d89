package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabshell/internal/application/usecase"
	"github.com/bnema/tabshell/internal/infrastructure/config"
)

func TestConfigMapping(t *testing.T) {
	cfg := config.DefaultConfig()

	zoom := ZoomConfig(cfg)
	assert.Equal(t, 60*time.Millisecond, zoom.DebounceBase)
	assert.Equal(t, 15*time.Millisecond, zoom.DebouncePerTab)
	assert.Equal(t, 300*time.Millisecond, zoom.DebounceMax)
	assert.InDelta(t, 1.0, zoom.Default, 1e-9)

	ctxCfg := ContextConfig(cfg)
	assert.Equal(t, 5, ctxCfg.RetryAttempts)
	assert.Equal(t, 100*time.Millisecond, ctxCfg.RetryBackoff)
	assert.Equal(t, time.Second, ctxCfg.TitlePollInterval)

	assert.Equal(t, usecase.DragConfig{Threshold: 3, TearOffMargin: 100}, DragConfig(cfg))
	assert.Equal(t, 20, TabRegistryConfig(cfg).MaxTabs)

	ic := InterceptorConfig(cfg)
	assert.Equal(t, "/base_api/", ic.APIPrefix)
	ic.InternalSchemes[0] = "changed"
	assert.Equal(t, "ipc://localhost", cfg.Interception.InternalSchemes[0])

	bc := BridgeConfig(cfg)
	assert.Equal(t, 30*time.Second, bc.Timeout)
	assert.Equal(t, "tabshell-", bc.SkipHeaderPrefix)
}

func TestGestureConfigScrollDirection(t *testing.T) {
	cfg := config.DefaultConfig()

	cfg.Gesture.ScrollDirection = config.ScrollDirectionNatural
	assert.True(t, GestureConfig(cfg).NaturalScrolling)

	cfg.Gesture.ScrollDirection = config.ScrollDirectionTraditional
	assert.False(t, GestureConfig(cfg).NaturalScrolling)

	cfg.Gesture.ScrollDirection = config.ScrollDirectionAuto
	assert.Equal(t, usecase.IsMacPlatform(), GestureConfig(cfg).NaturalScrolling)
	assert.Equal(t, 300*time.Millisecond, GestureConfig(cfg).Window)
}

func TestLogFileConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.Nil(t, LogFileConfig(cfg))

	cfg.Logging.EnableFileLog = true
	cfg.Logging.LogDir = t.TempDir()
	fc := LogFileConfig(cfg)
	require.NotNil(t, fc)
	assert.Equal(t, cfg.Logging.LogDir, fc.Dir)
	assert.Equal(t, 10, fc.MaxSizeMB)
}

func TestParallelInit(t *testing.T) {
	home := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, "state"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(home, "cache"))

	timer := NewStartupTimer()
	fpPath := filepath.Join(home, "data", "tabshell", "fingerprint.json")
	res, err := ParallelInit(context.Background(), ParallelInitInput{
		Config:          config.DefaultConfig(),
		FingerprintPath: fpPath,
		Timer:           timer,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.Fingerprint.DeviceID)
	assert.Nil(t, res.SigningKey)
	assert.FileExists(t, fpPath)
	assert.DirExists(t, filepath.Join(home, "config", "tabshell"))
	assert.ElementsMatch(t, []string{"dirs", "fingerprint"}, timer.Phases())
}

func TestParallelInitBadSigningKey(t *testing.T) {
	home := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, "state"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(home, "cache"))

	keyPath := filepath.Join(home, "key.pem")
	require.NoError(t, os.WriteFile(keyPath, []byte("not a key"), 0o600))

	cfg := config.DefaultConfig()
	cfg.Bridge.SigningKeyPath = keyPath
	_, err := ParallelInit(context.Background(), ParallelInitInput{
		Config:          cfg,
		FingerprintPath: filepath.Join(home, "fp.json"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load signing key")
}

func TestNewServicesUsesConfiguredEnvName(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.App.EnvName = "staging"

	s := NewServices(context.Background(), cfg, &ParallelInitResult{})
	assert.Equal(t, "staging", s.EnvName)
	assert.NotNil(t, s.Interceptor)
	assert.NotNil(t, s.Debug)
}

func TestNewServicesFallsBackToDefaultEnvName(t *testing.T) {
	s := NewServices(context.Background(), config.DefaultConfig(), &ParallelInitResult{})
	assert.Equal(t, usecase.DefaultEnvName, s.EnvName)
}
