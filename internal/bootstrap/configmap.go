package bootstrap

import (
	"time"

	"github.com/bnema/tabshell/internal/application/usecase"
	"github.com/bnema/tabshell/internal/infrastructure/bridge"
	"github.com/bnema/tabshell/internal/infrastructure/config"
	"github.com/bnema/tabshell/internal/logging"
)

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// TabRegistryConfig maps the tabs section.
func TabRegistryConfig(cfg *config.Config) usecase.TabRegistryConfig {
	return usecase.TabRegistryConfig{MaxTabs: cfg.Tabs.MaxTabs, EnvName: cfg.App.EnvName}
}

// ContextConfig maps the rendering context settings.
func ContextConfig(cfg *config.Config) usecase.ContextConfig {
	return usecase.ContextConfig{
		RetryAttempts:     cfg.Tabs.RetryAttempts,
		RetryBackoff:      ms(cfg.Tabs.RetryBackoffMs),
		TitlePollInterval: ms(cfg.Tabs.TitlePollMs),
	}
}

// ZoomConfig maps the zoom section.
func ZoomConfig(cfg *config.Config) usecase.ZoomConfig {
	return usecase.ZoomConfig{
		DebounceBase:   ms(cfg.Zoom.DebounceBaseMs),
		DebouncePerTab: ms(cfg.Zoom.DebouncePerTabMs),
		DebounceMax:    ms(cfg.Zoom.DebounceMaxMs),
		Default:        cfg.Zoom.Default,
	}
}

// DragConfig maps the drag section.
func DragConfig(cfg *config.Config) usecase.DragConfig {
	return usecase.DragConfig{Threshold: cfg.Drag.Threshold, TearOffMargin: cfg.Drag.TearOffMargin}
}

// GestureConfig maps the gesture section. Auto direction follows the platform.
func GestureConfig(cfg *config.Config) usecase.GestureConfig {
	natural := usecase.IsMacPlatform()
	switch cfg.Gesture.ScrollDirection {
	case config.ScrollDirectionNatural:
		natural = true
	case config.ScrollDirectionTraditional:
		natural = false
	}
	return usecase.GestureConfig{
		Window:           ms(cfg.Gesture.WindowMs),
		MinDistance:      cfg.Gesture.MinDistance,
		DominanceRatio:   cfg.Gesture.DominanceRatio,
		MinVelocity:      cfg.Gesture.MinVelocity,
		NaturalScrolling: natural,
	}
}

// InterceptorConfig maps the interception section.
func InterceptorConfig(cfg *config.Config) usecase.InterceptorConfig {
	return usecase.InterceptorConfig{
		APIPrefix:       cfg.Interception.APIPrefix,
		InternalSchemes: append([]string(nil), cfg.Interception.InternalSchemes...),
	}
}

// BridgeConfig maps the bridge section.
func BridgeConfig(cfg *config.Config) bridge.Config {
	return bridge.Config{
		BaseURL:          cfg.Bridge.BaseURL,
		Timeout:          ms(cfg.Bridge.TimeoutMs),
		RateLimit:        cfg.Bridge.RateLimit,
		RateBurst:        cfg.Bridge.RateBurst,
		SkipHeaderPrefix: cfg.Bridge.SkipHeaderPrefix,
		EnvInfoPath:      cfg.Bridge.EnvInfoPath,
		DebugEcho:        cfg.Interception.DebugEcho,
	}
}

// LogFileConfig returns the rotated file settings, or nil when file
// logging is off.
func LogFileConfig(cfg *config.Config) *logging.FileConfig {
	if !cfg.Logging.EnableFileLog || cfg.Logging.LogDir == "" {
		return nil
	}
	return &logging.FileConfig{
		Dir:        cfg.Logging.LogDir,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	}
}
