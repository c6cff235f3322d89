package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateApp(config)...)
	validationErrors = append(validationErrors, validateTabs(config)...)
	validationErrors = append(validationErrors, validateInterception(config)...)
	validationErrors = append(validationErrors, validateBridge(config)...)
	validationErrors = append(validationErrors, validateZoom(config)...)
	validationErrors = append(validationErrors, validateDrag(config)...)
	validationErrors = append(validationErrors, validateGesture(config)...)
	validationErrors = append(validationErrors, validateWindow(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateApp(config *Config) []string {
	if config.App.Origin == "" {
		return nil
	}
	u, err := url.Parse(config.App.Origin)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return []string{"app.origin must be an absolute URL (scheme://host)"}
	}
	return nil
}

func validateTabs(config *Config) []string {
	var validationErrors []string
	if config.Tabs.MaxTabs < 1 {
		validationErrors = append(validationErrors, "tabs.max_tabs must be at least 1")
	}
	if config.Tabs.TitlePollMs < 100 {
		validationErrors = append(validationErrors, "tabs.title_poll_ms must be at least 100")
	}
	if config.Tabs.RetryAttempts < 1 {
		validationErrors = append(validationErrors, "tabs.retry_attempts must be at least 1")
	}
	if config.Tabs.RetryBackoffMs < 0 {
		validationErrors = append(validationErrors, "tabs.retry_backoff_ms must be non-negative")
	}
	return validationErrors
}

func validateInterception(config *Config) []string {
	var validationErrors []string
	if !strings.HasPrefix(config.Interception.APIPrefix, "/") {
		validationErrors = append(validationErrors, "interception.api_prefix must start with /")
	}
	if config.Interception.DebugBufferSize < 0 {
		validationErrors = append(validationErrors, "interception.debug_buffer_size must be non-negative")
	}
	return validationErrors
}

func validateBridge(config *Config) []string {
	var validationErrors []string
	if config.Bridge.BaseURL != "" {
		u, err := url.Parse(config.Bridge.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			validationErrors = append(validationErrors, "bridge.base_url must be an http or https URL")
		}
	}
	if config.Bridge.TimeoutMs <= 0 {
		validationErrors = append(validationErrors, "bridge.timeout_ms must be positive")
	}
	if config.Bridge.RateLimit < 0 {
		validationErrors = append(validationErrors, "bridge.rate_limit must be non-negative")
	}
	if config.Bridge.RateLimit > 0 && config.Bridge.RateBurst < 1 {
		validationErrors = append(validationErrors, "bridge.rate_burst must be at least 1 when rate_limit is set")
	}
	return validationErrors
}

func validateZoom(config *Config) []string {
	var validationErrors []string
	if config.Zoom.Default < 0.25 || config.Zoom.Default > 5.0 {
		validationErrors = append(validationErrors, "zoom.default must be between 0.25 and 5.0")
	}
	if config.Zoom.DebounceBaseMs < 0 || config.Zoom.DebouncePerTabMs < 0 {
		validationErrors = append(validationErrors, "zoom debounce values must be non-negative")
	}
	if config.Zoom.DebounceMaxMs < config.Zoom.DebounceBaseMs {
		validationErrors = append(validationErrors, "zoom.debounce_max_ms must be >= zoom.debounce_base_ms")
	}
	return validationErrors
}

func validateDrag(config *Config) []string {
	var validationErrors []string
	if config.Drag.Threshold <= 0 {
		validationErrors = append(validationErrors, "drag.threshold must be positive")
	}
	if config.Drag.TearOffMargin < 0 {
		validationErrors = append(validationErrors, "drag.tear_off_margin must be non-negative")
	}
	return validationErrors
}

func validateGesture(config *Config) []string {
	var validationErrors []string
	if config.Gesture.WindowMs <= 0 {
		validationErrors = append(validationErrors, "gesture.window_ms must be positive")
	}
	if config.Gesture.MinDistance <= 0 {
		validationErrors = append(validationErrors, "gesture.min_distance must be positive")
	}
	if config.Gesture.DominanceRatio < 1 {
		validationErrors = append(validationErrors, "gesture.dominance_ratio must be at least 1")
	}
	if config.Gesture.MinVelocity < 0 {
		validationErrors = append(validationErrors, "gesture.min_velocity must be non-negative")
	}
	switch config.Gesture.ScrollDirection {
	case ScrollDirectionAuto, ScrollDirectionNatural, ScrollDirectionTraditional:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("gesture.scroll_direction must be one of: auto, natural, traditional (got: %s)", config.Gesture.ScrollDirection))
	}
	return validationErrors
}

func validateWindow(config *Config) []string {
	var validationErrors []string
	if config.Window.MinSize < 1 {
		validationErrors = append(validationErrors, "window.min_size must be positive")
	}
	if config.Window.MaxSize < config.Window.MinSize {
		validationErrors = append(validationErrors, "window.max_size must be >= window.min_size")
	}
	if config.Window.DefaultWidth <= 0 || config.Window.DefaultHeight <= 0 {
		validationErrors = append(validationErrors, "window default size must be positive")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string

	validLevels := map[string]bool{
		"trace": true, "debug": true, "info": true, "warn": true, "error": true, "disabled": true,
	}
	if !validLevels[strings.ToLower(config.Logging.Level)] {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error, disabled (got: %s)", config.Logging.Level))
	}

	if config.Logging.Format != "console" && config.Logging.Format != "json" {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got: %s)", config.Logging.Format))
	}

	if config.Logging.MaxSizeMB < 0 || config.Logging.MaxBackups < 0 || config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging rotation values must be non-negative")
	}
	return validationErrors
}
