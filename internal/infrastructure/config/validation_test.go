package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
	}{
		{name: "relative origin", mutate: func(c *Config) { c.App.Origin = "example.com" }, wantKey: "app.origin"},
		{name: "zero max tabs", mutate: func(c *Config) { c.Tabs.MaxTabs = 0 }, wantKey: "tabs.max_tabs"},
		{name: "tiny poll", mutate: func(c *Config) { c.Tabs.TitlePollMs = 10 }, wantKey: "tabs.title_poll_ms"},
		{name: "prefix without slash", mutate: func(c *Config) { c.Interception.APIPrefix = "base_api/" }, wantKey: "interception.api_prefix"},
		{name: "ftp bridge", mutate: func(c *Config) { c.Bridge.BaseURL = "ftp://files" }, wantKey: "bridge.base_url"},
		{name: "rate without burst", mutate: func(c *Config) { c.Bridge.RateBurst = 0 }, wantKey: "bridge.rate_burst"},
		{name: "zoom out of range", mutate: func(c *Config) { c.Zoom.Default = 7 }, wantKey: "zoom.default"},
		{name: "debounce max below base", mutate: func(c *Config) { c.Zoom.DebounceMaxMs = 10 }, wantKey: "zoom.debounce_max_ms"},
		{name: "negative margin", mutate: func(c *Config) { c.Drag.TearOffMargin = -1 }, wantKey: "drag.tear_off_margin"},
		{name: "weak dominance", mutate: func(c *Config) { c.Gesture.DominanceRatio = 0.5 }, wantKey: "gesture.dominance_ratio"},
		{name: "bad scroll direction", mutate: func(c *Config) { c.Gesture.ScrollDirection = "up" }, wantKey: "gesture.scroll_direction"},
		{name: "inverted window bounds", mutate: func(c *Config) { c.Window.MaxSize = 100 }, wantKey: "window.max_size"},
		{name: "bad log level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantKey: "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantKey)
		})
	}
}

func TestValidateConfig_RateLimitDisabledAllowsZeroBurst(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bridge.RateLimit = 0
	cfg.Bridge.RateBurst = 0

	assert.NoError(t, validateConfig(cfg))
}
