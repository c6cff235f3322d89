package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager rooted in the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerAt(configDir)
}

// NewManagerAt creates a configuration manager reading config.toml from configDir.
func NewManagerAt(configDir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// TABSHELL_ZOOM_DEFAULT, TABSHELL_BRIDGE_BASE_URL, ...
	v.SetEnvPrefix("TABSHELL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short names shared with the logger bootstrap.
	if err := v.BindEnv("logging.level", "TABSHELL_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind TABSHELL_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "TABSHELL_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind TABSHELL_LOG_FORMAT: %w", err)
	}
	if err := v.BindEnv("bridge.base_url", "TABSHELL_BRIDGE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind TABSHELL_BRIDGE_URL: %w", err)
	}

	return &Manager{
		viper:     v,
		configDir: configDir,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables. A missing
// config file is created from the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			configFile := m.viper.ConfigFileUsed()
			if configFile == "" {
				configFile = m.ConfigFilePath()
			}
			return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
		}
		if createErr := m.createDefaultConfig(); createErr != nil {
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				m.configDir,
				createErr,
			)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
		}
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	switch strings.ToLower(strings.TrimSpace(config.Logging.Format)) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = "console"
	}

	switch ScrollDirection(strings.ToLower(string(config.Gesture.ScrollDirection))) {
	case ScrollDirectionNatural:
		config.Gesture.ScrollDirection = ScrollDirectionNatural
	case ScrollDirectionTraditional:
		config.Gesture.ScrollDirection = ScrollDirectionTraditional
	default:
		config.Gesture.ScrollDirection = ScrollDirectionAuto
	}

	config.Interception.APIPrefix = strings.TrimSpace(config.Interception.APIPrefix)
	config.Bridge.BaseURL = strings.TrimRight(strings.TrimSpace(config.Bridge.BaseURL), "/")
	config.App.EnvName = strings.TrimSpace(config.App.EnvName)
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	configCopy.Interception.InternalSchemes = append([]string(nil), m.config.Interception.InternalSchemes...)
	return &configCopy
}

// ConfigFilePath returns where config.toml lives for this manager.
func (m *Manager) ConfigFilePath() string {
	return filepath.Join(m.configDir, "config.toml")
}

// createDefaultConfig creates a default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile := m.ConfigFilePath()
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setAppDefaults(defaults)
	m.setTabsDefaults(defaults)
	m.setInterceptionDefaults(defaults)
	m.setBridgeDefaults(defaults)
	m.setZoomDefaults(defaults)
	m.setDragDefaults(defaults)
	m.setGestureDefaults(defaults)
	m.setWindowDefaults(defaults)
	m.setLoggingDefaults(defaults)
}

func (m *Manager) setAppDefaults(defaults *Config) {
	m.viper.SetDefault("app.start_url", defaults.App.StartURL)
	m.viper.SetDefault("app.origin", defaults.App.Origin)
	m.viper.SetDefault("app.env_name", defaults.App.EnvName)
	m.viper.SetDefault("app.env_key", defaults.App.EnvKey)
}

func (m *Manager) setTabsDefaults(defaults *Config) {
	m.viper.SetDefault("tabs.max_tabs", defaults.Tabs.MaxTabs)
	m.viper.SetDefault("tabs.title_poll_ms", defaults.Tabs.TitlePollMs)
	m.viper.SetDefault("tabs.retry_attempts", defaults.Tabs.RetryAttempts)
	m.viper.SetDefault("tabs.retry_backoff_ms", defaults.Tabs.RetryBackoffMs)
}

func (m *Manager) setInterceptionDefaults(defaults *Config) {
	m.viper.SetDefault("interception.api_prefix", defaults.Interception.APIPrefix)
	m.viper.SetDefault("interception.internal_schemes", defaults.Interception.InternalSchemes)
	m.viper.SetDefault("interception.debug_echo", defaults.Interception.DebugEcho)
	m.viper.SetDefault("interception.debug_buffer_size", defaults.Interception.DebugBufferSize)
}

func (m *Manager) setBridgeDefaults(defaults *Config) {
	m.viper.SetDefault("bridge.base_url", defaults.Bridge.BaseURL)
	m.viper.SetDefault("bridge.timeout_ms", defaults.Bridge.TimeoutMs)
	m.viper.SetDefault("bridge.rate_limit", defaults.Bridge.RateLimit)
	m.viper.SetDefault("bridge.rate_burst", defaults.Bridge.RateBurst)
	m.viper.SetDefault("bridge.signing_key_path", defaults.Bridge.SigningKeyPath)
	m.viper.SetDefault("bridge.skip_header_prefix", defaults.Bridge.SkipHeaderPrefix)
	m.viper.SetDefault("bridge.env_info_path", defaults.Bridge.EnvInfoPath)
}

func (m *Manager) setZoomDefaults(defaults *Config) {
	m.viper.SetDefault("zoom.default", defaults.Zoom.Default)
	m.viper.SetDefault("zoom.debounce_base_ms", defaults.Zoom.DebounceBaseMs)
	m.viper.SetDefault("zoom.debounce_per_tab_ms", defaults.Zoom.DebouncePerTabMs)
	m.viper.SetDefault("zoom.debounce_max_ms", defaults.Zoom.DebounceMaxMs)
}

func (m *Manager) setDragDefaults(defaults *Config) {
	m.viper.SetDefault("drag.threshold", defaults.Drag.Threshold)
	m.viper.SetDefault("drag.tear_off_margin", defaults.Drag.TearOffMargin)
}

func (m *Manager) setGestureDefaults(defaults *Config) {
	m.viper.SetDefault("gesture.window_ms", defaults.Gesture.WindowMs)
	m.viper.SetDefault("gesture.min_distance", defaults.Gesture.MinDistance)
	m.viper.SetDefault("gesture.dominance_ratio", defaults.Gesture.DominanceRatio)
	m.viper.SetDefault("gesture.min_velocity", defaults.Gesture.MinVelocity)
	m.viper.SetDefault("gesture.scroll_direction", string(defaults.Gesture.ScrollDirection))
}

func (m *Manager) setWindowDefaults(defaults *Config) {
	m.viper.SetDefault("window.default_width", defaults.Window.DefaultWidth)
	m.viper.SetDefault("window.default_height", defaults.Window.DefaultHeight)
	m.viper.SetDefault("window.min_size", defaults.Window.MinSize)
	m.viper.SetDefault("window.max_size", defaults.Window.MaxSize)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}
