package config

// Config represents the complete configuration for tabshell.
type Config struct {
	App          AppConfig          `mapstructure:"app" yaml:"app" toml:"app" json:"app"`
	Tabs         TabsConfig         `mapstructure:"tabs" yaml:"tabs" toml:"tabs" json:"tabs"`
	Interception InterceptionConfig `mapstructure:"interception" yaml:"interception" toml:"interception" json:"interception"`
	Bridge       BridgeConfig       `mapstructure:"bridge" yaml:"bridge" toml:"bridge" json:"bridge"`
	Zoom         ZoomConfig         `mapstructure:"zoom" yaml:"zoom" toml:"zoom" json:"zoom"`
	Drag         DragConfig         `mapstructure:"drag" yaml:"drag" toml:"drag" json:"drag"`
	Gesture      GestureConfig      `mapstructure:"gesture" yaml:"gesture" toml:"gesture" json:"gesture"`
	Window       WindowConfig       `mapstructure:"window" yaml:"window" toml:"window" json:"window"`
	Logging      LoggingConfig      `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
}

// AppConfig holds what the shell opens and which environment it talks to.
type AppConfig struct {
	// StartURL is loaded in the first tab.
	StartURL string `mapstructure:"start_url" yaml:"start_url" toml:"start_url" json:"start_url"`
	// Origin is the page origin relative API calls resolve against.
	Origin string `mapstructure:"origin" yaml:"origin" toml:"origin" json:"origin"`
	// EnvName is shown in window titles. Empty means parse it from env info.
	EnvName string `mapstructure:"env_name" yaml:"env_name" toml:"env_name" json:"env_name"`
	// EnvKey is the short environment key reported next to the name.
	EnvKey string `mapstructure:"env_key" yaml:"env_key" toml:"env_key" json:"env_key"`
}

// TabsConfig controls the tab registry and rendering contexts.
type TabsConfig struct {
	MaxTabs int `mapstructure:"max_tabs" yaml:"max_tabs" toml:"max_tabs" json:"max_tabs"`
	// TitlePollMs is the fallback title poll period.
	TitlePollMs int `mapstructure:"title_poll_ms" yaml:"title_poll_ms" toml:"title_poll_ms" json:"title_poll_ms"`
	// RetryAttempts bounds interception install attempts per context.
	RetryAttempts int `mapstructure:"retry_attempts" yaml:"retry_attempts" toml:"retry_attempts" json:"retry_attempts"`
	// RetryBackoffMs is the linear backoff step between attempts.
	RetryBackoffMs int `mapstructure:"retry_backoff_ms" yaml:"retry_backoff_ms" toml:"retry_backoff_ms" json:"retry_backoff_ms"`
}

// InterceptionConfig controls which page calls are bridged.
type InterceptionConfig struct {
	APIPrefix       string   `mapstructure:"api_prefix" yaml:"api_prefix" toml:"api_prefix" json:"api_prefix"`
	InternalSchemes []string `mapstructure:"internal_schemes" yaml:"internal_schemes" toml:"internal_schemes" json:"internal_schemes"`
	// DebugEcho logs the debug echo of every bridged call.
	DebugEcho bool `mapstructure:"debug_echo" yaml:"debug_echo" toml:"debug_echo" json:"debug_echo"`
	// DebugBufferSize is how many echoes are retained.
	DebugBufferSize int `mapstructure:"debug_buffer_size" yaml:"debug_buffer_size" toml:"debug_buffer_size" json:"debug_buffer_size"`
}

// BridgeConfig configures the HTTP bridge that performs bridged calls.
type BridgeConfig struct {
	BaseURL   string `mapstructure:"base_url" yaml:"base_url" toml:"base_url" json:"base_url"`
	TimeoutMs int    `mapstructure:"timeout_ms" yaml:"timeout_ms" toml:"timeout_ms" json:"timeout_ms"`
	// RateLimit is requests per second; 0 disables limiting.
	RateLimit float64 `mapstructure:"rate_limit" yaml:"rate_limit" toml:"rate_limit" json:"rate_limit"`
	RateBurst int     `mapstructure:"rate_burst" yaml:"rate_burst" toml:"rate_burst" json:"rate_burst"`
	// SigningKeyPath points to a PEM RSA public key. Empty disables signing.
	SigningKeyPath string `mapstructure:"signing_key_path" yaml:"signing_key_path" toml:"signing_key_path" json:"signing_key_path"`
	// SkipHeaderPrefix marks page headers that are never forwarded.
	SkipHeaderPrefix string `mapstructure:"skip_header_prefix" yaml:"skip_header_prefix" toml:"skip_header_prefix" json:"skip_header_prefix"`
	// EnvInfoPath is requested to obtain the environment description.
	EnvInfoPath string `mapstructure:"env_info_path" yaml:"env_info_path" toml:"env_info_path" json:"env_info_path"`
}

// ZoomConfig controls the zoom coordinator.
type ZoomConfig struct {
	Default          float64 `mapstructure:"default" yaml:"default" toml:"default" json:"default"`
	DebounceBaseMs   int     `mapstructure:"debounce_base_ms" yaml:"debounce_base_ms" toml:"debounce_base_ms" json:"debounce_base_ms"`
	DebouncePerTabMs int     `mapstructure:"debounce_per_tab_ms" yaml:"debounce_per_tab_ms" toml:"debounce_per_tab_ms" json:"debounce_per_tab_ms"`
	DebounceMaxMs    int     `mapstructure:"debounce_max_ms" yaml:"debounce_max_ms" toml:"debounce_max_ms" json:"debounce_max_ms"`
}

// DragConfig controls tab dragging.
type DragConfig struct {
	Threshold     float64 `mapstructure:"threshold" yaml:"threshold" toml:"threshold" json:"threshold"`
	TearOffMargin float64 `mapstructure:"tear_off_margin" yaml:"tear_off_margin" toml:"tear_off_margin" json:"tear_off_margin"`
}

// ScrollDirection selects how horizontal swipes map to tab switching.
type ScrollDirection string

const (
	ScrollDirectionAuto        ScrollDirection = "auto"
	ScrollDirectionNatural     ScrollDirection = "natural"
	ScrollDirectionTraditional ScrollDirection = "traditional"
)

// GestureConfig controls swipe recognition.
type GestureConfig struct {
	WindowMs       int     `mapstructure:"window_ms" yaml:"window_ms" toml:"window_ms" json:"window_ms"`
	MinDistance    float64 `mapstructure:"min_distance" yaml:"min_distance" toml:"min_distance" json:"min_distance"`
	DominanceRatio float64 `mapstructure:"dominance_ratio" yaml:"dominance_ratio" toml:"dominance_ratio" json:"dominance_ratio"`
	// MinVelocity is in px/ms.
	MinVelocity float64 `mapstructure:"min_velocity" yaml:"min_velocity" toml:"min_velocity" json:"min_velocity"`
	// ScrollDirection is auto, natural or traditional. Auto is natural on darwin.
	ScrollDirection ScrollDirection `mapstructure:"scroll_direction" yaml:"scroll_direction" toml:"scroll_direction" json:"scroll_direction"`
}

// WindowConfig controls shell window geometry.
type WindowConfig struct {
	DefaultWidth  int `mapstructure:"default_width" yaml:"default_width" toml:"default_width" json:"default_width"`
	DefaultHeight int `mapstructure:"default_height" yaml:"default_height" toml:"default_height" json:"default_height"`
	MinSize       int `mapstructure:"min_size" yaml:"min_size" toml:"min_size" json:"min_size"`
	MaxSize       int `mapstructure:"max_size" yaml:"max_size" toml:"max_size" json:"max_size"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format"`
	// EnableFileLog writes a rotated JSON log under LogDir.
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb" json:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups" json:"max_backups"`
	MaxAgeDays    int    `mapstructure:"max_age_days" yaml:"max_age_days" toml:"max_age_days" json:"max_age_days"`
	Compress      bool   `mapstructure:"compress" yaml:"compress" toml:"compress" json:"compress"`
}
