package config

// Default configuration constants
const (
	defaultStartURL = "about:blank"
	defaultEnvName  = "tabshell"

	// Tabs
	defaultMaxTabs        = 20
	defaultTitlePollMs    = 1000
	defaultRetryAttempts  = 5
	defaultRetryBackoffMs = 100

	// Interception
	defaultAPIPrefix       = "/base_api/"
	defaultDebugBufferSize = 200

	// Bridge
	defaultBridgeTimeoutMs  = 30000
	defaultRateLimit        = 20.0
	defaultRateBurst        = 40
	defaultSkipHeaderPrefix = "tabshell-"
	defaultEnvInfoPath      = "/base_api/env"

	// Zoom
	defaultZoom             = 1.0
	defaultDebounceBaseMs   = 60
	defaultDebouncePerTabMs = 15
	defaultDebounceMaxMs    = 300

	// Drag
	defaultDragThreshold = 3.0
	defaultTearOffMargin = 100.0

	// Gesture
	defaultGestureWindowMs = 300
	defaultMinDistance     = 80.0
	defaultDominanceRatio  = 2.0
	defaultMinVelocity     = 0.3

	// Window
	defaultWindowWidth  = 1280
	defaultWindowHeight = 800
	defaultWindowMin    = 200
	defaultWindowMax    = 3000

	// Logging
	defaultMaxLogSizeMB  = 10
	defaultMaxLogBackups = 3
	defaultMaxLogAgeDays = 7
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			StartURL: defaultStartURL,
			EnvName:  "",
		},
		Tabs: TabsConfig{
			MaxTabs:        defaultMaxTabs,
			TitlePollMs:    defaultTitlePollMs,
			RetryAttempts:  defaultRetryAttempts,
			RetryBackoffMs: defaultRetryBackoffMs,
		},
		Interception: InterceptionConfig{
			APIPrefix:       defaultAPIPrefix,
			InternalSchemes: []string{"ipc://localhost", "tabshell://"},
			DebugEcho:       false,
			DebugBufferSize: defaultDebugBufferSize,
		},
		Bridge: BridgeConfig{
			TimeoutMs:        defaultBridgeTimeoutMs,
			RateLimit:        defaultRateLimit,
			RateBurst:        defaultRateBurst,
			SkipHeaderPrefix: defaultSkipHeaderPrefix,
			EnvInfoPath:      defaultEnvInfoPath,
		},
		Zoom: ZoomConfig{
			Default:          defaultZoom,
			DebounceBaseMs:   defaultDebounceBaseMs,
			DebouncePerTabMs: defaultDebouncePerTabMs,
			DebounceMaxMs:    defaultDebounceMaxMs,
		},
		Drag: DragConfig{
			Threshold:     defaultDragThreshold,
			TearOffMargin: defaultTearOffMargin,
		},
		Gesture: GestureConfig{
			WindowMs:        defaultGestureWindowMs,
			MinDistance:     defaultMinDistance,
			DominanceRatio:  defaultDominanceRatio,
			MinVelocity:     defaultMinVelocity,
			ScrollDirection: ScrollDirectionAuto,
		},
		Window: WindowConfig{
			DefaultWidth:  defaultWindowWidth,
			DefaultHeight: defaultWindowHeight,
			MinSize:       defaultWindowMin,
			MaxSize:       defaultWindowMax,
		},
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			EnableFileLog: false,
			LogDir:        getDefaultLogDir(),
			MaxSizeMB:     defaultMaxLogSizeMB,
			MaxBackups:    defaultMaxLogBackups,
			MaxAgeDays:    defaultMaxLogAgeDays,
			Compress:      true,
		},
	}
}
