package webkit

import (
	"context"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"

	"github.com/bnema/tabshell/internal/logging"
)

// SettingsConfig is the subset of configuration applied to every WebView.
type SettingsConfig struct {
	DeveloperExtras bool
	UserAgentSuffix string
}

// ApplySettings configures settings for a shell tab.
func ApplySettings(ctx context.Context, settings *webkit.Settings, cfg SettingsConfig) {
	if settings == nil {
		return
	}
	settings.SetEnableJavascript(true)
	settings.SetJavascriptCanOpenWindowsAutomatically(false)
	settings.SetEnableDeveloperExtras(cfg.DeveloperExtras)
	settings.SetEnableWriteConsoleMessagesToStdout(cfg.DeveloperExtras)
	settings.SetEnableBackForwardNavigationGestures(false)
	if cfg.UserAgentSuffix != "" {
		settings.SetUserAgentWithApplicationDetails(cfg.UserAgentSuffix, "")
	}

	logging.FromContext(ctx).Debug().
		Bool("developer_extras", cfg.DeveloperExtras).
		Msg("settings applied")
}
