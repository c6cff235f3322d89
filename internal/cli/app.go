// Package cli holds the state shared by the command line commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/bnema/tabshell/internal/cli/styles"
	"github.com/bnema/tabshell/internal/domain/build"
	"github.com/bnema/tabshell/internal/infrastructure/config"
	"github.com/bnema/tabshell/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// LoadErr is set when config.toml could not be loaded; Config then
	// holds the defaults.
	LoadErr error

	ctx context.Context
}

// NewApp loads the configuration rooted at configDir, or the XDG config
// directory when configDir is empty.
func NewApp(configDir string) (*App, error) {
	var (
		mgr *config.Manager
		err error
	)
	if configDir == "" {
		mgr, err = config.NewManager()
	} else {
		mgr, err = config.NewManagerAt(configDir)
	}
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}

	app := &App{Manager: mgr, Theme: styles.NewTheme()}
	if err := mgr.Load(); err != nil {
		app.LoadErr = err
	}
	app.Config = mgr.Get()

	// CLI output is the command's own; the logger stays quiet unless asked.
	level := "warn"
	if env := os.Getenv("TABSHELL_LOG_LEVEL"); env != "" {
		level = env
	}
	logger := logging.NewFromConfigValues(level, app.Config.Logging.Format, nil)
	app.ctx = logging.WithContext(context.Background(), logger)
	return app, nil
}

// Ctx returns the context carrying the CLI logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
