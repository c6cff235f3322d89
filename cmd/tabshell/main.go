package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/bnema/tabshell/internal/bootstrap"
	"github.com/bnema/tabshell/internal/cli/cmd"
	"github.com/bnema/tabshell/internal/domain/build"
	"github.com/bnema/tabshell/internal/domain/url"
	"github.com/bnema/tabshell/internal/infrastructure/config"
	"github.com/bnema/tabshell/internal/infrastructure/webkit"
	"github.com/bnema/tabshell/internal/logging"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	enableCrashForensics()

	// browse runs the GUI without going through cobra
	if len(os.Args) > 1 && os.Args[1] == "browse" {
		startURL := ""
		if len(os.Args) > 2 {
			startURL = url.Normalize(os.Args[2])
		}
		os.Args = os.Args[:1]
		os.Exit(runGUI(startURL))
		return
	}

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.Execute()
}

func runGUI(startURL string) int {
	runtime.LockOSThread()
	timer := bootstrap.NewStartupTimer()

	manager, cfg := initConfig()
	timer.Mark("config")

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format, bootstrap.LogFileConfig(cfg))
	ctx := logging.WithContext(context.Background(), logger)
	log := logging.FromContext(ctx)
	timer.Mark("logger")
	logCoreDumpLimits(ctx)

	fpPath, err := config.GetFingerprintFile()
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve fingerprint path")
		return 1
	}
	initResult, err := bootstrap.ParallelInit(ctx, bootstrap.ParallelInitInput{
		Config:          cfg,
		FingerprintPath: fpPath,
		Timer:           timer,
	})
	if err != nil {
		log.Error().Err(err).Msg("startup failed")
		return 1
	}

	services := bootstrap.NewServices(ctx, cfg, initResult)
	timer.Mark("services")

	gui := bootstrap.NewGUI(ctx, services)
	if manager != nil {
		watchConfig(ctx, manager, gui)
	}
	setupSignalHandler(ctx, gui)

	if startURL == "" {
		startURL = cfg.App.StartURL
	}
	timer.Mark("gui")
	timer.Log(ctx)

	return gui.Run(startURL)
}

// initConfig returns defaults with a nil manager when the config cannot be loaded.
func initConfig() (*config.Manager, *config.Config) {
	log := logging.NewFromEnv()
	manager, err := config.NewManager()
	if err != nil {
		log.Warn().Err(err).Msg("config unavailable, using defaults")
		return nil, config.DefaultConfig()
	}
	if err := manager.Load(); err != nil {
		log.Warn().Err(err).Msg("failed to load config, using defaults")
		return manager, config.DefaultConfig()
	}
	return manager, manager.Get()
}

func watchConfig(ctx context.Context, manager *config.Manager, gui *bootstrap.GUI) {
	log := logging.FromContext(ctx)
	manager.OnConfigChange(func(cfg *config.Config) {
		zerolog.SetGlobalLevel(logging.ParseLevel(cfg.Logging.Level))
		webkit.RunOnMainThread(func() {
			gui.ApplyConfig(cfg)
		})
	})
	if err := manager.Watch(); err != nil {
		log.Warn().Err(err).Msg("config hot reload disabled")
	}
}

func setupSignalHandler(ctx context.Context, gui *bootstrap.GUI) {
	log := logging.FromContext(ctx)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		signal.Stop(sigCh)
		log.Info().Str("signal", sig.String()).Msg("received interrupt, quitting")
		gui.Quit()
	}()
}
