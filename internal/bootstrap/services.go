// Package bootstrap assembles the shell from configuration.
package bootstrap

import (
	"context"
	"crypto/rsa"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/tabshell/internal/application/usecase"
	"github.com/bnema/tabshell/internal/infrastructure/bridge"
	"github.com/bnema/tabshell/internal/infrastructure/config"
	"github.com/bnema/tabshell/internal/infrastructure/debug"
	"github.com/bnema/tabshell/internal/infrastructure/env"
	"github.com/bnema/tabshell/internal/logging"
)

// Services are the process-wide, window-independent parts of the shell.
type Services struct {
	Config      *config.Config
	Fingerprint bridge.Fingerprint
	Bridge      *bridge.HTTPBridge
	Debug       *debug.Ring
	Interceptor *usecase.Interceptor
	Env         *env.Provider
	EnvName     string
}

// ParallelInitInput feeds ParallelInit.
type ParallelInitInput struct {
	Config          *config.Config
	FingerprintPath string
	Timer           *StartupTimer
}

// ParallelInitResult is what the independent init steps produce.
type ParallelInitResult struct {
	Fingerprint bridge.Fingerprint
	SigningKey  *rsa.PublicKey
}

// ParallelInit prepares directories, the device fingerprint and the signing
// key concurrently and returns the first failure.
func ParallelInit(ctx context.Context, in ParallelInitInput) (*ParallelInitResult, error) {
	var (
		res ParallelInitResult
		g   errgroup.Group
	)

	g.Go(func() error {
		if err := config.EnsureDirectories(); err != nil {
			return fmt.Errorf("ensure directories: %w", err)
		}
		if in.Timer != nil {
			in.Timer.Mark("dirs")
		}
		return nil
	})

	g.Go(func() error {
		fp, err := bridge.LoadOrCreateFingerprint(in.FingerprintPath)
		if err != nil {
			// A fresh fingerprint is still usable for this run.
			logging.FromContext(ctx).Warn().Err(err).Msg("fingerprint not persisted")
		}
		res.Fingerprint = fp
		if in.Timer != nil {
			in.Timer.Mark("fingerprint")
		}
		return nil
	})

	g.Go(func() error {
		path := in.Config.Bridge.SigningKeyPath
		if path == "" {
			return nil
		}
		key, err := bridge.LoadPublicKey(path)
		if err != nil {
			return fmt.Errorf("load signing key: %w", err)
		}
		res.SigningKey = key
		if in.Timer != nil {
			in.Timer.Mark("signing_key")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &res, nil
}

// NewServices builds the bridge, debug ring and interceptor, then resolves
// the environment name.
func NewServices(ctx context.Context, cfg *config.Config, init *ParallelInitResult) *Services {
	var opts []bridge.Option
	if init.SigningKey != nil {
		opts = append(opts, bridge.WithSigner(bridge.NewSigner(init.SigningKey, init.Fingerprint.String())))
	}
	httpBridge := bridge.NewHTTPBridge(BridgeConfig(cfg), opts...)
	ring := debug.NewRing(cfg.Interception.DebugBufferSize, cfg.Interception.DebugEcho)

	interceptor := usecase.NewInterceptor(
		usecase.NewRequestMarshaller(cfg.App.Origin),
		httpBridge,
		InterceptorConfig(cfg),
		usecase.WithDebugSink(ring),
	)

	var remote *bridge.HTTPBridge
	if cfg.Bridge.EnvInfoPath != "" && cfg.Bridge.BaseURL != "" {
		remote = httpBridge
	}
	provider := newEnvProvider(cfg, remote)

	s := &Services{
		Config:      cfg,
		Fingerprint: init.Fingerprint,
		Bridge:      httpBridge,
		Debug:       ring,
		Interceptor: interceptor,
		Env:         provider,
	}
	s.EnvName = usecase.ResolveEnvName(ctx, provider)
	return s
}

func newEnvProvider(cfg *config.Config, remote *bridge.HTTPBridge) *env.Provider {
	if remote == nil {
		return env.NewProvider(cfg.App.EnvName, cfg.App.EnvKey, nil)
	}
	return env.NewProvider(cfg.App.EnvName, cfg.App.EnvKey, remote)
}
