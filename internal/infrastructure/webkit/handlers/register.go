// Package handlers implements the script message handlers of a shell window.
package handlers

import (
	"context"

	"github.com/bnema/tabshell/internal/infrastructure/webkit/messaging"
	"github.com/bnema/tabshell/internal/logging"
)

// Config holds all dependencies for message handlers.
type Config struct {
	Fetcher Fetcher
	Shell   Shell
	// Invoke schedules work on the UI thread.
	Invoke func(fn func())
}

// RegisterAll registers every handler whose dependency is present.
func RegisterAll(ctx context.Context, router *messaging.Router, cfg Config) error {
	log := logging.FromContext(ctx)

	if cfg.Fetcher != nil {
		if err := router.RegisterHandler(MsgFetch, NewFetchHandler(cfg.Fetcher)); err != nil {
			return err
		}
		log.Debug().Str("type", MsgFetch).Msg("registered message handler")
	}

	if cfg.Shell != nil {
		if err := router.RegisterHandler(MsgShell, NewShellHandler(cfg.Shell, cfg.Invoke)); err != nil {
			return err
		}
		log.Debug().Str("type", MsgShell).Msg("registered message handler")
	}

	return nil
}
