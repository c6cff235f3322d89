// Package env resolves the backend environment description.
package env

import (
	"context"
	"errors"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/application/usecase"
)

// ErrNoSource means neither a configured name nor a remote source exists.
var ErrNoSource = errors.New("no environment source configured")

// Provider implements port.EnvironmentInfo. A configured name wins over the
// remote source.
type Provider struct {
	name   string
	key    string
	remote port.EnvironmentInfo
}

// NewProvider creates a provider. remote may be nil.
func NewProvider(name, key string, remote port.EnvironmentInfo) *Provider {
	if key == "" {
		key = name
	}
	return &Provider{name: name, key: key, remote: remote}
}

// EnvInfo returns the env info string.
func (p *Provider) EnvInfo(ctx context.Context) (string, error) {
	if p.name != "" {
		return usecase.FormatEnvInfo(p.name, p.key), nil
	}
	if p.remote == nil {
		return "", ErrNoSource
	}
	return p.remote.EnvInfo(ctx)
}

var _ port.EnvironmentInfo = (*Provider)(nil)
