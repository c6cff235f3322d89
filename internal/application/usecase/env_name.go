package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/logging"
)

// DefaultEnvName is used when the environment string carries no name.
const DefaultEnvName = "tabshell"

var envNamePattern = regexp.MustCompile(`Current environment: (.+?) \(`)

// ParseEnvName extracts the environment name from an env info string.
func ParseEnvName(info string) string {
	m := envNamePattern.FindStringSubmatch(info)
	if len(m) < 2 || strings.TrimSpace(m[1]) == "" {
		return DefaultEnvName
	}
	return strings.TrimSpace(m[1])
}

// FormatEnvInfo renders the env info string ParseEnvName understands.
func FormatEnvInfo(name, key string) string {
	return fmt.Sprintf("Current environment: %s (%s)", name, key)
}

// FormatWindowTitle joins a tab title and the environment name.
func FormatWindowTitle(title, env string) string {
	if env == "" {
		return title
	}
	return title + " - " + env
}

// ResolveEnvName asks the host for its env info and parses it. Failures
// fall back to the default name.
func ResolveEnvName(ctx context.Context, info port.EnvironmentInfo) string {
	if info == nil {
		return DefaultEnvName
	}
	s, err := info.EnvInfo(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("environment info unavailable")
		return DefaultEnvName
	}
	return ParseEnvName(s)
}
