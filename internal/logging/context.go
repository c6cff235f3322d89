package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the context's logger, or a disabled one.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

func withField(ctx context.Context, key, value string) context.Context {
	return WithContext(ctx, FromContext(ctx).With().Str(key, value).Logger())
}

// WithComponent tags every entry with the subsystem name.
func WithComponent(ctx context.Context, component string) context.Context {
	return withField(ctx, "component", component)
}

// WithTabID tags every entry with a tab id.
func WithTabID(ctx context.Context, tabID string) context.Context {
	return withField(ctx, "tab_id", tabID)
}

// WithURL tags every entry with the page URL.
func WithURL(ctx context.Context, url string) context.Context {
	return withField(ctx, "url", url)
}

// WithWindow tags every entry with the shell window id.
func WithWindow(ctx context.Context, window string) context.Context {
	return withField(ctx, "window", window)
}
