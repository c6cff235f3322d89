package logging

import (
	"context"
	"runtime/debug"
)

// Recover logs a panic raised in an event callback instead of letting it
// take down the main loop. Call it deferred.
func Recover(ctx context.Context, where string) {
	if r := recover(); r != nil {
		FromContext(ctx).Error().
			Interface("panic", r).
			Str("where", where).
			Bytes("stack", debug.Stack()).
			Msg("recovered from panic")
	}
}
