package port

import (
	"context"

	"github.com/bnema/tabshell/internal/domain/entity"
)

// DebugSink receives the debug echo of intercepted calls.
type DebugSink interface {
	Record(ctx context.Context, info *entity.DebugInfo)
}
