package port

import (
	"context"
	"errors"

	"github.com/bnema/tabshell/internal/domain/entity"
)

var (
	// ErrContextNotReady means the context cannot run scripts yet.
	ErrContextNotReady = errors.New("rendering context not ready")
	// ErrContextInaccessible means the context's document is off limits
	// (cross-origin restriction or similar).
	ErrContextInaccessible = errors.New("rendering context inaccessible")
	// ErrContextDestroyed means the context was already torn down.
	ErrContextDestroyed = errors.New("rendering context destroyed")
)

// ContextID uniquely identifies a rendering context.
type ContextID uint64

// InputEvent is a keyboard or wheel event forwarded out of a context.
type InputEvent interface {
	isInputEvent()
}

// KeyEvent is a key press. Key is the lowercase key name ("t", "1", "+").
type KeyEvent struct {
	Key   string
	Ctrl  bool
	Meta  bool
	Shift bool
	Alt   bool
}

// WheelEvent is a scroll step. Negative DeltaY scrolls up.
type WheelEvent struct {
	DeltaY float64
	Ctrl   bool
	Meta   bool
}

func (KeyEvent) isInputEvent()   {}
func (WheelEvent) isInputEvent() {}

// RenderingContext is one isolated, independently navigable document surface.
type RenderingContext interface {
	ID() ContextID
	LoadURL(url string) error
	Reload() error
	// URI returns the live navigation target, or ErrContextInaccessible.
	URI() (string, error)
	// Title returns the document title, or ErrContextInaccessible.
	Title() (string, error)
	SetZoom(factor float64) error
	SetVisible(visible bool)
	// InstallInterception injects the network interception entry points.
	// Returns ErrContextNotReady while the context cannot run scripts.
	InstallInterception() error
	// ForwardInput delivers key and wheel events seen inside the context.
	// The returned handler consumes the event when it returns true.
	ForwardInput(handler func(InputEvent) bool) (cancel func(), err error)
	OnLoadFinished(fn func()) (cancel func())
	// ObserveTitle reports title mutations until cancelled.
	ObserveTitle(fn func(title string)) (cancel func(), err error)
	// Detach removes the context from its container.
	Detach()
	Destroy()
}

// ContextFactory creates rendering contexts for tabs.
type ContextFactory interface {
	NewContext(ctx context.Context, tabID entity.TabID) (RenderingContext, error)
}
