package webkit

import (
	"context"
	"fmt"
	"sync"

	"github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/logging"
)

const (
	defaultToastMs = 2500
	zoomToastMs    = 1000
)

// Toast shows transient messages over a window's content. It implements
// port.Notification and may be called from any goroutine.
type Toast struct {
	label *gtk.Label

	mu     sync.Mutex
	hide   glib.SourceHandle
	active bool
}

// NewToast creates a hidden toast label meant for an overlay.
func NewToast() *Toast {
	label := gtk.NewLabel("")
	label.AddCSSClass("toast")
	label.SetHAlign(gtk.AlignCenter)
	label.SetVAlign(gtk.AlignEnd)
	label.SetMarginBottom(24)
	label.SetVisible(false)
	label.SetCanTarget(false)
	return &Toast{label: label}
}

// Widget returns the toast label.
func (t *Toast) Widget() gtk.Widgetter {
	return t.label
}

// Show implements port.Notification.
func (t *Toast) Show(ctx context.Context, message string, notifType port.NotificationType, durationMs int) {
	if durationMs <= 0 {
		durationMs = defaultToastMs
	}
	logging.FromContext(ctx).Debug().
		Str("type", notifType.String()).
		Str("message", message).
		Msg("toast")
	RunOnMainThread(func() {
		t.show(message, notifType, durationMs)
	})
}

// ShowZoom implements port.Notification.
func (t *Toast) ShowZoom(ctx context.Context, zoomPercent int) {
	t.Show(ctx, fmt.Sprintf("Zoom: %d%%", zoomPercent), port.NotificationInfo, zoomToastMs)
}

func (t *Toast) show(message string, notifType port.NotificationType, durationMs int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.active {
		glib.SourceRemove(t.hide)
	}
	for _, c := range []string{"toast-info", "toast-error", "toast-warning"} {
		t.label.RemoveCSSClass(c)
	}
	t.label.AddCSSClass("toast-" + notifType.String())
	t.label.SetLabel(message)
	t.label.SetVisible(true)

	t.active = true
	t.hide = glib.TimeoutAdd(uint(durationMs), func() bool {
		t.mu.Lock()
		t.active = false
		t.mu.Unlock()
		t.label.SetVisible(false)
		return false
	})
}

var _ port.Notification = (*Toast)(nil)
