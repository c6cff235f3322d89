package port

import "context"

// NotificationType indicates the visual style of a notification.
type NotificationType int

const (
	// NotificationInfo is for informational messages.
	NotificationInfo NotificationType = iota
	// NotificationError is for error messages.
	NotificationError
	// NotificationWarning is for warning messages.
	NotificationWarning
)

// String returns a human-readable representation of the notification type.
func (t NotificationType) String() string {
	switch t {
	case NotificationError:
		return "error"
	case NotificationWarning:
		return "warning"
	default:
		return "info"
	}
}

// Notification is the user-visible toast surface.
type Notification interface {
	// Show displays message. Duration is in milliseconds; 0 uses the default.
	Show(ctx context.Context, message string, notifType NotificationType, durationMs int)
	// ShowZoom displays the zoom level indicator.
	ShowZoom(ctx context.Context, zoomPercent int)
}
