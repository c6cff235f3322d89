// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the application layer to
// remain independent of specific implementations (WebKit, GTK, HTTP).
package port

import (
	"context"

	"github.com/bnema/tabshell/internal/domain/entity"
)

// NetworkBridge performs network I/O on behalf of intercepted page calls.
type NetworkBridge interface {
	// ProxyRequest sends the record and returns the transport's response.
	// An error means the call failed as a whole (not an HTTP error status).
	ProxyRequest(ctx context.Context, record *entity.RequestRecord) (*entity.ResponseRecord, error)
}

// WindowID identifies a host window.
type WindowID string

// StorageSnapshot is the web storage handed to a newly created window.
type StorageSnapshot struct {
	Local   map[string]string `json:"localStorage,omitempty"`
	Session map[string]string `json:"sessionStorage,omitempty"`
}

// WindowHost is the window-level half of the host bridge.
type WindowHost interface {
	// CreateWindow opens a new shell window at url. snapshot may be nil.
	CreateWindow(ctx context.Context, url string, snapshot *StorageSnapshot) (WindowID, error)
	SetWindowTitle(ctx context.Context, title string) error
	SetNativeZoom(ctx context.Context, factor float64) error
}

// EnvironmentInfo reports the display string describing the backend environment.
type EnvironmentInfo interface {
	EnvInfo(ctx context.Context) (string, error)
}
