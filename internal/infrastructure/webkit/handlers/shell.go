package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/application/usecase"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/infrastructure/webkit/messaging"
	"github.com/bnema/tabshell/internal/infrastructure/webkit/shim"
	"github.com/bnema/tabshell/internal/logging"
)

// MsgShell carries window.tabshell calls.
const MsgShell = "shell"

// Shell is the facade page scripts drive. usecase.ShellAPI implements it.
type Shell interface {
	OpenWindow(ctx context.Context, url string, snapshot *port.StorageSnapshot) (port.WindowID, error)
	Zoom() usecase.ZoomController
	CreateTab(ctx context.Context, url string) (entity.TabID, error)
	CloseTab(ctx context.Context, id entity.TabID) error
	ActivateTab(ctx context.Context, id entity.TabID) error
	DuplicateTab(ctx context.Context, id entity.TabID) (entity.TabID, error)
	ReorderTab(ctx context.Context, dragged, target entity.TabID) bool
	SearchTabs(query string) []entity.TabSummary
	ListTabs() []entity.TabSummary
}

type shellPayload struct {
	Action string  `json:"action"`
	URL    string  `json:"url,omitempty"`
	ID     string  `json:"id,omitempty"`
	Target string  `json:"target,omitempty"`
	Query  string  `json:"query,omitempty"`
	Factor float64 `json:"factor,omitempty"`
	// Snapshot is the page's serialized web storage, carried into a new window.
	Snapshot string `json:"snapshot,omitempty"`
}

type tabView struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	Title  string `json:"title"`
	State  string `json:"state"`
	Active bool   `json:"active"`
}

// ShellHandler runs shell calls on the UI thread.
type ShellHandler struct {
	shell  Shell
	invoke func(fn func())
}

// NewShellHandler creates a ShellHandler. invoke schedules fn on the UI
// thread; nil runs inline.
func NewShellHandler(shell Shell, invoke func(fn func())) *ShellHandler {
	if invoke == nil {
		invoke = func(fn func()) { fn() }
	}
	return &ShellHandler{shell: shell, invoke: invoke}
}

// Handle implements messaging.MessageHandler.
func (h *ShellHandler) Handle(ctx context.Context, contextID uint64, payload json.RawMessage) (any, error) {
	var p shellPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("invalid shell payload: %w", err)
	}
	logging.FromContext(ctx).Debug().
		Uint64("context_id", contextID).
		Str("action", p.Action).
		Msg("shell call")

	var (
		result any
		err    error
	)
	done := make(chan struct{})
	h.invoke(func() {
		defer close(done)
		defer logging.Recover(ctx, "shell "+p.Action)
		result, err = h.dispatch(ctx, p)
	})

	select {
	case <-done:
		return result, err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (h *ShellHandler) dispatch(ctx context.Context, p shellPayload) (any, error) {
	switch p.Action {
	case "openWindow":
		id, err := h.shell.OpenWindow(ctx, p.URL, shim.ParseSnapshot([]byte(p.Snapshot)))
		return string(id), err
	case "createTab":
		id, err := h.shell.CreateTab(ctx, p.URL)
		return string(id), err
	case "closeTab":
		return nil, h.shell.CloseTab(ctx, entity.TabID(p.ID))
	case "activateTab":
		return nil, h.shell.ActivateTab(ctx, entity.TabID(p.ID))
	case "duplicateTab":
		id, err := h.shell.DuplicateTab(ctx, entity.TabID(p.ID))
		return string(id), err
	case "reorderTab":
		return h.shell.ReorderTab(ctx, entity.TabID(p.ID), entity.TabID(p.Target)), nil
	case "searchTabs":
		return tabViews(h.shell.SearchTabs(p.Query)), nil
	case "listTabs":
		return tabViews(h.shell.ListTabs()), nil
	case "zoom.get":
		return h.shell.Zoom().Get(), nil
	case "zoom.set":
		return h.shell.Zoom().Set(ctx, p.Factor), nil
	case "zoom.in":
		return h.shell.Zoom().ZoomIn(ctx), nil
	case "zoom.out":
		return h.shell.Zoom().ZoomOut(ctx), nil
	case "zoom.reset":
		return h.shell.Zoom().Reset(ctx), nil
	default:
		return nil, fmt.Errorf("unknown shell action %q", p.Action)
	}
}

func tabViews(tabs []entity.TabSummary) []tabView {
	out := make([]tabView, 0, len(tabs))
	for _, t := range tabs {
		out = append(out, tabView{
			ID:     string(t.ID),
			URL:    t.URL,
			Title:  t.Title,
			State:  t.State.String(),
			Active: t.Active,
		})
	}
	return out
}

var _ messaging.MessageHandler = (*ShellHandler)(nil)
