package handlers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/bnema/tabshell/internal/application/usecase"
	"github.com/bnema/tabshell/internal/infrastructure/webkit/messaging"
	"github.com/bnema/tabshell/internal/logging"
)

// MsgFetch is posted by the page shim for every intercepted call.
const MsgFetch = "fetch"

// Fetcher performs a page call. usecase.Interceptor implements it.
type Fetcher interface {
	Fetch(ctx context.Context, call usecase.Call) (*usecase.PageResponse, error)
}

type formFilePayload struct {
	Name string `json:"name"`
	Type string `json:"type"`
	// Data is base64.
	Data string `json:"data"`
}

type formEntryPayload struct {
	Name  string           `json:"name"`
	Value string           `json:"value,omitempty"`
	File  *formFilePayload `json:"file,omitempty"`
}

type bodyPayload struct {
	// Kind is "text", "form" or empty for no body.
	Kind    string             `json:"kind"`
	Text    string             `json:"text,omitempty"`
	Entries []formEntryPayload `json:"entries,omitempty"`
}

type fetchPayload struct {
	Method  string       `json:"method"`
	URL     string       `json:"url"`
	Headers [][2]string  `json:"headers"`
	Body    *bodyPayload `json:"body,omitempty"`
}

type fetchResult struct {
	Status     int               `json:"status"`
	StatusText string            `json:"statusText"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
	IsBinary   bool              `json:"isBinary"`
}

// FetchHandler turns shim fetch messages into interceptor calls.
type FetchHandler struct {
	fetcher Fetcher
}

// NewFetchHandler creates a FetchHandler.
func NewFetchHandler(f Fetcher) *FetchHandler {
	return &FetchHandler{fetcher: f}
}

// Handle implements messaging.MessageHandler.
func (h *FetchHandler) Handle(ctx context.Context, contextID uint64, payload json.RawMessage) (any, error) {
	var p fetchPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("invalid fetch payload: %w", err)
	}
	if p.URL == "" {
		return nil, fmt.Errorf("invalid fetch payload: missing url")
	}

	ctx = logging.WithURL(ctx, p.URL)
	logging.FromContext(ctx).Debug().
		Uint64("context_id", contextID).
		Str("method", p.Method).
		Msg("intercepted page call")

	resp, err := h.fetcher.Fetch(ctx, toCall(p))
	if err != nil {
		return nil, err
	}
	return toResult(resp), nil
}

func toCall(p fetchPayload) usecase.Call {
	call := usecase.Call{
		Method:  p.Method,
		URL:     p.URL,
		Headers: usecase.HeaderPairs(p.Headers),
	}
	if p.Body == nil {
		return call
	}
	switch p.Body.Kind {
	case "text":
		call.Body = p.Body.Text
	case "form":
		form := make(usecase.FormEntries, 0, len(p.Body.Entries))
		for _, e := range p.Body.Entries {
			entry := usecase.FormEntry{Name: e.Name, Value: e.Value}
			if e.File != nil {
				entry.File = &usecase.FormFile{
					FileName:    e.File.Name,
					ContentType: e.File.Type,
					Content:     base64.NewDecoder(base64.StdEncoding, bytes.NewReader([]byte(e.File.Data))),
				}
			}
			form = append(form, entry)
		}
		call.Body = form
	}
	return call
}

func toResult(resp *usecase.PageResponse) fetchResult {
	out := fetchResult{
		Status:     resp.Status,
		StatusText: resp.StatusText,
		Headers:    make(map[string]string, len(resp.Headers)),
		IsBinary:   resp.IsBinary,
	}
	for k, v := range resp.Headers {
		out.Headers[k] = v
	}
	if resp.IsBinary {
		out.Body = base64.StdEncoding.EncodeToString(resp.Body)
	} else {
		out.Body = resp.Text()
	}
	return out
}

var _ messaging.MessageHandler = (*FetchHandler)(nil)
