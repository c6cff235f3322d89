package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bnema/tabshell/internal/domain/entity"
)

// ErrInvalidState is returned when a callback request method is called out of order.
var ErrInvalidState = errors.New("invalid request state")

// ReadyState is the lifecycle of a CallbackRequest.
type ReadyState int

const (
	StateUnsent ReadyState = 0
	StateOpened ReadyState = 1
	StateDone   ReadyState = 4
)

func (s ReadyState) String() string {
	switch s {
	case StateUnsent:
		return "unsent"
	case StateOpened:
		return "opened"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("ReadyState(%d)", int(s))
	}
}

type requestEvent int

const (
	eventOpen requestEvent = iota
	eventComplete
)

// readyTransitions lists every legal state change.
var readyTransitions = map[ReadyState]map[requestEvent]ReadyState{
	StateUnsent: {eventOpen: StateOpened},
	StateOpened: {eventOpen: StateOpened, eventComplete: StateDone},
	StateDone:   {eventOpen: StateOpened},
}

// FetchFunc performs one call.
type FetchFunc func(ctx context.Context, call Call) (*PageResponse, error)

// CallbackRequest is the event-driven request object exposed to pages.
// Callbacks run on the goroutine completing the request unless Dispatch is set.
type CallbackRequest struct {
	OnReadyStateChange func()
	OnLoad             func()
	OnError            func(err error)
	// Dispatch, when set, runs callbacks (e.g. on the UI thread).
	Dispatch func(fn func())

	fetch FetchFunc

	mu      sync.Mutex
	state   ReadyState
	method  string
	url     string
	headers entity.Headers
	sending bool
	resp    *PageResponse
	err     error
	done    chan struct{}
}

// NewCallbackRequest creates an unsent request backed by fetch.
func NewCallbackRequest(fetch FetchFunc) *CallbackRequest {
	return &CallbackRequest{fetch: fetch, state: StateUnsent}
}

func (r *CallbackRequest) transition(ev requestEvent) error {
	next, ok := readyTransitions[r.state][ev]
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidState, r.state)
	}
	r.state = next
	return nil
}

// Open records method and URL and resets any previous response.
func (r *CallbackRequest) Open(method, url string) error {
	r.mu.Lock()
	if r.sending {
		r.mu.Unlock()
		return fmt.Errorf("%w: request in flight", ErrInvalidState)
	}
	if err := r.transition(eventOpen); err != nil {
		r.mu.Unlock()
		return err
	}
	r.method = method
	r.url = url
	r.headers = entity.Headers{}
	r.resp = nil
	r.err = nil
	r.mu.Unlock()

	r.emit(r.OnReadyStateChange)
	return nil
}

// SetRequestHeader adds a header. Only valid while opened.
func (r *CallbackRequest) SetRequestHeader(name, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StateOpened || r.sending {
		return fmt.Errorf("%w: %s", ErrInvalidState, r.state)
	}
	r.headers.Set(name, value)
	return nil
}

// Send starts the call in the background. The outcome is reported through
// the callbacks and Wait.
func (r *CallbackRequest) Send(ctx context.Context, body any) error {
	r.mu.Lock()
	if r.state != StateOpened || r.sending {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrInvalidState, r.state)
	}
	r.sending = true
	r.done = make(chan struct{})
	call := Call{Method: r.method, URL: r.url, Headers: r.headers.Clone(), Body: body}
	done := r.done
	r.mu.Unlock()

	go func() {
		defer close(done)
		resp, err := r.fetch(ctx, call)
		r.complete(resp, err)
	}()
	return nil
}

func (r *CallbackRequest) complete(resp *PageResponse, err error) {
	r.mu.Lock()
	r.sending = false
	r.resp = resp
	r.err = err
	_ = r.transition(eventComplete)
	r.mu.Unlock()

	r.emit(r.OnReadyStateChange)
	if err != nil {
		if r.OnError != nil {
			r.emit(func() { r.OnError(err) })
		}
		return
	}
	r.emit(r.OnLoad)
}

func (r *CallbackRequest) emit(fn func()) {
	if fn == nil {
		return
	}
	if r.Dispatch != nil {
		r.Dispatch(fn)
		return
	}
	fn()
}

// Wait blocks until the in-flight call completes and returns its error.
func (r *CallbackRequest) Wait(ctx context.Context) error {
	r.mu.Lock()
	done := r.done
	r.mu.Unlock()
	if done == nil {
		return fmt.Errorf("%w: not sent", ErrInvalidState)
	}
	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// ReadyState returns the current state.
func (r *CallbackRequest) ReadyState() ReadyState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Status returns the response status, or 0 before completion or after an error.
func (r *CallbackRequest) Status() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.resp == nil {
		return 0
	}
	return r.resp.Status
}

// StatusText returns the response status text.
func (r *CallbackRequest) StatusText() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.resp == nil {
		return ""
	}
	return r.resp.StatusText
}

// ResponseText returns the body as text.
func (r *CallbackRequest) ResponseText() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.resp == nil {
		return ""
	}
	return r.resp.Text()
}

// Response returns the full response, nil until done.
func (r *CallbackRequest) Response() *PageResponse {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resp
}

// ResponseHeader returns one response header, case-insensitively.
func (r *CallbackRequest) ResponseHeader(name string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.resp == nil {
		return ""
	}
	return r.resp.Headers.Get(name)
}

// AllResponseHeaders renders headers as "name: value\r\n" lines sorted by name.
func (r *CallbackRequest) AllResponseHeaders() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.resp == nil {
		return ""
	}
	var b strings.Builder
	for _, k := range r.resp.Headers.Keys() {
		b.WriteString(strings.ToLower(k))
		b.WriteString(": ")
		b.WriteString(r.resp.Headers[k])
		b.WriteString("\r\n")
	}
	return b.String()
}
