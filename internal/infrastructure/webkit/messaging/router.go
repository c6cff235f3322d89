// Package messaging routes script messages posted by page code to Go
// handlers and settles the page-side promise with the result.
package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/tabshell/internal/logging"
)

// HandlerName is the script message handler registered in every context.
const HandlerName = "tabshell"

// SettleFunc is the page-side function that settles a pending request.
const SettleFunc = "window.__tabshellBridge.settle"

// Message is the JS -> Go envelope sent via postMessage.
type Message struct {
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	ContextID uint64          `json:"context_id,omitempty"`
	RequestID string          `json:"request_id,omitempty"`
}

// MessageHandler handles a decoded message payload.
type MessageHandler interface {
	Handle(ctx context.Context, contextID uint64, payload json.RawMessage) (any, error)
}

// MessageHandlerFunc adapts a function to MessageHandler.
type MessageHandlerFunc func(ctx context.Context, contextID uint64, payload json.RawMessage) (any, error)

// Handle calls f(ctx, contextID, payload).
func (f MessageHandlerFunc) Handle(ctx context.Context, contextID uint64, payload json.RawMessage) (any, error) {
	return f(ctx, contextID, payload)
}

// Evaluator runs script in the context that sent a message.
type Evaluator func(script string)

// Option configures a Router.
type Option func(*Router)

// WithRunner replaces the goroutine each handler runs on.
func WithRunner(run func(fn func())) Option {
	return func(r *Router) {
		r.run = run
	}
}

// Router dispatches script messages to registered handlers.
type Router struct {
	baseCtx context.Context
	run     func(fn func())

	mu       sync.RWMutex
	handlers map[string]MessageHandler
}

// NewRouter creates a router. Handlers run on their own goroutine unless
// WithRunner says otherwise.
func NewRouter(ctx context.Context, opts ...Option) *Router {
	if ctx == nil {
		ctx = context.Background()
	}
	r := &Router{
		baseCtx:  logging.WithComponent(ctx, "message-router"),
		run:      func(fn func()) { go fn() },
		handlers: make(map[string]MessageHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterHandler registers handler for msgType.
func (r *Router) RegisterHandler(msgType string, handler MessageHandler) error {
	if msgType == "" {
		return errors.New("message type cannot be empty")
	}
	if handler == nil {
		return errors.New("message handler cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.handlers[msgType]; exists {
		return fmt.Errorf("handler for %q already registered", msgType)
	}
	r.handlers[msgType] = handler
	return nil
}

// HasHandler reports whether msgType has a handler.
func (r *Router) HasHandler(msgType string) bool {
	_, ok := r.getHandler(msgType)
	return ok
}

// HandleJSON decodes a raw message and dispatches it. The reply, if the
// message carries a request id, is delivered through eval.
func (r *Router) HandleJSON(raw string, eval Evaluator) {
	log := logging.FromContext(r.baseCtx)

	if raw == "" {
		log.Warn().Msg("script message JSON is empty")
		return
	}

	var msg Message
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		log.Warn().Err(err).Msg("failed to unmarshal script message")
		return
	}
	r.Dispatch(msg, eval)
}

// Dispatch routes msg to its handler.
func (r *Router) Dispatch(msg Message, eval Evaluator) {
	log := logging.FromContext(r.baseCtx)

	if msg.Type == "" {
		log.Warn().Msg("script message missing type")
		return
	}

	handler, ok := r.getHandler(msg.Type)
	if !ok {
		log.Warn().Str("type", msg.Type).Msg("no handler registered for message type")
		r.reply(eval, msg.RequestID, nil, fmt.Errorf("unknown message type %q", msg.Type))
		return
	}

	log.Debug().
		Str("type", msg.Type).
		Uint64("context_id", msg.ContextID).
		Int("payload_len", len(msg.Payload)).
		Msg("received script message")

	r.run(func() {
		defer logging.Recover(r.baseCtx, "script message "+msg.Type)
		resp, err := handler.Handle(r.baseCtx, msg.ContextID, msg.Payload)
		if err != nil {
			log.Debug().Err(err).Str("type", msg.Type).Msg("message handler returned error")
		}
		r.reply(eval, msg.RequestID, resp, err)
	})
}

func (r *Router) reply(eval Evaluator, requestID string, value any, err error) {
	if requestID == "" || eval == nil {
		return
	}
	script, buildErr := SettleScript(requestID, value, err)
	if buildErr != nil {
		logging.FromContext(r.baseCtx).Warn().Err(buildErr).Str("request_id", requestID).Msg("failed to build reply")
		script, _ = SettleScript(requestID, nil, buildErr)
	}
	eval(script)
}

func (r *Router) getHandler(msgType string) (MessageHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[msgType]
	return h, ok
}

type settlement struct {
	OK    bool   `json:"ok"`
	Value any    `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

// SettleScript returns the JS that settles request id with value or err.
func SettleScript(requestID string, value any, err error) (string, error) {
	s := settlement{OK: err == nil, Value: value}
	if err != nil {
		s.Value = nil
		s.Error = err.Error()
	}
	data, marshalErr := json.Marshal(s)
	if marshalErr != nil {
		return "", fmt.Errorf("marshal reply: %w", marshalErr)
	}
	id, _ := json.Marshal(requestID)
	return fmt.Sprintf(
		`(function(){try{if(window.__tabshellBridge){%s(%s,%s);}`+
			`else{console.warn("tabshell bridge missing");}}`+
			`catch(e){console.error("tabshell settle failed",e);}})();`,
		SettleFunc, id, data,
	), nil
}
