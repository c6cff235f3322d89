package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inline(fn func()) { fn() }

func TestRouter_RegisterHandler(t *testing.T) {
	r := NewRouter(context.Background())
	h := MessageHandlerFunc(func(context.Context, uint64, json.RawMessage) (any, error) { return nil, nil })

	require.NoError(t, r.RegisterHandler("fetch", h))
	assert.True(t, r.HasHandler("fetch"))
	assert.Error(t, r.RegisterHandler("fetch", h))
	assert.Error(t, r.RegisterHandler("", h))
	assert.Error(t, r.RegisterHandler("x", nil))
}

func TestRouter_HandleJSON_RepliesWithValue(t *testing.T) {
	r := NewRouter(context.Background(), WithRunner(inline))

	var gotID uint64
	var gotPayload string
	require.NoError(t, r.RegisterHandler("echo", MessageHandlerFunc(
		func(_ context.Context, id uint64, payload json.RawMessage) (any, error) {
			gotID = id
			gotPayload = string(payload)
			return map[string]int{"n": 1}, nil
		})))

	var scripts []string
	r.HandleJSON(`{"type":"echo","payload":{"a":1},"context_id":7,"request_id":"r1"}`, func(s string) {
		scripts = append(scripts, s)
	})

	assert.Equal(t, uint64(7), gotID)
	assert.JSONEq(t, `{"a":1}`, gotPayload)
	require.Len(t, scripts, 1)
	assert.Contains(t, scripts[0], `window.__tabshellBridge.settle("r1",{"ok":true,"value":{"n":1}})`)
}

func TestRouter_HandleJSON_RepliesWithError(t *testing.T) {
	r := NewRouter(context.Background(), WithRunner(inline))
	require.NoError(t, r.RegisterHandler("boom", MessageHandlerFunc(
		func(context.Context, uint64, json.RawMessage) (any, error) {
			return nil, errors.New("nope")
		})))

	var script string
	r.HandleJSON(`{"type":"boom","request_id":"r2"}`, func(s string) { script = s })
	assert.Contains(t, script, `("r2",{"ok":false,"error":"nope"})`)
}

func TestRouter_UnknownTypeIsRejected(t *testing.T) {
	r := NewRouter(context.Background(), WithRunner(inline))

	var script string
	r.HandleJSON(`{"type":"missing","request_id":"r3"}`, func(s string) { script = s })
	assert.Contains(t, script, `unknown message type \"missing\"`)
}

func TestRouter_IgnoresMalformedAndFireAndForget(t *testing.T) {
	r := NewRouter(context.Background(), WithRunner(inline))
	calls := 0
	require.NoError(t, r.RegisterHandler("note", MessageHandlerFunc(
		func(context.Context, uint64, json.RawMessage) (any, error) {
			calls++
			return "ignored", nil
		})))

	evaluated := 0
	eval := func(string) { evaluated++ }

	r.HandleJSON("", eval)
	r.HandleJSON("{not json", eval)
	r.HandleJSON(`{"payload":{}}`, eval)
	r.HandleJSON(`{"type":"note"}`, eval)

	assert.Equal(t, 1, calls)
	assert.Zero(t, evaluated)
}

func TestRouter_HandlerPanicIsRecovered(t *testing.T) {
	r := NewRouter(context.Background(), WithRunner(inline))
	require.NoError(t, r.RegisterHandler("panic", MessageHandlerFunc(
		func(context.Context, uint64, json.RawMessage) (any, error) {
			panic("bad")
		})))

	assert.NotPanics(t, func() {
		r.HandleJSON(`{"type":"panic","request_id":"r4"}`, func(string) {})
	})
}

func TestSettleScript_EscapesRequestID(t *testing.T) {
	script, err := SettleScript(`a"b`, "v", nil)
	require.NoError(t, err)
	assert.Contains(t, script, `("a\"b",{"ok":true,"value":"v"})`)
}
