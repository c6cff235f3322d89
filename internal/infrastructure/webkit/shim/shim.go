// Package shim builds the page script that routes network calls and
// window.tabshell calls through the script message bridge.
package shim

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/grafana/sobek"
)

//go:embed interceptor.js
var interceptorJS string

// Config is injected ahead of the shim as window.__tabshellConfig.
type Config struct {
	Handler         string   `json:"handler"`
	APIPrefix       string   `json:"prefix"`
	InternalSchemes []string `json:"internal"`
	Origin          string   `json:"origin,omitempty"`
	ContextID       uint64   `json:"contextId"`
}

// Script returns the complete script for one rendering context.
func Script(cfg Config) (string, error) {
	if cfg.Handler == "" {
		return "", errors.New("shim: handler name is required")
	}
	if cfg.APIPrefix == "" {
		return "", errors.New("shim: api prefix is required")
	}
	if cfg.InternalSchemes == nil {
		cfg.InternalSchemes = []string{}
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("shim: encode config: %w", err)
	}
	var b strings.Builder
	b.WriteString("window.__tabshellConfig = ")
	b.Write(data)
	b.WriteString(";\n")
	b.WriteString(interceptorJS)
	return b.String(), nil
}

// Source returns the raw shim without configuration.
func Source() string {
	return interceptorJS
}

const harness = `
var window = this;
var __native = 0;
window.location = { origin: "http://shim.test" };
window.fetch = function () { __native++; return Promise.resolve("native"); };
window.webkit = { messageHandlers: {} };
window.webkit.messageHandlers[__handler] = {
  postMessage: function (m) { __post(JSON.stringify(m)); }
};
`

// Verify runs the shim in an isolated JavaScript runtime and checks that it
// installs its entry points and routes matched calls to the bridge only.
func Verify(cfg Config) error {
	script, err := Script(cfg)
	if err != nil {
		return err
	}

	vm := sobek.New()
	var posted []string
	if err := vm.Set("__handler", cfg.Handler); err != nil {
		return err
	}
	if err := vm.Set("__post", func(msg string) { posted = append(posted, msg) }); err != nil {
		return err
	}
	if _, err := vm.RunString(harness); err != nil {
		return fmt.Errorf("shim: harness: %w", err)
	}
	if _, err := vm.RunString(script); err != nil {
		return fmt.Errorf("shim: evaluate: %w", err)
	}

	checks := []struct {
		expr string
		want string
	}{
		{"typeof window.__tabshellBridge.settle", "function"},
		{"typeof window.tabshell.zoom.set", "function"},
		{"typeof window.tabshell.zoom.in", "function"},
		{"typeof window.tabshell.tabs.create", "function"},
		{"String(window.__tabshellBridge.matches(" + jsString(cfg.APIPrefix+"healthcheck") + "))", "true"},
		{"String(window.__tabshellBridge.matches('/elsewhere'))", "false"},
	}
	for _, c := range checks {
		v, err := vm.RunString(c.expr)
		if err != nil {
			return fmt.Errorf("shim: %s: %w", c.expr, err)
		}
		if got := v.String(); got != c.want {
			return fmt.Errorf("shim: %s = %s, want %s", c.expr, got, c.want)
		}
	}

	if _, err := vm.RunString("window.fetch('/elsewhere'); window.fetch(" + jsString(cfg.APIPrefix+"healthcheck") + ");"); err != nil {
		return fmt.Errorf("shim: fetch: %w", err)
	}
	if native := vm.Get("__native").ToInteger(); native != 1 {
		return fmt.Errorf("shim: passthrough fetch reached native %d times, want 1", native)
	}
	if len(posted) != 1 {
		return fmt.Errorf("shim: %d bridge messages posted, want 1", len(posted))
	}
	var msg struct {
		Type    string `json:"type"`
		Payload struct {
			Method string `json:"method"`
		} `json:"payload"`
	}
	if err := json.Unmarshal([]byte(posted[0]), &msg); err != nil {
		return fmt.Errorf("shim: decode posted message: %w", err)
	}
	if msg.Type != "fetch" || msg.Payload.Method != "GET" {
		return fmt.Errorf("shim: unexpected message %s", posted[0])
	}
	return nil
}

func jsString(s string) string {
	data, _ := json.Marshal(s)
	return string(data)
}
