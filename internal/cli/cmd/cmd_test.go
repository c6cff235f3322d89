package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabshell/internal/domain/build"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	SetBuildInfo(build.Info{Version: "9.9.9", Commit: "deadbeef"})
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "9.9.9")
	assert.Contains(t, out, "deadbeef")
}

func TestConfigPathAndShow(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "--config-dir", dir, "config", "path")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "config.toml"))

	out, err = run(t, "--config-dir", dir, "config", "show")
	require.NoError(t, err)
	var shown map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &shown))
	assert.Contains(t, shown, "interception")
}

func TestConfigValidateRejectsBrokenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[tabs\nmax_tabs = "), 0o644))

	_, err := run(t, "--config-dir", dir, "config", "validate")
	require.Error(t, err)
}

func TestConfigSchemaWrite(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "--config-dir", dir, "config", "schema", "--write")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "config.schema.json"))
	configSchemaWrite = false
}

func TestDoctorPassesWithDefaults(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "--config-dir", dir, "doctor")
	require.NoError(t, err)
	assert.Contains(t, out, "page shim")
	assert.Contains(t, out, "bridge.base_url")
}

func TestRequestCommandRoutesThroughBridge(t *testing.T) {
	var bridged, direct []string
	bridgeSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		bridged = append(bridged, r.Method+" "+r.URL.Path+" "+string(body))
		_, _ = w.Write([]byte("from bridge"))
	}))
	defer bridgeSrv.Close()
	originSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		direct = append(direct, r.Method+" "+r.URL.Path)
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("from origin"))
	}))
	defer originSrv.Close()

	dir := t.TempDir()
	conf := fmt.Sprintf("[app]\norigin = %q\n\n[bridge]\nbase_url = %q\n", originSrv.URL, bridgeSrv.URL)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(conf), 0o644))
	t.Cleanup(func() {
		requestMethod = http.MethodGet
		requestData = ""
	})

	out, err := run(t, "--config-dir", dir, "request", "-X", "POST", "-d", "hello", "-H", "Content-Type: text/plain", "/base_api/notes")
	require.NoError(t, err)
	assert.Contains(t, out, "bridge")
	assert.Contains(t, out, "200")
	assert.Contains(t, out, "from bridge")
	assert.Equal(t, []string{"POST /base_api/notes hello"}, bridged)
	assert.Empty(t, direct)

	requestMethod = http.MethodGet
	requestData = ""
	requestHeaders = nil
	out, err = run(t, "--config-dir", dir, "request", "/static/app.js")
	require.NoError(t, err)
	assert.Contains(t, out, "native")
	assert.Contains(t, out, "418")
	assert.Contains(t, out, "from origin")
	assert.Equal(t, []string{"GET /static/app.js"}, direct)
	assert.Len(t, bridged, 1)
}
