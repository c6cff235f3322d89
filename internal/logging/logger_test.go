package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{" warn ", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"nonsense", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("TABSHELL_LOG_LEVEL", "debug")
	t.Setenv("TABSHELL_LOG_FORMAT", "json")

	logger := NewFromEnv()
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
}

func TestNew_WritesRotatedFile(t *testing.T) {
	dir := t.TempDir()
	logger := New(Config{
		Level:  zerolog.InfoLevel,
		Format: "json",
		File:   &FileConfig{Dir: dir, MaxSizeMB: 1},
	})

	logger.Info().Str("k", "v").Msg("hello")

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), zerolog.New(&buf))
	ctx = WithComponent(ctx, "tabs")
	ctx = WithTabID(ctx, "tab-3")
	ctx = WithURL(ctx, "https://app.internal")

	FromContext(ctx).Info().Msg("x")

	out := buf.String()
	assert.Contains(t, out, `"component":"tabs"`)
	assert.Contains(t, out, `"tab_id":"tab-3"`)
	assert.Contains(t, out, `"url":"https://app.internal"`)
}

func TestFromContext_WithoutLoggerIsUsable(t *testing.T) {
	assert.NotPanics(t, func() {
		FromContext(context.Background()).Info().Msg("dropped")
	})
}

func TestRecover_SwallowsPanic(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), zerolog.New(&buf))

	assert.NotPanics(t, func() {
		defer Recover(ctx, "test")
		panic("boom")
	})
	assert.Contains(t, buf.String(), "recovered from panic")
}
