package webkit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellOptionsClampSize(t *testing.T) {
	s := NewShell(ShellConfig{DefaultWidth: 100, DefaultHeight: 5000, MinSize: 200, MaxSize: 3000})
	opts := s.Options()
	assert.Equal(t, 200, opts.Width)
	assert.Equal(t, 3000, opts.Height)
}

func TestShellDefaultsBounds(t *testing.T) {
	s := NewShell(ShellConfig{DefaultWidth: 1280, DefaultHeight: 800})
	opts := s.Options()
	assert.Equal(t, 1280, opts.Width)
	assert.Equal(t, 800, opts.Height)
}

func TestShellOpenWindowWithoutBuilder(t *testing.T) {
	s := NewShell(ShellConfig{})
	_, err := s.OpenWindow(context.Background(), "about:blank", nil)
	require.ErrorIs(t, err, ErrNoWindowBuilder)
	assert.Zero(t, s.Windows())
}
