package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/tabshell/internal/application/port"
)

func TestKeyName(t *testing.T) {
	tests := map[string]string{
		"T":            "t",
		"t":            "t",
		"1":            "1",
		"KP_3":         "3",
		"plus":         "+",
		"KP_Add":       "+",
		"equal":        "=",
		"minus":        "-",
		"KP_Subtract":  "-",
		"ISO_Left_Tab": "tab",
		"Tab":          "tab",
		"Return":       "enter",
		"F5":           "f5",
	}
	for in, want := range tests {
		assert.Equal(t, want, KeyName(in), in)
	}
}

func TestKeyEvent(t *testing.T) {
	ev := KeyEvent("W", Modifiers{Ctrl: true, Shift: true})
	assert.Equal(t, port.KeyEvent{Key: "w", Ctrl: true, Shift: true}, ev)
}

func TestWheelEvent(t *testing.T) {
	ev := WheelEvent(-1, Modifiers{Meta: true, Alt: true})
	assert.Equal(t, port.WheelEvent{DeltaY: -1, Meta: true}, ev)
}
