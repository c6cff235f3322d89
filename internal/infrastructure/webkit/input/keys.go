// Package input converts GDK key and scroll data into shell input events.
package input

import (
	"strings"

	"github.com/bnema/tabshell/internal/application/port"
)

// Modifiers is the toolkit-independent modifier state.
type Modifiers struct {
	Ctrl  bool
	Meta  bool
	Shift bool
	Alt   bool
}

var keyAliases = map[string]string{
	"plus":         "+",
	"kp_add":       "+",
	"equal":        "=",
	"minus":        "-",
	"kp_subtract":  "-",
	"underscore":   "-",
	"kp_0":         "0",
	"kp_1":         "1",
	"kp_2":         "2",
	"kp_3":         "3",
	"kp_4":         "4",
	"kp_5":         "5",
	"kp_6":         "6",
	"kp_7":         "7",
	"kp_8":         "8",
	"kp_9":         "9",
	"iso_left_tab": "tab",
	"return":       "enter",
	"kp_enter":     "enter",
}

// KeyName maps a GDK key name ("T", "KP_Add", "equal") to the shell's
// lowercase key names ("t", "+", "=").
func KeyName(gdkName string) string {
	name := strings.ToLower(gdkName)
	if alias, ok := keyAliases[name]; ok {
		return alias
	}
	return name
}

// KeyEvent builds the event for a key press.
func KeyEvent(gdkName string, mods Modifiers) port.KeyEvent {
	return port.KeyEvent{
		Key:   KeyName(gdkName),
		Ctrl:  mods.Ctrl,
		Meta:  mods.Meta,
		Shift: mods.Shift,
		Alt:   mods.Alt,
	}
}

// WheelEvent builds the event for a vertical scroll step. GDK reports
// positive dy for scrolling down, which matches the wheel convention.
func WheelEvent(dy float64, mods Modifiers) port.WheelEvent {
	return port.WheelEvent{DeltaY: dy, Ctrl: mods.Ctrl, Meta: mods.Meta}
}
