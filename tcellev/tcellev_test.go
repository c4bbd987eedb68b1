package tcellev

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/winmsg/wm"
	"github.com/dshills/winmsg/wm/kbd"
	"github.com/dshills/winmsg/wm/mouse"
)

func TestKeyboard(t *testing.T) {
	tests := []struct {
		name     string
		ev       kbd.Event
		wantKey  tcell.Key
		wantRune rune
		wantMod  tcell.ModMask
	}{
		{"letter", kbd.Event{Code: 0x41}, tcell.KeyRune, 'a', tcell.ModNone},
		{"digit", kbd.Event{Code: '7'}, tcell.KeyRune, '7', tcell.ModNone},
		{"space", kbd.Event{Code: 0x20}, tcell.KeyRune, ' ', tcell.ModNone},
		{"escape", kbd.Event{Code: 0x1B}, tcell.KeyEscape, 0, tcell.ModNone},
		{"enter", kbd.Event{Code: 0x0D}, tcell.KeyEnter, 0, tcell.ModNone},
		{"backspace", kbd.Event{Code: 0x08}, tcell.KeyBackspace2, 0, tcell.ModNone},
		{"page up", kbd.Event{Code: 0x21}, tcell.KeyPgUp, 0, tcell.ModNone},
		{"arrow left", kbd.Event{Code: 0x25}, tcell.KeyLeft, 0, tcell.ModNone},
		{"f1", kbd.Event{Code: 0x70}, tcell.KeyF1, 0, tcell.ModNone},
		{"f12", kbd.Event{Code: 0x7B}, tcell.KeyF12, 0, tcell.ModNone},
		{"alt letter", kbd.Event{Code: 0x46, System: true}, tcell.KeyRune, 'f', tcell.ModAlt},
	}

	for _, tt := range tests {
		got, ok := Keyboard(tt.ev)
		if !ok {
			t.Errorf("%s: Keyboard ok = false, want true", tt.name)
			continue
		}
		if got.Key() != tt.wantKey {
			t.Errorf("%s: key = %v, want %v", tt.name, got.Key(), tt.wantKey)
		}
		if got.Rune() != tt.wantRune {
			t.Errorf("%s: rune = %q, want %q", tt.name, got.Rune(), tt.wantRune)
		}
		if got.Modifiers() != tt.wantMod {
			t.Errorf("%s: mod = %v, want %v", tt.name, got.Modifiers(), tt.wantMod)
		}
	}
}

func TestKeyboardNoEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   kbd.Event
	}{
		{"release", kbd.Event{Code: 0x41, Released: true}},
		{"shift key itself", kbd.Event{Code: 0x10}},
		{"unmapped vk", kbd.Event{Code: 0xFF}},
	}

	for _, tt := range tests {
		if got, ok := Keyboard(tt.ev); ok {
			t.Errorf("%s: Keyboard = %v, want no event", tt.name, got)
		}
	}
}

func TestMouseButton(t *testing.T) {
	pos := wm.Point{X: 3, Y: 4}

	tests := []struct {
		name    string
		ev      mouse.Event
		wantBtn tcell.ButtonMask
		wantMod tcell.ModMask
	}{
		{
			"left down",
			mouse.Event{Action: mouse.ActionDown, Button: mouse.ButtonLeft, Pos: pos},
			tcell.ButtonPrimary, tcell.ModNone,
		},
		{
			"left up",
			mouse.Event{Action: mouse.ActionUp, Button: mouse.ButtonLeft, Pos: pos},
			tcell.ButtonNone, tcell.ModNone,
		},
		{
			"right double click",
			mouse.Event{Action: mouse.ActionDoubleClick, Button: mouse.ButtonRight, Pos: pos},
			tcell.ButtonSecondary, tcell.ModNone,
		},
		{
			"middle with control",
			mouse.Event{Action: mouse.ActionDown, Button: mouse.ButtonMiddle, Pos: pos, Modifiers: mouse.ModControl},
			tcell.ButtonMiddle, tcell.ModCtrl,
		},
		{
			"first extended with shift",
			mouse.Event{Action: mouse.ActionDown, Button: mouse.ButtonExtended, XIndex: 1, Pos: pos, Modifiers: mouse.ModShift},
			tcell.Button4, tcell.ModShift,
		},
		{
			"second extended",
			mouse.Event{Action: mouse.ActionDown, Button: mouse.ButtonExtended, XIndex: 2, Pos: pos},
			tcell.Button5, tcell.ModNone,
		},
	}

	for _, tt := range tests {
		got, ok := MouseButton(tt.ev)
		if !ok {
			t.Errorf("%s: MouseButton ok = false, want true", tt.name)
			continue
		}
		if got.Buttons() != tt.wantBtn {
			t.Errorf("%s: buttons = %v, want %v", tt.name, got.Buttons(), tt.wantBtn)
		}
		if got.Modifiers() != tt.wantMod {
			t.Errorf("%s: mod = %v, want %v", tt.name, got.Modifiers(), tt.wantMod)
		}
		x, y := got.Position()
		if x != 3 || y != 4 {
			t.Errorf("%s: position = (%d, %d), want (3, 4)", tt.name, x, y)
		}
	}
}

func TestMouseButtonNoEvent(t *testing.T) {
	ev := mouse.Event{Action: mouse.ActionDown, Button: mouse.ButtonExtended, XIndex: 3}
	if got, ok := MouseButton(ev); ok {
		t.Errorf("MouseButton(extended index 3) = %v, want no event", got)
	}
}
