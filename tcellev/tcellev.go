// Package tcellev bridges the derived keyboard and button views onto
// tcell's event types, so traces can drive terminal UIs built on the
// same event loop.
package tcellev

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/winmsg/wm/kbd"
	"github.com/dshills/winmsg/wm/mouse"
)

// Virtual-key codes with a terminal equivalent.
const (
	vkBack   = 0x08
	vkTab    = 0x09
	vkReturn = 0x0D
	vkEscape = 0x1B
	vkSpace  = 0x20
	vkPrior  = 0x21
	vkNext   = 0x22
	vkEnd    = 0x23
	vkHome   = 0x24
	vkLeft   = 0x25
	vkUp     = 0x26
	vkRight  = 0x27
	vkDown   = 0x28
	vkInsert = 0x2D
	vkDelete = 0x2E
	vkF1     = 0x70
	vkF12    = 0x7B
)

var specialKeys = map[uint32]tcell.Key{
	vkBack:   tcell.KeyBackspace2,
	vkTab:    tcell.KeyTab,
	vkReturn: tcell.KeyEnter,
	vkEscape: tcell.KeyEscape,
	vkPrior:  tcell.KeyPgUp,
	vkNext:   tcell.KeyPgDn,
	vkEnd:    tcell.KeyEnd,
	vkHome:   tcell.KeyHome,
	vkLeft:   tcell.KeyLeft,
	vkUp:     tcell.KeyUp,
	vkRight:  tcell.KeyRight,
	vkDown:   tcell.KeyDown,
	vkInsert: tcell.KeyInsert,
	vkDelete: tcell.KeyDelete,
}

// Keyboard converts a key press to a tcell key event. Releases and
// virtual keys with no terminal equivalent yield no event. A system
// key carries the Alt modifier.
func Keyboard(e kbd.Event) (*tcell.EventKey, bool) {
	if e.Released {
		return nil, false
	}

	var mod tcell.ModMask
	if e.System {
		mod |= tcell.ModAlt
	}

	code := uint32(e.Code)
	if k, ok := specialKeys[code]; ok {
		return tcell.NewEventKey(k, 0, mod), true
	}
	if code >= vkF1 && code <= vkF12 {
		return tcell.NewEventKey(tcell.KeyF1+tcell.Key(code-vkF1), 0, mod), true
	}

	switch {
	case code >= 'A' && code <= 'Z':
		// Virtual-key letters are unshifted uppercase.
		return tcell.NewEventKey(tcell.KeyRune, rune(code-'A'+'a'), mod), true
	case code >= '0' && code <= '9':
		return tcell.NewEventKey(tcell.KeyRune, rune(code), mod), true
	case code == vkSpace:
		return tcell.NewEventKey(tcell.KeyRune, ' ', mod), true
	}

	return nil, false
}

// MouseButton converts a button event to a tcell mouse event.
// Presses and double clicks carry the button mask; releases carry
// ButtonNone, matching tcell's release convention. Extended buttons
// beyond the second yield no event.
func MouseButton(e mouse.Event) (*tcell.EventMouse, bool) {
	var btn tcell.ButtonMask
	switch e.Button {
	case mouse.ButtonLeft:
		btn = tcell.ButtonPrimary
	case mouse.ButtonRight:
		btn = tcell.ButtonSecondary
	case mouse.ButtonMiddle:
		btn = tcell.ButtonMiddle
	case mouse.ButtonExtended:
		switch e.XIndex {
		case 1:
			btn = tcell.Button4
		case 2:
			btn = tcell.Button5
		default:
			return nil, false
		}
	default:
		return nil, false
	}

	if e.Action == mouse.ActionUp {
		btn = tcell.ButtonNone
	}

	var mod tcell.ModMask
	if e.Modifiers.HasShift() {
		mod |= tcell.ModShift
	}
	if e.Modifiers.HasControl() {
		mod |= tcell.ModCtrl
	}

	return tcell.NewEventMouse(int(e.Pos.X), int(e.Pos.Y), btn, mod), true
}
