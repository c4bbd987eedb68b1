// Package kbd projects the typed message set down to a single
// canonical keyboard-event shape. Exactly four message tags match:
// plain and system-scope key messages, each crossed with press and
// release. Everything else yields no event.
package kbd

import (
	"github.com/dshills/winmsg/wm"
	"github.com/dshills/winmsg/wm/keystate"
)

// Event is the canonical keyboard event.
type Event struct {
	// Released is true for key-up messages, false for key-down.
	Released bool

	// System is true for the system-scope variants (key pressed
	// while the menu-context key is held, or with no window focused).
	System bool

	// Code is the virtual key code, carried verbatim.
	Code wm.WParam

	// State is the decoded packed key-state field.
	State keystate.State
}

// FromMessage projects m onto the keyboard shape. The second return
// is false for every non-keyboard tag; membership is decided by tag
// identity alone.
func FromMessage(m wm.Message) (Event, bool) {
	switch k := m.(type) {
	case wm.KeyDown:
		return Event{Code: k.Code, State: k.State}, true
	case wm.KeyUp:
		return Event{Released: true, Code: k.Code, State: k.State}, true
	case wm.SysKeyDown:
		return Event{System: true, Code: k.Code, State: k.State}, true
	case wm.SysKeyUp:
		return Event{Released: true, System: true, Code: k.Code, State: k.State}, true
	default:
		return Event{}, false
	}
}
