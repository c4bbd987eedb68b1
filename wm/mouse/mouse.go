// Package mouse projects the typed message set down to a single
// canonical mouse-button shape. Exactly twelve message tags match:
// the three named buttons crossed with press, release, and double
// click, plus the extended-button family, which carries a 1-based
// button index. Everything else yields no event.
package mouse

import "github.com/dshills/winmsg/wm"

// Button identifies a mouse button.
type Button uint8

const (
	// ButtonLeft is the primary button.
	ButtonLeft Button = iota
	// ButtonRight is the secondary button.
	ButtonRight
	// ButtonMiddle is the wheel button.
	ButtonMiddle
	// ButtonExtended is one of the extended buttons; Event.XIndex
	// says which.
	ButtonExtended
)

// String returns the button name.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	case ButtonExtended:
		return "extended"
	default:
		return "invalid"
	}
}

// Action is what happened to the button.
type Action uint8

const (
	// ActionDown is a press.
	ActionDown Action = iota
	// ActionUp is a release.
	ActionUp
	// ActionDoubleClick is a double click.
	ActionDoubleClick
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionDown:
		return "down"
	case ActionUp:
		return "up"
	case ActionDoubleClick:
		return "double-click"
	default:
		return "invalid"
	}
}

// Modifiers is the key/button state accompanying a button message.
type Modifiers uint16

const (
	ModLeftButton   Modifiers = 0x0001
	ModRightButton  Modifiers = 0x0002
	ModShift        Modifiers = 0x0004
	ModControl      Modifiers = 0x0008
	ModMiddleButton Modifiers = 0x0010
	ModXButton1     Modifiers = 0x0020
	ModXButton2     Modifiers = 0x0040
)

// Has reports whether m contains mod.
func (m Modifiers) Has(mod Modifiers) bool {
	return m&mod != 0
}

// HasShift reports whether Shift was held.
func (m Modifiers) HasShift() bool {
	return m.Has(ModShift)
}

// HasControl reports whether Control was held.
func (m Modifiers) HasControl() bool {
	return m.Has(ModControl)
}

// Event is the canonical mouse-button event.
type Event struct {
	Action Action
	Button Button

	// XIndex is the 1-based extended button index; zero unless
	// Button is ButtonExtended.
	XIndex uint16

	Pos       wm.Point
	Modifiers Modifiers
}

// FromMessage projects m onto the button shape. The second return is
// false for every non-button tag; membership is decided by tag
// identity alone, never by payload contents.
func FromMessage(m wm.Message) (Event, bool) {
	switch b := m.(type) {
	case wm.LButtonDown:
		return Event{Action: ActionDown, Button: ButtonLeft, Pos: b.Pos, Modifiers: Modifiers(b.Modifiers)}, true
	case wm.LButtonUp:
		return Event{Action: ActionUp, Button: ButtonLeft, Pos: b.Pos, Modifiers: Modifiers(b.Modifiers)}, true
	case wm.LButtonDblClk:
		return Event{Action: ActionDoubleClick, Button: ButtonLeft, Pos: b.Pos, Modifiers: Modifiers(b.Modifiers)}, true
	case wm.RButtonDown:
		return Event{Action: ActionDown, Button: ButtonRight, Pos: b.Pos, Modifiers: Modifiers(b.Modifiers)}, true
	case wm.RButtonUp:
		return Event{Action: ActionUp, Button: ButtonRight, Pos: b.Pos, Modifiers: Modifiers(b.Modifiers)}, true
	case wm.RButtonDblClk:
		return Event{Action: ActionDoubleClick, Button: ButtonRight, Pos: b.Pos, Modifiers: Modifiers(b.Modifiers)}, true
	case wm.MButtonDown:
		return Event{Action: ActionDown, Button: ButtonMiddle, Pos: b.Pos, Modifiers: Modifiers(b.Modifiers)}, true
	case wm.MButtonUp:
		return Event{Action: ActionUp, Button: ButtonMiddle, Pos: b.Pos, Modifiers: Modifiers(b.Modifiers)}, true
	case wm.MButtonDblClk:
		return Event{Action: ActionDoubleClick, Button: ButtonMiddle, Pos: b.Pos, Modifiers: Modifiers(b.Modifiers)}, true
	case wm.XButtonDown:
		return Event{Action: ActionDown, Button: ButtonExtended, XIndex: b.Button, Pos: b.Pos, Modifiers: Modifiers(b.Modifiers)}, true
	case wm.XButtonUp:
		return Event{Action: ActionUp, Button: ButtonExtended, XIndex: b.Button, Pos: b.Pos, Modifiers: Modifiers(b.Modifiers)}, true
	case wm.XButtonDblClk:
		return Event{Action: ActionDoubleClick, Button: ButtonExtended, XIndex: b.Button, Pos: b.Pos, Modifiers: Modifiers(b.Modifiers)}, true
	default:
		return Event{}, false
	}
}
