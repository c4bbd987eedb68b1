// Package keystate decodes the 32-bit packed key-state word that
// accompanies every keyboard message. The word subdivides into six
// fixed, non-overlapping bit ranges; bits 25-28 are reserved and
// read-ignored.
package keystate

const (
	repeatMask  = 0x0000FFFF
	scanShift   = 16
	scanMask    = 0xFF
	extendedBit = 1 << 24
	contextBit  = 1 << 29
	previousBit = 1 << 30
	releasedBit = 1 << 31
)

// State is the decoded form of the packed key-state word.
type State struct {
	// RepeatCount is how many keystrokes this message coalesces.
	RepeatCount uint16

	// ScanCode is the hardware scan code.
	ScanCode uint8

	// Extended is set for keys from the extended keyboard block
	// (right-hand Ctrl/Alt, arrow cluster).
	Extended bool

	// ContextCode is set when the menu-context key is held.
	ContextCode bool

	// PreviousDown is set when the key was already down before this
	// message.
	PreviousDown bool

	// Released is set when this message reports a release.
	Released bool
}

// Decode unpacks a key-state word. Total: every input yields a
// State, reserved bits are ignored.
func Decode(v uint32) State {
	return State{
		RepeatCount:  uint16(v & repeatMask),
		ScanCode:     uint8((v >> scanShift) & scanMask),
		Extended:     v&extendedBit != 0,
		ContextCode:  v&contextBit != 0,
		PreviousDown: v&previousBit != 0,
		Released:     v&releasedBit != 0,
	}
}

// Encode is the exact inverse of Decode; the reserved bits come
// back zero.
func (s State) Encode() uint32 {
	v := uint32(s.RepeatCount) | uint32(s.ScanCode)<<scanShift
	if s.Extended {
		v |= extendedBit
	}
	if s.ContextCode {
		v |= contextBit
	}
	if s.PreviousDown {
		v |= previousBit
	}
	if s.Released {
		v |= releasedBit
	}
	return v
}
