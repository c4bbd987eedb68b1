// Package wm decodes the native window-message protocol's raw triple
// (identifier, wParam, lParam) into a strongly typed representation.
//
// A raw identifier falls into one of five protocol-defined bands
// (system, user, application, string, reserved). System-band
// identifiers carry payloads whose layout is fixed per identifier:
// plain tags with no payload, verbatim machine words, split 16-bit
// halves, opaque handles, or pointers to out-of-band structures that
// this package carries but never dereferences.
//
// # Decoding
//
// Parse is the top-level entry point:
//
//	ev, err := wm.Parse(msg, wParam, lParam)
//
// For a system-band identifier the Event carries a Message value;
// identifiers the protocol table does not know come back as Unknown
// with the triple untouched, never reinterpreted as some other
// payload shape. The other bands carry the triple rebased to the
// band's lower bound.
//
// # Derived views
//
// The kbd and mouse subpackages project the typed message set down
// to canonical keyboard and mouse-button events; the keystate
// subpackage unpacks the 32-bit key-state word embedded in keyboard
// payloads.
//
// Every function in this package is a pure function of its inputs.
// There is no shared state, so concurrent use needs no coordination.
package wm
