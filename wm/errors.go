package wm

import (
	"errors"
	"fmt"
)

// ErrInvalidEnum is returned when a payload field that must hold one
// of a small closed set of values holds something else.
var ErrInvalidEnum = errors.New("value outside enumerated set")

// EnumError reports which field of which message held the
// out-of-set value.
type EnumError struct {
	// Msg is the message identifier being decoded.
	Msg MsgID

	// Field is the payload field name.
	Field string

	// Value is the offending scalar.
	Value uint64
}

// Error implements the error interface.
func (e *EnumError) Error() string {
	return fmt.Sprintf("%s: %s value %#x outside enumerated set", e.Msg, e.Field, e.Value)
}

// Unwrap returns ErrInvalidEnum so callers can match with errors.Is.
func (e *EnumError) Unwrap() error {
	return ErrInvalidEnum
}
