package wm

import "unsafe"

// WParam is the unsigned machine-word message parameter.
type WParam uintptr

// LParam is the signed machine-word message parameter.
type LParam int

// Handle is an opaque identifier owned by the windowing subsystem.
// The zero value means "no handle".
type Handle uintptr

// Pointer is the address of an out-of-band structure owned by the
// windowing subsystem. It is carried through verbatim and never
// dereferenced here; zero means absent.
type Pointer uintptr

// IsNil reports whether the pointer is absent.
func (p Pointer) IsNil() bool { return p == 0 }

// RawEvent is one received protocol triple. It is immutable:
// produced once per event, consumed once.
type RawEvent struct {
	Msg    uint32
	WParam WParam
	LParam LParam
}

// Every payload layout below is defined against the host's native
// word width. The constant subtractions underflow, and so fail to
// compile, if LParam stops matching the pointer width or RawEvent
// stops being exactly three machine words (24 bytes on 64-bit
// hosts, 12 on 32-bit).
const (
	_ = unsafe.Sizeof(uintptr(0)) - unsafe.Sizeof(LParam(0))
	_ = unsafe.Sizeof(LParam(0)) - unsafe.Sizeof(uintptr(0))
	_ = 3*unsafe.Sizeof(uintptr(0)) - unsafe.Sizeof(RawEvent{})
	_ = unsafe.Sizeof(RawEvent{}) - 3*unsafe.Sizeof(uintptr(0))
)

// Point is a screen position packed into the halves of one
// parameter word.
type Point struct {
	X int16
	Y int16
}

// pointOf reconstructs a position payload: low 16 bits sign-extend
// to X, the next 16 to Y.
func pointOf(l LParam) Point {
	return Point{
		X: int16(uint16(l)),
		Y: int16(uint16(uint64(l) >> 16)),
	}
}

func low16(w WParam) uint16  { return uint16(w) }
func high16(w WParam) uint16 { return uint16(w >> 16) }
