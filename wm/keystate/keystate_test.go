package keystate

import "testing"

func TestDecodeZero(t *testing.T) {
	s := Decode(0)
	if s != (State{}) {
		t.Errorf("Decode(0) = %+v, want zero State", s)
	}
}

func TestDecodeAllBits(t *testing.T) {
	s := Decode(0xFFFFFFFF)
	want := State{
		RepeatCount:  0xFFFF,
		ScanCode:     0xFF,
		Extended:     true,
		ContextCode:  true,
		PreviousDown: true,
		Released:     true,
	}
	if s != want {
		t.Errorf("Decode(0xFFFFFFFF) = %+v, want %+v", s, want)
	}
}

func TestDecodeFields(t *testing.T) {
	tests := []struct {
		name string
		v    uint32
		want State
	}{
		{"repeat count only", 0x0000002A, State{RepeatCount: 42}},
		{"scan code only", 0x001E0000, State{ScanCode: 0x1E}},
		{"extended", 1 << 24, State{Extended: true}},
		{"context code", 1 << 29, State{ContextCode: true}},
		{"previous down", 1 << 30, State{PreviousDown: true}},
		{"released", 1 << 31, State{Released: true}},
		{"reserved bits ignored", 0x1E000000, State{}},
	}

	for _, tt := range tests {
		if got := Decode(tt.v); got != tt.want {
			t.Errorf("%s: Decode(%#x) = %+v, want %+v", tt.name, tt.v, got, tt.want)
		}
	}
}

func TestEncodeInverse(t *testing.T) {
	// Reserved bits (25-28) never survive a round trip; everything
	// else must.
	values := []uint32{
		0,
		1,
		0x0000FFFF,
		0x00FF0000,
		0xE1FFFFFF &^ (0xF << 25),
		0x80000001,
		0x60010041,
	}

	for _, v := range values {
		if got := Decode(v).Encode(); got != v {
			t.Errorf("Decode(%#x).Encode() = %#x", v, got)
		}
	}
}

func TestEncodeClearsReserved(t *testing.T) {
	if got := Decode(0xFFFFFFFF).Encode(); got != 0xFFFFFFFF&^(0xF<<25) {
		t.Errorf("Encode() = %#x, want reserved bits cleared", got)
	}
}
