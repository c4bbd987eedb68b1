package wm

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		id   uint32
		want Band
	}{
		{0x0000, BandSystem},
		{0x0001, BandSystem},
		{0x03FF, BandSystem},
		{0x0400, BandUser},
		{0x7FFF, BandUser},
		{0x8000, BandApp},
		{0xBFFF, BandApp},
		{0xC000, BandString},
		{0xFFFE, BandString},
		{0xFFFF, BandReserved},
		{0x10000, BandReserved},
		{0xFFFFFFFF, BandReserved},
	}

	for _, tt := range tests {
		if got := Classify(tt.id); got != tt.want {
			t.Errorf("Classify(%#x) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestBandString(t *testing.T) {
	tests := []struct {
		band Band
		want string
	}{
		{BandSystem, "system"},
		{BandUser, "user"},
		{BandApp, "app"},
		{BandString, "string"},
		{BandReserved, "reserved"},
		{Band(99), "invalid"},
	}

	for _, tt := range tests {
		if got := tt.band.String(); got != tt.want {
			t.Errorf("Band.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseRebase(t *testing.T) {
	tests := []struct {
		name    string
		id      uint32
		band    Band
		rebased uint32
	}{
		{"user band", 0x0400 + 7, BandUser, 7},
		{"app band", 0x8000 + 0x12, BandApp, 0x12},
		{"string band", 0xC000 + 3, BandString, 3},
		{"reserved band", 0xFFFF + 41, BandReserved, 41},
	}

	for _, tt := range tests {
		ev, err := Parse(tt.id, 0xAA, -7)
		if err != nil {
			t.Fatalf("%s: Parse(%#x) error: %v", tt.name, tt.id, err)
		}
		if ev.Band != tt.band {
			t.Errorf("%s: band = %v, want %v", tt.name, ev.Band, tt.band)
		}
		if ev.Message != nil {
			t.Errorf("%s: message = %v, want nil", tt.name, ev.Message)
		}
		if ev.Raw.Msg != tt.rebased {
			t.Errorf("%s: rebased id = %#x, want %#x", tt.name, ev.Raw.Msg, tt.rebased)
		}
		if ev.Raw.WParam != 0xAA || ev.Raw.LParam != -7 {
			t.Errorf("%s: parameters changed: %+v", tt.name, ev.Raw)
		}
	}
}

// The string band rebases by its own lower bound. The behavior is
// pinned here because the implementation this decoder replaces
// rebased string-band identifiers by the app band's bound instead.
func TestClassifyStringRebase(t *testing.T) {
	ev, err := Parse(0xC005, 0, 0)
	if err != nil {
		t.Fatalf("Parse(0xC005) error: %v", err)
	}
	if ev.Band != BandString {
		t.Fatalf("band = %v, want BandString", ev.Band)
	}
	if ev.Raw.Msg != 5 {
		t.Errorf("rebased id = %d, want 5 (0xC005 - 0xC000)", ev.Raw.Msg)
	}
}
