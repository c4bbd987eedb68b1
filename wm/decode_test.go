package wm

import (
	"errors"
	"testing"

	"github.com/dshills/winmsg/wm/keystate"
)

func pack16(low, high uint16) LParam {
	return LParam(uint32(low) | uint32(high)<<16)
}

func TestDecodeSystemPlain(t *testing.T) {
	m, err := DecodeSystem(uint32(MsgNull), 0, 0)
	if err != nil {
		t.Fatalf("DecodeSystem(Null) error: %v", err)
	}
	p, ok := m.(Plain)
	if !ok {
		t.Fatalf("DecodeSystem(Null) = %T, want Plain", m)
	}
	if p.Msg != MsgNull {
		t.Errorf("plain id = %v, want MsgNull", p.Msg)
	}

	// Parameters of a plain tag are ignored entirely.
	m2, err := DecodeSystem(uint32(MsgDestroy), 0xDEAD, -1)
	if err != nil {
		t.Fatalf("DecodeSystem(Destroy) error: %v", err)
	}
	if got := m2.(Plain).Msg; got != MsgDestroy {
		t.Errorf("plain id = %v, want MsgDestroy", got)
	}
}

func TestDecodeSystemUnknown(t *testing.T) {
	// 0x0025 sits inside the system band but outside the known
	// table; the triple must come back untouched.
	const id = 0x0025
	m, err := DecodeSystem(id, 0x1234, -99)
	if err != nil {
		t.Fatalf("DecodeSystem(unknown) error: %v", err)
	}
	u, ok := m.(Unknown)
	if !ok {
		t.Fatalf("DecodeSystem(unknown) = %T, want Unknown", m)
	}
	want := RawEvent{Msg: id, WParam: 0x1234, LParam: -99}
	if u.Raw != want {
		t.Errorf("unknown raw = %+v, want %+v", u.Raw, want)
	}
	if u.ID() != MsgID(id) {
		t.Errorf("unknown ID() = %v, want %#x", u.ID(), id)
	}
}

func TestDecodeSystemPositions(t *testing.T) {
	tests := []struct {
		name string
		id   MsgID
		l    LParam
		want Point
	}{
		{"move", MsgMove, pack16(10, 20), Point{10, 20}},
		{"nc hit test negative", MsgNcHitTest, pack16(0xFFF6, 0xFFEC), Point{-10, -20}},
		{"mouse move", MsgMouseMove, pack16(640, 480), Point{640, 480}},
	}

	for _, tt := range tests {
		m, err := DecodeSystem(uint32(tt.id), 0, tt.l)
		if err != nil {
			t.Fatalf("%s: error: %v", tt.name, err)
		}
		var got Point
		switch v := m.(type) {
		case Move:
			got = v.Pos
		case NcHitTest:
			got = v.Pos
		case MouseMove:
			got = v.Pos
		default:
			t.Fatalf("%s: unexpected type %T", tt.name, m)
		}
		if got != tt.want {
			t.Errorf("%s: pos = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestDecodeSize(t *testing.T) {
	m, err := DecodeSystem(uint32(MsgSize), WParam(ResizeMaximized), pack16(800, 600))
	if err != nil {
		t.Fatalf("DecodeSystem(Size) error: %v", err)
	}
	s := m.(Size)
	if s.Kind != ResizeMaximized || s.Width != 800 || s.Height != 600 {
		t.Errorf("Size = %+v, want maximized 800x600", s)
	}

	if _, err := DecodeSystem(uint32(MsgSize), 5, 0); err == nil {
		t.Error("DecodeSystem(Size, kind=5) error = nil, want EnumError")
	}
}

func TestDecodeActivate(t *testing.T) {
	m, err := DecodeSystem(uint32(MsgActivate), WParam(pack32(uint16(ActivationClickActive), 1)), 0x1234)
	if err != nil {
		t.Fatalf("DecodeSystem(Activate) error: %v", err)
	}
	a := m.(Activate)
	if a.State != ActivationClickActive {
		t.Errorf("state = %v, want click-active", a.State)
	}
	if !a.Minimized {
		t.Error("minimized = false, want true")
	}
	if a.Window != 0x1234 {
		t.Errorf("window = %#x, want 0x1234", uintptr(a.Window))
	}

	_, err = DecodeSystem(uint32(MsgActivate), 3, 0)
	if err == nil {
		t.Fatal("DecodeSystem(Activate, state=3) error = nil, want EnumError")
	}
	if !errors.Is(err, ErrInvalidEnum) {
		t.Errorf("error %v does not wrap ErrInvalidEnum", err)
	}
	var ee *EnumError
	if !errors.As(err, &ee) {
		t.Fatalf("error %v is not an EnumError", err)
	}
	if ee.Msg != MsgActivate || ee.Value != 3 {
		t.Errorf("EnumError = %+v, want MsgActivate value 3", ee)
	}
}

func pack32(low, high uint16) uint32 {
	return uint32(low) | uint32(high)<<16
}

func TestDecodeEnumRejection(t *testing.T) {
	tests := []struct {
		name string
		id   MsgID
		w    WParam
	}{
		{"icon size", MsgGetIcon, 3},
		{"set icon size", MsgSetIcon, 9},
		{"power event", MsgPowerBroadcast, 0x9999},
		{"style target", MsgStyleChanging, 7},
		{"style target changed", MsgStyleChanged, 7},
	}

	for _, tt := range tests {
		_, err := DecodeSystem(uint32(tt.id), tt.w, 0)
		if !errors.Is(err, ErrInvalidEnum) {
			t.Errorf("%s: error = %v, want ErrInvalidEnum", tt.name, err)
		}
	}
}

func TestDecodeStyleChanging(t *testing.T) {
	// The style-target selector is a small negative value carried in
	// the unsigned word.
	w := WParam(uint32(0xFFFFFFF0)) // -16
	m, err := DecodeSystem(uint32(MsgStyleChanging), w, 0xBEEF)
	if err != nil {
		t.Fatalf("DecodeSystem(StyleChanging) error: %v", err)
	}
	sc := m.(StyleChanging)
	if sc.Target != StyleTargetStyle {
		t.Errorf("target = %v, want style", sc.Target)
	}
	if sc.Style != 0xBEEF {
		t.Errorf("style ptr = %#x, want 0xBEEF", uintptr(sc.Style))
	}
}

func TestDecodeKeyMessages(t *testing.T) {
	const packed = 0x60010041
	tests := []struct {
		id       MsgID
		released bool
		system   bool
	}{
		{MsgKeyDown, false, false},
		{MsgKeyUp, true, false},
		{MsgSysKeyDown, false, true},
		{MsgSysKeyUp, true, true},
	}

	for _, tt := range tests {
		m, err := DecodeSystem(uint32(tt.id), 0x41, LParam(int32(packed)))
		if err != nil {
			t.Fatalf("%v: error: %v", tt.id, err)
		}
		var code WParam
		var st keystate.State
		switch k := m.(type) {
		case KeyDown:
			code, st = k.Code, k.State
		case KeyUp:
			code, st = k.Code, k.State
		case SysKeyDown:
			code, st = k.Code, k.State
		case SysKeyUp:
			code, st = k.Code, k.State
		default:
			t.Fatalf("%v: unexpected type %T", tt.id, m)
		}
		if code != 0x41 {
			t.Errorf("%v: code = %#x, want 0x41", tt.id, code)
		}
		if want := keystate.Decode(packed); st != want {
			t.Errorf("%v: state = %+v, want %+v", tt.id, st, want)
		}
	}
}

func TestDecodeMouseButtons(t *testing.T) {
	m, err := DecodeSystem(uint32(MsgLButtonDown), 0x0001, pack16(10, 20))
	if err != nil {
		t.Fatalf("DecodeSystem(LButtonDown) error: %v", err)
	}
	b := m.(LButtonDown)
	if b.Modifiers != 0x0001 {
		t.Errorf("modifiers = %#x, want 0x0001", b.Modifiers)
	}
	if b.Pos != (Point{10, 20}) {
		t.Errorf("pos = %+v, want {10 20}", b.Pos)
	}
}

func TestDecodeXButton(t *testing.T) {
	m, err := DecodeSystem(uint32(MsgXButtonUp), WParam(pack32(0x0004, 2)), pack16(1, 2))
	if err != nil {
		t.Fatalf("DecodeSystem(XButtonUp) error: %v", err)
	}
	x := m.(XButtonUp)
	if x.Modifiers != 0x0004 || x.Button != 2 {
		t.Errorf("XButtonUp = %+v, want modifiers 0x4 button 2", x)
	}
}

func TestDecodeMouseWheel(t *testing.T) {
	m, err := DecodeSystem(uint32(MsgMouseWheel), WParam(pack32(0x0008, 0xFF88)), pack16(5, 6))
	if err != nil {
		t.Fatalf("DecodeSystem(MouseWheel) error: %v", err)
	}
	w := m.(MouseWheel)
	if w.Delta != -120 {
		t.Errorf("delta = %d, want -120", w.Delta)
	}
	if w.Modifiers != 0x0008 {
		t.Errorf("modifiers = %#x, want 0x0008", w.Modifiers)
	}
}

func TestDecodeNcCalcSize(t *testing.T) {
	tests := []struct {
		w        WParam
		validate bool
	}{
		{1, true},
		{0, false},
	}

	for _, tt := range tests {
		m, err := DecodeSystem(uint32(MsgNcCalcSize), tt.w, 0x7000)
		if err != nil {
			t.Fatalf("DecodeSystem(NcCalcSize) error: %v", err)
		}
		nc := m.(NcCalcSize)
		if nc.Validate != tt.validate {
			t.Errorf("validate = %v, want %v", nc.Validate, tt.validate)
		}
		if nc.Data != 0x7000 {
			t.Errorf("data = %#x, want 0x7000", uintptr(nc.Data))
		}
	}
}

func TestDecodePowerBroadcast(t *testing.T) {
	m, err := DecodeSystem(uint32(MsgPowerBroadcast), WParam(PowerSettingChange), 0x9000)
	if err != nil {
		t.Fatalf("DecodeSystem(PowerBroadcast) error: %v", err)
	}
	p := m.(PowerBroadcast)
	if p.Event != PowerSettingChange {
		t.Errorf("event = %v, want setting-change", p.Event)
	}
	if p.Setting.IsNil() {
		t.Error("setting pointer absent, want present")
	}
}

func TestDecodePointerPayloads(t *testing.T) {
	tests := []struct {
		name string
		id   MsgID
		l    LParam
		nil_ bool
	}{
		{"create present", MsgCreate, 0x1000, false},
		{"create absent", MsgCreate, 0, true},
		{"min max info", MsgGetMinMaxInfo, 0x2000, false},
		{"window pos changing", MsgWindowPosChanging, 0x3000, false},
	}

	for _, tt := range tests {
		m, err := DecodeSystem(uint32(tt.id), 0, tt.l)
		if err != nil {
			t.Fatalf("%s: error: %v", tt.name, err)
		}
		var p Pointer
		switch v := m.(type) {
		case Create:
			p = v.Params
		case GetMinMaxInfo:
			p = v.Info
		case WindowPosChanging:
			p = v.Pos
		default:
			t.Fatalf("%s: unexpected type %T", tt.name, m)
		}
		if p.IsNil() != tt.nil_ {
			t.Errorf("%s: IsNil() = %v, want %v", tt.name, p.IsNil(), tt.nil_)
		}
	}
}

func TestParseSystem(t *testing.T) {
	ev, err := Parse(0, 0, 0)
	if err != nil {
		t.Fatalf("Parse(0, 0, 0) error: %v", err)
	}
	if ev.Band != BandSystem {
		t.Errorf("band = %v, want system", ev.Band)
	}
	if p, ok := ev.Message.(Plain); !ok || p.Msg != MsgNull {
		t.Errorf("message = %#v, want Plain{MsgNull}", ev.Message)
	}
	if ev.Raw != (RawEvent{}) {
		t.Errorf("raw = %+v, want zero triple", ev.Raw)
	}

	if _, err := Parse(uint32(MsgSize), 9, 0); !errors.Is(err, ErrInvalidEnum) {
		t.Errorf("Parse(Size, kind=9) error = %v, want ErrInvalidEnum", err)
	}
}

// Every registered identifier must decode to a message that reports
// the identifier it was decoded from.
func TestDecodeIDRoundTrip(t *testing.T) {
	for id := range decoders {
		m, err := DecodeSystem(uint32(id), 0, 0)
		if err != nil {
			// Enumerated payloads reject zero when zero is not a
			// member of the set; those are exercised separately.
			continue
		}
		if m.ID() != id {
			t.Errorf("DecodeSystem(%v).ID() = %v", id, m.ID())
		}
	}
}

// Every known identifier has a protocol name and every name maps to
// a registered decoder.
func TestMsgNamesMatchDecoders(t *testing.T) {
	for id := range decoders {
		if _, ok := msgNames[id]; !ok {
			t.Errorf("decoder for %#x has no name", uint32(id))
		}
	}
	for id := range msgNames {
		if _, ok := decoders[id]; !ok {
			t.Errorf("name %q has no decoder", msgNames[id])
		}
	}
}
