package mouse_test

import (
	"testing"

	"github.com/dshills/winmsg/wm"
	"github.com/dshills/winmsg/wm/kbd"
	"github.com/dshills/winmsg/wm/mouse"
)

func TestFromMessage(t *testing.T) {
	pos := wm.Point{X: 10, Y: 20}

	tests := []struct {
		name string
		msg  wm.Message
		want mouse.Event
	}{
		{
			name: "left down",
			msg:  wm.LButtonDown{Modifiers: 0x0001, Pos: pos},
			want: mouse.Event{Action: mouse.ActionDown, Button: mouse.ButtonLeft, Pos: pos, Modifiers: mouse.ModLeftButton},
		},
		{
			name: "left up",
			msg:  wm.LButtonUp{Pos: pos},
			want: mouse.Event{Action: mouse.ActionUp, Button: mouse.ButtonLeft, Pos: pos},
		},
		{
			name: "left double click",
			msg:  wm.LButtonDblClk{Pos: pos},
			want: mouse.Event{Action: mouse.ActionDoubleClick, Button: mouse.ButtonLeft, Pos: pos},
		},
		{
			name: "right down with shift",
			msg:  wm.RButtonDown{Modifiers: 0x0004, Pos: pos},
			want: mouse.Event{Action: mouse.ActionDown, Button: mouse.ButtonRight, Pos: pos, Modifiers: mouse.ModShift},
		},
		{
			name: "middle up with control",
			msg:  wm.MButtonUp{Modifiers: 0x0008, Pos: pos},
			want: mouse.Event{Action: mouse.ActionUp, Button: mouse.ButtonMiddle, Pos: pos, Modifiers: mouse.ModControl},
		},
		{
			name: "extended down",
			msg:  wm.XButtonDown{Button: 2, Pos: pos},
			want: mouse.Event{Action: mouse.ActionDown, Button: mouse.ButtonExtended, XIndex: 2, Pos: pos},
		},
		{
			name: "extended double click",
			msg:  wm.XButtonDblClk{Modifiers: 0x0020, Button: 1, Pos: pos},
			want: mouse.Event{Action: mouse.ActionDoubleClick, Button: mouse.ButtonExtended, XIndex: 1, Pos: pos, Modifiers: mouse.ModXButton1},
		},
	}

	for _, tt := range tests {
		got, ok := mouse.FromMessage(tt.msg)
		if !ok {
			t.Errorf("%s: FromMessage ok = false, want true", tt.name)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: FromMessage = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestFromMessageNonButton(t *testing.T) {
	msgs := []wm.Message{
		wm.Plain{Msg: wm.MsgNull},
		wm.MouseMove{Pos: wm.Point{X: 1, Y: 2}},
		wm.MouseWheel{Delta: -120},
		wm.NcMouseMove{Pos: wm.Point{X: 1, Y: 2}},
		wm.KeyDown{Code: 0x41},
		wm.Unknown{Raw: wm.RawEvent{Msg: 0x0025}},
	}

	for _, m := range msgs {
		if ev, ok := mouse.FromMessage(m); ok {
			t.Errorf("FromMessage(%T) = %+v, want no event", m, ev)
		}
	}
}

func TestModifiers(t *testing.T) {
	m := mouse.ModShift | mouse.ModMiddleButton
	if !m.HasShift() {
		t.Error("HasShift() = false, want true")
	}
	if m.HasControl() {
		t.Error("HasControl() = true, want false")
	}
	if !m.Has(mouse.ModMiddleButton) {
		t.Error("Has(middle) = false, want true")
	}
}

// A message matches at most one of the derived views. The keyboard
// and button projections are decided by tag identity, so no tag may
// appear in both.
func TestProjectionsExclusive(t *testing.T) {
	msgs := []wm.Message{
		wm.Plain{Msg: wm.MsgPaint},
		wm.KeyDown{Code: 0x41},
		wm.KeyUp{Code: 0x41},
		wm.SysKeyDown{Code: 0x12},
		wm.SysKeyUp{Code: 0x12},
		wm.LButtonDown{},
		wm.LButtonUp{},
		wm.LButtonDblClk{},
		wm.RButtonDown{},
		wm.RButtonUp{},
		wm.RButtonDblClk{},
		wm.MButtonDown{},
		wm.MButtonUp{},
		wm.MButtonDblClk{},
		wm.XButtonDown{Button: 1},
		wm.XButtonUp{Button: 1},
		wm.XButtonDblClk{Button: 1},
		wm.MouseMove{},
		wm.MouseWheel{},
		wm.Unknown{Raw: wm.RawEvent{Msg: 0x0025}},
	}

	for _, m := range msgs {
		_, isKey := kbd.FromMessage(m)
		_, isButton := mouse.FromMessage(m)
		if isKey && isButton {
			t.Errorf("%T matched both projections", m)
		}
	}
}
