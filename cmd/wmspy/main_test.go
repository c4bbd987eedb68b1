package main

import (
	"strings"
	"testing"

	"github.com/dshills/winmsg/wm"
)

func TestFormatEvent(t *testing.T) {
	tests := []struct {
		name string
		msg  uint32
		w    wm.WParam
		l    wm.LParam
		want []string
	}{
		{"plain", 0x000F, 0, 0, []string{"Paint"}},
		{"key down", 0x0100, 0x41, 0x00010041, []string{"KeyDown", "key down", "vk=0x0041"}},
		{"sys key", 0x0104, 0x12, wm.LParam(int32(uint32(0x20000001))), []string{"SysKeyDown", "sys"}},
		{"button", 0x0201, 0, 10 | 20<<16, []string{"LButtonDown", "left down (10, 20)"}},
		{"extended button", 0x020B, wm.WParam(2 << 16), 0, []string{"XButtonDown", "extended down", "#2"}},
		{"user band", 0x0407, 1, 2, []string{"user+0x0007"}},
		{"app band", 0x8001, 0, 0, []string{"app+0x0001"}},
	}

	for _, tt := range tests {
		ev, err := wm.Parse(tt.msg, tt.w, tt.l)
		if err != nil {
			t.Fatalf("%s: Parse error: %v", tt.name, err)
		}
		got := formatEvent(ev)
		for _, want := range tt.want {
			if !strings.Contains(got, want) {
				t.Errorf("%s: formatEvent = %q, missing %q", tt.name, got, want)
			}
		}
	}
}
