package trace

import (
	"fmt"
	"io"

	"github.com/tidwall/sjson"

	"github.com/dshills/winmsg/wm"
	"github.com/dshills/winmsg/wm/kbd"
	"github.com/dshills/winmsg/wm/mouse"
)

// Writer emits one enriched JSON record per event.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer emitting records to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write marshals ev and appends it to the trace as a single line.
func (t *Writer) Write(ev wm.Event) error {
	line, err := Marshal(ev)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(t.w, line)
	return err
}

// Marshal renders ev as a single JSON record. System-band events
// carry the protocol name of their tag; other bands carry the offset
// from the band base instead.
func Marshal(ev wm.Event) (string, error) {
	b := builder{line: "{}"}

	// Raw.Msg is rebased outside the system band; Base recovers the
	// identifier as it was received.
	b.set("msg", ev.Raw.Msg+ev.Band.Base())
	b.set("wparam", uint64(ev.Raw.WParam))
	b.set("lparam", int64(ev.Raw.LParam))
	b.set("band", ev.Band.String())

	if ev.Band == wm.BandSystem {
		b.set("name", ev.Message.ID().String())
		marshalViews(&b, ev.Message)
	} else {
		b.set("offset", ev.Raw.Msg)
	}

	if b.err != nil {
		return "", b.err
	}
	return b.line, nil
}

func marshalViews(b *builder, m wm.Message) {
	if k, ok := kbd.FromMessage(m); ok {
		b.set("key.code", uint64(k.Code))
		b.set("key.released", k.Released)
		b.set("key.system", k.System)
		b.set("key.count", k.State.RepeatCount)
		b.set("key.scan", k.State.ScanCode)
		b.set("key.extended", k.State.Extended)
		return
	}
	if bt, ok := mouse.FromMessage(m); ok {
		b.set("button.action", bt.Action.String())
		b.set("button.button", bt.Button.String())
		if bt.Button == mouse.ButtonExtended {
			b.set("button.index", bt.XIndex)
		}
		b.set("button.x", bt.Pos.X)
		b.set("button.y", bt.Pos.Y)
	}
}

// builder threads an sjson document through repeated sets, keeping
// the first error.
type builder struct {
	line string
	err  error
}

func (b *builder) set(path string, value any) {
	if b.err != nil {
		return
	}
	b.line, b.err = sjson.Set(b.line, path, value)
}
