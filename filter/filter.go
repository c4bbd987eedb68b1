// Package filter evaluates Lua predicates over parsed events.
//
// A filter script defines a global function accept taking one event
// table and returning a truthy value to keep the event:
//
//	function accept(ev)
//	    return ev.band == "system" and ev.button ~= nil
//	end
//
// The event table mirrors the trace record shape: msg, wparam,
// lparam, band, plus name and the key or button view for system-band
// events.
package filter

import (
	"errors"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/winmsg/wm"
	"github.com/dshills/winmsg/wm/kbd"
	"github.com/dshills/winmsg/wm/mouse"
)

// acceptFn is the global the script must define.
const acceptFn = "accept"

var (
	// ErrNoAccept means the script did not define the accept function.
	ErrNoAccept = errors.New("script does not define accept")
	// ErrClosed means the filter was used after Close.
	ErrClosed = errors.New("filter is closed")
)

// Filter holds a compiled predicate script.
//
// The underlying Lua state is not goroutine-safe; the mutex
// serializes Accept calls, but a single Filter still evaluates one
// event at a time.
type Filter struct {
	mu     sync.Mutex
	l      *lua.LState
	closed bool
}

// New compiles script and verifies it defines accept. Only the base,
// table, string, and math libraries are available; io, os, debug,
// and package stay closed.
func New(script string) (*Filter, error) {
	l := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(l)
	lua.OpenTable(l)
	lua.OpenString(l)
	lua.OpenMath(l)

	if err := l.DoString(script); err != nil {
		l.Close()
		return nil, fmt.Errorf("compile filter: %w", err)
	}

	fn := l.GetGlobal(acceptFn)
	if fn.Type() != lua.LTFunction {
		l.Close()
		return nil, ErrNoAccept
	}

	return &Filter{l: l}, nil
}

// Accept evaluates the predicate against ev. Any truthy return keeps
// the event; nil and false drop it.
func (f *Filter) Accept(ev wm.Event) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return false, ErrClosed
	}

	err := f.l.CallByParam(lua.P{
		Fn:      f.l.GetGlobal(acceptFn),
		NRet:    1,
		Protect: true,
	}, eventTable(f.l, ev))
	if err != nil {
		return false, fmt.Errorf("run filter: %w", err)
	}

	ret := f.l.Get(-1)
	f.l.Pop(1)
	return lua.LVAsBool(ret), nil
}

// Close releases the Lua state. Accept returns ErrClosed afterwards.
func (f *Filter) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}
	f.l.Close()
	f.closed = true
}

// eventTable renders ev as a Lua table.
func eventTable(l *lua.LState, ev wm.Event) *lua.LTable {
	t := l.NewTable()
	t.RawSetString("msg", lua.LNumber(ev.Raw.Msg+ev.Band.Base()))
	t.RawSetString("wparam", lua.LNumber(ev.Raw.WParam))
	t.RawSetString("lparam", lua.LNumber(ev.Raw.LParam))
	t.RawSetString("band", lua.LString(ev.Band.String()))

	if ev.Band != wm.BandSystem {
		t.RawSetString("offset", lua.LNumber(ev.Raw.Msg))
		return t
	}

	t.RawSetString("name", lua.LString(ev.Message.ID().String()))

	if k, ok := kbd.FromMessage(ev.Message); ok {
		kt := l.NewTable()
		kt.RawSetString("code", lua.LNumber(k.Code))
		kt.RawSetString("released", lua.LBool(k.Released))
		kt.RawSetString("system", lua.LBool(k.System))
		kt.RawSetString("count", lua.LNumber(k.State.RepeatCount))
		kt.RawSetString("scan", lua.LNumber(k.State.ScanCode))
		kt.RawSetString("extended", lua.LBool(k.State.Extended))
		t.RawSetString("key", kt)
	} else if b, ok := mouse.FromMessage(ev.Message); ok {
		bt := l.NewTable()
		bt.RawSetString("action", lua.LString(b.Action.String()))
		bt.RawSetString("button", lua.LString(b.Button.String()))
		if b.Button == mouse.ButtonExtended {
			bt.RawSetString("index", lua.LNumber(b.XIndex))
		}
		bt.RawSetString("x", lua.LNumber(b.Pos.X))
		bt.RawSetString("y", lua.LNumber(b.Pos.Y))
		bt.RawSetString("shift", lua.LBool(b.Modifiers.HasShift()))
		bt.RawSetString("control", lua.LBool(b.Modifiers.HasControl()))
		t.RawSetString("button", bt)
	}

	return t
}
