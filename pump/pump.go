// Package pump drains the calling thread's message queue and hands
// each message to the parser. It only functions on Windows; on every
// other platform Run and Stop return ErrUnsupported, which lets
// portable callers compile and degrade at runtime.
package pump

import (
	"errors"

	"github.com/dshills/winmsg/wm"
)

// ErrUnsupported means the host platform has no message queue.
var ErrUnsupported = errors.New("message pump requires windows")

// Handler receives each parsed event. It runs on the pump thread, so
// it must not block the queue for long.
type Handler func(wm.Event)

// Option configures a Pump.
type Option func(*Pump)

// WithDecodeErrorHandler installs fn for messages the parser rejects.
// Without it, rejected messages are dropped and the pump keeps
// running.
func WithDecodeErrorHandler(fn func(error)) Option {
	return func(p *Pump) {
		p.onError = fn
	}
}

// New returns a Pump delivering events to h.
func New(h Handler, opts ...Option) *Pump {
	p := &Pump{handler: h}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
