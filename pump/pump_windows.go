//go:build windows

package pump

import (
	"fmt"
	"runtime"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/dshills/winmsg/wm"
)

var (
	user32                 = windows.NewLazySystemDLL("user32.dll")
	procGetMessageW        = user32.NewProc("GetMessageW")
	procTranslateMessage   = user32.NewProc("TranslateMessage")
	procDispatchMessageW   = user32.NewProc("DispatchMessageW")
	procPostThreadMessageW = user32.NewProc("PostThreadMessageW")
)

const msgQuit = 0x0012

type msg struct {
	hwnd    windows.Handle
	message uint32
	wParam  uintptr
	lParam  uintptr
	time    uint32
	pt      struct{ x, y int32 }
}

// Pump owns one thread-bound message loop.
type Pump struct {
	handler Handler
	onError func(error)

	tid atomic.Uint32
}

// Run pumps the queue until WM_QUIT arrives or GetMessageW fails.
// The loop pins its goroutine to an OS thread; the queue belongs to
// that thread, so Run must not be called twice concurrently on the
// same Pump.
func (p *Pump) Run() error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	p.tid.Store(windows.GetCurrentThreadId())
	defer p.tid.Store(0)

	var m msg
	for {
		r, _, callErr := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		switch int32(r) {
		case -1:
			return fmt.Errorf("GetMessageW: %w", callErr)
		case 0:
			return nil
		}

		ev, err := wm.Parse(m.message, wm.WParam(m.wParam), wm.LParam(m.lParam))
		if err != nil {
			if p.onError != nil {
				p.onError(err)
			}
		} else {
			p.handler(ev)
		}

		_, _, _ = procTranslateMessage.Call(uintptr(unsafe.Pointer(&m))) // best-effort; no failure signal
		_, _, _ = procDispatchMessageW.Call(uintptr(unsafe.Pointer(&m)))
	}
}

// Stop posts WM_QUIT to the pump thread, unwinding Run. It is a
// no-op when the pump is not running.
func (p *Pump) Stop() error {
	tid := p.tid.Load()
	if tid == 0 {
		return nil
	}
	r, _, callErr := procPostThreadMessageW.Call(uintptr(tid), msgQuit, 0, 0)
	if r == 0 {
		return fmt.Errorf("PostThreadMessageW: %w", callErr)
	}
	return nil
}
