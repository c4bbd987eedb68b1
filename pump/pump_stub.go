//go:build !windows

package pump

// Pump owns one thread-bound message loop. On this platform there is
// no message queue, so Run and Stop fail immediately.
type Pump struct {
	handler Handler
	onError func(error)
}

// Run returns ErrUnsupported.
func (p *Pump) Run() error { return ErrUnsupported }

// Stop returns ErrUnsupported.
func (p *Pump) Stop() error { return ErrUnsupported }
