package netx

import (
	"context"
	"sync"
)

// Pipe is one end of an in-process line stream. Lines sent on one end
// arrive on the other end's Inbox. Closing either end closes both.
// Handy for tests and single-process demos without sockets.
type Pipe struct {
	pump
	in   chan string
	peer *Pipe

	startOnce sync.Once
}

// NewPipe returns two connected ends.
func NewPipe() (*Pipe, *Pipe) {
	a := &Pipe{pump: newPump(1024), in: make(chan string, 1024)}
	b := &Pipe{pump: newPump(1024), in: make(chan string, 1024)}
	a.peer, b.peer = b, a
	return a, b
}

// Start begins forwarding queued lines to Inbox.
func (p *Pipe) Start(ctx context.Context) error {
	p.startOnce.Do(func() {
		go p.forward(ctx)
	})
	return nil
}

func (p *Pipe) forward(ctx context.Context) {
	for {
		select {
		case line := <-p.in:
			if !p.deliver(line) {
				p.finish("read", ErrClosed)
				return
			}
		case <-p.done:
			p.finish("read", ErrClosed)
			return
		case <-ctx.Done():
			p.finish("read", ctx.Err())
			return
		}
	}
}

func (p *Pipe) Send(line string) error {
	if _, err := EncodeLine(line); err != nil {
		return err
	}
	if p.closing() || p.peer.closing() {
		return &TransportFailure{Op: "write", Err: ErrClosed}
	}
	select {
	case p.peer.in <- line:
		return nil
	case <-p.done:
	case <-p.peer.done:
	}
	return &TransportFailure{Op: "write", Err: ErrClosed}
}

func (p *Pipe) Close() error {
	p.shutdown()
	p.peer.shutdown()
	return nil
}
