package netx

import (
	"context"
	"sync"
)

// Conn is one ordered, line-framed session with a game server. Lines
// arrive on Inbox in the order the server sent them; Inbox is closed when
// the stream ends, after which Err reports why.
type Conn interface {
	Start(ctx context.Context) error
	Inbox() <-chan string
	Send(line string) error
	Err() error
	Close() error
}

// pump is the inbound half every transport shares. Only the transport's
// reader goroutine delivers to and closes inbox.
type pump struct {
	inbox chan string
	done  chan struct{}
	once  sync.Once

	mu  sync.Mutex
	err error
}

func newPump(buf int) pump {
	return pump{
		inbox: make(chan string, buf),
		done:  make(chan struct{}),
	}
}

func (p *pump) Inbox() <-chan string { return p.inbox }

func (p *pump) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// deliver hands line to the consumer unless the conn is shutting down.
func (p *pump) deliver(line string) bool {
	select {
	case p.inbox <- line:
		return true
	case <-p.done:
		return false
	}
}

// finish records the failure and closes inbox. Reader goroutine only.
func (p *pump) finish(op string, err error) {
	p.mu.Lock()
	if p.err == nil {
		if p.closing() {
			err = ErrClosed
		}
		p.err = &TransportFailure{Op: op, Err: err}
	}
	p.mu.Unlock()
	close(p.inbox)
}

// shutdown reports true only for the first caller.
func (p *pump) shutdown() bool {
	first := false
	p.once.Do(func() {
		close(p.done)
		first = true
	})
	return first
}

func (p *pump) closing() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}
