package netx

import (
	"bufio"
	"context"
	"log"
	"net"
	"sync"

	"github.com/pkg/errors"
)

// TCP is a client conn to a line-oriented game server.
type TCP struct {
	addr string
	pump

	wmu  sync.Mutex
	conn net.Conn
}

func NewTCP(addr string) *TCP {
	return &TCP{addr: addr, pump: newPump(1024)}
}

// Start dials the server and spawns the reader.
func (t *TCP) Start(ctx context.Context) error {
	var d net.Dialer
	c, err := d.DialContext(ctx, "tcp", t.addr)
	if err != nil {
		return errors.Wrapf(err, "dial %s", t.addr)
	}
	if tc, ok := c.(*net.TCPConn); ok {
		_ = tc.SetNoDelay(true)
	}
	t.wmu.Lock()
	t.conn = c
	t.wmu.Unlock()
	log.Printf("tcp connected to %s", t.addr)

	go t.readLoop(c)
	return nil
}

func (t *TCP) readLoop(c net.Conn) {
	r := bufio.NewReader(c)
	for {
		line, err := DecodeLine(r)
		if err != nil {
			t.finish("read", err)
			return
		}
		if !t.deliver(line) {
			t.finish("read", ErrClosed)
			return
		}
	}
}

// Send writes one line. Concurrent senders are serialized so frames never
// interleave.
func (t *TCP) Send(line string) error {
	frame, err := EncodeLine(line)
	if err != nil {
		return err
	}
	t.wmu.Lock()
	defer t.wmu.Unlock()
	if t.conn == nil {
		return ErrNotStarted
	}
	if t.closing() {
		return &TransportFailure{Op: "write", Err: ErrClosed}
	}
	if _, err := t.conn.Write(frame); err != nil {
		return &TransportFailure{Op: "write", Err: err}
	}
	return nil
}

func (t *TCP) Close() error {
	if !t.shutdown() {
		return nil
	}
	t.wmu.Lock()
	defer t.wmu.Unlock()
	if t.conn == nil {
		return nil
	}
	log.Printf("tcp disconnected from %s", t.addr)
	return t.conn.Close()
}
