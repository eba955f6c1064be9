package netx

import (
	"context"
	"log"
	"strings"

	"github.com/pkg/errors"
	"nhooyr.io/websocket"
)

// WebSocket carries the line protocol over a websocket, one text frame
// per line. Frames holding several newline-separated lines are split.
type WebSocket struct {
	url string
	pump

	c      *websocket.Conn
	ctx    context.Context
	cancel context.CancelFunc
}

func NewWebSocket(url string) *WebSocket {
	return &WebSocket{url: url, pump: newPump(1024)}
}

func (w *WebSocket) Start(ctx context.Context) error {
	c, _, err := websocket.Dial(ctx, w.url, nil)
	if err != nil {
		return errors.Wrapf(err, "dial %s", w.url)
	}
	c.SetReadLimit(MaxLineLen)
	w.c = c
	w.ctx, w.cancel = context.WithCancel(context.Background())
	log.Printf("websocket connected to %s", w.url)

	go w.readLoop()
	return nil
}

func (w *WebSocket) readLoop() {
	for {
		typ, data, err := w.c.Read(w.ctx)
		if err != nil {
			w.finish("read", err)
			return
		}
		if typ != websocket.MessageText {
			log.Printf("websocket %s: dropping binary frame (%d bytes)", w.url, len(data))
			continue
		}
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimRight(line, "\r")
			if line == "" {
				continue
			}
			if !w.deliver(line) {
				w.finish("read", ErrClosed)
				return
			}
		}
	}
}

// Send writes one line as a text frame. websocket.Conn serializes writers.
func (w *WebSocket) Send(line string) error {
	if _, err := EncodeLine(line); err != nil {
		return err
	}
	if w.c == nil {
		return ErrNotStarted
	}
	if w.closing() {
		return &TransportFailure{Op: "write", Err: ErrClosed}
	}
	if err := w.c.Write(w.ctx, websocket.MessageText, []byte(line)); err != nil {
		return &TransportFailure{Op: "write", Err: err}
	}
	return nil
}

func (w *WebSocket) Close() error {
	if !w.shutdown() || w.c == nil {
		return nil
	}
	defer w.cancel()
	log.Printf("websocket disconnected from %s", w.url)
	return w.c.Close(websocket.StatusNormalClosure, "bye")
}
