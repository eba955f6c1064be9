package client

import (
	"fmt"
	"log"
	"runtime/debug"
	"strings"
	"sync"

	"socclient/internal/protocol"
)

// Handler applies one decoded message. A returned error is logged and the
// message dropped; it never reaches the caller of Dispatch.
type Handler func(m protocol.Message) error

// Router is the dispatch table: exactly one handler per message type.
type Router struct {
	logger *log.Logger

	mu     sync.RWMutex
	routes map[protocol.MsgType]Handler
}

func NewRouter(logger *log.Logger) *Router {
	if logger == nil {
		logger = log.Default()
	}
	return &Router{logger: logger, routes: make(map[protocol.MsgType]Handler)}
}

// Register binds h to t, replacing any earlier binding.
func (r *Router) Register(t protocol.MsgType, h Handler) {
	r.mu.Lock()
	r.routes[t] = h
	r.mu.Unlock()
}

func (r *Router) Handles(t protocol.MsgType) bool {
	r.mu.RLock()
	_, ok := r.routes[t]
	r.mu.RUnlock()
	return ok
}

// Dispatch runs m's handler. Unregistered types, handler errors and
// handler panics each produce one log line and nothing else.
func (r *Router) Dispatch(m protocol.Message) {
	r.mu.RLock()
	h, ok := r.routes[m.Type()]
	r.mu.RUnlock()
	if !ok {
		r.logger.Print((&protocol.UnknownTypeError{Type: m.Type(), Fields: m.Fields()}).Error())
		return
	}

	defer func() {
		if p := recover(); p != nil {
			r.logger.Printf("dispatch %s: panic: %v fields=[%s]\n%s", m.Type(), p, strings.Join(m.Fields(), ","), debug.Stack())
		}
	}()
	if err := h(m); err != nil {
		r.logger.Print(dispatchFailure(m, err))
	}
}

func dispatchFailure(m protocol.Message, err error) string {
	return fmt.Sprintf("dispatch %s: %v fields=[%s]", m.Type(), err, strings.Join(m.Fields(), ","))
}
