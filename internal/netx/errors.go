package netx

import "github.com/pkg/errors"

var (
	ErrClosed      = errors.New("connection closed")
	ErrNotStarted  = errors.New("connection not started")
	ErrLineTooLong = errors.New("line too long")
)

// TransportFailure means the session stream is gone. Nothing more will
// be read from or written to the conn.
type TransportFailure struct {
	Op  string
	Err error
}

func (e *TransportFailure) Error() string {
	return "transport " + e.Op + ": " + e.Err.Error()
}

func (e *TransportFailure) Unwrap() error { return e.Err }
