package protocol

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrMalformed   = errors.New("malformed message")
	ErrUnknownType = errors.New("unknown message type")
	ErrUnsafeField = errors.New("unsafe field")
)

// DecodeError reports a line that could not be parsed at all.
type DecodeError struct {
	Line   string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %q: %s", e.Line, e.Reason)
}

func (e *DecodeError) Unwrap() error { return ErrMalformed }

// UnknownTypeError describes a message whose type has no handler. It is
// logged, never fatal.
type UnknownTypeError struct {
	Type   MsgType
	Fields []string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unhandled message type %d fields=[%s]", int(e.Type), strings.Join(e.Fields, ","))
}

func (e *UnknownTypeError) Unwrap() error { return ErrUnknownType }

// ValidationError is returned by Encode when a field would misframe the line.
type ValidationError struct {
	Type   MsgType
	Index  int
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("encode %s: field %d %q: %s", e.Type, e.Index, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrUnsafeField }

// FieldError is returned by Message accessors for short or mistyped payloads.
type FieldError struct {
	Type   MsgType
	Index  int
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s field %d: %s", e.Type, e.Index, e.Reason)
}

func (e *FieldError) Unwrap() error { return ErrMalformed }
