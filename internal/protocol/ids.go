package protocol

import "github.com/google/uuid"

type SessionID string

// NewSessionID tags one connection's log lines.
func NewSessionID() SessionID { return SessionID("s-" + uuid.NewString()[:8]) }
