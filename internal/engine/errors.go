package engine

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidOffer  = errors.New("invalid trade offer")
	ErrOutOfSync     = errors.New("replica out of sync")
	ErrNoSuchSeat    = errors.New("no such seat")
	ErrUnknownAction = errors.New("unknown element action")
)

// ReconciliationWarning marks a delta the replica could not apply exactly.
// The state has already been clamped; the server's next broadcast corrects it.
type ReconciliationWarning struct {
	Subject string
	Detail  string
	Err     error
}

func (w *ReconciliationWarning) Error() string {
	return fmt.Sprintf("reconcile %s: %s", w.Subject, w.Detail)
}

func (w *ReconciliationWarning) Is(target error) bool { return target == ErrOutOfSync }

func (w *ReconciliationWarning) Unwrap() error { return w.Err }

// InvalidOfferError carries advisory text suitable for showing the user.
type InvalidOfferError struct {
	Reason string
}

func (e *InvalidOfferError) Error() string { return e.Reason }

func (e *InvalidOfferError) Unwrap() error { return ErrInvalidOffer }
