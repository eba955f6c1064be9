package table

import "github.com/pkg/errors"

var (
	ErrDefunct     = errors.New("table is defunct")
	ErrNotSeated   = errors.New("not seated at this game")
	ErrNoOfferToUs = errors.New("no offer addressed to us from that seat")
	ErrNoDraft     = errors.New("no counter-offer draft open")
)
