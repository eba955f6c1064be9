package engine

import "fmt"

// OfferState tracks a seat through one round of negotiation.
type OfferState int

const (
	NoOffer OfferState = iota
	Offered
	Accepted
	Rejected
	Cleared
)

func (s OfferState) String() string {
	switch s {
	case NoOffer:
		return "none"
	case Offered:
		return "offered"
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	case Cleared:
		return "cleared"
	default:
		return fmt.Sprintf("offer(%d)", int(s))
	}
}

// Advisory texts shown when a local offer fails validation.
const (
	MsgCantOffer    = "You can't offer what you don't have."
	MsgEmptySide    = "A trade must contain at least one resource card from each player."
	MsgNoRecipients = "A trade offer must go to at least one other player."
)

// TradeOffer is a proposed exchange. Give and Get only use named buckets.
type TradeOffer struct {
	From int         `json:"from"`
	To   []bool      `json:"to"`
	Give ResourceSet `json:"give"`
	Get  ResourceSet `json:"get"`
}

// NewTradeOffer builds an offer from seat from to the listed seats.
func NewTradeOffer(from int, seats int, to []int, give, get ResourceSet) TradeOffer {
	o := TradeOffer{From: from, To: make([]bool, seats), Give: give, Get: get}
	for _, s := range to {
		if s >= 0 && s < seats && s != from {
			o.To[s] = true
		}
	}
	return o
}

// OfferedTo reports whether seat is one of the recipients.
func (o TradeOffer) OfferedTo(seat int) bool {
	return seat >= 0 && seat < len(o.To) && o.To[seat]
}

// Recipients lists targeted seats in ascending order.
func (o TradeOffer) Recipients() []int {
	var out []int
	for i, ok := range o.To {
		if ok {
			out = append(out, i)
		}
	}
	return out
}

func (o TradeOffer) clone() TradeOffer {
	c := o
	c.To = append([]bool(nil), o.To...)
	return c
}

// ValidateOffer is the local pre-send check. The server still validates.
func ValidateOffer(own, give, get ResourceSet) error {
	if !own.Contains(give) {
		return &InvalidOfferError{Reason: MsgCantOffer}
	}
	if give.KnownTotal() == 0 || get.KnownTotal() == 0 {
		return &InvalidOfferError{Reason: MsgEmptySide}
	}
	return nil
}

// CounterDraft is the local player's reply being composed to another
// seat's offer. It is local UI state; nothing is sent until Compose.
type CounterDraft struct {
	From     int        `json:"from"`
	Original TradeOffer `json:"original"`
}

// Compose turns the draft into an offer aimed only at the original
// proposer, regardless of who else that proposer addressed.
func (d CounterDraft) Compose(local, seats int, give, get ResourceSet) TradeOffer {
	return NewTradeOffer(local, seats, []int{d.From}, give, get)
}

// MakeOffer installs o as seat o.From's current offer, replacing any
// earlier one.
func (g *Game) MakeOffer(o TradeOffer) error {
	p, err := g.Player(o.From)
	if err != nil {
		return err
	}
	c := o.clone()
	if len(c.To) < len(g.Players) {
		c.To = append(c.To, make([]bool, len(g.Players)-len(c.To))...)
	}
	p.Offer = &c
	p.OfferState = Offered
	return nil
}

// ClearOffer withdraws seat's offer; seat -1 clears every seat.
func (g *Game) ClearOffer(seat int) error {
	return g.eachSeat(seat, func(p *Player) {
		p.Offer = nil
		p.OfferState = Cleared
	})
}

// RejectOffer puts up seat's "no thanks" notice. An offer seat itself
// has open stays live.
func (g *Game) RejectOffer(seat int) error {
	p, err := g.Player(seat)
	if err != nil {
		return err
	}
	p.OfferState = Rejected
	return nil
}

// AcceptOffer closes offering's offer as taken by accepting.
func (g *Game) AcceptOffer(accepting, offering int) error {
	if _, err := g.Player(accepting); err != nil {
		return err
	}
	p, err := g.Player(offering)
	if err != nil {
		return err
	}
	p.Offer = nil
	p.OfferState = Accepted
	return nil
}

// ClearTradeMsg drops a seat's accepted/rejected/cleared notice. A seat
// with a live offer goes back to Offered. seat -1 applies to every seat.
func (g *Game) ClearTradeMsg(seat int) error {
	return g.eachSeat(seat, func(p *Player) {
		if p.Offer != nil {
			p.OfferState = Offered
		} else {
			p.OfferState = NoOffer
		}
	})
}

func (g *Game) eachSeat(seat int, fn func(p *Player)) error {
	if seat == -1 {
		for i := range g.Players {
			fn(&g.Players[i])
		}
		return nil
	}
	p, err := g.Player(seat)
	if err != nil {
		return err
	}
	fn(p)
	return nil
}
