package table

import (
	"socclient/internal/engine"
)

// MakeOffer installs the server-confirmed offer as o.From's current one.
// A draft answering an earlier offer from that seat is closed.
func (t *Table) MakeOffer(o engine.TradeOffer) error {
	return t.update(func(g *engine.Game) error {
		if err := g.MakeOffer(o); err != nil {
			return err
		}
		t.closeDraftFor(o.From)
		return nil
	})
}

// ClearOffer withdraws seat's offer; -1 clears every seat.
func (t *Table) ClearOffer(seat int) error {
	return t.update(func(g *engine.Game) error {
		if err := g.ClearOffer(seat); err != nil {
			return err
		}
		t.closeDraftFor(seat)
		return nil
	})
}

func (t *Table) RejectOffer(seat int) error {
	return t.update(func(g *engine.Game) error { return g.RejectOffer(seat) })
}

func (t *Table) AcceptOffer(accepting, offering int) error {
	return t.update(func(g *engine.Game) error {
		if err := g.AcceptOffer(accepting, offering); err != nil {
			return err
		}
		t.closeDraftFor(offering)
		return nil
	})
}

// ClearTradeMsg resets finished negotiation notices; -1 means every seat.
func (t *Table) ClearTradeMsg(seat int) error {
	return t.update(func(g *engine.Game) error { return g.ClearTradeMsg(seat) })
}

// unseat forgets our seat. A draft can only answer an offer made to our
// seat, so it goes too. Caller holds the write lock.
func (t *Table) unseat() {
	t.localSeat = engine.NoSeat
	if t.draft != nil {
		t.logger.Printf("game %s: counter-offer draft to seat %d closed, no longer seated", t.g.Name, t.draft.From)
		t.draft = nil
	}
}

// closeDraftFor drops the draft when the offer it answers went away.
func (t *Table) closeDraftFor(seat int) {
	if t.draft != nil && (seat == -1 || seat == t.draft.From) {
		t.logger.Printf("game %s: counter-offer draft to seat %d closed", t.g.Name, t.draft.From)
		t.draft = nil
	}
}

// OpenCounterDraft starts composing a reply to the offer seat from made to
// us. Opening a new draft replaces any older one.
func (t *Table) OpenCounterDraft(from int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.defunct {
		return ErrDefunct
	}
	if t.localSeat == engine.NoSeat {
		return ErrNotSeated
	}
	p, err := t.g.Player(from)
	if err != nil {
		return err
	}
	if p.Offer == nil || !p.Offer.OfferedTo(t.localSeat) {
		return ErrNoOfferToUs
	}
	t.draft = &engine.CounterDraft{From: from, Original: *p.Offer}
	return nil
}

func (t *Table) IsCounterDraftOpen() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.draft != nil
}

func (t *Table) CancelCounterDraft() {
	t.mu.Lock()
	t.draft = nil
	t.mu.Unlock()
}

// ComposeCounter validates a counter-offer against our hand and returns
// the offer to transmit. It goes only to the draft's original proposer.
// The draft stays open until the caller closes it.
func (t *Table) ComposeCounter(give, get engine.ResourceSet) (engine.TradeOffer, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.localSeat == engine.NoSeat {
		return engine.TradeOffer{}, ErrNotSeated
	}
	if t.draft == nil {
		return engine.TradeOffer{}, ErrNoDraft
	}
	own := t.g.Players[t.localSeat].Resources
	if err := engine.ValidateOffer(own, give, get); err != nil {
		return engine.TradeOffer{}, err
	}
	return t.draft.Compose(t.localSeat, len(t.g.Players), give, get), nil
}

// ComposeOffer validates an ordinary offer from us to the listed seats.
func (t *Table) ComposeOffer(give, get engine.ResourceSet, to []int) (engine.TradeOffer, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.localSeat == engine.NoSeat {
		return engine.TradeOffer{}, ErrNotSeated
	}
	own := t.g.Players[t.localSeat].Resources
	if err := engine.ValidateOffer(own, give, get); err != nil {
		return engine.TradeOffer{}, err
	}
	o := engine.NewTradeOffer(t.localSeat, len(t.g.Players), to, give, get)
	if len(o.Recipients()) == 0 {
		return engine.TradeOffer{}, &engine.InvalidOfferError{Reason: engine.MsgNoRecipients}
	}
	return o, nil
}
