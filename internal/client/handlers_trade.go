package client

import (
	"socclient/internal/engine"
	"socclient/internal/protocol"
	"socclient/internal/table"
)

// offerFieldCount is everything in a MAKEOFFER except the recipient flags:
// game, from, give*5, get*5.
const offerFieldCount = 12

// MAKEOFFER: game, from, to0..N-1, give*5, get*5
func (c *Client) handleMakeOffer(t *table.Table, m protocol.Message) error {
	n := m.Len() - offerFieldCount
	if n != t.Seats() {
		return errPayloadSize
	}
	from, err := m.Int(1)
	if err != nil {
		return err
	}
	to, err := m.Bools(2, n)
	if err != nil {
		return err
	}
	give, err := m.Ints(2+n, 5)
	if err != nil {
		return err
	}
	get, err := m.Ints(7+n, 5)
	if err != nil {
		return err
	}
	o := engine.TradeOffer{
		From: from,
		To:   to,
		Give: engine.ResourcesFromSlice(give),
		Get:  engine.ResourcesFromSlice(get),
	}
	if err := t.MakeOffer(o); err != nil {
		return err
	}
	c.presenter.OnOfferChanged(t.Name(), from)
	return nil
}

func (c *Client) handleClearOffer(t *table.Table, m protocol.Message) error {
	seat, err := m.Int(1)
	if err != nil {
		return err
	}
	if err := t.ClearOffer(seat); err != nil {
		return err
	}
	c.presenter.OnOfferChanged(t.Name(), seat)
	return nil
}

func (c *Client) handleRejectOffer(t *table.Table, m protocol.Message) error {
	seat, err := m.Int(1)
	if err != nil {
		return err
	}
	if err := t.RejectOffer(seat); err != nil {
		return err
	}
	c.presenter.OnOfferChanged(t.Name(), seat)
	return nil
}

// ACCEPTOFFER: game, accepting, offering
func (c *Client) handleAcceptOffer(t *table.Table, m protocol.Message) error {
	v, err := m.Ints(1, 2)
	if err != nil {
		return err
	}
	if err := t.AcceptOffer(v[0], v[1]); err != nil {
		return err
	}
	c.presenter.OnOfferChanged(t.Name(), v[1])
	return nil
}

func (c *Client) handleClearTradeMsg(t *table.Table, m protocol.Message) error {
	seat, err := m.Int(1)
	if err != nil {
		return err
	}
	if err := t.ClearTradeMsg(seat); err != nil {
		return err
	}
	c.presenter.OnOfferChanged(t.Name(), seat)
	return nil
}
