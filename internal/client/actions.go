package client

import (
	"strconv"

	"github.com/pkg/errors"

	"socclient/internal/engine"
	"socclient/internal/protocol"
	"socclient/internal/table"
)

// seated finds a joined game in which we hold a seat.
func (c *Client) seated(game string) (*table.Table, int, error) {
	t, err := c.table(game)
	if err != nil {
		return nil, 0, err
	}
	seat := t.LocalSeat()
	if seat == engine.NoSeat {
		return nil, 0, errors.Wrap(table.ErrNotSeated, game)
	}
	return t, seat, nil
}

func (c *Client) password() string {
	if c.cfg.Password == "" {
		return protocol.Placeholder
	}
	return c.cfg.Password
}

func (c *Client) host() string {
	if c.cfg.Host == "" {
		return protocol.Placeholder
	}
	return c.cfg.Host
}

func itoas(vs ...int) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = strconv.Itoa(v)
	}
	return out
}

// offerFields renders game, from, one flag per seat, give and get.
func offerFields(game string, o engine.TradeOffer) []string {
	fields := []string{game, strconv.Itoa(o.From)}
	for _, to := range o.To {
		fields = append(fields, strconv.FormatBool(to))
	}
	fields = append(fields, itoas(o.Give.Slice()...)...)
	return append(fields, itoas(o.Get.Slice()...)...)
}

func (c *Client) RequestJoinGame(game string) error {
	return c.send(protocol.JoinGame, c.nick, c.password(), c.host(), game)
}

// RequestLeaveGame asks to leave. The replica goes when the server echoes
// our LEAVEGAME.
func (c *Client) RequestLeaveGame(game string) error {
	return c.send(protocol.LeaveGame, c.nick, c.host(), game)
}

func (c *Client) RequestJoinChannel(channel string) error {
	return c.send(protocol.Join, c.nick, c.password(), c.host(), channel)
}

func (c *Client) RequestLeaveChannel(channel string) error {
	return c.send(protocol.Leave, c.nick, c.host(), channel)
}

// RequestSit asks for seat. We send our own nickname; the server decides.
func (c *Client) RequestSit(game string, seat int) error {
	t, err := c.table(game)
	if err != nil {
		return err
	}
	if seat < 0 || seat >= t.Seats() {
		return errors.Wrapf(ErrBadChoice, "seat %d", seat)
	}
	return c.send(protocol.SitDown, game, c.nick, strconv.Itoa(seat), strconv.FormatBool(false))
}

func (c *Client) RequestStart(game string) error {
	if _, err := c.table(game); err != nil {
		return err
	}
	return c.send(protocol.StartGame, game)
}

// RequestRoll is only accepted on our own turn before the dice are rolled.
func (c *Client) RequestRoll(game string) error {
	t, seat, err := c.seated(game)
	if err != nil {
		return err
	}
	if t.Phase() != engine.PhasePlay || t.Current() != seat {
		return errors.Wrapf(ErrWrongPhase, "roll in %s", t.Phase())
	}
	return c.send(protocol.RollDice, game)
}

func (c *Client) RequestEndTurn(game string) error {
	if _, _, err := c.seated(game); err != nil {
		return err
	}
	return c.send(protocol.EndTurn, game)
}

// RequestOffer validates and sends an offer of give for get to the listed
// seats. An invalid offer returns *engine.InvalidOfferError and sends
// nothing.
func (c *Client) RequestOffer(game string, give, get engine.ResourceSet, to []int) error {
	t, _, err := c.seated(game)
	if err != nil {
		return err
	}
	if t.Phase() != engine.PhasePlay1 {
		return errors.Wrapf(ErrWrongPhase, "offer in %s", t.Phase())
	}
	o, err := t.ComposeOffer(give, get, to)
	if err != nil {
		return err
	}
	return c.send(protocol.MakeOffer, offerFields(game, o)...)
}

// RequestCounterOffer answers the offer held in the open counter draft.
// It goes only to the seat that made the original offer, and the draft
// closes once it is sent.
func (c *Client) RequestCounterOffer(game string, give, get engine.ResourceSet) error {
	t, _, err := c.seated(game)
	if err != nil {
		return err
	}
	if t.Phase() != engine.PhasePlay1 {
		return errors.Wrapf(ErrWrongPhase, "counter-offer in %s", t.Phase())
	}
	o, err := t.ComposeCounter(give, get)
	if err != nil {
		return err
	}
	if err := c.send(protocol.MakeOffer, offerFields(game, o)...); err != nil {
		return err
	}
	t.CancelCounterDraft()
	return nil
}

func (c *Client) RequestAcceptOffer(game string, from int) error {
	t, seat, err := c.seated(game)
	if err != nil {
		return err
	}
	p, err := t.Player(from)
	if err != nil {
		return err
	}
	if p.Offer == nil || !p.Offer.OfferedTo(seat) {
		return errors.Wrapf(table.ErrNoOfferToUs, "seat %d", from)
	}
	return c.send(protocol.AcceptOffer, game, strconv.Itoa(seat), strconv.Itoa(from))
}

func (c *Client) RequestRejectOffer(game string) error {
	_, seat, err := c.seated(game)
	if err != nil {
		return err
	}
	return c.send(protocol.RejectOffer, game, strconv.Itoa(seat))
}

func (c *Client) RequestClearOffer(game string) error {
	_, seat, err := c.seated(game)
	if err != nil {
		return err
	}
	return c.send(protocol.ClearOffer, game, strconv.Itoa(seat))
}

// RequestBankTrade follows the same local checks as a player offer.
func (c *Client) RequestBankTrade(game string, give, get engine.ResourceSet) error {
	t, _, err := c.seated(game)
	if err != nil {
		return err
	}
	own, _ := t.LocalResources()
	if err := engine.ValidateOffer(own, give, get); err != nil {
		return err
	}
	fields := append([]string{game}, itoas(give.Slice()...)...)
	return c.send(protocol.BankTrade, append(fields, itoas(get.Slice()...)...)...)
}

func (c *Client) RequestPlayDevCard(game string, card engine.DevCard) error {
	if _, _, err := c.seated(game); err != nil {
		return err
	}
	if card == engine.CardUnknown || !card.Valid() {
		return errors.Wrapf(ErrBadChoice, "dev card %s", card)
	}
	return c.send(protocol.PlayDevCardRequest, game, strconv.Itoa(int(card)))
}

func (c *Client) RequestBuyDevCard(game string) error {
	if _, _, err := c.seated(game); err != nil {
		return err
	}
	return c.send(protocol.BuyCardRequest, game)
}

func (c *Client) RequestBuild(game string, piece engine.PieceType) error {
	if _, _, err := c.seated(game); err != nil {
		return err
	}
	return c.send(protocol.BuildRequest, game, strconv.Itoa(int(piece)))
}

func (c *Client) RequestCancelBuild(game string, piece engine.PieceType) error {
	if _, _, err := c.seated(game); err != nil {
		return err
	}
	return c.send(protocol.CancelBuildRequest, game, strconv.Itoa(int(piece)))
}

func (c *Client) RequestPutPiece(game string, piece engine.PieceType, coord int) error {
	_, seat, err := c.seated(game)
	if err != nil {
		return err
	}
	return c.send(protocol.PutPiece, game, strconv.Itoa(seat), strconv.Itoa(int(piece)), strconv.Itoa(coord))
}

func (c *Client) RequestMoveRobber(game string, coord int) error {
	_, seat, err := c.seated(game)
	if err != nil {
		return err
	}
	return c.send(protocol.MoveRobber, game, strconv.Itoa(seat), strconv.Itoa(coord))
}

// RequestChoosePlayer answers a CHOOSEPLAYERREQUEST.
func (c *Client) RequestChoosePlayer(game string, seat int) error {
	t, _, err := c.seated(game)
	if err != nil {
		return err
	}
	if seat < 0 || seat >= t.Seats() {
		return errors.Wrapf(ErrBadChoice, "seat %d", seat)
	}
	return c.send(protocol.ChoosePlayer, game, strconv.Itoa(seat))
}

// RequestDiscard answers a DISCARDREQUEST with cards from our hand.
func (c *Client) RequestDiscard(game string, cards engine.ResourceSet) error {
	t, _, err := c.seated(game)
	if err != nil {
		return err
	}
	own, _ := t.LocalResources()
	if cards.KnownTotal() == 0 || !own.Contains(cards) {
		return errors.Wrapf(ErrBadChoice, "discard %s", cards)
	}
	fields := append([]string{game}, itoas(cards.Slice()...)...)
	return c.send(protocol.Discard, append(fields, strconv.Itoa(cards.Amount(engine.Unknown)))...)
}

// RequestDiscoveryPick names the two free resources of a discovery card.
func (c *Client) RequestDiscoveryPick(game string, pick engine.ResourceSet) error {
	if _, _, err := c.seated(game); err != nil {
		return err
	}
	if pick.KnownTotal() != 2 {
		return errors.Wrapf(ErrBadChoice, "discovery %s", pick)
	}
	return c.send(protocol.DiscoveryPick, append([]string{game}, itoas(pick.Slice()...)...)...)
}

func (c *Client) RequestMonopolyPick(game string, kind engine.Resource) error {
	if _, _, err := c.seated(game); err != nil {
		return err
	}
	if kind < engine.Clay || kind > engine.Wood {
		return errors.Wrapf(ErrBadChoice, "monopoly %s", kind)
	}
	return c.send(protocol.MonopolyPick, game, strconv.Itoa(int(kind)))
}

func (c *Client) RequestSeatLock(game string, seat int, locked bool) error {
	t, err := c.table(game)
	if err != nil {
		return err
	}
	if seat < 0 || seat >= t.Seats() {
		return errors.Wrapf(ErrBadChoice, "seat %d", seat)
	}
	return c.send(protocol.SetSeatLock, game, strconv.Itoa(seat), strconv.FormatBool(locked))
}

func (c *Client) RequestChangeFace(game string, face int) error {
	_, seat, err := c.seated(game)
	if err != nil {
		return err
	}
	return c.send(protocol.ChangeFace, game, strconv.Itoa(seat), strconv.Itoa(face))
}

// SendGameText posts chat to a game. Ignore commands are handled here and
// never reach the server.
func (c *Client) SendGameText(game, text string) error {
	if _, err := c.table(game); err != nil {
		return err
	}
	if lines, ok := c.ignore.localCommand(text); ok {
		for _, l := range lines {
			c.presenter.OnGameTextReceived(game, "*", l)
		}
		return nil
	}
	return c.send(protocol.GameTextMsg, game, c.nick, text)
}

// SendChannelText is SendGameText for a chat channel.
func (c *Client) SendChannelText(channel, text string) error {
	if _, ok := c.store.Channel(channel); !ok {
		return errors.Wrap(ErrNoSuchChannel, channel)
	}
	if lines, ok := c.ignore.localCommand(text); ok {
		for _, l := range lines {
			c.presenter.OnChannelTextReceived(channel, "*", l)
		}
		return nil
	}
	return c.send(protocol.TextMsg, channel, c.nick, text)
}
