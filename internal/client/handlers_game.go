package client

import (
	"strconv"

	"socclient/internal/engine"
	"socclient/internal/protocol"
	"socclient/internal/table"
)

// GAMEMEMBERS: game, member...
func (c *Client) handleGameMembers(t *table.Table, m protocol.Message) error {
	members := m.Rest(1)
	if err := t.SetMembers(members); err != nil {
		return err
	}
	for _, nick := range members {
		c.presenter.OnPlayerJoined(t.Name(), t.SeatOf(nick), nick)
	}
	return nil
}

// GAMETEXTMSG: game, nick, text
func (c *Client) handleGameText(t *table.Table, m protocol.Message) error {
	nick, err := m.Field(1)
	if err != nil {
		return err
	}
	text, err := m.Field(2)
	if err != nil {
		return err
	}
	if c.ignore.suppressed(nick) {
		return nil
	}
	c.presenter.OnGameTextReceived(t.Name(), nick, text)
	return nil
}

// GAMESERVERTEXT: game, text
func (c *Client) handleGameServerText(t *table.Table, m protocol.Message) error {
	text, err := m.Field(1)
	if err != nil {
		return err
	}
	c.presenter.OnGameTextReceived(t.Name(), serverSpeaker, text)
	return nil
}

// SITDOWN: game, nick, seat, robot. When we sit, our face is reset so an
// old one does not stick.
func (c *Client) handleSitDown(t *table.Table, m protocol.Message) error {
	nick, err := m.Field(1)
	if err != nil {
		return err
	}
	seat, err := m.Int(2)
	if err != nil {
		return err
	}
	robot, err := m.Bool(3)
	if err != nil {
		return err
	}
	local, err := t.Sit(seat, nick, robot)
	if err != nil {
		return err
	}
	c.presenter.OnPlayerSat(t.Name(), seat)
	if !local {
		return nil
	}
	if err := t.SetFace(seat, 1); err != nil {
		return err
	}
	if err := c.send(protocol.ChangeFace, t.Name(), strconv.Itoa(seat), "1"); err != nil {
		c.logger.Printf("game %s: change face: %v", t.Name(), err)
	}
	return nil
}

// BOARDLAYOUT: game, hex types, dice numbers, robber hex
func (c *Client) handleBoardLayout(t *table.Table, m protocol.Message) error {
	if m.Len() != 2+2*engine.BoardHexes {
		return errPayloadSize
	}
	hexes, err := m.Ints(1, engine.BoardHexes)
	if err != nil {
		return err
	}
	numbers, err := m.Ints(1+engine.BoardHexes, engine.BoardHexes)
	if err != nil {
		return err
	}
	robber, err := m.Int(1 + 2*engine.BoardHexes)
	if err != nil {
		return err
	}
	if err := t.SetBoardLayout(hexes, numbers, robber); err != nil {
		return err
	}
	c.presenter.OnBoardChanged(t.Name())
	return nil
}

func (c *Client) handleStartGame(t *table.Table, _ protocol.Message) error {
	if err := t.Start(); err != nil {
		return err
	}
	c.logger.Printf("game %s: started", t.Name())
	return nil
}

// handleGameState is the only place the phase changes. Entering a phase
// that needs our choice raises exactly one chooser request.
func (c *Client) handleGameState(t *table.Table, m protocol.Message) error {
	state, err := m.Int(1)
	if err != nil {
		return err
	}
	phase := engine.Phase(state)
	prompt, ask, err := t.SetPhase(phase)
	if err != nil {
		return err
	}
	c.presenter.OnPhaseChanged(t.Name(), phase)
	if phase.Over() {
		c.logger.Printf("game %s: over", t.Name())
	}
	if ask {
		c.presenter.OnChooserRequested(t.Name(), ChooserRequest{Kind: prompt})
	}
	return nil
}

func (c *Client) handleSetTurn(t *table.Table, m protocol.Message) error {
	seat, err := m.Int(1)
	if err != nil {
		return err
	}
	if err := t.SetCurrent(seat); err != nil {
		return err
	}
	c.presenter.OnTurn(t.Name(), seat)
	return nil
}

func (c *Client) handleFirstPlayer(t *table.Table, m protocol.Message) error {
	seat, err := m.Int(1)
	if err != nil {
		return err
	}
	return t.SetFirstPlayer(seat)
}

func (c *Client) handleTurn(t *table.Table, m protocol.Message) error {
	seat, err := m.Int(1)
	if err != nil {
		return err
	}
	if err := t.Turn(seat); err != nil {
		return err
	}
	c.presenter.OnTurn(t.Name(), seat)
	c.presenter.OnPlayerUpdated(t.Name(), seat)
	return nil
}

// PLAYERELEMENT: game, seat, action, element, value
func (c *Client) handlePlayerElement(t *table.Table, m protocol.Message) error {
	v, err := m.Ints(1, 4)
	if err != nil {
		return err
	}
	return c.applyElements(t, v[0], engine.ElementAction(v[1]), []engine.ElementDelta{{Element: engine.Element(v[2]), Value: v[3]}})
}

// PLAYERELEMENTS: game|seat|action|element|value|element|value...
func (c *Client) handlePlayerElements(t *table.Table, m protocol.Message) error {
	if m.Len() < 5 || (m.Len()-3)%2 != 0 {
		return errPayloadSize
	}
	head, err := m.Ints(1, 2)
	if err != nil {
		return err
	}
	pairs, err := m.Ints(3, m.Len()-3)
	if err != nil {
		return err
	}
	deltas := make([]engine.ElementDelta, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		deltas = append(deltas, engine.ElementDelta{Element: engine.Element(pairs[i]), Value: pairs[i+1]})
	}
	return c.applyElements(t, head[0], engine.ElementAction(head[1]), deltas)
}

// applyElements commits the whole batch or none of it, then notifies once
// per element.
func (c *Client) applyElements(t *table.Table, seat int, a engine.ElementAction, deltas []engine.ElementDelta) error {
	if err := c.absorb(t.Name(), t.ApplyElements(seat, a, deltas)); err != nil {
		return err
	}
	for _, d := range deltas {
		if r, ok := d.Element.Resource(); ok {
			c.presenter.OnResourceChanged(t.Name(), seat, r)
		} else {
			c.presenter.OnPlayerUpdated(t.Name(), seat)
		}
	}
	return nil
}

// RESOURCECOUNT: game, seat, total
func (c *Client) handleResourceCount(t *table.Table, m protocol.Message) error {
	v, err := m.Ints(1, 2)
	if err != nil {
		return err
	}
	changed, err := t.ReconcileCount(v[0], v[1])
	if err := c.absorb(t.Name(), err); err != nil {
		return err
	}
	if changed {
		c.presenter.OnResourceChanged(t.Name(), v[0], engine.Unknown)
	}
	return nil
}

func (c *Client) handleDiceResult(t *table.Table, m protocol.Message) error {
	total, err := m.Int(1)
	if err != nil {
		return err
	}
	if err := t.SetDice(total); err != nil {
		return err
	}
	c.presenter.OnDiceResult(t.Name(), total)
	return nil
}

// PUTPIECE: game, seat, piece type, coordinate
func (c *Client) handlePutPiece(t *table.Table, m protocol.Message) error {
	v, err := m.Ints(1, 3)
	if err != nil {
		return err
	}
	if err := c.absorb(t.Name(), t.PutPiece(v[0], engine.PieceType(v[1]), v[2])); err != nil {
		return err
	}
	c.presenter.OnBoardChanged(t.Name())
	c.presenter.OnPlayerUpdated(t.Name(), v[0])
	return nil
}

// MOVEROBBER: game, seat, coordinate
func (c *Client) handleMoveRobber(t *table.Table, m protocol.Message) error {
	coord, err := m.Int(2)
	if err != nil {
		return err
	}
	if err := t.MoveRobber(coord); err != nil {
		return err
	}
	c.presenter.OnBoardChanged(t.Name())
	return nil
}

// DISCARDREQUEST: game, count. Addressed to us only.
func (c *Client) handleDiscardRequest(t *table.Table, m protocol.Message) error {
	n, err := m.Int(1)
	if err != nil {
		return err
	}
	c.presenter.OnChooserRequested(t.Name(), ChooserRequest{Kind: engine.PromptDiscard, Count: n})
	return nil
}

// CHOOSEPLAYERREQUEST: game, one flag per seat
func (c *Client) handleChoosePlayerRequest(t *table.Table, m protocol.Message) error {
	flags, err := m.Bools(1, m.Len()-1)
	if err != nil {
		return err
	}
	var choices []int
	for seat, ok := range flags {
		if ok {
			choices = append(choices, seat)
		}
	}
	c.presenter.OnChooserRequested(t.Name(), ChooserRequest{Kind: engine.PromptChoosePlayer, Choices: choices})
	return nil
}

func (c *Client) handleDevCardCount(t *table.Table, m protocol.Message) error {
	n, err := m.Int(1)
	if err != nil {
		return err
	}
	if err := t.SetDevCardCount(n); err != nil {
		return err
	}
	c.presenter.OnBoardChanged(t.Name())
	return nil
}

// DEVCARDACTION: game, seat, action, card
func (c *Client) handleDevCardAction(t *table.Table, m protocol.Message) error {
	v, err := m.Ints(1, 3)
	if err != nil {
		return err
	}
	if err := c.absorb(t.Name(), t.DevCardAction(v[0], engine.DevCardAction(v[1]), engine.DevCard(v[2]))); err != nil {
		return err
	}
	c.presenter.OnPlayerUpdated(t.Name(), v[0])
	return nil
}

func (c *Client) handleSetPlayedDevCard(t *table.Table, m protocol.Message) error {
	seat, err := m.Int(1)
	if err != nil {
		return err
	}
	played, err := m.Bool(2)
	if err != nil {
		return err
	}
	if err := t.SetPlayedDevCard(seat, played); err != nil {
		return err
	}
	c.presenter.OnPlayerUpdated(t.Name(), seat)
	return nil
}

// POTENTIALSETTLEMENTS: game, seat, coordinate...
func (c *Client) handlePotentialSettlements(t *table.Table, m protocol.Message) error {
	seat, err := m.Int(1)
	if err != nil {
		return err
	}
	coords, err := m.Ints(2, m.Len()-2)
	if err != nil {
		return err
	}
	if err := t.SetPotentialSettlements(seat, coords); err != nil {
		return err
	}
	c.presenter.OnBoardChanged(t.Name())
	return nil
}

func (c *Client) handleChangeFace(t *table.Table, m protocol.Message) error {
	v, err := m.Ints(1, 2)
	if err != nil {
		return err
	}
	if err := t.SetFace(v[0], v[1]); err != nil {
		return err
	}
	c.presenter.OnPlayerUpdated(t.Name(), v[0])
	return nil
}

// LONGESTROAD: game, seat or -1
func (c *Client) handleLongestRoad(t *table.Table, m protocol.Message) error {
	seat, err := m.Int(1)
	if err != nil {
		return err
	}
	if err := t.SetLongestRoad(seat); err != nil {
		return err
	}
	c.updateAllSeats(t)
	return nil
}

// LARGESTARMY: game, seat or -1
func (c *Client) handleLargestArmy(t *table.Table, m protocol.Message) error {
	seat, err := m.Int(1)
	if err != nil {
		return err
	}
	if err := t.SetLargestArmy(seat); err != nil {
		return err
	}
	c.updateAllSeats(t)
	return nil
}

// the bonus moves between seats, so every hand's VP may change
func (c *Client) updateAllSeats(t *table.Table) {
	for i := 0; i < t.Seats(); i++ {
		c.presenter.OnPlayerUpdated(t.Name(), i)
	}
}

func (c *Client) handleSetSeatLock(t *table.Table, m protocol.Message) error {
	seat, err := m.Int(1)
	if err != nil {
		return err
	}
	locked, err := m.Bool(2)
	if err != nil {
		return err
	}
	if err := t.SetSeatLock(seat, locked); err != nil {
		return err
	}
	c.presenter.OnPlayerUpdated(t.Name(), seat)
	return nil
}

func (c *Client) handleRollDicePrompt(t *table.Table, m protocol.Message) error {
	seat, err := m.Int(1)
	if err != nil {
		return err
	}
	c.presenter.OnRollPrompt(t.Name(), seat)
	return nil
}
