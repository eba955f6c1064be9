package client

import (
	"github.com/pkg/errors"

	"socclient/internal/protocol"
)

func (c *Client) handleVersion(m protocol.Message) error {
	v, err := m.Int(0)
	if err != nil {
		return err
	}
	display, _ := m.Field(1)
	c.logger.Printf("session %s: server version %s (%d)", c.session, display, v)
	return nil
}

// handleServerPing echoes the ping so the server keeps the session.
func (c *Client) handleServerPing(m protocol.Message) error {
	n, err := m.Field(0)
	if err != nil {
		return err
	}
	return c.send(protocol.ServerPing, n)
}

func (c *Client) handleStatus(m protocol.Message) error {
	text, err := m.Field(0)
	if err != nil {
		return err
	}
	c.presenter.OnStatus(text)
	return nil
}

func (c *Client) handleBroadcast(m protocol.Message) error {
	text, err := m.Field(0)
	if err != nil {
		return err
	}
	c.presenter.OnStatus("::: " + text + " :::")
	return nil
}

// handleRejectConnection shows the server's reason and ends the session.
func (c *Client) handleRejectConnection(m protocol.Message) error {
	text, err := m.Field(0)
	if err != nil {
		return err
	}
	c.presenter.OnStatus(text)
	c.destroy(errors.Wrap(ErrRejected, text), false)
	return nil
}

// handleLeaveAll drops every game and channel we hold.
func (c *Client) handleLeaveAll(protocol.Message) error {
	games, channels := c.store.clear()
	for _, g := range games {
		c.presenter.OnGameRemoved(g)
	}
	for _, ch := range channels {
		c.presenter.OnChannelLeft(ch)
	}
	return nil
}

// JOINAUTH: nick, channel
func (c *Client) handleJoinAuth(m protocol.Message) error {
	ch, err := m.Field(1)
	if err != nil {
		return err
	}
	if c.store.CreateChannel(ch) {
		c.presenter.OnChannelJoined(ch)
	}
	return nil
}

// JOIN: nick, password, host, channel
func (c *Client) handleJoin(m protocol.Message) error {
	nick, err := m.Field(0)
	if err != nil {
		return err
	}
	ch, err := m.Field(3)
	if err != nil {
		return err
	}
	ok := c.store.updateChannel(ch, func(rec *Channel) {
		for _, n := range rec.Members {
			if n == nick {
				return
			}
		}
		rec.Members = append(rec.Members, nick)
	})
	if !ok {
		return errors.Wrap(ErrNoSuchChannel, ch)
	}
	c.presenter.OnChannelMembersChanged(ch)
	return nil
}

// LEAVE: nick, host, channel
func (c *Client) handleLeave(m protocol.Message) error {
	nick, err := m.Field(0)
	if err != nil {
		return err
	}
	ch, err := m.Field(2)
	if err != nil {
		return err
	}
	if nick == c.nick {
		if c.store.RemoveChannel(ch) {
			c.presenter.OnChannelLeft(ch)
		}
		return nil
	}
	ok := c.store.updateChannel(ch, func(rec *Channel) {
		out := rec.Members[:0]
		for _, n := range rec.Members {
			if n != nick {
				out = append(out, n)
			}
		}
		rec.Members = out
	})
	if !ok {
		return errors.Wrap(ErrNoSuchChannel, ch)
	}
	c.presenter.OnChannelMembersChanged(ch)
	return nil
}

// MEMBERS: channel, member...
func (c *Client) handleMembers(m protocol.Message) error {
	ch, err := m.Field(0)
	if err != nil {
		return err
	}
	members := m.Rest(1)
	if !c.store.updateChannel(ch, func(rec *Channel) { rec.Members = members }) {
		return errors.Wrap(ErrNoSuchChannel, ch)
	}
	c.presenter.OnChannelMembersChanged(ch)
	return nil
}

func (c *Client) handleChannels(m protocol.Message) error {
	for _, ch := range m.Fields() {
		c.store.listChannel(ch)
	}
	c.presenter.OnLobbyChanged()
	return nil
}

func (c *Client) handleNewChannel(m protocol.Message) error {
	ch, err := m.Field(0)
	if err != nil {
		return err
	}
	c.store.listChannel(ch)
	c.presenter.OnLobbyChanged()
	return nil
}

func (c *Client) handleDeleteChannel(m protocol.Message) error {
	ch, err := m.Field(0)
	if err != nil {
		return err
	}
	c.store.unlistChannel(ch)
	if c.store.RemoveChannel(ch) {
		c.presenter.OnChannelLeft(ch)
	}
	c.presenter.OnLobbyChanged()
	return nil
}

// TEXTMSG: channel, nick, text
func (c *Client) handleTextMsg(m protocol.Message) error {
	ch, err := m.Field(0)
	if err != nil {
		return err
	}
	nick, err := m.Field(1)
	if err != nil {
		return err
	}
	text, err := m.Field(2)
	if err != nil {
		return err
	}
	if _, ok := c.store.Channel(ch); !ok {
		return errors.Wrap(ErrNoSuchChannel, ch)
	}
	if c.ignore.suppressed(nick) {
		return nil
	}
	c.presenter.OnChannelTextReceived(ch, nick, text)
	return nil
}

func (c *Client) handleGames(m protocol.Message) error {
	for _, g := range m.Fields() {
		c.store.listGame(g)
	}
	c.presenter.OnLobbyChanged()
	return nil
}

func (c *Client) handleNewGame(m protocol.Message) error {
	g, err := m.Field(0)
	if err != nil {
		return err
	}
	c.store.listGame(g)
	c.presenter.OnLobbyChanged()
	return nil
}

// handleDeleteGame unlists the game and drops our replica of it.
func (c *Client) handleDeleteGame(m protocol.Message) error {
	g, err := m.Field(0)
	if err != nil {
		return err
	}
	c.store.unlistGame(g)
	if c.store.RemoveGame(g) {
		c.presenter.OnGameRemoved(g)
	}
	c.presenter.OnLobbyChanged()
	return nil
}

// GAMESTATS: game, score per seat, robot flag per seat
func (c *Client) handleGameStats(m protocol.Message) error {
	g, err := m.Field(0)
	if err != nil {
		return err
	}
	if (m.Len()-1)%2 != 0 {
		return errPayloadSize
	}
	n := (m.Len() - 1) / 2
	scores, err := m.Ints(1, n)
	if err != nil {
		return err
	}
	robots, err := m.Bools(1+n, n)
	if err != nil {
		return err
	}
	c.store.setGameStats(g, scores, robots)
	c.presenter.OnLobbyChanged()
	return nil
}

// handleJoinGameAuth creates the replica; the server sends it once per
// successful join.
func (c *Client) handleJoinGameAuth(m protocol.Message) error {
	g, err := m.Field(0)
	if err != nil {
		return err
	}
	if _, created := c.store.CreateGame(g); !created {
		return nil
	}
	c.logger.Printf("game %s: joined", g)
	c.presenter.OnGameCreated(g)
	return nil
}

// JOINGAME: nick, password, host, game
func (c *Client) handleJoinGame(m protocol.Message) error {
	nick, err := m.Field(0)
	if err != nil {
		return err
	}
	g, err := m.Field(3)
	if err != nil {
		return err
	}
	t, err := c.table(g)
	if err != nil {
		return err
	}
	if err := t.AddMember(nick); err != nil {
		return err
	}
	c.presenter.OnPlayerJoined(g, t.SeatOf(nick), nick)
	return nil
}

// LEAVEGAME: nick, host, game. Our own echo removes the replica.
func (c *Client) handleLeaveGame(m protocol.Message) error {
	nick, err := m.Field(0)
	if err != nil {
		return err
	}
	g, err := m.Field(2)
	if err != nil {
		return err
	}
	if nick == c.nick {
		if c.store.RemoveGame(g) {
			c.logger.Printf("game %s: left", g)
			c.presenter.OnGameRemoved(g)
		}
		return nil
	}
	t, err := c.table(g)
	if err != nil {
		return err
	}
	seat, err := t.RemoveMember(nick)
	if err != nil {
		return err
	}
	c.presenter.OnPlayerLeft(g, seat, nick)
	return nil
}
