package client

import (
	"socclient/internal/engine"
	"socclient/internal/protocol"
	"socclient/internal/table"
)

// gameFunc handles a message whose first field names a joined game.
type gameFunc func(t *table.Table, m protocol.Message) error

// inGame resolves the game named by field 0. Once the game is over the
// message is dropped.
func (c *Client) inGame(fn gameFunc) Handler { return c.gameHandler(fn, false) }

// inGameInfo is inGame for informational messages, which still apply
// after the game is over.
func (c *Client) inGameInfo(fn gameFunc) Handler { return c.gameHandler(fn, true) }

func (c *Client) gameHandler(fn gameFunc, informational bool) Handler {
	return func(m protocol.Message) error {
		name, err := m.Field(0)
		if err != nil {
			return err
		}
		t, ok := c.store.Game(name)
		if !ok {
			return &engine.ReconciliationWarning{Subject: name, Detail: "not a joined game", Err: ErrNoSuchGame}
		}
		if !informational && t.Over() {
			c.logger.Printf("game %s: over, dropped %s", name, m.Type())
			return nil
		}
		return fn(t, m)
	}
}

func (c *Client) registerHandlers() {
	r := c.router

	// session
	r.Register(protocol.Version, c.handleVersion)
	r.Register(protocol.ServerPing, c.handleServerPing)
	r.Register(protocol.StatusMessage, c.handleStatus)
	r.Register(protocol.BCastTextMsg, c.handleBroadcast)
	r.Register(protocol.RejectConnection, c.handleRejectConnection)
	r.Register(protocol.LeaveAll, c.handleLeaveAll)

	// channels
	r.Register(protocol.JoinAuth, c.handleJoinAuth)
	r.Register(protocol.Join, c.handleJoin)
	r.Register(protocol.Leave, c.handleLeave)
	r.Register(protocol.Members, c.handleMembers)
	r.Register(protocol.Channels, c.handleChannels)
	r.Register(protocol.NewChannel, c.handleNewChannel)
	r.Register(protocol.DeleteChannel, c.handleDeleteChannel)
	r.Register(protocol.TextMsg, c.handleTextMsg)

	// lobby and membership
	r.Register(protocol.Games, c.handleGames)
	r.Register(protocol.NewGame, c.handleNewGame)
	r.Register(protocol.DeleteGame, c.handleDeleteGame)
	r.Register(protocol.GameStats, c.handleGameStats)
	r.Register(protocol.JoinGameAuth, c.handleJoinGameAuth)
	r.Register(protocol.JoinGame, c.handleJoinGame)
	r.Register(protocol.LeaveGame, c.handleLeaveGame)
	r.Register(protocol.GameMembers, c.inGameInfo(c.handleGameMembers))
	r.Register(protocol.GameTextMsg, c.inGameInfo(c.handleGameText))
	r.Register(protocol.GameServerText, c.inGameInfo(c.handleGameServerText))

	// game state
	r.Register(protocol.SitDown, c.inGame(c.handleSitDown))
	r.Register(protocol.BoardLayout, c.inGame(c.handleBoardLayout))
	r.Register(protocol.StartGame, c.inGame(c.handleStartGame))
	r.Register(protocol.GameState, c.inGame(c.handleGameState))
	r.Register(protocol.SetTurn, c.inGame(c.handleSetTurn))
	r.Register(protocol.FirstPlayer, c.inGame(c.handleFirstPlayer))
	r.Register(protocol.Turn, c.inGame(c.handleTurn))
	r.Register(protocol.PlayerElement, c.inGame(c.handlePlayerElement))
	r.Register(protocol.PlayerElements, c.inGame(c.handlePlayerElements))
	r.Register(protocol.ResourceCount, c.inGame(c.handleResourceCount))
	r.Register(protocol.DiceResult, c.inGame(c.handleDiceResult))
	r.Register(protocol.PutPiece, c.inGame(c.handlePutPiece))
	r.Register(protocol.MoveRobber, c.inGame(c.handleMoveRobber))
	r.Register(protocol.DiscardRequest, c.inGame(c.handleDiscardRequest))
	r.Register(protocol.ChoosePlayerRequest, c.inGame(c.handleChoosePlayerRequest))
	r.Register(protocol.DevCardCount, c.inGame(c.handleDevCardCount))
	r.Register(protocol.DevCardAction, c.inGame(c.handleDevCardAction))
	r.Register(protocol.SetPlayedDevCard, c.inGame(c.handleSetPlayedDevCard))
	r.Register(protocol.PotentialSettlements, c.inGame(c.handlePotentialSettlements))
	r.Register(protocol.ChangeFace, c.inGame(c.handleChangeFace))
	r.Register(protocol.LongestRoad, c.inGame(c.handleLongestRoad))
	r.Register(protocol.LargestArmy, c.inGame(c.handleLargestArmy))
	r.Register(protocol.SetSeatLock, c.inGame(c.handleSetSeatLock))
	r.Register(protocol.RollDicePrompt, c.inGame(c.handleRollDicePrompt))

	// trading
	r.Register(protocol.MakeOffer, c.inGame(c.handleMakeOffer))
	r.Register(protocol.ClearOffer, c.inGame(c.handleClearOffer))
	r.Register(protocol.RejectOffer, c.inGame(c.handleRejectOffer))
	r.Register(protocol.AcceptOffer, c.inGame(c.handleAcceptOffer))
	r.Register(protocol.ClearTradeMsg, c.inGame(c.handleClearTradeMsg))
}
