package client

import "socclient/internal/engine"

// ChooserRequest asks the user to pick something. The answer goes back
// later through a Request* call.
type ChooserRequest struct {
	Kind    engine.Prompt
	Count   int   // cards to discard
	Choices []int // seats that may be robbed
}

// Presenter receives notifications after a handler has applied a server
// event. Calls come from the session's reader goroutine; implementations
// must not block and should read state through the Client's accessors.
type Presenter interface {
	OnGameCreated(game string)
	OnGameRemoved(game string)
	OnPlayerJoined(game string, seat int, name string)
	OnPlayerLeft(game string, seat int, name string)
	OnPlayerSat(game string, seat int)
	OnPlayerUpdated(game string, seat int)
	OnResourceChanged(game string, seat int, kind engine.Resource)
	OnPhaseChanged(game string, phase engine.Phase)
	OnTurn(game string, seat int)
	OnRollPrompt(game string, seat int)
	OnDiceResult(game string, total int)
	OnBoardChanged(game string)
	// seat -1 means every seat.
	OnOfferChanged(game string, seat int)
	OnChooserRequested(game string, req ChooserRequest)
	OnGameTextReceived(game, speaker, text string)

	OnLobbyChanged()
	OnChannelJoined(channel string)
	OnChannelLeft(channel string)
	OnChannelMembersChanged(channel string)
	OnChannelTextReceived(channel, speaker, text string)
	OnStatus(text string)

	OnDestroyed(reason error)
}

// NopPresenter ignores every notification. Embed it to implement only
// the callbacks you need.
type NopPresenter struct{}

func (NopPresenter) OnGameCreated(string)                           {}
func (NopPresenter) OnGameRemoved(string)                           {}
func (NopPresenter) OnPlayerJoined(string, int, string)             {}
func (NopPresenter) OnPlayerLeft(string, int, string)               {}
func (NopPresenter) OnPlayerSat(string, int)                        {}
func (NopPresenter) OnPlayerUpdated(string, int)                    {}
func (NopPresenter) OnResourceChanged(string, int, engine.Resource) {}
func (NopPresenter) OnPhaseChanged(string, engine.Phase)            {}
func (NopPresenter) OnTurn(string, int)                             {}
func (NopPresenter) OnRollPrompt(string, int)                       {}
func (NopPresenter) OnDiceResult(string, int)                       {}
func (NopPresenter) OnBoardChanged(string)                          {}
func (NopPresenter) OnOfferChanged(string, int)                     {}
func (NopPresenter) OnChooserRequested(string, ChooserRequest)      {}
func (NopPresenter) OnGameTextReceived(string, string, string)      {}
func (NopPresenter) OnLobbyChanged()                                {}
func (NopPresenter) OnChannelJoined(string)                         {}
func (NopPresenter) OnChannelLeft(string)                           {}
func (NopPresenter) OnChannelMembersChanged(string)                 {}
func (NopPresenter) OnChannelTextReceived(string, string, string)   {}
func (NopPresenter) OnStatus(string)                                {}
func (NopPresenter) OnDestroyed(error)                              {}
