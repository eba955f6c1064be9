package engine

import "fmt"

// Phase is the server's coarse game state. The client only ever learns it
// from GAMESTATE; it never advances phase on its own.
type Phase int

const (
	PhaseNew                Phase = 0
	PhaseReady              Phase = 1
	PhaseStart1A            Phase = 5
	PhaseStart1B            Phase = 6
	PhaseStart2A            Phase = 10
	PhaseStart2B            Phase = 11
	PhasePlay               Phase = 15 // waiting for the dice roll
	PhasePlay1              Phase = 20 // free actions after the roll
	PhasePlacingRoad        Phase = 30
	PhasePlacingSettlement  Phase = 31
	PhasePlacingCity        Phase = 32
	PhasePlacingRobber      Phase = 33
	PhasePlacingFreeRoad1   Phase = 40
	PhasePlacingFreeRoad2   Phase = 41
	PhaseWaitingForDiscards Phase = 50
	PhaseWaitingForChoice   Phase = 51
	PhaseWaitingForDiscover Phase = 52
	PhaseWaitingForMonopoly Phase = 53
	PhaseOver               Phase = 1000
)

var phases = []Phase{
	PhaseNew, PhaseReady, PhaseStart1A, PhaseStart1B, PhaseStart2A, PhaseStart2B,
	PhasePlay, PhasePlay1, PhasePlacingRoad, PhasePlacingSettlement, PhasePlacingCity,
	PhasePlacingRobber, PhasePlacingFreeRoad1, PhasePlacingFreeRoad2,
	PhaseWaitingForDiscards, PhaseWaitingForChoice, PhaseWaitingForDiscover,
	PhaseWaitingForMonopoly, PhaseOver,
}

func (p Phase) String() string {
	switch p {
	case PhaseNew:
		return "new"
	case PhaseReady:
		return "ready"
	case PhaseStart1A:
		return "start1a"
	case PhaseStart1B:
		return "start1b"
	case PhaseStart2A:
		return "start2a"
	case PhaseStart2B:
		return "start2b"
	case PhasePlay:
		return "rolling"
	case PhasePlay1:
		return "play1"
	case PhasePlacingRoad:
		return "placing-road"
	case PhasePlacingSettlement:
		return "placing-settlement"
	case PhasePlacingCity:
		return "placing-city"
	case PhasePlacingRobber:
		return "moving-robber"
	case PhasePlacingFreeRoad1:
		return "free-road1"
	case PhasePlacingFreeRoad2:
		return "free-road2"
	case PhaseWaitingForDiscards:
		return "discarding"
	case PhaseWaitingForChoice:
		return "choosing-victim"
	case PhaseWaitingForDiscover:
		return "waiting-for-discovery"
	case PhaseWaitingForMonopoly:
		return "waiting-for-monopoly"
	case PhaseOver:
		return "game-over"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Valid reports whether p is one of the known states.
func (p Phase) Valid() bool {
	for _, cand := range phases {
		if cand == p {
			return true
		}
	}
	return false
}

func (p Phase) Over() bool { return p == PhaseOver }

// InitialPlacement covers the two setup rounds.
func (p Phase) InitialPlacement() bool {
	return p >= PhaseStart1A && p <= PhaseStart2B
}

// Prompt is the kind of chooser the presentation layer must show.
type Prompt int

const (
	PromptDiscovery Prompt = iota + 1
	PromptMonopoly
	PromptDiscard
	PromptChoosePlayer
)

func (p Prompt) String() string {
	switch p {
	case PromptDiscovery:
		return "discovery"
	case PromptMonopoly:
		return "monopoly"
	case PromptDiscard:
		return "discard"
	case PromptChoosePlayer:
		return "choose-player"
	default:
		return fmt.Sprintf("prompt(%d)", int(p))
	}
}

// TurnPrompt returns the chooser that entering p asks of the current
// player, if any.
func (p Phase) TurnPrompt() (Prompt, bool) {
	switch p {
	case PhaseWaitingForDiscover:
		return PromptDiscovery, true
	case PhaseWaitingForMonopoly:
		return PromptMonopoly, true
	}
	return 0, false
}
