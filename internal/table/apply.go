package table

import (
	"fmt"

	"github.com/pkg/errors"

	"socclient/internal/engine"
)

// Sit records nick at seat. When nick is ours the seat becomes the local
// seat; local reports that.
func (t *Table) Sit(seat int, nick string, robot bool) (local bool, err error) {
	err = t.update(func(g *engine.Game) error {
		if err := g.Sit(seat, nick, robot); err != nil {
			return err
		}
		g.AddMember(nick)
		switch {
		case nick == t.self:
			if t.localSeat != seat {
				t.unseat()
			}
			t.localSeat = seat
			local = true
			t.logger.Printf("game %s: seated at %d", g.Name, seat)
		case seat == t.localSeat:
			// someone else took our old seat
			t.unseat()
		}
		return nil
	})
	return local, err
}

// SetFace changes seat's face icon.
func (t *Table) SetFace(seat, face int) error {
	return t.update(func(g *engine.Game) error {
		p, err := g.Player(seat)
		if err != nil {
			return err
		}
		p.Face = face
		return nil
	})
}

func (t *Table) SetSeatLock(seat int, locked bool) error {
	return t.update(func(g *engine.Game) error {
		p, err := g.Player(seat)
		if err != nil {
			return err
		}
		p.SeatLocked = locked
		return nil
	})
}

// AddMember records a nickname that joined the game.
func (t *Table) AddMember(nick string) error {
	return t.update(func(g *engine.Game) error {
		g.AddMember(nick)
		return nil
	})
}

// SetMembers replaces the member list.
func (t *Table) SetMembers(nicks []string) error {
	return t.update(func(g *engine.Game) error {
		g.Members = nil
		for _, n := range nicks {
			g.AddMember(n)
		}
		return nil
	})
}

// RemoveMember drops nick from the game and vacates its seat. seat is the
// vacated seat or engine.NoSeat for an observer.
func (t *Table) RemoveMember(nick string) (seat int, err error) {
	seat = engine.NoSeat
	err = t.update(func(g *engine.Game) error {
		g.RemoveMember(nick)
		seat = g.SeatOf(nick)
		if seat == engine.NoSeat {
			return nil
		}
		g.Players[seat].Vacate()
		if seat == t.localSeat {
			t.unseat()
		}
		return nil
	})
	return seat, err
}

func (t *Table) SetBoardLayout(hexes, numbers []int, robber int) error {
	return t.update(func(g *engine.Game) error {
		g.Board.SetLayout(hexes, numbers, robber)
		return nil
	})
}

func (t *Table) Start() error {
	return t.update(func(g *engine.Game) error {
		g.Started = true
		return nil
	})
}

// SetPhase installs the server's phase. When the new phase asks the
// current player for a choice and that player is us, prompt is returned
// with ok set. Nothing else changes.
func (t *Table) SetPhase(p engine.Phase) (prompt engine.Prompt, ok bool, err error) {
	err = t.update(func(g *engine.Game) error {
		if !p.Valid() {
			return &engine.ReconciliationWarning{Subject: g.Name, Detail: fmt.Sprintf("unknown phase %d", int(p))}
		}
		prev := g.Phase
		g.Phase = p
		if p == prev {
			return nil
		}
		if pr, has := p.TurnPrompt(); has && t.isLocal(g.Current) {
			prompt, ok = pr, true
		}
		return nil
	})
	return prompt, ok, err
}

// SetCurrent records the current player without the start-of-turn
// bookkeeping that Turn performs.
func (t *Table) SetCurrent(seat int) error {
	return t.update(func(g *engine.Game) error {
		if _, err := g.Player(seat); err != nil {
			return err
		}
		g.Current = seat
		return nil
	})
}

func (t *Table) SetFirstPlayer(seat int) error {
	return t.update(func(g *engine.Game) error {
		if _, err := g.Player(seat); err != nil {
			return err
		}
		g.First = seat
		return nil
	})
}

// Turn starts seat's turn: the first turn ever also fixes the first
// player, the dice reset, and the new player's fresh dev cards age.
func (t *Table) Turn(seat int) error {
	return t.update(func(g *engine.Game) error {
		p, err := g.Player(seat)
		if err != nil {
			return err
		}
		if g.First == engine.NoSeat {
			g.First = seat
		}
		g.Current = seat
		g.Dice = 0
		p.DevCards.NewToOld()
		p.PlayedDevCard = false
		return nil
	})
}

func (t *Table) SetDice(total int) error {
	return t.update(func(g *engine.Game) error {
		g.Dice = total
		return nil
	})
}

// ApplyElement applies one PLAYERELEMENT delta to seat.
func (t *Table) ApplyElement(seat int, a engine.ElementAction, e engine.Element, value int) error {
	return t.ApplyElements(seat, a, []engine.ElementDelta{{Element: e, Value: value}})
}

// ApplyElements applies a PLAYERELEMENTS batch to seat as one unit. The
// deltas run on a copy of the player; an unknown element or action leaves
// the seat untouched. Clamped underflows still commit and come back as
// the first ReconciliationWarning.
func (t *Table) ApplyElements(seat int, a engine.ElementAction, deltas []engine.ElementDelta) error {
	return t.update(func(g *engine.Game) error {
		p, err := g.Player(seat)
		if err != nil {
			return err
		}
		next := *p
		var warn error
		for _, d := range deltas {
			err := next.ApplyElement(a, d.Element, d.Value)
			if err == nil {
				continue
			}
			if !errors.Is(err, engine.ErrOutOfSync) {
				return err
			}
			if warn == nil {
				warn = err
			}
		}
		*p = next
		return warn
	})
}

// ReconcileCount compares seat's ledger total against the server's count.
// An opponent's ledger that disagrees is cleared and the count folded
// into unknown. Our own ledger is never rewritten; a mismatch there only
// comes back as a warning. changed reports a rewrite.
func (t *Table) ReconcileCount(seat, count int) (changed bool, err error) {
	err = t.update(func(g *engine.Game) error {
		p, err := g.Player(seat)
		if err != nil {
			return err
		}
		have := p.Resources.Total()
		if have == count {
			return nil
		}
		if t.isLocal(seat) {
			return &engine.ReconciliationWarning{
				Subject: g.Name,
				Detail:  fmt.Sprintf("own hand holds %d, server counts %d", have, count),
			}
		}
		p.Resources.Clear()
		p.Resources.Set(engine.Unknown, count)
		changed = true
		return nil
	})
	return changed, err
}

func (t *Table) PutPiece(seat int, pt engine.PieceType, coord int) error {
	return t.update(func(g *engine.Game) error {
		return g.PutPiece(engine.Piece{Type: pt, Owner: seat, Coord: coord})
	})
}

func (t *Table) MoveRobber(coord int) error {
	return t.update(func(g *engine.Game) error {
		g.Board.RobberHex = coord
		return nil
	})
}

func (t *Table) SetDevCardCount(n int) error {
	return t.update(func(g *engine.Game) error {
		g.DevCardDeck = n
		return nil
	})
}

// DevCardAction applies one DEVCARDACTION to seat's hand.
func (t *Table) DevCardAction(seat int, a engine.DevCardAction, card engine.DevCard) error {
	return t.update(func(g *engine.Game) error {
		p, err := g.Player(seat)
		if err != nil {
			return err
		}
		return p.DevCards.Apply(a, card)
	})
}

func (t *Table) SetPlayedDevCard(seat int, played bool) error {
	return t.update(func(g *engine.Game) error {
		p, err := g.Player(seat)
		if err != nil {
			return err
		}
		p.PlayedDevCard = played
		return nil
	})
}

func (t *Table) SetPotentialSettlements(seat int, coords []int) error {
	return t.update(func(g *engine.Game) error {
		p, err := g.Player(seat)
		if err != nil {
			return err
		}
		p.PotentialSettlements = append([]int(nil), coords...)
		return nil
	})
}

// SetLongestRoad moves the bonus; engine.NoSeat clears it.
func (t *Table) SetLongestRoad(seat int) error {
	return t.update(func(g *engine.Game) error { return g.SetLongestRoad(seat) })
}

// SetLargestArmy moves the bonus; engine.NoSeat clears it.
func (t *Table) SetLargestArmy(seat int) error {
	return t.update(func(g *engine.Game) error { return g.SetLargestArmy(seat) })
}
