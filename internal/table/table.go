package table

import (
	"log"
	"sync"

	"socclient/internal/engine"
)

// Table is the client's replica of one game. Server events are applied
// through the methods in apply.go and trade.go; everything else reads.
//
// Writers are the session's single reader loop. Readers may be any
// goroutine (presentation callbacks, the CLI), so access goes through mu.
type Table struct {
	mu sync.RWMutex

	self      string // local nickname
	localSeat int
	defunct   bool
	draft     *engine.CounterDraft

	g *engine.Game

	logger *log.Logger
}

// New creates an empty replica for game name as seen by nickname self.
func New(name string, maxPlayers int, self string, logger *log.Logger) *Table {
	if logger == nil {
		logger = log.Default()
	}
	return &Table{
		self:      self,
		localSeat: engine.NoSeat,
		g:         engine.NewGame(name, maxPlayers),
		logger:    logger,
	}
}

func (t *Table) Name() string { return t.g.Name }

func (t *Table) Seats() int { return len(t.g.Players) }

// LocalSeat is the seat our nickname sat at, or engine.NoSeat.
func (t *Table) LocalSeat() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.localSeat
}

// IsLocal reports whether seat is ours.
func (t *Table) IsLocal(seat int) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.isLocal(seat)
}

func (t *Table) isLocal(seat int) bool {
	return t.localSeat != engine.NoSeat && seat == t.localSeat
}

func (t *Table) Phase() engine.Phase {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.g.Phase
}

// Over reports whether the game reached its terminal phase.
func (t *Table) Over() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.g.Phase.Over()
}

func (t *Table) Current() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.g.Current
}

// Player returns a copy of seat's record.
func (t *Table) Player(seat int) (engine.Player, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	p, err := t.g.Player(seat)
	if err != nil {
		return engine.Player{}, err
	}
	return *p, nil
}

// LocalResources returns our own ledger, if we are seated.
func (t *Table) LocalResources() (engine.ResourceSet, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.localSeat == engine.NoSeat {
		return engine.ResourceSet{}, false
	}
	return t.g.Players[t.localSeat].Resources, true
}

// MarkDefunct freezes the replica after the session died.
func (t *Table) MarkDefunct() {
	t.mu.Lock()
	t.defunct = true
	t.draft = nil
	t.mu.Unlock()
}

func (t *Table) Defunct() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.defunct
}

// update runs fn under the write lock unless the table is defunct.
func (t *Table) update(fn func(g *engine.Game) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.defunct {
		return ErrDefunct
	}
	return fn(t.g)
}

// SeatOf finds the seat nick occupies, or engine.NoSeat.
func (t *Table) SeatOf(nick string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.g.SeatOf(nick)
}
