package engine

import "fmt"

// NoSeat marks an unset current/first player or an unseated observer.
const NoSeat = -1

// Game is the client's replica of one server game.
type Game struct {
	Name        string   `json:"name"`
	Phase       Phase    `json:"phase"`
	Current     int      `json:"current"`
	First       int      `json:"first"`
	Dice        int      `json:"dice"`
	Board       Board    `json:"board"`
	Players     []Player `json:"players"`
	DevCardDeck int      `json:"devcard_deck"`
	Members     []string `json:"members,omitempty"`
	Started     bool     `json:"started,omitempty"`
}

func NewGame(name string, maxPlayers int) *Game {
	g := &Game{
		Name:    name,
		Phase:   PhaseNew,
		Current: NoSeat,
		First:   NoSeat,
		Board:   NewBoard(),
		Players: make([]Player, maxPlayers),
	}
	for i := range g.Players {
		g.Players[i] = NewPlayer(i)
	}
	return g
}

// Player returns seat's record or a ReconciliationWarning for a bad index.
func (g *Game) Player(seat int) (*Player, error) {
	if seat < 0 || seat >= len(g.Players) {
		return nil, &ReconciliationWarning{
			Subject: g.Name,
			Detail:  fmt.Sprintf("no seat %d", seat),
			Err:     ErrNoSuchSeat,
		}
	}
	return &g.Players[seat], nil
}

// SeatOf finds the seat a nickname occupies, or NoSeat.
func (g *Game) SeatOf(name string) int {
	if name == "" {
		return NoSeat
	}
	for i := range g.Players {
		if g.Players[i].Name == name {
			return i
		}
	}
	return NoSeat
}

// Sit places name at seat, replacing whoever the replica had there.
func (g *Game) Sit(seat int, name string, robot bool) error {
	p, err := g.Player(seat)
	if err != nil {
		return err
	}
	p.Vacate()
	p.Name = name
	p.Robot = robot
	return nil
}

// PutPiece records a placement on the board and the owner's counters.
func (g *Game) PutPiece(pc Piece) error {
	p, err := g.Player(pc.Owner)
	if err != nil {
		return err
	}
	g.Board.Put(pc)
	return p.PlacePiece(pc.Type)
}

// SetLongestRoad moves the bonus to seat; NoSeat clears it.
func (g *Game) SetLongestRoad(seat int) error {
	if seat != NoSeat {
		if _, err := g.Player(seat); err != nil {
			return err
		}
	}
	for i := range g.Players {
		g.Players[i].LongestRoad = i == seat
	}
	return nil
}

// SetLargestArmy moves the bonus to seat; NoSeat clears it.
func (g *Game) SetLargestArmy(seat int) error {
	if seat != NoSeat {
		if _, err := g.Player(seat); err != nil {
			return err
		}
	}
	for i := range g.Players {
		g.Players[i].LargestArmy = i == seat
	}
	return nil
}

// AddMember records an observer or player; duplicates are ignored.
func (g *Game) AddMember(name string) {
	for _, m := range g.Members {
		if m == name {
			return
		}
	}
	g.Members = append(g.Members, name)
}

func (g *Game) RemoveMember(name string) {
	out := g.Members[:0]
	for _, m := range g.Members {
		if m != name {
			out = append(out, m)
		}
	}
	g.Members = out
}

// Clone returns a deep copy safe to hand outside the owning lock.
func (g *Game) Clone() Game {
	c := *g
	c.Board = g.Board.clone()
	c.Members = append([]string(nil), g.Members...)
	c.Players = make([]Player, len(g.Players))
	for i := range g.Players {
		c.Players[i] = g.Players[i].clone()
	}
	return c
}
