package engine

import "fmt"

// BoardHexes is the size of the classic 4-player layout.
const BoardHexes = 37

type PieceType int

const (
	PieceRoad PieceType = iota
	PieceSettlement
	PieceCity
)

func (t PieceType) String() string {
	switch t {
	case PieceRoad:
		return "road"
	case PieceSettlement:
		return "settlement"
	case PieceCity:
		return "city"
	default:
		return fmt.Sprintf("piece(%d)", int(t))
	}
}

type Piece struct {
	Type  PieceType `json:"type"`
	Owner int       `json:"owner"`
	Coord int       `json:"coord"`
}

type Board struct {
	Hexes     []int   `json:"hexes,omitempty"`
	Numbers   []int   `json:"numbers,omitempty"`
	RobberHex int     `json:"robber_hex"`
	Pieces    []Piece `json:"pieces,omitempty"`
}

func NewBoard() Board { return Board{RobberHex: -1} }

func (b *Board) SetLayout(hexes, numbers []int, robber int) {
	b.Hexes = append([]int(nil), hexes...)
	b.Numbers = append([]int(nil), numbers...)
	b.RobberHex = robber
}

// Put records a placed piece. A city replaces the settlement under it.
func (b *Board) Put(p Piece) {
	if p.Type == PieceCity {
		for i, q := range b.Pieces {
			if q.Type == PieceSettlement && q.Coord == p.Coord {
				b.Pieces[i] = p
				return
			}
		}
	}
	b.Pieces = append(b.Pieces, p)
}

// PiecesOf returns the pieces owned by seat.
func (b *Board) PiecesOf(seat int) []Piece {
	var out []Piece
	for _, p := range b.Pieces {
		if p.Owner == seat {
			out = append(out, p)
		}
	}
	return out
}

func (b Board) clone() Board {
	c := b
	c.Hexes = append([]int(nil), b.Hexes...)
	c.Numbers = append([]int(nil), b.Numbers...)
	c.Pieces = append([]Piece(nil), b.Pieces...)
	return c
}
