package engine

import (
	"fmt"

	"github.com/pkg/errors"
)

// Pieces each player starts with.
const (
	StartRoads       = 15
	StartSettlements = 5
	StartCities      = 4
)

// Element is the field a PLAYERELEMENT message targets. The resource
// elements share their values with Resource.
type Element int

const (
	ElemClay        Element = Element(Clay)
	ElemOre         Element = Element(Ore)
	ElemSheep       Element = Element(Sheep)
	ElemWheat       Element = Element(Wheat)
	ElemWood        Element = Element(Wood)
	ElemUnknown     Element = Element(Unknown)
	ElemRoads       Element = 10
	ElemSettlements Element = 11
	ElemCities      Element = 12
	ElemKnights     Element = 15
)

func (e Element) String() string {
	switch e {
	case ElemRoads:
		return "roads"
	case ElemSettlements:
		return "settlements"
	case ElemCities:
		return "cities"
	case ElemKnights:
		return "knights"
	}
	if r := Resource(e); r.Valid() {
		return r.String()
	}
	return fmt.Sprintf("element(%d)", int(e))
}

// Resource reports the ledger bucket e names, if any.
func (e Element) Resource() (Resource, bool) {
	r := Resource(e)
	return r, r.Valid()
}

// ElementDelta is one element/value pair of a PLAYERELEMENTS message.
type ElementDelta struct {
	Element Element
	Value   int
}

// ElementAction is SET, GAIN or LOSE.
type ElementAction int

const (
	ActSet  ElementAction = 100
	ActGain ElementAction = 101
	ActLose ElementAction = 102
)

func (a ElementAction) String() string {
	switch a {
	case ActSet:
		return "set"
	case ActGain:
		return "gain"
	case ActLose:
		return "lose"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Player is one seat's replica.
type Player struct {
	Seat       int    `json:"seat"`
	Name       string `json:"name,omitempty"`
	Robot      bool   `json:"robot,omitempty"`
	SeatLocked bool   `json:"seat_locked,omitempty"`
	Face       int    `json:"face"`

	Resources ResourceSet `json:"resources"`
	DevCards  DevCardSet  `json:"devcards"`

	Roads       int `json:"roads"`
	Settlements int `json:"settlements"`
	Cities      int `json:"cities"`
	Knights     int `json:"knights"`

	LongestRoad   bool `json:"longest_road,omitempty"`
	LargestArmy   bool `json:"largest_army,omitempty"`
	PlayedDevCard bool `json:"played_devcard,omitempty"`

	Offer      *TradeOffer `json:"offer,omitempty"`
	OfferState OfferState  `json:"offer_state"`

	PotentialSettlements []int `json:"potential_settlements,omitempty"`
}

func NewPlayer(seat int) Player {
	return Player{
		Seat:        seat,
		Face:        1,
		Roads:       StartRoads,
		Settlements: StartSettlements,
		Cities:      StartCities,
	}
}

func (p *Player) Occupied() bool { return p.Name != "" }

// Vacate empties the seat. The seat lock survives.
func (p *Player) Vacate() {
	locked := p.SeatLocked
	*p = NewPlayer(p.Seat)
	p.SeatLocked = locked
}

// PublicVP counts the points every observer can see.
func (p *Player) PublicVP() int {
	vp := (StartSettlements - p.Settlements) + 2*(StartCities-p.Cities)
	if p.LongestRoad {
		vp += 2
	}
	if p.LargestArmy {
		vp += 2
	}
	return vp
}

// TotalVP adds victory-point cards; for opponents those are unknown, so
// this equals PublicVP unless the cards were revealed.
func (p *Player) TotalVP() int { return p.PublicVP() + p.DevCards.VPCards() }

// ApplyElement applies one PLAYERELEMENT delta.
func (p *Player) ApplyElement(a ElementAction, e Element, value int) error {
	if r, ok := e.Resource(); ok {
		switch a {
		case ActSet:
			p.Resources.Set(r, value)
		case ActGain:
			p.Resources.Gain(r, value)
		case ActLose:
			return p.Resources.Lose(r, value)
		default:
			return errors.Wrapf(ErrUnknownAction, "%d on %s", int(a), e)
		}
		return nil
	}

	var field *int
	switch e {
	case ElemRoads:
		field = &p.Roads
	case ElemSettlements:
		field = &p.Settlements
	case ElemCities:
		field = &p.Cities
	case ElemKnights:
		field = &p.Knights
	default:
		return errors.Errorf("unknown player element %d", int(e))
	}
	return applyCounter(field, a, value, e)
}

func applyCounter(field *int, a ElementAction, value int, e Element) error {
	switch a {
	case ActSet:
		*field = value
	case ActGain:
		*field += value
	case ActLose:
		*field -= value
	default:
		return errors.Wrapf(ErrUnknownAction, "%d on %s", int(a), e)
	}
	if *field < 0 {
		*field = 0
		return &ReconciliationWarning{Subject: e.String(), Detail: "count went negative"}
	}
	return nil
}

// PlacePiece updates remaining-piece counters after a placement. A city
// hands its settlement back.
func (p *Player) PlacePiece(t PieceType) error {
	switch t {
	case PieceRoad:
		return applyCounter(&p.Roads, ActLose, 1, ElemRoads)
	case PieceSettlement:
		return applyCounter(&p.Settlements, ActLose, 1, ElemSettlements)
	case PieceCity:
		p.Settlements++
		return applyCounter(&p.Cities, ActLose, 1, ElemCities)
	}
	return errors.Errorf("unknown piece type %d", int(t))
}

func (p Player) clone() Player {
	c := p
	if p.Offer != nil {
		o := p.Offer.clone()
		c.Offer = &o
	}
	c.PotentialSettlements = append([]int(nil), p.PotentialSettlements...)
	return c
}
