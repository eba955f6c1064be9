package engine

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type DevCard int

const (
	CardUnknown DevCard = iota
	CardRoads
	CardDiscovery
	CardMonopoly
	CardCapitol
	CardLibrary
	CardUniversity
	CardTemple
	CardTower
	CardKnight

	numDevCards = int(CardKnight) + 1
)

var devCardNames = [numDevCards]string{
	"unknown", "roads", "discovery", "monopoly", "capitol",
	"library", "university", "temple", "tower", "knight",
}

func (d DevCard) String() string {
	if d < 0 || int(d) >= numDevCards {
		return fmt.Sprintf("devcard(%d)", int(d))
	}
	return devCardNames[d]
}

func (d DevCard) Valid() bool { return d >= CardUnknown && int(d) < numDevCards }

// IsVP reports a victory-point card.
func (d DevCard) IsVP() bool { return d >= CardCapitol && d <= CardTower }

func ParseDevCard(s string) (DevCard, error) {
	for i, n := range devCardNames {
		if strings.EqualFold(s, n) {
			return DevCard(i), nil
		}
	}
	return 0, errors.Errorf("unknown dev card %q", s)
}

// DevCardAction is the verb of a DEVCARDACTION message.
type DevCardAction int

const (
	DevDraw DevCardAction = iota
	DevPlay
	DevAddNew
	DevAddOld
)

// DevCardSet splits a hand into cards bought this turn (New) and cards
// that may be played (Old).
type DevCardSet struct {
	Old [numDevCards]int
	New [numDevCards]int
}

func (ds DevCardSet) Total() int {
	sum := 0
	for i := 0; i < numDevCards; i++ {
		sum += ds.Old[i] + ds.New[i]
	}
	return sum
}

func (ds DevCardSet) Amount(d DevCard) int {
	if !d.Valid() {
		return 0
	}
	return ds.Old[d] + ds.New[d]
}

// VPCards counts victory-point cards in either age.
func (ds DevCardSet) VPCards() int {
	sum := 0
	for d := CardCapitol; d <= CardTower; d++ {
		sum += ds.Old[d] + ds.New[d]
	}
	return sum
}

// NewToOld ages every new card; called at the start of the owner's turn.
func (ds *DevCardSet) NewToOld() {
	for i := 0; i < numDevCards; i++ {
		ds.Old[i] += ds.New[i]
		ds.New[i] = 0
	}
}

// Apply performs one DEVCARDACTION.
func (ds *DevCardSet) Apply(a DevCardAction, d DevCard) error {
	if !d.Valid() {
		return errors.Errorf("invalid dev card %d", int(d))
	}
	switch a {
	case DevDraw, DevAddNew:
		ds.New[d]++
	case DevAddOld:
		ds.Old[d]++
	case DevPlay:
		if ds.Old[d] > 0 {
			ds.Old[d]--
			return nil
		}
		// opponents' hands are tracked as unknown cards
		if ds.Old[CardUnknown] > 0 {
			ds.Old[CardUnknown]--
			return nil
		}
		return &ReconciliationWarning{Subject: "devcards", Detail: fmt.Sprintf("played %s not in hand", d)}
	default:
		return errors.Wrapf(ErrUnknownAction, "dev card action %d", int(a))
	}
	return nil
}
