package engine

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func TestValidateOffer(t *testing.T) {
	own := NewResourceSet(2, 0, 1, 0, 0, 0)
	tests := []struct {
		name string
		give ResourceSet
		get  ResourceSet
		want string
	}{
		{name: "insufficient clay", give: NewResourceSet(3, 0, 0, 0, 0, 0), get: NewResourceSet(0, 1, 0, 0, 0, 0), want: MsgCantOffer},
		{name: "nothing given", give: ResourceSet{}, get: NewResourceSet(0, 1, 0, 0, 0, 0), want: MsgEmptySide},
		{name: "nothing asked", give: NewResourceSet(1, 0, 0, 0, 0, 0), get: ResourceSet{}, want: MsgEmptySide},
		{name: "valid", give: NewResourceSet(2, 0, 1, 0, 0, 0), get: NewResourceSet(0, 0, 0, 1, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOffer(own, tt.give, tt.get)
			if tt.want == "" {
				if err != nil {
					t.Fatalf("unexpected error %v", err)
				}
				return
			}
			var ie *InvalidOfferError
			if !errors.As(err, &ie) || ie.Reason != tt.want {
				t.Fatalf("err = %v, want %q", err, tt.want)
			}
			if !errors.Is(err, ErrInvalidOffer) {
				t.Errorf("should match ErrInvalidOffer")
			}
		})
	}
}

func TestCounterDraftTargetsOnlyProposer(t *testing.T) {
	g := NewGame("g", 4)
	orig := NewTradeOffer(2, 4, []int{0, 3}, NewResourceSet(1, 0, 0, 0, 0, 0), NewResourceSet(0, 1, 0, 0, 0, 0))
	if err := g.MakeOffer(orig); err != nil {
		t.Fatal(err)
	}

	d := CounterDraft{From: 2, Original: orig}
	counter := d.Compose(0, 4, NewResourceSet(0, 0, 1, 0, 0, 0), NewResourceSet(1, 0, 0, 0, 0, 0))
	if got := counter.Recipients(); !reflect.DeepEqual(got, []int{2}) {
		t.Fatalf("counter recipients = %v, want [2]", got)
	}
	if err := g.MakeOffer(counter); err != nil {
		t.Fatal(err)
	}

	p2 := g.Players[2]
	if p2.OfferState != Offered || p2.Offer == nil || !p2.Offer.OfferedTo(3) {
		t.Errorf("seat 2's offer to seat 3 was disturbed: %+v", p2.Offer)
	}
	if g.Players[0].OfferState != Offered {
		t.Errorf("seat 0 state = %s", g.Players[0].OfferState)
	}
}

func TestOfferTransitions(t *testing.T) {
	g := NewGame("g", 4)
	give := NewResourceSet(1, 0, 0, 0, 0, 0)
	get := NewResourceSet(0, 0, 0, 0, 1, 0)

	first := NewTradeOffer(1, 4, []int{0, 2, 3}, give, get)
	_ = g.MakeOffer(first)
	second := NewTradeOffer(1, 4, []int{0}, get, give)
	_ = g.MakeOffer(second)
	if got := g.Players[1].Offer.Recipients(); !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("new offer should replace the old one, recipients = %v", got)
	}

	if err := g.RejectOffer(0); err != nil {
		t.Fatal(err)
	}
	if g.Players[0].OfferState != Rejected {
		t.Errorf("seat 0 = %s, want rejected", g.Players[0].OfferState)
	}
	if g.Players[1].OfferState != Offered {
		t.Errorf("rejection must not clear the proposer")
	}

	own := NewTradeOffer(3, 4, []int{1}, give, get)
	_ = g.MakeOffer(own)
	_ = g.RejectOffer(3)
	if p := g.Players[3]; p.OfferState != Rejected || p.Offer == nil || !p.Offer.OfferedTo(1) {
		t.Errorf("seat 3 rejecting dropped its own offer: %s %+v", p.OfferState, p.Offer)
	}
	_ = g.ClearTradeMsg(3)
	if g.Players[3].OfferState != Offered {
		t.Errorf("seat 3 after clear trade msg = %s, want offered", g.Players[3].OfferState)
	}
	_ = g.ClearOffer(3)

	if err := g.AcceptOffer(2, 1); err != nil {
		t.Fatal(err)
	}
	if g.Players[1].OfferState != Accepted || g.Players[1].Offer != nil {
		t.Errorf("seat 1 after accept = %s %+v", g.Players[1].OfferState, g.Players[1].Offer)
	}

	_ = g.ClearTradeMsg(-1)
	for i, p := range g.Players {
		if p.OfferState != NoOffer {
			t.Errorf("seat %d = %s after clear trade msg", i, p.OfferState)
		}
	}

	_ = g.MakeOffer(first)
	_ = g.ClearOffer(-1)
	if g.Players[1].Offer != nil || g.Players[1].OfferState != Cleared {
		t.Errorf("clear all left %s", g.Players[1].OfferState)
	}

	if err := g.ClearOffer(9); !errors.Is(err, ErrNoSuchSeat) {
		t.Errorf("clear seat 9: %v", err)
	}
}

func TestNewTradeOfferDropsSelfAndOutOfRange(t *testing.T) {
	o := NewTradeOffer(1, 4, []int{1, 2, 7, -1}, ResourceSet{}, ResourceSet{})
	if got := o.Recipients(); !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("recipients = %v", got)
	}
}
