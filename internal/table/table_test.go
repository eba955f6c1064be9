package table

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"socclient/internal/engine"
)

func newTestTable(t *testing.T) (*Table, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	tb := New("g1", 4, "alice", log.New(&buf, "", 0))
	if _, err := tb.Sit(0, "alice", false); err != nil {
		t.Fatal(err)
	}
	if _, err := tb.Sit(2, "bob", false); err != nil {
		t.Fatal(err)
	}
	if _, err := tb.Sit(3, "robot 1", true); err != nil {
		t.Fatal(err)
	}
	return tb, &buf
}

func TestSitResolvesLocalSeat(t *testing.T) {
	tb := New("g1", 4, "alice", nil)
	if tb.LocalSeat() != engine.NoSeat {
		t.Fatalf("fresh table should have no local seat")
	}
	local, _ := tb.Sit(1, "bob", false)
	if local {
		t.Errorf("bob is not local")
	}
	local, _ = tb.Sit(2, "alice", false)
	if !local || tb.LocalSeat() != 2 || !tb.IsLocal(2) || tb.IsLocal(1) {
		t.Errorf("local seat = %d", tb.LocalSeat())
	}
	_, _ = tb.Sit(2, "carol", false)
	if tb.LocalSeat() != engine.NoSeat {
		t.Errorf("seat taken over, local seat = %d", tb.LocalSeat())
	}
	if _, err := tb.Sit(9, "dave", false); !errors.Is(err, engine.ErrNoSuchSeat) {
		t.Errorf("sit at 9: %v", err)
	}
}

func TestSetPhasePromptsOnlyLocalCurrent(t *testing.T) {
	tests := []struct {
		name    string
		current int
		phase   engine.Phase
		want    bool
	}{
		{name: "our discovery", current: 0, phase: engine.PhaseWaitingForDiscover, want: true},
		{name: "our monopoly", current: 0, phase: engine.PhaseWaitingForMonopoly, want: true},
		{name: "their discovery", current: 2, phase: engine.PhaseWaitingForDiscover},
		{name: "our play1", current: 0, phase: engine.PhasePlay1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb, _ := newTestTable(t)
			_ = tb.SetCurrent(tt.current)
			_, ok, err := tb.SetPhase(tt.phase)
			if err != nil {
				t.Fatal(err)
			}
			if ok != tt.want {
				t.Errorf("prompt = %v, want %v", ok, tt.want)
			}
			if tb.Phase() != tt.phase {
				t.Errorf("phase = %s", tb.Phase())
			}
		})
	}
}

func TestSetPhaseRepeatDoesNotPromptTwice(t *testing.T) {
	tb, _ := newTestTable(t)
	_ = tb.SetCurrent(0)
	_, first, _ := tb.SetPhase(engine.PhaseWaitingForDiscover)
	_, second, _ := tb.SetPhase(engine.PhaseWaitingForDiscover)
	if !first || second {
		t.Errorf("prompts = %v %v", first, second)
	}
}

func TestSetPhaseRejectsUnknown(t *testing.T) {
	tb, _ := newTestTable(t)
	_, _, err := tb.SetPhase(engine.Phase(77))
	if !errors.Is(err, engine.ErrOutOfSync) {
		t.Errorf("err = %v", err)
	}
	if tb.Phase() != engine.PhaseNew {
		t.Errorf("phase changed to %s", tb.Phase())
	}
}

func TestTurnBookkeeping(t *testing.T) {
	tb, _ := newTestTable(t)
	_ = tb.DevCardAction(2, engine.DevDraw, engine.CardKnight)
	_ = tb.SetDice(8)
	_ = tb.SetPlayedDevCard(2, true)
	if err := tb.Turn(2); err != nil {
		t.Fatal(err)
	}
	ss := tb.Snapshot()
	if ss.Game.First != 2 || ss.Game.Current != 2 || ss.Game.Dice != 0 {
		t.Errorf("first=%d current=%d dice=%d", ss.Game.First, ss.Game.Current, ss.Game.Dice)
	}
	p := ss.Game.Players[2]
	if p.DevCards.Old[engine.CardKnight] != 1 || p.DevCards.New[engine.CardKnight] != 0 || p.PlayedDevCard {
		t.Errorf("dev cards not aged: %+v", p.DevCards)
	}
	_ = tb.Turn(3)
	if tb.Snapshot().Game.First != 2 {
		t.Errorf("first player must not move")
	}
}

func TestReconcileCount(t *testing.T) {
	tb, _ := newTestTable(t)
	_ = tb.ApplyElement(2, engine.ActSet, engine.ElemClay, 2)
	_ = tb.ApplyElement(0, engine.ActSet, engine.ElemWood, 1)

	changed, err := tb.ReconcileCount(2, 2)
	if err != nil || changed {
		t.Fatalf("matching count: changed=%v err=%v", changed, err)
	}
	changed, err = tb.ReconcileCount(2, 5)
	if err != nil || !changed {
		t.Fatalf("opponent mismatch: changed=%v err=%v", changed, err)
	}
	p, _ := tb.Player(2)
	if p.Resources != engine.NewResourceSet(0, 0, 0, 0, 0, 5) {
		t.Errorf("opponent ledger = %s", p.Resources)
	}

	changed, err = tb.ReconcileCount(0, 4)
	if changed || !errors.Is(err, engine.ErrOutOfSync) {
		t.Errorf("local mismatch: changed=%v err=%v", changed, err)
	}
	own, _ := tb.LocalResources()
	if own.Amount(engine.Wood) != 1 || own.Total() != 1 {
		t.Errorf("own ledger rewritten: %s", own)
	}
}

func TestApplyElementsCommitsWhole(t *testing.T) {
	tb, _ := newTestTable(t)
	before := tb.Snapshot()

	err := tb.ApplyElements(2, engine.ActSet, []engine.ElementDelta{
		{Element: engine.ElemClay, Value: 4},
		{Element: engine.ElemRoads, Value: 3},
		{Element: 99, Value: 1},
	})
	if err == nil {
		t.Fatal("unknown element accepted")
	}
	p, _ := tb.Player(2)
	was := before.Game.Players[2]
	if p.Resources != was.Resources || p.Roads != was.Roads {
		t.Errorf("seat 2 changed: %+v", p)
	}

	// a clamped LOSE still commits the batch
	err = tb.ApplyElements(2, engine.ActLose, []engine.ElementDelta{
		{Element: engine.ElemRoads, Value: 1},
		{Element: engine.ElemClay, Value: 1},
	})
	if !errors.Is(err, engine.ErrOutOfSync) {
		t.Fatalf("err = %v", err)
	}
	p, _ = tb.Player(2)
	if p.Roads != engine.StartRoads-1 {
		t.Errorf("roads = %d", p.Roads)
	}
}

func TestRemoveMemberVacatesSeat(t *testing.T) {
	tb, _ := newTestTable(t)
	seat, err := tb.RemoveMember("bob")
	if err != nil || seat != 2 {
		t.Fatalf("seat=%d err=%v", seat, err)
	}
	p, _ := tb.Player(2)
	if p.Occupied() {
		t.Errorf("seat 2 still occupied by %q", p.Name)
	}
	seat, _ = tb.RemoveMember("observer")
	if seat != engine.NoSeat {
		t.Errorf("observer seat = %d", seat)
	}
}

func TestCounterDraftLifecycle(t *testing.T) {
	tb, buf := newTestTable(t)
	_ = tb.ApplyElement(0, engine.ActSet, engine.ElemSheep, 2)

	if err := tb.OpenCounterDraft(2); !errors.Is(err, ErrNoOfferToUs) {
		t.Fatalf("draft without offer: %v", err)
	}
	offer := engine.NewTradeOffer(2, 4, []int{0, 3}, engine.NewResourceSet(1, 0, 0, 0, 0, 0), engine.NewResourceSet(0, 1, 0, 0, 0, 0))
	_ = tb.MakeOffer(offer)
	if err := tb.OpenCounterDraft(2); err != nil {
		t.Fatal(err)
	}
	if !tb.IsCounterDraftOpen() {
		t.Fatalf("draft should be open")
	}

	counter, err := tb.ComposeCounter(engine.NewResourceSet(0, 0, 1, 0, 0, 0), engine.NewResourceSet(1, 0, 0, 0, 0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if got := counter.Recipients(); len(got) != 1 || got[0] != 2 || counter.From != 0 {
		t.Errorf("counter = %+v", counter)
	}

	_, err = tb.ComposeCounter(engine.NewResourceSet(0, 0, 3, 0, 0, 0), engine.NewResourceSet(1, 0, 0, 0, 0, 0))
	var ie *engine.InvalidOfferError
	if !errors.As(err, &ie) || ie.Reason != engine.MsgCantOffer {
		t.Errorf("overdrawn counter: %v", err)
	}

	_ = tb.ClearOffer(3)
	if !tb.IsCounterDraftOpen() {
		t.Errorf("clearing another seat must not close the draft")
	}
	_ = tb.ClearOffer(2)
	if tb.IsCounterDraftOpen() {
		t.Errorf("draft should close with the offer it answers")
	}
	if !strings.Contains(buf.String(), "draft to seat 2 closed") {
		t.Errorf("log = %q", buf.String())
	}
}

func TestLosingSeatClosesDraft(t *testing.T) {
	tests := []struct {
		name  string
		leave func(tb *Table) error
	}{
		{"we left", func(tb *Table) error {
			_, err := tb.RemoveMember("alice")
			return err
		}},
		{"seat taken", func(tb *Table) error {
			_, err := tb.Sit(0, "carol", false)
			return err
		}},
		{"we moved", func(tb *Table) error {
			_, err := tb.Sit(1, "alice", false)
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb, buf := newTestTable(t)
			_ = tb.ApplyElement(0, engine.ActSet, engine.ElemSheep, 2)
			_ = tb.MakeOffer(engine.NewTradeOffer(2, 4, []int{0}, engine.NewResourceSet(1, 0, 0, 0, 0, 0), engine.NewResourceSet(0, 1, 0, 0, 0, 0)))
			if err := tb.OpenCounterDraft(2); err != nil {
				t.Fatal(err)
			}

			if err := tt.leave(tb); err != nil {
				t.Fatal(err)
			}
			if tb.IsCounterDraftOpen() {
				t.Errorf("draft survived losing seat 0")
			}
			if !strings.Contains(buf.String(), "no longer seated") {
				t.Errorf("log = %q", buf.String())
			}
		})
	}
}

func TestComposeCounterUnseated(t *testing.T) {
	tb, _ := newTestTable(t)
	if _, err := tb.RemoveMember("alice"); err != nil {
		t.Fatal(err)
	}
	if tb.LocalSeat() != engine.NoSeat {
		t.Fatalf("local seat = %d", tb.LocalSeat())
	}
	_, err := tb.ComposeCounter(engine.NewResourceSet(0, 0, 1, 0, 0, 0), engine.NewResourceSet(1, 0, 0, 0, 0, 0))
	if !errors.Is(err, ErrNotSeated) {
		t.Errorf("err = %v", err)
	}
}

func TestComposeOffer(t *testing.T) {
	tb, _ := newTestTable(t)
	_ = tb.ApplyElement(0, engine.ActSet, engine.ElemClay, 2)
	_ = tb.ApplyElement(0, engine.ActSet, engine.ElemSheep, 1)

	_, err := tb.ComposeOffer(engine.NewResourceSet(3, 0, 0, 0, 0, 0), engine.NewResourceSet(0, 1, 0, 0, 0, 0), []int{2})
	if !errors.Is(err, engine.ErrInvalidOffer) {
		t.Errorf("insufficient clay: %v", err)
	}
	_, err = tb.ComposeOffer(engine.NewResourceSet(1, 0, 0, 0, 0, 0), engine.NewResourceSet(0, 1, 0, 0, 0, 0), []int{0})
	var ie *engine.InvalidOfferError
	if !errors.As(err, &ie) || ie.Reason != engine.MsgNoRecipients {
		t.Errorf("self only: %v", err)
	}
	o, err := tb.ComposeOffer(engine.NewResourceSet(1, 0, 0, 0, 0, 0), engine.NewResourceSet(0, 1, 0, 0, 0, 0), []int{2, 3})
	if err != nil || len(o.Recipients()) != 2 {
		t.Errorf("offer = %+v err = %v", o, err)
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	tb, _ := newTestTable(t)
	_ = tb.PutPiece(2, engine.PieceSettlement, 0x67)
	ss := tb.Snapshot()
	ss.Game.Board.Pieces[0].Owner = 3
	ss.Game.Players[2].Name = "mallory"
	again := tb.Snapshot()
	if again.Game.Board.Pieces[0].Owner != 2 || again.Game.Players[2].Name != "bob" {
		t.Errorf("snapshot leaked into the live table")
	}
	b, err := again.JSON()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(b, []byte(`"local_seat": 0`)) || !bytes.Contains(b, []byte(`"phase": "new"`)) {
		t.Errorf("json = %s", b)
	}
}

func TestDefunctRejectsUpdates(t *testing.T) {
	tb, _ := newTestTable(t)
	tb.MarkDefunct()
	if err := tb.SetDice(6); !errors.Is(err, ErrDefunct) {
		t.Errorf("err = %v", err)
	}
	if !tb.Defunct() || !tb.Snapshot().Defunct {
		t.Errorf("defunct flag lost")
	}
}
