package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"socclient/internal/client"
	"socclient/internal/engine"
	"socclient/internal/table"
)

func seatedTable(t *testing.T) *table.Table {
	t.Helper()
	tb := table.New("g1", 4, "alice", nil)
	for seat, name := range []string{"alice", "玩家二", "bob"} {
		if _, err := tb.Sit(seat, name, false); err != nil {
			t.Fatal(err)
		}
	}
	if err := tb.SetCurrent(1); err != nil {
		t.Fatal(err)
	}
	return tb
}

func TestSeatTableAligned(t *testing.T) {
	out := SeatTable(seatedTable(t))
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	want := runewidth.StringWidth(lines[0])
	for _, l := range lines[1:] {
		if w := runewidth.StringWidth(l); w != want {
			t.Errorf("width %d != %d: %q", w, want, l)
		}
	}
	if !strings.Contains(lines[1], "you") || !strings.Contains(lines[2], "turn") {
		t.Errorf("flags missing:\n%s", out)
	}
}

func TestConsoleLines(t *testing.T) {
	tb := seatedTable(t)
	var buf bytes.Buffer
	c := New(&buf)
	c.lookup = func(string) (*table.Table, bool) { return tb, true }

	tests := []struct {
		name string
		call func()
		want string
	}{
		{name: "dice", call: func() { c.OnDiceResult("g1", 8) }, want: "[g1] rolled 8\n"},
		{name: "sat", call: func() { c.OnPlayerSat("g1", 2) }, want: "[g1] bob sat at seat 2\n"},
		{name: "status", call: func() { c.OnStatus("welcome") }, want: "* welcome\n"},
		{
			name: "discard",
			call: func() { c.OnChooserRequested("g1", client.ChooserRequest{Kind: engine.PromptDiscard, Count: 4}) },
			want: "[g1] discard 4 cards: 'discard g1 clay ore sheep wheat wood'\n",
		},
		{name: "roll prompt for someone else", call: func() { c.OnRollPrompt("g1", 1) }, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.call()
			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
