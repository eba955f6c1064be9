package engine

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
)

func TestLoseUnknownFromUncertainLedger(t *testing.T) {
	rs := NewResourceSet(0, 0, 0, 0, 0, 3)
	if err := rs.Lose(Unknown, 1); err != nil {
		t.Fatalf("lose: %v", err)
	}
	if got := rs.Amount(Unknown); got != 2 {
		t.Errorf("unknown = %d, want 2", got)
	}
	if got := rs.KnownTotal(); got != 0 {
		t.Errorf("named total = %d, want 0", got)
	}
	if got := rs.Total(); got != 2 {
		t.Errorf("total = %d, want 2", got)
	}
}

func TestLoseUnknownFoldsNamedBuckets(t *testing.T) {
	rs := NewResourceSet(2, 1, 0, 0, 1, 0)
	if err := rs.Lose(Unknown, 1); err != nil {
		t.Fatalf("lose: %v", err)
	}
	want := NewResourceSet(0, 0, 0, 0, 0, 3)
	if rs != want {
		t.Errorf("ledger = %s, want %s", rs, want)
	}
}

func TestLoseNamedShortfall(t *testing.T) {
	tests := []struct {
		name        string
		start       ResourceSet
		kind        Resource
		n           int
		want        ResourceSet
		wantWarning bool
	}{
		{
			name:  "enough in bucket",
			start: NewResourceSet(3, 0, 0, 0, 0, 0),
			kind:  Clay, n: 2,
			want: NewResourceSet(1, 0, 0, 0, 0, 0),
		},
		{
			name:  "shortfall comes from unknown",
			start: NewResourceSet(1, 0, 0, 0, 0, 4),
			kind:  Clay, n: 3,
			want: NewResourceSet(0, 0, 0, 0, 0, 2),
		},
		{
			name:  "unknown underflow clamps and warns",
			start: NewResourceSet(0, 1, 0, 0, 0, 1),
			kind:  Ore, n: 5,
			want:        NewResourceSet(0, 0, 0, 0, 0, 0),
			wantWarning: true,
		},
		{
			name:  "lose unknown beyond total",
			start: NewResourceSet(1, 0, 0, 0, 0, 0),
			kind:  Unknown, n: 2,
			want:        NewResourceSet(0, 0, 0, 0, 0, 0),
			wantWarning: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := tt.start
			err := rs.Lose(tt.kind, tt.n)
			if rs != tt.want {
				t.Errorf("ledger = %s, want %s", rs, tt.want)
			}
			var w *ReconciliationWarning
			if got := errors.As(err, &w); got != tt.wantWarning {
				t.Errorf("warning = %v (%v), want %v", got, err, tt.wantWarning)
			}
			if tt.wantWarning && !errors.Is(err, ErrOutOfSync) {
				t.Errorf("warning should match ErrOutOfSync")
			}
		})
	}
}

func TestLoseNeverGoesNegative(t *testing.T) {
	for _, k := range []Resource{Clay, Ore, Sheep, Wheat, Wood, Unknown} {
		for have := 0; have < 4; have++ {
			for unknown := 0; unknown < 4; unknown++ {
				for n := 0; n < 8; n++ {
					var rs ResourceSet
					rs.Set(k, have)
					rs.Gain(Unknown, unknown)
					before := rs
					_ = rs.Lose(k, n)
					for r := Clay; r <= Unknown; r++ {
						if rs.Amount(r) < 0 {
							t.Fatalf("%s went negative: %s", r, rs)
						}
					}
					if k != Unknown && n > have && n-have <= before.Amount(Unknown) {
						if got := before.Amount(Unknown) - rs.Amount(Unknown); got != n-have {
							t.Fatalf("unknown dropped by %d, want %d", got, n-have)
						}
						if rs.Amount(k) != 0 {
							t.Fatalf("%s = %d, want 0", k, rs.Amount(k))
						}
					}
				}
			}
		}
	}
}

func TestGainThenLoseRestores(t *testing.T) {
	start := NewResourceSet(1, 2, 0, 3, 1, 0)
	for _, k := range Named {
		rs := start
		rs.Gain(k, 2)
		if err := rs.Lose(k, 2); err != nil {
			t.Fatalf("%s: %v", k, err)
		}
		if rs != start {
			t.Errorf("%s: ledger = %s, want %s", k, rs, start)
		}
	}
}

func TestContainsIgnoresUnknown(t *testing.T) {
	own := NewResourceSet(2, 0, 1, 0, 0, 0)
	if own.Contains(NewResourceSet(3, 0, 0, 0, 0, 0)) {
		t.Errorf("2 clay should not contain 3 clay")
	}
	if !own.Contains(NewResourceSet(2, 0, 1, 0, 0, 9)) {
		t.Errorf("unknown must not be compared")
	}
}

func TestSetClampsNegative(t *testing.T) {
	var rs ResourceSet
	rs.Set(Wood, -4)
	if rs.Amount(Wood) != 0 {
		t.Errorf("wood = %d", rs.Amount(Wood))
	}
}

func TestResourceSetJSON(t *testing.T) {
	rs := NewResourceSet(1, 0, 2, 0, 0, 3)
	b, err := json.Marshal(rs)
	if err != nil {
		t.Fatal(err)
	}
	var back ResourceSet
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if back != rs {
		t.Errorf("json = %s, back = %s", b, back)
	}
}

func TestParseResource(t *testing.T) {
	if r, err := ParseResource("Wheat"); err != nil || r != Wheat {
		t.Errorf("ParseResource(Wheat) = %v, %v", r, err)
	}
	if _, err := ParseResource("gold"); err == nil {
		t.Errorf("gold should not parse")
	}
}
