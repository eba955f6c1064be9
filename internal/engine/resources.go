package engine

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type Resource int

const (
	Clay Resource = iota + 1
	Ore
	Sheep
	Wheat
	Wood
	Unknown
)

// Named lists the five visible kinds in wire order.
var Named = [...]Resource{Clay, Ore, Sheep, Wheat, Wood}

func (r Resource) String() string {
	switch r {
	case Clay:
		return "clay"
	case Ore:
		return "ore"
	case Sheep:
		return "sheep"
	case Wheat:
		return "wheat"
	case Wood:
		return "wood"
	case Unknown:
		return "unknown"
	default:
		return fmt.Sprintf("resource(%d)", int(r))
	}
}

func (r Resource) Valid() bool { return r >= Clay && r <= Unknown }

func ParseResource(s string) (Resource, error) {
	for r := Clay; r <= Unknown; r++ {
		if strings.EqualFold(s, r.String()) {
			return r, nil
		}
	}
	return 0, errors.Errorf("unknown resource %q", s)
}

// ResourceSet is a per-player ledger: five named buckets plus an unknown
// bucket for cards the observer cannot see. Counts never go negative.
type ResourceSet struct {
	counts [Unknown + 1]int
}

// NewResourceSet builds a ledger; negative inputs are treated as zero.
func NewResourceSet(clay, ore, sheep, wheat, wood, unknown int) ResourceSet {
	var rs ResourceSet
	for i, n := range []int{clay, ore, sheep, wheat, wood, unknown} {
		rs.Set(Resource(i+1), n)
	}
	return rs
}

// ResourcesFromSlice maps five wire-ordered counts to a ledger.
func ResourcesFromSlice(five []int) ResourceSet {
	var rs ResourceSet
	for i := 0; i < len(five) && i < len(Named); i++ {
		rs.Set(Named[i], five[i])
	}
	return rs
}

func (rs ResourceSet) Amount(r Resource) int {
	if !r.Valid() {
		return 0
	}
	return rs.counts[r]
}

func (rs *ResourceSet) Set(r Resource, n int) {
	if !r.Valid() {
		return
	}
	if n < 0 {
		n = 0
	}
	rs.counts[r] = n
}

func (rs *ResourceSet) Gain(r Resource, n int) {
	if !r.Valid() || n <= 0 {
		return
	}
	rs.counts[r] += n
}

// Lose removes n of r. A named bucket that holds fewer than n drops to zero
// and the shortfall comes out of unknown. Losing Unknown first folds every
// named bucket into unknown. If unknown itself cannot cover the loss it is
// clamped at zero and a ReconciliationWarning is returned.
func (rs *ResourceSet) Lose(r Resource, n int) error {
	if !r.Valid() || n <= 0 {
		return nil
	}
	if r == Unknown {
		for _, k := range Named {
			rs.counts[Unknown] += rs.counts[k]
			rs.counts[k] = 0
		}
		return rs.loseUnknown(n)
	}
	have := rs.counts[r]
	if have >= n {
		rs.counts[r] = have - n
		return nil
	}
	rs.counts[r] = 0
	return rs.loseUnknown(n - have)
}

func (rs *ResourceSet) loseUnknown(n int) error {
	if rs.counts[Unknown] >= n {
		rs.counts[Unknown] -= n
		return nil
	}
	short := n - rs.counts[Unknown]
	rs.counts[Unknown] = 0
	return &ReconciliationWarning{
		Subject: "resources",
		Detail:  fmt.Sprintf("unknown bucket short by %d", short),
	}
}

// Clear zeroes every bucket.
func (rs *ResourceSet) Clear() { rs.counts = [Unknown + 1]int{} }

// Total sums all six buckets.
func (rs ResourceSet) Total() int {
	return rs.KnownTotal() + rs.counts[Unknown]
}

// KnownTotal sums the five named buckets.
func (rs ResourceSet) KnownTotal() int {
	sum := 0
	for _, k := range Named {
		sum += rs.counts[k]
	}
	return sum
}

// Contains reports whether rs holds at least o's count in every named
// bucket. Unknown is not compared.
func (rs ResourceSet) Contains(o ResourceSet) bool {
	for _, k := range Named {
		if rs.counts[k] < o.counts[k] {
			return false
		}
	}
	return true
}

// Slice returns the five named counts in wire order.
func (rs ResourceSet) Slice() []int {
	out := make([]int, len(Named))
	for i, k := range Named {
		out[i] = rs.counts[k]
	}
	return out
}

func (rs ResourceSet) String() string {
	var b strings.Builder
	for r := Clay; r <= Unknown; r++ {
		if r > Clay {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%d", r, rs.counts[r])
	}
	return b.String()
}
