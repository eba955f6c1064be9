package table

import (
	"encoding/json"

	"socclient/internal/engine"
)

// Snapshot is a value copy of a replica; it shares no memory with the
// live table.
type Snapshot struct {
	Game      engine.Game          `json:"game"`
	LocalSeat int                  `json:"local_seat"`
	Draft     *engine.CounterDraft `json:"counter_draft,omitempty"`
	Defunct   bool                 `json:"defunct,omitempty"`
}

// Snapshot captures the replica under the read lock.
func (t *Table) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ss := Snapshot{
		Game:      t.g.Clone(),
		LocalSeat: t.localSeat,
		Defunct:   t.defunct,
	}
	if t.draft != nil {
		d := *t.draft
		d.Original.To = append([]bool(nil), t.draft.Original.To...)
		ss.Draft = &d
	}
	return ss
}

// JSON renders the snapshot for dumps and comparisons.
func (ss Snapshot) JSON() ([]byte, error) {
	return json.MarshalIndent(ss, "", "  ")
}
