package engine

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes a ledger as {"clay":1,...,"unknown":0}.
func (rs ResourceSet) MarshalJSON() ([]byte, error) {
	m := make(map[string]int, Unknown)
	for r := Clay; r <= Unknown; r++ {
		m[r.String()] = rs.counts[r]
	}
	return json.Marshal(m)
}

// UnmarshalJSON accepts the object form; missing kinds are zero.
func (rs *ResourceSet) UnmarshalJSON(b []byte) error {
	var m map[string]int
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	rs.Clear()
	for k, n := range m {
		r, err := ParseResource(k)
		if err != nil {
			return err
		}
		rs.Set(r, n)
	}
	return nil
}

// MarshalJSON encodes a phase by name.
func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Phase) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	for _, cand := range phases {
		if cand.String() == s {
			*p = cand
			return nil
		}
	}
	return fmt.Errorf("invalid phase %q", s)
}
