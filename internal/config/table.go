package config

import (
	"bytes"
	"encoding/json"

	"randlab/domain/distribution"
	"randlab/internal/errors"
)

// TableEntry is one label→probability pair of a contingency table
type TableEntry struct {
	Label string
	P     float64
}

// OrderedTable is a contingency table that preserves JSON document order.
// Order is load-bearing: the table sampler walks entries cumulatively, so
// decoding into a Go map would silently reshuffle the distribution.
type OrderedTable []TableEntry

// Probs converts the table to the distribution package's ordered form
func (t OrderedTable) Probs() distribution.ProbTable {
	out := make(distribution.ProbTable, len(t))
	for i, e := range t {
		out[i] = distribution.Prob{Label: e.Label, P: e.P}
	}
	return out
}

// UnmarshalJSON walks the object tokens one by one instead of decoding into
// a map, keeping the key order of the document.
func (t *OrderedTable) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.ConfigInvalid("tabla_contingencia must be a JSON object")
	}

	entries := OrderedTable{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return errors.ConfigInvalid("tabla_contingencia keys must be strings")
		}

		var p float64
		if err := dec.Decode(&p); err != nil {
			return errors.ConfigInvalid("tabla_contingencia values must be numbers")
		}
		entries = append(entries, TableEntry{Label: key, P: p})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	*t = entries
	return nil
}

// MarshalJSON writes the table back as an object in entry order
func (t OrderedTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range t {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Label)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.P)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
