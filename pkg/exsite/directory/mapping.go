package directory

import (
	"bytes"
	"encoding/json"
)

// Mapping is an id -> name table that remembers the order ids were first seen.
// Setting an existing id overwrites its name in place.
type Mapping struct {
	ids   []string
	names map[string]string
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{names: make(map[string]string)}
}

// ToMapping reduces entries to a mapping. Entries without an id are dropped;
// on duplicate ids the last entry wins.
func ToMapping(entries []Entry) *Mapping {
	m := NewMapping()
	for _, e := range entries {
		if e.ID == "" {
			continue
		}
		m.Set(e.ID, e.Name)
	}
	return m
}

// Set records name for id.
func (m *Mapping) Set(id, name string) {
	if _, ok := m.names[id]; !ok {
		m.ids = append(m.ids, id)
	}
	m.names[id] = name
}

// Get returns the name for id.
func (m *Mapping) Get(id string) (string, bool) {
	name, ok := m.names[id]
	return name, ok
}

// Len returns the number of ids.
func (m *Mapping) Len() int {
	return len(m.ids)
}

// IDs returns the ids in first-seen order.
func (m *Mapping) IDs() []string {
	out := make([]string, len(m.ids))
	copy(out, m.ids)
	return out
}

// FindName returns the first id whose name equals name.
func (m *Mapping) FindName(name string) (string, bool) {
	for _, id := range m.ids {
		if m.names[id] == name {
			return id, true
		}
	}
	return "", false
}

// MarshalJSON encodes the mapping as an object keyed by id, in order.
func (m *Mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range m.ids {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.names[id])
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
