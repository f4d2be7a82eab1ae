// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package tree

// Entry is a single key/value pair of a [Map].
type Entry struct {
	Key   *Scalar
	Value Node
}

// Map is an insertion-ordered mapping from scalar keys to nodes.
//
// Keys are compared by their text only: two scalars with the same value are
// the same key, whatever their style or position.
type Map struct {
	Entries  []Entry
	Position Position

	index map[string]int // key text -> position in Entries
}

// NewMap returns an empty map node.
func NewMap(pos Position) *Map {
	return &Map{Position: pos}
}

func (*Map) Kind() Kind      { return MapKind }
func (m *Map) Pos() Position { return m.Position }
func (*Map) node()           {}

// ContainsKey reports whether the map has an entry whose key text is key.
func (m *Map) ContainsKey(key string) bool {
	if m.index == nil {
		// Maps assembled by hand through Entries have no index yet.
		for _, e := range m.Entries {
			if e.Key.Value == key {
				return true
			}
		}
		return false
	}
	_, ok := m.index[key]
	return ok
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (Node, bool) {
	if m.index == nil {
		for _, e := range m.Entries {
			if e.Key.Value == key {
				return e.Value, true
			}
		}
		return nil, false
	}
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.Entries[i].Value, true
}

// Insert appends a new entry. It returns false, leaving the map untouched,
// when an entry with the same key text already exists.
func (m *Map) Insert(key *Scalar, value Node) bool {
	if m.ContainsKey(key.Value) {
		return false
	}
	if m.index == nil {
		m.index = make(map[string]int, len(m.Entries)+1)
		for i, e := range m.Entries {
			m.index[e.Key.Value] = i
		}
	}
	m.index[key.Value] = len(m.Entries)
	m.Entries = append(m.Entries, Entry{Key: key, Value: value})
	return true
}

// Len returns the number of entries.
func (m *Map) Len() int { return len(m.Entries) }

// Keys returns the key texts in insertion order.
func (m *Map) Keys() []string {
	keys := make([]string, len(m.Entries))
	for i, e := range m.Entries {
		keys[i] = e.Key.Value
	}
	return keys
}
