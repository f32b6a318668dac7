package value

import (
	"strings"

	"github.com/go-drift/keel/pkg/stream"
)

// Map is a string-keyed collection of Values that preserves insertion
// order. The zero Map is empty and ready to use.
type Map struct {
	keys  []string
	index map[string]int
	vals  []Value
}

// NewMap returns an empty ordered map.
func NewMap() *Map {
	return &Map{}
}

// Set binds key to v. A new key appends to the iteration order; an
// existing key keeps its position and replaces its value.
func (m *Map) Set(key string, v Value) {
	if i, ok := m.index[key]; ok {
		m.vals[i] = v
		return
	}
	if m.index == nil {
		m.index = make(map[string]int)
	}
	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, v)
}

// Get returns the value bound to key.
func (m *Map) Get(key string) (Value, bool) {
	i, ok := m.index[key]
	if !ok {
		return Value{}, false
	}
	return m.vals[i], true
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	return append([]string(nil), m.keys...)
}

// At returns the i-th entry in insertion order.
func (m *Map) At(i int) (string, Value) {
	return m.keys[i], m.vals[i]
}

// String renders the map as "{k1: v1, k2: v2}" in insertion order.
func (m *Map) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, k := range m.keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(m.vals[i].String())
	}
	sb.WriteString("}")
	return sb.String()
}

// WriteMap writes the map's entries in insertion order, dispatching the
// values through the registry's codecs.
func (r *Registry) WriteMap(w *stream.Writer, m *Map) error {
	w.WriteUint32(uint32(m.Len()))
	for i := 0; i < m.Len(); i++ {
		k, v := m.At(i)
		w.WriteString(k)
		if err := r.WriteValue(w, v); err != nil {
			return err
		}
	}
	return w.Err()
}

// ReadMap reads a map written with WriteMap. Entry order is preserved.
func (r *Registry) ReadMap(rd *stream.Reader) (*Map, error) {
	n := rd.ReadUint32()
	if err := rd.Err(); err != nil {
		return nil, err
	}
	m := NewMap()
	for i := uint32(0); i < n; i++ {
		k := rd.ReadString()
		v, err := r.ReadValue(rd)
		if err != nil {
			return nil, err
		}
		m.Set(k, v)
	}
	if err := rd.Err(); err != nil {
		return nil, err
	}
	return m, nil
}
