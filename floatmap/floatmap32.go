package floatmap

import (
	"golang.org/x/exp/slices"

	"github.com/total-float/go-total-float/totalfloat"
)

type entry32[V any] struct {
	key totalfloat.TotalF32
	val V
}

// Map32 is the single precision analogue of Map, keyed by TotalF32.
type Map32[V any] struct {
	entries map[int32]*entry32[V]
}

// NewMap32 returns an empty map.
func NewMap32[V any]() *Map32[V] {
	return &Map32[V]{entries: make(map[int32]*entry32[V])}
}

// Len returns the number of distinct keys.
func (m *Map32[V]) Len() int {
	return len(m.entries)
}

// Get returns the value stored under k and whether it was present.
func (m *Map32[V]) Get(k totalfloat.TotalF32) (V, bool) {
	e, ok := m.entries[k.Key()]
	if !ok {
		var zero V
		return zero, false
	}
	return e.val, true
}

// Set stores v under k, replacing any previous value.
func (m *Map32[V]) Set(k totalfloat.TotalF32, v V) {
	m.entries[k.Key()] = &entry32[V]{key: k, val: v}
}

// Upsert returns a pointer to the value stored under k, inserting the
// zero value first if the key is absent.
func (m *Map32[V]) Upsert(k totalfloat.TotalF32) *V {
	e, ok := m.entries[k.Key()]
	if !ok {
		e = &entry32[V]{key: k}
		m.entries[k.Key()] = e
	}
	return &e.val
}

// Delete removes k and its value, if present.
func (m *Map32[V]) Delete(k totalfloat.TotalF32) {
	delete(m.entries, k.Key())
}

// Keys returns the keys in unspecified order.
func (m *Map32[V]) Keys() []totalfloat.TotalF32 {
	keys := make([]totalfloat.TotalF32, 0, len(m.entries))
	for _, e := range m.entries {
		keys = append(keys, e.key)
	}
	return keys
}

// SortedKeys returns the keys in ascending total order.
func (m *Map32[V]) SortedKeys() []totalfloat.TotalF32 {
	keys := m.Keys()
	slices.SortFunc(keys, totalfloat.TotalF32.Less)
	return keys
}
