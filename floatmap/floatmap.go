// Package floatmap provides hash maps keyed by total-order float
// wrappers. A plain Go map keyed on a float-carrying struct breaks
// down on NaN keys (NaN is never == itself), so the maps here index on
// the normalized integer key instead, which makes lookups follow the
// wrapper's equality exactly: a NaN key with a given payload is one
// key, and -0.0 and +0.0 are two.
package floatmap

import (
	"golang.org/x/exp/slices"

	"github.com/total-float/go-total-float/totalfloat"
)

type entry64[V any] struct {
	key totalfloat.TotalF64
	val V
}

// Map is a hash map from TotalF64 keys to values of type V. The zero
// Map is not ready for use; construct with NewMap.
type Map[V any] struct {
	entries map[int64]*entry64[V]
}

// NewMap returns an empty map.
func NewMap[V any]() *Map[V] {
	return &Map[V]{entries: make(map[int64]*entry64[V])}
}

// Len returns the number of distinct keys.
func (m *Map[V]) Len() int {
	return len(m.entries)
}

// Get returns the value stored under k and whether it was present.
func (m *Map[V]) Get(k totalfloat.TotalF64) (V, bool) {
	e, ok := m.entries[k.Key()]
	if !ok {
		var zero V
		return zero, false
	}
	return e.val, true
}

// Set stores v under k, replacing any previous value.
func (m *Map[V]) Set(k totalfloat.TotalF64, v V) {
	m.entries[k.Key()] = &entry64[V]{key: k, val: v}
}

// Upsert returns a pointer to the value stored under k, inserting the
// zero value first if the key is absent.
func (m *Map[V]) Upsert(k totalfloat.TotalF64) *V {
	e, ok := m.entries[k.Key()]
	if !ok {
		e = &entry64[V]{key: k}
		m.entries[k.Key()] = e
	}
	return &e.val
}

// Delete removes k and its value, if present.
func (m *Map[V]) Delete(k totalfloat.TotalF64) {
	delete(m.entries, k.Key())
}

// Keys returns the keys in unspecified order.
func (m *Map[V]) Keys() []totalfloat.TotalF64 {
	keys := make([]totalfloat.TotalF64, 0, len(m.entries))
	for _, e := range m.entries {
		keys = append(keys, e.key)
	}
	return keys
}

// SortedKeys returns the keys in ascending total order.
func (m *Map[V]) SortedKeys() []totalfloat.TotalF64 {
	keys := m.Keys()
	slices.SortFunc(keys, totalfloat.TotalF64.Less)
	return keys
}
