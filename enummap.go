package enumcol

import "iter"

// Map is a sparse enum-keyed container: a fixed-length array of N slots, one
// per variant of K, each independently tracking whether a value is present.
//
// A fresh Map is empty. It never resizes and performs no per-operation
// allocation; Get, Insert and Remove are single index operations translated
// through Position().
//
// Map is faster to construct than Table because no default value has to be
// produced for each slot.
type Map[K Enumerated[K], V any] struct {
	values   []V
	present  []bool
	variants []K
	count    int
}

// NewMap creates an empty Map with pre-allocated space for every variant of
// K. No further resizing ever takes place.
func NewMap[K Enumerated[K], V any]() *Map[K, V] {
	var zero K
	n := zero.Len()
	return &Map[K, V]{
		values:   make([]V, n),
		present:  make([]bool, n),
		variants: zero.Variants(),
	}
}

// init backfills the backing arrays of a zero-value Map. Normal construction
// goes through NewMap; json.Unmarshal into a struct field hands UnmarshalJSON
// a zero value instead.
func (m *Map[K, V]) init() {
	if m.values != nil {
		return
	}
	var zero K
	n := zero.Len()
	m.values = make([]V, n)
	m.present = make([]bool, n)
	m.variants = zero.Variants()
}

// Get returns the value stored under key and whether one is present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	p := key.Position()
	if !m.present[p] {
		var zero V
		return zero, false
	}
	return m.values[p], true
}

// Contains reports whether a value is present under key.
func (m *Map[K, V]) Contains(key K) bool {
	return m.present[key.Position()]
}

// Insert stores value under key, overwriting any existing value.
func (m *Map[K, V]) Insert(key K, value V) {
	p := key.Position()
	if !m.present[p] {
		m.present[p] = true
		m.count++
	}
	m.values[p] = value
}

// Remove clears the slot for key. Removing an absent key is a no-op.
// The slot is zeroed so the removed value becomes unreachable.
func (m *Map[K, V]) Remove(key K) {
	p := key.Position()
	if !m.present[p] {
		return
	}
	var zero V
	m.values[p] = zero
	m.present[p] = false
	m.count--
}

// Len returns the number of present values.
func (m *Map[K, V]) Len() int {
	return m.count
}

// Cap returns the number of slots, i.e. the variant count of K.
func (m *Map[K, V]) Cap() int {
	return len(m.values)
}

// Clear removes every value. The backing array is retained.
func (m *Map[K, V]) Clear() {
	clear(m.values)
	clear(m.present)
	m.count = 0
}

// Clone returns a deep copy of the map structure. Values are copied by
// assignment; if V holds pointers, both maps share the pointed-to data.
func (m *Map[K, V]) Clone() *Map[K, V] {
	c := &Map[K, V]{
		values:   make([]V, len(m.values)),
		present:  make([]bool, len(m.present)),
		variants: m.variants,
		count:    m.count,
	}
	copy(c.values, m.values)
	copy(c.present, m.present)
	return c
}

// All returns an iterator over present key/value pairs in declaration order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.variants {
			p := k.Position()
			if !m.present[p] {
				continue
			}
			if !yield(k, m.values[p]) {
				return
			}
		}
	}
}

// Keys returns an iterator over keys with a present value, in declaration
// order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, k := range m.variants {
			if !m.present[k.Position()] {
				continue
			}
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over present values in key declaration order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, k := range m.variants {
			p := k.Position()
			if !m.present[p] {
				continue
			}
			if !yield(m.values[p]) {
				return
			}
		}
	}
}
