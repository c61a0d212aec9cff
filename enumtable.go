package enumcol

import "iter"

// TableOptions configures Table construction.
type TableOptions[V any] struct {
	// Default produces the value every slot is initialized with and the
	// value Reset restores. If nil, the zero value of V is used.
	Default func() V
}

// WithDefault sets a custom default value producer for a Table.
//
//	t := enumcol.NewTable[Letter, string](enumcol.WithDefault(func() string {
//		return "n/a"
//	}))
func WithDefault[V any](fn func() V) func(*TableOptions[V]) {
	return func(o *TableOptions[V]) {
		o.Default = fn
	}
}

// Table is a dense enum-keyed container: a fixed-length array of N slots, one
// per variant of K, every slot always holding a value.
//
// All slots are populated with the default value at construction, so Get is
// total and never reports absence. The backing array is allocated once,
// rightsized for exactly N values, and never resized; the same single
// allocation backs the table for its whole lifetime.
type Table[K Enumerated[K], V any] struct {
	values    []V
	variants  []K
	defaultFn func() V
}

// NewTable creates a Table with every slot initialized to the default value
// of V (its zero value unless WithDefault is given).
func NewTable[K Enumerated[K], V any](optFns ...func(*TableOptions[V])) *Table[K, V] {
	var opts TableOptions[V]
	for _, fn := range optFns {
		fn(&opts)
	}

	var zero K
	t := &Table[K, V]{
		values:    make([]V, zero.Len()),
		variants:  zero.Variants(),
		defaultFn: opts.Default,
	}
	if t.defaultFn != nil {
		for i := range t.values {
			t.values[i] = t.defaultFn()
		}
	}
	return t
}

// init backfills the backing array of a zero-value Table. Normal construction
// goes through NewTable; json.Unmarshal into a struct field hands
// UnmarshalJSON a zero value instead.
func (t *Table[K, V]) init() {
	if t.values != nil {
		return
	}
	var zero K
	t.values = make([]V, zero.Len())
	t.variants = zero.Variants()
}

func (t *Table[K, V]) defaultValue() V {
	if t.defaultFn != nil {
		return t.defaultFn()
	}
	var zero V
	return zero
}

// Get returns the value stored under key. It always succeeds because every
// slot is populated for the entire lifetime of the table.
func (t *Table[K, V]) Get(key K) V {
	return t.values[key.Position()]
}

// At returns a pointer to the slot for key, for reading or mutating the
// value in place. The pointer stays valid for the lifetime of the table.
func (t *Table[K, V]) At(key K) *V {
	return &t.values[key.Position()]
}

// Insert stores value under key, overwriting the value currently held there.
func (t *Table[K, V]) Insert(key K, value V) {
	t.values[key.Position()] = value
}

// Reset restores the slot for key to a freshly produced default value.
func (t *Table[K, V]) Reset(key K) {
	t.values[key.Position()] = t.defaultValue()
}

// ResetAll restores every slot to a freshly produced default value,
// matching the state of a new table.
func (t *Table[K, V]) ResetAll() {
	for i := range t.values {
		t.values[i] = t.defaultValue()
	}
}

// Fill stores the same value in every slot.
func (t *Table[K, V]) Fill(value V) {
	for i := range t.values {
		t.values[i] = value
	}
}

// Len returns the number of slots, i.e. the variant count of K.
func (t *Table[K, V]) Len() int {
	return len(t.values)
}

// Clone returns a deep copy of the table structure. Values are copied by
// assignment; if V holds pointers, both tables share the pointed-to data.
func (t *Table[K, V]) Clone() *Table[K, V] {
	c := &Table[K, V]{
		values:    make([]V, len(t.values)),
		variants:  t.variants,
		defaultFn: t.defaultFn,
	}
	copy(c.values, t.values)
	return c
}

// All returns an iterator over all key/value pairs in declaration order.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range t.variants {
			if !yield(k, t.values[k.Position()]) {
				return
			}
		}
	}
}
