package enumcol

// MapEqual reports whether two maps hold the same set of keys with equal
// values. Mirrors the shape of maps.Equal from the standard library; it is a
// package function because methods cannot require V to be comparable.
func MapEqual[K Enumerated[K], V comparable](a, b *Map[K, V]) bool {
	return MapEqualFunc(a, b, func(x, y V) bool { return x == y })
}

// MapEqualFunc is like MapEqual but compares values with eq.
func MapEqualFunc[K Enumerated[K], V1, V2 any](a *Map[K, V1], b *Map[K, V2], eq func(V1, V2) bool) bool {
	if a.count != b.count {
		return false
	}
	for i := range a.present {
		if a.present[i] != b.present[i] {
			return false
		}
		if a.present[i] && !eq(a.values[i], b.values[i]) {
			return false
		}
	}
	return true
}

// TableEqual reports whether two tables hold equal values in every slot.
func TableEqual[K Enumerated[K], V comparable](a, b *Table[K, V]) bool {
	return TableEqualFunc(a, b, func(x, y V) bool { return x == y })
}

// TableEqualFunc is like TableEqual but compares values with eq.
func TableEqualFunc[K Enumerated[K], V1, V2 any](a *Table[K, V1], b *Table[K, V2], eq func(V1, V2) bool) bool {
	for i := range a.values {
		if !eq(a.values[i], b.values[i]) {
			return false
		}
	}
	return true
}
