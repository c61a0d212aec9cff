package enumcol

// Enumerated is the contract an enum key type must satisfy to be usable as a
// container key. It maps every variant onto a dense, zero-based position.
//
// The contract must be a total bijection: no two variants share a position,
// and every position in [0, Len()) is produced by exactly one variant.
// Containers size their backing arrays as exactly Len() slots and use
// Position() as an unchecked index, so a violated contract corrupts lookups.
//
// The zero value of K must be a valid variant (the one at position 0);
// constructors rely on it to discover Len() and Variants() before any key
// has been supplied by the caller.
//
// Implementations are generated with cmd/enumgen. When writing one by hand,
// follow the checklist: Position returns the zero-based declaration index,
// Len the total variant count, Variants all variants in declaration order,
// String the declared name. Verify with Validate in a unit test.
type Enumerated[K comparable] interface {
	comparable

	// Position returns the dense index of this variant, in [0, Len()).
	Position() int

	// Len returns the total number of variants of K.
	Len() int

	// Variants returns every variant of K in declaration order.
	Variants() []K

	// String returns the declared name of this variant.
	String() string
}

// Validate checks that K's Enumerated implementation is a total bijection
// onto [0, Len()): Len agrees with the variant count, every position is in
// range, and no position is produced twice. Surjectivity follows from
// injectivity once the counts match.
//
// Intended for unit tests of hand-written contract implementations; code
// generated by enumgen satisfies these properties by construction.
func Validate[K Enumerated[K]]() error {
	var zero K
	n := zero.Len()
	variants := zero.Variants()

	if len(variants) != n {
		return &ErrVariantCountMismatch{Len: n, Variants: len(variants)}
	}
	seen := make([]string, n)
	for _, k := range variants {
		p := k.Position()
		if p < 0 || p >= n {
			return &ErrPositionOutOfRange{Variant: k.String(), Position: p, Len: n}
		}
		if prev := seen[p]; prev != "" {
			return &ErrDuplicatePosition{Position: p, First: prev, Second: k.String()}
		}
		seen[p] = k.String()
	}
	return nil
}
