package enumcol

import "fmt"

// ErrVariantCountMismatch indicates that Len() disagrees with the number of
// variants reported by Variants().
type ErrVariantCountMismatch struct {
	Len      int
	Variants int
}

func (e *ErrVariantCountMismatch) Error() string {
	return fmt.Sprintf("enumerated contract: Len() is %d but Variants() has %d entries", e.Len, e.Variants)
}

// ErrPositionOutOfRange indicates a variant whose position falls outside
// [0, Len()).
type ErrPositionOutOfRange struct {
	Variant  string
	Position int
	Len      int
}

func (e *ErrPositionOutOfRange) Error() string {
	return fmt.Sprintf("enumerated contract: variant %s has position %d, want [0, %d)", e.Variant, e.Position, e.Len)
}

// ErrDuplicatePosition indicates two variants sharing the same position.
type ErrDuplicatePosition struct {
	Position int
	First    string
	Second   string
}

func (e *ErrDuplicatePosition) Error() string {
	return fmt.Sprintf("enumerated contract: variants %s and %s share position %d", e.First, e.Second, e.Position)
}

// ErrUnknownVariant indicates a JSON key that names no variant of the key
// type.
type ErrUnknownVariant struct {
	Name string
}

func (e *ErrUnknownVariant) Error() string {
	return fmt.Sprintf("unknown variant name %q", e.Name)
}
