// Package enumcol provides constant-time, array-backed collections keyed by
// closed Go enums.
//
// Instead of hashing, keys are mapped onto dense array positions through the
// Enumerated contract: every key type reports a zero-based position for each
// of its variants and the total variant count. Lookups, inserts and removals
// are plain index operations on a rightsized backing array.
//
// Two container kinds are provided:
//
//   - Map: sparse semantics. Every slot independently tracks whether a value
//     is present. Freshly created maps are empty.
//   - Table: dense semantics. Every slot always holds a value, initialized
//     from a default (the zero value of V unless overridden with WithDefault).
//
// # Quick Start
//
// Declare an enum and generate its contract with enumgen:
//
//	//go:generate go run github.com/SpecificProtagonist/enum-collections/cmd/enumgen -type Letter
//	type Letter int
//
//	const (
//		LetterA Letter = iota
//		LetterB
//	)
//
// Then use it as a key:
//
//	m := enumcol.NewMap[Letter, int]()
//	m.Insert(LetterA, 42)
//	v, ok := m.Get(LetterA) // 42, true
//	m.Remove(LetterA)
//
//	t := enumcol.NewTable[Letter, int]()
//	t.Get(LetterB) // 0, the default
//	t.Insert(LetterA, 42)
//	t.Reset(LetterA)
//
// # Persistence
//
// The snapshot subpackage serializes containers to a self-describing binary
// format with optional zstd or lz4 compression. Both container kinds also
// implement json.Marshaler/json.Unmarshaler keyed by variant name.
//
// # Concurrency
//
// Containers are plain value types without internal synchronization. They may
// be moved freely between goroutines, but concurrent mutation requires
// caller-side locking.
package enumcol
