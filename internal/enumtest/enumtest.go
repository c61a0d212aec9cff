// Package enumtest provides enum key types shared by tests across the
// module.
package enumtest

//go:generate go run github.com/SpecificProtagonist/enum-collections/cmd/enumgen -type Letter,Weekday

// Letter is a minimal three-variant enum.
type Letter int

const (
	LetterA Letter = iota
	LetterB
	LetterC
)

// Weekday exercises a slightly larger key space.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)
