package snapshot

import (
	"errors"
	"fmt"
)

// ErrInvalidMagic indicates data that is not a container snapshot.
var ErrInvalidMagic = errors.New("snapshot: invalid magic")

// ErrFrameTooLarge indicates a value frame exceeding the sanity limit,
// usually a sign of a corrupt or truncated snapshot.
var ErrFrameTooLarge = errors.New("snapshot: value frame exceeds size limit")

// ErrUnsupportedVersion indicates a snapshot written by a newer format
// revision.
type ErrUnsupportedVersion struct {
	Version uint8
}

func (e *ErrUnsupportedVersion) Error() string {
	return fmt.Sprintf("snapshot: unsupported format version %d", e.Version)
}

// ErrUnknownCodec indicates a codec name recorded in the header that this
// build does not provide.
type ErrUnknownCodec struct {
	Name string
}

func (e *ErrUnknownCodec) Error() string {
	return fmt.Sprintf("snapshot: unknown codec %q", e.Name)
}

// ErrUnknownCompression indicates an unrecognized compression code in the
// header.
type ErrUnknownCompression struct {
	Code uint8
}

func (e *ErrUnknownCompression) Error() string {
	return fmt.Sprintf("snapshot: unknown compression code %d", e.Code)
}

// ErrKindMismatch indicates loading a snapshot of one container kind into
// the other.
type ErrKindMismatch struct {
	Expected Kind
	Actual   Kind
}

func (e *ErrKindMismatch) Error() string {
	return fmt.Sprintf("snapshot: kind mismatch: expected %s, got %s", e.Expected, e.Actual)
}

// ErrLengthMismatch indicates a snapshot whose slot count disagrees with the
// key type's variant count. Snapshots never resize containers; the recorded
// count must match exactly.
type ErrLengthMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("snapshot: slot count mismatch: key type has %d variants, snapshot has %d", e.Expected, e.Actual)
}
