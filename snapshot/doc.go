// Package snapshot serializes enum-keyed containers to a self-describing
// binary format.
//
// Each snapshot starts with a plain header recording magic, format version,
// container kind, compression and codec name, followed by the (optionally
// compressed) body. Because the header names the codec, files written with
// one codec configuration remain readable after defaults change.
//
// The body of a Map snapshot stores the present positions as a serialized
// roaring bitmap followed by the present values; a Table snapshot stores all
// slot values. Values are individually length-framed and encoded with the
// configured codec.
//
// Bodies can be compressed with zstd (github.com/klauspost/compress) or lz4
// (github.com/pierrec/lz4); the choice is recorded in the header.
package snapshot
