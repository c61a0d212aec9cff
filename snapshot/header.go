package snapshot

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/SpecificProtagonist/enum-collections/codec"
)

// Snapshot layout:
//
//	[Magic: 4 bytes "ENCS"] [Version: 1 byte] [Kind: 1 byte]
//	[Compression: 1 byte] [CodecName: uvarint len + bytes]
//	[SlotCount: uvarint] [Body]
//
// The header is always plain; only the body is compressed.

var magic = [4]byte{'E', 'N', 'C', 'S'}

const formatVersion uint8 = 1

// maxFrameSize bounds a single value frame. Frames are per-slot codec
// payloads, so anything near this limit indicates corruption.
const maxFrameSize = 1 << 30

// maxCodecNameLen bounds the codec name recorded in the header.
const maxCodecNameLen = 255

// Kind identifies the container kind a snapshot was written from.
type Kind uint8

const (
	// KindMap marks a sparse Map snapshot.
	KindMap Kind = 1
	// KindTable marks a dense Table snapshot.
	KindTable Kind = 2
)

func (k Kind) String() string {
	switch k {
	case KindMap:
		return "map"
	case KindTable:
		return "table"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Compression selects the body compression of a snapshot.
type Compression uint8

const (
	// CompressionNone stores the body uncompressed.
	CompressionNone Compression = 0
	// CompressionZstd compresses the body with zstd.
	CompressionZstd Compression = 1
	// CompressionLZ4 compresses the body with lz4.
	CompressionLZ4 Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

// Options configures snapshot writing. Loading never needs options: the
// header is self-describing.
type Options struct {
	// Codec encodes slot values. Defaults to codec.Default.
	Codec codec.Codec

	// Compression selects the body compression. Defaults to
	// CompressionNone.
	Compression Compression
}

// WithCodec sets the value codec used when writing a snapshot.
func WithCodec(c codec.Codec) func(*Options) {
	return func(o *Options) {
		o.Codec = c
	}
}

// WithCompression sets the body compression used when writing a snapshot.
func WithCompression(c Compression) func(*Options) {
	return func(o *Options) {
		o.Compression = c
	}
}

func applyOptions(optFns []func(*Options)) Options {
	opts := Options{
		Codec:       codec.Default,
		Compression: CompressionNone,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Codec == nil {
		opts.Codec = codec.Default
	}
	return opts
}

type headerInfo struct {
	Kind        Kind
	Compression Compression
	CodecName   string
	SlotCount   int
}

func writeHeader(w *bufio.Writer, info headerInfo) error {
	if _, err := w.Write(magic[:]); err != nil {
		return fmt.Errorf("failed to write snapshot magic: %w", err)
	}
	if err := w.WriteByte(formatVersion); err != nil {
		return err
	}
	if err := w.WriteByte(byte(info.Kind)); err != nil {
		return err
	}
	if err := w.WriteByte(byte(info.Compression)); err != nil {
		return err
	}
	if err := writeUvarint(w, uint64(len(info.CodecName))); err != nil {
		return err
	}
	if _, err := w.WriteString(info.CodecName); err != nil {
		return err
	}
	return writeUvarint(w, uint64(info.SlotCount))
}

func readHeader(r *bufio.Reader) (headerInfo, error) {
	var info headerInfo

	var m [4]byte
	if _, err := io.ReadFull(r, m[:]); err != nil {
		return info, fmt.Errorf("failed to read snapshot magic: %w", err)
	}
	if m != magic {
		return info, ErrInvalidMagic
	}

	version, err := r.ReadByte()
	if err != nil {
		return info, err
	}
	if version != formatVersion {
		return info, &ErrUnsupportedVersion{Version: version}
	}

	kind, err := r.ReadByte()
	if err != nil {
		return info, err
	}
	info.Kind = Kind(kind)

	comp, err := r.ReadByte()
	if err != nil {
		return info, err
	}
	info.Compression = Compression(comp)

	nameLen, err := binary.ReadUvarint(r)
	if err != nil {
		return info, err
	}
	if nameLen > maxCodecNameLen {
		return info, ErrInvalidMagic
	}
	name := make([]byte, nameLen)
	if _, err := io.ReadFull(r, name); err != nil {
		return info, err
	}
	info.CodecName = string(name)

	count, err := binary.ReadUvarint(r)
	if err != nil {
		return info, err
	}
	info.SlotCount = int(count)

	return info, nil
}

func writeUvarint(w io.Writer, v uint64) error {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], v)
	_, err := w.Write(buf[:n])
	return err
}

// writeFrame writes a length-prefixed byte frame.
func writeFrame(w io.Writer, data []byte) error {
	if err := writeUvarint(w, uint64(len(data))); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

// readFrame reads a length-prefixed byte frame.
func readFrame(r *bufio.Reader) ([]byte, error) {
	size, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, err
	}
	if size > maxFrameSize {
		return nil, ErrFrameTooLarge
	}
	data := make([]byte, size)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, err
	}
	return data, nil
}
