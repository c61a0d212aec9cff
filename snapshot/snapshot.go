package snapshot

import (
	"bufio"
	"fmt"
	"io"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	enumcol "github.com/SpecificProtagonist/enum-collections"
	"github.com/SpecificProtagonist/enum-collections/codec"
)

// SaveMap writes a snapshot of m to w.
//
// The body records the present positions as a roaring bitmap, followed by
// the present values in ascending position order.
func SaveMap[K enumcol.Enumerated[K], V any](w io.Writer, m *enumcol.Map[K, V], optFns ...func(*Options)) error {
	opts := applyOptions(optFns)

	bw := bufio.NewWriter(w)
	err := writeHeader(bw, headerInfo{
		Kind:        KindMap,
		Compression: opts.Compression,
		CodecName:   opts.Codec.Name(),
		SlotCount:   m.Cap(),
	})
	if err != nil {
		return err
	}

	body, closeBody, err := newBodyWriter(bw, opts.Compression)
	if err != nil {
		return err
	}

	rb := roaring.New()
	for k := range m.Keys() {
		rb.Add(uint32(k.Position())) //nolint:gosec // positions are small non-negative ints
	}
	bitmap, err := rb.MarshalBinary()
	if err != nil {
		return fmt.Errorf("failed to serialize present-set bitmap: %w", err)
	}
	if err := writeFrame(body, bitmap); err != nil {
		return err
	}

	for _, v := range m.All() {
		data, err := opts.Codec.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode value: %w", err)
		}
		if err := writeFrame(body, data); err != nil {
			return err
		}
	}

	if err := closeBody(); err != nil {
		return err
	}
	return bw.Flush()
}

// LoadMap reads a Map snapshot from r. The codec and compression are taken
// from the snapshot header; loading needs no options.
func LoadMap[K enumcol.Enumerated[K], V any](r io.Reader) (*enumcol.Map[K, V], error) {
	var zero K
	br := bufio.NewReader(r)

	info, c, err := readValidatedHeader(br, KindMap, zero.Len())
	if err != nil {
		return nil, err
	}

	body, closeBody, err := newBodyReader(br, info.Compression)
	if err != nil {
		return nil, err
	}
	defer closeBody()

	bitmap, err := readFrame(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read present-set bitmap: %w", err)
	}
	rb := roaring.New()
	if err := rb.UnmarshalBinary(bitmap); err != nil {
		return nil, fmt.Errorf("failed to parse present-set bitmap: %w", err)
	}

	m := enumcol.NewMap[K, V]()
	variants := zero.Variants()

	it := rb.Iterator()
	for it.HasNext() {
		pos := int(it.Next())
		if pos >= len(variants) {
			return nil, fmt.Errorf("snapshot: present position %d out of range [0, %d)", pos, len(variants))
		}
		data, err := readFrame(body)
		if err != nil {
			return nil, err
		}
		var v V
		if err := c.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("failed to decode value for %s: %w", variants[pos], err)
		}
		m.Insert(variants[pos], v)
	}
	return m, nil
}

// SaveTable writes a snapshot of t to w. The body records every slot value
// in declaration order.
func SaveTable[K enumcol.Enumerated[K], V any](w io.Writer, t *enumcol.Table[K, V], optFns ...func(*Options)) error {
	opts := applyOptions(optFns)

	bw := bufio.NewWriter(w)
	err := writeHeader(bw, headerInfo{
		Kind:        KindTable,
		Compression: opts.Compression,
		CodecName:   opts.Codec.Name(),
		SlotCount:   t.Len(),
	})
	if err != nil {
		return err
	}

	body, closeBody, err := newBodyWriter(bw, opts.Compression)
	if err != nil {
		return err
	}

	for _, v := range t.All() {
		data, err := opts.Codec.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode value: %w", err)
		}
		if err := writeFrame(body, data); err != nil {
			return err
		}
	}

	if err := closeBody(); err != nil {
		return err
	}
	return bw.Flush()
}

// LoadTable reads a Table snapshot from r. Table options (such as
// WithDefault) apply to the constructed table so Reset keeps working after a
// load.
func LoadTable[K enumcol.Enumerated[K], V any](r io.Reader, tableOptFns ...func(*enumcol.TableOptions[V])) (*enumcol.Table[K, V], error) {
	var zero K
	br := bufio.NewReader(r)

	info, c, err := readValidatedHeader(br, KindTable, zero.Len())
	if err != nil {
		return nil, err
	}

	body, closeBody, err := newBodyReader(br, info.Compression)
	if err != nil {
		return nil, err
	}
	defer closeBody()

	t := enumcol.NewTable[K, V](tableOptFns...)
	for _, k := range zero.Variants() {
		data, err := readFrame(body)
		if err != nil {
			return nil, err
		}
		var v V
		if err := c.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("failed to decode value for %s: %w", k, err)
		}
		t.Insert(k, v)
	}
	return t, nil
}

// readValidatedHeader reads the header and checks kind, slot count and codec
// against what the caller expects.
func readValidatedHeader(br *bufio.Reader, kind Kind, variants int) (headerInfo, codec.Codec, error) {
	info, err := readHeader(br)
	if err != nil {
		return info, nil, err
	}
	if info.Kind != kind {
		return info, nil, &ErrKindMismatch{Expected: kind, Actual: info.Kind}
	}
	if info.SlotCount != variants {
		return info, nil, &ErrLengthMismatch{Expected: variants, Actual: info.SlotCount}
	}
	c, ok := codec.ByName(info.CodecName)
	if !ok {
		return info, nil, &ErrUnknownCodec{Name: info.CodecName}
	}
	return info, c, nil
}

// newBodyWriter wraps w according to the compression setting. The returned
// close function finalizes the compressed stream; it does not close w.
func newBodyWriter(w io.Writer, comp Compression) (io.Writer, func() error, error) {
	switch comp {
	case CompressionNone:
		return w, func() error { return nil }, nil
	case CompressionZstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, nil, err
		}
		return zw, zw.Close, nil
	case CompressionLZ4:
		lw := lz4.NewWriter(w)
		return lw, lw.Close, nil
	default:
		return nil, nil, &ErrUnknownCompression{Code: uint8(comp)}
	}
}

// newBodyReader wraps r according to the compression recorded in the header.
func newBodyReader(r *bufio.Reader, comp Compression) (*bufio.Reader, func(), error) {
	switch comp {
	case CompressionNone:
		return r, func() {}, nil
	case CompressionZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return bufio.NewReader(zr), zr.Close, nil
	case CompressionLZ4:
		return bufio.NewReader(lz4.NewReader(r)), func() {}, nil
	default:
		return nil, nil, &ErrUnknownCompression{Code: uint8(comp)}
	}
}
