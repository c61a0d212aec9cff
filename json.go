package enumcol

import (
	"bytes"

	gojson "github.com/goccy/go-json"
)

// Map and Table serialize to a JSON object keyed by variant name, in
// declaration order. A Map only emits present slots; a Table emits all of
// them. Values are encoded with github.com/goccy/go-json, matching the
// library's default codec.

// MarshalJSON implements json.Marshaler.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	return marshalObject(m.variants, func(p int) (V, bool) {
		return m.values[p], m.present[p]
	})
}

// UnmarshalJSON implements json.Unmarshaler. The map is cleared first; keys
// absent from the JSON object stay absent. A key naming no variant of K
// yields an ErrUnknownVariant.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	m.init()

	raw := make(map[string]gojson.RawMessage)
	if err := gojson.Unmarshal(data, &raw); err != nil {
		return err
	}

	byName := make(map[string]K, len(m.variants))
	for _, k := range m.variants {
		byName[k.String()] = k
	}

	m.Clear()
	for name, msg := range raw {
		k, ok := byName[name]
		if !ok {
			return &ErrUnknownVariant{Name: name}
		}
		var v V
		if err := gojson.Unmarshal(msg, &v); err != nil {
			return err
		}
		m.Insert(k, v)
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t *Table[K, V]) MarshalJSON() ([]byte, error) {
	return marshalObject(t.variants, func(p int) (V, bool) {
		return t.values[p], true
	})
}

// UnmarshalJSON implements json.Unmarshaler. Every slot is reset to the
// default first; keys absent from the JSON object keep the default value.
// A key naming no variant of K yields an ErrUnknownVariant.
func (t *Table[K, V]) UnmarshalJSON(data []byte) error {
	t.init()

	raw := make(map[string]gojson.RawMessage)
	if err := gojson.Unmarshal(data, &raw); err != nil {
		return err
	}

	byName := make(map[string]K, len(t.variants))
	for _, k := range t.variants {
		byName[k.String()] = k
	}

	t.ResetAll()
	for name, msg := range raw {
		k, ok := byName[name]
		if !ok {
			return &ErrUnknownVariant{Name: name}
		}
		var v V
		if err := gojson.Unmarshal(msg, &v); err != nil {
			return err
		}
		t.Insert(k, v)
	}
	return nil
}

// marshalObject writes a JSON object over the given variants in declaration
// order, skipping slots whose lookup reports absence.
func marshalObject[K Enumerated[K], V any](variants []K, lookup func(p int) (V, bool)) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	first := true
	for _, k := range variants {
		v, ok := lookup(k.Position())
		if !ok {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false

		name, err := gojson.Marshal(k.String())
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')

		val, err := gojson.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
