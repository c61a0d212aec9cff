package enumcol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SpecificProtagonist/enum-collections/internal/enumtest"
)

func TestMapJSONRoundTrip(t *testing.T) {
	m := NewMap[enumtest.Letter, int]()
	m.Insert(enumtest.LetterC, 3)
	m.Insert(enumtest.LetterA, 1)

	// 1. Present slots only, in declaration order
	data, err := m.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"LetterA":1,"LetterC":3}`, string(data))

	// 2. Round trip
	got := NewMap[enumtest.Letter, int]()
	got.Insert(enumtest.LetterB, 99) // must be cleared by unmarshal
	require.NoError(t, got.UnmarshalJSON(data))
	assert.True(t, MapEqual(m, got))
}

func TestMapJSONEmpty(t *testing.T) {
	m := NewMap[enumtest.Letter, int]()
	data, err := m.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))

	got := NewMap[enumtest.Letter, int]()
	require.NoError(t, got.UnmarshalJSON(data))
	assert.Equal(t, 0, got.Len())
}

func TestMapJSONUnknownVariant(t *testing.T) {
	m := NewMap[enumtest.Letter, int]()
	err := m.UnmarshalJSON([]byte(`{"LetterZ":1}`))
	require.Error(t, err)

	var unk *ErrUnknownVariant
	require.ErrorAs(t, err, &unk)
	assert.Equal(t, "LetterZ", unk.Name)
}

func TestTableJSONRoundTrip(t *testing.T) {
	tab := NewTable[enumtest.Letter, string](WithDefault(func() string {
		return "n/a"
	}))
	tab.Insert(enumtest.LetterB, "hello")

	// 1. All slots, in declaration order
	data, err := tab.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"LetterA":"n/a","LetterB":"hello","LetterC":"n/a"}`, string(data))

	// 2. Round trip; missing keys fall back to the default
	got := NewTable[enumtest.Letter, string](WithDefault(func() string {
		return "n/a"
	}))
	require.NoError(t, got.UnmarshalJSON([]byte(`{"LetterB":"hello"}`)))
	assert.True(t, TableEqual(tab, got))
}

func TestJSONZeroValueField(t *testing.T) {
	// json.Unmarshal into struct fields hands UnmarshalJSON zero-value
	// containers that never went through a constructor.
	type doc struct {
		M Map[enumtest.Letter, int]      `json:"m"`
		T Table[enumtest.Letter, string] `json:"t"`
	}

	var d doc
	require.NoError(t, d.M.UnmarshalJSON([]byte(`{"LetterA":1}`)))
	require.NoError(t, d.T.UnmarshalJSON([]byte(`{"LetterB":"x"}`)))

	v, ok := d.M.Get(enumtest.LetterA)
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, "x", d.T.Get(enumtest.LetterB))
	assert.Equal(t, "", d.T.Get(enumtest.LetterA))
}

func TestTableJSONStructValues(t *testing.T) {
	type point struct {
		X int `json:"x"`
		Y int `json:"y"`
	}

	tab := NewTable[enumtest.Letter, point]()
	tab.Insert(enumtest.LetterA, point{X: 1, Y: 2})

	data, err := tab.MarshalJSON()
	require.NoError(t, err)

	got := NewTable[enumtest.Letter, point]()
	require.NoError(t, got.UnmarshalJSON(data))
	assert.True(t, TableEqual(tab, got))
}
