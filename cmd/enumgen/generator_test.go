package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writePackage(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, src := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644))
	}
	return dir
}

func TestParseAndGenerate(t *testing.T) {
	dir := writePackage(t, map[string]string{
		"color.go": `package paint

type Color int

const (
	Red Color = iota
	Green
	Blue
)
`,
	})

	pkg, err := ParsePackage(dir, []string{"Color"})
	require.NoError(t, err)
	assert.Equal(t, "paint", pkg.Name)
	require.Len(t, pkg.Enums, 1)
	assert.Equal(t, []string{"Red", "Green", "Blue"}, pkg.Enums[0].Variants)

	src, err := Generate(pkg, "Color")
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "// Code generated by enumgen -type Color; DO NOT EDIT.")
	assert.Contains(t, out, "package paint")
	assert.Contains(t, out, "func (k Color) Position() int { return int(k) }")
	assert.Contains(t, out, "func (Color) Len() int { return 3 }")
	assert.Contains(t, out, "return []Color{Red, Green, Blue}")
	assert.Contains(t, out, `[...]string{"Red", "Green", "Blue"}`)
	assert.Contains(t, out, "func (k Color) String() string")
}

func TestParseMultipleTypes(t *testing.T) {
	dir := writePackage(t, map[string]string{
		"kinds.go": `package kinds

type Size int

const (
	Small Size = iota
	Large
)

type Shape int

const (
	Circle Shape = iota
	Square
	Triangle
)
`,
	})

	pkg, err := ParsePackage(dir, []string{"Size", "Shape"})
	require.NoError(t, err)
	require.Len(t, pkg.Enums, 2)
	assert.Equal(t, []string{"Small", "Large"}, pkg.Enums[0].Variants)
	assert.Equal(t, []string{"Circle", "Square", "Triangle"}, pkg.Enums[1].Variants)
}

func TestParseSkipsPreviousOutput(t *testing.T) {
	// A stale generated file referencing the old variant set must not poison
	// regeneration.
	dir := writePackage(t, map[string]string{
		"color.go": `package paint

type Color int

const (
	Red Color = iota
	Green
)
`,
		"paint_enumerated.go": `package paint

func (Color) Len() int { return 99 }
`,
	})

	pkg, err := ParsePackage(dir, []string{"Color"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Red", "Green"}, pkg.Enums[0].Variants)
}

func TestRejectTypeNotFound(t *testing.T) {
	dir := writePackage(t, map[string]string{
		"a.go": "package a\n\ntype Other int\n",
	})

	_, err := ParsePackage(dir, []string{"Missing"})
	require.ErrorContains(t, err, "type Missing not found")
}

func TestRejectStructType(t *testing.T) {
	dir := writePackage(t, map[string]string{
		"a.go": `package a

type Payload struct {
	Field int
}
`,
	})

	_, err := ParsePackage(dir, []string{"Payload"})
	require.ErrorContains(t, err, "not a plain integer enumeration")
}

func TestRejectStringType(t *testing.T) {
	dir := writePackage(t, map[string]string{
		"a.go": `package a

type Name string

const First Name = "first"
`,
	})

	_, err := ParsePackage(dir, []string{"Name"})
	require.ErrorContains(t, err, "not a plain integer enumeration")
}

func TestRejectNoVariants(t *testing.T) {
	dir := writePackage(t, map[string]string{
		"a.go": "package a\n\ntype Empty int\n",
	})

	_, err := ParsePackage(dir, []string{"Empty"})
	require.ErrorContains(t, err, "has no variants")
}

func TestRejectGap(t *testing.T) {
	dir := writePackage(t, map[string]string{
		"a.go": `package a

type Flag int

const (
	On  Flag = 0
	Off Flag = 2
)
`,
	})

	_, err := ParsePackage(dir, []string{"Flag"})
	require.ErrorContains(t, err, "want declaration index 1")
}

func TestRejectDuplicate(t *testing.T) {
	dir := writePackage(t, map[string]string{
		"a.go": `package a

type Flag int

const (
	On    Flag = 0
	Off   Flag = 1
	Alias Flag = 1
)
`,
	})

	_, err := ParsePackage(dir, []string{"Flag"})
	require.ErrorContains(t, err, "share value 1")
}

func TestRejectNonZeroStart(t *testing.T) {
	dir := writePackage(t, map[string]string{
		"a.go": `package a

type Level int

const (
	Low Level = iota + 1
	High
)
`,
	})

	_, err := ParsePackage(dir, []string{"Level"})
	require.ErrorContains(t, err, "want declaration index 0")
}

func TestRunWritesDefaultOutput(t *testing.T) {
	dir := writePackage(t, map[string]string{
		"color.go": `package paint

type Color int

const (
	Red Color = iota
	Green
)
`,
	})

	logger := newTestLogger(t)
	require.NoError(t, run(logger, dir, []string{"Color"}, "Color", ""))

	out, err := os.ReadFile(filepath.Join(dir, "paint_enumerated.go"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "func (Color) Len() int { return 2 }")
}
