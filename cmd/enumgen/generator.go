package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/constant"
	"go/format"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Enum is one accepted key type: a named integer type whose constants form a
// contiguous run from zero, in declaration order.
type Enum struct {
	Name     string
	Variants []string // declared names; position == slice index
}

// Package holds the parse result for one directory.
type Package struct {
	Name  string
	Enums []Enum
}

// generatedSuffix marks files emitted by enumgen. They are excluded from
// parsing so regeneration is not poisoned by a stale previous output.
const generatedSuffix = "_enumerated.go"

// ParsePackage typechecks the Go package in dir and extracts the requested
// enum types. Any type that is not a closed, dense, data-free enumeration is
// rejected with a descriptive error.
func ParsePackage(dir string, typeNames []string) (*Package, error) {
	fset := token.NewFileSet()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") {
			continue
		}
		if strings.HasSuffix(name, "_test.go") || strings.HasSuffix(name, generatedSuffix) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) == 0 {
		return nil, fmt.Errorf("no Go files in %s", dir)
	}

	var files []*ast.File
	for _, name := range names {
		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, 0)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}

	conf := types.Config{
		Importer: importer.ForCompiler(fset, "source", nil),
	}
	info := &types.Info{
		Defs: make(map[*ast.Ident]types.Object),
	}
	pkg, err := conf.Check(dir, fset, files, info)
	if err != nil {
		return nil, fmt.Errorf("typecheck failed: %w", err)
	}

	out := &Package{Name: pkg.Name()}
	for _, typeName := range typeNames {
		enum, err := extractEnum(pkg, files, info, typeName)
		if err != nil {
			return nil, err
		}
		out.Enums = append(out.Enums, *enum)
	}
	return out, nil
}

func extractEnum(pkg *types.Package, files []*ast.File, info *types.Info, typeName string) (*Enum, error) {
	obj := pkg.Scope().Lookup(typeName)
	if obj == nil {
		return nil, fmt.Errorf("type %s not found in package %s", typeName, pkg.Name())
	}
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%s is not a type", typeName)
	}
	named, ok := tn.Type().(*types.Named)
	if !ok {
		return nil, fmt.Errorf("%s is not a named type", typeName)
	}
	basic, ok := named.Underlying().(*types.Basic)
	if !ok || basic.Info()&types.IsInteger == 0 {
		// Rules out structs, interfaces, strings: variants must be plain
		// names with no associated data.
		return nil, fmt.Errorf("%s is not a plain integer enumeration (underlying type %s)", typeName, named.Underlying())
	}

	type variant struct {
		name  string
		value int64
	}
	var variants []variant

	// Walk const declarations in file/declaration order so positions follow
	// the source, not the type checker's sorted scope.
	for _, file := range files {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.CONST {
				continue
			}
			for _, spec := range gd.Specs {
				vs, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}
				for _, ident := range vs.Names {
					if ident.Name == "_" {
						continue
					}
					c, ok := info.Defs[ident].(*types.Const)
					if !ok || !types.Identical(c.Type(), named.Obj().Type()) {
						continue
					}
					v, exact := constant.Int64Val(c.Val())
					if !exact {
						return nil, fmt.Errorf("variant %s of %s has a non-integer value %s", ident.Name, typeName, c.Val())
					}
					variants = append(variants, variant{name: ident.Name, value: v})
				}
			}
		}
	}

	if len(variants) == 0 {
		return nil, fmt.Errorf("enum %s has no variants", typeName)
	}

	enum := &Enum{Name: typeName}
	seen := make(map[int64]string, len(variants))
	for i, v := range variants {
		if prev, dup := seen[v.value]; dup {
			return nil, fmt.Errorf("variants %s and %s of %s share value %d", prev, v.name, typeName, v.value)
		}
		seen[v.value] = v.name
		if v.value != int64(i) {
			return nil, fmt.Errorf("variant %s of %s has value %d, want declaration index %d (values must be contiguous from zero in declaration order)", v.name, typeName, v.value, i)
		}
		enum.Variants = append(enum.Variants, v.name)
	}
	return enum, nil
}

// Generate renders the contract implementation for every enum in pkg as a
// single gofmt-formatted file.
func Generate(pkg *Package, typeArg string) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by enumgen -type %s; DO NOT EDIT.\n\n", typeArg)
	fmt.Fprintf(&buf, "package %s\n\n", pkg.Name)
	fmt.Fprintf(&buf, "import \"strconv\"\n")

	for _, enum := range pkg.Enums {
		writeEnum(&buf, enum)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		// Should not happen; the template is fully controlled.
		return nil, fmt.Errorf("formatting generated code failed: %w", err)
	}
	return src, nil
}

func writeEnum(buf *bytes.Buffer, enum Enum) {
	fmt.Fprintf(buf, "\n// Position returns the dense index of k, in [0, Len()).\n")
	fmt.Fprintf(buf, "func (k %s) Position() int { return int(k) }\n\n", enum.Name)

	fmt.Fprintf(buf, "// Len returns the total number of %s variants.\n", enum.Name)
	fmt.Fprintf(buf, "func (%s) Len() int { return %d }\n\n", enum.Name, len(enum.Variants))

	fmt.Fprintf(buf, "// Variants returns every %s variant in declaration order.\n", enum.Name)
	fmt.Fprintf(buf, "func (%s) Variants() []%s {\n", enum.Name, enum.Name)
	fmt.Fprintf(buf, "\treturn []%s{%s}\n", enum.Name, strings.Join(enum.Variants, ", "))
	fmt.Fprintf(buf, "}\n\n")

	quoted := make([]string, len(enum.Variants))
	for i, v := range enum.Variants {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	fmt.Fprintf(buf, "var _%sNames = [...]string{%s}\n\n", enum.Name, strings.Join(quoted, ", "))

	fmt.Fprintf(buf, "// String returns the declared name of k.\n")
	fmt.Fprintf(buf, "func (k %s) String() string {\n", enum.Name)
	fmt.Fprintf(buf, "\tif i := int(k); i >= 0 && i < len(_%sNames) {\n", enum.Name)
	fmt.Fprintf(buf, "\t\treturn _%sNames[i]\n", enum.Name)
	fmt.Fprintf(buf, "\t}\n")
	fmt.Fprintf(buf, "\treturn %q + strconv.Itoa(int(k)) + \")\"\n", enum.Name+"(")
	fmt.Fprintf(buf, "}\n")
}
