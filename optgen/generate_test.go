package optgen

import (
	"bytes"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/optlike/optlike/errors"
)

// fullSpecFile exercises every feature: all derives and a default variant.
func fullSpecFile() *SpecFile {
	return &SpecFile{
		Package: "lookup",
		Doc:     "Package lookup wraps lookup results.",
		Output:  "lookup.go",
		Types: []Spec{
			{
				Name:      "Lookup",
				Present:   "Found",
				Absent:    "Absent",
				IsPresent: "IsFound",
				IsAbsent:  "IsAbsent",
				Derive:    []string{DeriveEq, DeriveOrd, DeriveClone, DeriveString},
				Default:   DefaultAbsent,
			},
		},
	}
}

func generate(t *testing.T, file *SpecFile) string {
	t.Helper()
	src, err := Generate(file)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return string(src)
}

func TestGenerate_OutputParses(t *testing.T) {
	src := generate(t, fullSpecFile())

	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, "lookup.go", src, parser.ParseComments); err != nil {
		t.Fatalf("generated source does not parse: %v\n%s", err, src)
	}
}

func TestGenerate_Header(t *testing.T) {
	src := generate(t, fullSpecFile())

	if !strings.HasPrefix(src, Header+"\n") {
		t.Errorf("generated source does not start with the DO NOT EDIT header:\n%s", src)
	}
	if !strings.Contains(src, "// Package lookup wraps lookup results.\npackage lookup\n") {
		t.Error("generated source is missing the package doc comment")
	}
}

func TestGenerate_Declarations(t *testing.T) {
	src := generate(t, fullSpecFile())

	for _, want := range []string{
		"type Lookup[T cmp.Ordered] struct {",
		"func Found[T cmp.Ordered](value T) Lookup[T] {",
		"func Absent[T cmp.Ordered]() Lookup[T] {",
		"func DefaultLookup[T cmp.Ordered]() Lookup[T] {",
		"func (o Lookup[T]) IsFound() bool {",
		"func (o Lookup[T]) IsAbsent() bool {",
		"func (o Lookup[T]) Option() option.Option[T] {",
		"func LookupFromOption[T cmp.Ordered](src option.Option[T]) Lookup[T] {",
		"func MapLookup[T, U cmp.Ordered](o Lookup[T], f func(T) U) Lookup[U] {",
		"func (o Lookup[T]) Unwrap() T {",
		"func (o Lookup[T]) Expect(msg string) T {",
		"func (o Lookup[T]) UnwrapOrDefault() T {",
		"func (o Lookup[T]) UnwrapOrElse(f func() T) T {",
		"func (o Lookup[T]) Equal(other Lookup[T]) bool {",
		"func (o Lookup[T]) Compare(other Lookup[T]) int {",
		"func (o Lookup[T]) Less(other Lookup[T]) bool {",
		"func (o Lookup[T]) Clone() Lookup[T] {",
		"func (o Lookup[T]) String() string {",
		`panic("Lookup: Unwrap of Absent value")`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source is missing %q", want)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	first, err := Generate(fullSpecFile())
	if err != nil {
		t.Fatal(err)
	}
	second, err := Generate(fullSpecFile())
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first, second) {
		t.Error("Generate() output differs across runs for the same spec")
	}
}

func TestGenerate_NoDerivesNoExtras(t *testing.T) {
	file := validSpecFile()
	src := generate(t, file)

	for _, forbidden := range []string{
		") Equal(",
		") Compare(",
		") Less(",
		") Clone(",
		") String(",
		"func DefaultCached",
		`"cmp"`,
		`"fmt"`,
	} {
		if strings.Contains(src, forbidden) {
			t.Errorf("generated source without derives contains %q", forbidden)
		}
	}

	if !strings.Contains(src, "type Cached[T any] struct {") {
		t.Error("underived type should be constrained to any")
	}
}

func TestGenerate_EqConstrainsToComparable(t *testing.T) {
	file := validSpecFile()
	file.Types[0].Derive = []string{DeriveEq}
	src := generate(t, file)

	if !strings.Contains(src, "type Cached[T comparable] struct {") {
		t.Error("eq derive should constrain the payload to comparable")
	}
	if !strings.Contains(src, "func (o Cached[T]) Equal(other Cached[T]) bool {") {
		t.Error("eq derive should emit an Equal method")
	}
}

func TestGenerate_DefaultPresent(t *testing.T) {
	file := validSpecFile()
	file.Types[0].Default = DefaultPresent
	src := generate(t, file)

	if !strings.Contains(src, "// DefaultCached returns the default Cached value: Hit of T's zero value.") {
		t.Error("present default should document the present variant")
	}
	if !strings.Contains(src, "return Hit(zero)") {
		t.Error("present default should construct the present variant of the zero value")
	}
}

func TestGenerate_CustomRuntime(t *testing.T) {
	file := validSpecFile()
	file.Runtime = "example.com/internal/maybe"
	src := generate(t, file)

	if !strings.Contains(src, `"example.com/internal/maybe"`) {
		t.Error("custom runtime import path not emitted")
	}
	if !strings.Contains(src, "maybe.Option[T]") {
		t.Error("conversions should reference the custom runtime package name")
	}
}

func TestGenerate_MultipleTypes(t *testing.T) {
	file := validSpecFile()
	file.Types = append(file.Types, Spec{
		Name:      "Session",
		Present:   "Active",
		Absent:    "Expired",
		IsPresent: "IsActive",
		IsAbsent:  "IsExpired",
	})
	src := generate(t, file)

	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, file.Output, src, parser.ParseComments); err != nil {
		t.Fatalf("generated source does not parse: %v", err)
	}
	if !strings.Contains(src, "type Cached[T any] struct {") ||
		!strings.Contains(src, "type Session[T any] struct {") {
		t.Error("both types should be generated into one file")
	}
}

func TestGenerate_InvalidSpecFails(t *testing.T) {
	file := validSpecFile()
	file.Types[0].Present = "Unwrap"

	if _, err := Generate(file); !errors.Is(err, errors.ErrInvalidSpec) {
		t.Errorf("Generate() = %v, want ErrInvalidSpec", err)
	}
}

func TestGenerate_TypeDocOverride(t *testing.T) {
	file := validSpecFile()
	file.Types[0].Doc = "Cached is a cache lookup outcome."
	src := generate(t, file)

	if !strings.Contains(src, "// Cached is a cache lookup outcome.\ntype Cached[T any] struct {") {
		t.Error("type doc override not emitted")
	}
}
