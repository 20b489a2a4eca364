package optgen

import (
	"fmt"
	"os"
	"path"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/optlike/optlike/errors"
)

// Header is the first line of every generated file.
const Header = "// Code generated by optlike. DO NOT EDIT."

// DefaultRuntime is the import path of the universal option runtime that
// generated conversions target.
const DefaultRuntime = "github.com/optlike/optlike/option"

// Generate renders the spec file as a single gofmt-clean Go source file.
// Output is deterministic: declaration order and comment text are fixed,
// so regeneration of an unchanged spec is always a no-op.
func Generate(file *SpecFile) ([]byte, error) {
	if err := file.Validate(); err != nil {
		return nil, err
	}
	if file.Runtime == "" {
		file.Runtime = DefaultRuntime
	}

	var b strings.Builder
	b.WriteString(Header + "\n")
	b.WriteString("\n")
	if file.Doc != "" {
		b.WriteString("// " + file.Doc + "\n")
	}
	fmt.Fprintf(&b, "package %s\n", file.Package)
	b.WriteString("\n")

	writeImports(&b, file)

	runtimePkg := path.Base(file.Runtime)
	for i := range file.Types {
		writeType(&b, &file.Types[i], runtimePkg)
	}

	// The emitter writes gofmt-formatted text already; running the result
	// through goimports guards against emitter drift and verifies the
	// output parses.
	formatted, err := imports.Process(file.Output, []byte(b.String()), nil)
	if err != nil {
		return nil, errors.Wrap(err, "generated source failed to format")
	}
	return formatted, nil
}

// GenerateToFile renders the spec file and writes it to outputPath.
func GenerateToFile(file *SpecFile, outputPath string) error {
	src, err := Generate(file)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, src, 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", outputPath)
	}
	return nil
}

// writeImports emits the import block: standard library first, then the
// option runtime.
func writeImports(b *strings.Builder, file *SpecFile) {
	var std []string
	for i := range file.Types {
		spec := &file.Types[i]
		if spec.hasDerive(DeriveOrd) {
			std = append(std, "cmp")
		}
		if spec.hasDerive(DeriveString) {
			std = append(std, "fmt")
		}
	}
	std = dedupeSorted(std)

	b.WriteString("import (\n")
	for _, im := range std {
		fmt.Fprintf(b, "\t%q\n", im)
	}
	if len(std) > 0 {
		b.WriteString("\n")
	}
	fmt.Fprintf(b, "\t%q\n", file.Runtime)
	b.WriteString(")\n")
}

// dedupeSorted sorts and deduplicates a small string slice.
func dedupeSorted(in []string) []string {
	seen := make(map[string]bool, len(in))
	var out []string
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	// cmp/fmt is already alphabetical for the two possible members; keep a
	// real sort anyway so new imports cannot break determinism.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// writeType emits every declaration for one generated type, in fixed
// order.
func writeType(b *strings.Builder, s *Spec, runtimePkg string) {
	c := s.constraint()

	// Type declaration
	b.WriteString("\n")
	if s.Doc != "" {
		fmt.Fprintf(b, "// %s\n", s.Doc)
	} else {
		fmt.Fprintf(b, "// %s is a two-variant option type: %s carries a value, %s carries nothing.\n", s.Name, s.Present, s.Absent)
		fmt.Fprintf(b, "// The zero value of %s is %s.\n", s.Name, s.Absent)
	}
	fmt.Fprintf(b, "type %s[T %s] struct {\n", s.Name, c)
	b.WriteString("\tvalue   T\n")
	b.WriteString("\tpresent bool\n")
	b.WriteString("}\n")

	// Constructors
	b.WriteString("\n")
	fmt.Fprintf(b, "// %s returns a %s holding value.\n", s.Present, s.Name)
	fmt.Fprintf(b, "func %s[T %s](value T) %s[T] {\n", s.Present, c, s.Name)
	fmt.Fprintf(b, "\treturn %s[T]{value: value, present: true}\n", s.Name)
	b.WriteString("}\n")

	b.WriteString("\n")
	fmt.Fprintf(b, "// %s returns a %s holding nothing.\n", s.Absent, s.Name)
	fmt.Fprintf(b, "func %s[T %s]() %s[T] {\n", s.Absent, c, s.Name)
	fmt.Fprintf(b, "\treturn %s[T]{}\n", s.Name)
	b.WriteString("}\n")

	switch s.Default {
	case DefaultAbsent:
		b.WriteString("\n")
		fmt.Fprintf(b, "// Default%s returns the default %s value: %s.\n", s.Name, s.Name, s.Absent)
		fmt.Fprintf(b, "func Default%s[T %s]() %s[T] {\n", s.Name, c, s.Name)
		fmt.Fprintf(b, "\treturn %s[T]()\n", s.Absent)
		b.WriteString("}\n")
	case DefaultPresent:
		b.WriteString("\n")
		fmt.Fprintf(b, "// Default%s returns the default %s value: %s of T's zero value.\n", s.Name, s.Name, s.Present)
		fmt.Fprintf(b, "func Default%s[T %s]() %s[T] {\n", s.Name, c, s.Name)
		b.WriteString("\tvar zero T\n")
		fmt.Fprintf(b, "\treturn %s(zero)\n", s.Present)
		b.WriteString("}\n")
	}

	// Predicates
	b.WriteString("\n")
	fmt.Fprintf(b, "// %s reports whether o is a %s.\n", s.IsPresent, s.Present)
	fmt.Fprintf(b, "func (o %s[T]) %s() bool {\n", s.Name, s.IsPresent)
	b.WriteString("\treturn o.present\n")
	b.WriteString("}\n")

	b.WriteString("\n")
	fmt.Fprintf(b, "// %s reports whether o is a %s.\n", s.IsAbsent, s.Absent)
	fmt.Fprintf(b, "func (o %s[T]) %s() bool {\n", s.Name, s.IsAbsent)
	b.WriteString("\treturn !o.present\n")
	b.WriteString("}\n")

	// Conversions
	b.WriteString("\n")
	b.WriteString("// Option converts o to the universal option type.\n")
	fmt.Fprintf(b, "// %s(v) maps to Some(v); %s maps to None.\n", s.Present, s.Absent)
	fmt.Fprintf(b, "func (o %s[T]) Option() %s.Option[T] {\n", s.Name, runtimePkg)
	b.WriteString("\tif o.present {\n")
	fmt.Fprintf(b, "\t\treturn %s.Some(o.value)\n", runtimePkg)
	b.WriteString("\t}\n")
	fmt.Fprintf(b, "\treturn %s.None[T]()\n", runtimePkg)
	b.WriteString("}\n")

	b.WriteString("\n")
	fmt.Fprintf(b, "// %sFromOption converts a universal option to a %s.\n", s.Name, s.Name)
	fmt.Fprintf(b, "// Some(v) maps to %s(v); None maps to %s.\n", s.Present, s.Absent)
	fmt.Fprintf(b, "func %sFromOption[T %s](src %s.Option[T]) %s[T] {\n", s.Name, c, runtimePkg, s.Name)
	b.WriteString("\tif src.IsSome() {\n")
	fmt.Fprintf(b, "\t\treturn %s(src.Unwrap())\n", s.Present)
	b.WriteString("\t}\n")
	fmt.Fprintf(b, "\treturn %s[T]()\n", s.Absent)
	b.WriteString("}\n")

	// Transform
	b.WriteString("\n")
	fmt.Fprintf(b, "// Map%s returns %s(f(v)) if o is %s(v), and %s otherwise.\n", s.Name, s.Present, s.Present, s.Absent)
	fmt.Fprintf(b, "// f is not called when o is a %s.\n", s.Absent)
	fmt.Fprintf(b, "func Map%s[T, U %s](o %s[T], f func(T) U) %s[U] {\n", s.Name, c, s.Name, s.Name)
	b.WriteString("\tif !o.present {\n")
	fmt.Fprintf(b, "\t\treturn %s[U]()\n", s.Absent)
	b.WriteString("\t}\n")
	fmt.Fprintf(b, "\treturn %s(f(o.value))\n", s.Present)
	b.WriteString("}\n")

	// Extractors
	b.WriteString("\n")
	fmt.Fprintf(b, "// Unwrap returns the contained value, or panics if o is a %s.\n", s.Absent)
	fmt.Fprintf(b, "func (o %s[T]) Unwrap() T {\n", s.Name)
	b.WriteString("\tif !o.present {\n")
	fmt.Fprintf(b, "\t\tpanic(%q)\n", s.Name+": Unwrap of "+s.Absent+" value")
	b.WriteString("\t}\n")
	b.WriteString("\treturn o.value\n")
	b.WriteString("}\n")

	b.WriteString("\n")
	fmt.Fprintf(b, "// Expect returns the contained value, or panics with msg if o is a %s.\n", s.Absent)
	fmt.Fprintf(b, "func (o %s[T]) Expect(msg string) T {\n", s.Name)
	b.WriteString("\tif !o.present {\n")
	b.WriteString("\t\tpanic(msg)\n")
	b.WriteString("\t}\n")
	b.WriteString("\treturn o.value\n")
	b.WriteString("}\n")

	b.WriteString("\n")
	fmt.Fprintf(b, "// UnwrapOrDefault returns the contained value, or the zero value of T if o is a %s.\n", s.Absent)
	fmt.Fprintf(b, "func (o %s[T]) UnwrapOrDefault() T {\n", s.Name)
	b.WriteString("\tif !o.present {\n")
	b.WriteString("\t\tvar zero T\n")
	b.WriteString("\t\treturn zero\n")
	b.WriteString("\t}\n")
	b.WriteString("\treturn o.value\n")
	b.WriteString("}\n")

	b.WriteString("\n")
	b.WriteString("// UnwrapOrElse returns the contained value, or the result of calling f.\n")
	fmt.Fprintf(b, "// f is called only when o is a %s.\n", s.Absent)
	fmt.Fprintf(b, "func (o %s[T]) UnwrapOrElse(f func() T) T {\n", s.Name)
	b.WriteString("\tif !o.present {\n")
	b.WriteString("\t\treturn f()\n")
	b.WriteString("\t}\n")
	b.WriteString("\treturn o.value\n")
	b.WriteString("}\n")

	// Derives
	if s.hasDerive(DeriveEq) {
		b.WriteString("\n")
		b.WriteString("// Equal reports whether o and other are the same variant holding equal values.\n")
		fmt.Fprintf(b, "func (o %s[T]) Equal(other %s[T]) bool {\n", s.Name, s.Name)
		b.WriteString("\tif o.present != other.present {\n")
		b.WriteString("\t\treturn false\n")
		b.WriteString("\t}\n")
		b.WriteString("\treturn !o.present || o.value == other.value\n")
		b.WriteString("}\n")
	}

	if s.hasDerive(DeriveOrd) {
		b.WriteString("\n")
		fmt.Fprintf(b, "// Compare orders o relative to other: %s sorts before any %s,\n", s.Absent, s.Present)
		fmt.Fprintf(b, "// and two %s values order by their contained values.\n", s.Present)
		fmt.Fprintf(b, "func (o %s[T]) Compare(other %s[T]) int {\n", s.Name, s.Name)
		b.WriteString("\tif o.present != other.present {\n")
		b.WriteString("\t\tif o.present {\n")
		b.WriteString("\t\t\treturn 1\n")
		b.WriteString("\t\t}\n")
		b.WriteString("\t\treturn -1\n")
		b.WriteString("\t}\n")
		b.WriteString("\tif !o.present {\n")
		b.WriteString("\t\treturn 0\n")
		b.WriteString("\t}\n")
		b.WriteString("\treturn cmp.Compare(o.value, other.value)\n")
		b.WriteString("}\n")

		b.WriteString("\n")
		b.WriteString("// Less reports whether o orders before other.\n")
		fmt.Fprintf(b, "func (o %s[T]) Less(other %s[T]) bool {\n", s.Name, s.Name)
		b.WriteString("\treturn o.Compare(other) < 0\n")
		b.WriteString("}\n")
	}

	if s.hasDerive(DeriveClone) {
		b.WriteString("\n")
		b.WriteString("// Clone returns a copy of o.\n")
		fmt.Fprintf(b, "func (o %s[T]) Clone() %s[T] {\n", s.Name, s.Name)
		b.WriteString("\treturn o\n")
		b.WriteString("}\n")
	}

	if s.hasDerive(DeriveString) {
		b.WriteString("\n")
		b.WriteString("// String implements fmt.Stringer.\n")
		fmt.Fprintf(b, "func (o %s[T]) String() string {\n", s.Name)
		b.WriteString("\tif o.present {\n")
		fmt.Fprintf(b, "\t\treturn fmt.Sprintf(\"%s(%%v)\", o.value)\n", s.Present)
		b.WriteString("\t}\n")
		fmt.Fprintf(b, "\treturn %q\n", s.Absent)
		b.WriteString("}\n")
	}
}
