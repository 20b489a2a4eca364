// Package optgen generates named two-variant option types from declarative
// specs.
//
// # Architecture
//
// The package uses a two-layer design:
//  1. Spec loading and validation (spec.go) turns a YAML document into a
//     checked SpecFile
//  2. Emission (generate.go) renders one Go source file per SpecFile
//
// Every structural problem with a spec (malformed identifiers, duplicate or
// reserved names, unknown derives) is rejected at generation time; the
// emitted code itself never fails except in Unwrap/Expect on an absent
// value.
//
// # Design Decisions
//
// - Deterministic output (fixed declaration order, fixed comment text)
//   enables CI validation via git diff
// - Derives tighten the generated type parameter constraint (eq ->
//   comparable, ord -> cmp.Ordered) instead of reaching for reflection
// - Payload-changing transforms are free functions because Go methods
//   cannot introduce type parameters
package optgen

import (
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/optlike/optlike/errors"
)

// Derive names a capability attached to a generated type on request.
const (
	DeriveEq     = "eq"     // Equal method; payload constrained to comparable
	DeriveOrd    = "ord"    // Compare and Less; payload constrained to cmp.Ordered
	DeriveClone  = "clone"  // Clone method
	DeriveString = "string" // fmt.Stringer
)

// Default variant designations.
const (
	DefaultNone    = ""        // no default-producing constructor is generated
	DefaultPresent = "present" // Default<Name> yields the present variant of T's zero value
	DefaultAbsent  = "absent"  // Default<Name> yields the absent variant
)

// Spec describes one generated two-variant option type: its name, its two
// variant names, its two predicate names, and the optional derive set and
// default variant.
type Spec struct {
	Name      string   `yaml:"name"`
	Present   string   `yaml:"present"`
	Absent    string   `yaml:"absent"`
	IsPresent string   `yaml:"is_present"`
	IsAbsent  string   `yaml:"is_absent"`
	Derive    []string `yaml:"derive"`
	Default   string   `yaml:"default"`
	Doc       string   `yaml:"doc"`
}

// SpecFile is one YAML spec document: a target package plus the types to
// generate into it.
type SpecFile struct {
	Package string `yaml:"package"`
	Doc     string `yaml:"doc"`
	Output  string `yaml:"output"`
	Runtime string `yaml:"runtime"`
	Types   []Spec `yaml:"types"`
}

// reservedNames are identifiers the generator emits on every type. A
// caller-chosen name may not collide with them; anything else already in
// scope at the target package is left untouched.
var reservedNames = map[string]bool{
	"Option":          true,
	"Unwrap":          true,
	"Expect":          true,
	"UnwrapOrDefault": true,
	"UnwrapOrElse":    true,
	"Equal":           true,
	"Compare":         true,
	"Less":            true,
	"Clone":           true,
	"String":          true,
	// Type parameter names of the emitted declarations
	"T": true,
	"U": true,
}

// LoadSpecFile reads and validates a YAML spec file. Unknown YAML fields
// are rejected so typos surface at generation time.
func LoadSpecFile(path string) (*SpecFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read spec %s", path)
	}

	var file SpecFile
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, errors.Wrapf(err, "failed to parse spec %s", path)
	}

	if file.Output == "" {
		file.Output = defaultOutputName(path)
	}
	if file.Runtime == "" {
		file.Runtime = DefaultRuntime
	}

	if err := file.Validate(); err != nil {
		return nil, errors.Wrapf(err, "spec %s", path)
	}

	return &file, nil
}

// defaultOutputName derives the generated file name from the spec file
// name: cached.optlike.yaml -> cached.go
func defaultOutputName(specPath string) string {
	base := filepath.Base(specPath)
	for _, suffix := range []string{".optlike.yaml", ".optlike.yml", ".yaml", ".yml"} {
		if strings.HasSuffix(base, suffix) {
			return strings.TrimSuffix(base, suffix) + ".go"
		}
	}
	return base + ".go"
}

// Validate checks the spec file for structural problems. All failures wrap
// errors.ErrInvalidSpec.
func (f *SpecFile) Validate() error {
	if f.Package == "" {
		return errors.NewInvalidSpecError("package is required")
	}
	if !token.IsIdentifier(f.Package) {
		return errors.NewInvalidSpecError("package %q is not a valid Go identifier", f.Package)
	}
	if len(f.Types) == 0 {
		return errors.NewInvalidSpecError("spec declares no types")
	}

	// Package-level identifiers emitted across all types in the file must
	// be pairwise distinct.
	seen := make(map[string]string)
	claim := func(name, owner string) error {
		if prev, ok := seen[name]; ok {
			return errors.NewInvalidSpecError("identifier %s of type %s collides with %s", name, owner, prev)
		}
		seen[name] = owner
		return nil
	}

	for i := range f.Types {
		spec := &f.Types[i]
		if err := spec.validate(); err != nil {
			return err
		}
		for _, name := range []string{
			spec.Name,
			spec.Present,
			spec.Absent,
			"Map" + spec.Name,
			spec.Name + "FromOption",
		} {
			if err := claim(name, spec.Name); err != nil {
				return err
			}
		}
		if spec.Default != DefaultNone {
			if err := claim("Default"+spec.Name, spec.Name); err != nil {
				return err
			}
		}
	}

	return nil
}

// validate checks a single type spec.
func (s *Spec) validate() error {
	names := map[string]string{
		"name":       s.Name,
		"present":    s.Present,
		"absent":     s.Absent,
		"is_present": s.IsPresent,
		"is_absent":  s.IsAbsent,
	}
	for field, name := range names {
		if name == "" {
			return errors.NewInvalidSpecError("type %s: %s is required", s.Name, field)
		}
		if err := validateExportedIdent(field, name); err != nil {
			return err
		}
	}

	// The five caller-chosen names must be pairwise distinct within the
	// type.
	distinct := make(map[string]string)
	for _, field := range []string{"name", "present", "absent", "is_present", "is_absent"} {
		name := names[field]
		if prev, ok := distinct[name]; ok {
			return errors.NewInvalidSpecError("type %s: %s and %s are both named %s", s.Name, prev, field, name)
		}
		distinct[name] = field
	}

	seenDerive := make(map[string]bool)
	for _, d := range s.Derive {
		switch d {
		case DeriveEq, DeriveOrd, DeriveClone, DeriveString:
		default:
			return errors.NewInvalidSpecError("type %s: unknown derive %q", s.Name, d)
		}
		if seenDerive[d] {
			return errors.NewInvalidSpecError("type %s: duplicate derive %q", s.Name, d)
		}
		seenDerive[d] = true
	}

	switch s.Default {
	case DefaultNone, DefaultPresent, DefaultAbsent:
	default:
		return errors.NewInvalidSpecError("type %s: default must be %q or %q, got %q", s.Name, DefaultPresent, DefaultAbsent, s.Default)
	}

	return nil
}

// hasDerive reports whether the spec requests the given derive.
func (s *Spec) hasDerive(name string) bool {
	for _, d := range s.Derive {
		if d == name {
			return true
		}
	}
	return false
}

// constraint returns the type parameter constraint the derive set implies.
func (s *Spec) constraint() string {
	if s.hasDerive(DeriveOrd) {
		return "cmp.Ordered"
	}
	if s.hasDerive(DeriveEq) {
		return "comparable"
	}
	return "any"
}

// validateExportedIdent rejects names that are not valid exported Go
// identifiers or that collide with the fixed operation set the generator
// emits.
func validateExportedIdent(field, name string) error {
	if !token.IsIdentifier(name) {
		return errors.NewInvalidSpecError("%s %q is not a valid Go identifier", field, name)
	}
	first, _ := utf8.DecodeRuneInString(name)
	if !unicode.IsUpper(first) {
		return errors.NewInvalidSpecError("%s %q must be exported (start with an uppercase letter)", field, name)
	}
	if reservedNames[name] {
		return errors.NewInvalidSpecError("%s %q collides with a generated operation name", field, name)
	}
	return nil
}
