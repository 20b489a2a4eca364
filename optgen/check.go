package optgen

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/optlike/optlike/errors"
)

// CheckResult holds the result of a staleness check
type CheckResult struct {
	UpToDate bool
	Stale    []string // committed files whose content differs from regeneration
	Missing  []string // expected output files that do not exist
}

// CheckSpecs regenerates each spec in memory and compares the result with
// the committed output file next to the spec. Nothing is written. Returns
// a CheckResult listing which files differ.
func CheckSpecs(specPaths []string) (*CheckResult, error) {
	result := &CheckResult{UpToDate: true}

	for _, specPath := range specPaths {
		file, err := LoadSpecFile(specPath)
		if err != nil {
			return nil, err
		}

		want, err := Generate(file)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to regenerate %s", specPath)
		}

		outputPath := OutputPath(specPath, file)
		existing, err := os.ReadFile(outputPath)
		if os.IsNotExist(err) {
			result.UpToDate = false
			result.Missing = append(result.Missing, outputPath)
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", outputPath)
		}

		if !bytes.Equal(existing, want) {
			result.UpToDate = false
			result.Stale = append(result.Stale, outputPath)
		}
	}

	return result, nil
}

// OutputPath resolves the generated file path for a spec: the Output field
// interpreted relative to the spec file's directory.
func OutputPath(specPath string, file *SpecFile) string {
	if filepath.IsAbs(file.Output) {
		return file.Output
	}
	return filepath.Join(filepath.Dir(specPath), file.Output)
}
