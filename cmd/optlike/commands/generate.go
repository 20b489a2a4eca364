package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/optlike/optlike/errors"
	"github.com/optlike/optlike/logger"
	"github.com/optlike/optlike/optgen"
)

var (
	generateOutput string
	generateStdout bool
)

// GenerateCmd represents the generate command
var GenerateCmd = &cobra.Command{
	Use:   "generate [spec.yaml...]",
	Short: "Generate option types from spec files",
	Long: `Generate Go source for named two-variant option types.

Each spec file declares a target package and one or more types. For every
type the generator emits the type declaration, variant constructors, the
two predicate methods, conversions to and from the universal option type,
and the convenience operations (Map, Unwrap, Expect, UnwrapOrDefault,
UnwrapOrElse) plus any requested derives (eq, ord, clone, string).

By default output is written next to each spec file, using the spec's
output field (or <spec name>.go when unset).

Examples:
  optlike generate cached.optlike.yaml        # Write cached.go next to the spec
  optlike generate --stdout cached.optlike.yaml
  optlike generate -o ./gen a.yaml b.yaml     # Write all output under ./gen`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	GenerateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output directory (default: next to each spec)")
	GenerateCmd.Flags().BoolVar(&generateStdout, "stdout", false, "Write generated source to stdout instead of files")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	for _, specPath := range args {
		file, err := optgen.LoadSpecFile(specPath)
		if err != nil {
			return err
		}

		src, err := optgen.Generate(file)
		if err != nil {
			return errors.Wrapf(err, "failed to generate %s", specPath)
		}

		if generateStdout {
			fmt.Fprint(cmd.OutOrStdout(), string(src))
			continue
		}

		outputPath := optgen.OutputPath(specPath, file)
		if generateOutput != "" {
			if err := os.MkdirAll(generateOutput, 0755); err != nil {
				return errors.Wrap(err, "failed to create output directory")
			}
			outputPath = filepath.Join(generateOutput, file.Output)
		}

		if err := os.WriteFile(outputPath, src, 0644); err != nil {
			return errors.Wrapf(err, "failed to write %s", outputPath)
		}

		logger.Debugw("generated option types",
			"spec", specPath,
			"output", outputPath,
			"types", len(file.Types))
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Generated %s (%d types)\n", outputPath, len(file.Types))
	}

	return nil
}
