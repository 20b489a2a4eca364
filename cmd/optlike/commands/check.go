package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/optlike/optlike/errors"
	"github.com/optlike/optlike/optgen"
)

// CheckCmd checks if generated files are up to date
var CheckCmd = &cobra.Command{
	Use:   "check [spec.yaml...]",
	Short: "Check if generated option types are up to date",
	Long: `Check if committed generated files match their spec files.

This command regenerates each spec in memory and compares the result with
the committed output file. Nothing is written.

Exit codes:
  0 - Generated files are up to date
  1 - Generated files are out of date (list shown)

Examples:
  optlike check example/cache/cached.optlike.yaml
  optlike check example/*/*.optlike.yaml      # CI flow`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), "Checking generated types...")

	result, err := optgen.CheckSpecs(args)
	if err != nil {
		return errors.Wrap(err, "failed to check specs")
	}

	if result.UpToDate {
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Generated types are up to date")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), "✗ Generated types are out of date.")
	for _, path := range result.Missing {
		fmt.Fprintf(cmd.OutOrStdout(), "  - %s (missing)\n", path)
	}
	for _, path := range result.Stale {
		fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", path)
	}

	return errors.Wrap(errors.ErrStale, "run 'optlike generate' to update")
}
