package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/optlike/optlike/cmd/optlike/commands"
	"github.com/optlike/optlike/logger"
)

var jsonLogs bool

var rootCmd = &cobra.Command{
	Use:   "optlike",
	Short: "optlike - Generate named two-variant option types",
	Long: `optlike - Generate named two-variant option types.

optlike turns a small YAML spec into a Go source file declaring an
option-like type with caller-chosen variant and predicate names, plus
conversions to and from the universal option type and the full
convenience set (Map, Unwrap, Expect, UnwrapOrDefault, UnwrapOrElse).

Available commands:
  generate - Generate option types from spec files
  check    - Verify committed generated files are up to date
  version  - Show version information

Examples:
  optlike generate cached.optlike.yaml    # Write cached.go next to the spec
  optlike generate --stdout spec.yaml     # Print generated source
  optlike check example/cache/cached.optlike.yaml`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize global logger before any command runs
		if err := logger.Initialize(jsonLogs); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Emit logs as JSON")

	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
