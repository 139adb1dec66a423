// =============================================================================
// gosort - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the sort itself; `version` is the only subcommand.
//
// COBRA CLI STRUCTURE:
//   rootCmd (gosort [flags] <file>)
//   └── versionCmd (gosort version)
//
// FLAGS:
//   -s        : sort lines as text (or by columns when -k is given)
//   -n        : sort numerically
//   -r        : reverse the sorted result (-rs is -r -s)
//   -k LIST   : sort by the given 1-based columns, e.g. -k 2,1
//   -u        : drop adjacent duplicate lines after sorting
//   -b        : trim trailing whitespace before sorting
//   -c        : report whether the input is already sorted
//   -h        : numeric sort honouring k/m/b/t suffixes
//   -M        : sort by month name
//   -t SEP    : split columns on SEP instead of whitespace
//   -o PATH   : destination file (default from settings, "output.txt")
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/ginjaninja78/gosort/internal/config"
	"github.com/spf13/cobra"
)

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// NewRootCmd builds the command tree with fresh flag state.
func NewRootCmd() *cobra.Command {
	flags := &sortFlags{}

	rootCmd := &cobra.Command{
		Use:   "gosort [flags] <file>",
		Short: "Sort the lines of a file in memory, like sort(1)",
		Long: `gosort reads a whole file into memory, sorts its lines and writes the result
to a destination file.

Lines are ordered as text by default. Numeric (-n), suffix-aware numeric (-h),
month-name (-M) and column (-k) orderings are available. The sorted result can
be reversed (-r) and adjacent duplicates removed (-u).

Example Usage:
  gosort -s names.txt                 # Sort lines as text into output.txt
  gosort -n -u numbers.txt -o out.txt # Numeric sort without duplicates
  gosort -rs -k 2,1 table.txt         # Sort by column 2 then 1, reversed
  gosort -c -s names.txt              # Report whether names.txt is sorted`,

		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,

		// RunE is like Run but returns an error, so Execute can report it.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(cmd, flags, args[0])
		},
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// ==========================================================================
	// SORT FLAGS
	// ==========================================================================

	f := rootCmd.Flags()
	f.BoolVarP(&flags.text, "string", "s", false, "Sort lines as text (by columns when -k is given)")
	f.BoolVarP(&flags.numeric, "numeric-sort", "n", false, "Sort lines by numeric value")
	f.BoolVarP(&flags.reverse, "reverse", "r", false, "Reverse the sorted result")
	f.StringVarP(&flags.columns, "key", "k", "", "Sort by the given 1-based columns, e.g. 2,1")
	f.BoolVarP(&flags.unique, "unique", "u", false, "Drop adjacent duplicate lines after sorting")
	f.BoolVarP(&flags.trim, "ignore-trailing-blanks", "b", false, "Trim trailing whitespace before sorting")
	f.BoolVarP(&flags.check, "check", "c", false, "Report whether the input is already sorted")
	f.BoolVarP(&flags.suffix, "human-numeric-sort", "h", false, "Numeric sort honouring k/m/b/t suffixes")
	f.BoolVarP(&flags.month, "month-sort", "M", false, "Sort by three-letter month name")
	f.StringVarP(&flags.separator, "field-separator", "t", "", "Split columns on this string instead of whitespace")
	f.StringVarP(&flags.output, "output", "o", "", "Destination file (placeholders: {original} {ext} {date} {timestamp} {uuid})")

	// -h belongs to -h/--human-numeric-sort, so help is long-form only.
	f.Bool("help", false, "Help for gosort")

	// ==========================================================================
	// GLOBAL FLAGS
	// ==========================================================================

	rootCmd.PersistentFlags().StringVar(&flags.cfgFile, "config", config.DefaultPath, "Path to the settings file (YAML or TOML)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the CLI. It is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
