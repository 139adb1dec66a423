// =============================================================================
// gosort - Sort Command
// =============================================================================
//
// This file turns the command-line flags into an immutable sort
// configuration and runs the pipeline.
//
// PROCESSING PIPELINE:
//   1. Build and validate the sort configuration (no I/O before this)
//   2. Load the settings file (optional unless --config is given)
//   3. Initialize logging
//   4. Resolve the destination path
//   5. Read, sort and write
//   6. Print the sortedness report when -c was given
//
// =============================================================================

package cmd

import (
	"fmt"
	"time"

	"github.com/ginjaninja78/gosort/internal/config"
	"github.com/ginjaninja78/gosort/internal/logging"
	"github.com/ginjaninja78/gosort/internal/pipeline"
	"github.com/ginjaninja78/gosort/internal/sorter"
	"github.com/ginjaninja78/gosort/internal/source"
	"github.com/ginjaninja78/gosort/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// sortFlags holds the raw flag values of one invocation.
type sortFlags struct {
	text      bool
	numeric   bool
	reverse   bool
	unique    bool
	trim      bool
	check     bool
	suffix    bool
	month     bool
	columns   string
	separator string
	output    string
	cfgFile   string
	verbose   bool
}

// toConfig builds the sort configuration from the flags alone. Conflicting
// modes and malformed column lists are reported as *sorter.ConfigError.
// The separator is left empty unless -t was given.
func (f *sortFlags) toConfig(fs *pflag.FlagSet) (sorter.Config, error) {
	cfg := sorter.Config{
		Mode:         sorter.TextMode(),
		Reverse:      f.reverse,
		Unique:       f.unique,
		TrimTrailing: f.trim,
		CheckOnly:    f.check,
	}

	if fs.Changed("field-separator") {
		cfg.Separator = config.NormalizeSeparator(f.separator)
	}

	switch {
	case f.month && (f.numeric || f.suffix):
		return sorter.Config{}, &sorter.ConfigError{Option: "-M", Reason: "month sort cannot be combined with -n or -h"}
	case f.text && (f.numeric || f.suffix || f.month):
		return sorter.Config{}, &sorter.ConfigError{Option: "-s", Reason: "text sort cannot be combined with -n, -h or -M"}
	case f.suffix:
		cfg.Mode = sorter.NumericSuffixMode()
	case f.numeric:
		cfg.Mode = sorter.NumericMode()
	case f.month:
		cfg.Mode = sorter.MonthMode()
	}

	if fs.Changed("key") {
		if cfg.Mode.Kind != sorter.ModeText {
			return sorter.Config{}, &sorter.ConfigError{Option: "-k", Value: f.columns, Reason: fmt.Sprintf("columns cannot be combined with %s mode", cfg.Mode.Kind)}
		}
		spec, err := sorter.ParseFieldSpec(f.columns)
		if err != nil {
			return sorter.Config{}, err
		}
		cfg.Mode = sorter.ColumnsMode(spec)
	}

	if err := cfg.Validate(); err != nil {
		return sorter.Config{}, err
	}
	return cfg, nil
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

func runSort(cmd *cobra.Command, flags *sortFlags, inputPath string) error {
	cfg, err := flags.toConfig(cmd.Flags())
	if err != nil {
		return err
	}

	settings, err := config.Load(flags.cfgFile, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("field-separator") {
		cfg.Separator = settings.FieldSeparator
	}

	logger, err := logging.New(settings.LogLevel, settings.LogFormat, flags.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	outputFormat := settings.Output
	if cmd.Flags().Changed("output") {
		outputFormat = flags.output
	}
	outputPath := utils.ExpandOutputPath(outputFormat, inputPath, time.Now())

	logger.Debug("Starting sort",
		zap.String("mode", cfg.Mode.Kind.String()),
		zap.Bool("reverse", cfg.Reverse),
		zap.Bool("unique", cfg.Unique),
		zap.Bool("trim", cfg.TrimTrailing),
		zap.Bool("check", cfg.CheckOnly),
		zap.String("output", outputPath))

	runner, err := pipeline.New(cfg, logger)
	if err != nil {
		return err
	}

	result, err := runner.Run(pipeline.Request{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Source:     source.Options{MaxLineBytes: settings.MaxLineBytes},
	})
	if err != nil {
		return err
	}

	if result.Check != sorter.CheckSkipped {
		fmt.Fprintln(cmd.OutOrStdout(), result.Check)
	}

	return nil
}
