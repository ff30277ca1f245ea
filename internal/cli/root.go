// Package cli wires configuration, logging and the batch processor into the
// numduo command.
package cli

import (
	"fmt"

	"numduo/internal/batch"
	"numduo/internal/config"
	"numduo/internal/source"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// RootOptions holds the command-line flags. Flags that are set override the
// matching environment variables.
type RootOptions struct {
	InputDir   string
	InputFiles []string
	OutputDir  string
	LogFile    string
	LogLevel   string
	LogFormat  string
}

// NewRootCommand creates the numduo command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "numduo",
		Short: "Find number pairs from data",
		Long: `Find all unique pairs of numbers that add up to 12.

Each input file holds one line such as [1,2,3,4,9]. The pairs found in it
are printed and written to output_of_<name>.txt in the output directory.`,
		Args: func(cmd *cobra.Command, args []string) error {
			// Positional arguments continue the --input-files list.
			if len(args) > 0 && !cmd.Flags().Changed("input-files") {
				return fmt.Errorf("unexpected arguments %v: input files are passed with --input-files", args)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(func(c *config.Config) {
				opts.apply(cmd.Flags(), args, c)
			})
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&opts.InputDir, "input-dir", "data/input/", "directory containing input files")
	cmd.Flags().StringArrayVar(&opts.InputFiles, "input-files", nil, "paths to input files, space separated (overrides --input-dir)")
	cmd.Flags().StringVar(&opts.OutputDir, "output-dir", "data/output/", "path to output directory")
	cmd.Flags().StringVar(&opts.LogFile, "log-file", "", "also append logs to this file")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", "info", "log level (debug|info|warn|error)")
	cmd.Flags().StringVar(&opts.LogFormat, "log-format", "console", "log format (json|console)")

	return cmd
}

// apply copies explicitly set flags over cfg. Extra positional args are
// appended to the --input-files list.
func (o *RootOptions) apply(flags *pflag.FlagSet, args []string, cfg *config.Config) {
	if flags.Changed("input-dir") {
		cfg.Input.Dir = o.InputDir
	}
	if flags.Changed("input-files") {
		files := make([]string, 0, len(o.InputFiles)+len(args))
		files = append(files, o.InputFiles...)
		cfg.Input.Files = append(files, args...)
	}
	if flags.Changed("output-dir") {
		cfg.Output.Dir = o.OutputDir
	}
	if flags.Changed("log-file") {
		cfg.Logger.File = o.LogFile
	}
	if flags.Changed("log-level") {
		cfg.Logger.Level = o.LogLevel
	}
	if flags.Changed("log-format") {
		cfg.Logger.Format = o.LogFormat
	}
}

func run(cmd *cobra.Command, cfg *config.Config) error {
	ctx := cmd.Context()

	logger, closer, err := config.NewLogger(cfg.Logger, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to initialise logger: %w", err)
	}
	defer closer.Close()

	inputs := cfg.Input.Files
	if len(inputs) == 0 {
		inputs, err = source.Discover(cfg.Input.Dir)
		if err != nil {
			logger.Error().Err(err).Str("input_dir", cfg.Input.Dir).Msg("failed to discover input files")
			return err
		}
	}

	processor := batch.NewProcessor(newLoader(cmd, cfg, logger), cfg.Output.Dir, cmd.OutOrStdout(), logger)

	summary, err := processor.Process(ctx, inputs)
	if err != nil {
		return err
	}

	if len(inputs) > 0 && summary.Failed() == len(inputs) {
		return fmt.Errorf("all %d input files failed", len(inputs))
	}

	return nil
}

// newLoader returns the local file loader, fronted by S3 when enabled.
func newLoader(cmd *cobra.Command, cfg *config.Config, logger zerolog.Logger) source.Loader {
	fileLoader := source.NewFileLoader(logger)

	if !cfg.S3.Enabled {
		logger.Debug().Msg("using local file system for input files (S3 disabled)")
		return fileLoader
	}

	s3Loader, err := source.NewS3Loader(cmd.Context(), cfg.S3.Bucket, cfg.S3.Region, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 loader, falling back to local file system only")
		return fileLoader
	}

	return source.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, true, logger)
}
