package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"numduo/internal/model"
	"numduo/internal/source"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// processor implements Processor.
type processor struct {
	loader    source.Loader
	outputDir string
	stdout    io.Writer
	logger    zerolog.Logger
}

// NewProcessor creates a new batch processor. Pairs and per-file result
// messages are printed to stdout.
func NewProcessor(loader source.Loader, outputDir string, stdout io.Writer, logger zerolog.Logger) Processor {
	return &processor{
		loader:    loader,
		outputDir: outputDir,
		stdout:    stdout,
		logger:    logger.With().Str("component", "batch").Logger(),
	}
}

// Process handles each input in turn.
func (p *processor) Process(ctx context.Context, inputs []string) (*Summary, error) {
	summary := &Summary{
		RunID:   uuid.New(),
		Results: make([]model.FileResult, 0, len(inputs)),
	}
	logger := p.logger.With().Str("run_id", summary.RunID.String()).Logger()

	if err := os.MkdirAll(p.outputDir, 0755); err != nil {
		logger.Error().Err(err).Str("output_dir", p.outputDir).Msg("failed to create output directory")
		return nil, fmt.Errorf("failed to create output directory %s: %w", p.outputDir, err)
	}

	logger.Info().
		Int("file_count", len(inputs)).
		Str("output_dir", p.outputDir).
		Msg("starting batch")

	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			logger.Warn().Err(err).Str("file", input).Msg("batch cancelled, skipping file")
			summary.Results = append(summary.Results, model.FileResult{InputPath: input, Err: err})
			continue
		}

		result := p.processFile(ctx, logger, input)
		summary.Results = append(summary.Results, result)

		if result.Err != nil {
			event := logger.Error().Err(result.Err).Str("file", input)
			if code := model.ErrorCode(result.Err); code != "" {
				event = event.Str("error_code", code)
			}
			event.Msg("failed to process input file")
		}
	}

	logger.Info().
		Int("succeeded", summary.Succeeded()).
		Int("failed", summary.Failed()).
		Msg("batch completed")

	return summary, nil
}

// processFile loads one input, prints its pairs and writes the output file.
func (p *processor) processFile(ctx context.Context, logger zerolog.Logger, input string) model.FileResult {
	result := model.FileResult{InputPath: input}

	logger.Info().Str("file", input).Msg("reading input")

	finder, err := p.loader.Load(ctx, input)
	if err != nil {
		result.Err = err
		return result
	}

	finder.SetOutput(p.stdout)
	found, err := finder.GetPairs()
	if err != nil {
		result.Err = err
		return result
	}
	result.PairCount = len(found)

	logger.Info().Str("file", input).Int("pair_count", len(found)).Msg("pairs found")

	result.OutputPath = OutputPath(p.outputDir, input)
	if err := finder.WriteToFile(result.OutputPath); err != nil {
		result.Err = err
		return result
	}

	if _, err := fmt.Fprintf(p.stdout, "Result for %s written to file %s.\n", input, result.OutputPath); err != nil {
		result.Err = fmt.Errorf("failed to report result for %s: %w", input, err)
		return result
	}

	logger.Info().
		Str("file", input).
		Str("output_file", result.OutputPath).
		Msg("result written")

	return result
}

// OutputPath returns the output file for input: output_of_<stem>.txt
// inside outputDir.
func OutputPath(outputDir, input string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outputDir, "output_of_"+stem+".txt")
}
