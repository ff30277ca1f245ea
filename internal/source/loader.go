package source

import (
	"context"

	"numduo/internal/pairs"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for local input files.
type fileLoader struct {
	base   zerolog.Logger
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based input loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		base:   logger,
		logger: logger.With().Str("component", "input-loader").Logger(),
	}
}

// Load reads a local input file.
func (l *fileLoader) Load(ctx context.Context, path string) (*pairs.Finder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.logger.Info().Str("file", path).Msg("reading input file")

	finder, err := pairs.LoadFromFile(path, l.base)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to load input file")
		return nil, err
	}

	l.logger.Info().
		Str("file", path).
		Int("values_loaded", len(finder.Data())).
		Msg("input file loaded successfully")

	return finder, nil
}
