package pairs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"numduo/internal/model"

	"github.com/rs/zerolog"
)

// LoadFromFile reads the sequence on the first line of a .txt file and
// returns a Finder over it.
func LoadFromFile(path string, logger zerolog.Logger) (*Finder, error) {
	if err := ValidateInputFile(path); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, model.NewValidationError(
				model.ErrCodeFileNotFound,
				fmt.Sprintf("input file %s not found", path),
				err,
			)
		}
		return nil, fmt.Errorf("failed to open input file %s: %w", path, err)
	}
	defer file.Close()

	data, err := ReadSequence(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse input file %s: %w", path, err)
	}

	if err := ValidatePositiveNumbers(data); err != nil {
		return nil, fmt.Errorf("invalid input file %s: %w", path, err)
	}

	return NewFinder(data, logger), nil
}

// WriteToFile truncates path and writes one "a b" line per recorded pair.
func (f *Finder) WriteToFile(path string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close output file %s: %w", path, closeErr)
		}
	}()

	w := bufio.NewWriter(file)
	for _, pair := range f.pairs {
		if _, err := fmt.Fprintf(w, "%d %d\n", pair.A, pair.B); err != nil {
			return fmt.Errorf("failed to write output file %s: %w", path, err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}

	f.logger.Debug().
		Str("file", path).
		Int("pairs_written", len(f.pairs)).
		Msg("output file written")

	return nil
}
