// Package pairs finds the distinct pairs of values in an integer sequence
// that add up to model.TargetSum, and reads and writes them as text files.
package pairs

import (
	"fmt"
	"io"
	"os"
	"strings"

	"numduo/internal/model"

	"github.com/rs/zerolog"
)

// Finder owns one input sequence and the pairs found in it.
type Finder struct {
	data   []int
	pairs  model.PairSet
	out    io.Writer
	logger zerolog.Logger
}

// NewFinder creates a finder over data. Results printed by GetPairs go to
// standard output unless SetOutput is called.
func NewFinder(data []int, logger zerolog.Logger) *Finder {
	return &Finder{
		data:   data,
		pairs:  model.PairSet{},
		out:    os.Stdout,
		logger: logger.With().Str("component", "pair-finder").Logger(),
	}
}

// Data returns the input sequence.
func (f *Finder) Data() []int {
	return f.data
}

// Pairs returns the pairs recorded by the last FindPairs call.
func (f *Finder) Pairs() model.PairSet {
	return f.pairs
}

// SetPairs replaces the recorded pairs.
func (f *Finder) SetPairs(pairs model.PairSet) {
	f.pairs = pairs
}

// SetOutput redirects the output of GetPairs.
func (f *Finder) SetOutput(w io.Writer) {
	f.out = w
}

// FindPairs scans the sequence for pairs summing to model.TargetSum and
// records them, replacing the result of any previous call.
//
// A value is tried as the first element of a pair at most once, and never
// after it has been used in a recorded pair or when it exceeds the target.
// Each pair is stored smaller value first and recorded only once.
func (f *Finder) FindPairs() model.PairSet {
	return logged(f.logger, "find_pairs", f.findPairs)()
}

func (f *Finder) findPairs() model.PairSet {
	pairs := model.PairSet{}
	tried := make(map[int]struct{})
	consumed := make(map[int]struct{})
	recorded := make(map[model.Pair]struct{})

	for i, first := range f.data {
		if first > model.TargetSum {
			continue
		}
		if _, ok := tried[first]; ok {
			continue
		}
		if _, ok := consumed[first]; ok {
			continue
		}
		tried[first] = struct{}{}

		for _, second := range f.data[i+1:] {
			if first+second != model.TargetSum {
				continue
			}
			pair := model.NewPair(first, second)
			if _, ok := recorded[pair]; ok {
				continue
			}
			recorded[pair] = struct{}{}
			consumed[first] = struct{}{}
			consumed[second] = struct{}{}
			pairs = append(pairs, pair)
		}
	}

	f.pairs = pairs
	return pairs
}

// GetPairs runs FindPairs and prints the result, one "a b" line per pair.
func (f *Finder) GetPairs() (model.PairSet, error) {
	pairs := f.FindPairs()

	if _, err := fmt.Fprintln(f.out, Render(pairs)); err != nil {
		return nil, fmt.Errorf("failed to print pairs: %w", err)
	}

	return pairs, nil
}

// Render formats pairs as "a b" lines joined by newlines, without a
// trailing newline.
func Render(pairs model.PairSet) string {
	lines := make([]string, len(pairs))
	for i, pair := range pairs {
		lines[i] = pair.String()
	}
	return strings.Join(lines, "\n")
}

// logged wraps fn so that each call logs its result.
func logged[T any](logger zerolog.Logger, name string, fn func() T) func() T {
	return func() T {
		result := fn()
		logger.Info().
			Str("func", name).
			Interface("result", result).
			Msg("result")
		return result
	}
}
