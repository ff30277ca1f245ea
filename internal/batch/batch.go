// Package batch drives a run over many input files: each file is loaded,
// its pairs printed and written to the output directory. A failing file is
// logged and recorded, and the run moves on to the next one.
package batch

import (
	"context"

	"numduo/internal/model"

	"github.com/google/uuid"
)

// Processor runs pair finding over a list of input files.
type Processor interface {
	// Process handles inputs in order and reports the outcome of each.
	// Only failures that affect the whole run are returned as errors.
	Process(ctx context.Context, inputs []string) (*Summary, error)
}

// Summary describes a completed run.
type Summary struct {
	RunID   uuid.UUID
	Results []model.FileResult
}

// Succeeded returns the number of files processed without error.
func (s *Summary) Succeeded() int {
	count := 0
	for _, r := range s.Results {
		if r.Succeeded() {
			count++
		}
	}
	return count
}

// Failed returns the number of files that could not be processed.
func (s *Summary) Failed() int {
	return len(s.Results) - s.Succeeded()
}
