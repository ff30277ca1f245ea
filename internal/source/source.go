// Package source locates input files and loads them into pair finders,
// from the local filesystem or from S3.
package source

import (
	"context"

	"numduo/internal/pairs"
)

// Loader defines the interface for loading input files.
type Loader interface {
	// Load reads the sequence stored at path and returns a Finder over it.
	Load(ctx context.Context, path string) (*pairs.Finder, error)
}
