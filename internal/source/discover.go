package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"numduo/internal/pairs"
)

// Discover returns the .txt files directly inside dir, sorted by name.
// Hidden files and subdirectories are skipped.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if !strings.HasSuffix(name, pairs.InputExtension) {
			continue
		}
		files = append(files, filepath.Clean(filepath.Join(dir, name)))
	}

	return files, nil
}
