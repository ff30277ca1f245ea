package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
)

// generateSampleInputs creates sample input files for trying the CLI.
// Three files are valid; negative.txt, malformed.txt and numbers.csv are
// rejected with a validation error and must not stop the others.
func main() {
	dataDir := "data/input"

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	inputs := map[string]string{
		"single.txt":    "[1,2,3,4,9]",                              // 3 9
		"several.txt":   "[6,6,3,9,4,8,1,11]",                       // 6 6, 3 9, 4 8, 1 11
		"repeated.txt":  "[4,8,9,0,12,1,4,2,12,12,4,4,8,11,12,0,6]", // 4 8, 0 12, 1 11
		"negative.txt":  "[1,-2,13]",
		"malformed.txt": "[1,two,3]",
		"numbers.csv":   "[5,7]",
	}

	names := make([]string, 0, len(inputs))
	for name := range inputs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		filePath := filepath.Join(dataDir, name)

		if err := os.WriteFile(filePath, []byte(inputs[name]+"\n"), 0644); err != nil {
			log.Fatalf("Failed to create %s: %v", name, err)
		}

		fmt.Printf("Created %s\n", filePath)
	}

	fmt.Println("\nSample input files created successfully!")
	fmt.Println("\nRun: go run ./cmd/numduo --input-dir data/input --output-dir data/output")
	fmt.Println("numbers.csv is skipped by directory discovery; pass it with --input-files to see the extension error.")
}
