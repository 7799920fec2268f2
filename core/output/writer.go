// Package output handles file delivery for Convopdf. It is the
// command-line stand-in for the browser download: exactly one file per
// conversion attempt, written under the chosen output directory.
package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer writes produced PDFs to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory, creating
// it if needed. An empty outputDir means the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Write stores data under the writer's directory and returns the path.
func (w *Writer) Write(filename string, data []byte) (string, error) {
	path := filepath.Join(w.OutputDir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}
