// Package report writes the output artifacts. Unlike log reading, a failed
// write is fatal for the run: the whole point of the invocation is the
// artifact.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteFile renders into the given path, creating parent directories as
// needed.
func WriteFile(path string, render func(w io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
