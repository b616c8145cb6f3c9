// Package archive persists rendered issues to disk.
package archive

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
)

// WriteFiles writes each filename -> text entry into dir, creating dir if needed.
// Existing files with the same name are overwritten.
func WriteFiles(dir string, files map[string]string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create issues directory: %w", err)
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(files[name]), 0o644); err != nil { //nolint:gosec // archived issues are meant to be readable
			return fmt.Errorf("failed to write issue file %s: %w", name, err)
		}
		slog.Debug("Wrote issue file", "path", path)
	}

	return nil
}
