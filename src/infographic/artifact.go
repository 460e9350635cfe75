package infographic

import (
	"fmt"
	"os"
	"path/filepath"
)

const DefaultArtifactName = "infographic.html"

// WriteArtifact replaces the file at path with html. The content lands in a
// temp file first so a failed write never leaves a truncated download.
func WriteArtifact(path, html string) error {
	if path == "" {
		path = DefaultArtifactName
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".infographic-*.html")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(html); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write infographic: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to set permissions on infographic: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move infographic into place: %w", err)
	}
	return nil
}
