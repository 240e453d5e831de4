package project

import (
	"fmt"
	"path/filepath"

	"github.com/raivivek/makebio/internal/config"
	"github.com/raivivek/makebio/internal/filesystem"
)

// Discover walks up from startDir to the nearest directory containing the
// config document and returns it as the project root. The walk never
// crosses to a parent above the filesystem root; running outside any
// managed project yields ErrNotConfigured.
func Discover(fs filesystem.FileSystem, startDir string) (string, error) {
	dir := filepath.Clean(startDir)
	for {
		if fs.Exists(filepath.Join(dir, config.FileName)) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s: %w", startDir, config.ErrNotConfigured)
		}
		dir = parent
	}
}
