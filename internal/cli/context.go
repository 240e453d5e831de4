package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raivivek/makebio/internal/config"
	"github.com/raivivek/makebio/internal/filesystem"
	"github.com/raivivek/makebio/internal/project"
)

// resolveStartDir returns the directory a command operates from: the -C
// flag when given, the process working directory otherwise.
func resolveStartDir(fs filesystem.FileSystem, cmd *cobra.Command) (string, error) {
	if dir, _ := cmd.Flags().GetString("directory"); dir != "" {
		abs, err := absPath(dir)
		if err != nil {
			return "", err
		}
		return abs, nil
	}

	cwd, err := fs.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return cwd, nil
}

// resolveProject locates the project root for a command and loads its
// config. Every command except init goes through here, so a missing config
// fails before any mutation.
func resolveProject(fs filesystem.FileSystem, cmd *cobra.Command) (string, *config.ProjectConfig, error) {
	startDir, err := resolveStartDir(fs, cmd)
	if err != nil {
		return "", nil, err
	}

	root, err := project.Discover(fs, startDir)
	if err != nil {
		return "", nil, err
	}

	cfg, err := config.NewStore(fs).Load(root)
	if err != nil {
		return "", nil, err
	}

	return root, cfg, nil
}

// resolveArgPath makes a path argument absolute against the directory the
// command operates from, so relative paths follow -C rather than the
// process working directory.
func resolveArgPath(fs filesystem.FileSystem, cmd *cobra.Command, path string) (string, error) {
	if filepath.IsAbs(path) || path == "~" || strings.HasPrefix(path, "~/") {
		return absPath(path)
	}

	startDir, err := resolveStartDir(fs, cmd)
	if err != nil {
		return "", err
	}
	return filepath.Join(startDir, path), nil
}

// absPath expands a leading ~ and makes the path absolute.
func absPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to expand ~: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return abs, nil
}
