// Package scaffold holds the packaged template assets copied into a project
// at initialization.
package scaffold

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/raivivek/makebio/internal/filesystem"
)

//go:embed assets/gitignore
var gitignoreAsset []byte

//go:embed assets/README.md.tmpl
var readmeAsset string

// ReadmeData feeds the README template.
type ReadmeData struct {
	Name        string
	Author      string
	Email       string
	CreatedOn   string
	ScratchRoot string
}

// WriteGitignore copies the packaged ignore file into root.
func WriteGitignore(fs filesystem.FileSystem, root string) error {
	path := filepath.Join(root, ".gitignore")
	if err := fs.WriteFile(path, gitignoreAsset, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriteReadme renders the packaged README template into root.
func WriteReadme(fs filesystem.FileSystem, root string, data ReadmeData) error {
	tmpl, err := template.New("readme").Funcs(sprig.FuncMap()).Parse(readmeAsset)
	if err != nil {
		return fmt.Errorf("failed to parse readme template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render readme template: %w", err)
	}

	path := filepath.Join(root, "README.md")
	if err := fs.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
