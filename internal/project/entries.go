package project

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/raivivek/makebio/internal/filesystem"
	"github.com/raivivek/makebio/internal/logging"
)

// Category distinguishes the two kinds of entries a project holds.
type Category string

const (
	CategoryAnalysis Category = "analysis"
	CategoryData     Category = "data"
)

// ParseCategory validates a category string.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryAnalysis, CategoryData:
		return Category(s), nil
	}
	return "", fmt.Errorf("invalid category %q (want analysis or data)", s)
}

// Tree returns the heavy-side directory name for the category: analysis
// entries live under work/, data entries under data/.
func (c Category) Tree() string {
	if c == CategoryData {
		return DataDir
	}
	return WorkDir
}

// Entry is a same-named directory pair: a lightweight half under control/
// and a heavy half under work/ or data/ (through the scratch symlink).
type Entry struct {
	Name        string
	Category    Category
	CreatedOn   string
	ControlPath string
	TreePath    string
}

// ManifestName is the per-entry metadata file written into the control half.
const ManifestName = "entry.md"

// EntryManager creates dated, prefixed entries inside the skeleton.
type EntryManager struct {
	fs filesystem.FileSystem
}

// NewEntryManager creates a new EntryManager
func NewEntryManager(fs filesystem.FileSystem) *EntryManager {
	return &EntryManager{fs: fs}
}

// AddOptions parameterizes AddEntry.
type AddOptions struct {
	Name       string
	Category   Category
	DatePrefix bool
	Now        time.Time
}

// EntryName computes the final directory name for the options.
func (o AddOptions) EntryName() string {
	if o.DatePrefix {
		return o.Now.Format("2006-01-02") + "_" + o.Name
	}
	return o.Name
}

// AddEntry creates both halves of a new entry under root. Either both
// directories (and the manifest) exist afterwards, or none do: completed
// steps are rolled back when a later one fails. An existing entry is never
// merged into.
func (m *EntryManager) AddEntry(root string, opts AddOptions) (*Entry, error) {
	log := logging.GetLogger("entries")

	if err := validateEntryName(opts.Name); err != nil {
		return nil, err
	}
	if _, err := ParseCategory(string(opts.Category)); err != nil {
		return nil, err
	}

	layout := NewLayout(root)
	entryName := opts.EntryName()

	entry := &Entry{
		Name:        entryName,
		Category:    opts.Category,
		CreatedOn:   opts.Now.Format("2006-01-02"),
		ControlPath: layout.ControlEntry(entryName),
	}
	if opts.Category == CategoryData {
		entry.TreePath = layout.DataEntry(entryName)
	} else {
		entry.TreePath = layout.WorkEntry(entryName)
	}

	// The leaf must not exist on either side; parents are created as needed.
	for _, path := range []string{entry.ControlPath, entry.TreePath} {
		if m.fs.Exists(path) {
			return nil, &AlreadyExistsError{Path: path}
		}
	}

	var created []string
	rollback := func() {
		for i := len(created) - 1; i >= 0; i-- {
			if err := m.fs.RemoveAll(created[i]); err != nil {
				log.Warn().Err(err).Str("path", created[i]).Msg("rollback failed")
			}
		}
	}

	for _, path := range []string{entry.ControlPath, entry.TreePath} {
		if err := m.fs.MkdirAll(path, 0755); err != nil {
			rollback()
			return nil, fmt.Errorf("failed to create %s: %w", path, err)
		}
		created = append(created, path)
	}

	if err := m.writeManifest(entry); err != nil {
		rollback()
		return nil, err
	}

	// Convenience link from the lightweight half to the heavy half, so the
	// pair can be traversed from within control/.
	link := filepath.Join(entry.ControlPath, opts.Category.Tree())
	if err := m.fs.Symlink(entry.TreePath, link); err != nil {
		rollback()
		return nil, fmt.Errorf("failed to link %s: %w", link, err)
	}

	log.Debug().Str("entry", entryName).Str("category", string(opts.Category)).Msg("entry created")
	return entry, nil
}

// writeManifest records the entry metadata as YAML frontmatter so listings
// do not have to re-derive it from directory names.
func (m *EntryManager) writeManifest(entry *Entry) error {
	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.WriteString(fmt.Sprintf("name: %s\n", entry.Name))
	buf.WriteString(fmt.Sprintf("category: %s\n", entry.Category))
	buf.WriteString(fmt.Sprintf("created: %s\n", entry.CreatedOn))
	buf.WriteString("---\n\n")
	buf.WriteString(fmt.Sprintf("# %s\n", entry.Name))

	path := entry.ManifestPath()
	if err := m.fs.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}
	return nil
}

// ManifestPath returns the entry's metadata file location.
func (e *Entry) ManifestPath() string {
	return filepath.Join(e.ControlPath, ManifestName)
}

func validateEntryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("entry name cannot be empty")
	}
	if strings.ContainsAny(name, "/\\") {
		return fmt.Errorf("entry name %q cannot contain path separators", name)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("entry name %q is reserved", name)
	}
	return nil
}
