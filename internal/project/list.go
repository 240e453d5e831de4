package project

import (
	"bytes"
	"fmt"
	"regexp"
	"sort"

	"github.com/adrg/frontmatter"

	"github.com/raivivek/makebio/internal/filesystem"
	"github.com/raivivek/makebio/internal/logging"
)

var datePrefixPattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})_`)

// Lister enumerates a project's entries from the control tree.
type Lister struct {
	fs filesystem.FileSystem
}

// NewLister creates a new Lister
func NewLister(fs filesystem.FileSystem) *Lister {
	return &Lister{fs: fs}
}

type manifestMatter struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Created  string `yaml:"created"`
}

// Entries returns every entry under root's control directory, oldest
// first. Metadata comes from the entry manifest; entries created by hand
// (or by older revisions of the tool) fall back to what the directory
// name and tree placement imply.
func (l *Lister) Entries(root string) ([]*Entry, error) {
	log := logging.GetLogger("list")
	layout := NewLayout(root)

	dirEntries, err := l.fs.ReadDir(layout.Control())
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", layout.Control(), err)
	}

	var entries []*Entry
	for _, de := range dirEntries {
		if !de.IsDir() {
			continue
		}

		entry := l.entryFromDir(layout, de.Name())
		if entry == nil {
			log.Debug().Str("name", de.Name()).Msg("skipping unrecognized control entry")
			continue
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].CreatedOn != entries[j].CreatedOn {
			return entries[i].CreatedOn < entries[j].CreatedOn
		}
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}

// Latest returns the most recently created entry, or NotFoundError when
// the project has none.
func (l *Lister) Latest(root string) (*Entry, error) {
	entries, err := l.Entries(root)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, &NotFoundError{Path: NewLayout(root).Control()}
	}
	return entries[len(entries)-1], nil
}

func (l *Lister) entryFromDir(layout Layout, name string) *Entry {
	entry := &Entry{
		Name:        name,
		ControlPath: layout.ControlEntry(name),
	}

	if data, err := l.fs.ReadFile(entry.ManifestPath()); err == nil {
		var matter manifestMatter
		if _, err := frontmatter.Parse(bytes.NewReader(data), &matter); err == nil {
			if cat, err := ParseCategory(matter.Category); err == nil {
				entry.Category = cat
			}
			entry.CreatedOn = matter.Created
		}
	}

	// Back-fill anything the manifest did not provide.
	if entry.Category == "" {
		switch {
		case l.fs.Exists(layout.WorkEntry(name)):
			entry.Category = CategoryAnalysis
		case l.fs.Exists(layout.DataEntry(name)):
			entry.Category = CategoryData
		default:
			return nil
		}
	}
	if entry.CreatedOn == "" {
		if m := datePrefixPattern.FindStringSubmatch(name); m != nil {
			entry.CreatedOn = m[1]
		}
	}

	if entry.Category == CategoryData {
		entry.TreePath = layout.DataEntry(name)
	} else {
		entry.TreePath = layout.WorkEntry(name)
	}

	return entry
}
