package project

import (
	"path/filepath"
)

// Canonical skeleton directories under the project root. control holds the
// lightweight per-entry metadata and scripts; work and data are symlinks
// into the scratch tree.
const (
	ControlDir   = "control"
	NotebooksDir = "notebooks"
	BinDir       = "bin"
	SrcDir       = "src"
	WorkDir      = "work"
	DataDir      = "data"
)

// Layout resolves the fixed paths of a project from its root.
type Layout struct {
	Root string
}

func NewLayout(root string) Layout {
	return Layout{Root: root}
}

func (l Layout) Control() string   { return filepath.Join(l.Root, ControlDir) }
func (l Layout) Notebooks() string { return filepath.Join(l.Root, NotebooksDir) }
func (l Layout) Bin() string       { return filepath.Join(l.Root, BinDir) }
func (l Layout) Src() string       { return filepath.Join(l.Root, SrcDir) }
func (l Layout) Work() string      { return filepath.Join(l.Root, WorkDir) }
func (l Layout) Data() string      { return filepath.Join(l.Root, DataDir) }

func (l Layout) ControlEntry(name string) string {
	return filepath.Join(l.Control(), name)
}

func (l Layout) WorkEntry(name string) string {
	return filepath.Join(l.Work(), name)
}

func (l Layout) DataEntry(name string) string {
	return filepath.Join(l.Data(), name)
}

// ScratchLayout resolves the scratch-tree paths for a project named name
// under the linkto root.
type ScratchLayout struct {
	LinkTo string
	Name   string
}

func NewScratchLayout(linkto, name string) ScratchLayout {
	return ScratchLayout{LinkTo: linkto, Name: name}
}

func (s ScratchLayout) Root() string { return filepath.Join(s.LinkTo, s.Name) }
func (s ScratchLayout) Work() string { return filepath.Join(s.Root(), WorkDir) }
func (s ScratchLayout) Data() string { return filepath.Join(s.Root(), DataDir) }
