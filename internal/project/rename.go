package project

import (
	"fmt"
	"path/filepath"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/raivivek/makebio/internal/filesystem"
	"github.com/raivivek/makebio/internal/logging"
)

// RenameStep is one mutation a rename will perform. Op is either "rename"
// or "relink".
type RenameStep struct {
	Op   string
	From string
	To   string
}

// RenamePlan lists the steps of a rename in execution order. Dry runs
// return the plan without touching the filesystem.
type RenamePlan struct {
	Steps []RenameStep
}

// Renamer relocates an existing analysis entry's directory pair and
// repairs its control-side symlink.
type Renamer struct {
	fs filesystem.FileSystem
}

// NewRenamer creates a new Renamer
func NewRenamer(fs filesystem.FileSystem) *Renamer {
	return &Renamer{fs: fs}
}

// Rename moves control/oldName and work/oldName to newName and rebuilds
// the work symlink inside the renamed control directory. With dryRun the
// returned plan describes what would happen and nothing is mutated.
//
// Both directory renames complete before the symlink is rebuilt; doing it
// in any other order would leave the link dangling or pointing at the
// stale path. If the second rename fails the first is reverted.
func (r *Renamer) Rename(root, oldName, newName string, dryRun bool) (*RenamePlan, error) {
	log := logging.GetLogger("rename")

	if err := validateEntryName(newName); err != nil {
		return nil, err
	}

	layout := NewLayout(root)
	oldControl := layout.ControlEntry(oldName)
	newControl := layout.ControlEntry(newName)
	oldWork := layout.WorkEntry(oldName)
	newWork := layout.WorkEntry(newName)

	// Preconditions, checked before any mutation. Both halves of the pair
	// must exist; a data entry or an orphaned control directory has no
	// work/<name> and cannot be renamed here.
	if !r.fs.Exists(oldControl) {
		return nil, &NotFoundError{Path: oldControl}
	}
	if !r.fs.Exists(oldWork) {
		return nil, &NotFoundError{Path: oldWork}
	}
	if r.fs.Exists(newControl) {
		return nil, &AlreadyExistsError{Path: newControl}
	}
	if r.fs.Exists(newWork) {
		return nil, &AlreadyExistsError{Path: newWork}
	}

	plan := &RenamePlan{
		Steps: []RenameStep{
			{Op: "rename", From: oldControl, To: newControl},
			{Op: "rename", From: oldWork, To: newWork},
			{Op: "relink", From: filepath.Join(newControl, WorkDir), To: newWork},
		},
	}

	if dryRun {
		return plan, nil
	}

	if err := r.fs.Rename(oldControl, newControl); err != nil {
		return nil, fmt.Errorf("failed to rename %s: %w", oldControl, err)
	}

	if err := r.fs.Rename(oldWork, newWork); err != nil {
		// Revert the control rename so the pair stays consistent.
		if revertErr := r.fs.Rename(newControl, oldControl); revertErr != nil {
			log.Warn().Err(revertErr).Str("path", newControl).Msg("revert failed")
		}
		return nil, fmt.Errorf("failed to rename %s: %w", oldWork, err)
	}

	if err := r.relink(filepath.Join(newControl, WorkDir), newWork); err != nil {
		return nil, err
	}

	log.Debug().Str("from", oldName).Str("to", newName).Msg("entry renamed")
	return plan, nil
}

// relink points link at target, replacing any prior link atomically: the
// new link is created under a unique temporary name, then renamed over.
func (r *Renamer) relink(link, target string) error {
	suffix, err := gonanoid.Generate("0123456789abcdefghijklmnopqrstuvwxyz", 8)
	if err != nil {
		return fmt.Errorf("failed to generate temp link name: %w", err)
	}

	tmp := filepath.Join(filepath.Dir(link), "."+filepath.Base(link)+"."+suffix+".tmp")
	if err := r.fs.Symlink(target, tmp); err != nil {
		return fmt.Errorf("failed to create %s: %w", tmp, err)
	}

	if err := r.fs.Rename(tmp, link); err != nil {
		if rmErr := r.fs.Remove(tmp); rmErr != nil {
			log := logging.GetLogger("rename")
			log.Warn().Err(rmErr).Str("path", tmp).Msg("temp link cleanup failed")
		}
		return fmt.Errorf("failed to replace %s: %w", link, err)
	}

	return nil
}
