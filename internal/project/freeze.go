package project

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/raivivek/makebio/internal/filesystem"
	"github.com/raivivek/makebio/internal/logging"
)

// Freeze permission masks: read-only for owner and group, with the sticky
// bit set so only the owning user can reverse the transition. Directories
// additionally keep their traverse bits so the tree stays listable.
const (
	frozenFileMode = os.FileMode(0440) | os.ModeSticky
	frozenDirMode  = os.FileMode(0550) | os.ModeSticky
)

// Guard applies the read-only permission transition. There is no unfreeze:
// reversal is an out-of-band administrative action.
type Guard struct {
	fs filesystem.FileSystem
}

// NewGuard creates a new Guard
func NewGuard(fs filesystem.FileSystem) *Guard {
	return &Guard{fs: fs}
}

// Freeze transitions path to read-only. With recursive, the same
// transition is applied to every descendant as the tree exists right now;
// files added later are not covered.
func (g *Guard) Freeze(path string, recursive bool) (int, error) {
	log := logging.GetLogger("freeze")

	info, err := g.fs.Stat(path)
	if err != nil {
		return 0, &NotFoundError{Path: path}
	}

	if !recursive || !info.IsDir() {
		if err := g.freezeOne(path, info.IsDir()); err != nil {
			return 0, err
		}
		return 1, nil
	}

	// Children first: once a directory is read-only, chmod of its entries
	// still works, but ordering leaf-up keeps the walk independent of it.
	var paths []string
	err = g.fs.WalkDir(path, func(p string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		paths = append(paths, p)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to walk %s: %w", path, err)
	}

	frozen := 0
	for i := len(paths) - 1; i >= 0; i-- {
		p := paths[i]
		pi, err := g.fs.Lstat(p)
		if err != nil {
			return frozen, fmt.Errorf("failed to stat %s: %w", p, err)
		}
		if pi.Mode()&fs.ModeSymlink != 0 {
			// Chmod would follow the link out of the tree being frozen.
			continue
		}
		if err := g.freezeOne(p, pi.IsDir()); err != nil {
			return frozen, err
		}
		frozen++
	}

	log.Debug().Str("path", path).Int("frozen", frozen).Msg("tree frozen")
	return frozen, nil
}

func (g *Guard) freezeOne(path string, isDir bool) error {
	mode := frozenFileMode
	if isDir {
		mode = frozenDirMode
	}
	if err := g.fs.Chmod(path, mode); err != nil {
		return fmt.Errorf("failed to freeze %s: %w", path, err)
	}
	return nil
}
