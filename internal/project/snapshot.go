package project

import (
	"bytes"
	"fmt"
	"path/filepath"
	"time"

	gitignore "github.com/denormal/go-gitignore"

	"github.com/raivivek/makebio/internal/config"
	"github.com/raivivek/makebio/internal/filesystem"
	"github.com/raivivek/makebio/internal/git"
	"github.com/raivivek/makebio/internal/logging"
)

// Synchronizer drives the version-control tool to commit pending changes
// and records the resulting revision identifier back into the config.
type Synchronizer struct {
	fs    filesystem.FileSystem
	git   git.Client
	store *config.Store
}

// NewSynchronizer creates a new Synchronizer
func NewSynchronizer(fs filesystem.FileSystem, gitClient git.Client, store *config.Store) *Synchronizer {
	return &Synchronizer{
		fs:    fs,
		git:   gitClient,
		store: store,
	}
}

// SaveResult reports a successful snapshot.
type SaveResult struct {
	Commit   string
	Message  string
	Changes  int
	Warnings []string
}

// Save commits every pending change under root and advances
// metadata.last_commit to the new head. A clean tree yields ErrNothingToDo
// and no commit; last_commit is only ever set to a revision produced by a
// commit this call actually made.
func (s *Synchronizer) Save(root string, now time.Time) (*SaveResult, error) {
	log := logging.GetLogger("snapshot")

	// Fail fast on a missing or broken config before touching git.
	cfg, err := s.store.Load(root)
	if err != nil {
		return nil, err
	}

	isRepo, err := s.git.IsRepo(root)
	if err != nil {
		return nil, &ExternalToolError{Tool: "git", Err: err}
	}
	if !isRepo {
		if err := s.git.Init(root); err != nil {
			return nil, &ExternalToolError{Tool: "git", Err: err}
		}
		log.Info().Str("root", root).Msg("initialized version control")
	}

	changes, err := s.git.Status(root)
	if err != nil {
		return nil, &ExternalToolError{Tool: "git", Err: err}
	}
	if len(changes) == 0 {
		return nil, ErrNothingToDo
	}

	result := &SaveResult{
		Changes:  len(changes),
		Warnings: s.checkScratchIgnored(root),
	}

	if err := s.git.StageAll(root); err != nil {
		return nil, &ExternalToolError{Tool: "git", Err: err}
	}

	result.Message = "Snapshot " + now.Format("2006-01-02 15:04")
	if err := s.git.Commit(root, result.Message); err != nil {
		return nil, &ExternalToolError{Tool: "git", Err: err}
	}

	head, err := s.git.Head(root)
	if err != nil {
		return nil, &ExternalToolError{Tool: "git", Err: err}
	}
	result.Commit = head

	cfg.Metadata.LastCommit = head
	if err := s.store.Save(root, cfg); err != nil {
		return nil, err
	}

	log.Debug().Str("commit", head).Int("changes", result.Changes).Msg("snapshot saved")
	return result, nil
}

// RefreshResult reports a last_commit reconciliation.
type RefreshResult struct {
	Previous string
	Current  string
	Changed  bool
}

// Refresh reconciles metadata.last_commit with the repository's actual
// head, picking up commits made outside this tool. A never-synchronized
// project is not guessed at; save must run first.
func (s *Synchronizer) Refresh(root string) (*RefreshResult, error) {
	cfg, err := s.store.Load(root)
	if err != nil {
		return nil, err
	}

	if !cfg.Synchronized() {
		return nil, fmt.Errorf("no snapshot recorded yet, run save first")
	}

	head, err := s.git.Head(root)
	if err != nil {
		return nil, &ExternalToolError{Tool: "git", Err: err}
	}

	result := &RefreshResult{
		Previous: cfg.Metadata.LastCommit,
		Current:  head,
		Changed:  head != cfg.Metadata.LastCommit,
	}

	if result.Changed {
		cfg.Metadata.LastCommit = head
		if err := s.store.Save(root, cfg); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// checkScratchIgnored warns when the work/data symlinks are not covered by
// the ignore rules: committing through them would pull bulk scratch data
// into the repository.
func (s *Synchronizer) checkScratchIgnored(root string) []string {
	ignorePath := filepath.Join(root, ".gitignore")
	data, err := s.fs.ReadFile(ignorePath)
	if err != nil {
		return []string{fmt.Sprintf("no .gitignore at %s; work/ and data/ may get committed", root)}
	}

	ignore := gitignore.New(bytes.NewReader(data), root, nil)

	var warnings []string
	for _, name := range []string{WorkDir, DataDir} {
		match := ignore.Relative(name, false)
		if match == nil || !match.Ignore() {
			warnings = append(warnings, fmt.Sprintf("%s/ is not ignored by %s", name, ignorePath))
		}
	}
	return warnings
}
