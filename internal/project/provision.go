package project

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/raivivek/makebio/internal/config"
	"github.com/raivivek/makebio/internal/filesystem"
	"github.com/raivivek/makebio/internal/git"
	"github.com/raivivek/makebio/internal/logging"
	"github.com/raivivek/makebio/internal/scaffold"
)

// Provisioner creates the canonical directory skeleton and the cross-tree
// symlinks for a new project.
type Provisioner struct {
	fs    filesystem.FileSystem
	git   git.Client
	store *config.Store
}

// NewProvisioner creates a new Provisioner
func NewProvisioner(fs filesystem.FileSystem, gitClient git.Client, store *config.Store) *Provisioner {
	return &Provisioner{
		fs:    fs,
		git:   gitClient,
		store: store,
	}
}

// InitOptions parameterizes Initialize. Src and LinkTo must be absolute.
type InitOptions struct {
	Src     string
	LinkTo  string
	Author  string
	Email   string
	InitGit bool
	Now     time.Time
}

// InitResult reports what Initialize built.
type InitResult struct {
	Root        string
	ScratchRoot string
	Config      *config.ProjectConfig

	// GitWarning carries a non-fatal version-control failure: the scaffold
	// is valid without git, so these are reported, not returned as errors.
	GitWarning error
}

// Initialize builds a new project at opts.Src with its heavy data rooted at
// opts.LinkTo/<name>.
//
// The sequence is deliberately ordered, not transactional: the scratch-side
// targets are created before anything in the home tree so a symlink is
// never pointed at a nonexistent target, and the config document is written
// last so that a partially built tree is never mistaken for a managed
// project. A failed run is retried safely because the preconditions fail
// fast on what the previous run created.
func (p *Provisioner) Initialize(opts InitOptions) (*InitResult, error) {
	log := logging.GetLogger("provision")

	name := filepath.Base(opts.Src)
	scratch := NewScratchLayout(opts.LinkTo, name)
	layout := NewLayout(opts.Src)

	// Preconditions, checked before any mutation.
	if p.fs.Exists(opts.Src) {
		return nil, &AlreadyExistsError{Path: opts.Src}
	}
	if p.fs.Exists(scratch.Root()) {
		return nil, &AlreadyExistsError{Path: scratch.Root()}
	}

	// Scratch-side targets first.
	if err := p.fs.MkdirAll(scratch.Work(), 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", scratch.Work(), err)
	}
	if err := p.fs.MkdirAll(scratch.Data(), 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", scratch.Data(), err)
	}
	log.Debug().Str("scratch", scratch.Root()).Msg("created scratch targets")

	// Home tree. The root is owner-only.
	if parent := filepath.Dir(opts.Src); parent != "/" {
		if err := p.fs.MkdirAll(parent, 0755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", parent, err)
		}
	}
	if err := p.fs.Mkdir(opts.Src, 0700); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", opts.Src, err)
	}
	for _, dir := range []string{layout.Control(), layout.Notebooks(), layout.Bin(), layout.Src()} {
		if err := p.fs.Mkdir(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	// Symlinks last; their targets are guaranteed to exist by now.
	if err := p.fs.Symlink(scratch.Work(), layout.Work()); err != nil {
		return nil, fmt.Errorf("failed to link %s: %w", layout.Work(), err)
	}
	if err := p.fs.Symlink(scratch.Data(), layout.Data()); err != nil {
		return nil, fmt.Errorf("failed to link %s: %w", layout.Data(), err)
	}
	log.Debug().Str("root", opts.Src).Msg("created skeleton")

	createdOn := opts.Now.Format("2006-01-02")
	if err := scaffold.WriteReadme(p.fs, opts.Src, scaffold.ReadmeData{
		Name:        name,
		Author:      opts.Author,
		Email:       opts.Email,
		CreatedOn:   createdOn,
		ScratchRoot: scratch.Root(),
	}); err != nil {
		return nil, err
	}

	cfg := &config.ProjectConfig{
		Author: opts.Author,
		Email:  opts.Email,
		Name:   name,
		Params: config.Params{
			Root:   opts.Src,
			LinkTo: opts.LinkTo,
		},
		Configuration: config.Configuration{
			InitGit: opts.InitGit,
		},
		Metadata: config.Metadata{
			Version:    config.Version,
			CreatedOn:  createdOn,
			LastCommit: config.NoCommit,
		},
	}

	if err := p.store.Save(opts.Src, cfg); err != nil {
		return nil, err
	}

	result := &InitResult{
		Root:        opts.Src,
		ScratchRoot: scratch.Root(),
		Config:      cfg,
	}

	if opts.InitGit {
		result.GitWarning = p.initGit(opts.Src)
		if result.GitWarning != nil {
			log.Warn().Err(result.GitWarning).Msg("version control setup failed")
		}
	}

	return result, nil
}

// initGit writes the packaged ignore file and puts the scaffold under
// version control with an initial commit. Failures here never invalidate
// the scaffold.
func (p *Provisioner) initGit(root string) error {
	if err := scaffold.WriteGitignore(p.fs, root); err != nil {
		return err
	}

	if err := p.git.Init(root); err != nil {
		return &ExternalToolError{Tool: "git", Err: err}
	}

	if err := p.git.StageAll(root); err != nil {
		return &ExternalToolError{Tool: "git", Err: err}
	}
	if err := p.git.Commit(root, "Initial scaffold"); err != nil {
		return &ExternalToolError{Tool: "git", Err: err}
	}

	return nil
}
