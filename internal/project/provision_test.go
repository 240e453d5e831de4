package project_test

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raivivek/makebio/internal/config"
	"github.com/raivivek/makebio/internal/filesystem"
	"github.com/raivivek/makebio/internal/git"
	"github.com/raivivek/makebio/internal/project"
)

func TestInitialize_CreatesSkeleton(t *testing.T) {
	fs, _ := newTestProject(t, true)

	// Home tree.
	for _, dir := range []string{"control", "notebooks", "bin", "src"} {
		if !fs.Exists(filepath.Join(testRoot, dir)) {
			t.Errorf("expected %s to exist", dir)
		}
	}

	// Scratch targets.
	if !fs.Exists(filepath.Join(testScratch, "work")) {
		t.Error("expected scratch work target to exist")
	}
	if !fs.Exists(filepath.Join(testScratch, "data")) {
		t.Error("expected scratch data target to exist")
	}

	// Symlinks point into the scratch tree.
	target, err := fs.Readlink(filepath.Join(testRoot, "work"))
	if err != nil {
		t.Fatalf("expected work to be a symlink, got %v", err)
	}
	if target != filepath.Join(testScratch, "work") {
		t.Errorf("expected work -> %s, got %s", filepath.Join(testScratch, "work"), target)
	}

	target, err = fs.Readlink(filepath.Join(testRoot, "data"))
	if err != nil {
		t.Fatalf("expected data to be a symlink, got %v", err)
	}
	if target != filepath.Join(testScratch, "data") {
		t.Errorf("expected data -> %s, got %s", filepath.Join(testScratch, "data"), target)
	}

	if !fs.Exists(filepath.Join(testRoot, "README.md")) {
		t.Error("expected README.md to exist")
	}
}

func TestInitialize_WritesConfig(t *testing.T) {
	fs, _ := newTestProject(t, true)

	cfg, err := config.NewStore(fs).Load(testRoot)
	if err != nil {
		t.Fatalf("expected config to load, got %v", err)
	}

	if cfg.Name != "tcell" {
		t.Errorf("expected name tcell, got %s", cfg.Name)
	}
	if cfg.Author != "Vivek Rai" {
		t.Errorf("expected author Vivek Rai, got %s", cfg.Author)
	}
	if cfg.Params.Root != testRoot {
		t.Errorf("expected root %s, got %s", testRoot, cfg.Params.Root)
	}
	if cfg.Params.LinkTo != testLinkTo {
		t.Errorf("expected linkto %s, got %s", testLinkTo, cfg.Params.LinkTo)
	}
	if cfg.Metadata.Version != config.Version {
		t.Errorf("expected version %s, got %s", config.Version, cfg.Metadata.Version)
	}
	if cfg.Metadata.CreatedOn != "2019-04-20" {
		t.Errorf("expected created_on 2019-04-20, got %s", cfg.Metadata.CreatedOn)
	}
	if cfg.Metadata.LastCommit != config.NoCommit {
		t.Errorf("expected last_commit %s, got %s", config.NoCommit, cfg.Metadata.LastCommit)
	}
	if cfg.Synchronized() {
		t.Error("expected fresh project to be unsynchronized")
	}
}

func TestInitialize_WithGitMakesInitialCommit(t *testing.T) {
	fs, gitClient := newTestProject(t, true)

	if !fs.Exists(filepath.Join(testRoot, ".gitignore")) {
		t.Error("expected .gitignore to exist")
	}

	repo := gitClient.Repo(testRoot)
	if repo == nil {
		t.Fatal("expected a repository at the project root")
	}
	if len(repo.Commits) != 1 {
		t.Fatalf("expected 1 commit, got %d", len(repo.Commits))
	}
	if repo.Commits[0].Subject != "Initial scaffold" {
		t.Errorf("expected initial commit subject, got %q", repo.Commits[0].Subject)
	}
}

func TestInitialize_WithoutGit(t *testing.T) {
	fs, gitClient := newTestProject(t, false)

	if fs.Exists(filepath.Join(testRoot, ".gitignore")) {
		t.Error("expected no .gitignore")
	}
	if gitClient.Repo(testRoot) != nil {
		t.Error("expected no repository")
	}
}

func TestInitialize_GitFailureIsNonFatal(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	gitClient := git.NewMockClient()
	gitClient.InitError = fmt.Errorf("git: command not found")

	provisioner := project.NewProvisioner(fs, gitClient, config.NewStore(fs))
	result, err := provisioner.Initialize(project.InitOptions{
		Src:     testRoot,
		LinkTo:  testLinkTo,
		Author:  "Vivek Rai",
		InitGit: true,
		Now:     testTime,
	})
	if err != nil {
		t.Fatalf("expected scaffold to succeed, got %v", err)
	}
	if result.GitWarning == nil {
		t.Fatal("expected a git warning")
	}

	var toolErr *project.ExternalToolError
	if !errors.As(result.GitWarning, &toolErr) {
		t.Fatalf("expected ExternalToolError, got %T", result.GitWarning)
	}
	if toolErr.Tool != "git" {
		t.Errorf("expected tool git, got %s", toolErr.Tool)
	}

	// The scaffold itself is intact.
	if _, err := config.NewStore(fs).Load(testRoot); err != nil {
		t.Errorf("expected config to load, got %v", err)
	}
}

func TestInitialize_ExistingRootFails(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir(testRoot)

	provisioner := project.NewProvisioner(fs, git.NewMockClient(), config.NewStore(fs))
	_, err := provisioner.Initialize(project.InitOptions{
		Src:    testRoot,
		LinkTo: testLinkTo,
		Now:    testTime,
	})

	var existsErr *project.AlreadyExistsError
	if !errors.As(err, &existsErr) {
		t.Fatalf("expected AlreadyExistsError, got %v", err)
	}
	if existsErr.Path != testRoot {
		t.Errorf("expected path %s, got %s", testRoot, existsErr.Path)
	}
}

func TestInitialize_ExistingScratchFails(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir(testScratch)

	provisioner := project.NewProvisioner(fs, git.NewMockClient(), config.NewStore(fs))
	_, err := provisioner.Initialize(project.InitOptions{
		Src:    testRoot,
		LinkTo: testLinkTo,
		Now:    testTime,
	})

	var existsErr *project.AlreadyExistsError
	if !errors.As(err, &existsErr) {
		t.Fatalf("expected AlreadyExistsError, got %v", err)
	}
	if !strings.HasPrefix(existsErr.Path, testLinkTo) {
		t.Errorf("expected scratch path, got %s", existsErr.Path)
	}
}
