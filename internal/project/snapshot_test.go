package project_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/raivivek/makebio/internal/config"
	"github.com/raivivek/makebio/internal/project"
)

func TestSave_CleanTree(t *testing.T) {
	fs, gitClient := newTestProject(t, true)

	syncer := project.NewSynchronizer(fs, gitClient, config.NewStore(fs))
	_, err := syncer.Save(testRoot, testTime)
	if !errors.Is(err, project.ErrNothingToDo) {
		t.Fatalf("expected ErrNothingToDo, got %v", err)
	}
}

func TestSave_CommitsAndRecordsHead(t *testing.T) {
	fs, gitClient := newTestProject(t, true)
	gitClient.SetDirty(testRoot, " M control/2019-04-20_createTracks/entry.md", "?? notebooks/explore.ipynb")

	store := config.NewStore(fs)
	syncer := project.NewSynchronizer(fs, gitClient, store)

	result, err := syncer.Save(testRoot, testTime)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result.Changes != 2 {
		t.Errorf("expected 2 changes, got %d", result.Changes)
	}
	if result.Message != "Snapshot 2019-04-20 10:30" {
		t.Errorf("unexpected commit message %q", result.Message)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("expected no warnings with the packaged .gitignore, got %v", result.Warnings)
	}

	head, err := gitClient.Head(testRoot)
	if err != nil {
		t.Fatalf("expected a head commit, got %v", err)
	}
	if result.Commit != head {
		t.Errorf("expected result commit %s to match head %s", result.Commit, head)
	}

	// last_commit advanced on disk.
	cfg, err := store.Load(testRoot)
	if err != nil {
		t.Fatalf("expected config to load, got %v", err)
	}
	if cfg.Metadata.LastCommit != head {
		t.Errorf("expected last_commit %s, got %s", head, cfg.Metadata.LastCommit)
	}
	if !cfg.Synchronized() {
		t.Error("expected project to be synchronized after save")
	}
}

func TestSave_WorksWithoutInitGit(t *testing.T) {
	fs, gitClient := newTestProject(t, false)

	// Repo initialized out of band, after a no-git init.
	if err := gitClient.Init(testRoot); err != nil {
		t.Fatalf("expected init to succeed, got %v", err)
	}
	gitClient.SetDirty(testRoot, "?? README.md")

	syncer := project.NewSynchronizer(fs, gitClient, config.NewStore(fs))
	result, err := syncer.Save(testRoot, testTime)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Commit == "" {
		t.Error("expected a commit hash")
	}
}

func TestSave_WarnsWhenScratchNotIgnored(t *testing.T) {
	fs, gitClient := newTestProject(t, false)

	if err := gitClient.Init(testRoot); err != nil {
		t.Fatalf("expected init to succeed, got %v", err)
	}
	gitClient.SetDirty(testRoot, "?? README.md")

	// No .gitignore was written; work/ and data/ are exposed.
	syncer := project.NewSynchronizer(fs, gitClient, config.NewStore(fs))
	result, err := syncer.Save(testRoot, testTime)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(result.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", result.Warnings)
	}
	if !strings.Contains(result.Warnings[0], ".gitignore") {
		t.Errorf("expected a .gitignore warning, got %q", result.Warnings[0])
	}
}

func TestSave_OutsideProject(t *testing.T) {
	fs, gitClient := newTestProject(t, true)

	syncer := project.NewSynchronizer(fs, gitClient, config.NewStore(fs))
	_, err := syncer.Save("/home/vivek/elsewhere", testTime)
	if !errors.Is(err, config.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestRefresh_PicksUpOutOfBandCommits(t *testing.T) {
	fs, gitClient := newTestProject(t, true)
	gitClient.SetDirty(testRoot, "?? notebooks/explore.ipynb")

	store := config.NewStore(fs)
	syncer := project.NewSynchronizer(fs, gitClient, store)

	saved, err := syncer.Save(testRoot, testTime)
	if err != nil {
		t.Fatalf("expected save to succeed, got %v", err)
	}

	// A commit made with plain git, bypassing save.
	external := gitClient.AddCommit(testRoot, "Tweak clustering parameters")

	result, err := syncer.Refresh(testRoot)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !result.Changed {
		t.Error("expected refresh to detect the new head")
	}
	if result.Previous != saved.Commit {
		t.Errorf("expected previous %s, got %s", saved.Commit, result.Previous)
	}
	if result.Current != external {
		t.Errorf("expected current %s, got %s", external, result.Current)
	}

	cfg, err := store.Load(testRoot)
	if err != nil {
		t.Fatalf("expected config to load, got %v", err)
	}
	if cfg.Metadata.LastCommit != external {
		t.Errorf("expected last_commit %s, got %s", external, cfg.Metadata.LastCommit)
	}
}

func TestRefresh_NoOpWhenInSync(t *testing.T) {
	fs, gitClient := newTestProject(t, true)
	gitClient.SetDirty(testRoot, "?? notebooks/explore.ipynb")

	syncer := project.NewSynchronizer(fs, gitClient, config.NewStore(fs))
	if _, err := syncer.Save(testRoot, testTime); err != nil {
		t.Fatalf("expected save to succeed, got %v", err)
	}

	result, err := syncer.Refresh(testRoot)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Changed {
		t.Error("expected no change")
	}
}

func TestRefresh_RequiresPriorSnapshot(t *testing.T) {
	fs, gitClient := newTestProject(t, true)

	syncer := project.NewSynchronizer(fs, gitClient, config.NewStore(fs))
	if _, err := syncer.Refresh(testRoot); err == nil {
		t.Fatal("expected an error for a never-synchronized project")
	}
}
