package git_test

import (
	"context"
	"errors"
	"testing"

	"github.com/raivivek/makebio/internal/git"
)

func TestMockClient_InitAndIsRepo(t *testing.T) {
	mock := git.NewMockClient()

	isRepo, err := mock.IsRepo("/proj")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if isRepo {
		t.Error("expected no repository before init")
	}

	if err := mock.Init("/proj"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	isRepo, err = mock.IsRepo("/proj")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !isRepo {
		t.Error("expected a repository after init")
	}

	// Re-init is a no-op, not an error.
	mock.SetDirty("/proj", "?? a.txt")
	if err := mock.Init("/proj"); err != nil {
		t.Fatalf("expected re-init to be a no-op, got %v", err)
	}
	changes, _ := mock.Status("/proj")
	if len(changes) != 1 {
		t.Error("expected re-init to keep existing state")
	}
}

func TestMockClient_StageCommitHead(t *testing.T) {
	mock := git.NewMockClient()
	mock.Init("/proj")

	// Nothing staged or dirty: commit fails.
	if err := mock.Commit("/proj", "empty"); err == nil {
		t.Error("expected commit of a clean tree to fail")
	}

	mock.SetDirty("/proj", " M a.txt", "?? b.txt")
	if err := mock.StageAll("/proj"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := mock.Commit("/proj", "Snapshot 2019-04-20 10:30"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// The tree is clean afterwards.
	changes, err := mock.Status("/proj")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(changes) != 0 {
		t.Errorf("expected clean tree, got %v", changes)
	}

	head, err := mock.Head("/proj")
	if err != nil {
		t.Fatalf("expected a head, got %v", err)
	}
	if head == "" {
		t.Error("expected a commit hash")
	}
}

func TestMockClient_HeadWithoutCommits(t *testing.T) {
	mock := git.NewMockClient()
	mock.Init("/proj")

	if _, err := mock.Head("/proj"); err == nil {
		t.Error("expected an error for an unborn head")
	}
}

func TestMockClient_LogNewestFirst(t *testing.T) {
	mock := git.NewMockClient()
	first := mock.AddCommit("/proj", "first")
	second := mock.AddCommit("/proj", "second")
	third := mock.AddCommit("/proj", "third")

	commits, err := mock.Log("/proj", 2)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(commits) != 2 {
		t.Fatalf("expected 2 commits, got %d", len(commits))
	}
	if commits[0].Hash != third || commits[1].Hash != second {
		t.Errorf("expected newest first, got %v", commits)
	}
	if commits[0].Subject != "third" {
		t.Errorf("expected subject third, got %s", commits[0].Subject)
	}
	_ = first
}

func TestMockClient_RemotesAndPush(t *testing.T) {
	mock := git.NewMockClient()
	mock.AddCommit("/proj", "initial")

	// Push without a remote fails.
	if err := mock.Push("/proj", "origin", "HEAD"); err == nil {
		t.Error("expected push to an unknown remote to fail")
	}

	if err := mock.AddRemote("/proj", "origin", "https://github.com/u/r.git"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := mock.AddRemote("/proj", "origin", "https://elsewhere"); err == nil {
		t.Error("expected duplicate remote to fail")
	}

	if err := mock.Push("/proj", "origin", "HEAD"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	repo := mock.Repo("/proj")
	if len(repo.Pushed) != 1 || repo.Pushed[0] != "origin HEAD" {
		t.Errorf("expected pushed record, got %v", repo.Pushed)
	}
}

func TestMockClient_WithContextSharesState(t *testing.T) {
	mock := git.NewMockClient()
	mock.Init("/proj")

	scoped := mock.WithContext(context.Background())
	if err := scoped.Init("/other"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Visible through the original client too.
	isRepo, _ := mock.IsRepo("/other")
	if !isRepo {
		t.Error("expected repository state to be shared across contexts")
	}
}

func TestMockClient_ErrorHooks(t *testing.T) {
	mock := git.NewMockClient()
	mock.Init("/proj")
	mock.SetDirty("/proj", "?? a.txt")

	hookErr := errors.New("expected failure")
	mock.CommitError = hookErr
	mock.StageAll("/proj")
	if err := mock.Commit("/proj", "msg"); !errors.Is(err, hookErr) {
		t.Errorf("expected hook error, got %v", err)
	}
}
