package project_test

import (
	"testing"
	"time"

	"github.com/raivivek/makebio/internal/config"
	"github.com/raivivek/makebio/internal/filesystem"
	"github.com/raivivek/makebio/internal/git"
	"github.com/raivivek/makebio/internal/project"
)

const (
	testRoot    = "/home/vivek/projects/tcell"
	testLinkTo  = "/scratch/vivek"
	testScratch = "/scratch/vivek/tcell"
)

var testTime = time.Date(2019, 4, 20, 10, 30, 0, 0, time.UTC)

// newTestProject initializes a full project skeleton on a mock filesystem
// and a mock git client, the way init would.
func newTestProject(t *testing.T, initGit bool) (*filesystem.MockFileSystem, *git.MockClient) {
	t.Helper()

	fs := filesystem.NewMockFileSystem()
	gitClient := git.NewMockClient()

	provisioner := project.NewProvisioner(fs, gitClient, config.NewStore(fs))
	result, err := provisioner.Initialize(project.InitOptions{
		Src:     testRoot,
		LinkTo:  testLinkTo,
		Author:  "Vivek Rai",
		Email:   "vivek@example.org",
		InitGit: initGit,
		Now:     testTime,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.GitWarning != nil {
		t.Fatalf("expected no git warning, got %v", result.GitWarning)
	}

	return fs, gitClient
}
