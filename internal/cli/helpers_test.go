package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/raivivek/makebio/internal/config"
	"github.com/raivivek/makebio/internal/filesystem"
	"github.com/raivivek/makebio/internal/git"
	"github.com/raivivek/makebio/internal/github"
	"github.com/raivivek/makebio/internal/project"
)

const (
	testProjectRoot = "/home/vivek/projects/tcell"
	testLinkTo      = "/scratch/vivek"
)

var testClock = time.Date(2019, 4, 20, 10, 30, 0, 0, time.UTC)

// runCommand executes the CLI against mock collaborators and returns the
// combined output.
func runCommand(t *testing.T, fs filesystem.FileSystem, gitClient git.Client, ghClient github.Client, args ...string) (string, error) {
	t.Helper()

	root := NewRootCommand(fs, gitClient, ghClient)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

// seedProject provisions a ready-made project, bypassing the interactive
// init path.
func seedProject(t *testing.T) (*filesystem.MockFileSystem, *git.MockClient) {
	t.Helper()

	fs := filesystem.NewMockFileSystem()
	gitClient := git.NewMockClient()
	fs.SetWorkingDir(testProjectRoot)

	provisioner := project.NewProvisioner(fs, gitClient, config.NewStore(fs))
	_, err := provisioner.Initialize(project.InitOptions{
		Src:     testProjectRoot,
		LinkTo:  testLinkTo,
		Author:  "Vivek Rai",
		Email:   "vivek@example.org",
		InitGit: true,
		Now:     testClock,
	})
	if err != nil {
		t.Fatalf("expected project setup to succeed, got %v", err)
	}

	return fs, gitClient
}
