package project_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/raivivek/makebio/internal/config"
	"github.com/raivivek/makebio/internal/project"
)

func TestDiscover_FromRoot(t *testing.T) {
	fs, _ := newTestProject(t, true)

	root, err := project.Discover(fs, testRoot)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if root != testRoot {
		t.Errorf("expected %s, got %s", testRoot, root)
	}
}

func TestDiscover_WalksUp(t *testing.T) {
	fs, _ := newTestProject(t, true)

	nested := filepath.Join(testRoot, "control", "2019-04-20_createTracks")
	fs.AddDir(nested)

	root, err := project.Discover(fs, nested)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if root != testRoot {
		t.Errorf("expected %s, got %s", testRoot, root)
	}
}

func TestDiscover_OutsideAnyProject(t *testing.T) {
	fs, _ := newTestProject(t, true)

	_, err := project.Discover(fs, "/tmp/somewhere")
	if !errors.Is(err, config.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
