package git

import (
	"context"
)

// Client provides an abstraction over git operations for testability.
//
// Every operation takes the repository root explicitly (implemented with
// `git -C <root>` under the hood) so that no call depends on the process
// working directory.
type Client interface {
	// Repository lifecycle
	Init(root string) error
	IsRepo(root string) (bool, error)

	// Working tree operations
	Status(root string) ([]string, error)
	StageAll(root string) error
	Commit(root, message string) error

	// History operations
	Head(root string) (string, error)
	Log(root string, limit int) ([]Commit, error)

	// Remote operations
	AddRemote(root, name, url string) error
	Push(root, remote, ref string) error

	// Context support for long-running operations
	WithContext(ctx context.Context) Client
}

// Commit is one entry of the repository history.
type Commit struct {
	Hash    string
	Subject string
	Date    string
}
