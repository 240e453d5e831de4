package github

import (
	"context"
)

// Client provides an abstraction over the GitHub API operations needed to
// publish a project.
type Client interface {
	// GetAuthenticatedUser returns the login of the token's owner.
	GetAuthenticatedUser(ctx context.Context) (string, error)

	// GetRepository fetches an existing repository, or an error if it does
	// not exist or is not visible to the token.
	GetRepository(ctx context.Context, owner, repo string) (*Repository, error)

	// CreateRepository creates a repository under the authenticated user.
	CreateRepository(ctx context.Context, req *CreateRepositoryRequest) (*Repository, error)
}

// Repository represents a GitHub repository
type Repository struct {
	Owner         string
	Name          string
	FullName      string
	CloneURL      string
	HTMLURL       string
	Private       bool
	DefaultBranch string
}

// CreateRepositoryRequest represents a request to create a repository
type CreateRepositoryRequest struct {
	Name        string
	Description string
	Private     bool
}
