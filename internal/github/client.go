package github

import (
	"context"
	"fmt"
	"os"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// APIClient implements Client using the real GitHub API
type APIClient struct {
	client *github.Client
}

var (
	ErrTokenNotFound = fmt.Errorf("GITHUB_TOKEN or GH_TOKEN environment variable not found")
)

// NewClient creates a new GitHub API client
func NewClient(token string) *APIClient {
	ctx := context.Background()
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)

	return &APIClient{
		client: github.NewClient(tc),
	}
}

// NewClientFromEnv creates a GitHub client using the token from environment variables
func NewClientFromEnv() (*APIClient, error) {
	token := os.Getenv("GH_TOKEN")
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}
	if token == "" {
		return nil, ErrTokenNotFound
	}

	return NewClient(token), nil
}

func (c *APIClient) GetAuthenticatedUser(ctx context.Context) (string, error) {
	user, _, err := c.client.Users.Get(ctx, "")
	if err != nil {
		return "", fmt.Errorf("failed to get authenticated user: %w", err)
	}
	return user.GetLogin(), nil
}

func (c *APIClient) GetRepository(ctx context.Context, owner, repo string) (*Repository, error) {
	ghRepo, _, err := c.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("failed to get repository %s/%s: %w", owner, repo, err)
	}
	return convertRepository(ghRepo), nil
}

func (c *APIClient) CreateRepository(ctx context.Context, req *CreateRepositoryRequest) (*Repository, error) {
	ghRepo := &github.Repository{
		Name:        &req.Name,
		Description: &req.Description,
		Private:     &req.Private,
	}

	created, _, err := c.client.Repositories.Create(ctx, "", ghRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to create repository %s: %w", req.Name, err)
	}

	return convertRepository(created), nil
}

func convertRepository(repo *github.Repository) *Repository {
	return &Repository{
		Owner:         repo.GetOwner().GetLogin(),
		Name:          repo.GetName(),
		FullName:      repo.GetFullName(),
		CloneURL:      repo.GetCloneURL(),
		HTMLURL:       repo.GetHTMLURL(),
		Private:       repo.GetPrivate(),
		DefaultBranch: repo.GetDefaultBranch(),
	}
}
