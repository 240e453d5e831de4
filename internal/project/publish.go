package project

import (
	"context"
	"fmt"

	"github.com/raivivek/makebio/internal/config"
	"github.com/raivivek/makebio/internal/filesystem"
	"github.com/raivivek/makebio/internal/git"
	"github.com/raivivek/makebio/internal/github"
	"github.com/raivivek/makebio/internal/logging"
)

// Publisher creates the remote GitHub repository for a project and pushes
// the local history to it.
type Publisher struct {
	fs    filesystem.FileSystem
	git   git.Client
	gh    github.Client
	store *config.Store
}

// NewPublisher creates a new Publisher
func NewPublisher(fs filesystem.FileSystem, gitClient git.Client, gh github.Client, store *config.Store) *Publisher {
	return &Publisher{
		fs:    fs,
		git:   gitClient,
		gh:    gh,
		store: store,
	}
}

// PublishResult reports a successful publish.
type PublishResult struct {
	Repo   *github.Repository
	Commit string
}

// Publish creates a repository named after the project under the
// authenticated user, registers it as origin and pushes HEAD. The project
// must have at least one snapshot; nothing is guessed about unborn
// histories.
func (p *Publisher) Publish(ctx context.Context, root string, private bool) (*PublishResult, error) {
	log := logging.GetLogger("publish")

	cfg, err := p.store.Load(root)
	if err != nil {
		return nil, err
	}

	isRepo, err := p.git.IsRepo(root)
	if err != nil {
		return nil, &ExternalToolError{Tool: "git", Err: err}
	}
	if !isRepo {
		return nil, fmt.Errorf("%s is not under version control, run save first", root)
	}

	head, err := p.git.Head(root)
	if err != nil {
		return nil, &ExternalToolError{Tool: "git", Err: err}
	}

	login, err := p.gh.GetAuthenticatedUser(ctx)
	if err != nil {
		return nil, &ExternalToolError{Tool: "github", Err: err}
	}

	// A lookup error means the repository does not exist yet.
	if _, err := p.gh.GetRepository(ctx, login, cfg.Name); err == nil {
		return nil, &ExternalToolError{
			Tool: "github",
			Err:  fmt.Errorf("repository %s/%s already exists", login, cfg.Name),
		}
	}

	repo, err := p.gh.CreateRepository(ctx, &github.CreateRepositoryRequest{
		Name:        cfg.Name,
		Description: fmt.Sprintf("Research project %s (scaffolded with makebio)", cfg.Name),
		Private:     private,
	})
	if err != nil {
		return nil, &ExternalToolError{Tool: "github", Err: err}
	}
	log.Info().Str("repo", repo.FullName).Msg("created remote repository")

	if err := p.git.AddRemote(root, "origin", repo.CloneURL); err != nil {
		return nil, &ExternalToolError{Tool: "git", Err: err}
	}
	if err := p.git.Push(root, "origin", "HEAD"); err != nil {
		return nil, &ExternalToolError{Tool: "git", Err: err}
	}

	return &PublishResult{Repo: repo, Commit: head}, nil
}
