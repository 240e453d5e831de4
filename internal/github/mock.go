package github

import (
	"context"
	"fmt"
	"sync"
)

// MockClient implements Client for testing
type MockClient struct {
	mu    sync.RWMutex
	user  string
	repos map[string]*Repository // key: owner/name

	// Hooks for testing error scenarios
	GetAuthenticatedUserError error
	GetRepositoryError        error
	CreateRepositoryError     error
}

// NewMockClient creates a MockClient authenticated as user
func NewMockClient(user string) *MockClient {
	return &MockClient{
		user:  user,
		repos: make(map[string]*Repository),
	}
}

// AddRepository pre-populates an existing repository. Test helper.
func (m *MockClient) AddRepository(repo *Repository) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.repos[repo.Owner+"/"+repo.Name] = repo
}

func (m *MockClient) GetAuthenticatedUser(ctx context.Context) (string, error) {
	if m.GetAuthenticatedUserError != nil {
		return "", m.GetAuthenticatedUserError
	}
	return m.user, nil
}

func (m *MockClient) GetRepository(ctx context.Context, owner, repo string) (*Repository, error) {
	if m.GetRepositoryError != nil {
		return nil, m.GetRepositoryError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.repos[owner+"/"+repo]
	if !ok {
		return nil, fmt.Errorf("repository %s/%s not found", owner, repo)
	}
	return r, nil
}

func (m *MockClient) CreateRepository(ctx context.Context, req *CreateRepositoryRequest) (*Repository, error) {
	if m.CreateRepositoryError != nil {
		return nil, m.CreateRepositoryError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := m.user + "/" + req.Name
	if _, exists := m.repos[key]; exists {
		return nil, fmt.Errorf("repository %s already exists", key)
	}

	repo := &Repository{
		Owner:         m.user,
		Name:          req.Name,
		FullName:      key,
		CloneURL:      fmt.Sprintf("https://github.com/%s.git", key),
		HTMLURL:       fmt.Sprintf("https://github.com/%s", key),
		Private:       req.Private,
		DefaultBranch: "main",
	}
	m.repos[key] = repo
	return repo, nil
}
