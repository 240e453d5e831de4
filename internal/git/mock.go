package git

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MockClient implements Client for testing with per-root repository state
type MockClient struct {
	mu    sync.RWMutex
	repos map[string]*MockRepo
	ctx   context.Context

	// Hooks for testing error scenarios
	InitError      error
	StatusError    error
	StageAllError  error
	CommitError    error
	HeadError      error
	AddRemoteError error
	PushError      error
}

// MockRepo holds the simulated state of one repository
type MockRepo struct {
	Commits []Commit          // oldest first
	Dirty   []string          // pending porcelain lines
	Staged  bool              // StageAll called since last commit
	Remotes map[string]string // name -> url
	Pushed  []string          // "remote ref" records
}

// NewMockClient creates a new MockClient with no repositories
func NewMockClient() *MockClient {
	return &MockClient{
		repos: make(map[string]*MockRepo),
		ctx:   context.Background(),
	}
}

// WithContext returns a client sharing the same repository state
func (m *MockClient) WithContext(ctx context.Context) Client {
	m.mu.Lock()
	defer m.mu.Unlock()

	return &MockClient{
		repos: m.repos,
		ctx:   ctx,

		InitError:      m.InitError,
		StatusError:    m.StatusError,
		StageAllError:  m.StageAllError,
		CommitError:    m.CommitError,
		HeadError:      m.HeadError,
		AddRemoteError: m.AddRemoteError,
		PushError:      m.PushError,
	}
}

// hash counter shared across mocks for unique commit identifiers
var (
	hashCounterMu sync.Mutex
	hashCounter   uint64
)

func generateCommitHash() string {
	hashCounterMu.Lock()
	defer hashCounterMu.Unlock()
	hashCounter++
	return fmt.Sprintf("%040x", hashCounter)
}

// Repo returns the simulated repository for a root, or nil. Test helper.
func (m *MockClient) Repo(root string) *MockRepo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.repos[root]
}

// SetDirty marks pending changes in a repository. Test helper.
func (m *MockClient) SetDirty(root string, lines ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if repo, ok := m.repos[root]; ok {
		repo.Dirty = append(repo.Dirty, lines...)
	}
}

// AddCommit appends a commit directly, bypassing the stage/commit cycle.
// Test helper for pre-populating history (e.g. out-of-band commits).
func (m *MockClient) AddCommit(root, subject string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	repo, ok := m.repos[root]
	if !ok {
		repo = newMockRepo()
		m.repos[root] = repo
	}

	hash := generateCommitHash()
	repo.Commits = append(repo.Commits, Commit{
		Hash:    hash,
		Subject: subject,
		Date:    time.Now().Format("2006-01-02"),
	})
	return hash
}

func newMockRepo() *MockRepo {
	return &MockRepo{
		Remotes: make(map[string]string),
	}
}

func (m *MockClient) Init(root string) error {
	if m.InitError != nil {
		return m.InitError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.repos[root]; exists {
		return nil // git init on an existing repo is a no-op
	}
	m.repos[root] = newMockRepo()
	return nil
}

func (m *MockClient) IsRepo(root string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, exists := m.repos[root]
	return exists, nil
}

func (m *MockClient) Status(root string) ([]string, error) {
	if m.StatusError != nil {
		return nil, m.StatusError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	repo, ok := m.repos[root]
	if !ok {
		return nil, fmt.Errorf("not a git repository: %s", root)
	}
	return append([]string{}, repo.Dirty...), nil
}

func (m *MockClient) StageAll(root string) error {
	if m.StageAllError != nil {
		return m.StageAllError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	repo, ok := m.repos[root]
	if !ok {
		return fmt.Errorf("not a git repository: %s", root)
	}
	repo.Staged = true
	return nil
}

func (m *MockClient) Commit(root, message string) error {
	if m.CommitError != nil {
		return m.CommitError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	repo, ok := m.repos[root]
	if !ok {
		return fmt.Errorf("not a git repository: %s", root)
	}
	if !repo.Staged && len(repo.Dirty) == 0 {
		return fmt.Errorf("nothing to commit, working tree clean")
	}

	repo.Commits = append(repo.Commits, Commit{
		Hash:    generateCommitHash(),
		Subject: message,
		Date:    time.Now().Format("2006-01-02"),
	})
	repo.Dirty = nil
	repo.Staged = false
	return nil
}

func (m *MockClient) Head(root string) (string, error) {
	if m.HeadError != nil {
		return "", m.HeadError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	repo, ok := m.repos[root]
	if !ok {
		return "", fmt.Errorf("not a git repository: %s", root)
	}
	if len(repo.Commits) == 0 {
		return "", fmt.Errorf("no commits yet")
	}
	return repo.Commits[len(repo.Commits)-1].Hash, nil
}

func (m *MockClient) Log(root string, limit int) ([]Commit, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	repo, ok := m.repos[root]
	if !ok {
		return nil, fmt.Errorf("not a git repository: %s", root)
	}

	// Newest first, like git log.
	var commits []Commit
	for i := len(repo.Commits) - 1; i >= 0 && len(commits) < limit; i-- {
		commits = append(commits, repo.Commits[i])
	}
	return commits, nil
}

func (m *MockClient) AddRemote(root, name, url string) error {
	if m.AddRemoteError != nil {
		return m.AddRemoteError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	repo, ok := m.repos[root]
	if !ok {
		return fmt.Errorf("not a git repository: %s", root)
	}
	if _, exists := repo.Remotes[name]; exists {
		return fmt.Errorf("remote %s already exists", name)
	}
	repo.Remotes[name] = url
	return nil
}

func (m *MockClient) Push(root, remote, ref string) error {
	if m.PushError != nil {
		return m.PushError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	repo, ok := m.repos[root]
	if !ok {
		return fmt.Errorf("not a git repository: %s", root)
	}
	if _, exists := repo.Remotes[remote]; !exists {
		return fmt.Errorf("remote %s does not exist", remote)
	}
	repo.Pushed = append(repo.Pushed, remote+" "+ref)
	return nil
}
