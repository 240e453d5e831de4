package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// OSClient implements Client using real git commands
type OSClient struct {
	ctx context.Context
}

// NewOSClient creates a new OSClient
func NewOSClient() *OSClient {
	return &OSClient{
		ctx: context.Background(),
	}
}

// WithContext returns a new client with the given context
func (g *OSClient) WithContext(ctx context.Context) Client {
	return &OSClient{
		ctx: ctx,
	}
}

func (g *OSClient) run(root string, args ...string) (string, error) {
	cmdArgs := append([]string{"-C", root}, args...)
	cmd := exec.CommandContext(g.ctx, "git", cmdArgs...)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}

	return strings.TrimSpace(out.String()), nil
}

// Init initializes a new repository at root
func (g *OSClient) Init(root string) error {
	cmd := exec.CommandContext(g.ctx, "git", "init", root)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git init %s: %w: %s", root, err, strings.TrimSpace(stderr.String()))
	}

	return nil
}

// IsRepo checks whether root is inside a git work tree
func (g *OSClient) IsRepo(root string) (bool, error) {
	cmd := exec.CommandContext(g.ctx, "git", "-C", root, "rev-parse", "--is-inside-work-tree")

	if err := cmd.Run(); err != nil {
		// Not a git repo
		return false, nil
	}

	return true, nil
}

// Status returns the porcelain status lines; empty means a clean tree.
func (g *OSClient) Status(root string) ([]string, error) {
	out, err := g.run(root, "status", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}

	if out == "" {
		return nil, nil
	}

	var lines []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if line != "" {
			lines = append(lines, line)
		}
	}

	return lines, nil
}

// StageAll stages every modified, deleted and untracked file, respecting
// the repository's ignore rules.
func (g *OSClient) StageAll(root string) error {
	if _, err := g.run(root, "add", "-A"); err != nil {
		return fmt.Errorf("failed to stage changes: %w", err)
	}
	return nil
}

// Commit records the staged changes
func (g *OSClient) Commit(root, message string) error {
	if _, err := g.run(root, "commit", "-m", message); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Head resolves the current head revision identifier
func (g *OSClient) Head(root string) (string, error) {
	out, err := g.run(root, "rev-parse", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	return out, nil
}

// Log returns up to limit commits, newest first
func (g *OSClient) Log(root string, limit int) ([]Commit, error) {
	out, err := g.run(root, "log", fmt.Sprintf("-%d", limit), "--pretty=format:%H%x09%s%x09%ad", "--date=short")
	if err != nil {
		return nil, fmt.Errorf("failed to read log: %w", err)
	}

	if out == "" {
		return nil, nil
	}

	var commits []Commit
	for _, line := range strings.Split(out, "\n") {
		parts := strings.SplitN(line, "\t", 3)
		if len(parts) != 3 {
			continue
		}
		commits = append(commits, Commit{
			Hash:    parts[0],
			Subject: parts[1],
			Date:    parts[2],
		})
	}

	return commits, nil
}

// AddRemote registers a remote by name
func (g *OSClient) AddRemote(root, name, url string) error {
	if _, err := g.run(root, "remote", "add", name, url); err != nil {
		return fmt.Errorf("failed to add remote %s: %w", name, err)
	}
	return nil
}

// Push pushes a ref to a remote
func (g *OSClient) Push(root, remote, ref string) error {
	if _, err := g.run(root, "push", "-u", remote, ref); err != nil {
		return fmt.Errorf("failed to push %s to %s: %w", ref, remote, err)
	}
	return nil
}
