package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/mod/semver"

	"github.com/raivivek/makebio/internal/filesystem"
)

// ErrNotConfigured marks a directory without a config document. Every
// command except init treats it as fatal; init treats it as the green light.
var ErrNotConfigured = errors.New("not a makebio configured directory (makebio.toml not found)")

// MalformedConfigError marks a document that exists but cannot be used:
// parse failure, unknown fields, or a schema version this binary does not
// understand. A broken config is never reported as ErrNotConfigured.
type MalformedConfigError struct {
	Path string
	Err  error
}

func (e *MalformedConfigError) Error() string {
	return fmt.Sprintf("malformed config %s: %v", e.Path, e.Err)
}

func (e *MalformedConfigError) Unwrap() error { return e.Err }

// Store loads and persists the project configuration document.
type Store struct {
	fs filesystem.FileSystem
}

// NewStore creates a new Store
func NewStore(fs filesystem.FileSystem) *Store {
	return &Store{fs: fs}
}

// Path returns the config document location for a project root.
func (s *Store) Path(root string) string {
	return filepath.Join(root, FileName)
}

// Load reads the document at <root>/makebio.toml. Absence is reported as
// ErrNotConfigured; any document that is present but unusable is a
// MalformedConfigError.
func (s *Store) Load(root string) (*ProjectConfig, error) {
	path := s.Path(root)

	data, err := s.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", root, ErrNotConfigured)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg ProjectConfig
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, &MalformedConfigError{Path: path, Err: err}
	}

	if err := checkSchemaVersion(cfg.Metadata.Version); err != nil {
		return nil, &MalformedConfigError{Path: path, Err: err}
	}

	return &cfg, nil
}

// Save serializes the document and overwrites <root>/makebio.toml. A failed
// write leaves the previous document in place on most filesystems, which is
// acceptable for a single-operator tool.
func (s *Store) Save(root string, cfg *ProjectConfig) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := s.fs.WriteFile(s.Path(root), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// checkSchemaVersion rejects documents written by a newer major version of
// the tool. Older minors within the same major are accepted.
func checkSchemaVersion(version string) error {
	v := "v" + version
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid metadata.version %q", version)
	}

	if semver.Compare(semver.Major(v), semver.Major("v"+Version)) > 0 {
		return fmt.Errorf("config version %s is newer than supported %s", version, Version)
	}

	return nil
}
