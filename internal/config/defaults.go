package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/raivivek/makebio/internal/filesystem"
)

// Defaults are operator-level presets used to pre-fill the init prompts.
// They live outside any project, in the XDG config directory.
type Defaults struct {
	Author string `toml:"author"`
	Email  string `toml:"email"`
}

// DefaultsPath returns $XDG_CONFIG_HOME/makebio/defaults.toml.
func DefaultsPath() string {
	return filepath.Join(xdg.ConfigHome, "makebio", "defaults.toml")
}

// LoadDefaults reads the operator defaults file. A missing or unreadable
// file yields empty defaults; this file is a convenience, never a
// requirement.
func LoadDefaults(fs filesystem.FileSystem) Defaults {
	var defaults Defaults

	data, err := fs.ReadFile(DefaultsPath())
	if err != nil {
		return defaults
	}

	if err := toml.Unmarshal(data, &defaults); err != nil {
		return Defaults{}
	}

	return defaults
}
