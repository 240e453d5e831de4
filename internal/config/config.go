package config

// FileName is the configuration document kept at the project root. Its
// presence is the sole signal that a directory is a managed project.
const FileName = "makebio.toml"

// Version is the config schema version written into new documents.
const Version = "1.0.0"

// NoCommit is the last_commit sentinel for projects that were never
// snapshotted.
const NoCommit = "none"

// ProjectConfig is the single source-of-truth record for a project. It
// round-trips losslessly through Store.Load/Store.Save.
type ProjectConfig struct {
	Author string `toml:"author"`
	Email  string `toml:"email"`
	Name   string `toml:"name"`

	Params        Params        `toml:"params"`
	Configuration Configuration `toml:"configuration"`
	Metadata      Metadata      `toml:"metadata"`
}

// Params holds the two tree roots. Both are absolute paths; Root must equal
// the directory containing the config document.
type Params struct {
	Root   string `toml:"root"`
	LinkTo string `toml:"linkto"`
}

// Configuration holds creation-time choices.
type Configuration struct {
	InitGit bool `toml:"init_git"`
}

// Metadata holds provenance. Version and CreatedOn are immutable after
// init; LastCommit advances only through snapshot synchronization.
type Metadata struct {
	Version    string `toml:"version"`
	CreatedOn  string `toml:"created_on"`
	LastCommit string `toml:"last_commit"`
}

// Synchronized reports whether the project has ever been snapshotted.
func (c *ProjectConfig) Synchronized() bool {
	return c.Metadata.LastCommit != "" && c.Metadata.LastCommit != NoCommit
}
