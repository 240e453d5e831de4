package cli

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/raivivek/makebio/internal/filesystem"
	"github.com/raivivek/makebio/internal/git"
)

func TestAddAnalysis_DatePrefixedByDefault(t *testing.T) {
	fs, gitClient := seedProject(t)

	out, err := runCommand(t, fs, gitClient, nil, "add-analysis", "createTracks")
	require.NoError(t, err)

	name := time.Now().Format("2006-01-02") + "_createTracks"
	require.Contains(t, out, name)
	require.True(t, fs.Exists(filepath.Join(testProjectRoot, "control", name)))
	require.True(t, fs.Exists(filepath.Join(testProjectRoot, "work", name)))
	require.True(t, fs.Exists(filepath.Join(testProjectRoot, "control", name, "entry.md")))
}

func TestAddData_WithoutPrefix(t *testing.T) {
	fs, gitClient := seedProject(t)

	out, err := runCommand(t, fs, gitClient, nil, "add-data", "fastq", "--prefix=false")
	require.NoError(t, err)

	require.Contains(t, out, "Added data entry fastq")
	require.True(t, fs.Exists(filepath.Join(testProjectRoot, "control", "fastq")))
	require.True(t, fs.Exists(filepath.Join(testProjectRoot, "data", "fastq")))
}

func TestAdd_FindsRootFromSubdirectory(t *testing.T) {
	fs, gitClient := seedProject(t)
	fs.SetWorkingDir(filepath.Join(testProjectRoot, "notebooks"))

	_, err := runCommand(t, fs, gitClient, nil, "add-analysis", "deep", "--prefix=false")
	require.NoError(t, err)
	require.True(t, fs.Exists(filepath.Join(testProjectRoot, "control", "deep")))
}

func TestAdd_OutsideProjectFails(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/home/vivek")
	fs.SetWorkingDir("/home/vivek")

	_, err := runCommand(t, fs, git.NewMockClient(), nil, "add-analysis", "orphan")
	require.Error(t, err)
	require.Contains(t, err.Error(), "makebio.toml not found")
}

func TestAdd_DirectoryFlag(t *testing.T) {
	fs, gitClient := seedProject(t)
	fs.SetWorkingDir("/home/vivek")

	_, err := runCommand(t, fs, gitClient, nil,
		"-C", testProjectRoot, "add-analysis", "flagged", "--prefix=false")
	require.NoError(t, err)
	require.True(t, fs.Exists(filepath.Join(testProjectRoot, "control", "flagged")))
}
