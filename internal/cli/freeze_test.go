package cli

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/raivivek/makebio/internal/filesystem"
	"github.com/raivivek/makebio/internal/git"
)

func TestFreeze_File(t *testing.T) {
	mfs, gitClient := seedProject(t)
	path := filepath.Join(testProjectRoot, "control", "final.tsv")
	mfs.AddFile(path, []byte("done"))

	out, err := runCommand(t, mfs, gitClient, nil, "freeze", path)
	require.NoError(t, err)
	require.Contains(t, out, "Froze "+path)

	mode := mfs.Node(path).Mode
	require.Equal(t, fs.FileMode(0440), mode.Perm())
	require.NotZero(t, mode&fs.ModeSticky)
}

func TestFreeze_Recursive(t *testing.T) {
	mfs, gitClient := seedProject(t)
	dir := filepath.Join(testProjectRoot, "control", "results")
	mfs.AddDir(dir)
	mfs.AddFile(filepath.Join(dir, "a.tsv"), []byte("a"))
	mfs.AddFile(filepath.Join(dir, "b.tsv"), []byte("b"))

	out, err := runCommand(t, mfs, gitClient, nil, "freeze", "--recursive", dir)
	require.NoError(t, err)
	require.Contains(t, out, "Froze 3 paths")

	require.Equal(t, fs.FileMode(0550), mfs.Node(dir).Mode.Perm())
	require.Equal(t, fs.FileMode(0440), mfs.Node(filepath.Join(dir, "a.tsv")).Mode.Perm())
}

func TestFreeze_RelativePathFollowsDirectoryFlag(t *testing.T) {
	mfs, gitClient := seedProject(t)
	path := filepath.Join(testProjectRoot, "control", "final.tsv")
	mfs.AddFile(path, []byte("done"))
	mfs.SetWorkingDir("/home/vivek")

	out, err := runCommand(t, mfs, gitClient, nil,
		"-C", testProjectRoot, "freeze", filepath.Join("control", "final.tsv"))
	require.NoError(t, err)
	require.Contains(t, out, "Froze "+path)
	require.Equal(t, fs.FileMode(0440), mfs.Node(path).Mode.Perm())
}

func TestFreeze_MissingPathFails(t *testing.T) {
	mfs, gitClient := seedProject(t)

	_, err := runCommand(t, mfs, gitClient, nil,
		"freeze", filepath.Join(testProjectRoot, "ghost"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestFreeze_OutsideProjectFails(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()
	mfs.AddFile("/home/vivek/loose.txt", []byte("x"))
	mfs.SetWorkingDir("/home/vivek")

	_, err := runCommand(t, mfs, git.NewMockClient(), nil, "freeze", "/home/vivek/loose.txt")
	require.Error(t, err)
	require.Contains(t, err.Error(), "makebio.toml not found")
}
