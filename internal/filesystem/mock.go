package filesystem

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// MockFileSystem provides an in-memory filesystem for testing. It models
// directories, regular files and symlinks, including their permission bits,
// so the directory/symlink topology operations can be tested without
// touching the real OS. Nodes are stored under canonical paths: symlinks in
// intermediate components are followed, the final component is not.
type MockFileSystem struct {
	files      map[string]*MockFile
	currentDir string
}

// MockFile represents a node in the mock filesystem
type MockFile struct {
	Content    []byte
	Mode       fs.FileMode
	ModTime    time.Time
	IsDir      bool
	LinkTarget string // non-empty for symlinks
}

func (f *MockFile) isSymlink() bool {
	return f.LinkTarget != ""
}

// mockFileInfo implements fs.FileInfo
type mockFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return m.size }
func (m *mockFileInfo) Mode() fs.FileMode  { return m.mode }
func (m *mockFileInfo) ModTime() time.Time { return m.modTime }
func (m *mockFileInfo) IsDir() bool        { return m.isDir }
func (m *mockFileInfo) Sys() interface{}   { return nil }

// mockDirEntry implements fs.DirEntry
type mockDirEntry struct {
	info fs.FileInfo
}

func (m *mockDirEntry) Name() string               { return m.info.Name() }
func (m *mockDirEntry) IsDir() bool                { return m.info.IsDir() }
func (m *mockDirEntry) Type() fs.FileMode          { return m.info.Mode().Type() }
func (m *mockDirEntry) Info() (fs.FileInfo, error) { return m.info, nil }

// NewMockFileSystem creates a new MockFileSystem
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:      make(map[string]*MockFile),
		currentDir: "/home/user",
	}
}

// SetWorkingDir overrides the directory reported by Getwd
func (mfs *MockFileSystem) SetWorkingDir(dir string) {
	mfs.currentDir = filepath.Clean(dir)
}

// AddFile adds a regular file, creating parent directories as needed
func (mfs *MockFileSystem) AddFile(path string, content []byte) {
	key := mfs.canonical(path)
	mfs.files[key] = &MockFile{
		Content: content,
		Mode:    0644,
		ModTime: time.Now(),
	}
	mfs.ensureParents(key)
}

// AddDir adds a directory, creating parent directories as needed
func (mfs *MockFileSystem) AddDir(path string) {
	key := mfs.canonical(path)
	mfs.files[key] = &MockFile{
		Mode:    fs.ModeDir | 0755,
		ModTime: time.Now(),
		IsDir:   true,
	}
	mfs.ensureParents(key)
}

// AddSymlink adds a symlink without checking that the target exists
func (mfs *MockFileSystem) AddSymlink(target, link string) {
	key := mfs.canonical(link)
	mfs.files[key] = &MockFile{
		Mode:       fs.ModeSymlink | 0777,
		ModTime:    time.Now(),
		LinkTarget: target,
	}
	mfs.ensureParents(key)
}

// Node returns the raw node for a path, or nil. Test helper.
func (mfs *MockFileSystem) Node(path string) *MockFile {
	return mfs.files[mfs.canonical(path)]
}

func (mfs *MockFileSystem) ensureParents(path string) {
	dir := filepath.Dir(path)
	for dir != "." && dir != "/" && dir != path {
		if _, exists := mfs.files[dir]; !exists {
			mfs.files[dir] = &MockFile{
				Mode:    fs.ModeDir | 0755,
				ModTime: time.Now(),
				IsDir:   true,
			}
		}
		path = dir
		dir = filepath.Dir(dir)
	}
}

// canonical resolves symlinks in every path component except the last.
func (mfs *MockFileSystem) canonical(path string) string {
	clean := filepath.Clean(path)
	if clean == "/" || clean == "." || filepath.Dir(clean) == clean {
		return clean
	}

	parent := mfs.canonical(filepath.Dir(clean))
	for i := 0; i < 16; i++ {
		f, ok := mfs.files[parent]
		if !ok || !f.isSymlink() {
			break
		}
		target := f.LinkTarget
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(parent), target)
		}
		parent = mfs.canonical(target)
	}

	return filepath.Join(parent, filepath.Base(clean))
}

// resolve canonicalizes and then follows symlinks on the final component
func (mfs *MockFileSystem) resolve(path string) (string, *MockFile, error) {
	key := mfs.canonical(path)
	for i := 0; i < 16; i++ {
		file, exists := mfs.files[key]
		if !exists {
			return key, nil, &fs.PathError{Op: "stat", Path: key, Err: fs.ErrNotExist}
		}
		if !file.isSymlink() {
			return key, file, nil
		}
		target := file.LinkTarget
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(key), target)
		}
		key = mfs.canonical(target)
	}
	return key, nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrInvalid}
}

func (mfs *MockFileSystem) ReadFile(path string) ([]byte, error) {
	resolved, file, err := mfs.resolve(path)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: mfs.canonical(path), Err: fs.ErrNotExist}
	}
	if file.IsDir {
		return nil, &fs.PathError{Op: "read", Path: resolved, Err: fs.ErrInvalid}
	}
	return file.Content, nil
}

func (mfs *MockFileSystem) WriteFile(path string, data []byte, perm fs.FileMode) error {
	key := mfs.canonical(path)
	if existing, ok := mfs.files[key]; ok && existing.IsDir {
		return &fs.PathError{Op: "open", Path: key, Err: fs.ErrInvalid}
	}
	parent := filepath.Dir(key)
	if _, ok := mfs.files[parent]; !ok && parent != "/" && parent != "." {
		return &fs.PathError{Op: "open", Path: key, Err: fs.ErrNotExist}
	}
	mfs.files[key] = &MockFile{
		Content: data,
		Mode:    perm,
		ModTime: time.Now(),
	}
	return nil
}

func (mfs *MockFileSystem) Remove(path string) error {
	key := mfs.canonical(path)
	file, exists := mfs.files[key]
	if !exists {
		return &fs.PathError{Op: "remove", Path: key, Err: fs.ErrNotExist}
	}
	if file.IsDir {
		for p := range mfs.files {
			if strings.HasPrefix(p, key+"/") {
				return &fs.PathError{Op: "remove", Path: key, Err: fs.ErrInvalid}
			}
		}
	}
	delete(mfs.files, key)
	return nil
}

func (mfs *MockFileSystem) RemoveAll(path string) error {
	key := mfs.canonical(path)
	delete(mfs.files, key)
	for p := range mfs.files {
		if strings.HasPrefix(p, key+"/") {
			delete(mfs.files, p)
		}
	}
	return nil
}

func (mfs *MockFileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	resolved, dir, err := mfs.resolve(path)
	if err != nil {
		return nil, err
	}
	if !dir.IsDir {
		return nil, &fs.PathError{Op: "readdir", Path: resolved, Err: fs.ErrInvalid}
	}

	var names []string
	for p := range mfs.files {
		if filepath.Dir(p) == resolved && p != resolved {
			names = append(names, p)
		}
	}
	sort.Strings(names)

	entries := make([]fs.DirEntry, 0, len(names))
	for _, p := range names {
		info, _ := mfs.Lstat(p)
		entries = append(entries, &mockDirEntry{info: info})
	}
	return entries, nil
}

func (mfs *MockFileSystem) Mkdir(path string, perm fs.FileMode) error {
	key := mfs.canonical(path)
	if _, exists := mfs.files[key]; exists {
		return &fs.PathError{Op: "mkdir", Path: key, Err: fs.ErrExist}
	}
	parent := filepath.Dir(key)
	if parent != "/" && parent != "." {
		pf, ok := mfs.files[parent]
		if !ok || !pf.IsDir {
			return &fs.PathError{Op: "mkdir", Path: key, Err: fs.ErrNotExist}
		}
	}
	mfs.files[key] = &MockFile{
		Mode:    fs.ModeDir | perm,
		ModTime: time.Now(),
		IsDir:   true,
	}
	return nil
}

func (mfs *MockFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	key := mfs.canonical(path)
	if existing, ok := mfs.files[key]; ok {
		if existing.IsDir {
			return nil
		}
		return &fs.PathError{Op: "mkdir", Path: key, Err: fs.ErrExist}
	}
	mfs.files[key] = &MockFile{
		Mode:    fs.ModeDir | perm,
		ModTime: time.Now(),
		IsDir:   true,
	}
	mfs.ensureParents(key)
	return nil
}

func (mfs *MockFileSystem) Symlink(target, link string) error {
	key := mfs.canonical(link)
	if _, exists := mfs.files[key]; exists {
		return &fs.PathError{Op: "symlink", Path: key, Err: fs.ErrExist}
	}
	mfs.files[key] = &MockFile{
		Mode:       fs.ModeSymlink | 0777,
		ModTime:    time.Now(),
		LinkTarget: target,
	}
	return nil
}

func (mfs *MockFileSystem) Readlink(link string) (string, error) {
	key := mfs.canonical(link)
	file, exists := mfs.files[key]
	if !exists {
		return "", &fs.PathError{Op: "readlink", Path: key, Err: fs.ErrNotExist}
	}
	if !file.isSymlink() {
		return "", &fs.PathError{Op: "readlink", Path: key, Err: fs.ErrInvalid}
	}
	return file.LinkTarget, nil
}

func (mfs *MockFileSystem) Stat(path string) (fs.FileInfo, error) {
	resolved, file, err := mfs.resolve(path)
	if err != nil {
		return nil, err
	}
	return &mockFileInfo{
		name:    filepath.Base(resolved),
		size:    int64(len(file.Content)),
		mode:    file.Mode,
		modTime: file.ModTime,
		isDir:   file.IsDir,
	}, nil
}

func (mfs *MockFileSystem) Lstat(path string) (fs.FileInfo, error) {
	key := mfs.canonical(path)
	file, exists := mfs.files[key]
	if !exists {
		return nil, &fs.PathError{Op: "lstat", Path: key, Err: fs.ErrNotExist}
	}
	return &mockFileInfo{
		name:    filepath.Base(key),
		size:    int64(len(file.Content)),
		mode:    file.Mode,
		modTime: file.ModTime,
		isDir:   file.IsDir,
	}, nil
}

func (mfs *MockFileSystem) Exists(path string) bool {
	_, exists := mfs.files[mfs.canonical(path)]
	return exists
}

func (mfs *MockFileSystem) Rename(oldPath, newPath string) error {
	oldKey := mfs.canonical(oldPath)
	newKey := mfs.canonical(newPath)

	file, exists := mfs.files[oldKey]
	if !exists {
		return &fs.PathError{Op: "rename", Path: oldKey, Err: fs.ErrNotExist}
	}
	parent := filepath.Dir(newKey)
	if pf, ok := mfs.files[parent]; parent != "/" && (!ok || !pf.IsDir) {
		return &fs.PathError{Op: "rename", Path: newKey, Err: fs.ErrNotExist}
	}

	// Move the node and, for directories, everything beneath it.
	delete(mfs.files, oldKey)
	mfs.files[newKey] = file
	if file.IsDir {
		for p, f := range mfs.files {
			if strings.HasPrefix(p, oldKey+"/") {
				delete(mfs.files, p)
				mfs.files[newKey+strings.TrimPrefix(p, oldKey)] = f
			}
		}
	}
	return nil
}

func (mfs *MockFileSystem) Chmod(path string, mode fs.FileMode) error {
	resolved, file, err := mfs.resolve(path)
	if err != nil {
		return &fs.PathError{Op: "chmod", Path: mfs.canonical(path), Err: fs.ErrNotExist}
	}
	typeBits := file.Mode & fs.ModeType
	mfs.files[resolved].Mode = typeBits | mode
	return nil
}

func (mfs *MockFileSystem) Getwd() (string, error) {
	return mfs.currentDir, nil
}

func (mfs *MockFileSystem) WalkDir(root string, fn fs.WalkDirFunc) error {
	rootKey, _, err := mfs.resolve(root)
	if err != nil {
		return fn(mfs.canonical(root), nil, err)
	}

	var paths []string
	paths = append(paths, rootKey)
	for p := range mfs.files {
		if strings.HasPrefix(p, rootKey+"/") {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)

	var skipped []string
	for _, p := range paths {
		skip := false
		for _, s := range skipped {
			if strings.HasPrefix(p, s+"/") {
				skip = true
				break
			}
		}
		if skip {
			continue
		}

		info, _ := mfs.Lstat(p)
		entry := &mockDirEntry{info: info}
		if err := fn(p, entry, nil); err != nil {
			if err == fs.SkipDir {
				if entry.IsDir() {
					skipped = append(skipped, p)
				}
				continue
			}
			return err
		}
	}
	return nil
}
