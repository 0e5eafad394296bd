package installer

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// memFS is an in-memory FileSystem.
type memFS struct {
	files map[string][]byte
	dirs  map[string]bool

	// copyErr fails CopyFile for destinations with the given base name.
	copyErr map[string]error
	// removeErr fails every RemoveTree call.
	removeErr error

	copies int
}

func newMemFS() *memFS {
	return &memFS{
		files:   make(map[string][]byte),
		dirs:    make(map[string]bool),
		copyErr: make(map[string]error),
	}
}

func (m *memFS) addDir(path string) {
	for p := filepath.Clean(path); ; p = filepath.Dir(p) {
		m.dirs[p] = true
		if filepath.Dir(p) == p {
			return
		}
	}
}

func (m *memFS) addFile(path, content string) {
	m.addDir(filepath.Dir(path))
	m.files[filepath.Clean(path)] = []byte(content)
}

// list returns the sorted names of files directly inside dir.
func (m *memFS) list(dir string) []string {
	dir = filepath.Clean(dir)
	var names []string
	for p := range m.files {
		if filepath.Dir(p) == dir {
			names = append(names, filepath.Base(p))
		}
	}
	sort.Strings(names)
	return names
}

func (m *memFS) Exists(path string) bool {
	path = filepath.Clean(path)
	_, isFile := m.files[path]
	return isFile || m.dirs[path]
}

func (m *memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[filepath.Clean(path)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return data, nil
}

func (m *memFS) RemoveTree(path string) error {
	if m.removeErr != nil {
		return m.removeErr
	}
	path = filepath.Clean(path)
	prefix := path + string(filepath.Separator)
	for p := range m.files {
		if p == path || strings.HasPrefix(p, prefix) {
			delete(m.files, p)
		}
	}
	for p := range m.dirs {
		if p == path || strings.HasPrefix(p, prefix) {
			delete(m.dirs, p)
		}
	}
	return nil
}

func (m *memFS) MkdirAll(path string) error {
	m.addDir(path)
	return nil
}

func (m *memFS) CopyFile(src, dst string) error {
	if err := m.copyErr[filepath.Base(dst)]; err != nil {
		return err
	}
	data, ok := m.files[filepath.Clean(src)]
	if !ok {
		return &fs.PathError{Op: "open", Path: src, Err: fs.ErrNotExist}
	}
	if !m.dirs[filepath.Dir(filepath.Clean(dst))] {
		return &fs.PathError{Op: "open", Path: dst, Err: fs.ErrNotExist}
	}
	m.files[filepath.Clean(dst)] = append([]byte(nil), data...)
	m.copies++
	return nil
}

// fakeVCS materializes repo into the clone directory on Clone.
type fakeVCS struct {
	fs   *memFS
	repo map[string]string

	versionErr error
	cloneErr   error

	clones []string
}

func (f *fakeVCS) Version(context.Context) (string, error) {
	if f.versionErr != nil {
		return "", f.versionErr
	}
	return "git version 2.43.0", nil
}

func (f *fakeVCS) Clone(_ context.Context, url, dir string) error {
	f.clones = append(f.clones, fmt.Sprintf("%s -> %s", url, dir))
	if f.cloneErr != nil {
		return f.cloneErr
	}
	f.fs.addDir(dir)
	for name, content := range f.repo {
		f.fs.addFile(filepath.Join(dir, name), content)
	}
	return nil
}

// scriptedConfirmer answers every question with answer and records them.
type scriptedConfirmer struct {
	answer    bool
	err       error
	questions []string
}

func (s *scriptedConfirmer) Confirm(question string) (bool, error) {
	s.questions = append(s.questions, question)
	return s.answer, s.err
}
