package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/example/loom/internal/ports/secondary"
)

// MemoryFileSystem implements secondary.FileSystem in memory.
// With a base file system it acts as a copy-on-write overlay: reads fall
// through to the base until a path is written or removed, and nothing is
// ever written to the base. Dry runs use it that way.
type MemoryFileSystem struct {
	mu      sync.Mutex
	base    secondary.FileSystem
	files   map[string][]byte
	dirs    map[string]bool
	removed map[string]bool

	failWrite  map[string]error
	failRename map[string]error
}

// NewMemoryFileSystem creates an empty in-memory file system.
func NewMemoryFileSystem() *MemoryFileSystem {
	return NewOverlayFileSystem(nil)
}

// NewOverlayFileSystem creates an in-memory overlay on top of base.
func NewOverlayFileSystem(base secondary.FileSystem) *MemoryFileSystem {
	return &MemoryFileSystem{
		base:       base,
		files:      make(map[string][]byte),
		dirs:       make(map[string]bool),
		removed:    make(map[string]bool),
		failWrite:  make(map[string]error),
		failRename: make(map[string]error),
	}
}

// Seed stores a file without going through WriteFile.
func (m *MemoryFileSystem) Seed(path string, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.put(path, []byte(content))
}

// FailWrites makes every WriteFile to path fail with err.
func (m *MemoryFileSystem) FailWrites(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWrite[filepath.Clean(path)] = err
}

// FailRenames makes every Rename onto path fail with err.
func (m *MemoryFileSystem) FailRenames(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failRename[filepath.Clean(path)] = err
}

// Paths lists every file held in memory, sorted.
func (m *MemoryFileSystem) Paths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Content returns the in-memory content of path.
func (m *MemoryFileSystem) Content(path string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[filepath.Clean(path)]
	return string(data), ok
}

// Exists reports whether a file exists in memory or, unless masked, in the base.
func (m *MemoryFileSystem) Exists(ctx context.Context, path string) (bool, error) {
	path = filepath.Clean(path)
	m.mu.Lock()
	_, ok := m.files[path]
	masked := m.removed[path]
	m.mu.Unlock()

	if ok {
		return true, nil
	}
	if masked || m.base == nil {
		return false, nil
	}
	return m.base.Exists(ctx, path)
}

// DirExists reports whether a directory was created or holds a file.
func (m *MemoryFileSystem) DirExists(ctx context.Context, path string) (bool, error) {
	path = filepath.Clean(path)
	m.mu.Lock()
	ok := m.dirs[path]
	m.mu.Unlock()

	if ok {
		return true, nil
	}
	if m.base == nil {
		return false, nil
	}
	return m.base.DirExists(ctx, path)
}

// CreateDirectory records a directory and its parents.
func (m *MemoryFileSystem) CreateDirectory(ctx context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.markDirs(filepath.Clean(path))
	return nil
}

// ReadFile returns the in-memory content, falling back to the base.
func (m *MemoryFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	path = filepath.Clean(path)
	m.mu.Lock()
	data, ok := m.files[path]
	masked := m.removed[path]
	m.mu.Unlock()

	if ok {
		return append([]byte(nil), data...), nil
	}
	if masked || m.base == nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, os.ErrNotExist)
	}
	return m.base.ReadFile(ctx, path)
}

// WriteFile stores content in memory.
func (m *MemoryFileSystem) WriteFile(ctx context.Context, path string, content []byte) error {
	path = filepath.Clean(path)
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failWrite[path]; err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	m.put(path, append([]byte(nil), content...))
	return nil
}

// Remove deletes a file from memory and masks it in the base.
func (m *MemoryFileSystem) Remove(ctx context.Context, path string) error {
	path = filepath.Clean(path)
	exists, err := m.Exists(ctx, path)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("failed to remove %s: %w", path, os.ErrNotExist)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, path)
	m.removed[path] = true
	return nil
}

// Rename moves from onto to, replacing to.
func (m *MemoryFileSystem) Rename(ctx context.Context, from, to string) error {
	from, to = filepath.Clean(from), filepath.Clean(to)
	m.mu.Lock()
	if err := m.failRename[to]; err != nil {
		m.mu.Unlock()
		return fmt.Errorf("failed to rename %s to %s: %w", from, to, err)
	}
	m.mu.Unlock()

	data, err := m.ReadFile(ctx, from)
	if err != nil {
		return fmt.Errorf("failed to rename %s to %s: %w", from, to, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, from)
	m.removed[from] = true
	m.put(to, data)
	return nil
}

func (m *MemoryFileSystem) put(path string, data []byte) {
	path = filepath.Clean(path)
	m.files[path] = data
	delete(m.removed, path)
	m.markDirs(filepath.Dir(path))
}

func (m *MemoryFileSystem) markDirs(dir string) {
	for {
		m.dirs[dir] = true
		parent := filepath.Dir(dir)
		if parent == dir || strings.TrimSpace(parent) == "" {
			return
		}
		dir = parent
	}
}
