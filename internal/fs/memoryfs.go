package fs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryFS is an in-memory FS for tests. Paths are cleaned and compared
// with forward slashes; absolute and relative paths live side by side, with
// "/" and "." always present as directories.
type MemoryFS struct {
	mu    sync.RWMutex
	files map[string]*memFile
	dirs  map[string]os.FileMode
	links map[string]string
	temp  int
}

type memFile struct {
	data    []byte
	mode    os.FileMode
	modTime time.Time
}

func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		files: make(map[string]*memFile),
		dirs:  map[string]os.FileMode{"/": 0o755, ".": 0o755},
		links: make(map[string]string),
	}
}

func clean(p string) string {
	if p == "" {
		return "."
	}
	return filepath.ToSlash(filepath.Clean(p))
}

func notExist(op, p string) error {
	return &os.PathError{Op: op, Path: p, Err: iofs.ErrNotExist}
}

func alreadyExists(op, p string) error {
	return &os.PathError{Op: op, Path: p, Err: iofs.ErrExist}
}

// resolve follows a symlink at p, one level deep.
func (m *MemoryFS) resolve(p string) string {
	if target, ok := m.links[p]; ok {
		if !path.IsAbs(target) {
			target = path.Join(path.Dir(p), target)
		}
		return clean(target)
	}
	return p
}

func (m *MemoryFS) isDirLocked(p string) bool {
	_, ok := m.dirs[p]
	return ok
}

func (m *MemoryFS) existsLocked(p string) bool {
	_, f := m.files[p]
	_, d := m.dirs[p]
	_, l := m.links[p]
	return f || d || l
}

func (m *MemoryFS) Open(p string) (io.ReadCloser, error) {
	data, err := m.ReadFile(p)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *MemoryFS) ReadFile(p string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p = m.resolve(clean(p))
	f, ok := m.files[p]
	if !ok {
		if m.isDirLocked(p) {
			return nil, fmt.Errorf("read %s: is a directory", p)
		}
		return nil, notExist("open", p)
	}
	return bytes.Clone(f.data), nil
}

func (m *MemoryFS) WriteFile(p string, data []byte, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writeLocked(clean(p), data, perm)
}

func (m *MemoryFS) writeLocked(p string, data []byte, perm os.FileMode) error {
	if !m.isDirLocked(path.Dir(p)) {
		return notExist("open", p)
	}
	if m.isDirLocked(p) {
		return fmt.Errorf("open %s: is a directory", p)
	}
	if f, ok := m.files[p]; ok {
		f.data = bytes.Clone(data)
		f.modTime = time.Now()
		return nil
	}
	m.files[p] = &memFile{data: bytes.Clone(data), mode: perm, modTime: time.Now()}
	return nil
}

func (m *MemoryFS) Mkdir(p string, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p = clean(p)
	if m.existsLocked(p) {
		return alreadyExists("mkdir", p)
	}
	if !m.isDirLocked(path.Dir(p)) {
		return notExist("mkdir", p)
	}
	m.dirs[p] = perm
	return nil
}

func (m *MemoryFS) MkdirAll(p string, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p = clean(p)
	var chain []string
	for cur := p; !m.isDirLocked(cur); cur = path.Dir(cur) {
		if _, ok := m.files[cur]; ok {
			return fmt.Errorf("mkdir %s: not a directory", cur)
		}
		if _, ok := m.links[cur]; ok {
			return alreadyExists("mkdir", cur)
		}
		chain = append(chain, cur)
		if cur == path.Dir(cur) {
			break
		}
	}
	for i := len(chain) - 1; i >= 0; i-- {
		m.dirs[chain[i]] = perm
	}
	return nil
}

// Symlink creates link pointing at target. It exists only on MemoryFS so
// tests can model trees with links.
func (m *MemoryFS) Symlink(target, link string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	link = clean(link)
	if m.existsLocked(link) {
		return alreadyExists("symlink", link)
	}
	if !m.isDirLocked(path.Dir(link)) {
		return notExist("symlink", link)
	}
	m.links[link] = target
	return nil
}

func (m *MemoryFS) Remove(p string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p = clean(p)
	if _, ok := m.files[p]; ok {
		delete(m.files, p)
		return nil
	}
	if _, ok := m.links[p]; ok {
		delete(m.links, p)
		return nil
	}
	if m.isDirLocked(p) {
		if len(m.childrenLocked(p)) > 0 {
			return fmt.Errorf("remove %s: directory not empty", p)
		}
		delete(m.dirs, p)
		return nil
	}
	return notExist("remove", p)
}

func (m *MemoryFS) RemoveAll(p string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p = clean(p)
	prefix := strings.TrimSuffix(p, "/") + "/"
	for k := range m.files {
		if k == p || strings.HasPrefix(k, prefix) {
			delete(m.files, k)
		}
	}
	for k := range m.links {
		if k == p || strings.HasPrefix(k, prefix) {
			delete(m.links, k)
		}
	}
	for k := range m.dirs {
		if (k == p || strings.HasPrefix(k, prefix)) && k != "/" && k != "." {
			delete(m.dirs, k)
		}
	}
	return nil
}

func (m *MemoryFS) Rename(oldPath, newPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	oldPath, newPath = clean(oldPath), clean(newPath)
	if !m.isDirLocked(path.Dir(newPath)) {
		return notExist("rename", newPath)
	}
	if m.isDirLocked(newPath) {
		return alreadyExists("rename", newPath)
	}
	if f, ok := m.files[oldPath]; ok {
		delete(m.links, newPath)
		m.files[newPath] = f
		delete(m.files, oldPath)
		return nil
	}
	if l, ok := m.links[oldPath]; ok {
		delete(m.files, newPath)
		m.links[newPath] = l
		delete(m.links, oldPath)
		return nil
	}
	if !m.isDirLocked(oldPath) {
		return notExist("rename", oldPath)
	}
	prefix := oldPath + "/"
	for k, v := range m.dirs {
		if k == oldPath || strings.HasPrefix(k, prefix) {
			delete(m.dirs, k)
			m.dirs[newPath+strings.TrimPrefix(k, oldPath)] = v
		}
	}
	for k, v := range m.files {
		if strings.HasPrefix(k, prefix) {
			delete(m.files, k)
			m.files[newPath+strings.TrimPrefix(k, oldPath)] = v
		}
	}
	for k, v := range m.links {
		if strings.HasPrefix(k, prefix) {
			delete(m.links, k)
			m.links[newPath+strings.TrimPrefix(k, oldPath)] = v
		}
	}
	return nil
}

func (m *MemoryFS) Chmod(p string, mode os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p = m.resolve(clean(p))
	if f, ok := m.files[p]; ok {
		f.mode = mode.Perm()
		return nil
	}
	if m.isDirLocked(p) {
		m.dirs[p] = mode.Perm()
		return nil
	}
	return notExist("chmod", p)
}

func (m *MemoryFS) Stat(p string) (os.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p = clean(p)
	return m.infoLocked(m.resolve(p), path.Base(p))
}

func (m *MemoryFS) Lstat(p string) (os.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p = clean(p)
	if _, ok := m.links[p]; ok {
		return &memFileInfo{name: path.Base(p), mode: os.ModeSymlink | 0o777}, nil
	}
	return m.infoLocked(p, path.Base(p))
}

func (m *MemoryFS) infoLocked(p, name string) (os.FileInfo, error) {
	if f, ok := m.files[p]; ok {
		return &memFileInfo{name: name, size: int64(len(f.data)), mode: f.mode, modTime: f.modTime}, nil
	}
	if perm, ok := m.dirs[p]; ok {
		return &memFileInfo{name: name, mode: os.ModeDir | perm, dir: true}, nil
	}
	return nil, notExist("stat", p)
}

func (m *MemoryFS) childrenLocked(p string) []string {
	var out []string
	add := func(k string) {
		if k != p && path.Dir(k) == p {
			out = append(out, k)
		}
	}
	for k := range m.dirs {
		add(k)
	}
	for k := range m.files {
		add(k)
	}
	for k := range m.links {
		add(k)
	}
	sort.Strings(out)
	return out
}

// ReadDir lists p sorted by name, like os.ReadDir.
func (m *MemoryFS) ReadDir(p string) ([]os.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p = m.resolve(clean(p))
	if !m.isDirLocked(p) {
		if _, ok := m.files[p]; ok {
			return nil, fmt.Errorf("readdir %s: not a directory", p)
		}
		return nil, notExist("open", p)
	}
	var entries []os.DirEntry
	for _, child := range m.childrenLocked(p) {
		var info os.FileInfo
		if _, ok := m.links[child]; ok {
			info = &memFileInfo{name: path.Base(child), mode: os.ModeSymlink | 0o777}
		} else {
			info, _ = m.infoLocked(child, path.Base(child))
		}
		entries = append(entries, iofs.FileInfoToDirEntry(info))
	}
	return entries, nil
}

func (m *MemoryFS) EvalSymlinks(p string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p = clean(p)
	resolved := m.resolve(p)
	if !m.existsLocked(resolved) {
		return "", notExist("lstat", p)
	}
	return filepath.FromSlash(resolved), nil
}

func (m *MemoryFS) CreateTempFile(dir, pattern string) (io.WriteCloser, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	dir = clean(dir)
	if !m.isDirLocked(dir) {
		return nil, "", notExist("createtemp", dir)
	}
	m.temp++
	name := path.Join(dir, strings.Replace(pattern, "*", fmt.Sprintf("%d", m.temp), 1))
	m.files[name] = &memFile{mode: 0o600, modTime: time.Now()}
	return &memTempFile{fs: m, name: name}, name, nil
}

type memTempFile struct {
	fs     *MemoryFS
	name   string
	buf    bytes.Buffer
	closed bool
}

func (f *memTempFile) Write(p []byte) (int, error) {
	if f.closed {
		return 0, os.ErrClosed
	}
	return f.buf.Write(p)
}

func (f *memTempFile) Close() error {
	if f.closed {
		return os.ErrClosed
	}
	f.closed = true
	f.fs.mu.Lock()
	defer f.fs.mu.Unlock()
	file, ok := f.fs.files[f.name]
	if !ok {
		return notExist("close", f.name)
	}
	file.data = bytes.Clone(f.buf.Bytes())
	return nil
}

func (m *MemoryFS) IsNotExist(err error) bool {
	return errors.Is(err, iofs.ErrNotExist)
}

func (m *MemoryFS) Exists(p string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.existsLocked(clean(p))
}

func (m *MemoryFS) IsDir(p string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.isDirLocked(m.resolve(clean(p)))
}

type memFileInfo struct {
	name    string
	size    int64
	mode    os.FileMode
	modTime time.Time
	dir     bool
}

func (fi *memFileInfo) Name() string       { return fi.name }
func (fi *memFileInfo) Size() int64        { return fi.size }
func (fi *memFileInfo) Mode() os.FileMode  { return fi.mode }
func (fi *memFileInfo) ModTime() time.Time { return fi.modTime }
func (fi *memFileInfo) IsDir() bool        { return fi.dir }
func (fi *memFileInfo) Sys() any           { return nil }
