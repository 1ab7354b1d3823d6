package fs

import (
	"fmt"
	"io"
	"os"
)

// OSFS is a production implementation of FS using the standard library.
type OSFS struct{}

func NewOSFS() *OSFS {
	return &OSFS{}
}

func (r *OSFS) Open(path string) (io.ReadCloser, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// ReadMapped reads the whole file through a read-only memory mapping.
func (r *OSFS) ReadMapped(path string) ([]byte, error) {
	reader, err := mmapOpen(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	data := make([]byte, reader.Len())
	if len(data) > 0 {
		if _, err := reader.ReadAt(data, 0); err != nil {
			return nil, fmt.Errorf("read mmap %q: %w", path, err)
		}
	}
	return data, nil
}

func (r *OSFS) Stat(path string) (os.FileInfo, error) {
	return stat(path)
}

func (r *OSFS) Lstat(path string) (os.FileInfo, error) {
	return lstat(path)
}

func (r *OSFS) ReadFile(path string) ([]byte, error) {
	return readFile(path)
}

func (r *OSFS) ReadDir(path string) ([]os.DirEntry, error) {
	return readDir(path)
}

func (r *OSFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	return writeFile(path, data, perm)
}

func (r *OSFS) Mkdir(path string, perm os.FileMode) error {
	return mkdir(path, perm)
}

func (r *OSFS) MkdirAll(path string, perm os.FileMode) error {
	return mkdirAll(path, perm)
}

func (r *OSFS) Remove(path string) error {
	return remove(path)
}

func (r *OSFS) RemoveAll(path string) error {
	return removeAll(path)
}

func (r *OSFS) Rename(oldPath, newPath string) error {
	return rename(oldPath, newPath)
}

func (r *OSFS) Chmod(path string, mode os.FileMode) error {
	return chmod(path, mode)
}

func (r *OSFS) EvalSymlinks(path string) (string, error) {
	return evalSymlinks(path)
}

func (r *OSFS) CreateTempFile(dir, pattern string) (io.WriteCloser, string, error) {
	f, err := createTemp(dir, pattern)
	if err != nil {
		return nil, "", err
	}
	return f, f.Name(), nil
}

func (r *OSFS) IsNotExist(err error) bool {
	return isNotExist(err)
}

func (r *OSFS) IsDir(path string) bool {
	return IsDir(path)
}

func (r *OSFS) Exists(path string) bool {
	return exists(path)
}
