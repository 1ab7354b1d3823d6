package fs

import (
	"io"
	"os"
)

// FS abstracts the filesystem operations used by the snapshot builder,
// the mirror engine and the project config persistence.
type FS interface {
	Open(path string) (io.ReadCloser, error)
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
	Mkdir(path string, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	Remove(path string) error
	RemoveAll(path string) error
	Rename(oldPath, newPath string) error
	Chmod(path string, mode os.FileMode) error
	Stat(path string) (os.FileInfo, error)
	Lstat(path string) (os.FileInfo, error)
	ReadDir(path string) ([]os.DirEntry, error)
	EvalSymlinks(path string) (string, error)
	CreateTempFile(dir, pattern string) (io.WriteCloser, string, error)
	IsNotExist(err error) bool
	Exists(path string) bool
	IsDir(path string) bool
}

// Mapper is implemented by filesystems that can read a file through a
// memory mapping instead of a buffered read.
type Mapper interface {
	ReadMapped(path string) ([]byte, error)
}

// Permissions used for directories and files this tool creates.
const (
	DirPerm  os.FileMode = 0o755
	FilePerm os.FileMode = 0o644
)
