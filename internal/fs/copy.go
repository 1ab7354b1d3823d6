package fs

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
)

// TempPattern is the name pattern of in-flight copies; a crash mid-copy
// leaves at most one such file next to the destination.
const TempPattern = ".transdir-*.tmp"

// ErrNotRegular is returned when the source of a copy is a symlink,
// directory or special file.
var ErrNotRegular = errors.New("not a regular file")

// CopyFile copies src to dst, replacing dst if it exists. The content is
// written to a temporary file in dst's directory and renamed into place, so
// readers never observe a half-written destination. Symlinks are never
// followed: only a regular file is copied.
func CopyFile(fsys FS, src, dst string) error {
	info, err := fsys.Lstat(src)
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("copy %s: %w (%s)", src, ErrNotRegular, info.Mode().Type())
	}

	in, err := fsys.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	tmp, tmpName, err := fsys.CreateTempFile(filepath.Dir(dst), TempPattern)
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", dst, err)
	}

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		fsys.Remove(tmpName)
		return fmt.Errorf("copy %s -> %s: %w", src, dst, err)
	}
	if err := tmp.Close(); err != nil {
		fsys.Remove(tmpName)
		return fmt.Errorf("close temp for %s: %w", dst, err)
	}
	if err := fsys.Chmod(tmpName, info.Mode().Perm()); err != nil {
		fsys.Remove(tmpName)
		return fmt.Errorf("chmod temp for %s: %w", dst, err)
	}
	if err := fsys.Rename(tmpName, dst); err != nil {
		fsys.Remove(tmpName)
		return fmt.Errorf("rename temp to %s: %w", dst, err)
	}
	return nil
}
