package snapshot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/DobbiKov/translate-dir-lib/internal/fs"
)

// Build scans root and returns its snapshot. Symlinks and special files are
// skipped, every file starts untranslatable, and empty directories are kept.
// Any unreadable entry fails the whole build.
func Build(fsys fs.FS, root string) (Directory, error) {
	root = filepath.Clean(root)
	info, err := fsys.Stat(root)
	if err != nil {
		if fsys.IsNotExist(err) {
			return Directory{}, fmt.Errorf("%w: %w", ErrInvalidRoot, err)
		}
		return Directory{}, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return Directory{}, fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, root)
	}
	return buildDir(fsys, root)
}

func buildDir(fsys fs.FS, path string) (Directory, error) {
	entries, err := fsys.ReadDir(path)
	if err != nil {
		return Directory{}, fmt.Errorf("read dir %s: %w", path, err)
	}

	dir := Directory{
		Name:  baseName(path),
		Path:  path,
		Dirs:  []Directory{},
		Files: []File{},
	}
	for _, e := range entries {
		child := filepath.Join(path, e.Name())
		switch {
		case e.Type()&os.ModeSymlink != 0:
			continue
		case e.IsDir():
			sub, err := buildDir(fsys, child)
			if err != nil {
				return Directory{}, err
			}
			dir.Dirs = append(dir.Dirs, sub)
		case e.Type().IsRegular():
			dir.Files = append(dir.Files, File{Name: e.Name(), Path: child})
		}
	}
	return dir, nil
}
