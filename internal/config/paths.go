package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/DobbiKov/translate-dir-lib/internal/fs"
)

var ErrNotInProject = errors.New("not inside a translation project (no " + ConfigFile + " found)")

// ResolveProjectRoot walks up from start until it finds a directory holding
// ConfigFile and returns that directory.
func ResolveProjectRoot(fsys fs.FS, start string) (string, error) {
	cur, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", start, err)
	}
	for {
		info, err := fsys.Stat(filepath.Join(cur, ConfigFile))
		if err == nil && !info.IsDir() {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			break // reached filesystem root
		}
		cur = parent
	}
	return "", fmt.Errorf("%w: searched upward from %s", ErrNotInProject, start)
}

// ConfigPath is the location of the project document under root.
func ConfigPath(root string) string {
	return filepath.Join(root, ConfigFile)
}
