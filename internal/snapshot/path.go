package snapshot

import (
	"path/filepath"
	"strings"
)

// Rel returns path relative to root, or a *NotUnderRootError when path lies
// outside root. Both are compared component-wise after cleaning; root
// itself yields ".".
func Rel(root, path string) (string, error) {
	root = filepath.Clean(root)
	path = filepath.Clean(path)
	if filepath.IsAbs(root) != filepath.IsAbs(path) {
		return "", &NotUnderRootError{Root: root, Path: path}
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", &NotUnderRootError{Root: root, Path: path}
	}
	return rel, nil
}

// IsUnder reports whether path is root or lies below it.
func IsUnder(root, path string) bool {
	_, err := Rel(root, path)
	return err == nil
}

// baseName is the final path component, or "" for a path without one.
func baseName(path string) string {
	path = filepath.Clean(path)
	if path == "." || path == string(filepath.Separator) || filepath.VolumeName(path)+string(filepath.Separator) == path {
		return ""
	}
	return filepath.Base(path)
}
