package mirror

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/DobbiKov/translate-dir-lib/internal/snapshot"
)

// Prune removes entries of toDir whose name does not appear at the same
// relative location in src, which must be a snapshot of fromDir. Files of
// src keep their target counterpart whether or not they are translatable.
// Failures to remove single entries are collected in the report; a
// directory that cannot be listed stops the walk.
func (e *Engine) Prune(fromDir, toDir string, src snapshot.Directory) (PruneReport, error) {
	var rep PruneReport
	rel, err := snapshot.Rel(fromDir, src.Path)
	if err != nil {
		return rep, err
	}
	start := filepath.Join(toDir, rel)
	if !e.fs.IsDir(start) {
		return rep, nil
	}
	err = e.pruneDir(start, &src, &rep)
	return rep, err
}

// PruneReport summarizes one Prune call.
type PruneReport struct {
	Removed  int
	Failures []error
}

// Err combines every removal failure, or returns nil if there were none.
func (r PruneReport) Err() error {
	return multierr.Combine(r.Failures...)
}

func (e *Engine) pruneDir(target string, src *snapshot.Directory, rep *PruneReport) error {
	entries, err := e.fs.ReadDir(target)
	if err != nil {
		return fmt.Errorf("read dir %s: %w", target, err)
	}

	files := make(map[string]bool, len(src.Files))
	for _, f := range src.Files {
		files[f.Name] = true
	}
	dirs := make(map[string]*snapshot.Directory, len(src.Dirs))
	for i := range src.Dirs {
		dirs[src.Dirs[i].Name] = &src.Dirs[i]
	}

	for _, entry := range entries {
		path := filepath.Join(target, entry.Name())
		isLink := entry.Type()&os.ModeSymlink != 0

		if sub, ok := dirs[entry.Name()]; ok && entry.IsDir() && !isLink {
			if err := e.pruneDir(path, sub, rep); err != nil {
				return err
			}
			continue
		}
		if files[entry.Name()] && entry.Type().IsRegular() {
			continue
		}

		if entry.IsDir() && !isLink {
			err = e.fs.RemoveAll(path)
		} else {
			err = e.fs.Remove(path)
		}
		if err != nil {
			rep.Failures = append(rep.Failures, fmt.Errorf("remove %s: %w", path, err))
			continue
		}
		rep.Removed++
		e.logger.Debug("pruned", zap.String("path", path))
	}
	return nil
}
