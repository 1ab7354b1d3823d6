// Package mirror propagates the non-translatable files of a source snapshot
// into per-language target directories.
package mirror

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/DobbiKov/translate-dir-lib/internal/fs"
	"github.com/DobbiKov/translate-dir-lib/internal/snapshot"
)

// ErrNotDirectory is returned when a target path that has to be a directory
// is occupied by something else.
var ErrNotDirectory = errors.New("destination exists and is not a directory")

// CopyError describes one file that could not be copied into a target.
type CopyError struct {
	Source string
	Dest   string
	Err    error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("copy %s to %s: %v", e.Source, e.Dest, e.Err)
}

func (e *CopyError) Unwrap() error {
	return e.Err
}

// Report summarizes one Mirror call.
type Report struct {
	Copied      int
	Skipped     int
	DirsCreated int
	Failures    []*CopyError
}

// Err combines every copy failure, or returns nil if there were none.
func (r Report) Err() error {
	var err error
	for _, f := range r.Failures {
		err = multierr.Append(err, f)
	}
	return err
}

type Engine struct {
	fs     fs.FS
	logger *zap.Logger
}

type Option func(*Engine)

func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

func New(fsys fs.FS, opts ...Option) *Engine {
	e := &Engine{fs: fsys, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Mirror copies every untranslatable file of src from root/sourceName into
// root/targetName at the same relative path, overwriting what is there, and
// creates every directory of src in the target. Translatable files are never
// touched.
//
// Directory creation failures and entries of src that do not live under
// root/sourceName abort the call. Failed file copies do not: they are
// collected in the report and the walk goes on.
func (e *Engine) Mirror(root, sourceName, targetName string, src snapshot.Directory) (Report, error) {
	fromDir := filepath.Join(root, sourceName)
	toDir := filepath.Join(root, targetName)
	log := e.logger.With(zap.String("from", fromDir), zap.String("to", toDir))

	var rep Report
	created, err := e.ensureDir(toDir, true)
	if err != nil {
		return rep, err
	}
	if created {
		rep.DirsCreated++
	}

	if err := e.mirrorDir(log, fromDir, toDir, &src, &rep); err != nil {
		return rep, err
	}
	log.Debug("mirror finished",
		zap.Int("copied", rep.Copied),
		zap.Int("skipped", rep.Skipped),
		zap.Int("dirs_created", rep.DirsCreated),
		zap.Int("failed", len(rep.Failures)),
	)
	return rep, nil
}

func (e *Engine) mirrorDir(log *zap.Logger, fromDir, toDir string, dir *snapshot.Directory, rep *Report) error {
	for _, f := range dir.Files {
		if f.Translatable {
			rep.Skipped++
			log.Debug("skip translatable file", zap.String("path", f.Path))
			continue
		}
		rel, err := snapshot.Rel(fromDir, f.Path)
		if err != nil {
			return err
		}
		dest := filepath.Join(toDir, rel)
		if err := fs.CopyFile(e.fs, f.Path, dest); err != nil {
			log.Warn("copy failed", zap.String("path", f.Path), zap.Error(err))
			rep.Failures = append(rep.Failures, &CopyError{Source: f.Path, Dest: dest, Err: err})
			continue
		}
		rep.Copied++
		log.Debug("copied", zap.String("path", f.Path), zap.String("dest", dest))
	}

	for i := range dir.Dirs {
		sub := &dir.Dirs[i]
		rel, err := snapshot.Rel(fromDir, sub.Path)
		if err != nil {
			return err
		}
		created, err := e.ensureDir(filepath.Join(toDir, rel), false)
		if err != nil {
			return err
		}
		if created {
			rep.DirsCreated++
			log.Debug("created directory", zap.String("path", filepath.Join(toDir, rel)))
		}
		if err := e.mirrorDir(log, fromDir, toDir, sub, rep); err != nil {
			return err
		}
	}
	return nil
}

// ensureDir creates path if it does not exist and reports whether it did.
func (e *Engine) ensureDir(path string, parents bool) (bool, error) {
	info, err := e.fs.Lstat(path)
	switch {
	case err == nil && info.IsDir():
		return false, nil
	case err == nil && info.Mode()&os.ModeSymlink != 0:
		return false, fmt.Errorf("%w: %s is a symlink", ErrNotDirectory, path)
	case err == nil:
		return false, fmt.Errorf("%w: %s", ErrNotDirectory, path)
	case !e.fs.IsNotExist(err):
		return false, fmt.Errorf("stat %s: %w", path, err)
	}

	if parents {
		err = e.fs.MkdirAll(path, fs.DirPerm)
	} else {
		err = e.fs.Mkdir(path, fs.DirPerm)
	}
	if err != nil {
		return false, fmt.Errorf("create directory %s: %w", path, err)
	}
	return true, nil
}
