package project

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/DobbiKov/translate-dir-lib/internal/fs"
	"github.com/DobbiKov/translate-dir-lib/internal/lang"
	"github.com/DobbiKov/translate-dir-lib/internal/snapshot"
)

// SetSource makes the directory dirName under the project root the source
// of translations in language l and snapshots it.
func (p *Project) SetSource(dirName string, l lang.Language) error {
	if !l.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidLanguage, l)
	}
	if src, ok := p.SourceLanguage(); ok && src == l {
		return fmt.Errorf("%w: %s is already the source language", ErrLangInProject, l)
	}
	if p.config.target(l) >= 0 {
		return fmt.Errorf("%w: %s is already a target language", ErrLangInProject, l)
	}

	dir, err := p.existingDir(filepath.Join(p.root, dirName))
	if err != nil {
		return err
	}
	if dir == p.root {
		return fmt.Errorf("%w: the source cannot be the project root itself", ErrInvalidPath)
	}
	for _, ld := range p.config.LangDirs {
		if overlaps(dir, ld.Dir.Path) {
			return fmt.Errorf("%w: %s overlaps the %s directory", ErrDirInUse, dir, ld.Language)
		}
	}

	tree, err := snapshot.Build(p.fs, dir)
	if err != nil {
		return fmt.Errorf("analyze source directory: %w", err)
	}
	p.config.SrcDir = &LangDir{Dir: tree, Language: l}
	if err := p.save(); err != nil {
		return err
	}
	p.logger.Info("source directory set", zap.String("language", l.String()), zap.String("dir", dir))
	return nil
}

// AddTarget adds l as a target language with a new directory named after
// the project and the language suffix, and returns that directory.
func (p *Project) AddTarget(l lang.Language) (string, error) {
	if err := p.checkNewTarget(l); err != nil {
		return "", err
	}
	if p.config.target(l) >= 0 {
		return "", fmt.Errorf("%w: %s is already a target language", ErrLangInProject, l)
	}

	dir := filepath.Join(p.root, p.config.Name+l.Suffix())
	if _, err := p.fs.Lstat(dir); err == nil {
		return "", fmt.Errorf("%w: %s", ErrLangDirExists, dir)
	}
	if err := p.fs.Mkdir(dir, fs.DirPerm); err != nil {
		return "", fmt.Errorf("create language directory: %w", err)
	}
	if err := p.attachTarget(l, dir); err != nil {
		return "", err
	}
	return dir, nil
}

// AddTargetDir makes an existing directory inside the project root the
// directory of target language l, replacing l's previous directory if it
// had one. A relative dir is taken relative to the project root.
func (p *Project) AddTargetDir(l lang.Language, dir string) (string, error) {
	if err := p.checkNewTarget(l); err != nil {
		return "", err
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(p.root, dir)
	}
	resolved, err := p.existingDir(dir)
	if err != nil {
		return "", err
	}
	if resolved == p.root {
		return "", fmt.Errorf("%w: a target cannot be the project root itself", ErrInvalidPath)
	}
	if overlaps(resolved, p.config.SrcDir.Dir.Path) {
		return "", fmt.Errorf("%w: %s", ErrOverlapsSource, resolved)
	}
	for _, ld := range p.config.LangDirs {
		if ld.Language != l && overlaps(resolved, ld.Dir.Path) {
			return "", fmt.Errorf("%w: %s overlaps the %s directory", ErrDirInUse, resolved, ld.Language)
		}
	}

	if err := p.attachTarget(l, resolved); err != nil {
		return "", err
	}
	return resolved, nil
}

// RemoveTarget drops l from the project and, unless keepDir is set, deletes
// its directory.
func (p *Project) RemoveTarget(l lang.Language, keepDir bool) error {
	i := p.config.target(l)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrTargetNotInProject, l)
	}
	dir := p.config.LangDirs[i].Dir.Path

	p.config.LangDirs = append(p.config.LangDirs[:i:i], p.config.LangDirs[i+1:]...)
	if err := p.save(); err != nil {
		return err
	}

	if keepDir {
		return nil
	}
	if !p.fs.IsDir(dir) {
		p.logger.Warn("language directory not found, removed from config only",
			zap.String("language", l.String()), zap.String("dir", dir))
		return nil
	}
	if err := p.fs.RemoveAll(dir); err != nil {
		return fmt.Errorf("remove language directory %s: %w", dir, err)
	}
	p.logger.Info("target removed", zap.String("language", l.String()), zap.String("dir", dir))
	return nil
}

func (p *Project) checkNewTarget(l lang.Language) error {
	if !l.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidLanguage, l)
	}
	src, ok := p.SourceLanguage()
	if !ok {
		return ErrNoSource
	}
	if src == l {
		return fmt.Errorf("%w: %s is the source language", ErrLangInProject, l)
	}
	return nil
}

// attachTarget snapshots dir and records it as l's directory, replacing an
// existing entry in place or appending a new one.
func (p *Project) attachTarget(l lang.Language, dir string) error {
	tree, err := snapshot.Build(p.fs, dir)
	if err != nil {
		return fmt.Errorf("analyze language directory: %w", err)
	}
	ld := LangDir{Dir: tree, Language: l}
	if i := p.config.target(l); i >= 0 {
		p.config.LangDirs[i] = ld
	} else {
		p.config.LangDirs = append(p.config.LangDirs, ld)
	}
	if err := p.save(); err != nil {
		return err
	}
	p.logger.Info("target added", zap.String("language", l.String()), zap.String("dir", dir))
	return nil
}

// existingDir checks that path is a directory inside the project root and
// returns its canonical form.
func (p *Project) existingDir(path string) (string, error) {
	info, err := p.fs.Stat(path)
	if err != nil {
		if p.fs.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrDirNotFound, path)
		}
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}
	resolved, err := p.canonical(path)
	if err != nil {
		return "", err
	}
	if !snapshot.IsUnder(p.root, resolved) {
		return "", fmt.Errorf("%w: %s", ErrOutsideRoot, resolved)
	}
	return resolved, nil
}

// overlaps reports whether one of a and b contains the other.
func overlaps(a, b string) bool {
	return snapshot.IsUnder(a, b) || snapshot.IsUnder(b, a)
}
