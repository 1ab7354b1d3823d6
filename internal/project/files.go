package project

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/DobbiKov/translate-dir-lib/internal/snapshot"
)

// SetTranslatable sets the translatable flag of the source file at path.
// Relative paths and symlinks are resolved before the lookup.
func (p *Project) SetTranslatable(path string, translatable bool) error {
	if p.config.SrcDir == nil {
		return ErrNoSource
	}
	resolved, err := p.canonical(path)
	if err != nil {
		if p.fs.IsNotExist(err) {
			return fmt.Errorf("%w: %s", snapshot.ErrFileNotFound, path)
		}
		return err
	}

	found := snapshot.FindAndApply(&p.config.SrcDir.Dir, resolved, func(f *snapshot.File) {
		f.Translatable = translatable
	})
	if !found {
		return fmt.Errorf("%w: %s is not part of the source directory", snapshot.ErrFileNotFound, resolved)
	}
	if err := p.save(); err != nil {
		return err
	}
	p.logger.Debug("translatable flag set", zap.String("path", resolved), zap.Bool("translatable", translatable))
	return nil
}

// TranslatableFiles lists the translatable source files breadth-first.
func (p *Project) TranslatableFiles() ([]string, error) {
	if p.config.SrcDir == nil {
		return nil, ErrNoSource
	}
	var out []string
	for _, f := range p.config.SrcDir.Dir.BreadthFirst() {
		if f.Translatable {
			out = append(out, f.Path)
		}
	}
	return out, nil
}

// RefreshSource rescans the source directory, keeping the flag of every
// file that is still there. The project is saved only when the tree
// changed, which is what the returned flag reports.
func (p *Project) RefreshSource() (bool, error) {
	if p.config.SrcDir == nil {
		return false, ErrNoSource
	}
	before := snapshot.Fingerprint(p.config.SrcDir.Dir)
	if err := p.refreshSource(); err != nil {
		return false, err
	}
	if snapshot.Fingerprint(p.config.SrcDir.Dir) == before {
		p.logger.Debug("source directory unchanged", zap.String("path", p.config.SrcDir.Dir.Path))
		return false, nil
	}
	return true, p.save()
}

func (p *Project) refreshSource() error {
	old := p.config.SrcDir.Dir
	tree, err := snapshot.Build(p.fs, old.Path)
	if err != nil {
		return fmt.Errorf("rescan source directory: %w", err)
	}
	p.config.SrcDir.Dir = snapshot.Merge(old, tree)
	return nil
}
