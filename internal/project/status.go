package project

import (
	"fmt"
	"path/filepath"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/DobbiKov/translate-dir-lib/internal/lang"
	"github.com/DobbiKov/translate-dir-lib/internal/mirror"
	"github.com/DobbiKov/translate-dir-lib/internal/snapshot"
)

// Status compares the source snapshot with every target directory without
// changing anything. If only is non-empty, just those languages are checked.
func (p *Project) Status(only ...lang.Language) (*orderedmap.OrderedMap[lang.Language, []mirror.FileStatus], error) {
	if p.config.SrcDir == nil {
		return nil, ErrNoSource
	}
	src := p.config.SrcDir.Dir

	want := make(map[lang.Language]bool, len(only))
	for _, l := range only {
		if p.config.target(l) < 0 {
			return nil, fmt.Errorf("%w: %s", ErrTargetNotInProject, l)
		}
		want[l] = true
	}

	out := orderedmap.NewOrderedMap[lang.Language, []mirror.FileStatus]()
	for _, ld := range p.config.LangDirs {
		if len(want) > 0 && !want[ld.Language] {
			continue
		}
		st, err := p.engine.Status(src.Path, ld.Dir.Path, src)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ld.Language, err)
		}
		out.Set(ld.Language, st)
	}
	return out, nil
}

// Rel shows path relative to the project root when it lies inside it.
func (p *Project) Rel(path string) string {
	rel, err := snapshot.Rel(p.root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
