package project

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/elliotchance/orderedmap/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/DobbiKov/translate-dir-lib/internal/lang"
	"github.com/DobbiKov/translate-dir-lib/internal/metrics"
	"github.com/DobbiKov/translate-dir-lib/internal/mirror"
	"github.com/DobbiKov/translate-dir-lib/internal/snapshot"
	"github.com/DobbiKov/translate-dir-lib/internal/util"
)

type SyncOptions struct {
	// Refresh rescans the source first, keeping flags of files that remain.
	Refresh bool
	// Prune removes target entries that no longer exist in the source.
	Prune bool
	// Done is called once per finished target. Targets are synced in
	// parallel, so it may be called concurrently.
	Done func(SyncResult)
}

type SyncResult struct {
	Language lang.Language
	Dir      string
	Report   mirror.Report
	Prune    mirror.PruneReport
	Duration time.Duration
}

// Sync mirrors the untranslatable source files into every target directory,
// then replaces each target snapshot with a fresh scan and saves the
// project. Results are keyed by language in configuration order.
//
// A structural failure in any target (a stale snapshot, a directory that
// cannot be created or scanned) is returned as is and nothing is saved.
// Files that could not be copied or pruned do not stop the sync; they are
// reported together in a *SyncError after the project has been saved.
func (p *Project) Sync(ctx context.Context, opts SyncOptions) (*orderedmap.OrderedMap[lang.Language, SyncResult], error) {
	if p.config.SrcDir == nil {
		return nil, ErrNoSource
	}
	if len(p.config.LangDirs) == 0 {
		return nil, ErrNoTargets
	}
	if opts.Refresh {
		if err := p.refreshSource(); err != nil {
			return nil, err
		}
	}

	src := p.config.SrcDir.Dir
	srcName, err := snapshot.Rel(p.root, src.Path)
	if err != nil {
		return nil, fmt.Errorf("source directory: %w", err)
	}

	n := len(p.config.LangDirs)
	indexes := make([]int, n)
	for i := range indexes {
		indexes[i] = i
	}
	results := make([]SyncResult, n)
	rebuilt := make([]snapshot.Directory, n)

	err = util.Parallel(ctx, indexes, p.workers, func(_ context.Context, i int) error {
		ld := p.config.LangDirs[i]
		start := time.Now()
		res := SyncResult{Language: ld.Language, Dir: ld.Dir.Path}

		tgtName, err := snapshot.Rel(p.root, ld.Dir.Path)
		if err != nil {
			return fmt.Errorf("%s: %w", ld.Language, err)
		}
		if opts.Prune {
			res.Prune, err = p.engine.Prune(filepath.Join(p.root, srcName), ld.Dir.Path, src)
			if err != nil {
				return fmt.Errorf("%s: prune: %w", ld.Language, err)
			}
		}
		res.Report, err = p.engine.Mirror(p.root, srcName, tgtName, src)
		if err != nil {
			return fmt.Errorf("%s: %w", ld.Language, err)
		}
		rebuilt[i], err = snapshot.Build(p.fs, ld.Dir.Path)
		if err != nil {
			return fmt.Errorf("%s: rescan: %w", ld.Language, err)
		}

		res.Duration = time.Since(start)
		results[i] = res
		p.logger.Info("target synced",
			zap.String("language", ld.Language.String()),
			zap.Int("copied", res.Report.Copied),
			zap.Int("skipped", res.Report.Skipped),
			zap.Int("dirs_created", res.Report.DirsCreated),
			zap.Int("pruned", res.Prune.Removed),
			zap.Int("failed", len(res.Report.Failures)+len(res.Prune.Failures)),
			zap.Duration("took", res.Duration),
		)
		if opts.Done != nil {
			opts.Done(res)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for i := range rebuilt {
		p.config.LangDirs[i].Dir = rebuilt[i]
	}
	if err := p.save(); err != nil {
		return nil, err
	}

	out := orderedmap.NewOrderedMap[lang.Language, SyncResult]()
	var failures error
	failed := 0
	for _, res := range results {
		out.Set(res.Language, res)
		p.observe(res)
		if err := res.Report.Err(); err != nil {
			failures = multierr.Append(failures, fmt.Errorf("%s: %w", res.Language, err))
		}
		if err := res.Prune.Err(); err != nil {
			failures = multierr.Append(failures, fmt.Errorf("%s: prune: %w", res.Language, err))
		}
		failed += len(res.Report.Failures) + len(res.Prune.Failures)
	}
	if failures != nil {
		return out, &SyncError{Failed: failed, Err: failures}
	}
	return out, nil
}

func (p *Project) observe(res SyncResult) {
	if p.metrics == nil {
		return
	}
	p.metrics.ObserveSync(res.Language.String(), metrics.SyncStats{
		Copied:      res.Report.Copied,
		Skipped:     res.Report.Skipped,
		Failed:      len(res.Report.Failures) + len(res.Prune.Failures),
		DirsCreated: res.Report.DirsCreated,
		Pruned:      res.Prune.Removed,
		Duration:    res.Duration,
	})
}
