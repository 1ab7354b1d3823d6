// Package project ties a source directory and its per-language mirrors
// together and persists their snapshots in the project document.
package project

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/DobbiKov/translate-dir-lib/internal/config"
	"github.com/DobbiKov/translate-dir-lib/internal/fs"
	"github.com/DobbiKov/translate-dir-lib/internal/lang"
	"github.com/DobbiKov/translate-dir-lib/internal/metrics"
	"github.com/DobbiKov/translate-dir-lib/internal/mirror"
	"github.com/DobbiKov/translate-dir-lib/internal/snapshot"
	"github.com/DobbiKov/translate-dir-lib/internal/util"
)

type Project struct {
	root    string
	config  Config
	fs      fs.FS
	logger  *zap.Logger
	metrics *metrics.Metrics
	workers int
	engine  *mirror.Engine
}

type Option func(*Project)

func WithFS(fsys fs.FS) Option {
	return func(p *Project) { p.fs = fsys }
}

func WithLogger(l *zap.Logger) Option {
	return func(p *Project) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithMetrics makes Sync record its results in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Project) { p.metrics = m }
}

// WithWorkers bounds how many targets Sync processes at once.
func WithWorkers(n int) Option {
	return func(p *Project) { p.workers = n }
}

func newProject(opts []Option) *Project {
	p := &Project{
		fs:      fs.NewOSFS(),
		logger:  zap.NewNop(),
		workers: util.WorkerCount(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.engine = mirror.New(p.fs, mirror.WithLogger(p.logger.Named("mirror")))
	return p
}

// canonical makes path absolute and resolves symlinks in it.
func (p *Project) canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	resolved, err := p.fs.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	return resolved, nil
}

// Init creates a new project document in the existing directory path.
func Init(name, path string, opts ...Option) (*Project, error) {
	p := newProject(opts)
	if name == "" {
		return nil, fmt.Errorf("%w: project name must not be empty", ErrInvalidPath)
	}
	if !p.fs.IsDir(path) {
		return nil, fmt.Errorf("%w: %s is not an existing directory", ErrInvalidPath, path)
	}
	root, err := p.canonical(path)
	if err != nil {
		return nil, err
	}
	if p.fs.Exists(config.ConfigPath(root)) {
		return nil, fmt.Errorf("%w: %s exists", ErrAlreadyInitialized, config.ConfigPath(root))
	}

	p.root = root
	p.config = Config{
		Version:  config.SchemaVersion,
		Name:     name,
		RootPath: root,
		LangDirs: []LangDir{},
	}
	if err := p.save(); err != nil {
		return nil, err
	}
	p.logger.Info("project initialized", zap.String("name", name), zap.String("root", root))
	return p, nil
}

// Load opens the project containing path, searching upward for the
// project document. A project moved on disk since it was last saved has its
// snapshot paths rewritten to the new location and saved again.
func Load(path string, opts ...Option) (*Project, error) {
	p := newProject(opts)
	start, err := p.canonical(path)
	if err != nil {
		return nil, err
	}
	root, err := config.ResolveProjectRoot(p.fs, start)
	if err != nil {
		return nil, err
	}
	p.root = root

	if err := util.ReadJSON(p.fs, config.ConfigPath(root), &p.config); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := config.CheckVersion(p.config.Version); err != nil {
		return nil, err
	}
	if p.config.LangDirs == nil {
		p.config.LangDirs = []LangDir{}
	}

	if p.config.Version == "" || p.config.RootPath != root {
		if p.config.RootPath != "" && p.config.RootPath != root {
			p.relocate(p.config.RootPath, root)
		}
		p.config.Version = config.SchemaVersion
		p.config.RootPath = root
		if err := p.save(); err != nil {
			return nil, err
		}
	}
	p.logger.Debug("project loaded", zap.String("name", p.config.Name), zap.String("root", root))
	return p, nil
}

func (p *Project) relocate(oldRoot, newRoot string) {
	p.logger.Info("project moved, rewriting paths", zap.String("from", oldRoot), zap.String("to", newRoot))
	rebase := func(ld *LangDir) {
		dir, skipped := snapshot.Rebase(ld.Dir, oldRoot, newRoot)
		for _, s := range skipped {
			p.logger.Warn("path outside the old project root left unchanged",
				zap.String("language", ld.Language.String()), zap.String("path", s))
		}
		ld.Dir = dir
	}
	if p.config.SrcDir != nil {
		rebase(p.config.SrcDir)
	}
	for i := range p.config.LangDirs {
		rebase(&p.config.LangDirs[i])
	}
}

func (p *Project) save() error {
	if err := util.WriteJSON(p.fs, config.ConfigPath(p.root), p.config); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (p *Project) Root() string { return p.root }
func (p *Project) Name() string { return p.config.Name }

// Config returns a deep copy of the project document.
func (p *Project) Config() Config { return p.config.Clone() }

func (p *Project) SourceLanguage() (lang.Language, bool) {
	if p.config.SrcDir == nil {
		return "", false
	}
	return p.config.SrcDir.Language, true
}

// Source returns a copy of the source snapshot.
func (p *Project) Source() (snapshot.Directory, bool) {
	if p.config.SrcDir == nil {
		return snapshot.Directory{}, false
	}
	return p.config.SrcDir.Dir.Clone(), true
}

func (p *Project) Targets() []lang.Language { return p.config.languages() }

// Target returns a copy of the snapshot of l's directory.
func (p *Project) Target(l lang.Language) (snapshot.Directory, bool) {
	i := p.config.target(l)
	if i < 0 {
		return snapshot.Directory{}, false
	}
	return p.config.LangDirs[i].Dir.Clone(), true
}
