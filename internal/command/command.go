package command

import (
	"context"
	"io"
	"path/filepath"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/DobbiKov/translate-dir-lib/internal/config"
	"github.com/DobbiKov/translate-dir-lib/internal/logging"
	"github.com/DobbiKov/translate-dir-lib/internal/project"
)

// Command represents a cli command
type Command interface {
	Name() string
	Short() string
	Aliases() []string
	Usage() string
	Brief() string
	Help() string
	Subcommands() []Command
	Flags(fs *pflag.FlagSet)
	Run(ctx *Context) error
}

// Context represents a cli context
type Context struct {
	Args  []string
	Flags *pflag.FlagSet

	// Ctx is cancelled when the process is interrupted.
	Ctx context.Context

	// Dir is the directory relative paths are resolved against.
	Dir      string
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *zap.Logger
	Settings config.Settings

	// Project is set by middleware.WithProject.
	Project *project.Project
}

// Path resolves p against the context directory.
func (c *Context) Path(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(c.Dir, p)
}

// ProjectOptions returns the options every command opens a project with.
func (c *Context) ProjectOptions(extra ...project.Option) []project.Option {
	opts := []project.Option{project.WithLogger(logging.Nop(c.Logger))}
	if c.Settings.Workers > 0 {
		opts = append(opts, project.WithWorkers(c.Settings.Workers))
	}
	return append(opts, extra...)
}
