package middleware_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/DobbiKov/translate-dir-lib/internal/command"
	"github.com/DobbiKov/translate-dir-lib/internal/middleware"
	"github.com/DobbiKov/translate-dir-lib/internal/project"
)

type recorder struct {
	ctx *command.Context
}

func (c *recorder) Name() string                   { return "record" }
func (c *recorder) Short() string                  { return "R" }
func (c *recorder) Aliases() []string              { return nil }
func (c *recorder) Usage() string                  { return "record" }
func (c *recorder) Brief() string                  { return "" }
func (c *recorder) Help() string                   { return "" }
func (c *recorder) Subcommands() []command.Command { return nil }
func (c *recorder) Flags(fs *pflag.FlagSet)        {}

func (c *recorder) Run(ctx *command.Context) error {
	c.ctx = ctx
	return nil
}

func TestWithProject(t *testing.T) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	_, err = project.Init("book", root)
	require.NoError(t, err)
	sub := filepath.Join(root, "deeper")
	require.NoError(t, os.Mkdir(sub, 0o755))

	rec := &recorder{}
	cmd := command.ApplyMiddlewares(rec, middleware.WithProject())
	require.NoError(t, cmd.Run(&command.Context{Dir: sub}))
	require.NotNil(t, rec.ctx.Project)
	assert.Equal(t, root, rec.ctx.Project.Root())
	assert.Equal(t, "book", rec.ctx.Project.Name())
}

func TestWithProject_OutsideProject(t *testing.T) {
	rec := &recorder{}
	cmd := command.ApplyMiddlewares(rec, middleware.WithProject())
	err := cmd.Run(&command.Context{Dir: t.TempDir()})
	require.ErrorIs(t, err, project.ErrNoConfig)
	assert.Nil(t, rec.ctx)
}

func TestWithDebugArgsPrint(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	fs := pflag.NewFlagSet("record", pflag.ContinueOnError)
	fs.Bool("keep", false, "")
	require.NoError(t, fs.Parse([]string{"--keep", "en"}))

	rec := &recorder{}
	cmd := command.ApplyMiddlewares(rec, middleware.WithDebugArgsPrint())
	require.NoError(t, cmd.Run(&command.Context{Args: fs.Args(), Flags: fs, Logger: zap.New(core)}))
	require.NotNil(t, rec.ctx)

	entries := logs.FilterMessage("command arguments").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "record", fields["command"])
	assert.Contains(t, fields["args"], `"en"`)
	assert.Contains(t, fields["flags"], `"keep": (string) (len=4) "true"`)
}

func TestWithDebugArgsPrint_QuietAboveDebug(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	rec := &recorder{}
	cmd := command.ApplyMiddlewares(rec, middleware.WithDebugArgsPrint())
	require.NoError(t, cmd.Run(&command.Context{Logger: zap.New(core)}))
	assert.Zero(t, logs.Len())
}
