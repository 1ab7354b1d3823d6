package syncdirs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/DobbiKov/translate-dir-lib/internal/command"
	"github.com/DobbiKov/translate-dir-lib/internal/metrics"
	"github.com/DobbiKov/translate-dir-lib/internal/middleware"
	"github.com/DobbiKov/translate-dir-lib/internal/progress"
	"github.com/DobbiKov/translate-dir-lib/internal/project"
)

type Command struct{}

func (c *Command) Name() string      { return "sync" }
func (c *Command) Short() string     { return "Y" }
func (c *Command) Aliases() []string { return []string{"sy"} }
func (c *Command) Usage() string     { return "sync [options]" }
func (c *Command) Brief() string     { return "Copy untranslatable files into every target" }
func (c *Command) Help() string {
	return `Mirror the source directory into every target directory.

Every untranslatable source file is copied to the same place in each
target, overwriting what is there. Translatable files are never touched.
Files that cannot be copied are listed at the end and make the command
fail, but do not stop the other copies.`
}

func (c *Command) Subcommands() []command.Command { return nil }

func (c *Command) Flags(fs *pflag.FlagSet) {
	fs.BoolP("prune", "p", false, "remove target entries that are gone from the source")
	fs.BoolP("refresh", "r", false, "rescan the source directory first")
	fs.String("metrics-file", "", "write sync metrics in Prometheus textfile format to this path")
	fs.BoolP("quiet", "q", false, "do not show progress")
}

func (c *Command) Run(ctx *command.Context) error {
	if len(ctx.Args) != 0 {
		return command.Usagef(c, "unexpected arguments: %s", strings.Join(ctx.Args, " "))
	}
	prune, _ := ctx.Flags.GetBool("prune")
	refresh, _ := ctx.Flags.GetBool("refresh")
	quiet, _ := ctx.Flags.GetBool("quiet")
	metricsFile, _ := ctx.Flags.GetString("metrics-file")

	var extra []project.Option
	var m *metrics.Metrics
	if metricsFile != "" {
		m = metrics.New()
		extra = append(extra, project.WithMetrics(m))
	}
	p, err := project.Load(ctx.Dir, ctx.ProjectOptions(extra...)...)
	if err != nil {
		return err
	}

	opts := project.SyncOptions{Prune: prune, Refresh: refresh}
	var bar *progress.ProgressTracker
	if !quiet {
		bar = progress.NewProgress(ctx.Stderr, len(p.Targets()), "targets", "Syncing")
		opts.Done = func(project.SyncResult) { bar.Increment() }
	}
	results, err := p.Sync(ctx.Ctx, opts)
	if bar != nil {
		bar.Finish()
	}

	var syncErr *project.SyncError
	if err != nil && !errors.As(err, &syncErr) {
		return err
	}

	for el := results.Front(); el != nil; el = el.Next() {
		res := el.Value
		fmt.Fprintf(ctx.Stdout, "%-10s %s: %d copied, %d skipped, %d directories created",
			res.Language, p.Rel(res.Dir), res.Report.Copied, res.Report.Skipped, res.Report.DirsCreated)
		if prune {
			fmt.Fprintf(ctx.Stdout, ", %d pruned", res.Prune.Removed)
		}
		if n := len(res.Report.Failures) + len(res.Prune.Failures); n > 0 {
			fmt.Fprintf(ctx.Stdout, ", %d failed", n)
		}
		fmt.Fprintln(ctx.Stdout)
	}

	if m != nil {
		if err := m.WriteTextfile(ctx.Path(metricsFile)); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	if syncErr != nil {
		for el := results.Front(); el != nil; el = el.Next() {
			for _, f := range el.Value.Report.Failures {
				fmt.Fprintf(ctx.Stderr, "%s: %v\n", el.Key, f)
			}
			for _, f := range el.Value.Prune.Failures {
				fmt.Fprintf(ctx.Stderr, "%s: %v\n", el.Key, f)
			}
		}
		return syncErr
	}
	return nil
}

func init() {
	command.RegisterCommand(
		command.ApplyMiddlewares(
			&Command{},
			middleware.WithDebugArgsPrint(),
		),
	)
}
