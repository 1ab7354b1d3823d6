package status

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/DobbiKov/translate-dir-lib/internal/command"
	"github.com/DobbiKov/translate-dir-lib/internal/lang"
	"github.com/DobbiKov/translate-dir-lib/internal/middleware"
	"github.com/DobbiKov/translate-dir-lib/internal/mirror"
)

type Command struct{}

func (c *Command) Name() string      { return "status" }
func (c *Command) Short() string     { return "S" }
func (c *Command) Aliases() []string { return []string{"st"} }
func (c *Command) Usage() string     { return "status [options] [language...]" }
func (c *Command) Brief() string     { return "Compare target directories with the source" }

func (c *Command) Help() string {
	return `Show how every target directory compares with the source snapshot.

States:
  ok             untranslatable file, target copy is identical
  differs        untranslatable file, target copy has other content
  missing        untranslatable file, no target copy (run sync)
  translated     translatable file present in the target
  untranslated   translatable file absent from the target

Options:
  -s, --short    Hide files that are ok or translated`
}

func (c *Command) Subcommands() []command.Command { return nil }

func (c *Command) Flags(fs *pflag.FlagSet) {
	fs.BoolP("short", "s", false, "hide files that are ok or translated")
}

func (c *Command) Run(ctx *command.Context) error {
	short, _ := ctx.Flags.GetBool("short")

	var only []lang.Language
	for _, arg := range ctx.Args {
		l, err := lang.Parse(arg)
		if err != nil {
			return command.Usagef(c, "%w", err)
		}
		only = append(only, l)
	}

	p := ctx.Project
	results, err := p.Status(only...)
	if err != nil {
		return err
	}
	cfg := p.Config()
	dirs := make(map[lang.Language]string, len(cfg.LangDirs))
	for _, ld := range cfg.LangDirs {
		dirs[ld.Language] = ld.Dir.Path
	}

	first := true
	for el := results.Front(); el != nil; el = el.Next() {
		if !first {
			fmt.Fprintln(ctx.Stdout)
		}
		first = false
		fmt.Fprintf(ctx.Stdout, "%s (%s)\n", el.Key, p.Rel(dirs[el.Key]))

		counts := map[mirror.State]int{}
		for _, st := range el.Value {
			counts[st.State]++
			if short && (st.State == mirror.StateOK || st.State == mirror.StateTranslated) {
				continue
			}
			fmt.Fprintf(ctx.Stdout, "  %-13s %s\n", st.State, st.Rel)
		}
		fmt.Fprintf(ctx.Stdout, "  %d ok, %d differs, %d missing, %d translated, %d untranslated\n",
			counts[mirror.StateOK], counts[mirror.StateDiffers], counts[mirror.StateMissing],
			counts[mirror.StateTranslated], counts[mirror.StateUntranslated])
	}
	return nil
}

func init() {
	command.RegisterCommand(
		command.ApplyMiddlewares(
			&Command{},
			middleware.WithDebugArgsPrint(),
			middleware.WithProject(),
		),
	)
}
