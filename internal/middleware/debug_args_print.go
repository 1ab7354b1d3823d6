package middleware

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/DobbiKov/translate-dir-lib/internal/command"
)

// WithDebugArgsPrint dumps the parsed arguments and flags at debug level.
func WithDebugArgsPrint() command.Middleware {
	return func(cmd command.Command) command.Command {
		return &command.WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *command.Context) error {
				if ctx.Logger != nil && ctx.Logger.Core().Enabled(zap.DebugLevel) {
					flags := map[string]string{}
					if ctx.Flags != nil {
						ctx.Flags.Visit(func(f *pflag.Flag) { flags[f.Name] = f.Value.String() })
					}
					ctx.Logger.Debug("command arguments",
						zap.String("command", cmd.Name()),
						zap.String("args", spew.Sdump(ctx.Args)),
						zap.String("flags", spew.Sdump(flags)),
					)
				}
				return cmd.Run(ctx)
			},
		}
	}
}
