package middleware

import (
	"github.com/DobbiKov/translate-dir-lib/internal/command"
	"github.com/DobbiKov/translate-dir-lib/internal/project"
)

// WithProject opens the project containing the working directory and
// stores it in the context before the command runs.
func WithProject() command.Middleware {
	return func(cmd command.Command) command.Command {
		return &command.WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *command.Context) error {
				p, err := project.Load(ctx.Dir, ctx.ProjectOptions()...)
				if err != nil {
					return err
				}
				ctx.Project = p
				return cmd.Run(ctx)
			},
		}
	}
}
