package command

import (
	"github.com/rs/zerolog"
)

type Middleware func(Command) Command

type WrappedCommand struct {
	Command
	wrap func(ctx *Context) error
}

func (w *WrappedCommand) Run(ctx *Context) error {
	if w.wrap != nil {
		return w.wrap(ctx)
	}
	return w.Command.Run(ctx)
}

func ApplyMiddlewares(cmd Command, mws ...Middleware) Command {
	for _, mw := range mws {
		cmd = mw(cmd)
	}
	return cmd
}

// WithGuildOnly rejects invocations outside a guild (DMs).
func WithGuildOnly() Middleware {
	return func(next Command) Command {
		return &WrappedCommand{Command: next, wrap: func(ctx *Context) error {
			if ctx.GuildID() == "" {
				return Reply(ctx, "This command only works inside a server.")
			}
			return next.Run(ctx)
		}}
	}
}

// WithPermissionCheck requires the invoking member to hold perm.
func WithPermissionCheck(perm int64) Middleware {
	return func(next Command) Command {
		return &WrappedCommand{Command: next, wrap: func(ctx *Context) error {
			perms, err := ctx.Session.UserChannelPermissions(ctx.AuthorID(), ctx.ChannelID())
			if err != nil || perms&perm == 0 {
				return Reply(ctx, "You don't have permission to use this command.")
			}
			return next.Run(ctx)
		}}
	}
}

// WithCommandLogger records every invocation.
func WithCommandLogger(log zerolog.Logger) Middleware {
	return func(next Command) Command {
		return &WrappedCommand{Command: next, wrap: func(ctx *Context) error {
			log.Info().
				Str("command", next.Name()).
				Str("guild", ctx.GuildID()).
				Str("user", ctx.Message.Author.Username).
				Strs("args", ctx.Args).
				Msg("command invoked")
			return next.Run(ctx)
		}}
	}
}
