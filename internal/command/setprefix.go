package command

import (
	"fmt"
	"unicode/utf8"
)

const maxPrefixLen = 5

type SetPrefixCommand struct{}

func (c *SetPrefixCommand) Name() string        { return "setprefix" }
func (c *SetPrefixCommand) Aliases() []string   { return nil }
func (c *SetPrefixCommand) Description() string { return "Change the command prefix for this server" }
func (c *SetPrefixCommand) Category() string    { return "config" }

func (c *SetPrefixCommand) Run(ctx *Context) error {
	if len(ctx.Args) == 0 {
		return Reply(ctx, fmt.Sprintf("Usage: `%ssetprefix <prefix>`", ctx.Prefix))
	}
	prefix := ctx.Args[0]
	if utf8.RuneCountInString(prefix) > maxPrefixLen {
		return Reply(ctx, fmt.Sprintf("Prefix must be at most %d characters.", maxPrefixLen))
	}

	if err := ctx.Bot.Store().SetPrefix(ctx.GuildID(), prefix); err != nil {
		return err
	}
	return Reply(ctx, fmt.Sprintf("Prefix changed to `%s`.", prefix))
}
