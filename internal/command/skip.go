package command

import (
	"errors"

	"tocadiscos/internal/music/player"
)

type SkipCommand struct{}

func (c *SkipCommand) Name() string        { return "skip" }
func (c *SkipCommand) Aliases() []string   { return []string{"s"} }
func (c *SkipCommand) Description() string { return "Skip to the next track" }
func (c *SkipCommand) Category() string    { return "control" }

func (c *SkipCommand) Run(ctx *Context) error {
	p := ctx.Bot.Player(ctx.GuildID())
	if err := p.Skip(); err != nil {
		if errors.Is(err, player.ErrNotPlaying) {
			return Reply(ctx, "Nothing is playing.")
		}
		return err
	}
	return Reply(ctx, "Skipped.")
}
