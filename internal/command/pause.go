package command

import (
	"errors"

	"tocadiscos/internal/music/player"
)

type PauseCommand struct{}

func (c *PauseCommand) Name() string        { return "pause" }
func (c *PauseCommand) Aliases() []string   { return nil }
func (c *PauseCommand) Description() string { return "Pause the current track" }
func (c *PauseCommand) Category() string    { return "control" }

func (c *PauseCommand) Run(ctx *Context) error {
	if err := ctx.Bot.Player(ctx.GuildID()).Pause(); err != nil {
		if errors.Is(err, player.ErrNotPlaying) {
			return Reply(ctx, "Nothing is playing.")
		}
		return err
	}
	return Reply(ctx, "Paused. ⏸️")
}

type ResumeCommand struct{}

func (c *ResumeCommand) Name() string        { return "resume" }
func (c *ResumeCommand) Aliases() []string   { return nil }
func (c *ResumeCommand) Description() string { return "Resume a paused track" }
func (c *ResumeCommand) Category() string    { return "control" }

func (c *ResumeCommand) Run(ctx *Context) error {
	if err := ctx.Bot.Player(ctx.GuildID()).Resume(); err != nil {
		if errors.Is(err, player.ErrNotPlaying) {
			return Reply(ctx, "Nothing is paused.")
		}
		return err
	}
	return Reply(ctx, "Resumed. ▶️")
}
