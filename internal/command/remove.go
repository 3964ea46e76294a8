package command

import (
	"errors"
	"fmt"
	"strconv"

	"tocadiscos/internal/music/queue"
)

type RemoveCommand struct{}

func (c *RemoveCommand) Name() string        { return "remove" }
func (c *RemoveCommand) Aliases() []string   { return []string{"rm"} }
func (c *RemoveCommand) Description() string { return "Remove a pending track by position" }
func (c *RemoveCommand) Category() string    { return "queue" }

func (c *RemoveCommand) Run(ctx *Context) error {
	if len(ctx.Args) == 0 {
		return Reply(ctx, fmt.Sprintf("Usage: `%sremove <position>`", ctx.Prefix))
	}
	index, err := strconv.Atoi(ctx.Args[0])
	if err != nil {
		return Reply(ctx, "Position must be a number.")
	}

	removed, err := ctx.Bot.Player(ctx.GuildID()).Queue().Remove(index)
	if err != nil {
		if errors.Is(err, queue.ErrIndexOutOfRange) {
			return Reply(ctx, fmt.Sprintf("No track at position %d.", index))
		}
		return err
	}
	return Reply(ctx, fmt.Sprintf("Removed **%s**.", TrackLabel(removed.Title, removed.URL)))
}
