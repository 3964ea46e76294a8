package command

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

const queuePageSize = 10

type QueueCommand struct{}

func (c *QueueCommand) Name() string        { return "queue" }
func (c *QueueCommand) Aliases() []string   { return []string{"q"} }
func (c *QueueCommand) Description() string { return "Show the current queue" }
func (c *QueueCommand) Category() string    { return "queue" }

func (c *QueueCommand) Run(ctx *Context) error {
	snap := ctx.Bot.Player(ctx.GuildID()).Queue().Snapshot()
	if snap.Current == nil && len(snap.Pending) == 0 {
		return Reply(ctx, "The queue is empty.")
	}

	var b strings.Builder
	if snap.Current != nil {
		loopMark := ""
		if snap.Loop {
			loopMark = " 🔁"
		}
		fmt.Fprintf(&b, "**Now playing:** %s%s\n\n", TrackLabel(snap.Current.Title, snap.Current.URL), loopMark)
	}
	for i, t := range snap.Pending {
		if i >= queuePageSize {
			break
		}
		fmt.Fprintf(&b, "`%2d.` %s `%s`\n", i+1, Truncate(TrackLabel(t.Title, t.URL), 60), FormatDuration(t.Duration))
	}
	if extra := len(snap.Pending) - queuePageSize; extra > 0 {
		fmt.Fprintf(&b, "\n…and %d more", extra)
	}

	return ReplyEmbed(ctx, &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Queue — %d pending", len(snap.Pending)),
		Description: b.String(),
	})
}
