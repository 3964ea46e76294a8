package command

import (
	"fmt"
	"strconv"
)

type VolumeCommand struct{}

func (c *VolumeCommand) Name() string        { return "volume" }
func (c *VolumeCommand) Aliases() []string   { return []string{"vol"} }
func (c *VolumeCommand) Description() string { return "Show or set playback volume (0-100)" }
func (c *VolumeCommand) Category() string    { return "control" }

func (c *VolumeCommand) Run(ctx *Context) error {
	q := ctx.Bot.Player(ctx.GuildID()).Queue()

	if len(ctx.Args) == 0 {
		return Reply(ctx, fmt.Sprintf("Volume is at **%d%%**.", int(q.Volume()*100)))
	}

	percent, err := strconv.Atoi(ctx.Args[0])
	if err != nil || percent < 0 || percent > 100 {
		return Reply(ctx, "Volume must be a number between 0 and 100.")
	}

	vol := float64(percent) / 100
	q.SetVolume(vol)
	if err := ctx.Bot.Store().SetVolume(ctx.GuildID(), vol); err != nil {
		return err
	}
	// Applies from the next track; the current stream keeps its gain.
	return Reply(ctx, fmt.Sprintf("Volume set to **%d%%**.", percent))
}
