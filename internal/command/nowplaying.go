package command

import (
	"github.com/bwmarrin/discordgo"
)

type NowPlayingCommand struct{}

func (c *NowPlayingCommand) Name() string        { return "nowplaying" }
func (c *NowPlayingCommand) Aliases() []string   { return []string{"np"} }
func (c *NowPlayingCommand) Description() string { return "Show the track currently playing" }
func (c *NowPlayingCommand) Category() string    { return "playback" }

func (c *NowPlayingCommand) Run(ctx *Context) error {
	q := ctx.Bot.Player(ctx.GuildID()).Queue()
	track, ok := q.Current()
	if !ok {
		return Reply(ctx, "Nothing is playing.")
	}

	loopState := "off"
	if q.Loop() {
		loopState = "on"
	}
	embed := &discordgo.MessageEmbed{
		Title:       "Now playing",
		Description: "**" + TrackLabel(track.Title, track.URL) + "**",
		URL:         track.URL,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Source", Value: track.Provider.DisplayName(), Inline: true},
			{Name: "Duration", Value: FormatDuration(track.Duration), Inline: true},
			{Name: "Loop", Value: loopState, Inline: true},
		},
	}
	if track.ThumbnailURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: track.ThumbnailURL}
	}
	return ReplyEmbed(ctx, embed)
}
