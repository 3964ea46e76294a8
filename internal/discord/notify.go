package discord

import (
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"tocadiscos/internal/command"
	"tocadiscos/internal/music/sources"
)

// channelNotifier posts playback events to the text channel that started
// playback. Send failures are logged and swallowed; playback never blocks
// on chat delivery.
type channelNotifier struct {
	dg  *discordgo.Session
	log zerolog.Logger
}

func (n *channelNotifier) NowPlaying(channelID string, t sources.Track) {
	if channelID == "" {
		return
	}
	embed := &discordgo.MessageEmbed{
		Title:       "Now playing",
		Description: "**" + command.TrackLabel(t.Title, t.URL) + "**",
		URL:         t.URL,
		Color:       command.EmbedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Source", Value: t.Provider.DisplayName(), Inline: true},
			{Name: "Duration", Value: command.FormatDuration(t.Duration), Inline: true},
		},
	}
	if t.ThumbnailURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: t.ThumbnailURL}
	}
	if _, err := n.dg.ChannelMessageSendEmbed(channelID, embed); err != nil {
		n.log.Warn().Err(err).Str("channel", channelID).Msg("failed to post now-playing")
	}
}

func (n *channelNotifier) Error(channelID string, message string) {
	if channelID == "" {
		return
	}
	if _, err := n.dg.ChannelMessageSend(channelID, "⚠️ "+message); err != nil {
		n.log.Warn().Err(err).Str("channel", channelID).Msg("failed to post error")
	}
}
