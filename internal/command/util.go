package command

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
)

const EmbedColor = 0x0099ff

// Reply sends a plain-text reply to the invoking message.
func Reply(ctx *Context, content string) error {
	_, err := ctx.Session.ChannelMessageSendReply(ctx.ChannelID(), content, ctx.Message.Reference())
	return err
}

// ReplyEmbed sends an embed reply to the invoking message.
func ReplyEmbed(ctx *Context, embed *discordgo.MessageEmbed) error {
	if embed.Color == 0 {
		embed.Color = EmbedColor
	}
	_, err := ctx.Session.ChannelMessageSendEmbedReply(ctx.ChannelID(), embed, ctx.Message.Reference())
	return err
}

// FormatDuration renders m:ss or h:mm:ss; unknown durations become "N/A".
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return "N/A"
	}
	total := int(d.Seconds())
	h, m, s := total/3600, (total/60)%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// TrackLabel prefers the title and falls back to the raw URL.
func TrackLabel(title, url string) string {
	if title != "" {
		return title
	}
	return url
}

// Truncate shortens s to max runes with an ellipsis.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
