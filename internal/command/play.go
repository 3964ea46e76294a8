package command

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tocadiscos/internal/music/queue"
	"tocadiscos/internal/music/sources"
	"tocadiscos/internal/music/sources/soundcloud"
	"tocadiscos/internal/music/sources/youtube"
	"tocadiscos/internal/music/sources/ytmusic"
)

type PlayCommand struct{}

func (c *PlayCommand) Name() string        { return "play" }
func (c *PlayCommand) Aliases() []string   { return []string{"p"} }
func (c *PlayCommand) Description() string { return "Play a track or add it to the queue" }
func (c *PlayCommand) Category() string    { return "playback" }

func (c *PlayCommand) Run(ctx *Context) error {
	if len(ctx.Args) == 0 {
		return Reply(ctx, fmt.Sprintf("Usage: `%splay <url or search>`", ctx.Prefix))
	}

	// Voice membership is checked before any queue mutation.
	voiceChannelID, err := ctx.Bot.FindUserVoiceState(ctx.GuildID(), ctx.AuthorID())
	if err != nil {
		return Reply(ctx, "You must be in a voice channel.")
	}

	query := strings.Join(ctx.Args, " ")
	track, err := c.buildTrack(ctx, query)
	if err != nil {
		return Reply(ctx, fmt.Sprintf("No results found: %v", err))
	}

	p := ctx.Bot.Player(ctx.GuildID())
	if err := p.Queue().Enqueue(track); err != nil {
		if err == queue.ErrQueueFull {
			return Reply(ctx, "The queue is full.")
		}
		return err
	}

	if err := Reply(ctx, fmt.Sprintf("Added to queue: **%s**", TrackLabel(track.Title, track.URL))); err != nil {
		return err
	}

	p.Kick(voiceChannelID, ctx.ChannelID())
	return nil
}

// buildTrack turns the raw argument into a descriptor: known URLs map to
// their provider directly, anything else becomes a video-platform search.
func (c *PlayCommand) buildTrack(ctx *Context, query string) (sources.Track, error) {
	switch {
	case ytmusic.IsTrackURL(query):
		return ytmusic.TrackFromURL(query)
	case youtube.IsVideoURL(query):
		return youtube.TrackFromURL(query)
	case soundcloud.IsTrackURL(query):
		return soundcloud.TrackFromURL(query), nil
	}

	searchCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	results, err := ctx.Bot.Resolver().Search(searchCtx, sources.ProviderYouTube, query, 1)
	if err != nil {
		return sources.Track{}, err
	}
	if len(results) == 0 {
		return sources.Track{}, fmt.Errorf("nothing matched %q", query)
	}
	return results[0], nil
}
