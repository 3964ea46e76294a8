package discord

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/bwmarrin/discordgo"

	"tocadiscos/internal/music/player"
	"tocadiscos/internal/music/stream"
)

// voiceTransport adapts discordgo voice joins to the player's Transport.
type voiceTransport struct {
	dg *discordgo.Session
}

func (t *voiceTransport) Join(guildID, channelID string) (player.Session, error) {
	vc, err := t.dg.ChannelVoiceJoin(guildID, channelID, false, true)
	if err != nil {
		return nil, fmt.Errorf("voice join failed: %w", err)
	}
	return &voiceSession{vc: vc}, nil
}

// voiceSession owns one live voice connection.
type voiceSession struct {
	vc *discordgo.VoiceConnection
}

func (s *voiceSession) Bind() (player.Sink, error) {
	if err := s.vc.Speaking(true); err != nil {
		return nil, fmt.Errorf("failed to start speaking: %w", err)
	}
	return &voiceSink{vc: s.vc}, nil
}

func (s *voiceSession) Destroy() error {
	_ = s.vc.Speaking(false)
	return s.vc.Disconnect()
}

// voiceSink pushes opus-encoded PCM frames into the connection.
type voiceSink struct {
	vc     *discordgo.VoiceConnection
	paused atomic.Bool
}

func (s *voiceSink) Play(ctx context.Context, pcm io.ReadCloser, gain float64) error {
	return stream.StreamToDiscord(ctx, pcm, s.vc, gain, &s.paused)
}

func (s *voiceSink) SetPaused(paused bool) {
	s.paused.Store(paused)
}
