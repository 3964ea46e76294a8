package discord

import (
	"fmt"

	"tocadiscos/internal/command"
	"tocadiscos/internal/music/player"
	"tocadiscos/internal/music/queue"
	"tocadiscos/internal/music/resolver"
	"tocadiscos/internal/storage"
)

// Player returns the guild's playback controller, creating it on first use.
// New queues are seeded with the guild's stored volume and loop settings.
func (b *Bot) Player(guildID string) *player.Player {
	b.mu.Lock()
	defer b.mu.Unlock()

	if p, ok := b.players[guildID]; ok {
		return p
	}

	q := queue.New(b.cfg.MaxQueueSize, b.store.Volume(guildID, b.cfg.DefaultVolume))
	q.SetLoop(b.store.Loop(guildID))

	p := player.New(
		guildID,
		q,
		b.resolver,
		&voiceTransport{dg: b.dg},
		&channelNotifier{dg: b.dg, log: b.log},
		b.log,
	)
	b.players[guildID] = p
	return p
}

func (b *Bot) Resolver() *resolver.Resolver { return b.resolver }
func (b *Bot) Store() *storage.Storage     { return b.store }
func (b *Bot) DefaultPrefix() string       { return b.cfg.DefaultPrefix }
func (b *Bot) SearchLimit() int            { return b.cfg.SearchLimit }

// FindUserVoiceState returns the voice channel the user currently occupies.
func (b *Bot) FindUserVoiceState(guildID, userID string) (string, error) {
	guild, err := b.dg.State.Guild(guildID)
	if err != nil {
		return "", fmt.Errorf("error retrieving guild: %w", err)
	}
	for _, vs := range guild.VoiceStates {
		if vs.UserID == userID {
			return vs.ChannelID, nil
		}
	}
	return "", command.ErrNoVoiceChannel
}
