package discord

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"tocadiscos/internal/command"
	"tocadiscos/internal/config"
	"tocadiscos/internal/music/player"
	"tocadiscos/internal/music/resolver"
	"tocadiscos/internal/storage"
)

// Bot wires the Discord session to the command registry and the per-guild
// players. It implements command.Bot.
type Bot struct {
	dg       *discordgo.Session
	cfg      *config.Config
	store    *storage.Storage
	registry *command.Registry
	resolver *resolver.Resolver
	log      zerolog.Logger

	mu      sync.Mutex
	players map[string]*player.Player
}

func New(cfg *config.Config, store *storage.Storage, registry *command.Registry, log zerolog.Logger) *Bot {
	return &Bot{
		cfg:      cfg,
		store:    store,
		registry: registry,
		resolver: resolver.New(log),
		log:      log.With().Str("component", "discord").Logger(),
		players:  make(map[string]*player.Player),
	}
}

// Run opens the gateway session and blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	b.dg = dg

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildVoiceStates |
		discordgo.IntentsMessageContent

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)
	dg.AddHandler(b.onInteractionCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	b.log.Info().Msg("shutdown signal received, stopping players")
	b.stopAllPlayers()
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	if err := s.UpdateListeningStatus("music"); err != nil {
		b.log.Warn().Err(err).Msg("failed to set presence")
	}
	b.log.Info().
		Str("user", r.User.Username).
		Int("guilds", len(r.Guilds)).
		Msg("bot is ready")
}

// onMessageCreate routes prefix commands. The prefix is per-guild, stored
// settings falling back to the configured default.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	prefix := b.store.Prefix(m.GuildID, b.cfg.DefaultPrefix)
	if !strings.HasPrefix(m.Content, prefix) {
		return
	}

	fields := strings.Fields(strings.TrimPrefix(m.Content, prefix))
	if len(fields) == 0 {
		return
	}
	name := strings.ToLower(fields[0])

	cmd, ok := b.registry.Get(name)
	if !ok {
		return
	}

	ctx := &command.Context{
		Session: s,
		Message: m,
		Args:    fields[1:],
		Prefix:  prefix,
		Bot:     b,
	}
	if err := cmd.Run(ctx); err != nil {
		b.log.Error().Err(err).Str("command", name).Str("guild", m.GuildID).Msg("command failed")
		_, _ = s.ChannelMessageSendReply(m.ChannelID, fmt.Sprintf("Something went wrong: %v", err), m.Reference())
	}
}

// onInteractionCreate handles the help menu buttons.
func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}
	customID := i.MessageComponentData().CustomID
	if !command.IsMenuID(customID) {
		return
	}

	prefix := b.store.Prefix(i.GuildID, b.cfg.DefaultPrefix)

	var embed *discordgo.MessageEmbed
	var components []discordgo.MessageComponent
	if customID == command.MenuIDBack {
		embed, components = command.MainMenu(prefix)
	} else {
		var ok bool
		embed, components, ok = command.CategoryMenu(b.registry, customID, prefix)
		if !ok {
			return
		}
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
	if err != nil {
		b.log.Warn().Err(err).Str("custom_id", customID).Msg("menu interaction failed")
	}
}

func (b *Bot) stopAllPlayers() {
	b.mu.Lock()
	players := make([]*player.Player, 0, len(b.players))
	for _, p := range b.players {
		players = append(players, p)
	}
	b.mu.Unlock()

	for _, p := range players {
		if err := p.Stop(); err != nil {
			b.log.Warn().Err(err).Msg("failed to stop player")
		}
	}
}
