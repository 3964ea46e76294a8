package command

import (
	"errors"

	"github.com/bwmarrin/discordgo"

	"tocadiscos/internal/music/player"
	"tocadiscos/internal/music/resolver"
	"tocadiscos/internal/storage"
)

// ErrNoVoiceChannel rejects music commands from users outside voice.
var ErrNoVoiceChannel = errors.New("you must be in a voice channel")

// Bot is what commands need from the Discord layer. Keeping it an interface
// avoids an import cycle and lets command tests stub the bot.
type Bot interface {
	Player(guildID string) *player.Player
	Resolver() *resolver.Resolver
	Store() *storage.Storage
	DefaultPrefix() string
	SearchLimit() int
	// FindUserVoiceState returns the voice channel the user currently sits
	// in, or ErrNoVoiceChannel.
	FindUserVoiceState(guildID, userID string) (string, error)
}

// Context carries one invocation of a prefix command.
type Context struct {
	Session *discordgo.Session
	Message *discordgo.MessageCreate
	Args    []string
	Prefix  string
	Bot     Bot
}

func (c *Context) GuildID() string   { return c.Message.GuildID }
func (c *Context) ChannelID() string { return c.Message.ChannelID }
func (c *Context) AuthorID() string  { return c.Message.Author.ID }

type Command interface {
	Name() string
	Aliases() []string
	Description() string
	Category() string
	Run(ctx *Context) error
}
