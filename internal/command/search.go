package command

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"tocadiscos/internal/music/sources"
)

const searchTimeout = 15 * time.Second

// SearchCommand fans one query out to every provider and shows the top hits
// per source side by side.
type SearchCommand struct{}

func (c *SearchCommand) Name() string        { return "search" }
func (c *SearchCommand) Aliases() []string   { return []string{"find"} }
func (c *SearchCommand) Description() string { return "Search all sources at once" }
func (c *SearchCommand) Category() string    { return "search" }

func (c *SearchCommand) Run(ctx *Context) error {
	if len(ctx.Args) == 0 {
		return Reply(ctx, fmt.Sprintf("Usage: `%ssearch <query>`", ctx.Prefix))
	}
	query := strings.Join(ctx.Args, " ")

	searchCtx, cancel := context.WithTimeout(context.Background(), searchTimeout)
	defer cancel()
	results := ctx.Bot.Resolver().SearchAll(searchCtx, query, ctx.Bot.SearchLimit())

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Results for %q", Truncate(query, 80)),
	}
	for _, p := range ctx.Bot.Resolver().Providers() {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  p.DisplayName(),
			Value: formatResults(results[p]),
		})
	}
	return ReplyEmbed(ctx, embed)
}

func formatResults(tracks []sources.Track) string {
	if len(tracks) == 0 {
		return "No results."
	}
	var b strings.Builder
	for i, t := range tracks {
		fmt.Fprintf(&b, "`%d.` [%s](%s)\n", i+1, Truncate(TrackLabel(t.Title, t.URL), 60), t.URL)
	}
	return b.String()
}

// ProviderSearchCommand searches a single source; one instance is registered
// per provider.
type ProviderSearchCommand struct {
	provider sources.Provider
	name     string
	aliases  []string
}

func NewProviderSearch(p sources.Provider, name string, aliases ...string) *ProviderSearchCommand {
	return &ProviderSearchCommand{provider: p, name: name, aliases: aliases}
}

func (c *ProviderSearchCommand) Name() string      { return c.name }
func (c *ProviderSearchCommand) Aliases() []string { return c.aliases }
func (c *ProviderSearchCommand) Description() string {
	return "Search " + c.provider.DisplayName()
}
func (c *ProviderSearchCommand) Category() string { return "search" }

func (c *ProviderSearchCommand) Run(ctx *Context) error {
	if len(ctx.Args) == 0 {
		return Reply(ctx, fmt.Sprintf("Usage: `%s%s <query>`", ctx.Prefix, c.name))
	}
	query := strings.Join(ctx.Args, " ")

	searchCtx, cancel := context.WithTimeout(context.Background(), searchTimeout)
	defer cancel()
	tracks, err := ctx.Bot.Resolver().Search(searchCtx, c.provider, query, ctx.Bot.SearchLimit())
	if err != nil {
		return Reply(ctx, fmt.Sprintf("Search failed: %v", err))
	}

	return ReplyEmbed(ctx, &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s results for %q", c.provider.DisplayName(), Truncate(query, 80)),
		Description: formatResults(tracks),
	})
}
