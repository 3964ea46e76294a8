package command

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Menu custom IDs routed by the interaction handler.
const (
	MenuIDPlayback = "menu_playback"
	MenuIDQueue    = "menu_queue"
	MenuIDControl  = "menu_control"
	MenuIDSearch   = "menu_search"
	MenuIDConfig   = "menu_config"
	MenuIDBack     = "menu_back"
)

var menuCategories = []struct {
	id       string
	label    string
	category string
	emoji    string
}{
	{MenuIDPlayback, "Playback", "playback", "🎵"},
	{MenuIDQueue, "Queue", "queue", "📜"},
	{MenuIDControl, "Controls", "control", "🎛️"},
	{MenuIDSearch, "Search", "search", "🔎"},
	{MenuIDConfig, "Settings", "config", "⚙️"},
}

type HelpCommand struct{}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Aliases() []string   { return []string{"menu", "h"} }
func (c *HelpCommand) Description() string { return "Show the command menu" }
func (c *HelpCommand) Category() string    { return "config" }

func (c *HelpCommand) Run(ctx *Context) error {
	embed, components := MainMenu(ctx.Prefix)
	_, err := ctx.Session.ChannelMessageSendComplex(ctx.ChannelID(), &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
		Reference:  ctx.Message.Reference(),
	})
	return err
}

// MainMenu is the top-level help screen with one button per category.
func MainMenu(prefix string) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	embed := &discordgo.MessageEmbed{
		Title:       "Command menu",
		Description: fmt.Sprintf("Pick a category below, or type `%shelp` anytime.\nCurrent prefix: `%s`", prefix, prefix),
		Color:       EmbedColor,
	}

	var buttons []discordgo.MessageComponent
	for _, m := range menuCategories {
		buttons = append(buttons, discordgo.Button{
			Label:    m.label,
			Style:    discordgo.PrimaryButton,
			CustomID: m.id,
			Emoji:    &discordgo.ComponentEmoji{Name: m.emoji},
		})
	}
	return embed, []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}}
}

// CategoryMenu renders one category's command list with a back button.
func CategoryMenu(reg *Registry, menuID, prefix string) (*discordgo.MessageEmbed, []discordgo.MessageComponent, bool) {
	var label, category string
	for _, m := range menuCategories {
		if m.id == menuID {
			label, category = m.label, m.category
			break
		}
	}
	if category == "" {
		return nil, nil, false
	}

	var b strings.Builder
	for _, cmd := range reg.All() {
		if cmd.Category() != category {
			continue
		}
		names := cmd.Name()
		if a := cmd.Aliases(); len(a) > 0 {
			names += ", " + strings.Join(a, ", ")
		}
		fmt.Fprintf(&b, "`%s%s` — %s\n", prefix, names, cmd.Description())
	}
	if b.Len() == 0 {
		b.WriteString("No commands in this category.")
	}

	embed := &discordgo.MessageEmbed{
		Title:       label + " commands",
		Description: b.String(),
		Color:       EmbedColor,
	}
	back := []discordgo.MessageComponent{discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{discordgo.Button{
			Label:    "Back",
			Style:    discordgo.SecondaryButton,
			CustomID: MenuIDBack,
			Emoji:    &discordgo.ComponentEmoji{Name: "◀️"},
		}},
	}}
	return embed, back, true
}

// IsMenuID reports whether a component custom ID belongs to the help menu.
func IsMenuID(id string) bool {
	if id == MenuIDBack {
		return true
	}
	for _, m := range menuCategories {
		if m.id == id {
			return true
		}
	}
	return false
}
