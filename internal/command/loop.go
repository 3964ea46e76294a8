package command

type LoopCommand struct{}

func (c *LoopCommand) Name() string        { return "loop" }
func (c *LoopCommand) Aliases() []string   { return nil }
func (c *LoopCommand) Description() string { return "Toggle repeating the current track" }
func (c *LoopCommand) Category() string    { return "control" }

func (c *LoopCommand) Run(ctx *Context) error {
	enabled := ctx.Bot.Player(ctx.GuildID()).Queue().ToggleLoop()
	if err := ctx.Bot.Store().SetLoop(ctx.GuildID(), enabled); err != nil {
		return err
	}
	if enabled {
		return Reply(ctx, "Loop enabled: the current track will repeat. 🔁")
	}
	return Reply(ctx, "Loop disabled.")
}
