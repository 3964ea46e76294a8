package command

type ClearCommand struct{}

func (c *ClearCommand) Name() string        { return "clear" }
func (c *ClearCommand) Aliases() []string   { return nil }
func (c *ClearCommand) Description() string { return "Remove all pending tracks" }
func (c *ClearCommand) Category() string    { return "queue" }

func (c *ClearCommand) Run(ctx *Context) error {
	ctx.Bot.Player(ctx.GuildID()).Queue().Clear()
	return Reply(ctx, "Queue cleared.")
}
