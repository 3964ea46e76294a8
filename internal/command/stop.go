package command

type StopCommand struct{}

func (c *StopCommand) Name() string        { return "stop" }
func (c *StopCommand) Aliases() []string   { return nil }
func (c *StopCommand) Description() string { return "Stop playback and clear the queue" }
func (c *StopCommand) Category() string    { return "control" }

func (c *StopCommand) Run(ctx *Context) error {
	p := ctx.Bot.Player(ctx.GuildID())
	if err := p.Stop(); err != nil {
		return err
	}
	return Reply(ctx, "Playback stopped, queue cleared.")
}
