package command

type ShuffleCommand struct{}

func (c *ShuffleCommand) Name() string        { return "shuffle" }
func (c *ShuffleCommand) Aliases() []string   { return nil }
func (c *ShuffleCommand) Description() string { return "Shuffle the pending tracks" }
func (c *ShuffleCommand) Category() string    { return "queue" }

func (c *ShuffleCommand) Run(ctx *Context) error {
	q := ctx.Bot.Player(ctx.GuildID()).Queue()
	if q.Len() < 2 {
		return Reply(ctx, "Not enough tracks to shuffle.")
	}
	q.Shuffle()
	return Reply(ctx, "Queue shuffled. 🔀")
}
