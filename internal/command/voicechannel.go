package command

type JoinCommand struct{}

func (c *JoinCommand) Name() string        { return "join" }
func (c *JoinCommand) Aliases() []string   { return nil }
func (c *JoinCommand) Description() string { return "Join your voice channel" }
func (c *JoinCommand) Category() string    { return "control" }

func (c *JoinCommand) Run(ctx *Context) error {
	voiceChannelID, err := ctx.Bot.FindUserVoiceState(ctx.GuildID(), ctx.AuthorID())
	if err != nil {
		return Reply(ctx, "You must be in a voice channel.")
	}
	if err := ctx.Bot.Player(ctx.GuildID()).Connect(voiceChannelID); err != nil {
		return Reply(ctx, "Could not join the voice channel.")
	}
	return Reply(ctx, "Joined. 🎧")
}

type LeaveCommand struct{}

func (c *LeaveCommand) Name() string        { return "leave" }
func (c *LeaveCommand) Aliases() []string   { return nil }
func (c *LeaveCommand) Description() string { return "Stop playback and leave the voice channel" }
func (c *LeaveCommand) Category() string    { return "control" }

func (c *LeaveCommand) Run(ctx *Context) error {
	if err := ctx.Bot.Player(ctx.GuildID()).Stop(); err != nil {
		return err
	}
	return Reply(ctx, "Left the voice channel. 👋")
}
