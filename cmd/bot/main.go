package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"tocadiscos/internal/command"
	"tocadiscos/internal/config"
	"tocadiscos/internal/discord"
	"tocadiscos/internal/logging"
	"tocadiscos/internal/music/sources"
	"tocadiscos/internal/storage"
	v "tocadiscos/internal/version"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}

	log := logging.New(cfg.LogLevel, cfg.LogFile)
	log.Info().Str("version", v.AppVersion).Msgf("starting %s", v.AppName)

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open settings store")
	}
	defer store.Close()

	registry := command.NewRegistry()
	bot := discord.New(cfg, store, registry, log)
	registerCommands(registry, log)

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Info().Str("signal", s.String()).Msg("shutting down")
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("bot exited with error")
		}
	}
}

func registerCommands(registry *command.Registry, log zerolog.Logger) {
	guildOnly := command.WithGuildOnly()
	logged := command.WithCommandLogger(log)

	for _, cmd := range []command.Command{
		&command.PlayCommand{},
		&command.SkipCommand{},
		&command.StopCommand{},
		&command.PauseCommand{},
		&command.ResumeCommand{},
		&command.QueueCommand{},
		&command.ClearCommand{},
		&command.RemoveCommand{},
		&command.ShuffleCommand{},
		&command.LoopCommand{},
		&command.NowPlayingCommand{},
		&command.VolumeCommand{},
		&command.JoinCommand{},
		&command.LeaveCommand{},
		&command.SearchCommand{},
		command.NewProviderSearch(sources.ProviderYouTube, "youtube", "yt"),
		command.NewProviderSearch(sources.ProviderYTMusic, "ytmusic", "ytm"),
		command.NewProviderSearch(sources.ProviderSoundCloud, "soundcloud", "sc"),
		&command.HelpCommand{},
	} {
		registry.Register(cmd, guildOnly, logged)
	}

	registry.Register(&command.SetPrefixCommand{},
		guildOnly,
		command.WithPermissionCheck(discordgo.PermissionManageServer),
		logged,
	)
}
