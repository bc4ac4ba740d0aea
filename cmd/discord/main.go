package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/config"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/discord"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/logger"
)

// CommandFactory creates a Discord command and its handler.
type CommandFactory func() (*discordgo.ApplicationCommand, discord.CommandHandler)

func main() {
	cfg, err := config.LoadDiscord()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, logger.DefaultServiceName+"-discord", logger.DefaultVersion, logger.EnvironmentProduction, false))
	slog.Info("Configured API URL", "url", cfg.APIBaseURL)

	bot, err := discord.New(discord.Config{
		Token:                 cfg.Token,
		AppID:                 cfg.AppID,
		APIURL:                cfg.APIBaseURL,
		APIKey:                cfg.APIKey,
		GuildID:               cfg.GuildID,
		NotificationChannelID: cfg.NotificationChannelID,
	})
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	httpServer := discord.NewHTTPServer(cfg.WebhookPort, bot)
	httpServer.Start()
	defer httpServer.Stop()

	for _, factory := range commandFactories() {
		bot.Registry.Register(factory())
	}

	if cfg.ForceCommandUpdate {
		slog.Info("Force command update enabled via environment variable")
	}
	if err := bot.RegisterCommands(bot.Registry, cfg.ForceCommandUpdate); err != nil {
		// commands registered by an earlier run keep working
		slog.Error("Failed to register commands", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bot.Run(ctx); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Shutting down")
}

// commandFactories lists every slash command the bot serves.
func commandFactories() []CommandFactory {
	return []CommandFactory{
		discord.PingCommand,
		discord.WorldCommand,

		// Account commands
		discord.OptInCommand,
		discord.PodsCommand,

		// Pod care
		discord.WaterCommand,
		discord.NutrientsCommand,
		discord.HarvestCommand,
	}
}
