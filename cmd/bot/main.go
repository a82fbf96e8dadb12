package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/crease/internal/app"
	"github.com/KirkDiggler/crease/internal/common/logger"
	"github.com/KirkDiggler/crease/internal/config"
	"github.com/KirkDiggler/crease/internal/handlers/discord"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.GetLogger().WithError(err).Fatal("Failed to load configuration")
	}

	log := logger.InitLogger(cfg.LogLevel, cfg.Development, cfg.LogFormat)

	if cfg.DiscordToken == "" {
		log.Fatal("DISCORD_TOKEN environment variable is required")
	}
	if cfg.SaveBackend != config.SaveBackendRedis {
		log.WithField("save_path", cfg.SavePath).Warn("File saves hold one career; use SAVE_BACKEND=redis for a shared bot")
	}

	services, err := app.Build(context.Background(), cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to build services")
	}
	defer services.Close()

	bot, err := discord.New(&discord.Config{
		Token:            cfg.DiscordToken,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		CareerService:    services.Career,
		MessagingService: services.Messaging,
		DiceRoller:       services.Roller,
		Logger:           log.WithField("service", "discord"),
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create Discord bot")
	}

	if err := bot.Start(); err != nil {
		log.WithError(err).Fatal("Failed to start Discord bot")
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		log.WithError(err).Error("Error stopping bot")
	}

	log.Info("Bot has been shut down")
}
