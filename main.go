package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/crease/internal/app"
	"github.com/KirkDiggler/crease/internal/common/logger"
	"github.com/KirkDiggler/crease/internal/config"
	"github.com/KirkDiggler/crease/internal/handlers/terminal"
)

// localOwner owns the career played from the terminal
const localOwner = "local"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.GetLogger().WithError(err).Fatal("Failed to load configuration")
	}

	log := logger.InitLogger(cfg.LogLevel, cfg.Development, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	services, err := app.Build(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to build services")
	}
	defer services.Close()

	game, err := terminal.New(&terminal.Config{
		Career:     services.Career,
		Messaging:  services.Messaging,
		DiceRoller: services.Roller,
		OwnerID:    localOwner,
		In:         os.Stdin,
		Out:        os.Stdout,
		Logger:     log.WithField("service", "terminal"),
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create terminal game")
	}

	if err := game.Run(ctx); err != nil && ctx.Err() == nil {
		log.WithError(err).Error("Game ended with an error")
	}
}
