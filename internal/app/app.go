// Package app wires configuration into the service graph shared by the
// terminal game and the Discord bot.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/KirkDiggler/crease/internal/common/clock"
	"github.com/KirkDiggler/crease/internal/common/uuid"
	"github.com/KirkDiggler/crease/internal/config"
	"github.com/KirkDiggler/crease/internal/dice"
	careerRepo "github.com/KirkDiggler/crease/internal/repositories/career"
	"github.com/KirkDiggler/crease/internal/services/career"
	"github.com/KirkDiggler/crease/internal/services/innings"
	"github.com/KirkDiggler/crease/internal/services/match"
	"github.com/KirkDiggler/crease/internal/services/messaging"
	"github.com/KirkDiggler/crease/internal/services/skill"
	"github.com/KirkDiggler/crease/internal/services/tournament"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Services is the wired service graph
type Services struct {
	Career    career.Service
	Messaging messaging.Service
	Roller    dice.Roller

	// Close releases the storage backend
	Close func() error
}

// Build creates the repository and every service from the configuration
func Build(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*Services, error) {
	repo, closeRepo, err := repository(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	roller := dice.New(&dice.Config{Seed: cfg.Seed})
	ids := uuid.New()

	skills, err := skill.New(&skill.Config{DiceRoller: roller})
	if err != nil {
		return nil, fmt.Errorf("failed to create skill service: %w", err)
	}

	inningsSvc, err := innings.New(&innings.Config{
		DiceRoller: roller,
		Difficulty: cfg.Difficulty,
		Logger:     log.WithField("service", "innings"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create innings service: %w", err)
	}

	matches, err := match.New(&match.Config{
		DiceRoller:    roller,
		Innings:       inningsSvc,
		POTMChance:    potmChance(cfg.POTMChance),
		MaxSuperOvers: cfg.MaxSuperOvers,
		Logger:        log.WithField("service", "match"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create match service: %w", err)
	}

	tournaments, err := tournament.New(&tournament.Config{
		Match:         matches,
		UUIDGenerator: ids,
		TieBreak:      tournament.TieBreakPolicy(cfg.StandingsTieBreak),
		Logger:        log.WithField("service", "tournament"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tournament service: %w", err)
	}

	messages, err := messaging.NewService(&messaging.ServiceConfig{DiceRoller: roller})
	if err != nil {
		return nil, fmt.Errorf("failed to create messaging service: %w", err)
	}

	careers, err := career.New(&career.Config{
		Repository:      repo,
		Tournament:      tournaments,
		Skill:           skills,
		Messaging:       messages,
		DiceRoller:      roller,
		Clock:           clock.New(),
		UUIDGenerator:   ids,
		WorldTeams:      cfg.WorldTeams,
		TournamentTeams: cfg.TournamentTeams,
		Logger:          log.WithField("service", "career"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create career service: %w", err)
	}

	return &Services{
		Career:    careers,
		Messaging: messages,
		Roller:    roller,
		Close:     closeRepo,
	}, nil
}

// repository opens the configured save backend
func repository(ctx context.Context, cfg *config.Config, log *logrus.Logger) (careerRepo.Repository, func() error, error) {
	repoLog := log.WithField("service", "career_repository")

	switch cfg.SaveBackend {
	case config.SaveBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.RedisAddr, err)
		}

		repo, err := careerRepo.NewRedis(&careerRepo.Config{RedisClient: client, Logger: repoLog})
		if err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("failed to create career repository: %w", err)
		}
		return repo, client.Close, nil

	default:
		repo, err := careerRepo.NewFile(&careerRepo.FileConfig{Path: cfg.SavePath, Logger: repoLog})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create career repository: %w", err)
		}
		return repo, func() error { return nil }, nil
	}
}

// potmChance maps a configured zero, which the match service reads as the
// default, to a disabled award
func potmChance(v float64) float64 {
	if v == 0 {
		return -1
	}
	return v
}
