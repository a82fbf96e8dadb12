package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// SaveBackend selects where careers are persisted
type SaveBackend string

const (
	SaveBackendFile  SaveBackend = "file"
	SaveBackendRedis SaveBackend = "redis"
)

// Config holds process configuration read from the environment
type Config struct {
	// Storage
	SaveBackend   SaveBackend `env:"SAVE_BACKEND" envDefault:"file"`
	SavePath      string      `env:"SAVE_PATH" envDefault:"career.json"`
	RedisAddr     string      `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string      `env:"REDIS_PASSWORD"`
	RedisDB       int         `env:"REDIS_DB" envDefault:"0"`

	// Discord
	DiscordToken  string `env:"DISCORD_TOKEN"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`

	// Logging
	LogLevel    string `env:"LOG_LEVEL"`
	LogFormat   string `env:"LOG_FORMAT"`
	Development bool   `env:"DEVELOPMENT" envDefault:"false"`

	// Simulation
	Seed              int64   `env:"SEED" envDefault:"0"`
	Difficulty        float64 `env:"DIFFICULTY" envDefault:"0.08"`
	POTMChance        float64 `env:"POTM_CHANCE" envDefault:"0.1"`
	MaxSuperOvers     int     `env:"MAX_SUPER_OVERS" envDefault:"10"`
	StandingsTieBreak string  `env:"STANDINGS_TIE_BREAK" envDefault:"none"`
	TournamentTeams   int     `env:"TOURNAMENT_TEAMS" envDefault:"6"`
	WorldTeams        int     `env:"WORLD_TEAMS" envDefault:"8"`
}

// Load reads an optional .env file and parses the environment
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values the environment cannot express as types
func (c *Config) Validate() error {
	switch c.SaveBackend {
	case SaveBackendFile, SaveBackendRedis:
	default:
		return fmt.Errorf("unknown SAVE_BACKEND %q", c.SaveBackend)
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "json", "text":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.LogFormat)
	}
	if c.Difficulty <= 0 || c.Difficulty > 1 {
		return fmt.Errorf("DIFFICULTY must be in (0, 1], got %v", c.Difficulty)
	}
	if c.POTMChance < 0 || c.POTMChance > 1 {
		return fmt.Errorf("POTM_CHANCE must be in [0, 1], got %v", c.POTMChance)
	}
	if c.MaxSuperOvers < 1 {
		return fmt.Errorf("MAX_SUPER_OVERS must be positive, got %d", c.MaxSuperOvers)
	}
	if c.TournamentTeams < 2 {
		return fmt.Errorf("TOURNAMENT_TEAMS must be at least 2, got %d", c.TournamentTeams)
	}
	if c.WorldTeams < c.TournamentTeams {
		return fmt.Errorf("WORLD_TEAMS (%d) must be at least TOURNAMENT_TEAMS (%d)", c.WorldTeams, c.TournamentTeams)
	}
	return nil
}
