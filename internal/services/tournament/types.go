package tournament

import (
	"github.com/KirkDiggler/crease/internal/common/uuid"
	"github.com/KirkDiggler/crease/internal/decision"
	"github.com/KirkDiggler/crease/internal/models"
	"github.com/KirkDiggler/crease/internal/registry"
	"github.com/KirkDiggler/crease/internal/services/innings"
	"github.com/KirkDiggler/crease/internal/services/match"
	"github.com/sirupsen/logrus"
)

// TieBreakPolicy decides the order of teams level on points
type TieBreakPolicy string

const (
	// TieBreakNone leaves level teams in name order and reports the tie
	TieBreakNone       TieBreakPolicy = "none"
	TieBreakWins       TieBreakPolicy = "wins"
	TieBreakNetRunRate TieBreakPolicy = "net_run_rate"
)

// IsValid reports whether the policy is known
func (p TieBreakPolicy) IsValid() bool {
	switch p {
	case TieBreakNone, TieBreakWins, TieBreakNetRunRate:
		return true
	}
	return false
}

// Config holds configuration for the tournament service
type Config struct {
	Match         match.Service
	UUIDGenerator uuid.UUID

	// TieBreak orders teams level on points; empty means none
	TieBreak TieBreakPolicy

	Logger *logrus.Entry
}

// CreateTournamentInput contains parameters for creating a tournament
type CreateTournamentInput struct {
	Name   string
	Format models.Format
	Teams  []*models.Team
}

// CreateTournamentOutput contains the result of creating a tournament
type CreateTournamentOutput struct {
	Tournament *models.Tournament
	Fixtures   []models.Fixture
}

// GetFixturesInput contains parameters for listing fixtures
type GetFixturesInput struct {
	Tournament *models.Tournament
}

// GetFixturesOutput contains the schedule
type GetFixturesOutput struct {
	Fixtures  []models.Fixture
	Remaining int
}

// PlayNextFixtureInput contains parameters for playing the next fixture
type PlayNextFixtureInput struct {
	Tournament *models.Tournament

	// Registry resolves fixture teams; nil plays the tournament's own references
	Registry *registry.Registry

	HumanPlayerID string
	Decider       decision.Decider
	OnBall        func(innings.BallEvent)
	OnStage       func(match.StageEvent)
}

// PlayNextFixtureOutput contains the result of playing a fixture
type PlayNextFixtureOutput struct {
	Fixture models.Fixture
	Result  *models.MatchResult

	// Completed is set when this fixture was the last one
	Completed bool

	// ChampionID is set when the tournament completed with a unique leader
	ChampionID string
}

// GetStandingsInput contains parameters for reading the standings
type GetStandingsInput struct {
	Tournament *models.Tournament
}

// GetStandingsOutput contains the ordered ledger
type GetStandingsOutput struct {
	Entries []*models.StandingsEntry

	// Tied is set when the top two cannot be separated under the policy
	Tied bool
}
