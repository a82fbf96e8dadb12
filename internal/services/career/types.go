package career

import (
	"time"

	"github.com/KirkDiggler/crease/internal/common/clock"
	"github.com/KirkDiggler/crease/internal/common/uuid"
	"github.com/KirkDiggler/crease/internal/decision"
	"github.com/KirkDiggler/crease/internal/dice"
	"github.com/KirkDiggler/crease/internal/models"
	careerRepo "github.com/KirkDiggler/crease/internal/repositories/career"
	"github.com/KirkDiggler/crease/internal/services/innings"
	"github.com/KirkDiggler/crease/internal/services/match"
	"github.com/KirkDiggler/crease/internal/services/messaging"
	"github.com/KirkDiggler/crease/internal/services/skill"
	"github.com/KirkDiggler/crease/internal/services/tournament"
	"github.com/sirupsen/logrus"
)

const (
	DefaultWorldTeams      = 8
	DefaultTournamentTeams = 6

	// DefaultNewsItems is how many headlines the news view shows
	DefaultNewsItems = 5

	// DefaultAdvanceDays is the length of an idle week
	DefaultAdvanceDays = 7

	trainDays = 1
	restDays  = 3

	// matchFatiguePerDay is the fatigue each day of a match adds
	matchFatiguePerDay = 2

	worldEventChance = 0.1
	bigScoreRuns     = 80
	bigHaulWickets   = 3

	// maxStoredNews bounds the saved document
	maxStoredNews = 50
)

// DefaultStartDate is the first day of a new career
var DefaultStartDate = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

// Config holds configuration for the career service
type Config struct {
	Repository    careerRepo.Repository
	Tournament    tournament.Service
	Skill         skill.Service
	Messaging     messaging.Service
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// WorldTeams is the number of AI teams created with a career
	WorldTeams int

	// TournamentTeams is the field size of a tournament, the user's team included
	TournamentTeams int

	StartDate time.Time

	Logger *logrus.Entry
}

// NewCareerInput contains parameters for creating a career
type NewCareerInput struct {
	OwnerID    string
	PlayerName string
	Role       models.Role
	Background models.Background

	// Country is optional; a random one is chosen when empty
	Country string

	// Replace discards an active career instead of failing
	Replace bool
}

// NewCareerOutput contains the created career
type NewCareerOutput struct {
	Career *models.Career
	Player *models.Player
	Team   *models.Team
}

// GetCareerInput contains parameters for reading a career
type GetCareerInput struct {
	OwnerID string
}

// GetCareerOutput contains the career with its human player and team resolved
type GetCareerOutput struct {
	Career *models.Career
	Player *models.Player
	Team   *models.Team
}

// TrainInput contains parameters for a training session
type TrainInput struct {
	OwnerID   string
	Skill     skill.Type
	Intensity int
}

// TrainOutput contains the result of a training session
type TrainOutput struct {
	Player      *models.Player
	Improvement   int
	FitnessLost   int
	FatigueGained int
	Injured       bool
	Date          time.Time
	Headlines     []string

	// Fatigue is the player's fatigue after the session
	Fatigue int
}

// RestInput contains parameters for resting
type RestInput struct {
	OwnerID string
}

// RestOutput contains the result of resting
type RestOutput struct {
	Player        *models.Player
	FitnessGained int
	FatigueShed   int
	Recovered     bool
	Date          time.Time
	Headlines     []string

	// Fitness and Fatigue are the player's values after resting
	Fitness int
	Fatigue int
}

// AdvanceTimeInput contains parameters for advancing the calendar
type AdvanceTimeInput struct {
	OwnerID string

	// Days defaults to a week
	Days int
}

// AdvanceTimeOutput contains the new date
type AdvanceTimeOutput struct {
	Date      time.Time
	Headlines []string
}

// JoinTournamentInput contains parameters for entering a tournament
type JoinTournamentInput struct {
	OwnerID string
	Format  models.Format
}

// JoinTournamentOutput contains the new tournament
type JoinTournamentOutput struct {
	Tournament *models.Tournament
	Fixtures   []models.Fixture
}

// GetFixturesInput contains parameters for listing fixtures
type GetFixturesInput struct {
	OwnerID string
}

// GetFixturesOutput contains the schedule
type GetFixturesOutput struct {
	Tournament *models.Tournament
	Fixtures   []models.Fixture
	Remaining  int
}

// GetStandingsInput contains parameters for reading the table
type GetStandingsInput struct {
	OwnerID string
}

// GetStandingsOutput contains the ordered table
type GetStandingsOutput struct {
	Tournament *models.Tournament
	Entries    []*models.StandingsEntry
	Tied       bool
}

// PlayNextFixtureInput contains parameters for playing a fixture
type PlayNextFixtureInput struct {
	OwnerID string

	// Decider answers the human player's decisions
	Decider decision.Decider

	OnBall  func(innings.BallEvent)
	OnStage func(match.StageEvent)
}

// PlayNextFixtureOutput contains the fixture result
type PlayNextFixtureOutput struct {
	Fixture models.Fixture
	Result  *models.MatchResult

	// UserInvolved is set when the user's team played the fixture
	UserInvolved bool

	// Figures is the human player's combined match figures, nil when they did not play
	Figures *models.Performance

	Completed  bool
	ChampionID string
	Date       time.Time
	Headlines  []string

	// TeamNames and UserTeamID are captured with the result for rendering
	TeamNames  map[string]string
	UserTeamID string
}

// GetNewsInput contains parameters for reading the news
type GetNewsInput struct {
	OwnerID string

	// Limit defaults to DefaultNewsItems
	Limit int
}

// GetNewsOutput contains the latest headlines, oldest first
type GetNewsOutput struct {
	Items []models.NewsItem
}

// SaveCareerInput contains parameters for saving
type SaveCareerInput struct {
	OwnerID string
}

// RetireCareerInput contains parameters for retiring
type RetireCareerInput struct {
	OwnerID string
}

// RetireCareerOutput contains the retired career
type RetireCareerOutput struct {
	Career *models.Career
	Player *models.Player
}
