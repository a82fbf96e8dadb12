package match

import (
	"github.com/KirkDiggler/crease/internal/decision"
	"github.com/KirkDiggler/crease/internal/dice"
	"github.com/KirkDiggler/crease/internal/models"
	"github.com/KirkDiggler/crease/internal/services/innings"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultPOTMChance is the chance the human player is named player of the match
	DefaultPOTMChance = 0.1

	// DefaultMaxSuperOvers bounds the super-over rounds played after a tie
	DefaultMaxSuperOvers = 10

	// maxInvalidChoices bounds re-requests for the toss decision
	maxInvalidChoices = 50

	winPoints  = 2
	drawPoints = 1
)

// fitnessCost is the fitness a match takes out of each participant
var fitnessCost = map[models.Format][2]int{
	models.FormatT20:  {2, 6},
	models.FormatODI:  {4, 10},
	models.FormatTest: {8, 15},
}

// Config holds configuration for the match service
type Config struct {
	DiceRoller dice.Roller
	Innings    innings.Service

	// AIDecider makes the toss call for AI captains; nil means uniform random
	AIDecider decision.Decider

	// POTMChance is the probability the human is player of the match.
	// Zero means the default; a negative value disables the award.
	POTMChance float64

	// MaxSuperOvers bounds tie-break rounds before the fallback decides;
	// zero means the default
	MaxSuperOvers int

	Logger *logrus.Entry
}

// PlayInput contains parameters for playing a match
type PlayInput struct {
	Team1  *models.Team
	Team2  *models.Team
	Format models.Format

	// HumanPlayerID identifies the player whose choices come from Decider
	HumanPlayerID string
	Decider       decision.Decider

	// OnBall observes every delivery of every innings
	OnBall func(innings.BallEvent)

	// OnStage observes each stage as the match reaches it
	OnStage func(StageEvent)
}

// StageEvent reports a match state transition
type StageEvent struct {
	Status models.MatchStatus

	// BattingTeamID is the side about to bat, empty at the result
	BattingTeamID string

	// Completed is the innings that just finished, if any
	Completed *models.InningsSummary
}

// PlayOutput contains the result of a match
type PlayOutput struct {
	Result *models.MatchResult
	Status models.MatchStatus
}
