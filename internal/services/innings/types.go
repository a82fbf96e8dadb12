package innings

import (
	"github.com/KirkDiggler/crease/internal/decision"
	"github.com/KirkDiggler/crease/internal/dice"
	"github.com/KirkDiggler/crease/internal/models"
	"github.com/sirupsen/logrus"
)

// State is the innings state machine's state
type State string

const (
	StateInProgress State = "in_progress"
	StateCompleted  State = "completed"
)

// EndReason records which terminal condition completed the innings
type EndReason string

const (
	EndReasonAllOut         EndReason = "all_out"
	EndReasonOversExhausted EndReason = "overs_exhausted"
	EndReasonTargetReached  EndReason = "target_reached"
)

const (
	// BallsPerOver is the number of legal deliveries in an over
	BallsPerOver = 6

	// DefaultWicketCap ends an innings when ten wickets have fallen
	DefaultWicketCap = 10

	// SuperOverWicketCap ends a super over after two wickets
	SuperOverWicketCap = 2

	// DefaultDifficulty scales every dismissal probability
	DefaultDifficulty = 0.08

	minDismissalChance = 0.005
	maxDismissalChance = 0.5

	// maxInvalidChoices bounds re-requests to a decider returning illegal choices
	maxInvalidChoices = 50
)

// Config holds configuration for the innings service
type Config struct {
	DiceRoller dice.Roller

	// Difficulty scales the base dismissal probability; zero means the default
	Difficulty float64

	// AIDecider makes choices for AI players facing or bowling to the human;
	// nil means uniform random over DiceRoller
	AIDecider decision.Decider

	Logger *logrus.Entry
}

// SimulateInput contains parameters for simulating an innings
type SimulateInput struct {
	BattingTeam *models.Team
	BowlingTeam *models.Team
	Format      models.Format

	// Overs overrides the format's over limit when positive
	Overs int

	// WicketCap overrides the ten-wicket cap when positive
	WicketCap int

	// Target is the score that ends a chase, 0 for a first innings
	Target int

	// SuperOver marks a tie-break innings
	SuperOver bool

	// HumanPlayerID is consulted at suspension points through Decider
	HumanPlayerID string
	Decider       decision.Decider

	// OnBall, when set, observes every delivery as it is resolved
	OnBall func(BallEvent)
}

// BallEvent is the record of one delivery
type BallEvent struct {
	Over       int
	Ball       int
	BowlerID   string
	BowlerName string
	StrikerID  string
	Striker    string
	Runs       int
	Wicket     bool

	// TeamRuns and TeamWickets are the score after the ball
	TeamRuns    int
	TeamWickets int

	// Shot and Delivery are set when a choice was made for the ball
	Shot     models.ShotDirection
	Delivery models.Delivery
}

// IsBoundary reports whether the ball went for four or six
func (e BallEvent) IsBoundary() bool {
	return !e.Wicket && (e.Runs == 4 || e.Runs == 6)
}

// SimulateOutput contains the result of an innings
type SimulateOutput struct {
	Summary   *models.InningsSummary
	State     State
	EndReason EndReason
	Events    []BallEvent
}
