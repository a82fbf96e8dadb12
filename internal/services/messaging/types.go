package messaging

import (
	"github.com/KirkDiggler/crease/internal/dice"
	"github.com/KirkDiggler/crease/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a plain broadcast tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// HeadlineKind identifies what a headline reports
type HeadlineKind string

const (
	HeadlineBigScore   HeadlineKind = "big_score"
	HeadlineBigHaul    HeadlineKind = "big_haul"
	HeadlineWorldEvent HeadlineKind = "world_event"
	HeadlineChampion   HeadlineKind = "champion"
)

// GetBallCommentaryInput contains parameters for a commentary line
type GetBallCommentaryInput struct {
	Striker string
	Bowler  string
	Runs    int
	Wicket  bool

	// Shot is set when the batter chose a shot
	Shot models.ShotDirection

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetBallCommentaryOutput contains the commentary line
type GetBallCommentaryOutput struct {
	Message string
	Tone    MessageTone
}

// GetResultMessageInput contains parameters for a result line
type GetResultMessageInput struct {
	WinnerName string
	LoserName  string
	Drawn      bool
	DecidedBy  models.DecidedBy

	// Margin is the winning margin in runs or wickets, 0 when not applicable
	Margin     int
	MarginUnit string
}

// GetResultMessageOutput contains the result line
type GetResultMessageOutput struct {
	Title   string
	Message string
}

// GetHeadlineInput contains parameters for a headline
type GetHeadlineInput struct {
	Kind       HeadlineKind
	PlayerName string
	TeamName   string
	Runs       int
	Wickets    int
	Format     models.Format
}

// GetHeadlineOutput contains the headline
type GetHeadlineOutput struct {
	Headline string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// ErrorType is the type of error
	ErrorType string

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Message string
	Tone    MessageTone
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// DiceRoller picks among canned lines
	DiceRoller dice.Roller
}
