package messaging

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/crease/internal/dice"
	"github.com/KirkDiggler/crease/internal/models"
)

// service implements the Service interface
type service struct {
	// Random source for selecting among canned lines
	roller dice.Roller
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	if config == nil {
		return nil, ErrNilConfig
	}
	if config.DiceRoller == nil {
		return nil, ErrNilRoller
	}

	return &service{
		roller: config.DiceRoller,
	}, nil
}

// pick returns one of the messages at random
func (s *service) pick(messages []string) string {
	return messages[s.roller.Intn(len(messages))]
}

// GetBallCommentary returns a commentary line for a delivery
func (s *service) GetBallCommentary(ctx context.Context, input *GetBallCommentaryInput) (*GetBallCommentaryOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	tone := input.PreferredTone
	var messages []string

	switch {
	case input.Wicket:
		if tone == "" {
			tone = ToneCelebration
		}
		messages = []string{
			"OUT! %[2]s gets the breakthrough, %[1]s has to go.",
			"Gone! %[1]s can't believe it, %[2]s is pumped.",
			"That's the end of %[1]s. Huge moment for %[2]s.",
			"Timber! %[2]s knocks it over and %[1]s trudges off.",
		}
	case input.Runs == 6:
		if tone == "" {
			tone = ToneCelebration
		}
		messages = []string{
			"SIX! %[1]s sends %[2]s into the stands.",
			"That's huge! %[1]s clears the rope with ease.",
			"Into the crowd! %[2]s can only watch that one sail.",
		}
	case input.Runs == 4:
		if tone == "" {
			tone = ToneCelebration
		}
		messages = []string{
			"FOUR! %[1]s finds the gap.",
			"Cracking shot from %[1]s, races away to the rope.",
			"Boundary! %[2]s strays and %[1]s punishes it.",
		}
	case input.Runs == 0:
		if tone == "" {
			tone = ToneNeutral
		}
		messages = []string{
			"Dot ball. %[2]s keeps it tight.",
			"%[1]s can't get that one away.",
			"No run. Good discipline from %[2]s.",
		}
		if tone == ToneFunny {
			messages = []string{
				"%[1]s waves at it like an old friend across the street.",
				"The scoreboard operator takes a well-earned nap while %[1]s blocks.",
			}
		}
	default:
		if tone == "" {
			tone = ToneNeutral
		}
		messages = []string{
			"%[1]s works it away for %[3]d.",
			"Pushed into the gap, they take %[3]d.",
			"Good running, %[3]d to %[1]s.",
		}
	}

	message := fmt.Sprintf(s.pick(messages), input.Striker, input.Bowler, input.Runs)
	if input.Shot != "" && !input.Wicket {
		message = fmt.Sprintf("%s (%s)", message, input.Shot)
	}

	return &GetBallCommentaryOutput{
		Message: message,
		Tone:    tone,
	}, nil
}

// GetResultMessage returns a line summing up a finished match
func (s *service) GetResultMessage(ctx context.Context, input *GetResultMessageInput) (*GetResultMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Drawn {
		messages := []string{
			"Honours even. Neither side could force a result.",
			"The spoils are shared after a hard-fought contest.",
			"A draw. Both dressing rooms will take something from it.",
		}
		return &GetResultMessageOutput{
			Title:   "Match Drawn",
			Message: s.pick(messages),
		}, nil
	}

	title := fmt.Sprintf("%s win!", input.WinnerName)
	var messages []string
	switch input.DecidedBy {
	case models.DecidedBySuperOver:
		messages = []string{
			"%[1]s hold their nerve in the super over to beat %[2]s.",
			"Nothing could separate them in the main match, but %[1]s edge %[2]s in the super over.",
			"Drama to the last ball! %[1]s take the super over against %[2]s.",
		}
	case models.DecidedByFallback:
		messages = []string{
			"Super overs couldn't split them. %[1]s get it on countback over %[2]s.",
			"After round after round of super overs, %[1]s are awarded the match over %[2]s.",
		}
	default:
		if input.Margin > 0 {
			title = fmt.Sprintf("%s win by %d %s", input.WinnerName, input.Margin, input.MarginUnit)
		}
		messages = []string{
			"%[1]s beat %[2]s.",
			"A fine win for %[1]s. %[2]s will regroup.",
			"%[1]s were too good for %[2]s today.",
		}
	}

	return &GetResultMessageOutput{
		Title:   title,
		Message: fmt.Sprintf(s.pick(messages), input.WinnerName, input.LoserName),
	}, nil
}

// GetHeadline returns a news headline
func (s *service) GetHeadline(ctx context.Context, input *GetHeadlineInput) (*GetHeadlineOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var headline string
	switch input.Kind {
	case HeadlineBigScore:
		messages := []string{
			"%[1]s smashes %[2]d in %[3]s clash",
			"%[2]d from %[1]s lights up the %[3]s game",
			"Masterclass: %[1]s makes %[2]d",
		}
		headline = fmt.Sprintf(s.pick(messages), input.PlayerName, input.Runs, input.Format.DisplayName())
	case HeadlineBigHaul:
		messages := []string{
			"%[1]s rips through the order with %[2]d wickets",
			"%[2]d-wicket burst from %[1]s in %[3]s contest",
			"Unplayable! %[1]s claims %[2]d",
		}
		headline = fmt.Sprintf(s.pick(messages), input.PlayerName, input.Wickets, input.Format.DisplayName())
	case HeadlineChampion:
		messages := []string{
			"%[1]s crowned champions",
			"Trophy heads home with %[1]s",
			"%[1]s top the table and lift the cup",
		}
		headline = fmt.Sprintf(s.pick(messages), input.TeamName)
	case HeadlineWorldEvent:
		messages := []string{
			"%[1]s announce new head coach",
			"Rain washes out %[1]s training camp",
			"%[1]s unveil new kit for the season",
			"Selectors to watch %[1]s closely this month",
			"%[1]s captain hints at retirement",
		}
		headline = fmt.Sprintf(s.pick(messages), input.TeamName)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownHeadline, input.Kind)
	}

	return &GetHeadlineOutput{Headline: headline}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	var messages []string
	switch input.ErrorType {
	case "no_career":
		messages = []string{
			"You haven't started a career yet. Try `/cricket new` to pad up.",
			"No career found. Every legend starts somewhere: `/cricket new`.",
		}
	case "no_tournament":
		messages = []string{
			"You're not in a tournament. `/cricket tournament` will sort that out.",
			"No fixtures on the calendar. Join a tournament first!",
		}
	case "tournament_complete":
		messages = []string{
			"That tournament is done and dusted. Start a new one!",
			"All fixtures played. Time to chase the next trophy.",
		}
	case "player_injured":
		messages = []string{
			"You're injured! The physio says rest, not nets.",
			"Ice pack first, training later. Get some rest.",
		}
	case "career_retired":
		messages = []string{
			"You've hung up your boots. Start a new career to play again.",
			"Retired players make great commentators, but they don't train.",
		}
	case "invalid_skill":
		messages = []string{
			"You can train batting, bowling, fielding, fitness or mental toughness.",
		}
	default:
		messages = []string{
			"Something went wrong in the pavilion. Try again in a moment.",
			"Rain stopped play. Please try again.",
			"Bad light! Something went wrong, give it another go.",
		}
	}

	return &GetErrorMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}
