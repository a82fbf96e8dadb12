package match

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/crease/internal/common/logger"
	"github.com/KirkDiggler/crease/internal/decision"
	"github.com/KirkDiggler/crease/internal/dice"
	"github.com/KirkDiggler/crease/internal/models"
	"github.com/KirkDiggler/crease/internal/services/innings"
	"github.com/sirupsen/logrus"
)

type service struct {
	roller        dice.Roller
	innings       innings.Service
	ai            decision.Decider
	potmChance    float64
	maxSuperOvers int
	log           *logrus.Entry
}

// New creates a new match service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilRoller
	}
	if cfg.Innings == nil {
		return nil, ErrNilInnings
	}

	s := &service{
		roller:        cfg.DiceRoller,
		innings:       cfg.Innings,
		ai:            cfg.AIDecider,
		potmChance:    cfg.POTMChance,
		maxSuperOvers: cfg.MaxSuperOvers,
		log:           cfg.Logger,
	}
	if s.ai == nil {
		s.ai = decision.NewRandom(cfg.DiceRoller)
	}
	if s.potmChance == 0 {
		s.potmChance = DefaultPOTMChance
	}
	if s.maxSuperOvers <= 0 {
		s.maxSuperOvers = DefaultMaxSuperOvers
	}
	if s.log == nil {
		s.log = logger.WithService("match")
	}
	return s, nil
}

// Play runs a match from the toss to the committed result
func (s *service) Play(ctx context.Context, input *PlayInput) (*PlayOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.Team1 == nil || input.Team2 == nil {
		return nil, ErrNilTeam
	}
	if input.Team1 == input.Team2 || input.Team1.ID == input.Team2.ID {
		return nil, ErrSameTeam
	}
	if !input.Format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if input.Decider == nil && (fields(input.Team1, input.HumanPlayerID) || fields(input.Team2, input.HumanPlayerID)) {
		return nil, ErrNilDecider
	}

	log := logger.WithMatch(s.log, input.Team1.Name, input.Team2.Name, string(input.Format))

	// Selection is fixed for the whole match
	xi1 := input.Team1.PlayingXI()
	xi2 := input.Team2.PlayingXI()

	result := &models.MatchResult{
		Team1ID: input.Team1.ID,
		Team2ID: input.Team2.ID,
		Format:  input.Format,
	}

	stage(input, models.MatchStatusToss, "", nil)
	first, second, err := s.toss(ctx, input, result)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"toss_winner": result.TossWinnerID,
		"decision":    result.TossDecision,
	}).Debug("Toss decided")

	stage(input, models.MatchStatusInnings1, first.ID, nil)
	inn1, err := s.simulate(ctx, input, &innings.SimulateInput{
		BattingTeam: first,
		BowlingTeam: second,
	})
	if err != nil {
		return nil, err
	}

	result.Target = inn1.Runs + 1
	stage(input, models.MatchStatusInnings2, second.ID, inn1)
	inn2, err := s.simulate(ctx, input, &innings.SimulateInput{
		BattingTeam: second,
		BowlingTeam: first,
		Target:      result.Target,
	})
	if err != nil {
		return nil, err
	}
	result.Innings = []*models.InningsSummary{inn1, inn2}

	switch {
	case inn2.Runs >= result.Target:
		decide(result, second, first, models.DecidedByRuns)
	case inn1.Runs > inn2.Runs:
		decide(result, first, second, models.DecidedByRuns)
	case input.Format.SupportsSuperOver():
		result.SuperOverNeeded = true
		if err := s.superOver(ctx, input, result, first, second); err != nil {
			return nil, err
		}
	default:
		result.Drawn = true
		result.DecidedBy = models.DecidedByDraw
	}

	s.commit(input, result, xi1, xi2)
	stage(input, models.MatchStatusResult, "", inn2)

	log.WithFields(logrus.Fields{
		"winner":      result.WinnerID,
		"drawn":       result.Drawn,
		"decided_by":  result.DecidedBy,
		"super_overs": result.SuperOverRounds(),
	}).Info("Match completed")

	return &PlayOutput{
		Result: result,
		Status: models.MatchStatusResult,
	}, nil
}

// toss picks the toss winner, asks them to bat or bowl, and returns the
// sides in batting order
func (s *service) toss(ctx context.Context, input *PlayInput, result *models.MatchResult) (*models.Team, *models.Team, error) {
	winner, loser := input.Team1, input.Team2
	if s.roller.Intn(2) == 1 {
		winner, loser = loser, winner
	}

	decider := s.ai
	captain := ""
	if len(winner.Players) > 0 {
		captain = winner.Players[0].ID
	}
	if fields(winner, input.HumanPlayerID) {
		decider = input.Decider
		captain = input.HumanPlayerID
	}

	req := &decision.Request{
		Kind:        decision.KindToss,
		PlayerID:    captain,
		Format:      input.Format,
		TossOptions: []models.TossDecision{models.TossBat, models.TossBowl},
		Situation: decision.Situation{
			BattingTeam: winner.Name,
			BowlingTeam: loser.Name,
		},
	}

	var choice *decision.Choice
	for i := 0; i < maxInvalidChoices && choice == nil; i++ {
		c, err := decider.Decide(ctx, req)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get toss decision: %w", err)
		}
		if req.Valid(c) {
			choice = c
		}
	}
	if choice == nil {
		return nil, nil, ErrTooManyInvalidChoices
	}

	result.TossWinnerID = winner.ID
	result.TossDecision = choice.Toss
	if choice.Toss == models.TossBat {
		return winner, loser, nil
	}
	return loser, winner, nil
}

// superOver plays one-over tie-breaks until a side wins a round, then falls
// back to main-match boundaries, wickets lost and finally a coin flip
func (s *service) superOver(ctx context.Context, input *PlayInput, result *models.MatchResult, first, second *models.Team) error {
	for round := 0; round < s.maxSuperOvers; round++ {
		// The side that batted second bats first
		stage(input, models.MatchStatusSuperOver, second.ID, nil)
		a, err := s.simulate(ctx, input, &innings.SimulateInput{
			BattingTeam: second,
			BowlingTeam: first,
			Overs:       1,
			WicketCap:   innings.SuperOverWicketCap,
			SuperOver:   true,
		})
		if err != nil {
			return err
		}

		stage(input, models.MatchStatusSuperOver, first.ID, a)
		b, err := s.simulate(ctx, input, &innings.SimulateInput{
			BattingTeam: first,
			BowlingTeam: second,
			Overs:       1,
			WicketCap:   innings.SuperOverWicketCap,
			Target:      a.Runs + 1,
			SuperOver:   true,
		})
		if err != nil {
			return err
		}
		result.SuperOvers = append(result.SuperOvers, a, b)

		switch {
		case b.Runs > a.Runs:
			decide(result, first, second, models.DecidedBySuperOver)
			return nil
		case a.Runs > b.Runs:
			decide(result, second, first, models.DecidedBySuperOver)
			return nil
		}
	}

	inn1, inn2 := result.Innings[0], result.Innings[1]
	switch {
	case inn1.Boundaries > inn2.Boundaries:
		decide(result, first, second, models.DecidedByFallback)
	case inn2.Boundaries > inn1.Boundaries:
		decide(result, second, first, models.DecidedByFallback)
	case inn1.Wickets < inn2.Wickets:
		decide(result, first, second, models.DecidedByFallback)
	case inn2.Wickets < inn1.Wickets:
		decide(result, second, first, models.DecidedByFallback)
	case s.roller.Intn(2) == 0:
		decide(result, first, second, models.DecidedByFallback)
	default:
		decide(result, second, first, models.DecidedByFallback)
	}

	s.log.WithFields(logrus.Fields{
		"rounds": s.maxSuperOvers,
		"winner": result.WinnerID,
	}).Warn("Super overs exhausted, result decided by fallback")
	return nil
}

func (s *service) simulate(ctx context.Context, input *PlayInput, in *innings.SimulateInput) (*models.InningsSummary, error) {
	in.Format = input.Format
	in.HumanPlayerID = input.HumanPlayerID
	in.Decider = input.Decider
	in.OnBall = input.OnBall

	out, err := s.innings.Simulate(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("failed to simulate innings of %s: %w", in.BattingTeam.Name, err)
	}
	return out.Summary, nil
}

func decide(result *models.MatchResult, winner, loser *models.Team, by models.DecidedBy) {
	result.WinnerID = winner.ID
	result.LoserID = loser.ID
	result.DecidedBy = by
}

func stage(input *PlayInput, status models.MatchStatus, battingID string, completed *models.InningsSummary) {
	if input.OnStage == nil {
		return
	}
	input.OnStage(StageEvent{
		Status:        status,
		BattingTeamID: battingID,
		Completed:     completed,
	})
}

// fields reports whether the player is selected in the team's playing XI
func fields(team *models.Team, playerID string) bool {
	if playerID == "" {
		return false
	}
	for _, p := range team.PlayingXI() {
		if p.ID == playerID {
			return true
		}
	}
	return false
}
