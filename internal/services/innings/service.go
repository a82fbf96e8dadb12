package innings

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/crease/internal/common/logger"
	"github.com/KirkDiggler/crease/internal/decision"
	"github.com/KirkDiggler/crease/internal/dice"
	"github.com/KirkDiggler/crease/internal/models"
	"github.com/KirkDiggler/crease/internal/services/skill"
	"github.com/sirupsen/logrus"
)

type service struct {
	roller     dice.Roller
	difficulty float64
	ai         decision.Decider
	log        *logrus.Entry
}

// New creates a new innings service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilRoller
	}

	s := &service{
		roller:     cfg.DiceRoller,
		difficulty: cfg.Difficulty,
		ai:         cfg.AIDecider,
		log:        cfg.Logger,
	}
	if s.difficulty <= 0 {
		s.difficulty = DefaultDifficulty
	}
	if s.ai == nil {
		s.ai = decision.NewRandom(cfg.DiceRoller)
	}
	if s.log == nil {
		s.log = logger.WithService("innings")
	}
	return s, nil
}

// innings is the mutable state of one simulation
type innings struct {
	input    *SimulateInput
	batters  []*models.Player
	bowlers  []*models.Player
	striker  int
	non      int
	next     int
	runs     int
	wickets  int
	balls    int
	bounds   int
	overs    int
	cap      int
	bowler   *models.Player
	previous *models.Player
	events   []BallEvent
}

// Simulate plays an innings ball by ball until it completes
func (s *service) Simulate(ctx context.Context, input *SimulateInput) (*SimulateOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.BattingTeam == nil || input.BowlingTeam == nil {
		return nil, ErrNilTeam
	}
	if !input.Format.IsValid() {
		return nil, ErrInvalidFormat
	}

	st := &innings{
		input:   input,
		batters: input.BattingTeam.PlayingXI(),
		bowlers: input.BowlingTeam.PlayingXI(),
		striker: 0,
		non:     1,
		next:    2,
	}
	if len(st.batters) < 2 || len(st.bowlers) < 1 {
		return nil, ErrSquadTooSmall
	}
	if input.HumanPlayerID != "" && input.Decider == nil && s.involvesHuman(st, input.HumanPlayerID) {
		return nil, ErrNilDecider
	}

	st.overs = input.Format.Overs()
	if input.Overs > 0 {
		st.overs = input.Overs
	}
	st.cap = DefaultWicketCap
	if input.WicketCap > 0 {
		st.cap = input.WicketCap
	}
	if st.cap > len(st.batters)-1 {
		st.cap = len(st.batters) - 1
	}

	for _, p := range input.BattingTeam.Players {
		p.Innings.Reset()
	}
	for _, p := range input.BowlingTeam.Players {
		p.Innings.Reset()
	}

	log := s.log.WithFields(logrus.Fields{
		"batting":    input.BattingTeam.Name,
		"bowling":    input.BowlingTeam.Name,
		"format":     input.Format,
		"target":     input.Target,
		"super_over": input.SuperOver,
	})
	log.Debug("Innings started")

	var reason EndReason
	for {
		if r, done := st.finished(); done {
			reason = r
			break
		}
		if st.balls%BallsPerOver == 0 {
			st.bowler = s.pickBowler(st)
		}
		if err := s.bowl(ctx, st); err != nil {
			return nil, err
		}
		if st.balls%BallsPerOver == 0 {
			st.striker, st.non = st.non, st.striker
			st.previous = st.bowler
		}
	}

	summary := st.summary()
	log.WithFields(logrus.Fields{
		"runs":    summary.Runs,
		"wickets": summary.Wickets,
		"overs":   models.OversNotation(summary.Balls),
		"reason":  reason,
	}).Debug("Innings completed")

	return &SimulateOutput{
		Summary:   summary,
		State:     StateCompleted,
		EndReason: reason,
		Events:    st.events,
	}, nil
}

func (s *service) involvesHuman(st *innings, humanID string) bool {
	for _, p := range st.batters {
		if p.ID == humanID {
			return true
		}
	}
	for _, p := range st.bowlers {
		if p.ID == humanID {
			return true
		}
	}
	return false
}

// finished evaluates the terminal conditions before a ball is bowled
func (st *innings) finished() (EndReason, bool) {
	if st.wickets >= st.cap {
		return EndReasonAllOut, true
	}
	if st.overs > 0 && st.balls >= st.overs*BallsPerOver {
		return EndReasonOversExhausted, true
	}
	if st.input.Target > 0 && st.runs >= st.input.Target {
		return EndReasonTargetReached, true
	}
	return "", false
}

// pickBowler chooses the bowler for a new over, never the bowler of the
// over just completed while anyone else is available
func (s *service) pickBowler(st *innings) *models.Player {
	candidates := make([]*models.Player, 0, len(st.bowlers))
	for _, p := range st.bowlers {
		if p != st.previous || len(st.bowlers) == 1 {
			candidates = append(candidates, p)
		}
	}
	return candidates[s.roller.Intn(len(candidates))]
}

// bowl resolves a single delivery
func (s *service) bowl(ctx context.Context, st *innings) error {
	striker := st.batters[st.striker]
	bowler := st.bowler

	shot, delivery, chose, err := s.choices(ctx, st, striker, bowler)
	if err != nil {
		return err
	}

	chance := dismissalChance(s.difficulty, skill.EffectiveBowling(bowler), skill.EffectiveBatting(striker))
	intent := models.IntentNeutral
	if chose {
		chance *= choiceModifier(delivery, shot)
		intent = shot.Intent()
	}
	chance = clampChance(chance)

	st.balls++
	striker.Innings.BallsFaced++
	bowler.Innings.BallsBowled++

	event := BallEvent{
		Over:       (st.balls - 1) / BallsPerOver,
		Ball:       (st.balls-1)%BallsPerOver + 1,
		BowlerID:   bowler.ID,
		BowlerName: bowler.Name,
		StrikerID:  striker.ID,
		Striker:    striker.Name,
	}
	if chose {
		event.Shot = shot
		event.Delivery = delivery
	}

	if s.roller.Float64() < chance {
		event.Wicket = true
		st.wickets++
		striker.Innings.Dismissal = models.DismissalOut
		bowler.Innings.Wickets++
		if st.next < len(st.batters) {
			st.striker = st.next
			st.next++
		}
	} else {
		runs := outcomeTables[intent].sample(s.roller.Float64())
		event.Runs = runs
		st.runs += runs
		striker.Innings.Runs += runs
		bowler.Innings.RunsConceded += runs
		if event.IsBoundary() {
			st.bounds++
		}
		if runs%2 == 1 {
			st.striker, st.non = st.non, st.striker
		}
	}

	event.TeamRuns = st.runs
	event.TeamWickets = st.wickets
	st.events = append(st.events, event)
	if st.input.OnBall != nil {
		st.input.OnBall(event)
	}
	return nil
}

// choices collects the shot and delivery for a ball when the human player
// is on strike or bowling. chose is false when neither is involved.
func (s *service) choices(ctx context.Context, st *innings, striker, bowler *models.Player) (models.ShotDirection, models.Delivery, bool, error) {
	human := st.input.HumanPlayerID
	if human == "" || (striker.ID != human && bowler.ID != human) {
		return "", models.Delivery{}, false, nil
	}

	shotDecider, deliveryDecider := s.ai, s.ai
	if striker.ID == human {
		shotDecider = st.input.Decider
	}
	if bowler.ID == human {
		deliveryDecider = st.input.Decider
	}

	situation := st.situation(striker, bowler)

	shotReq := &decision.Request{
		Kind:      decision.KindShot,
		PlayerID:  striker.ID,
		Format:    st.input.Format,
		Situation: situation,
		Shots:     models.AllShots,
	}
	shotReq.PlayerRuns = striker.Innings.Runs
	shotReq.PlayerBalls = striker.Innings.BallsFaced

	deliveryReq := &decision.Request{
		Kind:       decision.KindDelivery,
		PlayerID:   bowler.ID,
		Format:     st.input.Format,
		Situation:  situation,
		Lengths:    models.AllPitchLengths,
		Variations: models.VariationsFor(bowler.BowlingStyle),
	}
	deliveryReq.PlayerRuns = bowler.Innings.RunsConceded
	deliveryReq.PlayerBalls = bowler.Innings.BallsBowled
	deliveryReq.PlayerWickets = bowler.Innings.Wickets

	delivery, err := decide(ctx, deliveryDecider, deliveryReq)
	if err != nil {
		return "", models.Delivery{}, false, err
	}
	shot, err := decide(ctx, shotDecider, shotReq)
	if err != nil {
		return "", models.Delivery{}, false, err
	}
	return shot.Shot, delivery.Delivery, true, nil
}

// decide asks the decider until it answers with a legal choice. Illegal
// answers consume nothing.
func decide(ctx context.Context, d decision.Decider, req *decision.Request) (*decision.Choice, error) {
	for i := 0; i < maxInvalidChoices; i++ {
		choice, err := d.Decide(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s decision: %w", req.Kind, err)
		}
		if req.Valid(choice) {
			return choice, nil
		}
	}
	return nil, ErrTooManyInvalidChoices
}

func (st *innings) situation(striker, bowler *models.Player) decision.Situation {
	return decision.Situation{
		BattingTeam: st.input.BattingTeam.Name,
		BowlingTeam: st.input.BowlingTeam.Name,
		Runs:        st.runs,
		Wickets:     st.wickets,
		Balls:       st.balls,
		Target:      st.input.Target,
		StrikerName: striker.Name,
		BowlerName:  bowler.Name,
		SuperOver:   st.input.SuperOver,
	}
}

// summary snapshots the scoreboard and the figures of every player who
// faced or bowled a ball
func (st *innings) summary() *models.InningsSummary {
	sum := &models.InningsSummary{
		BattingTeamID: st.input.BattingTeam.ID,
		BowlingTeamID: st.input.BowlingTeam.ID,
		Runs:          st.runs,
		Wickets:       st.wickets,
		Balls:         st.balls,
		Overs:         float64(st.balls) / BallsPerOver,
		Boundaries:    st.bounds,
		Target:        st.input.Target,
		Performances:  make(map[string]*models.Performance),
	}

	for _, p := range st.batters {
		if p.Innings.BallsFaced == 0 {
			continue
		}
		sum.Performances[p.ID] = &models.Performance{
			PlayerID:   p.ID,
			PlayerName: p.Name,
			TeamID:     st.input.BattingTeam.ID,
			Runs:       p.Innings.Runs,
			BallsFaced: p.Innings.BallsFaced,
			Dismissal:  p.Innings.Dismissal,
		}
	}
	for _, p := range st.bowlers {
		if p.Innings.BallsBowled == 0 {
			continue
		}
		sum.Performances[p.ID] = &models.Performance{
			PlayerID:     p.ID,
			PlayerName:   p.Name,
			TeamID:       st.input.BowlingTeam.ID,
			Wickets:      p.Innings.Wickets,
			RunsConceded: p.Innings.RunsConceded,
			BallsBowled:  p.Innings.BallsBowled,
			Dismissal:    models.DismissalNotOut,
		}
	}
	return sum
}
