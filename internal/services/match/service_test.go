package match

import (
	"context"
	"fmt"
	"testing"

	"github.com/KirkDiggler/crease/internal/common/logger"
	"github.com/KirkDiggler/crease/internal/decision"
	diceMocks "github.com/KirkDiggler/crease/internal/dice/mocks"
	"github.com/KirkDiggler/crease/internal/models"
	"github.com/KirkDiggler/crease/internal/services/innings"
	inningsMocks "github.com/KirkDiggler/crease/internal/services/innings/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MatchServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockDiceRoller *diceMocks.MockRoller
	mockInnings    *inningsMocks.MockService
	service        Service
	ctx            context.Context
	team1          *models.Team
	team2          *models.Team
	inputs         []*innings.SimulateInput
}

func (s *MatchServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockInnings = inningsMocks.NewMockService(s.mockCtrl)
	s.ctx = context.Background()
	s.inputs = nil

	svc, err := New(&Config{
		DiceRoller: s.mockDiceRoller,
		Innings:    s.mockInnings,
		POTMChance: -1,
		Logger:     logger.Discard(),
	})
	s.Require().NoError(err)
	s.service = svc

	s.team1 = newTestTeam("lions")
	s.team2 = newTestTeam("tigers")

	// Team 1 wins the toss and the random captain bats; commit rolls the
	// low end of every range
	s.mockDiceRoller.EXPECT().Intn(gomock.Any()).Return(0).AnyTimes()
}

func (s *MatchServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMatchServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MatchServiceTestSuite))
}

func newTestTeam(id string) *models.Team {
	team := &models.Team{ID: id, Name: "The " + id, Level: 5}
	for i := 0; i < models.SquadSize; i++ {
		p := &models.Player{
			ID:      fmt.Sprintf("%s-%d", id, i),
			Name:    fmt.Sprintf("%s %d", id, i),
			Batting: 50,
			Bowling: 50,
			Fitness: 80,
		}
		p.Normalize()
		team.Players = append(team.Players, p)
	}
	return team
}

func summary(runs, wickets, balls, boundaries int, perfs ...*models.Performance) *models.InningsSummary {
	sum := &models.InningsSummary{
		Runs:         runs,
		Wickets:      wickets,
		Balls:        balls,
		Overs:        float64(balls) / 6,
		Boundaries:   boundaries,
		Performances: make(map[string]*models.Performance),
	}
	for _, p := range perfs {
		sum.Performances[p.PlayerID] = p
	}
	return sum
}

// script makes the innings mock return the summaries in order
func (s *MatchServiceTestSuite) script(summaries ...*models.InningsSummary) {
	i := 0
	s.mockInnings.EXPECT().Simulate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *innings.SimulateInput) (*innings.SimulateOutput, error) {
			sum := summaries[i]
			i++
			s.inputs = append(s.inputs, in)
			sum.BattingTeamID = in.BattingTeam.ID
			sum.BowlingTeamID = in.BowlingTeam.ID
			sum.Target = in.Target
			return &innings.SimulateOutput{Summary: sum, State: innings.StateCompleted}, nil
		}).Times(len(summaries))
}

func (s *MatchServiceTestSuite) play(format models.Format) *models.MatchResult {
	out, err := s.service.Play(s.ctx, &PlayInput{Team1: s.team1, Team2: s.team2, Format: format})
	s.Require().NoError(err)
	s.Equal(models.MatchStatusResult, out.Status)
	return out.Result
}

func (s *MatchServiceTestSuite) TestNew() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Innings: s.mockInnings})
	s.ErrorIs(err, ErrNilRoller)

	_, err = New(&Config{DiceRoller: s.mockDiceRoller})
	s.ErrorIs(err, ErrNilInnings)

	svc, err := New(&Config{DiceRoller: s.mockDiceRoller, Innings: s.mockInnings})
	s.Require().NoError(err)
	s.Equal(DefaultPOTMChance, svc.potmChance)
	s.Equal(DefaultMaxSuperOvers, svc.maxSuperOvers)
}

func (s *MatchServiceTestSuite) TestPlay_Validation() {
	_, err := s.service.Play(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)

	_, err = s.service.Play(s.ctx, &PlayInput{Team1: s.team1, Format: models.FormatT20})
	s.ErrorIs(err, ErrNilTeam)

	_, err = s.service.Play(s.ctx, &PlayInput{Team1: s.team1, Team2: s.team1, Format: models.FormatT20})
	s.ErrorIs(err, ErrSameTeam)

	_, err = s.service.Play(s.ctx, &PlayInput{Team1: s.team1, Team2: s.team2, Format: "six_a_side"})
	s.ErrorIs(err, ErrInvalidFormat)

	_, err = s.service.Play(s.ctx, &PlayInput{
		Team1:         s.team1,
		Team2:         s.team2,
		Format:        models.FormatT20,
		HumanPlayerID: s.team2.Players[4].ID,
	})
	s.ErrorIs(err, ErrNilDecider)
}

func (s *MatchServiceTestSuite) TestPlay_ChaseSucceeds() {
	s.script(summary(150, 6, 120, 14), summary(151, 4, 112, 15))

	result := s.play(models.FormatT20)

	s.Equal(s.team1.ID, result.TossWinnerID)
	s.Equal(models.TossBat, result.TossDecision)
	s.Equal(151, result.Target)
	s.Equal(s.team2.ID, result.WinnerID)
	s.Equal(s.team1.ID, result.LoserID)
	s.Equal(models.DecidedByRuns, result.DecidedBy)
	s.False(result.Drawn)
	s.False(result.SuperOverNeeded)

	s.Require().Len(s.inputs, 2)
	s.Equal(0, s.inputs[0].Target)
	s.Equal(151, s.inputs[1].Target)
	s.Equal(s.team2, s.inputs[1].BattingTeam)

	s.Equal(standing(2, 1, 1, 0, 0), pointsOf(s.team2))
	s.Equal(standing(0, 1, 0, 1, 0), pointsOf(s.team1))
	s.Equal(150, s.team1.Record.RunsFor)
	s.Equal(120, s.team1.Record.BallsFaced)
	s.Equal(151, s.team1.Record.RunsAgainst)
	s.Equal(112, s.team1.Record.BallsBowled)
}

func (s *MatchServiceTestSuite) TestPlay_DefendsTotal() {
	s.script(summary(180, 5, 120, 20), summary(140, 10, 101, 9))

	result := s.play(models.FormatT20)

	s.Equal(s.team1.ID, result.WinnerID)
	s.Equal(models.DecidedByRuns, result.DecidedBy)
}

func (s *MatchServiceTestSuite) TestPlay_TossWinnerBowls() {
	svc, err := New(&Config{
		DiceRoller: s.mockDiceRoller,
		Innings:    s.mockInnings,
		POTMChance: -1,
		Logger:     logger.Discard(),
		AIDecider: decision.Func(func(ctx context.Context, req *decision.Request) (*decision.Choice, error) {
			return &decision.Choice{Toss: models.TossBowl}, nil
		}),
	})
	s.Require().NoError(err)
	s.script(summary(120, 10, 110, 8), summary(90, 10, 95, 5))

	out, err := svc.Play(s.ctx, &PlayInput{Team1: s.team1, Team2: s.team2, Format: models.FormatODI})
	s.Require().NoError(err)

	s.Equal(models.TossBowl, out.Result.TossDecision)
	s.Equal(s.team2, s.inputs[0].BattingTeam)
	s.Equal(s.team2.ID, out.Result.WinnerID)
}

func (s *MatchServiceTestSuite) TestPlay_TieGoesToSuperOver() {
	s.script(
		summary(150, 6, 120, 14),
		summary(150, 8, 120, 12),
		summary(10, 1, 6, 1),
		summary(12, 0, 5, 2),
	)

	result := s.play(models.FormatT20)

	s.True(result.SuperOverNeeded)
	s.Equal(models.DecidedBySuperOver, result.DecidedBy)
	s.Equal(s.team1.ID, result.WinnerID)
	s.Equal(1, result.SuperOverRounds())

	// The side that batted second bats first in the super over
	so1, so2 := s.inputs[2], s.inputs[3]
	s.Equal(s.team2, so1.BattingTeam)
	s.Equal(1, so1.Overs)
	s.Equal(innings.SuperOverWicketCap, so1.WicketCap)
	s.True(so1.SuperOver)
	s.Equal(s.team1, so2.BattingTeam)
	s.Equal(11, so2.Target)
}

func (s *MatchServiceTestSuite) TestPlay_TiedSuperOverRepeats() {
	s.script(
		summary(150, 6, 120, 14),
		summary(150, 8, 120, 12),
		summary(8, 1, 6, 1),
		summary(8, 2, 6, 1),
		summary(9, 0, 6, 1),
		summary(5, 2, 6, 0),
	)

	result := s.play(models.FormatODI)

	s.Equal(2, result.SuperOverRounds())
	s.Equal(s.team2.ID, result.WinnerID)
	s.Equal(models.DecidedBySuperOver, result.DecidedBy)
}

func (s *MatchServiceTestSuite) TestPlay_SuperOverFallback() {
	svc, err := New(&Config{
		DiceRoller:    s.mockDiceRoller,
		Innings:       s.mockInnings,
		POTMChance:    -1,
		MaxSuperOvers: 2,
		Logger:        logger.Discard(),
	})
	s.Require().NoError(err)
	s.script(
		summary(150, 6, 120, 10),
		summary(150, 8, 120, 12),
		summary(7, 1, 6, 0),
		summary(7, 1, 6, 0),
		summary(4, 0, 6, 0),
		summary(4, 2, 6, 0),
	)

	out, err := svc.Play(s.ctx, &PlayInput{Team1: s.team1, Team2: s.team2, Format: models.FormatT20})
	s.Require().NoError(err)

	s.Equal(2, out.Result.SuperOverRounds())
	s.Equal(models.DecidedByFallback, out.Result.DecidedBy)
	s.Equal(s.team2.ID, out.Result.WinnerID)
}

func (s *MatchServiceTestSuite) TestPlay_TestMatchTieIsDrawn() {
	s.script(summary(301, 10, 540, 30), summary(301, 10, 560, 28))

	result := s.play(models.FormatTest)

	s.True(result.Drawn)
	s.False(result.SuperOverNeeded)
	s.Equal(models.DecidedByDraw, result.DecidedBy)
	s.Empty(result.WinnerID)
	s.Equal(standing(1, 1, 0, 0, 1), pointsOf(s.team1))
	s.Equal(standing(1, 1, 0, 0, 1), pointsOf(s.team2))

	// Draws move form by a roll in [-1, 1]; the low roll is -1
	s.Equal(-1, s.team1.Players[0].Form)
}

func (s *MatchServiceTestSuite) TestPlay_CommitsCondition() {
	s.script(summary(150, 6, 120, 14), summary(151, 4, 112, 15))

	s.play(models.FormatODI)

	winner := s.team2.Players[3]
	loser := s.team1.Players[3]
	s.Equal(1, winner.Career.Matches)
	s.Equal(1, winner.Formats[models.FormatODI].Matches)
	s.Equal(0, winner.Formats[models.FormatT20].Matches)
	s.Equal(models.FormatODI.Experience(), winner.Experience)
	s.Equal(76, winner.Fitness)
	s.Equal(1, winner.Form)
	s.Equal(-1, loser.Form)
}

func (s *MatchServiceTestSuite) TestPlay_CommitsFigures() {
	batter := s.team1.Players[0]
	bowler := s.team2.Players[10]
	s.script(
		summary(300, 4, 300, 40,
			&models.Performance{PlayerID: batter.ID, Runs: 250, BallsFaced: 180},
			&models.Performance{PlayerID: bowler.ID, Wickets: 5, RunsConceded: 40, BallsBowled: 60},
		),
		summary(200, 10, 250, 20,
			&models.Performance{PlayerID: batter.ID, Wickets: 1, RunsConceded: 30, BallsBowled: 36},
		),
	)

	s.play(models.FormatODI)

	rec := batter.Formats[models.FormatODI]
	s.Equal(250, rec.Runs)
	s.Equal(180, rec.BallsFaced)
	s.Equal(250, rec.HighestScore)
	s.Equal(2, rec.Centuries)
	s.Equal(0, rec.Fifties)
	s.Equal(models.BestBatting{Runs: 250, Balls: 180}, rec.BestBatting)
	s.True(rec.HasBowled)
	s.Equal(models.BestBowling{Wickets: 1, Runs: 30}, rec.BestBowling)
	s.Equal(2, batter.Career.Centuries)
	s.InDelta(2.7, batter.Reputation, 1e-9)

	brec := bowler.Formats[models.FormatODI]
	s.Equal(5, brec.Wickets)
	s.Equal(1, brec.FiveWickets)
	s.Equal(1, bowler.Career.FiveWickets)
	s.Equal(models.BestBowling{Wickets: 5, Runs: 40}, brec.BestBowling)
	s.Equal(0, brec.HighestScore)
	s.Equal(models.BestBatting{}, brec.BestBatting)
}

func (s *MatchServiceTestSuite) TestPlay_SuperOverFiguresNotCommitted() {
	batter := s.team2.Players[0]
	s.script(
		summary(150, 6, 120, 14),
		summary(150, 8, 120, 12,
			&models.Performance{PlayerID: batter.ID, Runs: 40, BallsFaced: 30},
		),
		summary(15, 0, 6, 2,
			&models.Performance{PlayerID: batter.ID, Runs: 15, BallsFaced: 6},
		),
		summary(3, 2, 4, 0),
	)

	s.play(models.FormatT20)

	s.Equal(40, batter.Formats[models.FormatT20].Runs)
	s.Equal(30, batter.Formats[models.FormatT20].BallsFaced)
	s.Equal(40, batter.Career.Runs)
}

func (s *MatchServiceTestSuite) TestPlay_FormatRunsAccumulate() {
	batter := s.team1.Players[1]
	scores := []int{34, 71, 102}
	for _, runs := range scores {
		s.script(
			summary(200, 5, 120, 20, &models.Performance{PlayerID: batter.ID, Runs: runs, BallsFaced: runs}),
			summary(100, 10, 90, 8),
		)
		s.play(models.FormatT20)
	}

	rec := batter.Formats[models.FormatT20]
	s.Equal(34+71+102, rec.Runs)
	s.Equal(3, rec.Matches)
	s.Equal(102, rec.HighestScore)
	s.Equal(1, rec.Fifties)
	s.Equal(1, rec.Centuries)
	s.Equal(3, s.team1.Record.Won)
	s.Equal(6, s.team1.Record.Points)
}

func (s *MatchServiceTestSuite) TestPlay_HumanPlayerOfMatch() {
	svc, err := New(&Config{
		DiceRoller: s.mockDiceRoller,
		Innings:    s.mockInnings,
		POTMChance: 1,
		Logger:     logger.Discard(),
	})
	s.Require().NoError(err)
	s.mockDiceRoller.EXPECT().Float64().Return(0.5)

	human := s.team1.Players[2]
	human.IsHuman = true
	tossCalls := 0
	decider := decision.Func(func(ctx context.Context, req *decision.Request) (*decision.Choice, error) {
		tossCalls++
		s.Equal(decision.KindToss, req.Kind)
		s.Equal(human.ID, req.PlayerID)
		return &decision.Choice{Toss: models.TossBat}, nil
	})
	s.script(summary(150, 6, 120, 14), summary(100, 10, 99, 5))

	out, err := svc.Play(s.ctx, &PlayInput{
		Team1:         s.team1,
		Team2:         s.team2,
		Format:        models.FormatT20,
		HumanPlayerID: human.ID,
		Decider:       decider,
	})
	s.Require().NoError(err)

	s.Equal(1, tossCalls)
	s.Equal(human.ID, out.Result.PlayerOfMatchID)
	s.Equal(1, human.Career.PlayerOfMatch)
	s.Equal(human.ID, s.inputs[0].HumanPlayerID)
	s.NotNil(s.inputs[0].Decider)
}

func (s *MatchServiceTestSuite) TestPlay_StagesReported() {
	s.script(summary(150, 6, 120, 14), summary(151, 4, 112, 15))

	var stages []models.MatchStatus
	_, err := s.service.Play(s.ctx, &PlayInput{
		Team1:   s.team1,
		Team2:   s.team2,
		Format:  models.FormatT20,
		OnStage: func(e StageEvent) { stages = append(stages, e.Status) },
	})
	s.Require().NoError(err)

	s.Equal([]models.MatchStatus{
		models.MatchStatusToss,
		models.MatchStatusInnings1,
		models.MatchStatusInnings2,
		models.MatchStatusResult,
	}, stages)
}

func TestMilestones(t *testing.T) {
	cases := []struct {
		runs, centuries, fifties int
	}{
		{49, 0, 0},
		{50, 0, 1},
		{99, 0, 1},
		{100, 1, 0},
		{163, 1, 1},
		{250, 2, 0},
		{301, 3, 0},
	}
	for _, tc := range cases {
		c, f := milestones(tc.runs)
		if c != tc.centuries || f != tc.fifties {
			t.Errorf("milestones(%d) = %d, %d; want %d, %d", tc.runs, c, f, tc.centuries, tc.fifties)
		}
	}
}

type recordPoints struct {
	Points, Played, Won, Lost, Drawn int
}

// standing builds the points columns of a team record
func standing(points, played, won, lost, drawn int) recordPoints {
	return recordPoints{points, played, won, lost, drawn}
}

func pointsOf(t *models.Team) recordPoints {
	r := t.Record
	return recordPoints{r.Points, r.Played, r.Won, r.Lost, r.Drawn}
}
