package career

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/crease/internal/common/clock/mocks"
	"github.com/KirkDiggler/crease/internal/common/logger"
	uuidMocks "github.com/KirkDiggler/crease/internal/common/uuid/mocks"
	"github.com/KirkDiggler/crease/internal/decision"
	diceMocks "github.com/KirkDiggler/crease/internal/dice/mocks"
	"github.com/KirkDiggler/crease/internal/models"
	careerRepo "github.com/KirkDiggler/crease/internal/repositories/career"
	careerMocks "github.com/KirkDiggler/crease/internal/repositories/career/mocks"
	"github.com/KirkDiggler/crease/internal/services/match"
	matchMocks "github.com/KirkDiggler/crease/internal/services/match/mocks"
	"github.com/KirkDiggler/crease/internal/services/messaging"
	"github.com/KirkDiggler/crease/internal/services/skill"
	"github.com/KirkDiggler/crease/internal/services/tournament"
	tournamentMocks "github.com/KirkDiggler/crease/internal/services/tournament/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CareerServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRoller *diceMocks.MockRoller
	mockClock  *clockMocks.MockClock
	mockUUID   *uuidMocks.MockUUID
	mockRepo   *careerMocks.MockRepository
	mockMatch  *matchMocks.MockService
	service    *service
	ctx        context.Context
	testNow    time.Time
}

func (s *CareerServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.mockRepo = careerMocks.NewMockRepository(s.mockCtrl)
	s.mockMatch = matchMocks.NewMockService(s.mockCtrl)
	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)

	s.mockRoller.EXPECT().Intn(gomock.Any()).Return(0).AnyTimes()
	s.mockRoller.EXPECT().Roll(gomock.Any()).Return(2).AnyTimes()
	s.mockClock.EXPECT().Now().Return(s.testNow).AnyTimes()

	var ids int
	s.mockUUID.EXPECT().NewUUID().DoAndReturn(func() string {
		ids++
		return fmt.Sprintf("id-%d", ids)
	}).AnyTimes()

	tournaments, err := tournament.New(&tournament.Config{
		Match:         s.mockMatch,
		UUIDGenerator: s.mockUUID,
		Logger:        logger.Discard(),
	})
	s.Require().NoError(err)

	s.service = s.build(tournaments, 0, 0)
}

// build creates a service over the given tournament service with
// deterministic names that sort after the user's team
func (s *CareerServiceTestSuite) build(tournaments tournament.Service, worldTeams, tournamentTeams int) *service {
	skills, err := skill.New(&skill.Config{DiceRoller: s.mockRoller})
	s.Require().NoError(err)

	messages, err := messaging.NewService(&messaging.ServiceConfig{DiceRoller: s.mockRoller})
	s.Require().NoError(err)

	svc, err := New(&Config{
		Repository:      s.mockRepo,
		Tournament:      tournaments,
		Skill:           skills,
		Messaging:       messages,
		DiceRoller:      s.mockRoller,
		Clock:           s.mockClock,
		UUIDGenerator:   s.mockUUID,
		WorldTeams:      worldTeams,
		TournamentTeams: tournamentTeams,
		Logger:          logger.Discard(),
	})
	s.Require().NoError(err)

	var n int
	svc.names = func() string {
		n++
		return fmt.Sprintf("Zulu %03d", n)
	}
	return svc
}

func (s *CareerServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCareerServiceSuite(t *testing.T) {
	suite.Run(t, new(CareerServiceTestSuite))
}

// startCareer creates Sam's batting career on svc
func (s *CareerServiceTestSuite) startCareer(svc *service) *NewCareerOutput {
	s.mockRepo.EXPECT().
		GetCareerByOwner(gomock.Any(), &careerRepo.GetCareerByOwnerInput{OwnerID: "owner-1"}).
		Return(nil, careerRepo.ErrCareerNotFound)
	s.mockRepo.EXPECT().SaveCareer(gomock.Any(), gomock.Any()).Return(nil)

	out, err := svc.NewCareer(s.ctx, &NewCareerInput{
		OwnerID:    "owner-1",
		PlayerName: "Sam",
		Role:       models.RoleBatter,
		Background: models.BackgroundStreet,
		Country:    "India",
	})
	s.Require().NoError(err)
	return out
}

// quietWorld rolls no world events
func (s *CareerServiceTestSuite) quietWorld() {
	s.mockRoller.EXPECT().Float64().Return(0.5).AnyTimes()
}

// expectWin scripts the match engine so the home side wins with the
// human's figures split across the two innings
func (s *CareerServiceTestSuite) expectWin(humanID string, runs, wickets int) {
	s.mockMatch.EXPECT().Play(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *match.PlayInput) (*match.PlayOutput, error) {
			result := &models.MatchResult{
				Team1ID: in.Team1.ID,
				Team2ID: in.Team2.ID,
				Format:  in.Format,
				Innings: []*models.InningsSummary{
					{
						BattingTeamID: in.Team1.ID, BowlingTeamID: in.Team2.ID, Runs: 180, Balls: 120,
						Performances: map[string]*models.Performance{
							humanID: {PlayerID: humanID, PlayerName: "Sam", TeamID: in.Team1.ID, Runs: runs, BallsFaced: 50, Dismissal: models.DismissalOut},
						},
					},
					{
						BattingTeamID: in.Team2.ID, BowlingTeamID: in.Team1.ID, Runs: 150, Balls: 120,
						Performances: map[string]*models.Performance{
							humanID: {PlayerID: humanID, PlayerName: "Sam", TeamID: in.Team1.ID, Wickets: wickets, RunsConceded: 20, BallsBowled: 24},
						},
					},
				},
				WinnerID:  in.Team1.ID,
				LoserID:   in.Team2.ID,
				DecidedBy: models.DecidedByRuns,
			}
			return &match.PlayOutput{Result: result, Status: models.MatchStatusResult}, nil
		})
}

func (s *CareerServiceTestSuite) TestNew() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilRepository)

	cfg := &Config{
		Repository:    s.mockRepo,
		Tournament:    s.service.tournament,
		Skill:         s.service.skill,
		Messaging:     s.service.messaging,
		DiceRoller:    s.mockRoller,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	}
	cfg.WorldTeams, cfg.TournamentTeams = 3, 6
	_, err = New(cfg)
	s.ErrorIs(err, ErrInvalidTeamCounts)

	cfg.WorldTeams, cfg.TournamentTeams = 5, 6
	_, err = New(cfg)
	s.NoError(err)
}

func (s *CareerServiceTestSuite) TestNewCareer_BuildsWorld() {
	out := s.startCareer(s.service)
	c := out.Career

	s.Equal("owner-1", c.OwnerID)
	s.Equal(DefaultStartDate, c.Date)
	s.Equal(s.testNow, c.CreatedAt)
	s.Len(c.Teams, 1+DefaultWorldTeams)

	// Street cricketers start at level 2 and meet level 1 sides
	s.Equal("Sam's Starting Team", out.Team.Name)
	s.Equal(2, out.Team.Level)
	for _, team := range c.Teams[1:] {
		s.Equal(1, team.Level)
	}

	seen := make(map[string]bool)
	for _, team := range c.Teams {
		s.Len(team.Players, models.SquadSize)
		for _, p := range team.Players {
			s.False(seen[p.ID], "duplicate player id %s", p.ID)
			seen[p.ID] = true
			s.NotEmpty(p.Name)
			s.Len(p.Formats, len(models.AllFormats))
		}
	}

	p := out.Player
	s.True(p.IsHuman)
	s.Equal("Sam", p.Name)
	s.Equal("India", p.Country)
	s.Equal(models.BackgroundStreet, p.Background)
	s.Equal(16, p.Age)
	s.Equal(35, p.Batting)
	s.Equal(15, p.Bowling)
	s.Equal(40, p.Fielding)
	s.Equal(40, p.Mental)
	s.Zero(p.Fatigue)
	s.Equal(1.0, p.Reputation)

	// Street cricketers gain aggression
	s.Equal(models.Traits{Confidence: 1, Discipline: 1, Aggression: 3, Leadership: 1}, p.Traits)
	s.Equal(models.Coach{Strictness: 3, Preference: models.CoachPrefersYouth}, out.Team.Coach)
	s.Same(p, out.Team.Players[0])

	batters := 0
	for _, teammate := range out.Team.Players {
		if teammate.Role == models.RoleBatter {
			batters++
		}
	}
	s.Equal(4, batters)
}

func (s *CareerServiceTestSuite) TestNewCareer_Validation() {
	_, err := s.service.NewCareer(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)

	_, err = s.service.NewCareer(s.ctx, &NewCareerInput{PlayerName: "Sam"})
	s.ErrorIs(err, ErrMissingOwner)

	_, err = s.service.NewCareer(s.ctx, &NewCareerInput{OwnerID: "owner-1"})
	s.ErrorIs(err, ErrMissingName)

	_, err = s.service.NewCareer(s.ctx, &NewCareerInput{
		OwnerID: "owner-1", PlayerName: "Sam", Role: "umpire", Background: models.BackgroundClub,
	})
	s.ErrorIs(err, ErrInvalidRole)

	_, err = s.service.NewCareer(s.ctx, &NewCareerInput{
		OwnerID: "owner-1", PlayerName: "Sam", Role: models.RoleBowler, Background: "boarding_school",
	})
	s.ErrorIs(err, ErrInvalidBackground)
}

func (s *CareerServiceTestSuite) TestNewCareer_ActiveCareerExists() {
	first := s.startCareer(s.service)

	_, err := s.service.NewCareer(s.ctx, &NewCareerInput{
		OwnerID: "owner-1", PlayerName: "Alex", Role: models.RoleBowler, Background: models.BackgroundAcademy,
	})
	s.ErrorIs(err, ErrCareerExists)

	s.mockRepo.EXPECT().DeleteCareer(gomock.Any(), &careerRepo.DeleteCareerInput{CareerID: first.Career.ID}).Return(nil)
	s.mockRepo.EXPECT().SaveCareer(gomock.Any(), gomock.Any()).Return(nil)

	replaced, err := s.service.NewCareer(s.ctx, &NewCareerInput{
		OwnerID: "owner-1", PlayerName: "Alex", Role: models.RoleBowler, Background: models.BackgroundAcademy, Replace: true,
	})
	s.Require().NoError(err)
	s.NotEqual(first.Career.ID, replaced.Career.ID)
	s.Equal(4, replaced.Team.Level)

	got, err := s.service.GetCareer(s.ctx, &GetCareerInput{OwnerID: "owner-1"})
	s.Require().NoError(err)
	s.Equal("Alex", got.Player.Name)
}

func (s *CareerServiceTestSuite) TestNewCareer_OverCorruptSave() {
	s.mockRepo.EXPECT().
		GetCareerByOwner(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: unexpected end of JSON input", careerRepo.ErrCorruptCareer))
	s.mockRepo.EXPECT().SaveCareer(gomock.Any(), gomock.Any()).Return(nil)

	out, err := s.service.NewCareer(s.ctx, &NewCareerInput{
		OwnerID: "owner-1", PlayerName: "Sam", Role: models.RoleAllRounder, Background: models.BackgroundUniversity,
	})
	s.Require().NoError(err)
	s.Equal(3, out.Team.Level)
}

func (s *CareerServiceTestSuite) TestGetCareer_LoadsOnce() {
	created := s.startCareer(s.service)
	stored := created.Career

	// A fresh service has nothing in memory
	fresh := s.build(s.service.tournament, 0, 0)
	s.mockRepo.EXPECT().
		GetCareerByOwner(gomock.Any(), &careerRepo.GetCareerByOwnerInput{OwnerID: "owner-1"}).
		Return(stored, nil).
		Times(1)

	for i := 0; i < 2; i++ {
		got, err := fresh.GetCareer(s.ctx, &GetCareerInput{OwnerID: "owner-1"})
		s.Require().NoError(err)
		s.Same(stored, got.Career)
		s.Equal(created.Player.ID, got.Player.ID)
	}
}

func (s *CareerServiceTestSuite) TestGetCareer_Errors() {
	_, err := s.service.GetCareer(s.ctx, &GetCareerInput{})
	s.ErrorIs(err, ErrMissingOwner)

	s.mockRepo.EXPECT().GetCareerByOwner(gomock.Any(), gomock.Any()).Return(nil, careerRepo.ErrCareerNotFound)
	_, err = s.service.GetCareer(s.ctx, &GetCareerInput{OwnerID: "owner-1"})
	s.ErrorIs(err, ErrNoCareer)

	s.mockRepo.EXPECT().GetCareerByOwner(gomock.Any(), gomock.Any()).Return(nil, careerRepo.ErrHumanPlayerMissing)
	_, err = s.service.GetCareer(s.ctx, &GetCareerInput{OwnerID: "owner-1"})
	s.ErrorIs(err, ErrCorruptSave)

	s.mockRepo.EXPECT().GetCareerByOwner(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
	_, err = s.service.GetCareer(s.ctx, &GetCareerInput{OwnerID: "owner-1"})
	s.Error(err)
	s.NotErrorIs(err, ErrNoCareer)
}

func (s *CareerServiceTestSuite) TestTrain() {
	created := s.startCareer(s.service)
	s.quietWorld()

	out, err := s.service.Train(s.ctx, &TrainInput{OwnerID: "owner-1", Skill: skill.TypeBatting, Intensity: 1})
	s.Require().NoError(err)

	s.Equal(2, out.Improvement)
	s.Equal(37, created.Player.Batting)
	s.Equal(2, out.FitnessLost)
	s.Equal(1, out.FatigueGained)
	s.Equal(1, out.Fatigue)
	s.Equal(1, created.Player.Fatigue)
	s.False(out.Injured)
	s.Equal(DefaultStartDate.AddDate(0, 0, 1), out.Date)
	s.Empty(out.Headlines)
}

func (s *CareerServiceTestSuite) TestTrain_InvalidSkillKeepsCalendar() {
	created := s.startCareer(s.service)

	_, err := s.service.Train(s.ctx, &TrainInput{OwnerID: "owner-1", Skill: "juggling"})
	s.ErrorIs(err, skill.ErrInvalidSkillType)
	s.Equal(DefaultStartDate, created.Career.Date)
}

func (s *CareerServiceTestSuite) TestTrain_FitnessAndMental() {
	created := s.startCareer(s.service)
	s.quietWorld()
	fitness := created.Player.Fitness

	out, err := s.service.Train(s.ctx, &TrainInput{OwnerID: "owner-1", Skill: skill.TypeFitness, Intensity: 1})
	s.Require().NoError(err)
	s.Zero(out.FitnessLost)
	s.Equal(fitness+2, created.Player.Fitness)

	_, err = s.service.Train(s.ctx, &TrainInput{OwnerID: "owner-1", Skill: skill.TypeMental, Intensity: 2})
	s.Require().NoError(err)
	s.Equal(44, created.Player.Mental)
	s.Equal(3, created.Player.Fatigue)
}

func (s *CareerServiceTestSuite) TestRest() {
	created := s.startCareer(s.service)
	s.quietWorld()
	before := created.Player.Fitness

	out, err := s.service.Rest(s.ctx, &RestInput{OwnerID: "owner-1"})
	s.Require().NoError(err)

	s.Equal(before+out.FitnessGained, created.Player.Fitness)
	s.Equal(created.Player.Fitness, out.Fitness)
	s.Zero(out.FatigueShed)
	s.Positive(out.FitnessGained)
	s.Equal(DefaultStartDate.AddDate(0, 0, 3), out.Date)
}

func (s *CareerServiceTestSuite) TestAdvanceTime_WorldEvent() {
	created := s.startCareer(s.service)
	s.mockRoller.EXPECT().Float64().Return(0.05)

	out, err := s.service.AdvanceTime(s.ctx, &AdvanceTimeInput{OwnerID: "owner-1"})
	s.Require().NoError(err)

	s.Equal(DefaultStartDate.AddDate(0, 0, DefaultAdvanceDays), out.Date)
	s.Equal([]string{"Sam's Starting Team announce new head coach"}, out.Headlines)

	news, err := s.service.GetNews(s.ctx, &GetNewsInput{OwnerID: "owner-1"})
	s.Require().NoError(err)
	s.Require().Len(news.Items, 1)
	s.Equal(out.Date, news.Items[0].Date)
	s.Len(created.Career.News, 1)
}

func (s *CareerServiceTestSuite) TestGetNews_KeepsLatest() {
	created := s.startCareer(s.service)
	for i := 0; i < 8; i++ {
		addNews(created.Career, fmt.Sprintf("headline %d", i))
	}

	out, err := s.service.GetNews(s.ctx, &GetNewsInput{OwnerID: "owner-1"})
	s.Require().NoError(err)
	s.Require().Len(out.Items, DefaultNewsItems)
	s.Equal("headline 3", out.Items[0].Headline)
	s.Equal("headline 7", out.Items[4].Headline)
}

func (s *CareerServiceTestSuite) TestJoinTournament() {
	created := s.startCareer(s.service)

	out, err := s.service.JoinTournament(s.ctx, &JoinTournamentInput{OwnerID: "owner-1", Format: models.FormatT20})
	s.Require().NoError(err)

	s.Len(out.Tournament.Teams, DefaultTournamentTeams)
	s.Same(created.Team, out.Tournament.Teams[0])
	s.Len(out.Fixtures, DefaultTournamentTeams*(DefaultTournamentTeams-1)/2)
	s.Equal(models.CompetitionT20League, out.Tournament.Competition)
	s.Same(out.Tournament, created.Career.Tournament)
	s.Equal("Sam's Starting Team enter the T20 Series", created.Career.News[0].Headline)

	_, err = s.service.JoinTournament(s.ctx, &JoinTournamentInput{OwnerID: "owner-1", Format: models.FormatODI})
	s.ErrorIs(err, ErrTournamentInProgress)

	_, err = s.service.JoinTournament(s.ctx, &JoinTournamentInput{OwnerID: "owner-1", Format: "the_hundred"})
	s.ErrorIs(err, ErrInvalidFormat)
}

func (s *CareerServiceTestSuite) TestNoTournament() {
	s.startCareer(s.service)

	_, err := s.service.GetFixtures(s.ctx, &GetFixturesInput{OwnerID: "owner-1"})
	s.ErrorIs(err, ErrNoTournament)

	_, err = s.service.GetStandings(s.ctx, &GetStandingsInput{OwnerID: "owner-1"})
	s.ErrorIs(err, ErrNoTournament)

	_, err = s.service.PlayNextFixture(s.ctx, &PlayNextFixtureInput{OwnerID: "owner-1"})
	s.ErrorIs(err, ErrNoTournament)
}

func (s *CareerServiceTestSuite) TestPlayNextFixture_HumanHeadlines() {
	created := s.startCareer(s.service)
	s.quietWorld()

	_, err := s.service.JoinTournament(s.ctx, &JoinTournamentInput{OwnerID: "owner-1", Format: models.FormatT20})
	s.Require().NoError(err)

	s.expectWin(created.Player.ID, 85, 4)

	out, err := s.service.PlayNextFixture(s.ctx, &PlayNextFixtureInput{
		OwnerID: "owner-1",
		Decider: decision.NewRandom(s.mockRoller),
	})
	s.Require().NoError(err)

	s.True(out.UserInvolved)
	s.Equal(created.Team.ID, out.Fixture.HomeTeamID)
	s.Require().NotNil(out.Figures)
	s.Equal(85, out.Figures.Runs)
	s.Equal(4, out.Figures.Wickets)
	s.Equal(24, out.Figures.BallsBowled)
	s.Equal(models.DismissalOut, out.Figures.Dismissal)
	s.Equal([]string{
		"Sam smashes 85 in T20 clash",
		"Sam rips through the order with 4 wickets",
	}, out.Headlines)
	s.Equal(DefaultStartDate.AddDate(0, 0, 1), out.Date)
	s.False(out.Completed)
	s.Equal(2, created.Player.Fatigue)

	s.Equal(created.Team.ID, out.UserTeamID)
	s.Equal("Sam's Starting Team", out.TeamNames[created.Team.ID])
	s.Len(out.TeamNames, 1+DefaultWorldTeams)

	standings, err := s.service.GetStandings(s.ctx, &GetStandingsInput{OwnerID: "owner-1"})
	s.Require().NoError(err)
	s.Equal(created.Team.ID, standings.Entries[0].TeamID)
	s.Equal(2, standings.Entries[0].Points)

	fixtures, err := s.service.GetFixtures(s.ctx, &GetFixturesInput{OwnerID: "owner-1"})
	s.Require().NoError(err)
	s.True(fixtures.Fixtures[0].Played)
	s.Equal(14, fixtures.Remaining)
}

func (s *CareerServiceTestSuite) TestPlayNextFixture_QuietMatchHasNoHeadlines() {
	created := s.startCareer(s.service)
	s.quietWorld()

	_, err := s.service.JoinTournament(s.ctx, &JoinTournamentInput{OwnerID: "owner-1", Format: models.FormatTest})
	s.Require().NoError(err)

	// Headlines need more than 80 runs or more than 3 wickets
	s.expectWin(created.Player.ID, 80, 3)

	out, err := s.service.PlayNextFixture(s.ctx, &PlayNextFixtureInput{
		OwnerID: "owner-1",
		Decider: decision.NewRandom(s.mockRoller),
	})
	s.Require().NoError(err)
	s.Empty(out.Headlines)
	s.Equal(DefaultStartDate.AddDate(0, 0, 5), out.Date)
	s.Equal(models.MaxFatigue, created.Player.Fatigue)
}

func (s *CareerServiceTestSuite) TestPlayNextFixture_ChampionHeadline() {
	svc := s.build(s.service.tournament, 1, 2)
	created := s.startCareer(svc)
	s.quietWorld()

	_, err := svc.JoinTournament(s.ctx, &JoinTournamentInput{OwnerID: "owner-1", Format: models.FormatODI})
	s.Require().NoError(err)

	s.expectWin(created.Player.ID, 12, 0)

	out, err := svc.PlayNextFixture(s.ctx, &PlayNextFixtureInput{
		OwnerID: "owner-1",
		Decider: decision.NewRandom(s.mockRoller),
	})
	s.Require().NoError(err)

	s.True(out.Completed)
	s.Equal(created.Team.ID, out.ChampionID)
	s.Equal([]string{"Sam's Starting Team crowned champions"}, out.Headlines)
	s.Equal(1, created.Player.Trophies[models.CompetitionODICup])

	_, err = svc.PlayNextFixture(s.ctx, &PlayNextFixtureInput{OwnerID: "owner-1"})
	s.ErrorIs(err, ErrTournamentComplete)

	// A finished tournament makes way for the next one
	_, err = svc.JoinTournament(s.ctx, &JoinTournamentInput{OwnerID: "owner-1", Format: models.FormatT20})
	s.NoError(err)
}

func (s *CareerServiceTestSuite) TestPlayNextFixture_InjuredHumanCannotPlay() {
	created := s.startCareer(s.service)

	_, err := s.service.JoinTournament(s.ctx, &JoinTournamentInput{OwnerID: "owner-1", Format: models.FormatT20})
	s.Require().NoError(err)

	created.Player.Injured = true
	_, err = s.service.PlayNextFixture(s.ctx, &PlayNextFixtureInput{
		OwnerID: "owner-1",
		Decider: decision.NewRandom(s.mockRoller),
	})
	s.ErrorIs(err, ErrPlayerInjured)
	s.Equal(0, created.Career.Tournament.Cursor)
}

func (s *CareerServiceTestSuite) TestPlayNextFixture_FailureKeepsCalendar() {
	mockTournament := tournamentMocks.NewMockService(s.mockCtrl)
	svc := s.build(mockTournament, 0, 0)
	created := s.startCareer(svc)

	tour := &models.Tournament{ID: "tour-1", Format: models.FormatODI, Teams: created.Career.Teams[:2]}
	tour.Normalize()

	mockTournament.EXPECT().CreateTournament(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *tournament.CreateTournamentInput) (*tournament.CreateTournamentOutput, error) {
			s.Len(in.Teams, DefaultTournamentTeams)
			s.Equal(models.FormatODI, in.Format)
			return &tournament.CreateTournamentOutput{Tournament: tour}, nil
		})
	mockTournament.EXPECT().
		GetFixtures(gomock.Any(), &tournament.GetFixturesInput{Tournament: tour}).
		Return(&tournament.GetFixturesOutput{
			Fixtures:  []models.Fixture{{HomeTeamID: created.Team.ID, AwayTeamID: tour.Teams[1].ID, Format: models.FormatODI}},
			Remaining: 1,
		}, nil)
	mockTournament.EXPECT().PlayNextFixture(gomock.Any(), gomock.Any()).Return(nil, errors.New("innings failed"))

	_, err := svc.JoinTournament(s.ctx, &JoinTournamentInput{OwnerID: "owner-1", Format: models.FormatODI})
	s.Require().NoError(err)

	_, err = svc.PlayNextFixture(s.ctx, &PlayNextFixtureInput{OwnerID: "owner-1"})
	s.Error(err)
	s.Equal(DefaultStartDate, created.Career.Date)
}

func (s *CareerServiceTestSuite) TestSaveCareer() {
	created := s.startCareer(s.service)

	s.mockRepo.EXPECT().
		SaveCareer(gomock.Any(), &careerRepo.SaveCareerInput{Career: created.Career}).
		Return(nil)
	s.NoError(s.service.SaveCareer(s.ctx, &SaveCareerInput{OwnerID: "owner-1"}))

	s.mockRepo.EXPECT().SaveCareer(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
	s.Error(s.service.SaveCareer(s.ctx, &SaveCareerInput{OwnerID: "owner-1"}))
}

func (s *CareerServiceTestSuite) TestRetireCareer() {
	created := s.startCareer(s.service)

	s.mockRepo.EXPECT().SaveCareer(gomock.Any(), gomock.Any()).Return(nil)
	out, err := s.service.RetireCareer(s.ctx, &RetireCareerInput{OwnerID: "owner-1"})
	s.Require().NoError(err)
	s.True(out.Career.Retired)

	_, err = s.service.Train(s.ctx, &TrainInput{OwnerID: "owner-1", Skill: skill.TypeBowling})
	s.ErrorIs(err, ErrCareerRetired)

	_, err = s.service.RetireCareer(s.ctx, &RetireCareerInput{OwnerID: "owner-1"})
	s.ErrorIs(err, ErrCareerRetired)

	news, err := s.service.GetNews(s.ctx, &GetNewsInput{OwnerID: "owner-1"})
	s.Require().NoError(err)
	s.Equal("Sam announces retirement", news.Items[len(news.Items)-1].Headline)

	// A retired career is replaced without asking
	s.mockRepo.EXPECT().DeleteCareer(gomock.Any(), &careerRepo.DeleteCareerInput{CareerID: created.Career.ID}).Return(nil)
	s.mockRepo.EXPECT().SaveCareer(gomock.Any(), gomock.Any()).Return(nil)
	_, err = s.service.NewCareer(s.ctx, &NewCareerInput{
		OwnerID: "owner-1", PlayerName: "Sam", Role: models.RoleBatter, Background: models.BackgroundClub,
	})
	s.NoError(err)
}

func (s *CareerServiceTestSuite) TestWithoutRole() {
	s.Len(withoutRole(squadRoles, models.RoleWicketKeeper), models.SquadSize-1)
	s.NotContains(withoutRole(squadRoles, models.RoleWicketKeeper), models.RoleWicketKeeper)
	s.Len(withoutRole(squadRoles, "umpire"), models.SquadSize-1)
}
