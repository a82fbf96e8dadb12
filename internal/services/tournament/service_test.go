package tournament

import (
	"context"
	"fmt"
	"testing"

	"github.com/KirkDiggler/crease/internal/common/logger"
	uuidMocks "github.com/KirkDiggler/crease/internal/common/uuid/mocks"
	"github.com/KirkDiggler/crease/internal/models"
	"github.com/KirkDiggler/crease/internal/registry"
	"github.com/KirkDiggler/crease/internal/services/match"
	matchMocks "github.com/KirkDiggler/crease/internal/services/match/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TournamentServiceTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockMatch *matchMocks.MockService
	mockUUID  *uuidMocks.MockUUID
	service   *service
	ctx       context.Context
	teams     []*models.Team
	registry  *registry.Registry
}

func (s *TournamentServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockMatch = matchMocks.NewMockService(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()

	s.service = s.newService(TieBreakNone)

	// Registered out of name order on purpose
	s.teams = []*models.Team{
		newTestTeam("t-3", "Coastal Kings"),
		newTestTeam("t-1", "Aurora Hawks"),
		newTestTeam("t-2", "Banyan Bulls"),
	}
	reg, err := registry.New(s.teams...)
	s.Require().NoError(err)
	s.registry = reg

	s.mockUUID.EXPECT().NewUUID().Return("tournament-1").AnyTimes()
}

func (s *TournamentServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTournamentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TournamentServiceTestSuite))
}

func (s *TournamentServiceTestSuite) newService(policy TieBreakPolicy) *service {
	svc, err := New(&Config{
		Match:         s.mockMatch,
		UUIDGenerator: s.mockUUID,
		TieBreak:      policy,
		Logger:        logger.Discard(),
	})
	s.Require().NoError(err)
	return svc
}

func newTestTeam(id, name string) *models.Team {
	team := &models.Team{ID: id, Name: name}
	for i := 0; i < 3; i++ {
		p := &models.Player{ID: fmt.Sprintf("%s-p%d", id, i), Name: fmt.Sprintf("%s %d", name, i)}
		p.Normalize()
		team.Players = append(team.Players, p)
	}
	return team
}

func (s *TournamentServiceTestSuite) create() *models.Tournament {
	out, err := s.service.CreateTournament(s.ctx, &CreateTournamentInput{
		Name:   "Test League",
		Format: models.FormatT20,
		Teams:  s.teams,
	})
	s.Require().NoError(err)
	return out.Tournament
}

// expectResult makes the next match won by winnerID, or drawn when empty,
// with the home side batting first
func (s *TournamentServiceTestSuite) expectResult(winnerID string, homeRuns, awayRuns int) {
	s.mockMatch.EXPECT().Play(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *match.PlayInput) (*match.PlayOutput, error) {
			result := &models.MatchResult{
				Team1ID: in.Team1.ID,
				Team2ID: in.Team2.ID,
				Format:  in.Format,
				Innings: []*models.InningsSummary{
					{BattingTeamID: in.Team1.ID, BowlingTeamID: in.Team2.ID, Runs: homeRuns, Balls: 120},
					{BattingTeamID: in.Team2.ID, BowlingTeamID: in.Team1.ID, Runs: awayRuns, Balls: 120},
				},
			}
			switch winnerID {
			case "":
				result.Drawn = true
				result.DecidedBy = models.DecidedByDraw
			case in.Team1.ID:
				result.WinnerID, result.LoserID = in.Team1.ID, in.Team2.ID
				result.DecidedBy = models.DecidedByRuns
			default:
				result.WinnerID, result.LoserID = in.Team2.ID, in.Team1.ID
				result.DecidedBy = models.DecidedByRuns
			}
			return &match.PlayOutput{Result: result, Status: models.MatchStatusResult}, nil
		})
}

func (s *TournamentServiceTestSuite) TestNew() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilMatchService)

	_, err = New(&Config{Match: s.mockMatch})
	s.ErrorIs(err, ErrNilUUIDGenerator)

	_, err = New(&Config{Match: s.mockMatch, UUIDGenerator: s.mockUUID, TieBreak: "coin_toss"})
	s.ErrorIs(err, ErrInvalidTieBreak)
}

func (s *TournamentServiceTestSuite) TestGenerateFixtures() {
	for k := 2; k <= 8; k++ {
		teams := make([]*models.Team, 0, k)
		for i := k; i > 0; i-- {
			teams = append(teams, newTestTeam(fmt.Sprintf("id-%d", i), fmt.Sprintf("Team %02d", i)))
		}

		fixtures := GenerateFixtures(teams, models.FormatODI)
		s.Len(fixtures, k*(k-1)/2)

		pairs := make(map[string]bool)
		for i, f := range fixtures {
			s.Equal(i, f.Index)
			s.Less(f.HomeTeamName, f.AwayTeamName)
			key := f.HomeTeamID + "|" + f.AwayTeamID
			s.False(pairs[key], "pair %s repeated", key)
			pairs[key] = true
		}

		// Input order does not matter
		reversed := make([]*models.Team, len(teams))
		for i, t := range teams {
			reversed[len(teams)-1-i] = t
		}
		s.Equal(fixtures, GenerateFixtures(reversed, models.FormatODI))
	}
}

func (s *TournamentServiceTestSuite) TestGenerateFixtures_NameTiesOrderedByID() {
	teams := []*models.Team{
		{ID: "b", Name: "Same"},
		{ID: "a", Name: "Same"},
	}
	fixtures := GenerateFixtures(teams, models.FormatT20)
	s.Require().Len(fixtures, 1)
	s.Equal("a", fixtures[0].HomeTeamID)
	s.Equal("b", fixtures[0].AwayTeamID)
}

func (s *TournamentServiceTestSuite) TestCreateTournament() {
	t := s.create()

	s.Equal("tournament-1", t.ID)
	s.Equal(models.CompetitionT20League, t.Competition)
	s.Equal(0, t.Cursor)
	s.Len(t.Standings, 3)
	for _, team := range s.teams {
		e := t.Standings[team.ID]
		s.Require().NotNil(e)
		s.Equal(team.Name, e.TeamName)
		s.Zero(e.Points)
	}
}

func (s *TournamentServiceTestSuite) TestCreateTournament_Validation() {
	_, err := s.service.CreateTournament(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)

	_, err = s.service.CreateTournament(s.ctx, &CreateTournamentInput{Format: models.FormatT20, Teams: s.teams[:1]})
	s.ErrorIs(err, ErrNotEnoughTeams)

	_, err = s.service.CreateTournament(s.ctx, &CreateTournamentInput{Format: "fifty50", Teams: s.teams})
	s.ErrorIs(err, ErrInvalidFormat)

	_, err = s.service.CreateTournament(s.ctx, &CreateTournamentInput{
		Format: models.FormatT20,
		Teams:  []*models.Team{s.teams[0], s.teams[0]},
	})
	s.ErrorIs(err, ErrDuplicateTeam)
}

func (s *TournamentServiceTestSuite) TestPlayNextFixture_UpdatesLedgerAndCursor() {
	t := s.create()
	s.expectResult("t-1", 160, 140)

	out, err := s.service.PlayNextFixture(s.ctx, &PlayNextFixtureInput{Tournament: t, Registry: s.registry})
	s.Require().NoError(err)

	// Aurora Hawks v Banyan Bulls comes first by name
	s.Equal("t-1", out.Fixture.HomeTeamID)
	s.Equal("t-2", out.Fixture.AwayTeamID)
	s.True(out.Fixture.Played)
	s.False(out.Completed)
	s.Equal(1, t.Cursor)

	home, away := t.Standings["t-1"], t.Standings["t-2"]
	s.Equal(1, home.Played)
	s.Equal(1, home.Won)
	s.Equal(2, home.Points)
	s.Equal(160, home.RunsFor)
	s.Equal(140, home.RunsAgainst)
	s.Equal(1, away.Played)
	s.Equal(1, away.Lost)
	s.Equal(0, away.Points)
	s.Equal(0, t.Standings["t-3"].Played)

	fixtures, err := s.service.GetFixtures(s.ctx, &GetFixturesInput{Tournament: t})
	s.Require().NoError(err)
	s.Len(fixtures.Fixtures, 3)
	s.True(fixtures.Fixtures[0].Played)
	s.False(fixtures.Fixtures[1].Played)
	s.Equal(2, fixtures.Remaining)
}

func (s *TournamentServiceTestSuite) TestPlayNextFixture_CompletesAndCrowns() {
	t := s.create()
	s.expectResult("t-1", 160, 140) // Aurora v Banyan
	s.expectResult("t-1", 170, 150) // Aurora v Coastal
	s.expectResult("", 150, 150)    // Banyan v Coastal, drawn

	for i := 0; i < 3; i++ {
		_, err := s.service.PlayNextFixture(s.ctx, &PlayNextFixtureInput{Tournament: t, Registry: s.registry})
		s.Require().NoError(err)
	}

	s.True(t.Completed)
	s.Equal("t-1", t.ChampionID)
	for _, p := range s.teams[1].Players {
		s.Equal(1, p.Trophies[models.CompetitionT20League])
	}
	for _, p := range s.teams[0].Players {
		s.Zero(p.Trophies[models.CompetitionT20League])
	}
	s.Equal(1, t.Standings["t-2"].Points)
	s.Equal(1, t.Standings["t-3"].Points)

	_, err := s.service.PlayNextFixture(s.ctx, &PlayNextFixtureInput{Tournament: t, Registry: s.registry})
	s.ErrorIs(err, ErrTournamentComplete)
}

func (s *TournamentServiceTestSuite) TestPlayNextFixture_UnknownLeaderStillCompletes() {
	t := s.create()
	t.Standings["t-ghost"] = &models.StandingsEntry{TeamID: "t-ghost", TeamName: "Ghost XI", Points: 10}
	s.expectResult("t-1", 160, 140)
	s.expectResult("t-1", 170, 150)
	s.expectResult("t-2", 150, 120)

	var last *PlayNextFixtureOutput
	for i := 0; i < 3; i++ {
		out, err := s.service.PlayNextFixture(s.ctx, &PlayNextFixtureInput{Tournament: t, Registry: s.registry})
		s.Require().NoError(err)
		last = out
	}

	s.True(last.Completed)
	s.Equal(2, last.Fixture.Index)
	s.Empty(last.ChampionID)
	s.Empty(t.ChampionID)
	s.True(t.Completed)
	s.Equal(3, t.Cursor)
	s.Equal(2, t.Standings["t-2"].Points)
	for _, team := range s.teams {
		for _, p := range team.Players {
			s.Zero(p.TotalTrophies())
		}
	}
}

func (s *TournamentServiceTestSuite) TestPlayNextFixture_TiedTopAwardsNothing() {
	t := s.create()
	s.expectResult("t-1", 160, 140) // Aurora beats Banyan
	s.expectResult("t-3", 120, 121) // Coastal beats Aurora
	s.expectResult("t-2", 200, 100) // Banyan beats Coastal

	var last *PlayNextFixtureOutput
	for i := 0; i < 3; i++ {
		out, err := s.service.PlayNextFixture(s.ctx, &PlayNextFixtureInput{Tournament: t, Registry: s.registry})
		s.Require().NoError(err)
		last = out
	}

	s.True(last.Completed)
	s.Empty(last.ChampionID)
	s.Empty(t.ChampionID)
	for _, team := range s.teams {
		for _, p := range team.Players {
			s.Zero(p.TotalTrophies())
		}
	}

	standings, err := s.service.GetStandings(s.ctx, &GetStandingsInput{Tournament: t})
	s.Require().NoError(err)
	s.True(standings.Tied)
	s.Equal("t-1", standings.Entries[0].TeamID)
	s.Equal("t-2", standings.Entries[1].TeamID)
	s.Equal("t-3", standings.Entries[2].TeamID)
}

func (s *TournamentServiceTestSuite) TestGetStandings_NetRunRatePolicy() {
	s.service = s.newService(TieBreakNetRunRate)
	t := s.create()
	s.expectResult("t-1", 160, 140) // Aurora beats Banyan by 20
	s.expectResult("t-3", 120, 121) // Coastal beats Aurora by 1
	s.expectResult("t-2", 200, 100) // Banyan beats Coastal by 100

	for i := 0; i < 3; i++ {
		_, err := s.service.PlayNextFixture(s.ctx, &PlayNextFixtureInput{Tournament: t, Registry: s.registry})
		s.Require().NoError(err)
	}

	standings, err := s.service.GetStandings(s.ctx, &GetStandingsInput{Tournament: t})
	s.Require().NoError(err)
	s.False(standings.Tied)
	s.Equal("t-2", standings.Entries[0].TeamID)
	s.Equal("t-2", t.ChampionID)
	for _, p := range s.teams[2].Players {
		s.Equal(1, p.Trophies[models.CompetitionT20League])
	}
}

func (s *TournamentServiceTestSuite) TestGetStandings_WinsPolicy() {
	s.service = s.newService(TieBreakWins)
	t := s.create()
	t.Standings["t-1"].Points, t.Standings["t-1"].Won, t.Standings["t-1"].Drawn = 4, 1, 2
	t.Standings["t-2"].Points, t.Standings["t-2"].Won = 4, 2
	t.Standings["t-3"].Points = 2

	standings, err := s.service.GetStandings(s.ctx, &GetStandingsInput{Tournament: t})
	s.Require().NoError(err)
	s.False(standings.Tied)
	s.Equal("t-2", standings.Entries[0].TeamID)
	s.Equal("t-1", standings.Entries[1].TeamID)
}

func (s *TournamentServiceTestSuite) TestPlayNextFixture_FallsBackToEmbeddedTeam() {
	t := s.create()
	empty, err := registry.New()
	s.Require().NoError(err)
	s.expectResult("t-2", 100, 150)

	out, err := s.service.PlayNextFixture(s.ctx, &PlayNextFixtureInput{Tournament: t, Registry: empty})
	s.Require().NoError(err)
	s.Equal("t-2", out.Result.WinnerID)
	s.Equal(2, t.Standings["t-2"].Points)
}

func (s *TournamentServiceTestSuite) TestPlayNextFixture_MatchErrorKeepsCursor() {
	t := s.create()
	s.mockMatch.EXPECT().Play(gomock.Any(), gomock.Any()).Return(nil, match.ErrTooManyInvalidChoices)

	_, err := s.service.PlayNextFixture(s.ctx, &PlayNextFixtureInput{Tournament: t, Registry: s.registry})
	s.ErrorIs(err, match.ErrTooManyInvalidChoices)
	s.Equal(0, t.Cursor)
	s.Equal(0, t.Standings["t-1"].Played)
}
