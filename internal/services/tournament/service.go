package tournament

import (
	"context"
	"fmt"
	"sort"

	"github.com/KirkDiggler/crease/internal/common/logger"
	"github.com/KirkDiggler/crease/internal/common/uuid"
	"github.com/KirkDiggler/crease/internal/models"
	"github.com/KirkDiggler/crease/internal/registry"
	"github.com/KirkDiggler/crease/internal/services/match"
	"github.com/sirupsen/logrus"
)

type service struct {
	match    match.Service
	uuid     uuid.UUID
	tieBreak TieBreakPolicy
	log      *logrus.Entry
}

// New creates a new tournament service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Match == nil {
		return nil, ErrNilMatchService
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	policy := cfg.TieBreak
	if policy == "" {
		policy = TieBreakNone
	}
	if !policy.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTieBreak, policy)
	}

	log := cfg.Logger
	if log == nil {
		log = logger.WithService("tournament")
	}

	return &service{
		match:    cfg.Match,
		uuid:     cfg.UUIDGenerator,
		tieBreak: policy,
		log:      log,
	}, nil
}

// GenerateFixtures pairs every team with every other exactly once. Teams are
// ordered by name, then id, so the schedule depends only on the team set.
func GenerateFixtures(teams []*models.Team, format models.Format) []models.Fixture {
	sorted := make([]*models.Team, len(teams))
	copy(sorted, teams)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Name != sorted[j].Name {
			return sorted[i].Name < sorted[j].Name
		}
		return sorted[i].ID < sorted[j].ID
	})

	fixtures := make([]models.Fixture, 0, len(sorted)*(len(sorted)-1)/2)
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			fixtures = append(fixtures, models.Fixture{
				Index:        len(fixtures),
				HomeTeamID:   sorted[i].ID,
				HomeTeamName: sorted[i].Name,
				AwayTeamID:   sorted[j].ID,
				AwayTeamName: sorted[j].Name,
				Format:       format,
			})
		}
	}
	return fixtures
}

// CreateTournament builds a tournament over the given teams
func (s *service) CreateTournament(ctx context.Context, input *CreateTournamentInput) (*CreateTournamentOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if !input.Format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if len(input.Teams) < 2 {
		return nil, ErrNotEnoughTeams
	}

	seen := make(map[string]bool, len(input.Teams))
	for _, team := range input.Teams {
		if team == nil {
			return nil, ErrNotEnoughTeams
		}
		if seen[team.ID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTeam, team.ID)
		}
		seen[team.ID] = true
	}

	name := input.Name
	if name == "" {
		name = input.Format.DisplayName() + " Series"
	}

	t := &models.Tournament{
		ID:          s.uuid.NewUUID(),
		Name:        name,
		Format:      input.Format,
		Competition: input.Format.Competition(),
		Teams:       append([]*models.Team(nil), input.Teams...),
		Standings:   make(map[string]*models.StandingsEntry, len(input.Teams)),
	}
	t.Normalize()

	fixtures := GenerateFixtures(t.Teams, t.Format)
	s.log.WithFields(logrus.Fields{
		"tournament_id": t.ID,
		"teams":         len(t.Teams),
		"fixtures":      len(fixtures),
	}).Info("Tournament created")

	return &CreateTournamentOutput{
		Tournament: t,
		Fixtures:   fixtures,
	}, nil
}

// GetFixtures lists the schedule; fixtures before the cursor are played
func (s *service) GetFixtures(ctx context.Context, input *GetFixturesInput) (*GetFixturesOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.Tournament == nil {
		return nil, ErrNilTournament
	}

	fixtures := GenerateFixtures(input.Tournament.Teams, input.Tournament.Format)
	for i := range fixtures {
		fixtures[i].Played = i < input.Tournament.Cursor
	}

	remaining := len(fixtures) - input.Tournament.Cursor
	if remaining < 0 {
		remaining = 0
	}
	return &GetFixturesOutput{
		Fixtures:  fixtures,
		Remaining: remaining,
	}, nil
}

// PlayNextFixture plays the fixture at the cursor
func (s *service) PlayNextFixture(ctx context.Context, input *PlayNextFixtureInput) (*PlayNextFixtureOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	t := input.Tournament
	if t == nil {
		return nil, ErrNilTournament
	}
	t.Normalize()

	fixtures := GenerateFixtures(t.Teams, t.Format)
	if t.Completed || t.Cursor >= len(fixtures) {
		return nil, ErrTournamentComplete
	}
	fixture := fixtures[t.Cursor]

	home, err := s.resolve(input.Registry, t, fixture.HomeTeamID)
	if err != nil {
		return nil, err
	}
	away, err := s.resolve(input.Registry, t, fixture.AwayTeamID)
	if err != nil {
		return nil, err
	}

	played, err := s.match.Play(ctx, &match.PlayInput{
		Team1:         home,
		Team2:         away,
		Format:        t.Format,
		HumanPlayerID: input.HumanPlayerID,
		Decider:       input.Decider,
		OnBall:        input.OnBall,
		OnStage:       input.OnStage,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to play fixture %d: %w", fixture.Index, err)
	}

	record(t, home, away, played.Result)
	t.Cursor++
	fixture.Played = true

	out := &PlayNextFixtureOutput{
		Fixture: fixture,
		Result:  played.Result,
	}

	if t.Cursor == len(fixtures) {
		t.Completed = true
		out.Completed = true
		// The fixture is already on the ledger, so a champion that cannot
		// be resolved leaves the trophy unawarded
		if err := s.crown(input.Registry, t); err != nil {
			s.log.WithError(err).WithField("tournament_id", t.ID).Warn("Could not crown champion")
		}
		out.ChampionID = t.ChampionID
	}

	s.log.WithFields(logrus.Fields{
		"tournament_id": t.ID,
		"fixture":       fixture.Index,
		"winner":        played.Result.WinnerID,
		"completed":     t.Completed,
	}).Info("Fixture played")

	return out, nil
}

// GetStandings returns the ledger in table order
func (s *service) GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.Tournament == nil {
		return nil, ErrNilTournament
	}
	input.Tournament.Normalize()

	entries, tied := s.table(input.Tournament)
	return &GetStandingsOutput{
		Entries: entries,
		Tied:    tied,
	}, nil
}

// resolve looks a team up in the registry, falling back to the tournament's
// own reference when the registry does not hold it
func (s *service) resolve(reg *registry.Registry, t *models.Tournament, teamID string) (*models.Team, error) {
	if reg != nil {
		team, err := reg.Get(teamID)
		if err == nil {
			return team, nil
		}
		s.log.WithFields(logrus.Fields{
			"tournament_id": t.ID,
			"team_id":       teamID,
		}).Warn("Team missing from registry, using tournament copy")
	}

	for _, team := range t.Teams {
		if team.ID == teamID {
			return team, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrTeamNotInTournament, teamID)
}

// crown credits the trophy to every member of a unique champion's squad
func (s *service) crown(reg *registry.Registry, t *models.Tournament) error {
	entries, tied := s.table(t)
	if tied || len(entries) == 0 {
		s.log.WithField("tournament_id", t.ID).Info("Tournament ended level on top, no trophy awarded")
		return nil
	}

	champion, err := s.resolve(reg, t, entries[0].TeamID)
	if err != nil {
		return err
	}
	t.ChampionID = champion.ID
	for _, p := range champion.Players {
		if p.Trophies == nil {
			p.Trophies = make(map[models.CompetitionType]int)
		}
		p.Trophies[t.Competition]++
	}
	return nil
}

// table orders the ledger by points then the tie-break policy, with name
// and id as the final stable order
func (s *service) table(t *models.Tournament) ([]*models.StandingsEntry, bool) {
	entries := make([]*models.StandingsEntry, 0, len(t.Standings))
	for _, e := range t.Standings {
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if c := s.compare(a, b); c != 0 {
			return c > 0
		}
		if a.TeamName != b.TeamName {
			return a.TeamName < b.TeamName
		}
		return a.TeamID < b.TeamID
	})

	tied := len(entries) > 1 && entries[0].Points == entries[1].Points && s.compare(entries[0], entries[1]) == 0
	return entries, tied
}

// compare returns a positive value when a ranks above b under the policy
func (s *service) compare(a, b *models.StandingsEntry) int {
	switch s.tieBreak {
	case TieBreakWins:
		return a.Won - b.Won
	case TieBreakNetRunRate:
		an, bn := a.NetRunRate(), b.NetRunRate()
		switch {
		case an > bn:
			return 1
		case an < bn:
			return -1
		}
	}
	return 0
}
