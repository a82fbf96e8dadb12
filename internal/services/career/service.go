package career

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/KirkDiggler/crease/internal/common/clock"
	"github.com/KirkDiggler/crease/internal/common/logger"
	"github.com/KirkDiggler/crease/internal/common/uuid"
	"github.com/KirkDiggler/crease/internal/dice"
	"github.com/KirkDiggler/crease/internal/models"
	"github.com/KirkDiggler/crease/internal/registry"
	careerRepo "github.com/KirkDiggler/crease/internal/repositories/career"
	"github.com/KirkDiggler/crease/internal/services/messaging"
	"github.com/KirkDiggler/crease/internal/services/skill"
	"github.com/KirkDiggler/crease/internal/services/tournament"
	"github.com/sirupsen/logrus"
)

// session is an owner's career held in memory between commands
type session struct {
	mu     sync.Mutex
	career *models.Career
}

type service struct {
	repo       careerRepo.Repository
	tournament tournament.Service
	skill      skill.Service
	messaging  messaging.Service
	roller     dice.Roller
	clock      clock.Clock
	uuid       uuid.UUID
	names      func() string

	worldTeams      int
	tournamentTeams int
	startDate       time.Time
	log             *logrus.Entry

	mu       sync.Mutex
	sessions map[string]*session
}

// New creates a new career service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}
	if cfg.Tournament == nil {
		return nil, ErrNilTournamentService
	}
	if cfg.Skill == nil {
		return nil, ErrNilSkillService
	}
	if cfg.Messaging == nil {
		return nil, ErrNilMessagingService
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilRoller
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	worldTeams := cfg.WorldTeams
	if worldTeams == 0 {
		worldTeams = DefaultWorldTeams
	}
	tournamentTeams := cfg.TournamentTeams
	if tournamentTeams == 0 {
		tournamentTeams = DefaultTournamentTeams
	}
	// The user's team fills one tournament slot
	if tournamentTeams < 2 || worldTeams < tournamentTeams-1 {
		return nil, ErrInvalidTeamCounts
	}

	startDate := cfg.StartDate
	if startDate.IsZero() {
		startDate = DefaultStartDate
	}

	log := cfg.Logger
	if log == nil {
		log = logger.WithService("career")
	}

	return &service{
		repo:            cfg.Repository,
		tournament:      cfg.Tournament,
		skill:           cfg.Skill,
		messaging:       cfg.Messaging,
		roller:          cfg.DiceRoller,
		clock:           cfg.Clock,
		uuid:            cfg.UUIDGenerator,
		names:           generateName,
		worldTeams:      worldTeams,
		tournamentTeams: tournamentTeams,
		startDate:       startDate,
		log:             log,
		sessions:        make(map[string]*session),
	}, nil
}

// lock returns the owner's session with its mutex held
func (s *service) lock(ownerID string) *session {
	s.mu.Lock()
	sess, ok := s.sessions[ownerID]
	if !ok {
		sess = &session{}
		s.sessions[ownerID] = sess
	}
	s.mu.Unlock()

	sess.mu.Lock()
	return sess
}

// load fills the session from storage if it holds no career; callers hold the lock
func (s *service) load(ctx context.Context, sess *session, ownerID string) error {
	if sess.career != nil {
		return nil
	}

	c, err := s.repo.GetCareerByOwner(ctx, &careerRepo.GetCareerByOwnerInput{OwnerID: ownerID})
	switch {
	case err == nil:
		sess.career = c
		return nil
	case errors.Is(err, careerRepo.ErrCareerNotFound):
		return ErrNoCareer
	case errors.Is(err, careerRepo.ErrCorruptCareer), errors.Is(err, careerRepo.ErrHumanPlayerMissing):
		s.log.WithError(err).WithField("owner_id", ownerID).Warn("Saved career is unreadable")
		return fmt.Errorf("%w: %v", ErrCorruptSave, err)
	default:
		return fmt.Errorf("failed to load career: %w", err)
	}
}

// acquire returns the owner's loaded session with its mutex held
func (s *service) acquire(ctx context.Context, ownerID string) (*session, error) {
	if ownerID == "" {
		return nil, ErrMissingOwner
	}
	sess := s.lock(ownerID)
	if err := s.load(ctx, sess, ownerID); err != nil {
		sess.mu.Unlock()
		return nil, err
	}
	return sess, nil
}

// acquireActive is acquire for operations a retired career cannot perform
func (s *service) acquireActive(ctx context.Context, ownerID string) (*session, error) {
	sess, err := s.acquire(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if sess.career.Retired {
		sess.mu.Unlock()
		return nil, ErrCareerRetired
	}
	return sess, nil
}

func human(c *models.Career) (*models.Player, *models.Team, error) {
	team, ok := c.FindTeam(c.UserTeamID)
	if !ok {
		return nil, nil, ErrCorruptSave
	}
	p, ok := team.FindPlayer(c.HumanPlayerID)
	if !ok {
		return nil, nil, ErrCorruptSave
	}
	return p, team, nil
}

// NewCareer creates the human player, their team and the AI world
func (s *service) NewCareer(ctx context.Context, input *NewCareerInput) (*NewCareerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.OwnerID == "" {
		return nil, ErrMissingOwner
	}
	if input.PlayerName == "" {
		return nil, ErrMissingName
	}
	if _, ok := roleBias[input.Role]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRole, input.Role)
	}
	if _, ok := backgroundLevels[input.Background]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidBackground, input.Background)
	}

	sess := s.lock(input.OwnerID)
	defer sess.mu.Unlock()

	err := s.load(ctx, sess, input.OwnerID)
	switch {
	case err == nil:
		old := sess.career
		if !old.Retired && !input.Replace {
			return nil, ErrCareerExists
		}
		err := s.repo.DeleteCareer(ctx, &careerRepo.DeleteCareerInput{CareerID: old.ID})
		if err != nil && !errors.Is(err, careerRepo.ErrCareerNotFound) {
			return nil, fmt.Errorf("failed to delete previous career: %w", err)
		}
		sess.career = nil
	case errors.Is(err, ErrNoCareer), errors.Is(err, ErrCorruptSave):
		// nothing usable to keep
	default:
		return nil, err
	}

	c, p, team := s.newWorld(input)
	if err := s.repo.SaveCareer(ctx, &careerRepo.SaveCareerInput{Career: c}); err != nil {
		return nil, fmt.Errorf("failed to save career: %w", err)
	}
	sess.career = c

	s.log.WithFields(logrus.Fields{
		"career_id":  c.ID,
		"owner_id":   c.OwnerID,
		"role":       p.Role,
		"background": p.Background,
		"team_level": team.Level,
	}).Info("Career created")

	return &NewCareerOutput{
		Career: c,
		Player: p,
		Team:   team,
	}, nil
}

// GetCareer returns the owner's career
func (s *service) GetCareer(ctx context.Context, input *GetCareerInput) (*GetCareerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	sess, err := s.acquire(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	p, team, err := human(sess.career)
	if err != nil {
		return nil, err
	}
	return &GetCareerOutput{
		Career: sess.career,
		Player: p,
		Team:   team,
	}, nil
}

// Train runs a training session for the human player
func (s *service) Train(ctx context.Context, input *TrainInput) (*TrainOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	sess, err := s.acquireActive(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()
	c := sess.career

	p, _, err := human(c)
	if err != nil {
		return nil, err
	}

	trained, err := s.skill.Train(ctx, &skill.TrainInput{
		Player:    p,
		Skill:     input.Skill,
		Intensity: input.Intensity,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to train: %w", err)
	}

	headlines, err := s.advance(ctx, c, trainDays)
	if err != nil {
		return nil, err
	}

	if trained.Injured {
		s.log.WithFields(logrus.Fields{
			"career_id": c.ID,
			"skill":     input.Skill,
		}).Info("Player injured in training")
	}

	return &TrainOutput{
		Player:        p,
		Improvement:   trained.Improvement,
		FitnessLost:   trained.FitnessLost,
		FatigueGained: trained.FatigueGained,
		Injured:       trained.Injured,
		Date:          c.Date,
		Headlines:     headlines,
		Fatigue:       p.Fatigue,
	}, nil
}

// Rest recovers the human player's fitness
func (s *service) Rest(ctx context.Context, input *RestInput) (*RestOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	sess, err := s.acquireActive(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()
	c := sess.career

	p, _, err := human(c)
	if err != nil {
		return nil, err
	}

	rested, err := s.skill.Rest(ctx, &skill.RestInput{Player: p})
	if err != nil {
		return nil, fmt.Errorf("failed to rest: %w", err)
	}

	headlines, err := s.advance(ctx, c, restDays)
	if err != nil {
		return nil, err
	}

	return &RestOutput{
		Player:        p,
		FitnessGained: rested.FitnessGained,
		FatigueShed:   rested.FatigueShed,
		Recovered:     rested.Recovered,
		Date:          c.Date,
		Headlines:     headlines,
		Fitness:       p.Fitness,
		Fatigue:       p.Fatigue,
	}, nil
}

// AdvanceTime moves the calendar forward
func (s *service) AdvanceTime(ctx context.Context, input *AdvanceTimeInput) (*AdvanceTimeOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	sess, err := s.acquireActive(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	days := input.Days
	if days <= 0 {
		days = DefaultAdvanceDays
	}

	headlines, err := s.advance(ctx, sess.career, days)
	if err != nil {
		return nil, err
	}
	return &AdvanceTimeOutput{
		Date:      sess.career.Date,
		Headlines: headlines,
	}, nil
}

// JoinTournament enters the user's team and a random draw of AI teams
func (s *service) JoinTournament(ctx context.Context, input *JoinTournamentInput) (*JoinTournamentOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if !input.Format.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, input.Format)
	}
	sess, err := s.acquireActive(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()
	c := sess.career

	if c.Tournament != nil && !c.Tournament.Completed {
		return nil, ErrTournamentInProgress
	}

	_, user, err := human(c)
	if err != nil {
		return nil, err
	}

	rivals := make([]*models.Team, 0, len(c.Teams)-1)
	for _, team := range c.Teams {
		if team.ID != user.ID {
			rivals = append(rivals, team)
		}
	}
	picks := min(s.tournamentTeams-1, len(rivals))
	for i := 0; i < picks; i++ {
		j := i + s.roller.Intn(len(rivals)-i)
		rivals[i], rivals[j] = rivals[j], rivals[i]
	}

	created, err := s.tournament.CreateTournament(ctx, &tournament.CreateTournamentInput{
		Format: input.Format,
		Teams:  append([]*models.Team{user}, rivals[:picks]...),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tournament: %w", err)
	}

	c.Tournament = created.Tournament
	addNews(c, fmt.Sprintf("%s enter the %s", user.Name, created.Tournament.Name))

	s.log.WithFields(logrus.Fields{
		"career_id":     c.ID,
		"tournament_id": created.Tournament.ID,
		"format":        input.Format,
	}).Info("Joined tournament")

	return &JoinTournamentOutput{
		Tournament: created.Tournament,
		Fixtures:   created.Fixtures,
	}, nil
}

// GetFixtures lists the current tournament's schedule
func (s *service) GetFixtures(ctx context.Context, input *GetFixturesInput) (*GetFixturesOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	sess, err := s.acquire(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	t := sess.career.Tournament
	if t == nil {
		return nil, ErrNoTournament
	}

	out, err := s.tournament.GetFixtures(ctx, &tournament.GetFixturesInput{Tournament: t})
	if err != nil {
		return nil, fmt.Errorf("failed to get fixtures: %w", err)
	}
	return &GetFixturesOutput{
		Tournament: t,
		Fixtures:   out.Fixtures,
		Remaining:  out.Remaining,
	}, nil
}

// GetStandings returns the current tournament's table
func (s *service) GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	sess, err := s.acquire(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	t := sess.career.Tournament
	if t == nil {
		return nil, ErrNoTournament
	}

	out, err := s.tournament.GetStandings(ctx, &tournament.GetStandingsInput{Tournament: t})
	if err != nil {
		return nil, fmt.Errorf("failed to get standings: %w", err)
	}
	return &GetStandingsOutput{
		Tournament: t,
		Entries:    out.Entries,
		Tied:       out.Tied,
	}, nil
}

// PlayNextFixture plays the next fixture of the current tournament
func (s *service) PlayNextFixture(ctx context.Context, input *PlayNextFixtureInput) (*PlayNextFixtureOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	sess, err := s.acquireActive(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()
	c := sess.career

	t := c.Tournament
	if t == nil {
		return nil, ErrNoTournament
	}
	if t.Completed {
		return nil, ErrTournamentComplete
	}

	schedule, err := s.tournament.GetFixtures(ctx, &tournament.GetFixturesInput{Tournament: t})
	if err != nil {
		return nil, fmt.Errorf("failed to get fixtures: %w", err)
	}
	if t.Cursor >= len(schedule.Fixtures) {
		return nil, ErrTournamentComplete
	}
	next := schedule.Fixtures[t.Cursor]
	involved := next.HomeTeamID == c.UserTeamID || next.AwayTeamID == c.UserTeamID

	p, _, err := human(c)
	if err != nil {
		return nil, err
	}
	if involved && p.Injured {
		return nil, ErrPlayerInjured
	}

	reg, err := registry.New(c.Teams...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSave, err)
	}

	played, err := s.tournament.PlayNextFixture(ctx, &tournament.PlayNextFixtureInput{
		Tournament:    t,
		Registry:      reg,
		HumanPlayerID: c.HumanPlayerID,
		Decider:       input.Decider,
		OnBall:        input.OnBall,
		OnStage:       input.OnStage,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to play fixture: %w", err)
	}

	headlines, err := s.advance(ctx, c, t.Format.Days())
	if err != nil {
		return nil, err
	}

	out := &PlayNextFixtureOutput{
		Fixture:      played.Fixture,
		Result:       played.Result,
		UserInvolved: involved,
		Completed:    played.Completed,
		ChampionID:   played.ChampionID,
		TeamNames:    c.TeamNames(),
		UserTeamID:   c.UserTeamID,
	}

	if involved {
		out.Figures = figuresOf(played.Result, c.HumanPlayerID)
		if out.Figures != nil {
			p.Fatigue = models.Clamp(p.Fatigue+t.Format.Days()*matchFatiguePerDay, 0, models.MaxFatigue)

			news, err := s.performanceNews(ctx, c, p, t.Format, out.Figures)
			if err != nil {
				return nil, err
			}
			headlines = append(headlines, news...)
		}
	}

	if played.Completed && played.ChampionID != "" {
		if champion, ok := c.FindTeam(played.ChampionID); ok {
			headline, err := s.messaging.GetHeadline(ctx, &messaging.GetHeadlineInput{
				Kind:     messaging.HeadlineChampion,
				TeamName: champion.Name,
				Format:   t.Format,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to get headline: %w", err)
			}
			addNews(c, headline.Headline)
			headlines = append(headlines, headline.Headline)
		}
	}

	c.UpdatedAt = s.clock.Now()
	out.Date = c.Date
	out.Headlines = headlines

	s.log.WithFields(logrus.Fields{
		"career_id": c.ID,
		"fixture":   played.Fixture.Index,
		"involved":  involved,
		"completed": played.Completed,
	}).Info("Career fixture played")

	return out, nil
}

// GetNews returns the latest headlines
func (s *service) GetNews(ctx context.Context, input *GetNewsInput) (*GetNewsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	sess, err := s.acquire(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultNewsItems
	}
	return &GetNewsOutput{
		Items: append([]models.NewsItem(nil), sess.career.RecentNews(limit)...),
	}, nil
}

// SaveCareer persists the owner's career
func (s *service) SaveCareer(ctx context.Context, input *SaveCareerInput) error {
	if input == nil {
		return ErrNilInput
	}
	sess, err := s.acquire(ctx, input.OwnerID)
	if err != nil {
		return err
	}
	defer sess.mu.Unlock()

	return s.save(ctx, sess.career)
}

// RetireCareer ends the career; it stays readable but can no longer progress
func (s *service) RetireCareer(ctx context.Context, input *RetireCareerInput) (*RetireCareerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	sess, err := s.acquireActive(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()
	c := sess.career

	p, _, err := human(c)
	if err != nil {
		return nil, err
	}

	c.Retired = true
	addNews(c, fmt.Sprintf("%s announces retirement", p.Name))
	if err := s.save(ctx, c); err != nil {
		return nil, err
	}

	s.log.WithField("career_id", c.ID).Info("Career retired")

	return &RetireCareerOutput{
		Career: c,
		Player: p,
	}, nil
}

func (s *service) save(ctx context.Context, c *models.Career) error {
	c.UpdatedAt = s.clock.Now()
	if err := s.repo.SaveCareer(ctx, &careerRepo.SaveCareerInput{Career: c}); err != nil {
		return fmt.Errorf("failed to save career: %w", err)
	}
	return nil
}
