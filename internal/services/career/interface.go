package career

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/crease/internal/services/career Service

import "context"

// Service defines the interface for a player's career in the simulated world
type Service interface {
	// NewCareer creates the human player, their team and the AI world
	NewCareer(ctx context.Context, input *NewCareerInput) (*NewCareerOutput, error)

	// GetCareer returns the owner's active career, loading it from storage if needed
	GetCareer(ctx context.Context, input *GetCareerInput) (*GetCareerOutput, error)

	// Train runs a training session and advances the calendar by a day
	Train(ctx context.Context, input *TrainInput) (*TrainOutput, error)

	// Rest recovers fitness and advances the calendar by three days
	Rest(ctx context.Context, input *RestInput) (*RestOutput, error)

	// AdvanceTime moves the calendar forward without any activity
	AdvanceTime(ctx context.Context, input *AdvanceTimeInput) (*AdvanceTimeOutput, error)

	// JoinTournament enters the user's team in a new round-robin tournament
	JoinTournament(ctx context.Context, input *JoinTournamentInput) (*JoinTournamentOutput, error)

	// GetFixtures lists the current tournament's schedule
	GetFixtures(ctx context.Context, input *GetFixturesInput) (*GetFixturesOutput, error)

	// GetStandings returns the current tournament's table
	GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error)

	// PlayNextFixture plays the next tournament fixture
	PlayNextFixture(ctx context.Context, input *PlayNextFixtureInput) (*PlayNextFixtureOutput, error)

	// GetNews returns the most recent headlines
	GetNews(ctx context.Context, input *GetNewsInput) (*GetNewsOutput, error)

	// SaveCareer persists the owner's career
	SaveCareer(ctx context.Context, input *SaveCareerInput) error

	// RetireCareer ends the career and persists it
	RetireCareer(ctx context.Context, input *RetireCareerInput) (*RetireCareerOutput, error)
}
