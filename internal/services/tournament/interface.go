package tournament

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/crease/internal/services/tournament Service

import "context"

// Service defines the interface for running round-robin tournaments
type Service interface {
	// CreateTournament builds a tournament over the given teams with a zeroed ledger
	CreateTournament(ctx context.Context, input *CreateTournamentInput) (*CreateTournamentOutput, error)

	// GetFixtures lists the schedule with played flags
	GetFixtures(ctx context.Context, input *GetFixturesInput) (*GetFixturesOutput, error)

	// PlayNextFixture plays the fixture at the cursor and updates the ledger
	PlayNextFixture(ctx context.Context, input *PlayNextFixtureInput) (*PlayNextFixtureOutput, error)

	// GetStandings returns the ledger ordered by points and the tie-break policy
	GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error)
}
