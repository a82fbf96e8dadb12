package innings

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/crease/internal/services/innings Service

import "context"

// Service defines the interface for simulating one side's innings
type Service interface {
	// Simulate plays an innings ball by ball until it completes
	Simulate(ctx context.Context, input *SimulateInput) (*SimulateOutput, error)
}
