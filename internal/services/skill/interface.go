package skill

import "context"

// Service defines the interface for player development
type Service interface {
	// Train improves a chosen skill at the cost of fitness
	Train(ctx context.Context, input *TrainInput) (*TrainOutput, error)

	// Rest recovers fitness and possibly an injury
	Rest(ctx context.Context, input *RestInput) (*RestOutput, error)
}
