package match

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/crease/internal/services/match Service

import "context"

// Service defines the interface for playing a full match
type Service interface {
	// Play runs the toss, both innings and any super overs, then commits
	// the result into every participant's record
	Play(ctx context.Context, input *PlayInput) (*PlayOutput, error)
}
