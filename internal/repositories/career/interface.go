package career

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/crease/internal/repositories/career Repository

import (
	"context"

	"github.com/KirkDiggler/crease/internal/models"
)

// Repository defines the interface for career persistence
type Repository interface {
	// SaveCareer persists a career document
	SaveCareer(ctx context.Context, input *SaveCareerInput) error

	// GetCareer retrieves a career by ID
	GetCareer(ctx context.Context, input *GetCareerInput) (*models.Career, error)

	// GetCareerByOwner retrieves the career owned by a user
	GetCareerByOwner(ctx context.Context, input *GetCareerByOwnerInput) (*models.Career, error)

	// DeleteCareer removes a career
	DeleteCareer(ctx context.Context, input *DeleteCareerInput) error

	// ListCareers lists the IDs of every stored career
	ListCareers(ctx context.Context, input *ListCareersInput) (*ListCareersOutput, error)
}
