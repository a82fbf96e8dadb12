package career

import "github.com/KirkDiggler/crease/internal/models"

type SaveCareerInput struct {
	Career *models.Career
}

type GetCareerInput struct {
	CareerID string
}

type GetCareerByOwnerInput struct {
	OwnerID string
}

type DeleteCareerInput struct {
	CareerID string
}

type ListCareersInput struct {
}

type ListCareersOutput struct {
	CareerIDs []string
}
