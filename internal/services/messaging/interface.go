package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetBallCommentary returns a commentary line for a delivery
	GetBallCommentary(ctx context.Context, input *GetBallCommentaryInput) (*GetBallCommentaryOutput, error)

	// GetResultMessage returns a line summing up a finished match
	GetResultMessage(ctx context.Context, input *GetResultMessageInput) (*GetResultMessageOutput, error)

	// GetHeadline returns a news headline for a standout performance or a world event
	GetHeadline(ctx context.Context, input *GetHeadlineInput) (*GetHeadlineOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
