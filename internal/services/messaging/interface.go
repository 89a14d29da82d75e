package messaging

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/robuxroyale/internal/services/messaging Service

// Service is the interface for the messaging service
type Service interface {
	// GetRoundResultMessage returns a title and a line for a finished round
	GetRoundResultMessage(ctx context.Context, input *GetRoundResultMessageInput) (*GetRoundResultMessageOutput, error)

	// GetRoundStartMessage returns a line for a timed round that just started
	GetRoundStartMessage(ctx context.Context, input *GetRoundStartMessageInput) (*GetRoundStartMessageOutput, error)

	// GetClaimMessage returns a title and a line for a reward claim
	GetClaimMessage(ctx context.Context, input *GetClaimMessageInput) (*GetClaimMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
