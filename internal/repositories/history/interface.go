package history

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/robuxroyale/internal/repositories/history Repository

import (
	"context"

	"github.com/KirkDiggler/robuxroyale/internal/models"
)

// Repository stores the capped round history and running stats of each session
type Repository interface {
	// AddEntry appends an entry and folds it into the session stats
	AddEntry(ctx context.Context, input *AddEntryInput) error

	// ListEntries returns the most recent entries, newest first
	ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error)

	// GetStats returns the running stats of a session
	GetStats(ctx context.Context, input *GetStatsInput) (*models.SessionStats, error)

	// DeleteSession drops everything stored for a session
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error
}
