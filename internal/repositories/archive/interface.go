package archive

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/mafia/internal/repositories/archive Repository

import (
	"context"

	"github.com/KirkDiggler/mafia/internal/models"
)

// Repository defines the interface for completed-game archival
type Repository interface {
	// SaveSummary persists a completed game summary
	SaveSummary(ctx context.Context, input *SaveSummaryInput) error

	// GetSummary retrieves a summary by game ID
	GetSummary(ctx context.Context, input *GetSummaryInput) (*models.GameSummary, error)

	// ListSummaries retrieves summaries of completed games, newest first
	ListSummaries(ctx context.Context, input *ListSummariesInput) (*ListSummariesOutput, error)
}
