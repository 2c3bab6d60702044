package archive

import (
	"github.com/KirkDiggler/mafia/internal/models"
)

// SaveSummaryInput contains parameters for archiving a completed game
type SaveSummaryInput struct {
	// Summary is the completed game summary to persist
	Summary *models.GameSummary
}

// GetSummaryInput contains parameters for retrieving a summary
type GetSummaryInput struct {
	// GameID is the game the summary describes
	GameID string
}

// ListSummariesInput contains parameters for listing summaries
type ListSummariesInput struct {
	// Limit caps the number of summaries returned; 0 means no cap
	Limit int
}

// ListSummariesOutput contains the retrieved summaries
type ListSummariesOutput struct {
	Summaries []*models.GameSummary
}
