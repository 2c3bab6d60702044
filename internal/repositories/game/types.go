package game

import (
	"github.com/KirkDiggler/mafia/internal/models"
)

// SaveGameInput contains parameters for saving a game
type SaveGameInput struct {
	// Game is the game snapshot to persist
	Game *models.Game
}

// GetGameInput contains parameters for retrieving a game
type GetGameInput struct {
	// GameID is the unique identifier for the game
	GameID string
}

// DeleteGameInput contains parameters for deleting a game
type DeleteGameInput struct {
	// GameID is the unique identifier for the game
	GameID string
}

// GetActiveGamesInput contains parameters for retrieving active games
type GetActiveGamesInput struct{}

// GetActiveGamesOutput contains the IDs of all in-progress games
type GetActiveGamesOutput struct {
	GameIDs []string
}
