package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/mafia/internal/repositories/game Repository

import (
	"context"

	"github.com/KirkDiggler/mafia/internal/models"
)

// Repository defines the interface for game state persistence
type Repository interface {
	// SaveGame persists a game snapshot
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// DeleteGame removes a game
	DeleteGame(ctx context.Context, input *DeleteGameInput) error

	// GetActiveGames retrieves the IDs of all in-progress games
	GetActiveGames(ctx context.Context, input *GetActiveGamesInput) (*GetActiveGamesOutput, error)
}
