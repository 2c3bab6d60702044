package models

import (
	"time"
)

// PlayerResult is one player's final line in a game summary
type PlayerResult struct {
	// PlayerID is the player's identifier
	PlayerID string

	// PlayerName is the player's display name
	PlayerName string

	// Role is the player's revealed role
	Role Role

	// Survived indicates the player was alive when the game ended
	Survived bool

	// DeathRound is the round the player died in, 0 if they survived
	DeathRound int
}

// GameSummary is the archived record of a completed game
type GameSummary struct {
	// ID is the unique identifier for the summary
	ID string

	// GameID is the game this summary describes
	GameID string

	// Winner is the winning side
	Winner Winner

	// Rounds is how many rounds the game lasted
	Rounds int

	// PlayerCount is how many players took part
	PlayerCount int

	// MafiaCount is how many mafia the game started with
	MafiaCount int

	// Results holds every player's final standing
	Results []PlayerResult

	// FinishedAt is when the game ended
	FinishedAt time.Time
}
