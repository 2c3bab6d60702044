package models

// Player represents a participant in a game
type Player struct {
	// ID is the unique identifier for the player
	ID string

	// Name is the display name of the player
	Name string

	// Role is the player's assigned role; empty until roles are assigned
	Role Role

	// Alive indicates whether the player is still in the game
	Alive bool

	// DeathRound is the round the player died in, 0 while alive
	DeathRound int

	// UsedSelfSave tracks the doctor's once-per-game self-save
	UsedSelfSave bool

	// LastInvestigatedID is the target of the detective's most recent check
	LastInvestigatedID string
}
