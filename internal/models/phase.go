package models

// Phase represents the current phase of a game
type Phase string

const (
	// PhaseSetup indicates a game is collecting players and role assignments
	PhaseSetup Phase = "setup"

	// PhaseNight indicates special roles are submitting concealed actions
	PhaseNight Phase = "night"

	// PhaseDay indicates living players are voting openly
	PhaseDay Phase = "day"

	// PhaseGameOver indicates the game has ended
	PhaseGameOver Phase = "game_over"
)

// Winner identifies the winning side of a finished game
type Winner string

const (
	// WinnerNone means the game is still undecided
	WinnerNone Winner = ""

	// WinnerMafia means the mafia reached parity or majority
	WinnerMafia Winner = "mafia"

	// WinnerTown means every mafia member is dead
	WinnerTown Winner = "town"

	// WinnerDraw means the game hit the round cap with no decision
	WinnerDraw Winner = "draw"
)
