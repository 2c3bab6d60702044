package game

import (
	"github.com/KirkDiggler/mafia/internal/common/clock"
	"github.com/KirkDiggler/mafia/internal/common/uuid"
	"github.com/KirkDiggler/mafia/internal/models"
	archiveRepo "github.com/KirkDiggler/mafia/internal/repositories/archive"
	gameRepo "github.com/KirkDiggler/mafia/internal/repositories/game"
	"github.com/KirkDiggler/mafia/internal/shuffle"
)

// Rules holds the tunable ruleset parameters. Tie policies live here so
// nobody has to guess them from behavior.
type Rules struct {
	// RequireUnanimousKill means conflicting mafia targets cancel the
	// night's kill instead of falling back to plurality
	RequireUnanimousKill bool

	// MafiaWinsOnParity means mafia win at count parity with the town,
	// not only at strict majority
	MafiaWinsOnParity bool

	// AllowDetectiveSelfCheck lets the detective investigate themselves
	AllowDetectiveSelfCheck bool
}

// DefaultRules returns the standard ruleset
func DefaultRules() *Rules {
	return &Rules{
		RequireUnanimousKill:    true,
		MafiaWinsOnParity:       true,
		AllowDetectiveSelfCheck: false,
	}
}

// Config holds configuration for the game service
type Config struct {
	// Minimum number of players required to start a game
	MinPlayers int

	// Maximum number of players per game
	MaxPlayers int

	// Maximum number of rounds before a game ends in a draw
	MaxRounds int

	// Ruleset parameters; nil means DefaultRules
	Rules *Rules

	// Repository dependencies
	GameRepo    gameRepo.Repository
	ArchiveRepo archiveRepo.Repository

	// Service dependencies
	Shuffler      shuffle.Shuffler
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// CreateGameInput contains parameters for creating a new game
type CreateGameInput struct {
	// CreatorID identifies the caller creating the game
	CreatorID string
}

// CreateGameOutput contains the result of creating a new game
type CreateGameOutput struct {
	// GameID is the unique identifier for the created game
	GameID string
}

// JoinGameInput contains parameters for joining a game
type JoinGameInput struct {
	// GameID is the unique identifier for the game to join
	GameID string

	// PlayerID is the unique identifier of the joining player
	PlayerID string

	// PlayerName is the display name of the joining player
	PlayerName string
}

// JoinGameOutput contains the result of joining a game
type JoinGameOutput struct {
	// PlayerCount is the number of players after the join
	PlayerCount int
}

// AssignRolesInput contains parameters for assigning roles
type AssignRolesInput struct {
	// GameID is the unique identifier for the game
	GameID string

	// Distribution is the role distribution to shuffle over the players
	Distribution models.RoleDistribution
}

// AssignRolesOutput contains the result of assigning roles
type AssignRolesOutput struct {
	// Success indicates roles were assigned
	Success bool
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	// GameID is the unique identifier for the game
	GameID string
}

// StartGameOutput contains the result of starting a game
type StartGameOutput struct {
	// Phase is the new phase after starting (the first night)
	Phase models.Phase

	// Round is the current round number
	Round int
}

// SubmitNightActionInput contains parameters for one night submission
type SubmitNightActionInput struct {
	// GameID is the unique identifier for the game
	GameID string

	// Action is the concealed action being submitted
	Action *models.NightAction
}

// SubmitNightActionOutput contains the result of a night submission
type SubmitNightActionOutput struct {
	// PendingActions is how many actions are collected for this night
	PendingActions int
}

// CloseNightActionsInput contains parameters for closing the night
type CloseNightActionsInput struct {
	// GameID is the unique identifier for the game
	GameID string
}

// CloseNightActionsOutput contains the result of resolving the night
type CloseNightActionsOutput struct {
	// Outcome is the resolved night result
	Outcome *models.NightOutcome

	// Phase is the phase after the transition
	Phase models.Phase

	// Winner is set when the night resolution ended the game
	Winner models.Winner
}

// SubmitVoteInput contains parameters for one day vote
type SubmitVoteInput struct {
	// GameID is the unique identifier for the game
	GameID string

	// Vote is the elimination vote being cast
	Vote *models.Vote
}

// SubmitVoteOutput contains the result of casting a vote
type SubmitVoteOutput struct {
	// VotesCast is how many voters have a recorded vote
	VotesCast int
}

// CloseVotingInput contains parameters for closing the day's voting
type CloseVotingInput struct {
	// GameID is the unique identifier for the game
	GameID string
}

// CloseVotingOutput contains the result of resolving the day
type CloseVotingOutput struct {
	// Outcome is the resolved day result
	Outcome *models.DayOutcome

	// Phase is the phase after the transition
	Phase models.Phase

	// Round is the round number after the transition
	Round int

	// Winner is set when the elimination ended the game
	Winner models.Winner
}

// SnapshotInput contains parameters for reading game state
type SnapshotInput struct {
	// GameID is the unique identifier for the game
	GameID string

	// ViewerID identifies who is looking; their own role, dead players'
	// roles, and (for mafia) fellow mafia are visible to them
	ViewerID string

	// Privileged reveals every role, for the narrator or moderator view
	Privileged bool
}

// SnapshotOutput contains the viewer-scoped game view
type SnapshotOutput struct {
	State *GameView
}

// PlayerView is one player's state as seen by a particular viewer
type PlayerView struct {
	// ID is the player's identifier
	ID string

	// Name is the player's display name
	Name string

	// Alive indicates whether the player is still in the game
	Alive bool

	// Role is empty when hidden from the viewer
	Role models.Role

	// DeathRound is the round the player died in, 0 while alive
	DeathRound int
}

// GameView is a read-only view of one game for one viewer
type GameView struct {
	// GameID is the unique identifier for the game
	GameID string

	// Phase is the current phase
	Phase models.Phase

	// Round is the current round number
	Round int

	// Winner is set once the game is over
	Winner models.Winner

	// Players holds the viewer-scoped roster in join order
	Players []PlayerView

	// PendingActionCount is how many night actions are collected (night)
	PendingActionCount int

	// Tally is the current vote tally (day)
	Tally map[string]int
}

// ResetGameInput contains parameters for resetting a game
type ResetGameInput struct {
	// GameID is the unique identifier for the game
	GameID string
}

// ResetGameOutput contains the result of resetting a game
type ResetGameOutput struct {
	// Success indicates the game was returned to setup
	Success bool
}

// AbandonGameInput contains parameters for abandoning a game
type AbandonGameInput struct {
	// GameID is the unique identifier for the game
	GameID string
}

// AbandonGameOutput contains the result of abandoning a game
type AbandonGameOutput struct {
	// Success indicates the game was discarded
	Success bool
}
