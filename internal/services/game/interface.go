package game

import "context"

// Service defines the interface for the mafia game engine. It is the
// sole mutation surface: transports and renderers consume snapshots and
// issue commands, never touching game state directly.
type Service interface {
	// CreateGame creates a new game in the setup phase
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// JoinGame adds a player to a game during setup
	JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error)

	// AssignRoles shuffles the role distribution over the joined players
	AssignRoles(ctx context.Context, input *AssignRolesInput) (*AssignRolesOutput, error)

	// StartGame moves an assigned game from setup into the first night
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// SubmitNightAction records one concealed action for the open night
	SubmitNightAction(ctx context.Context, input *SubmitNightActionInput) (*SubmitNightActionOutput, error)

	// CloseNightActions resolves the night and advances the phase
	CloseNightActions(ctx context.Context, input *CloseNightActionsInput) (*CloseNightActionsOutput, error)

	// SubmitVote records or replaces one living player's vote
	SubmitVote(ctx context.Context, input *SubmitVoteInput) (*SubmitVoteOutput, error)

	// CloseVoting resolves the day's votes and advances the phase
	CloseVoting(ctx context.Context, input *CloseVotingInput) (*CloseVotingOutput, error)

	// Snapshot returns a viewer-scoped read-only view of the game
	Snapshot(ctx context.Context, input *SnapshotInput) (*SnapshotOutput, error)

	// ResetGame returns a game to setup with the same players
	ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error)

	// AbandonGame discards a game entirely
	AbandonGame(ctx context.Context, input *AbandonGameInput) (*AbandonGameOutput, error)
}
