package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound        GameError = "game not found"
	ErrGameOver            GameError = "game is over"
	ErrWrongPhase          GameError = "not allowed in the current phase"
	ErrNotInSetup          GameError = "game has already started"
	ErrRolesNotAssigned    GameError = "roles have not been assigned"
	ErrInvalidDistribution GameError = "role distribution does not match the player count"
	ErrNotEnoughPlayers    GameError = "not enough players to start"
	ErrGameFull            GameError = "game is at maximum capacity"
	ErrUnknownPlayer       GameError = "player is not in this game"
	ErrPlayerAlreadyInGame GameError = "player already in game"
	ErrDeadActor           GameError = "dead players cannot act"
	ErrDeadTarget          GameError = "cannot target a dead player"
	ErrWrongRole           GameError = "role cannot use this ability"
	ErrDuplicateAction     GameError = "action already submitted this night"
	ErrSelfTarget          GameError = "this role cannot target itself"
	ErrSelfSaveUsed        GameError = "the self-save has already been used"
	ErrNilConfig           GameError = "config cannot be nil"
	ErrNilGameRepo         GameError = "game repository cannot be nil"
	ErrNilArchiveRepo      GameError = "archive repository cannot be nil"
	ErrNilShuffler         GameError = "shuffler cannot be nil"
	ErrNilClock            GameError = "clock cannot be nil"
	ErrNilUUIDGenerator    GameError = "UUID generator cannot be nil"
)
