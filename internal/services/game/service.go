package game

import (
	"context"
	"log"
	"sync"

	"github.com/KirkDiggler/mafia/internal/common/clock"
	"github.com/KirkDiggler/mafia/internal/common/uuid"
	"github.com/KirkDiggler/mafia/internal/models"
	archiveRepo "github.com/KirkDiggler/mafia/internal/repositories/archive"
	gameRepo "github.com/KirkDiggler/mafia/internal/repositories/game"
	"github.com/KirkDiggler/mafia/internal/shuffle"
)

// instance is one running game. Submissions arrive concurrently from
// separate callers, so every access to the game state goes through mu;
// a close call therefore always sees a consistent collection and no
// submission can land after it.
type instance struct {
	mu   sync.Mutex
	game *models.Game
}

// service implements the Service interface
type service struct {
	config      *Config
	rules       *Rules
	gameRepo    gameRepo.Repository
	archiveRepo archiveRepo.Repository
	shuffler    shuffle.Shuffler
	clock       clock.Clock
	uuider      uuid.UUID

	mu    sync.RWMutex
	games map[string]*instance
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.ArchiveRepo == nil {
		return nil, ErrNilArchiveRepo
	}

	if cfg.Shuffler == nil {
		return nil, ErrNilShuffler
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	// Set default values if not provided
	if cfg.MinPlayers == 0 {
		cfg.MinPlayers = 5
	}
	if cfg.MaxPlayers == 0 {
		cfg.MaxPlayers = 12
	}
	if cfg.MaxRounds == 0 {
		cfg.MaxRounds = 50
	}

	rules := cfg.Rules
	if rules == nil {
		rules = DefaultRules()
	}

	return &service{
		config:      cfg,
		rules:       rules,
		gameRepo:    cfg.GameRepo,
		archiveRepo: cfg.ArchiveRepo,
		shuffler:    cfg.Shuffler,
		clock:       cfg.Clock,
		uuider:      cfg.UUIDGenerator,
		games:       make(map[string]*instance),
	}, nil
}

// instanceFor returns the running instance for a game ID
func (s *service) instanceFor(gameID string) (*instance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inst, ok := s.games[gameID]
	if !ok {
		return nil, ErrGameNotFound
	}
	return inst, nil
}

// persist writes the current game snapshot through to the repository.
// The in-memory state is authoritative; a store failure is logged and
// does not fail the command that already committed.
func (s *service) persist(ctx context.Context, game *models.Game) {
	err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	})
	if err != nil {
		log.Printf("failed to persist game %s: %v", game.ID, err)
	}
}

// CreateGame creates a new game in the setup phase
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil {
		return nil, ErrNilConfig
	}

	gameID := s.uuider.NewUUID()
	now := s.clock.Now()

	game := &models.Game{
		ID:             gameID,
		CreatorID:      input.CreatorID,
		Phase:          models.PhaseSetup,
		Round:          0,
		Players:        []*models.Player{},
		PendingActions: make(map[string]*models.NightAction),
		PendingVotes:   make(map[string]string),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	// Nothing is mutated yet, so a store failure here fails the command
	err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.games[gameID] = &instance{game: game}
	s.mu.Unlock()

	return &CreateGameOutput{
		GameID: gameID,
	}, nil
}

// JoinGame adds a player to a game during setup
func (s *service) JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error) {
	inst, err := s.instanceFor(input.GameID)
	if err != nil {
		return nil, err
	}

	inst.mu.Lock()
	defer inst.mu.Unlock()

	game := inst.game
	if game.Phase == models.PhaseGameOver {
		return nil, ErrGameOver
	}
	if game.Phase != models.PhaseSetup {
		return nil, ErrNotInSetup
	}

	if game.Player(input.PlayerID) != nil {
		return nil, ErrPlayerAlreadyInGame
	}

	if len(game.Players) >= s.config.MaxPlayers {
		return nil, ErrGameFull
	}

	game.Players = append(game.Players, &models.Player{
		ID:    input.PlayerID,
		Name:  input.PlayerName,
		Alive: true,
	})
	game.UpdatedAt = s.clock.Now()

	s.persist(ctx, game)

	return &JoinGameOutput{
		PlayerCount: len(game.Players),
	}, nil
}

// AssignRoles shuffles the role distribution over the joined players
func (s *service) AssignRoles(ctx context.Context, input *AssignRolesInput) (*AssignRolesOutput, error) {
	inst, err := s.instanceFor(input.GameID)
	if err != nil {
		return nil, err
	}

	inst.mu.Lock()
	defer inst.mu.Unlock()

	game := inst.game
	if game.Phase == models.PhaseGameOver {
		return nil, ErrGameOver
	}
	if game.Phase != models.PhaseSetup {
		return nil, ErrNotInSetup
	}

	if len(game.Players) < s.config.MinPlayers {
		return nil, ErrNotEnoughPlayers
	}

	if !input.Distribution.Valid(len(game.Players)) {
		return nil, ErrInvalidDistribution
	}

	roles := input.Distribution.Roles()
	s.shuffler.Shuffle(len(roles), func(i, j int) {
		roles[i], roles[j] = roles[j], roles[i]
	})

	for i, p := range game.Players {
		p.Role = roles[i]
	}
	game.UpdatedAt = s.clock.Now()

	log.Printf("game %s: assigned roles to %d players (%d mafia)",
		game.ID, len(game.Players), input.Distribution.Mafia)

	s.persist(ctx, game)

	return &AssignRolesOutput{
		Success: true,
	}, nil
}

// StartGame moves an assigned game from setup into the first night
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	inst, err := s.instanceFor(input.GameID)
	if err != nil {
		return nil, err
	}

	inst.mu.Lock()
	defer inst.mu.Unlock()

	game := inst.game
	if game.Phase == models.PhaseGameOver {
		return nil, ErrGameOver
	}
	if game.Phase != models.PhaseSetup {
		return nil, ErrNotInSetup
	}

	if !game.RolesAssigned() {
		return nil, ErrRolesNotAssigned
	}

	game.Phase = models.PhaseNight
	game.Round = 1
	game.PendingActions = make(map[string]*models.NightAction)
	game.PendingVotes = make(map[string]string)
	game.UpdatedAt = s.clock.Now()

	log.Printf("game %s: started, night %d begins", game.ID, game.Round)

	s.persist(ctx, game)

	return &StartGameOutput{
		Phase: game.Phase,
		Round: game.Round,
	}, nil
}

// ResetGame returns a game to setup with the same players
func (s *service) ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error) {
	inst, err := s.instanceFor(input.GameID)
	if err != nil {
		return nil, err
	}

	inst.mu.Lock()
	defer inst.mu.Unlock()

	game := inst.game
	for _, p := range game.Players {
		p.Role = ""
		p.Alive = true
		p.DeathRound = 0
		p.UsedSelfSave = false
		p.LastInvestigatedID = ""
	}
	game.Phase = models.PhaseSetup
	game.Round = 0
	game.Winner = models.WinnerNone
	game.PendingActions = make(map[string]*models.NightAction)
	game.PendingVotes = make(map[string]string)
	game.UpdatedAt = s.clock.Now()

	log.Printf("game %s: reset to setup with %d players", game.ID, len(game.Players))

	s.persist(ctx, game)

	return &ResetGameOutput{
		Success: true,
	}, nil
}

// AbandonGame discards a game entirely
func (s *service) AbandonGame(ctx context.Context, input *AbandonGameInput) (*AbandonGameOutput, error) {
	inst, err := s.instanceFor(input.GameID)
	if err != nil {
		return nil, err
	}

	// Take the instance lock so an in-flight submission finishes first
	inst.mu.Lock()
	defer inst.mu.Unlock()

	s.mu.Lock()
	delete(s.games, input.GameID)
	s.mu.Unlock()

	err = s.gameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		log.Printf("failed to delete abandoned game %s: %v", input.GameID, err)
	}

	log.Printf("game %s: abandoned", input.GameID)

	return &AbandonGameOutput{
		Success: true,
	}, nil
}

// finish moves a game into its terminal state and archives the summary.
// Callers hold the instance lock.
func (s *service) finish(ctx context.Context, game *models.Game, winner models.Winner) {
	game.Phase = models.PhaseGameOver
	game.Winner = winner
	game.PendingActions = make(map[string]*models.NightAction)
	game.PendingVotes = make(map[string]string)
	game.UpdatedAt = s.clock.Now()

	log.Printf("game %s: over after round %d, winner: %s", game.ID, game.Round, winner)

	summary := &models.GameSummary{
		ID:          s.uuider.NewUUID(),
		GameID:      game.ID,
		Winner:      winner,
		Rounds:      game.Round,
		PlayerCount: len(game.Players),
		FinishedAt:  game.UpdatedAt,
	}
	for _, p := range game.Players {
		if p.Role.IsMafia() {
			summary.MafiaCount++
		}
		summary.Results = append(summary.Results, models.PlayerResult{
			PlayerID:   p.ID,
			PlayerName: p.Name,
			Role:       p.Role,
			Survived:   p.Alive,
			DeathRound: p.DeathRound,
		})
	}

	err := s.archiveRepo.SaveSummary(ctx, &archiveRepo.SaveSummaryInput{
		Summary: summary,
	})
	if err != nil {
		log.Printf("failed to archive game %s: %v", game.ID, err)
	}
}
