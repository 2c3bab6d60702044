package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/mafia/internal/common/clock"
	"github.com/KirkDiggler/mafia/internal/common/uuid"
	"github.com/KirkDiggler/mafia/internal/models"
	archiveRepo "github.com/KirkDiggler/mafia/internal/repositories/archive"
	gameRepo "github.com/KirkDiggler/mafia/internal/repositories/game"
	gameService "github.com/KirkDiggler/mafia/internal/services/game"
	"github.com/KirkDiggler/mafia/internal/shuffle"
)

// config is the simulator's environment configuration
type config struct {
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	ArchivePath   string `env:"ARCHIVE_DB" envDefault:"mafia.db"`
	Players       int    `env:"PLAYERS" envDefault:"7"`
	Seed          int64  `env:"SEED"`
}

// playerNames feeds the simulated roster
var playerNames = []string{
	"Alice", "Bob", "Charlie", "Diana", "Eve", "Frank",
	"Grace", "Heidi", "Ivan", "Judy", "Mallory", "Niaj",
}

func main() {
	// Load .env if present; real environment wins
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("Failed to parse environment: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	random := rand.New(rand.NewSource(seed))
	log.Printf("Simulating a %d player game with seed %d", cfg.Players, seed)

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	// Initialize repositories
	games, err := gameRepo.NewRedis(&gameRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create game repository: %v", err)
	}

	archive, err := archiveRepo.NewSQLite(&archiveRepo.Config{
		Path: cfg.ArchivePath,
	})
	if err != nil {
		log.Fatalf("Failed to create archive repository: %v", err)
	}
	defer func() {
		if err := archive.Close(); err != nil {
			log.Printf("Error closing archive: %v", err)
		}
	}()

	// Initialize game service
	svc, err := gameService.New(&gameService.Config{
		GameRepo:      games,
		ArchiveRepo:   archive,
		Shuffler:      shuffle.New(&shuffle.Config{Seed: seed}),
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	ctx := context.Background()

	// Leftover active games from interrupted runs are worth knowing about
	active, err := games.GetActiveGames(ctx, &gameRepo.GetActiveGamesInput{})
	if err != nil {
		log.Printf("Failed to list active games: %v", err)
	} else if len(active.GameIDs) > 0 {
		log.Printf("%d game(s) still marked active: %v", len(active.GameIDs), active.GameIDs)
	}

	if err := run(ctx, svc, cfg.Players, random); err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}
}

// run plays one full automated game to completion
func run(ctx context.Context, svc gameService.Service, playerCount int, random *rand.Rand) error {
	created, err := svc.CreateGame(ctx, &gameService.CreateGameInput{CreatorID: "sim"})
	if err != nil {
		return err
	}
	gameID := created.GameID
	log.Printf("Created game %s", gameID)

	for i := 0; i < playerCount; i++ {
		name := playerNames[i%len(playerNames)]
		_, err := svc.JoinGame(ctx, &gameService.JoinGameInput{
			GameID:     gameID,
			PlayerID:   name,
			PlayerName: name,
		})
		if err != nil {
			return err
		}
	}

	_, err = svc.AssignRoles(ctx, &gameService.AssignRolesInput{
		GameID:       gameID,
		Distribution: models.DefaultDistribution(playerCount),
	})
	if err != nil {
		return err
	}

	if _, err := svc.StartGame(ctx, &gameService.StartGameInput{GameID: gameID}); err != nil {
		return err
	}

	for {
		winner, err := playNight(ctx, svc, gameID, random)
		if err != nil {
			return err
		}
		if winner != models.WinnerNone {
			log.Printf("Game over: %s", winner)
			return nil
		}

		winner, err = playDay(ctx, svc, gameID, random)
		if err != nil {
			return err
		}
		if winner != models.WinnerNone {
			log.Printf("Game over: %s", winner)
			return nil
		}
	}
}

// playNight submits one legal action per living special role and closes
// the night
func playNight(ctx context.Context, svc gameService.Service, gameID string, random *rand.Rand) (models.Winner, error) {
	snap, err := svc.Snapshot(ctx, &gameService.SnapshotInput{
		GameID:     gameID,
		Privileged: true,
	})
	if err != nil {
		return models.WinnerNone, err
	}
	state := snap.State

	// All mafia converge on one target to satisfy the unanimity rule
	killTarget := pickTarget(state, random, func(p gameService.PlayerView) bool {
		return !p.Role.IsMafia()
	})

	for _, p := range state.Players {
		if !p.Alive {
			continue
		}

		var action *models.NightAction
		switch p.Role {
		case models.RoleMafia:
			if killTarget == "" {
				continue
			}
			action = &models.NightAction{ActorID: p.ID, Kind: models.AbilityKill, TargetID: killTarget}
		case models.RoleDoctor:
			target := pickTarget(state, random, func(t gameService.PlayerView) bool {
				return t.ID != p.ID
			})
			if target == "" {
				continue
			}
			action = &models.NightAction{ActorID: p.ID, Kind: models.AbilitySave, TargetID: target}
		case models.RoleDetective:
			target := pickTarget(state, random, func(t gameService.PlayerView) bool {
				return t.ID != p.ID
			})
			if target == "" {
				continue
			}
			action = &models.NightAction{ActorID: p.ID, Kind: models.AbilityInvestigate, TargetID: target}
		default:
			continue
		}

		if _, err := svc.SubmitNightAction(ctx, &gameService.SubmitNightActionInput{
			GameID: gameID,
			Action: action,
		}); err != nil {
			return models.WinnerNone, err
		}
	}

	out, err := svc.CloseNightActions(ctx, &gameService.CloseNightActionsInput{GameID: gameID})
	if err != nil {
		return models.WinnerNone, err
	}

	if out.Outcome.KilledPlayerID != "" {
		log.Printf("Night %d: %s was killed", state.Round, out.Outcome.KilledPlayerID)
	} else if out.Outcome.SavedPlayerID != "" && out.Outcome.AttemptedTargetID == out.Outcome.SavedPlayerID {
		log.Printf("Night %d: the doctor saved %s", state.Round, out.Outcome.SavedPlayerID)
	} else {
		log.Printf("Night %d: nobody died", state.Round)
	}
	if inv := out.Outcome.Investigation; inv != nil {
		log.Printf("Night %d: %s investigated %s (mafia: %t)", state.Round, inv.DetectiveID, inv.TargetID, inv.IsMafia)
	}

	return out.Winner, nil
}

// playDay has every living player cast a random vote and closes voting
func playDay(ctx context.Context, svc gameService.Service, gameID string, random *rand.Rand) (models.Winner, error) {
	snap, err := svc.Snapshot(ctx, &gameService.SnapshotInput{
		GameID:     gameID,
		Privileged: true,
	})
	if err != nil {
		return models.WinnerNone, err
	}
	state := snap.State

	for _, p := range state.Players {
		if !p.Alive {
			continue
		}
		target := pickTarget(state, random, func(t gameService.PlayerView) bool {
			return t.ID != p.ID
		})
		if target == "" {
			continue
		}
		if _, err := svc.SubmitVote(ctx, &gameService.SubmitVoteInput{
			GameID: gameID,
			Vote:   &models.Vote{VoterID: p.ID, TargetID: target},
		}); err != nil {
			return models.WinnerNone, err
		}
	}

	out, err := svc.CloseVoting(ctx, &gameService.CloseVotingInput{GameID: gameID})
	if err != nil {
		return models.WinnerNone, err
	}

	if out.Outcome.EliminatedPlayerID != "" {
		log.Printf("Day %d: %s (%s) was voted out", state.Round, out.Outcome.EliminatedPlayerID, out.Outcome.EliminatedRole)
	} else if out.Outcome.Tied {
		log.Printf("Day %d: the vote tied, nobody was eliminated", state.Round)
	} else {
		log.Printf("Day %d: no votes were cast", state.Round)
	}

	return out.Winner, nil
}

// pickTarget returns a random living player satisfying the filter, or ""
func pickTarget(state *gameService.GameView, random *rand.Rand, keep func(gameService.PlayerView) bool) string {
	candidates := make([]string, 0, len(state.Players))
	for _, p := range state.Players {
		if p.Alive && keep(p) {
			candidates = append(candidates, p.ID)
		}
	}
	if len(candidates) == 0 {
		return ""
	}
	return candidates[random.Intn(len(candidates))]
}
