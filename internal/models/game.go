package models

import (
	"time"
)

// Game represents one mafia game instance
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// CreatorID is the player who created the game
	CreatorID string

	// Phase is the current phase of the game
	Phase Phase

	// Round is the current round number; the first night is round 1
	Round int

	// Players holds every participant in join order; players are never
	// removed once the game starts, only marked dead
	Players []*Player

	// Winner is set once the game reaches game over
	Winner Winner

	// PendingActions maps actor ID to their night action for the open night
	PendingActions map[string]*NightAction

	// PendingVotes maps voter ID to target ID for the open day
	PendingVotes map[string]string

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time
}

// Player returns the participant with the given ID, or nil
func (g *Game) Player(id string) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// LivingPlayers returns the alive subset in original join order.
// The stable order is what makes vote tallying deterministic.
func (g *Game) LivingPlayers() []*Player {
	living := make([]*Player, 0, len(g.Players))
	for _, p := range g.Players {
		if p.Alive {
			living = append(living, p)
		}
	}
	return living
}

// LivingMafia returns the living mafia members in join order
func (g *Game) LivingMafia() []*Player {
	mafia := make([]*Player, 0, len(g.Players))
	for _, p := range g.Players {
		if p.Alive && p.Role.IsMafia() {
			mafia = append(mafia, p)
		}
	}
	return mafia
}

// LivingTown returns the living non-mafia players in join order
func (g *Game) LivingTown() []*Player {
	town := make([]*Player, 0, len(g.Players))
	for _, p := range g.Players {
		if p.Alive && !p.Role.IsMafia() {
			town = append(town, p)
		}
	}
	return town
}

// MarkDead marks a player dead in the given round. Marking an already
// dead player is a no-op, and unknown IDs are ignored.
func (g *Game) MarkDead(id string, round int) {
	p := g.Player(id)
	if p == nil || !p.Alive {
		return
	}
	p.Alive = false
	p.DeathRound = round
}

// RolesAssigned reports whether every player has a role
func (g *Game) RolesAssigned() bool {
	if len(g.Players) == 0 {
		return false
	}
	for _, p := range g.Players {
		if p.Role == "" {
			return false
		}
	}
	return true
}
