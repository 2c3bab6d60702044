package game

import (
	"context"

	"github.com/KirkDiggler/mafia/internal/models"
)

// Snapshot returns a viewer-scoped read-only view of the game. Roles of
// living players are redacted unless the viewer is privileged, is the
// player themselves, or is a living mafia member looking at another
// mafia member. Dead players' roles are always revealed.
func (s *service) Snapshot(ctx context.Context, input *SnapshotInput) (*SnapshotOutput, error) {
	inst, err := s.instanceFor(input.GameID)
	if err != nil {
		return nil, err
	}

	inst.mu.Lock()
	defer inst.mu.Unlock()

	game := inst.game

	var viewer *models.Player
	if input.ViewerID != "" {
		viewer = game.Player(input.ViewerID)
	}

	view := &GameView{
		GameID:  game.ID,
		Phase:   game.Phase,
		Round:   game.Round,
		Winner:  game.Winner,
		Players: make([]PlayerView, 0, len(game.Players)),
	}

	for _, p := range game.Players {
		pv := PlayerView{
			ID:         p.ID,
			Name:       p.Name,
			Alive:      p.Alive,
			DeathRound: p.DeathRound,
		}
		if roleVisible(p, viewer, input.Privileged) {
			pv.Role = p.Role
		}
		view.Players = append(view.Players, pv)
	}

	switch game.Phase {
	case models.PhaseNight:
		view.PendingActionCount = len(game.PendingActions)
	case models.PhaseDay:
		view.Tally = make(map[string]int)
		for _, targetID := range game.PendingVotes {
			view.Tally[targetID]++
		}
	}

	return &SnapshotOutput{
		State: view,
	}, nil
}

// roleVisible decides whether a player's role is shown to the viewer
func roleVisible(subject, viewer *models.Player, privileged bool) bool {
	if privileged {
		return true
	}
	if !subject.Alive {
		return true
	}
	if viewer == nil {
		return false
	}
	if viewer.ID == subject.ID {
		return true
	}
	// Mafia members know one another
	return viewer.Alive && viewer.Role.IsMafia() && subject.Role.IsMafia()
}
