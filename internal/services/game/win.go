package game

import (
	"fmt"

	"github.com/KirkDiggler/mafia/internal/models"
)

// evaluateWinner is the win condition over the living role counts. Town
// wins when no mafia remain; mafia win at parity (or strict majority
// when MafiaWinsOnParity is off). It is recomputed after every death,
// never cached. Callers hold the instance lock.
func (s *service) evaluateWinner(game *models.Game) models.Winner {
	if len(game.Players) == 0 {
		// A game with no roster is collaborator misuse, not a game state
		panic(fmt.Sprintf("win evaluation on game %s with empty roster", game.ID))
	}

	mafia := len(game.LivingMafia())
	town := len(game.LivingTown())

	if mafia == 0 {
		return models.WinnerTown
	}

	if s.rules.MafiaWinsOnParity {
		if mafia >= town {
			return models.WinnerMafia
		}
	} else if mafia > town {
		return models.WinnerMafia
	}

	return models.WinnerNone
}
