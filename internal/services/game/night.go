package game

import (
	"context"
	"log"

	"github.com/KirkDiggler/mafia/internal/models"
)

// SubmitNightAction records one concealed action for the open night.
// Invalid submissions are rejected here with a typed reason so the
// caller can inform the player; nothing is silently dropped.
func (s *service) SubmitNightAction(ctx context.Context, input *SubmitNightActionInput) (*SubmitNightActionOutput, error) {
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
	if game.Phase != models.PhaseNight {
		return nil, ErrWrongPhase
	}

	action := input.Action
	if action == nil {
		return nil, ErrUnknownPlayer
	}

	actor := game.Player(action.ActorID)
	if actor == nil {
		return nil, ErrUnknownPlayer
	}
	if !actor.Alive {
		return nil, ErrDeadActor
	}

	ability := models.AbilityForRole(actor.Role)
	if ability == "" || action.Kind != ability {
		return nil, ErrWrongRole
	}

	if _, exists := game.PendingActions[action.ActorID]; exists {
		return nil, ErrDuplicateAction
	}

	target := game.Player(action.TargetID)
	if target == nil {
		return nil, ErrUnknownPlayer
	}
	if !target.Alive {
		return nil, ErrDeadTarget
	}

	if actor.Role == models.RoleDetective && target.ID == actor.ID && !s.rules.AllowDetectiveSelfCheck {
		return nil, ErrSelfTarget
	}

	if actor.Role == models.RoleDoctor && target.ID == actor.ID && actor.UsedSelfSave {
		return nil, ErrSelfSaveUsed
	}

	game.PendingActions[action.ActorID] = &models.NightAction{
		ActorID:  action.ActorID,
		Kind:     action.Kind,
		TargetID: action.TargetID,
	}
	game.UpdatedAt = s.clock.Now()

	s.persist(ctx, game)

	return &SubmitNightActionOutput{
		PendingActions: len(game.PendingActions),
	}, nil
}

// CloseNightActions resolves the night, applies the outcome, and moves
// the game into day or game over
func (s *service) CloseNightActions(ctx context.Context, input *CloseNightActionsInput) (*CloseNightActionsOutput, error) {
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
	if game.Phase != models.PhaseNight {
		return nil, ErrWrongPhase
	}

	outcome := s.resolveNight(game)

	if outcome.KilledPlayerID != "" {
		game.MarkDead(outcome.KilledPlayerID, game.Round)
		log.Printf("game %s: night %d kill landed on %s", game.ID, game.Round, outcome.KilledPlayerID)
	} else if outcome.AttemptedTargetID != "" {
		log.Printf("game %s: night %d kill on %s was nullified", game.ID, game.Round, outcome.AttemptedTargetID)
	}

	game.PendingActions = make(map[string]*models.NightAction)
	game.PendingVotes = make(map[string]string)

	winner := s.evaluateWinner(game)
	if winner != models.WinnerNone {
		s.finish(ctx, game, winner)
		s.persist(ctx, game)
		return &CloseNightActionsOutput{
			Outcome: outcome,
			Phase:   game.Phase,
			Winner:  winner,
		}, nil
	}

	game.Phase = models.PhaseDay
	game.UpdatedAt = s.clock.Now()

	s.persist(ctx, game)

	return &CloseNightActionsOutput{
		Outcome: outcome,
		Phase:   game.Phase,
	}, nil
}

// resolveNight resolves the collected actions in fixed precedence:
// validation, mafia consensus, doctor save, detective investigation.
// Callers hold the instance lock.
func (s *service) resolveNight(game *models.Game) *models.NightOutcome {
	outcome := &models.NightOutcome{}

	var killActions []*models.NightAction
	var saveAction *models.NightAction
	var investigateAction *models.NightAction

	for _, action := range game.PendingActions {
		actor := game.Player(action.ActorID)
		if actor == nil || !actor.Alive {
			// Submissions are validated on entry; this only trips if
			// state was corrupted between submit and close
			outcome.Rejections = append(outcome.Rejections, models.Rejection{
				ActorID: action.ActorID,
				Reason:  "actor is no longer alive",
			})
			continue
		}

		switch action.Kind {
		case models.AbilityKill:
			killActions = append(killActions, action)
		case models.AbilitySave:
			saveAction = action
		case models.AbilityInvestigate:
			investigateAction = action
		}
	}

	// Mafia consensus over the kill submissions
	killTarget := s.resolveKillTarget(game, killActions, outcome)

	// Doctor save resolves before the kill lands
	if saveAction != nil {
		doctor := game.Player(saveAction.ActorID)
		outcome.SavedPlayerID = saveAction.TargetID
		if saveAction.TargetID == doctor.ID {
			doctor.UsedSelfSave = true
		}
	}

	if killTarget != "" {
		outcome.AttemptedTargetID = killTarget
		if killTarget == outcome.SavedPlayerID {
			log.Printf("game %s: doctor saved %s from the mafia", game.ID, killTarget)
		} else {
			outcome.KilledPlayerID = killTarget
		}
	}

	// Investigation is independent of the kill and save
	if investigateAction != nil {
		detective := game.Player(investigateAction.ActorID)
		target := game.Player(investigateAction.TargetID)
		detective.LastInvestigatedID = target.ID
		outcome.Investigation = &models.Investigation{
			DetectiveID: detective.ID,
			TargetID:    target.ID,
			IsMafia:     target.Role.IsMafia(),
		}
	}

	return outcome
}

// resolveKillTarget aggregates the mafia submissions into one target.
// With RequireUnanimousKill any disagreement cancels the kill; otherwise
// the plurality choice wins and a tie cancels it.
func (s *service) resolveKillTarget(game *models.Game, killActions []*models.NightAction, outcome *models.NightOutcome) string {
	if len(killActions) == 0 {
		return ""
	}

	counts := make(map[string]int)
	for _, action := range killActions {
		counts[action.TargetID]++
	}

	if s.rules.RequireUnanimousKill {
		if len(counts) > 1 {
			log.Printf("game %s: mafia did not agree on a target, no kill tonight", game.ID)
			for _, action := range killActions {
				outcome.Rejections = append(outcome.Rejections, models.Rejection{
					ActorID: action.ActorID,
					Reason:  "mafia did not agree on a single target",
				})
			}
			return ""
		}
		return killActions[0].TargetID
	}

	// Plurality variant: walk the roster order for a deterministic result
	var target string
	maxCount := 0
	tied := false
	for _, p := range game.Players {
		count := counts[p.ID]
		if count == 0 {
			continue
		}
		if count > maxCount {
			maxCount = count
			target = p.ID
			tied = false
		} else if count == maxCount {
			tied = true
		}
	}
	if tied {
		log.Printf("game %s: mafia kill vote tied, no kill tonight", game.ID)
		for _, action := range killActions {
			outcome.Rejections = append(outcome.Rejections, models.Rejection{
				ActorID: action.ActorID,
				Reason:  "mafia kill vote tied",
			})
		}
		return ""
	}
	return target
}
