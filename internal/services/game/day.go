package game

import (
	"context"
	"log"

	"github.com/KirkDiggler/mafia/internal/models"
)

// SubmitVote records or replaces one living player's vote. A voter may
// change their vote until voting closes; the last submission wins.
func (s *service) SubmitVote(ctx context.Context, input *SubmitVoteInput) (*SubmitVoteOutput, error) {
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
	if game.Phase != models.PhaseDay {
		return nil, ErrWrongPhase
	}

	vote := input.Vote
	if vote == nil {
		return nil, ErrUnknownPlayer
	}

	voter := game.Player(vote.VoterID)
	if voter == nil {
		return nil, ErrUnknownPlayer
	}
	if !voter.Alive {
		return nil, ErrDeadActor
	}

	target := game.Player(vote.TargetID)
	if target == nil {
		return nil, ErrUnknownPlayer
	}
	if !target.Alive {
		return nil, ErrDeadTarget
	}

	game.PendingVotes[vote.VoterID] = vote.TargetID
	game.UpdatedAt = s.clock.Now()

	s.persist(ctx, game)

	return &SubmitVoteOutput{
		VotesCast: len(game.PendingVotes),
	}, nil
}

// CloseVoting resolves the day's votes, applies the elimination, and
// moves the game into the next night or game over
func (s *service) CloseVoting(ctx context.Context, input *CloseVotingInput) (*CloseVotingOutput, error) {
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
	if game.Phase != models.PhaseDay {
		return nil, ErrWrongPhase
	}

	outcome := s.resolveVotes(game)

	if outcome.EliminatedPlayerID != "" {
		game.MarkDead(outcome.EliminatedPlayerID, game.Round)
		log.Printf("game %s: day %d eliminated %s (%s)",
			game.ID, game.Round, outcome.EliminatedPlayerID, outcome.EliminatedRole)
	} else if outcome.Tied {
		log.Printf("game %s: day %d vote tied, nobody eliminated", game.ID, game.Round)
	}

	game.PendingActions = make(map[string]*models.NightAction)
	game.PendingVotes = make(map[string]string)

	winner := s.evaluateWinner(game)
	if winner != models.WinnerNone {
		s.finish(ctx, game, winner)
		s.persist(ctx, game)
		return &CloseVotingOutput{
			Outcome: outcome,
			Phase:   game.Phase,
			Round:   game.Round,
			Winner:  winner,
		}, nil
	}

	// Round cap keeps a stalemated table from looping forever
	if game.Round >= s.config.MaxRounds {
		s.finish(ctx, game, models.WinnerDraw)
		s.persist(ctx, game)
		return &CloseVotingOutput{
			Outcome: outcome,
			Phase:   game.Phase,
			Round:   game.Round,
			Winner:  models.WinnerDraw,
		}, nil
	}

	game.Round++
	game.Phase = models.PhaseNight
	game.UpdatedAt = s.clock.Now()

	log.Printf("game %s: day ended, night %d begins", game.ID, game.Round)

	s.persist(ctx, game)

	return &CloseVotingOutput{
		Outcome: outcome,
		Phase:   game.Phase,
		Round:   game.Round,
	}, nil
}

// resolveVotes tallies the collected votes and picks the plurality
// target. A shared maximum means no elimination; the tie is reported
// rather than broken. Callers hold the instance lock.
func (s *service) resolveVotes(game *models.Game) *models.DayOutcome {
	outcome := &models.DayOutcome{
		Tally: make(map[string]int),
	}

	for voterID, targetID := range game.PendingVotes {
		voter := game.Player(voterID)
		target := game.Player(targetID)
		// Votes are validated on entry; dead entries here mean corruption
		if voter == nil || !voter.Alive || target == nil || !target.Alive {
			continue
		}
		outcome.Tally[targetID]++
	}

	if len(outcome.Tally) == 0 {
		return outcome
	}

	// Walk the roster in join order so the result is deterministic
	maxCount := 0
	for _, p := range game.Players {
		if count := outcome.Tally[p.ID]; count > maxCount {
			maxCount = count
		}
	}

	for _, p := range game.Players {
		if outcome.Tally[p.ID] == maxCount {
			outcome.TiedTargets = append(outcome.TiedTargets, p.ID)
		}
	}

	if len(outcome.TiedTargets) > 1 {
		outcome.Tied = true
		return outcome
	}

	eliminated := game.Player(outcome.TiedTargets[0])
	outcome.TiedTargets = nil
	outcome.EliminatedPlayerID = eliminated.ID
	outcome.EliminatedRole = eliminated.Role

	return outcome
}
