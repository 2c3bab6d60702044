package game

import (
	"github.com/KirkDiggler/mafia/internal/models"
)

func (s *GameServiceTestSuite) TestSubmitNightActionDuringSetup() {
	gameID := s.createSetupGame()

	_, err := s.svc.SubmitNightAction(s.ctx, &SubmitNightActionInput{
		GameID: gameID,
		Action: &models.NightAction{ActorID: "p1", Kind: models.AbilityKill, TargetID: "p2"},
	})
	s.Require().ErrorIs(err, ErrWrongPhase)
}

func (s *GameServiceTestSuite) TestSubmitNightActionUnknownActor() {
	gameID := s.createStartedGame()

	_, err := s.svc.SubmitNightAction(s.ctx, &SubmitNightActionInput{
		GameID: gameID,
		Action: &models.NightAction{ActorID: "ghost", Kind: models.AbilityKill, TargetID: "p2"},
	})
	s.Require().ErrorIs(err, ErrUnknownPlayer)
}

func (s *GameServiceTestSuite) TestSubmitNightActionWrongRole() {
	gameID := s.createStartedGame()

	// Townsperson has no night ability
	_, err := s.svc.SubmitNightAction(s.ctx, &SubmitNightActionInput{
		GameID: gameID,
		Action: &models.NightAction{ActorID: "p4", Kind: models.AbilityKill, TargetID: "p1"},
	})
	s.Require().ErrorIs(err, ErrWrongRole)

	// Detective cannot kill
	_, err = s.svc.SubmitNightAction(s.ctx, &SubmitNightActionInput{
		GameID: gameID,
		Action: &models.NightAction{ActorID: "p3", Kind: models.AbilityKill, TargetID: "p1"},
	})
	s.Require().ErrorIs(err, ErrWrongRole)
}

func (s *GameServiceTestSuite) TestSubmitNightActionDuplicate() {
	gameID := s.createStartedGame()

	_, err := s.svc.SubmitNightAction(s.ctx, &SubmitNightActionInput{
		GameID: gameID,
		Action: &models.NightAction{ActorID: "p1", Kind: models.AbilityKill, TargetID: "p4"},
	})
	s.Require().NoError(err)

	_, err = s.svc.SubmitNightAction(s.ctx, &SubmitNightActionInput{
		GameID: gameID,
		Action: &models.NightAction{ActorID: "p1", Kind: models.AbilityKill, TargetID: "p5"},
	})
	s.Require().ErrorIs(err, ErrDuplicateAction)
}

func (s *GameServiceTestSuite) TestSubmitNightActionDeadActor() {
	gameID := s.createStartedGame()

	// Kill p3 (the detective) during night one
	_, err := s.svc.SubmitNightAction(s.ctx, &SubmitNightActionInput{
		GameID: gameID,
		Action: &models.NightAction{ActorID: "p1", Kind: models.AbilityKill, TargetID: "p3"},
	})
	s.Require().NoError(err)
	_, err = s.svc.CloseNightActions(s.ctx, &CloseNightActionsInput{GameID: gameID})
	s.Require().NoError(err)
	_, err = s.svc.CloseVoting(s.ctx, &CloseVotingInput{GameID: gameID})
	s.Require().NoError(err)

	// The dead detective cannot act on night two
	_, err = s.svc.SubmitNightAction(s.ctx, &SubmitNightActionInput{
		GameID: gameID,
		Action: &models.NightAction{ActorID: "p3", Kind: models.AbilityInvestigate, TargetID: "p1"},
	})
	s.Require().ErrorIs(err, ErrDeadActor)
}

func (s *GameServiceTestSuite) TestSubmitNightActionDeadTarget() {
	gameID := s.createStartedGame()

	_, err := s.svc.SubmitNightAction(s.ctx, &SubmitNightActionInput{
		GameID: gameID,
		Action: &models.NightAction{ActorID: "p1", Kind: models.AbilityKill, TargetID: "p6"},
	})
	s.Require().NoError(err)
	_, err = s.svc.CloseNightActions(s.ctx, &CloseNightActionsInput{GameID: gameID})
	s.Require().NoError(err)
	_, err = s.svc.CloseVoting(s.ctx, &CloseVotingInput{GameID: gameID})
	s.Require().NoError(err)

	// p6 died on night one and cannot be targeted on night two
	_, err = s.svc.SubmitNightAction(s.ctx, &SubmitNightActionInput{
		GameID: gameID,
		Action: &models.NightAction{ActorID: "p1", Kind: models.AbilityKill, TargetID: "p6"},
	})
	s.Require().ErrorIs(err, ErrDeadTarget)
}

func (s *GameServiceTestSuite) TestDetectiveCannotSelfInvestigate() {
	gameID := s.createStartedGame()

	_, err := s.svc.SubmitNightAction(s.ctx, &SubmitNightActionInput{
		GameID: gameID,
		Action: &models.NightAction{ActorID: "p3", Kind: models.AbilityInvestigate, TargetID: "p3"},
	})
	s.Require().ErrorIs(err, ErrSelfTarget)
}

func (s *GameServiceTestSuite) TestDoctorSelfSaveOncePerGame() {
	gameID := s.createStartedGame()

	// Night one: doctor protects themselves
	_, err := s.svc.SubmitNightAction(s.ctx, &SubmitNightActionInput{
		GameID: gameID,
		Action: &models.NightAction{ActorID: "p2", Kind: models.AbilitySave, TargetID: "p2"},
	})
	s.Require().NoError(err)
	_, err = s.svc.CloseNightActions(s.ctx, &CloseNightActionsInput{GameID: gameID})
	s.Require().NoError(err)
	_, err = s.svc.CloseVoting(s.ctx, &CloseVotingInput{GameID: gameID})
	s.Require().NoError(err)

	// Night two: the self-save is spent
	_, err = s.svc.SubmitNightAction(s.ctx, &SubmitNightActionInput{
		GameID: gameID,
		Action: &models.NightAction{ActorID: "p2", Kind: models.AbilitySave, TargetID: "p2"},
	})
	s.Require().ErrorIs(err, ErrSelfSaveUsed)

	// Protecting someone else is still fine
	_, err = s.svc.SubmitNightAction(s.ctx, &SubmitNightActionInput{
		GameID: gameID,
		Action: &models.NightAction{ActorID: "p2", Kind: models.AbilitySave, TargetID: "p4"},
	})
	s.Require().NoError(err)
}

func (s *GameServiceTestSuite) TestKillLandsWithoutSave() {
	gameID := s.createStartedGame()

	_, err := s.svc.SubmitNightAction(s.ctx, &SubmitNightActionInput{
		GameID: gameID,
		Action: &models.NightAction{ActorID: "p1", Kind: models.AbilityKill, TargetID: "p4"},
	})
	s.Require().NoError(err)

	out, err := s.svc.CloseNightActions(s.ctx, &CloseNightActionsInput{GameID: gameID})
	s.Require().NoError(err)

	s.Equal("p4", out.Outcome.KilledPlayerID)
	s.Equal("p4", out.Outcome.AttemptedTargetID)
	s.Equal(models.PhaseDay, out.Phase)

	game := s.gameState(gameID)
	s.False(game.Player("p4").Alive)
	s.Equal(1, game.Player("p4").DeathRound)
}

func (s *GameServiceTestSuite) TestSaveNullifiesKillButReportsAttempt() {
	gameID := s.createStartedGame()

	_, err := s.svc.SubmitNightAction(s.ctx, &SubmitNightActionInput{
		GameID: gameID,
		Action: &models.NightAction{ActorID: "p1", Kind: models.AbilityKill, TargetID: "p5"},
	})
	s.Require().NoError(err)
	_, err = s.svc.SubmitNightAction(s.ctx, &SubmitNightActionInput{
		GameID: gameID,
		Action: &models.NightAction{ActorID: "p2", Kind: models.AbilitySave, TargetID: "p5"},
	})
	s.Require().NoError(err)

	out, err := s.svc.CloseNightActions(s.ctx, &CloseNightActionsInput{GameID: gameID})
	s.Require().NoError(err)

	s.Empty(out.Outcome.KilledPlayerID)
	s.Equal("p5", out.Outcome.AttemptedTargetID)
	s.Equal("p5", out.Outcome.SavedPlayerID)

	game := s.gameState(gameID)
	s.True(game.Player("p5").Alive)
}

func (s *GameServiceTestSuite) TestSaveOnDifferentTargetDoesNotBlockKill() {
	gameID := s.createStartedGame()

	_, err := s.svc.SubmitNightAction(s.ctx, &SubmitNightActionInput{
		GameID: gameID,
		Action: &models.NightAction{ActorID: "p1", Kind: models.AbilityKill, TargetID: "p5"},
	})
	s.Require().NoError(err)
	_, err = s.svc.SubmitNightAction(s.ctx, &SubmitNightActionInput{
		GameID: gameID,
		Action: &models.NightAction{ActorID: "p2", Kind: models.AbilitySave, TargetID: "p6"},
	})
	s.Require().NoError(err)

	out, err := s.svc.CloseNightActions(s.ctx, &CloseNightActionsInput{GameID: gameID})
	s.Require().NoError(err)

	s.Equal("p5", out.Outcome.KilledPlayerID)
	s.Equal("p6", out.Outcome.SavedPlayerID)
}

func (s *GameServiceTestSuite) TestInvestigationIsTruthful() {
	gameID := s.createStartedGame()

	// Round one: investigate the mafia member
	_, err := s.svc.SubmitNightAction(s.ctx, &SubmitNightActionInput{
		GameID: gameID,
		Action: &models.NightAction{ActorID: "p3", Kind: models.AbilityInvestigate, TargetID: "p1"},
	})
	s.Require().NoError(err)

	out, err := s.svc.CloseNightActions(s.ctx, &CloseNightActionsInput{GameID: gameID})
	s.Require().NoError(err)
	s.Require().NotNil(out.Outcome.Investigation)
	s.Equal("p3", out.Outcome.Investigation.DetectiveID)
	s.Equal("p1", out.Outcome.Investigation.TargetID)
	s.True(out.Outcome.Investigation.IsMafia)

	_, err = s.svc.CloseVoting(s.ctx, &CloseVotingInput{GameID: gameID})
	s.Require().NoError(err)

	// Round two: investigate a townsperson
	_, err = s.svc.SubmitNightAction(s.ctx, &SubmitNightActionInput{
		GameID: gameID,
		Action: &models.NightAction{ActorID: "p3", Kind: models.AbilityInvestigate, TargetID: "p4"},
	})
	s.Require().NoError(err)

	out, err = s.svc.CloseNightActions(s.ctx, &CloseNightActionsInput{GameID: gameID})
	s.Require().NoError(err)
	s.Require().NotNil(out.Outcome.Investigation)
	s.False(out.Outcome.Investigation.IsMafia)
}

// mafiaPairGame builds a seven player table with two mafia members (p1
// and p2) so consensus rules can be exercised
func (s *GameServiceTestSuite) mafiaPairGame() string {
	out, err := s.svc.CreateGame(s.ctx, &CreateGameInput{CreatorID: "p1"})
	s.Require().NoError(err)

	ids := []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7"}
	for _, id := range ids {
		_, err := s.svc.JoinGame(s.ctx, &JoinGameInput{
			GameID:     out.GameID,
			PlayerID:   id,
			PlayerName: id,
		})
		s.Require().NoError(err)
	}

	_, err = s.svc.AssignRoles(s.ctx, &AssignRolesInput{
		GameID: out.GameID,
		Distribution: models.RoleDistribution{
			Mafia:       2,
			Doctors:     1,
			Detectives:  1,
			Townspeople: 3,
		},
	})
	s.Require().NoError(err)

	_, err = s.svc.StartGame(s.ctx, &StartGameInput{GameID: out.GameID})
	s.Require().NoError(err)

	return out.GameID
}

func (s *GameServiceTestSuite) TestMafiaDisagreementCancelsKill() {
	gameID := s.mafiaPairGame()

	_, err := s.svc.SubmitNightAction(s.ctx, &SubmitNightActionInput{
		GameID: gameID,
		Action: &models.NightAction{ActorID: "p1", Kind: models.AbilityKill, TargetID: "p5"},
	})
	s.Require().NoError(err)
	_, err = s.svc.SubmitNightAction(s.ctx, &SubmitNightActionInput{
		GameID: gameID,
		Action: &models.NightAction{ActorID: "p2", Kind: models.AbilityKill, TargetID: "p6"},
	})
	s.Require().NoError(err)

	out, err := s.svc.CloseNightActions(s.ctx, &CloseNightActionsInput{GameID: gameID})
	s.Require().NoError(err)

	s.Empty(out.Outcome.KilledPlayerID)
	s.Empty(out.Outcome.AttemptedTargetID)
	s.Len(out.Outcome.Rejections, 2)

	game := s.gameState(gameID)
	s.Len(game.LivingPlayers(), 7)
}

func (s *GameServiceTestSuite) TestMafiaAgreementKills() {
	gameID := s.mafiaPairGame()

	for _, actor := range []string{"p1", "p2"} {
		_, err := s.svc.SubmitNightAction(s.ctx, &SubmitNightActionInput{
			GameID: gameID,
			Action: &models.NightAction{ActorID: actor, Kind: models.AbilityKill, TargetID: "p7"},
		})
		s.Require().NoError(err)
	}

	out, err := s.svc.CloseNightActions(s.ctx, &CloseNightActionsInput{GameID: gameID})
	s.Require().NoError(err)

	s.Equal("p7", out.Outcome.KilledPlayerID)
}

func (s *GameServiceTestSuite) TestEmptyNightResolvesToQuietDay() {
	gameID := s.createStartedGame()

	out, err := s.svc.CloseNightActions(s.ctx, &CloseNightActionsInput{GameID: gameID})
	s.Require().NoError(err)

	s.Empty(out.Outcome.KilledPlayerID)
	s.Empty(out.Outcome.AttemptedTargetID)
	s.Empty(out.Outcome.SavedPlayerID)
	s.Nil(out.Outcome.Investigation)
	s.Equal(models.PhaseDay, out.Phase)
}
