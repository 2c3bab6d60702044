package game

import (
	"github.com/KirkDiggler/mafia/internal/models"
)

func (s *GameServiceTestSuite) TestEvaluateWinnerTownWin() {
	game := &models.Game{
		ID: "g1",
		Players: []*models.Player{
			{ID: "p1", Role: models.RoleMafia, Alive: false},
			{ID: "p2", Role: models.RoleTownsperson, Alive: true},
			{ID: "p3", Role: models.RoleTownsperson, Alive: true},
		},
	}
	s.Equal(models.WinnerTown, s.svc.evaluateWinner(game))
}

func (s *GameServiceTestSuite) TestEvaluateWinnerMafiaParity() {
	// Two mafia, two town: parity, mafia win under the default rules
	game := &models.Game{
		ID: "g1",
		Players: []*models.Player{
			{ID: "p1", Role: models.RoleMafia, Alive: true},
			{ID: "p2", Role: models.RoleMafia, Alive: true},
			{ID: "p3", Role: models.RoleTownsperson, Alive: true},
			{ID: "p4", Role: models.RoleDoctor, Alive: true},
		},
	}
	s.Equal(models.WinnerMafia, s.svc.evaluateWinner(game))
}

func (s *GameServiceTestSuite) TestEvaluateWinnerParityDisabled() {
	rules := DefaultRules()
	rules.MafiaWinsOnParity = false
	svc, err := New(&Config{
		Rules:         rules,
		GameRepo:      s.mockGameRepo,
		ArchiveRepo:   s.mockArchiveRepo,
		Shuffler:      s.mockShuffler,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)

	game := &models.Game{
		ID: "g1",
		Players: []*models.Player{
			{ID: "p1", Role: models.RoleMafia, Alive: true},
			{ID: "p2", Role: models.RoleMafia, Alive: true},
			{ID: "p3", Role: models.RoleTownsperson, Alive: true},
			{ID: "p4", Role: models.RoleDoctor, Alive: true},
		},
	}
	// At parity the game continues; only a strict majority ends it
	s.Equal(models.WinnerNone, svc.evaluateWinner(game))

	game.Player("p3").Alive = false
	s.Equal(models.WinnerMafia, svc.evaluateWinner(game))
}

func (s *GameServiceTestSuite) TestEvaluateWinnerOngoing() {
	game := &models.Game{
		ID: "g1",
		Players: []*models.Player{
			{ID: "p1", Role: models.RoleMafia, Alive: true},
			{ID: "p2", Role: models.RoleTownsperson, Alive: true},
			{ID: "p3", Role: models.RoleTownsperson, Alive: true},
			{ID: "p4", Role: models.RoleDetective, Alive: true},
		},
	}
	s.Equal(models.WinnerNone, s.svc.evaluateWinner(game))
}

func (s *GameServiceTestSuite) TestEvaluateWinnerPanicsOnEmptyRoster() {
	game := &models.Game{ID: "g1"}
	s.Panics(func() {
		s.svc.evaluateWinner(game)
	})
}

func (s *GameServiceTestSuite) TestMafiaWinEndsGame() {
	gameID := s.createStartedGame()

	// Grind the table down with repeated night kills. One mafia against
	// five others needs four kills to reach one versus one parity.
	targets := []string{"p2", "p3", "p4"}
	for _, target := range targets {
		_, err := s.svc.SubmitNightAction(s.ctx, &SubmitNightActionInput{
			GameID: gameID,
			Action: &models.NightAction{ActorID: "p1", Kind: models.AbilityKill, TargetID: target},
		})
		s.Require().NoError(err)

		out, err := s.svc.CloseNightActions(s.ctx, &CloseNightActionsInput{GameID: gameID})
		s.Require().NoError(err)

		if out.Winner != models.WinnerNone {
			s.Equal(models.WinnerMafia, out.Winner)
			s.Equal(models.PhaseGameOver, out.Phase)
			return
		}

		_, err = s.svc.CloseVoting(s.ctx, &CloseVotingInput{GameID: gameID})
		s.Require().NoError(err)
	}

	// After p2, p3, p4 die it is p1 (mafia) against p5 and p6: one more
	// kill reaches parity
	_, err := s.svc.SubmitNightAction(s.ctx, &SubmitNightActionInput{
		GameID: gameID,
		Action: &models.NightAction{ActorID: "p1", Kind: models.AbilityKill, TargetID: "p5"},
	})
	s.Require().NoError(err)

	out, err := s.svc.CloseNightActions(s.ctx, &CloseNightActionsInput{GameID: gameID})
	s.Require().NoError(err)

	s.Equal(models.WinnerMafia, out.Winner)
	s.Equal(models.PhaseGameOver, out.Phase)
}
