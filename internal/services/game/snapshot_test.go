package game

import (
	"github.com/KirkDiggler/mafia/internal/models"
)

func (s *GameServiceTestSuite) playerView(snap *SnapshotOutput, playerID string) PlayerView {
	for _, pv := range snap.State.Players {
		if pv.ID == playerID {
			return pv
		}
	}
	s.FailNow("player not in snapshot", playerID)
	return PlayerView{}
}

func (s *GameServiceTestSuite) TestSnapshotUnknownGame() {
	_, err := s.svc.Snapshot(s.ctx, &SnapshotInput{GameID: "missing"})
	s.Require().ErrorIs(err, ErrGameNotFound)
}

func (s *GameServiceTestSuite) TestSnapshotHidesLivingRolesFromStrangers() {
	gameID := s.createStartedGame()

	snap, err := s.svc.Snapshot(s.ctx, &SnapshotInput{GameID: gameID})
	s.Require().NoError(err)

	for _, pv := range snap.State.Players {
		s.Empty(pv.Role, "living role leaked for %s", pv.ID)
		s.True(pv.Alive)
	}
}

func (s *GameServiceTestSuite) TestSnapshotShowsOwnRole() {
	gameID := s.createStartedGame()

	snap, err := s.svc.Snapshot(s.ctx, &SnapshotInput{GameID: gameID, ViewerID: "p3"})
	s.Require().NoError(err)

	s.Equal(models.RoleDetective, s.playerView(snap, "p3").Role)
	s.Empty(s.playerView(snap, "p1").Role)
	s.Empty(s.playerView(snap, "p2").Role)
}

func (s *GameServiceTestSuite) TestSnapshotMafiaSeeEachOther() {
	gameID := s.mafiaPairGame()

	snap, err := s.svc.Snapshot(s.ctx, &SnapshotInput{GameID: gameID, ViewerID: "p1"})
	s.Require().NoError(err)

	s.Equal(models.RoleMafia, s.playerView(snap, "p1").Role)
	s.Equal(models.RoleMafia, s.playerView(snap, "p2").Role)
	s.Empty(s.playerView(snap, "p3").Role)
	s.Empty(s.playerView(snap, "p4").Role)
}

func (s *GameServiceTestSuite) TestSnapshotRevealsDeadRoles() {
	gameID := s.createStartedGame()

	_, err := s.svc.SubmitNightAction(s.ctx, &SubmitNightActionInput{
		GameID: gameID,
		Action: &models.NightAction{ActorID: "p1", Kind: models.AbilityKill, TargetID: "p6"},
	})
	s.Require().NoError(err)
	_, err = s.svc.CloseNightActions(s.ctx, &CloseNightActionsInput{GameID: gameID})
	s.Require().NoError(err)

	snap, err := s.svc.Snapshot(s.ctx, &SnapshotInput{GameID: gameID, ViewerID: "p4"})
	s.Require().NoError(err)

	dead := s.playerView(snap, "p6")
	s.False(dead.Alive)
	s.Equal(models.RoleTownsperson, dead.Role)
	s.Equal(1, dead.DeathRound)
}

func (s *GameServiceTestSuite) TestSnapshotPrivilegedSeesEverything() {
	gameID := s.createStartedGame()

	snap, err := s.svc.Snapshot(s.ctx, &SnapshotInput{GameID: gameID, Privileged: true})
	s.Require().NoError(err)

	s.Equal(models.RoleMafia, s.playerView(snap, "p1").Role)
	s.Equal(models.RoleDoctor, s.playerView(snap, "p2").Role)
	s.Equal(models.RoleDetective, s.playerView(snap, "p3").Role)
	s.Equal(models.RoleTownsperson, s.playerView(snap, "p4").Role)
}

func (s *GameServiceTestSuite) TestSnapshotNightShowsPendingCount() {
	gameID := s.createStartedGame()

	_, err := s.svc.SubmitNightAction(s.ctx, &SubmitNightActionInput{
		GameID: gameID,
		Action: &models.NightAction{ActorID: "p1", Kind: models.AbilityKill, TargetID: "p4"},
	})
	s.Require().NoError(err)

	snap, err := s.svc.Snapshot(s.ctx, &SnapshotInput{GameID: gameID, ViewerID: "p4"})
	s.Require().NoError(err)

	s.Equal(1, snap.State.PendingActionCount)
	s.Nil(snap.State.Tally)
}

func (s *GameServiceTestSuite) TestSnapshotDayShowsTally() {
	gameID := s.createStartedGame()
	s.toDay(gameID)

	for _, voter := range []string{"p2", "p3"} {
		_, err := s.svc.SubmitVote(s.ctx, &SubmitVoteInput{
			GameID: gameID,
			Vote:   &models.Vote{VoterID: voter, TargetID: "p1"},
		})
		s.Require().NoError(err)
	}

	snap, err := s.svc.Snapshot(s.ctx, &SnapshotInput{GameID: gameID, ViewerID: "p4"})
	s.Require().NoError(err)

	s.Equal(2, snap.State.Tally["p1"])
	s.Zero(snap.State.PendingActionCount)
}
