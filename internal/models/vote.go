package models

// Vote is one living player's elimination choice during the day
type Vote struct {
	// VoterID is the player casting the vote
	VoterID string

	// TargetID is the player being voted against
	TargetID string
}

// DayOutcome is the result of resolving one day's votes
type DayOutcome struct {
	// EliminatedPlayerID is the player voted out, empty on a tie or no votes
	EliminatedPlayerID string

	// EliminatedRole is the revealed role of the eliminated player
	EliminatedRole Role

	// Tally maps target IDs to the number of votes they received
	Tally map[string]int

	// Tied indicates the maximum vote count was shared, so nobody died
	Tied bool

	// TiedTargets lists the targets that shared the maximum count
	TiedTargets []string
}
