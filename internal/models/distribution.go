package models

// RoleDistribution describes how many of each role a game should have
type RoleDistribution struct {
	Mafia        int
	Doctors      int
	Detectives   int
	Townspeople  int
}

// Total returns the number of players the distribution covers
func (d RoleDistribution) Total() int {
	return d.Mafia + d.Doctors + d.Detectives + d.Townspeople
}

// Valid reports whether the distribution can produce a playable game
// for the given player count: counts must sum to the player count,
// with at least one mafia and at least one non-mafia
func (d RoleDistribution) Valid(playerCount int) bool {
	if d.Mafia < 1 || d.Doctors < 0 || d.Detectives < 0 || d.Townspeople < 0 {
		return false
	}
	if d.Total() != playerCount {
		return false
	}
	return d.Doctors+d.Detectives+d.Townspeople >= 1
}

// Roles expands the distribution into a slice of roles, mafia first
func (d RoleDistribution) Roles() []Role {
	roles := make([]Role, 0, d.Total())
	for i := 0; i < d.Mafia; i++ {
		roles = append(roles, RoleMafia)
	}
	for i := 0; i < d.Doctors; i++ {
		roles = append(roles, RoleDoctor)
	}
	for i := 0; i < d.Detectives; i++ {
		roles = append(roles, RoleDetective)
	}
	for i := 0; i < d.Townspeople; i++ {
		roles = append(roles, RoleTownsperson)
	}
	return roles
}

// DefaultDistribution builds the standard distribution for a player count:
// a quarter of the players (at least one) are mafia, one doctor from five
// players up, one detective from six players up, townspeople fill the rest
func DefaultDistribution(playerCount int) RoleDistribution {
	d := RoleDistribution{}

	d.Mafia = playerCount / 4
	if d.Mafia < 1 {
		d.Mafia = 1
	}
	if playerCount >= 5 {
		d.Doctors = 1
	}
	if playerCount >= 6 {
		d.Detectives = 1
	}
	d.Townspeople = playerCount - d.Mafia - d.Doctors - d.Detectives

	return d
}
