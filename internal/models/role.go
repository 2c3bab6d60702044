package models

// Role represents a player's hidden role
type Role string

const (
	// RoleMafia is the informed minority; mafia members know one another
	RoleMafia Role = "mafia"

	// RoleTownsperson has no night ability
	RoleTownsperson Role = "townsperson"

	// RoleDoctor may nullify one kill attempt per night
	RoleDoctor Role = "doctor"

	// RoleDetective may learn whether a target is mafia
	RoleDetective Role = "detective"
)

// IsMafia reports whether the role belongs to the mafia team
func (r Role) IsMafia() bool {
	return r == RoleMafia
}

// AbilityKind represents the kind of night ability being used
type AbilityKind string

const (
	// AbilityKill is the mafia's nightly kill
	AbilityKill AbilityKind = "kill"

	// AbilitySave is the doctor's protection
	AbilitySave AbilityKind = "save"

	// AbilityInvestigate is the detective's role check
	AbilityInvestigate AbilityKind = "investigate"
)

// AbilityForRole returns the night ability a role may use, or "" for none
func AbilityForRole(r Role) AbilityKind {
	switch r {
	case RoleMafia:
		return AbilityKill
	case RoleDoctor:
		return AbilitySave
	case RoleDetective:
		return AbilityInvestigate
	default:
		return ""
	}
}
