package models

// NightAction is one concealed submission by an acting role
type NightAction struct {
	// ActorID is the player using the ability
	ActorID string

	// Kind is the ability being used
	Kind AbilityKind

	// TargetID is the player the ability is aimed at
	TargetID string
}

// Investigation is the detective's result for one night
type Investigation struct {
	// DetectiveID is the investigating player
	DetectiveID string

	// TargetID is the investigated player
	TargetID string

	// IsMafia reports the target's true team membership
	IsMafia bool
}

// Rejection records a night action that was dropped during resolution
type Rejection struct {
	// ActorID is the player whose action was dropped
	ActorID string

	// Reason explains why the action was dropped
	Reason string
}

// NightOutcome is the result of resolving one night's actions
type NightOutcome struct {
	// KilledPlayerID is the player who died, empty if no kill landed
	KilledPlayerID string

	// AttemptedTargetID is the mafia's chosen target even when the kill
	// was nullified, so a failed attempt can still be narrated
	AttemptedTargetID string

	// SavedPlayerID is the doctor's protection target, empty if none
	SavedPlayerID string

	// Investigation is the detective's result, nil if none resolved
	Investigation *Investigation

	// Rejections lists actions dropped during resolution with reasons
	Rejections []Rejection
}
