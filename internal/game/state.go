// Package game provides the play session and the terminal game loop.
package game

// Phase represents where the session is in a level's lifecycle.
type Phase int

const (
	// PhasePlaying accepts move and jump requests.
	PhasePlaying Phase = iota
	// PhaseLevelComplete means the goal was reached; NextLevel advances.
	PhaseLevelComplete
	// PhaseGameOver means a hazard was triggered; Restart begins at level 1.
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseLevelComplete:
		return "level_complete"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Outcome classifies the result of a move or jump request.
type Outcome int

const (
	OutcomeMoved Outcome = iota
	OutcomeBlocked
	OutcomeOutOfBounds
	OutcomeGoal
	OutcomeHazard
	OutcomeInactive
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeBlocked:
		return "blocked"
	case OutcomeOutOfBounds:
		return "out_of_bounds"
	case OutcomeGoal:
		return "goal"
	case OutcomeHazard:
		return "hazard"
	case OutcomeInactive:
		return "inactive"
	default:
		return "unknown"
	}
}
