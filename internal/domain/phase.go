package domain

// Phase is a step of a breathing session.
type Phase string

const (
	PhaseReady    Phase = "ready"
	PhaseInhale   Phase = "inhale"
	PhaseHold     Phase = "hold"
	PhaseExhale   Phase = "exhale"
	PhaseFinished Phase = "finished"
)

// Phases lists every phase in session order.
var Phases = []Phase{
	PhaseReady,
	PhaseInhale,
	PhaseHold,
	PhaseExhale,
	PhaseFinished,
}

// IsActive returns true for the phases that are timed by the tick driver.
func (p Phase) IsActive() bool {
	return p == PhaseInhale || p == PhaseHold || p == PhaseExhale
}

// Label returns a human-readable label.
func (p Phase) Label() string {
	switch p {
	case PhaseReady:
		return "Get Ready"
	case PhaseInhale:
		return "Breathe In"
	case PhaseHold:
		return "Hold"
	case PhaseExhale:
		return "Breathe Out"
	case PhaseFinished:
		return "Practice Complete"
	default:
		return "Unknown"
	}
}

// Scale returns the relative size of the breathing circle for the phase.
func (p Phase) Scale() float64 {
	switch p {
	case PhaseInhale:
		return 1.2
	case PhaseExhale:
		return 0.8
	default:
		return 1.0
	}
}
