package domain

// CountdownWindow is the number of final seconds of a phase that get an
// escalating countdown cue.
const CountdownWindow = 3

// Event is an input to the phase state machine.
type Event string

const (
	EventStart   Event = "start"
	EventTick    Event = "tick"
	EventStop    Event = "stop"
	EventRestart Event = "restart"
)

// CueKind identifies the side effect a transition asks for.
type CueKind string

const (
	CueHaptic    CueKind = "haptic"
	CuePhase     CueKind = "phase"
	CueCountdown CueKind = "countdown"
)

// Cue is a side effect requested by the state machine. The driver that
// applied the transition is responsible for emitting it.
type Cue struct {
	Kind  CueKind
	Phase Phase
	Count int
}

// HapticCue returns a haptic pulse request.
func HapticCue() Cue { return Cue{Kind: CueHaptic} }

// PhaseCue returns a tone request for entering p.
func PhaseCue(p Phase) Cue { return Cue{Kind: CuePhase, Phase: p} }

// CountdownCue returns a countdown tone request for n remaining seconds.
func CountdownCue(n int) Cue { return Cue{Kind: CueCountdown, Count: n} }

// SessionState is the mutable part of a breathing session. It is only ever
// changed through Transition.
type SessionState struct {
	Phase            Phase
	SecondsRemaining int
	CurrentCycle     int
	Running          bool
}

// NewSessionState returns the idle Ready state.
func NewSessionState() SessionState {
	return SessionState{Phase: PhaseReady}
}

// IsFinished returns true once the last exhale has completed.
func (s SessionState) IsFinished() bool {
	return s.Phase == PhaseFinished
}

// Transition applies ev to s for method m and returns the next state along
// with the cues to emit, in order. It never mutates its inputs.
//
// Start is only honoured from Ready. Stop is valid from any state and
// always lands on Ready. Restart is valid from any state and behaves like a
// stop followed by a start. Ticks outside an active phase are ignored.
func Transition(m BreathingMethod, s SessionState, ev Event) (SessionState, []Cue) {
	switch ev {
	case EventStart:
		if s.Phase != PhaseReady {
			return s, nil
		}
		return begin(m)
	case EventRestart:
		return begin(m)
	case EventStop:
		return NewSessionState(), nil
	case EventTick:
		return tick(m, s)
	default:
		return s, nil
	}
}

func begin(m BreathingMethod) (SessionState, []Cue) {
	return enter(m, PhaseInhale, 1)
}

func enter(m BreathingMethod, p Phase, cycle int) (SessionState, []Cue) {
	next := SessionState{
		Phase:            p,
		SecondsRemaining: m.PhaseDuration(p),
		CurrentCycle:     cycle,
		Running:          true,
	}
	return next, []Cue{HapticCue(), PhaseCue(p)}
}

func tick(m BreathingMethod, s SessionState) (SessionState, []Cue) {
	if !s.Running || !s.Phase.IsActive() {
		return s, nil
	}

	var cues []Cue
	remaining := s.SecondsRemaining
	if remaining >= 1 && remaining <= CountdownWindow {
		cues = append(cues, CountdownCue(remaining))
	}

	if remaining <= 1 {
		next, phaseCues := advance(m, s)
		return next, append(cues, phaseCues...)
	}

	s.SecondsRemaining = remaining - 1
	return s, cues
}

// advance moves to the phase after the current one has run out.
func advance(m BreathingMethod, s SessionState) (SessionState, []Cue) {
	switch s.Phase {
	case PhaseInhale:
		if m.HasHold() {
			return enter(m, PhaseHold, s.CurrentCycle)
		}
		return enter(m, PhaseExhale, s.CurrentCycle)
	case PhaseHold:
		return enter(m, PhaseExhale, s.CurrentCycle)
	case PhaseExhale:
		if s.CurrentCycle < m.Cycles {
			return enter(m, PhaseInhale, s.CurrentCycle+1)
		}
		finished := SessionState{
			Phase:        PhaseFinished,
			CurrentCycle: m.Cycles,
		}
		return finished, []Cue{PhaseCue(PhaseFinished)}
	default:
		return s, nil
	}
}
