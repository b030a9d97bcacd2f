package domain

// Palette maps phases to display colors. Ready is not looked up: it always
// uses the method's accent color.
type Palette map[Phase]string

// DefaultPalette returns the standard phase colors.
func DefaultPalette() Palette {
	return Palette{
		PhaseInhale:   "#4CAF50",
		PhaseHold:     "#FF9800",
		PhaseExhale:   "#2196F3",
		PhaseFinished: "#9C27B0",
	}
}

// Color returns the display color for a phase of method m.
func (p Palette) Color(m BreathingMethod, phase Phase) string {
	if phase == PhaseReady {
		return m.Color
	}
	if c, ok := p[phase]; ok && c != "" {
		return c
	}
	if c, ok := DefaultPalette()[phase]; ok {
		return c
	}
	return m.Color
}

// Snapshot is the read-only view of a session handed to presentation.
type Snapshot struct {
	SessionID        string
	MethodID         string
	MethodName       string
	Phase            Phase
	SecondsRemaining int
	CurrentCycle     int
	TotalCycles      int
	Percentage       float64
	DisplayColor     string
	Running          bool
}

// NewSnapshot derives the presentation snapshot for s.
func NewSnapshot(sessionID string, m BreathingMethod, s SessionState, palette Palette) Snapshot {
	return Snapshot{
		SessionID:        sessionID,
		MethodID:         m.ID,
		MethodName:       m.Name,
		Phase:            s.Phase,
		SecondsRemaining: s.SecondsRemaining,
		CurrentCycle:     s.CurrentCycle,
		TotalCycles:      m.Cycles,
		Percentage:       Progress(m, s),
		DisplayColor:     palette.Color(m, s.Phase),
		Running:          s.Running,
	}
}

// DisplaySeconds returns the countdown value to show; Finished shows 0.
func (s Snapshot) DisplaySeconds() int {
	if s.Phase == PhaseFinished {
		return 0
	}
	return s.SecondsRemaining
}

// CanStart returns true when the start control should be offered.
func (s Snapshot) CanStart() bool {
	return s.Phase == PhaseReady && !s.Running
}

// CanStop returns true when the stop control should be offered.
func (s Snapshot) CanStop() bool {
	return s.Running && s.Phase.IsActive()
}

// CanRestart returns true when the restart control should be offered.
func (s Snapshot) CanRestart() bool {
	return s.Phase == PhaseFinished
}
