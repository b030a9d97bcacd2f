package domain

// Progress returns how much of the session has elapsed, from 0 to 100.
// Ready is always 0 and Finished is always 100.
func Progress(m BreathingMethod, s SessionState) float64 {
	switch s.Phase {
	case PhaseReady:
		return 0
	case PhaseFinished:
		return 100
	}

	total := m.TotalSeconds()
	if total <= 0 || s.CurrentCycle < 1 {
		return 0
	}

	elapsedInPhase := m.PhaseDuration(s.Phase) - s.SecondsRemaining
	elapsed := (s.CurrentCycle-1)*m.CycleSeconds() + m.phaseOffset(s.Phase) + elapsedInPhase

	pct := float64(elapsed) / float64(total) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
