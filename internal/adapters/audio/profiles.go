// Package audio turns breathing cues into tones and haptic pulses.
package audio

import (
	"time"

	"github.com/xvierd/breathe-cli/internal/domain"
	"github.com/xvierd/breathe-cli/internal/ports"
)

// HapticDuration is the length of every haptic pulse.
const HapticDuration = 50 * time.Millisecond

var phaseProfiles = map[domain.Phase]ports.ToneProfile{
	domain.PhaseReady:    {Frequency: 523, Duration: 150 * time.Millisecond},
	domain.PhaseInhale:   {Frequency: 660, Duration: 200 * time.Millisecond},
	domain.PhaseHold:     {Frequency: 550, Duration: 200 * time.Millisecond},
	domain.PhaseExhale:   {Frequency: 440, Duration: 250 * time.Millisecond},
	domain.PhaseFinished: {Frequency: 880, Duration: 400 * time.Millisecond},
}

// PhaseProfile returns the tone for entering phase p.
func PhaseProfile(p domain.Phase) (ports.ToneProfile, bool) {
	profile, ok := phaseProfiles[p]
	return profile, ok
}

// CountdownProfile returns the tone for n remaining seconds. Pitch rises
// as n falls. Only n in [1, domain.CountdownWindow] has a tone.
func CountdownProfile(n int) (ports.ToneProfile, bool) {
	if n < 1 || n > domain.CountdownWindow {
		return ports.ToneProfile{}, false
	}
	return ports.ToneProfile{
		Frequency: float64(600 + (domain.CountdownWindow-n)*200),
		Duration:  80 * time.Millisecond,
	}, true
}
