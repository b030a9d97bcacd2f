package ports

import (
	"time"

	"github.com/xvierd/breathe-cli/internal/domain"
)

// ToneProfile describes one short tone.
type ToneProfile struct {
	Frequency float64
	Duration  time.Duration
}

// TonePlayer is the low-level audio primitive.
// This is a driven port (implemented by adapters).
type TonePlayer interface {
	// PlayTone plays a tone and returns when it has finished or failed.
	PlayTone(profile ToneProfile) error
}

// Haptics is the low-level vibration primitive.
// This is a driven port (implemented by adapters).
type Haptics interface {
	// Pulse triggers a single pulse of the given length. Hosts without an
	// actuator return an error, which callers ignore.
	Pulse(d time.Duration) error
}

// CueEmitter turns state machine cues into sound and haptic feedback.
// Every call is fire-and-forget and must not block the caller.
type CueEmitter interface {
	// EmitPhaseCue plays the tone for entering a phase.
	EmitPhaseCue(phase domain.Phase)

	// EmitCountdownCue plays the countdown tone for n remaining seconds.
	// Values outside [1, domain.CountdownWindow] are ignored.
	EmitCountdownCue(n int)

	// EmitHaptic triggers a haptic pulse when the host supports it.
	EmitHaptic()

	// SetSoundEnabled toggles all tones. Haptics are not affected.
	SetSoundEnabled(enabled bool)

	// SoundEnabled reports whether tones are currently enabled.
	SoundEnabled() bool
}

// Emit dispatches a single domain cue to the emitter.
func Emit(e CueEmitter, c domain.Cue) {
	switch c.Kind {
	case domain.CueHaptic:
		e.EmitHaptic()
	case domain.CuePhase:
		e.EmitPhaseCue(c.Phase)
	case domain.CueCountdown:
		e.EmitCountdownCue(c.Count)
	}
}
