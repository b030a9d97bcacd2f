package audio

import (
	"errors"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/xvierd/breathe-cli/internal/ports"
)

// ErrNoHaptics is returned by hosts without a vibration actuator.
var ErrNoHaptics = errors.New("haptics not supported on this host")

// BeepPlayer plays tones through the system beeper.
type BeepPlayer struct{}

// PlayTone plays a single tone and blocks until it ends.
func (BeepPlayer) PlayTone(p ports.ToneProfile) error {
	return beeep.Beep(p.Frequency, int(p.Duration.Milliseconds()))
}

// NoHaptics is the Haptics implementation for hosts without an actuator.
type NoHaptics struct{}

// Pulse always reports that haptics are unsupported.
func (NoHaptics) Pulse(_ time.Duration) error {
	return ErrNoHaptics
}

var (
	_ ports.TonePlayer = BeepPlayer{}
	_ ports.Haptics    = NoHaptics{}
)
