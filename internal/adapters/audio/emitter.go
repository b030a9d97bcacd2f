package audio

import (
	"sync"
	"sync/atomic"

	"github.com/xvierd/breathe-cli/internal/debug"
	"github.com/xvierd/breathe-cli/internal/domain"
	"github.com/xvierd/breathe-cli/internal/ports"
)

// Emitter implements ports.CueEmitter on top of a TonePlayer and a Haptics
// device. Each cue plays on its own goroutine so the caller never waits on
// audio. The first playback error turns tones off for the rest of the
// process; haptics keep working.
type Emitter struct {
	player  ports.TonePlayer
	haptics ports.Haptics

	sound    atomic.Bool
	degraded atomic.Bool
	haptic   atomic.Bool
	wg       sync.WaitGroup
}

// NewEmitter creates an emitter. A nil player or haptics device disables
// that output.
func NewEmitter(player ports.TonePlayer, haptics ports.Haptics) *Emitter {
	e := &Emitter{player: player, haptics: haptics}
	e.sound.Store(player != nil)
	e.haptic.Store(haptics != nil)
	return e
}

// EmitPhaseCue plays the tone for entering phase.
func (e *Emitter) EmitPhaseCue(phase domain.Phase) {
	profile, ok := PhaseProfile(phase)
	if !ok {
		return
	}
	e.play(profile)
}

// EmitCountdownCue plays the countdown tone for n remaining seconds.
func (e *Emitter) EmitCountdownCue(n int) {
	profile, ok := CountdownProfile(n)
	if !ok {
		return
	}
	e.play(profile)
}

// EmitHaptic triggers a pulse. Unsupported hosts are ignored.
func (e *Emitter) EmitHaptic() {
	if !e.haptic.Load() {
		return
	}
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		if err := e.haptics.Pulse(HapticDuration); err != nil {
			debug.Log("haptic pulse skipped: %v", err)
		}
	}()
}

// SetSoundEnabled toggles tones.
func (e *Emitter) SetSoundEnabled(enabled bool) {
	e.sound.Store(enabled)
}

// SoundEnabled reports whether tones are on.
func (e *Emitter) SoundEnabled() bool {
	return e.sound.Load()
}

// SetHapticsEnabled toggles haptic pulses.
func (e *Emitter) SetHapticsEnabled(enabled bool) {
	e.haptic.Store(enabled && e.haptics != nil)
}

// Degraded reports whether the audio backend failed and tones were dropped.
func (e *Emitter) Degraded() bool {
	return e.degraded.Load()
}

// Dispatch emits cues in order.
func (e *Emitter) Dispatch(cues []domain.Cue) {
	for _, c := range cues {
		ports.Emit(e, c)
	}
}

// Wait blocks until every in-flight cue has finished.
func (e *Emitter) Wait() {
	e.wg.Wait()
}

func (e *Emitter) play(profile ports.ToneProfile) {
	if e.player == nil || !e.sound.Load() || e.degraded.Load() {
		return
	}
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		if err := e.player.PlayTone(profile); err != nil {
			if e.degraded.CompareAndSwap(false, true) {
				debug.Log("audio backend unavailable, tones disabled: %v", err)
			}
		}
	}()
}

var _ ports.CueEmitter = (*Emitter)(nil)
