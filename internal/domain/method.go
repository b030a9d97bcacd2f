// Package domain contains the core entities for breathe.
// These entities describe breathing methods and the phase-timing state
// machine that walks a session through them, independent of any terminal,
// audio or configuration framework.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors.
var (
	ErrMethodNotFound = errors.New("breathing method not found")
	ErrInvalidMethod  = errors.New("invalid breathing method")
)

// BreathingMethod is an immutable breathing technique from the catalog.
type BreathingMethod struct {
	ID           string
	Name         string
	Description  string
	Inhale       int
	Hold         int
	Exhale       int
	Cycles       int
	Color        string
	Instructions string
}

// Validate checks the timing contract: inhale, exhale and cycles must be
// positive, hold may be zero.
func (m BreathingMethod) Validate() error {
	switch {
	case m.ID == "":
		return fmt.Errorf("%w: empty id", ErrInvalidMethod)
	case m.Inhale <= 0:
		return fmt.Errorf("%w %q: inhale must be > 0, got %d", ErrInvalidMethod, m.ID, m.Inhale)
	case m.Hold < 0:
		return fmt.Errorf("%w %q: hold must be >= 0, got %d", ErrInvalidMethod, m.ID, m.Hold)
	case m.Exhale <= 0:
		return fmt.Errorf("%w %q: exhale must be > 0, got %d", ErrInvalidMethod, m.ID, m.Exhale)
	case m.Cycles <= 0:
		return fmt.Errorf("%w %q: cycles must be > 0, got %d", ErrInvalidMethod, m.ID, m.Cycles)
	}
	return nil
}

// HasHold reports whether the method pauses between inhale and exhale.
func (m BreathingMethod) HasHold() bool {
	return m.Hold > 0
}

// CycleSeconds returns the length of one inhale/hold/exhale cycle.
func (m BreathingMethod) CycleSeconds() int {
	return m.Inhale + m.Hold + m.Exhale
}

// TotalSeconds returns the length of the whole session.
func (m BreathingMethod) TotalSeconds() int {
	return m.CycleSeconds() * m.Cycles
}

// PhaseDuration returns the configured length of a breathing phase.
// Ready and Finished have no duration.
func (m BreathingMethod) PhaseDuration(p Phase) int {
	switch p {
	case PhaseInhale:
		return m.Inhale
	case PhaseHold:
		return m.Hold
	case PhaseExhale:
		return m.Exhale
	default:
		return 0
	}
}

// phaseOffset returns how many seconds of a cycle have passed before the
// given phase begins.
func (m BreathingMethod) phaseOffset(p Phase) int {
	switch p {
	case PhaseHold:
		return m.Inhale
	case PhaseExhale:
		return m.Inhale + m.Hold
	default:
		return 0
	}
}
