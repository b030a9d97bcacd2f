package ports

import "github.com/xvierd/breathe-cli/internal/domain"

// Session runs one breathing method. Every command returns the snapshot
// after the command has been applied.
// This is a driving port (implemented by the services layer).
type Session interface {
	Method() domain.BreathingMethod
	Start() domain.Snapshot
	Stop() domain.Snapshot
	Restart() domain.Snapshot
	Tick() domain.Snapshot
	Snapshot() domain.Snapshot
	ToggleSound() bool
	SoundEnabled() bool
}

// SessionFactory opens a session for a method id. Unknown ids return
// domain.ErrMethodNotFound.
type SessionFactory func(methodID string) (Session, error)
