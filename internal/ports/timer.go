package ports

import "context"

// Timer is the interactive front end: a method picker plus the session
// screen that ticks a Session once per second.
// This is a driving port (called by the command layer).
type Timer interface {
	// Run shows the interface and blocks until the user quits or ctx is
	// done. A non-empty methodID opens that method directly; an unknown id
	// falls back to the picker.
	Run(ctx context.Context, methodID string) error

	// Stop gracefully stops the interface.
	Stop()

	// The timer shows haptic pulses on screen.
	Haptics
}
