package services

import (
	"context"
	"time"

	"github.com/xvierd/breathe-cli/internal/domain"
)

// Ticker is the subset of time.Ticker the runner needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type realTicker struct{ t *time.Ticker }

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// NewTicker returns a Ticker backed by time.NewTicker.
func NewTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

// Runner drives a session on a wall-clock ticker without a UI.
type Runner struct {
	session   *SessionService
	interval  time.Duration
	newTicker func(time.Duration) Ticker
	onUpdate  func(domain.Snapshot)
}

// NewRunner creates a runner that ticks session once per second and
// reports every snapshot to onUpdate.
func NewRunner(session *SessionService, onUpdate func(domain.Snapshot)) *Runner {
	return &Runner{
		session:   session,
		interval:  time.Second,
		newTicker: NewTicker,
		onUpdate:  onUpdate,
	}
}

// SetTicker replaces the ticker factory.
func (r *Runner) SetTicker(fn func(time.Duration) Ticker) {
	r.newTicker = fn
}

// Run starts the session and blocks until it finishes or ctx is done.
// Cancellation stops the session and returns ctx.Err().
func (r *Runner) Run(ctx context.Context) error {
	r.report(r.session.Start())

	ticker := r.newTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.report(r.session.Stop())
			return ctx.Err()
		case <-ticker.C():
			snap := r.session.Tick()
			r.report(snap)
			if !snap.Running {
				return nil
			}
		}
	}
}

func (r *Runner) report(s domain.Snapshot) {
	if r.onUpdate != nil {
		r.onUpdate(s)
	}
}
