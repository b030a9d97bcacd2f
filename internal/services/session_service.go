package services

import (
	"fmt"
	"sync"

	"github.com/xvierd/breathe-cli/internal/debug"
	"github.com/xvierd/breathe-cli/internal/domain"
	"github.com/xvierd/breathe-cli/internal/ports"
)

// SessionService drives one breathing method through the phase state
// machine and emits the cues each transition asks for. It is safe for
// concurrent use by a timer goroutine and a UI.
type SessionService struct {
	mu        sync.Mutex
	method    domain.BreathingMethod
	state     domain.SessionState
	sessionID string
	emitter   ports.CueEmitter
	palette   domain.Palette
	onFinish  func(domain.BreathingMethod)
}

// SessionOption configures a SessionService.
type SessionOption func(*SessionService)

// WithPalette sets the phase colors used for snapshots.
func WithPalette(p domain.Palette) SessionOption {
	return func(s *SessionService) {
		s.palette = p
	}
}

// WithOnFinish registers a callback fired once each time a run finishes.
func WithOnFinish(fn func(domain.BreathingMethod)) SessionOption {
	return func(s *SessionService) {
		s.onFinish = fn
	}
}

// NewSessionService looks methodID up in the catalog and returns an idle
// session for it. An unknown id returns domain.ErrMethodNotFound.
func NewSessionService(catalog ports.MethodCatalog, methodID string, emitter ports.CueEmitter, opts ...SessionOption) (*SessionService, error) {
	method, err := catalog.Get(methodID)
	if err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}

	s := &SessionService{
		method:  method,
		state:   domain.NewSessionState(),
		emitter: emitter,
		palette: domain.DefaultPalette(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Method returns the method this session runs.
func (s *SessionService) Method() domain.BreathingMethod {
	return s.method
}

// Start begins the run. It has no effect unless the session is Ready.
func (s *SessionService) Start() domain.Snapshot {
	return s.apply(domain.EventStart)
}

// Stop abandons the run and returns to Ready.
func (s *SessionService) Stop() domain.Snapshot {
	return s.apply(domain.EventStop)
}

// Restart begins a fresh run from any state.
func (s *SessionService) Restart() domain.Snapshot {
	return s.apply(domain.EventRestart)
}

// Tick advances the run by one second.
func (s *SessionService) Tick() domain.Snapshot {
	return s.apply(domain.EventTick)
}

// Snapshot returns the current view of the session.
func (s *SessionService) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.NewSnapshot(s.sessionID, s.method, s.state, s.palette)
}

// Running reports whether the timer should be ticking.
func (s *SessionService) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Running
}

// ToggleSound flips tones on or off and returns the new setting.
func (s *SessionService) ToggleSound() bool {
	if s.emitter == nil {
		return false
	}
	enabled := !s.emitter.SoundEnabled()
	s.emitter.SetSoundEnabled(enabled)
	return enabled
}

// SoundEnabled reports whether tones are on.
func (s *SessionService) SoundEnabled() bool {
	return s.emitter != nil && s.emitter.SoundEnabled()
}

func (s *SessionService) apply(ev domain.Event) domain.Snapshot {
	s.mu.Lock()
	prev, runID := s.state, s.sessionID
	next, cues := domain.Transition(s.method, prev, ev)
	s.state = next
	switch {
	case next.Phase == domain.PhaseReady:
		s.sessionID = ""
	case ev == domain.EventRestart || (next.Running && !prev.Running):
		s.sessionID = domain.NewSessionID()
		runID = s.sessionID
	}
	snap := domain.NewSnapshot(s.sessionID, s.method, next, s.palette)
	s.mu.Unlock()

	debug.LogIf(prev.Phase != next.Phase || prev.CurrentCycle != next.CurrentCycle,
		"session %s method=%s %s: %s -> %s cycle=%d", runID, s.method.ID, ev, prev.Phase, next.Phase, next.CurrentCycle)

	if s.emitter != nil {
		for _, c := range cues {
			ports.Emit(s.emitter, c)
		}
	}

	if prev.Running && next.IsFinished() && s.onFinish != nil {
		s.onFinish(s.method)
	}
	return snap
}
var _ ports.Session = (*SessionService)(nil)
