package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xvierd/breathe-cli/internal/config"
	"github.com/xvierd/breathe-cli/internal/ports"
)

// ErrNotRunning is returned by Pulse before the program has started.
var ErrNotRunning = errors.New("tui is not running")

// Timer implements the ports.Timer interface using Bubbletea.
type Timer struct {
	catalog    ports.MethodCatalog
	newSession ports.SessionFactory
	theme      *config.ThemeConfig
	opts       []tea.ProgramOption

	program *tea.Program
	cancel  context.CancelFunc
	mu      sync.RWMutex
	wg      sync.WaitGroup
}

// NewTimer creates a new TUI timer adapter.
func NewTimer(catalog ports.MethodCatalog, newSession ports.SessionFactory, theme *config.ThemeConfig, opts ...tea.ProgramOption) *Timer {
	if len(opts) == 0 {
		opts = []tea.ProgramOption{tea.WithAltScreen()}
	}
	return &Timer{
		catalog:    catalog,
		newSession: newSession,
		theme:      theme,
		opts:       opts,
	}
}

// Run starts the interface and blocks until the user quits or ctx is done.
func (t *Timer) Run(ctx context.Context, methodID string) error {
	model := NewModel(t.catalog, t.newSession, t.theme).WithMethod(methodID)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(model, append(t.opts, tea.WithContext(ctx))...)
	t.mu.Lock()
	t.program = program
	t.cancel = cancel
	t.mu.Unlock()

	// Handle context cancellation
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		<-ctx.Done()
		program.Quit()
	}()

	_, err := program.Run()

	t.mu.Lock()
	t.program = nil
	t.mu.Unlock()
	cancel()
	t.wg.Wait()

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// Stop gracefully stops the interface.
func (t *Timer) Stop() {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.cancel != nil {
		t.cancel()
	}
	if t.program != nil {
		t.program.Quit()
	}
}

// Pulse flashes the breathing circle. A terminal has no vibration motor, so
// this is the on-screen stand-in for a haptic pulse.
func (t *Timer) Pulse(_ time.Duration) error {
	t.mu.RLock()
	program := t.program
	t.mu.RUnlock()

	if program == nil {
		return ErrNotRunning
	}
	program.Send(pulseMsg{})
	return nil
}

// Ensure Timer implements ports.Timer.
var _ ports.Timer = (*Timer)(nil)
