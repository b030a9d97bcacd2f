package tui

import (
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xvierd/breathe-cli/internal/catalog"
	"github.com/xvierd/breathe-cli/internal/domain"
	"github.com/xvierd/breathe-cli/internal/ports"
	"github.com/xvierd/breathe-cli/internal/services"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// send applies msgs in order and returns the final model and the last command.
func send(m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

type cueLog struct {
	mu    sync.Mutex
	cues  []domain.Cue
	sound bool
}

func (c *cueLog) add(cue domain.Cue) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cues = append(c.cues, cue)
}

func (c *cueLog) EmitPhaseCue(p domain.Phase) { c.add(domain.PhaseCue(p)) }
func (c *cueLog) EmitCountdownCue(n int)      { c.add(domain.CountdownCue(n)) }
func (c *cueLog) EmitHaptic()                 { c.add(domain.HapticCue()) }
func (c *cueLog) SetSoundEnabled(b bool)      { c.sound = b }
func (c *cueLog) SoundEnabled() bool          { return c.sound }

func (c *cueLog) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cues)
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]domain.BreathingMethod{
		{
			ID: "box", Name: "Box Breathing", Description: "An even four-sided rhythm for focus.",
			Inhale: 2, Hold: 1, Exhale: 2, Cycles: 2, Color: "#4A90E2",
			Instructions: "## How to practice\n\nSit comfortably and follow the circle.",
		},
		{
			ID: "tiny", Name: "Tiny", Description: "The shortest possible practice.",
			Inhale: 1, Hold: 0, Exhale: 1, Cycles: 1, Color: "#7ED321",
		},
	})
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}
	return c
}

func factory(cat ports.MethodCatalog, cues *cueLog) ports.SessionFactory {
	return func(id string) (ports.Session, error) {
		s, err := services.NewSessionService(cat, id, cues)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}

func newTestModel(t *testing.T) (Model, *cueLog) {
	t.Helper()
	cat := testCatalog(t)
	cues := &cueLog{sound: true}
	return NewModel(cat, factory(cat, cues), nil), cues
}

// onSession returns a model on the session screen for methodID.
func onSession(t *testing.T, methodID string) (Model, *cueLog) {
	t.Helper()
	m, cues := newTestModel(t)
	m = m.WithMethod(methodID)
	if m.screen != screenSession {
		t.Fatalf("WithMethod(%q) did not open the session screen", methodID)
	}
	return m, cues
}
