// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/breathe-cli/internal/config"
	"github.com/xvierd/breathe-cli/internal/debug"
	"github.com/xvierd/breathe-cli/internal/domain"
	"github.com/xvierd/breathe-cli/internal/ports"
)

// pulseLength is how long a haptic pulse stays highlighted on screen.
const pulseLength = 150 * time.Millisecond

type screen int

const (
	screenSelect screen = iota
	screenSession
)

// tickMsg is sent once per second while a session is armed. gen ties the
// tick to the arming that scheduled it; ticks from an older arming are
// dropped.
type tickMsg struct {
	gen int
}

// pulseMsg asks the view to flash the breathing circle.
type pulseMsg struct{}

// pulseEndMsg clears a flash started by the pulseMsg with the same seq.
type pulseEndMsg struct {
	seq int
}

// Model is the root TUI model. It routes between the picker and the
// session screen and owns the one-second timer.
type Model struct {
	catalog    ports.MethodCatalog
	newSession ports.SessionFactory
	theme      config.ThemeConfig

	screen  screen
	picker  pickerModel
	session ports.Session
	notice  string

	gen   int
	armed bool

	pulsing  bool
	pulseSeq int

	showInstructions bool
	instructions     *instructionCache
	progress         progress.Model

	width  int
	height int
}

// NewModel creates a model on the picker screen.
func NewModel(catalog ports.MethodCatalog, newSession ports.SessionFactory, theme *config.ThemeConfig) Model {
	resolved := resolveTheme(theme)
	return Model{
		catalog:          catalog,
		newSession:       newSession,
		theme:            resolved,
		screen:           screenSelect,
		picker:           newPickerModel(catalog, resolved),
		showInstructions: true,
		instructions:     newInstructionCache(),
		progress:         progress.New(progress.WithGradient(resolved.ColorInhale, resolved.ColorExhale)),
	}
}

// WithMethod opens methodID on the session screen. An unknown id leaves the
// model on the picker with a notice.
func (m Model) WithMethod(methodID string) Model {
	if methodID == "" {
		return m
	}
	m.openSession(methodID)
	return m
}

// Init initializes the TUI. No timer runs until a session is started.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = max(10, msg.Width-8)
		return m, nil

	case tickMsg:
		return m.handleTick(msg)

	case pulseMsg:
		m.pulsing = true
		m.pulseSeq++
		seq := m.pulseSeq
		return m, tea.Tick(pulseLength, func(time.Time) tea.Msg {
			return pulseEndMsg{seq: seq}
		})

	case pulseEndMsg:
		if msg.seq == m.pulseSeq {
			m.pulsing = false
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		if m.screen == screenSession {
			return m.updateSession(msg)
		}
		return m.updateSelect(msg)
	}
	return m, nil
}

func (m Model) updateSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "q" && !m.picker.filtering {
		return m.quit()
	}

	picker, cmd, chosen := m.picker.update(msg)
	m.picker = picker
	if chosen {
		if method, ok := m.picker.selected(); ok {
			m.openSession(method.ID)
		}
	}
	return m, cmd
}

func (m Model) updateSession(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.session.Snapshot()

	switch msg.String() {
	case "q":
		return m.quit()
	case "esc", "b":
		m.closeSession()
		return m, nil
	case "s", "enter", " ":
		if snap.CanStart() {
			m.session.Start()
			return m, m.arm()
		}
	case "x":
		if snap.CanStop() {
			m.session.Stop()
			m.disarm()
		}
	case "r":
		if snap.CanRestart() {
			m.session.Restart()
			return m, m.arm()
		}
	case "m":
		enabled := m.session.ToggleSound()
		if enabled {
			m.notice = "sound on"
		} else {
			m.notice = "sound muted"
		}
	case "i":
		m.showInstructions = !m.showInstructions
	}
	return m, nil
}

func (m Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen || !m.armed || m.session == nil {
		return m, nil
	}
	snap := m.session.Tick()
	if !snap.Running {
		m.disarm()
		return m, nil
	}
	return m, tickCmd(m.gen)
}

// arm starts a fresh tick chain and invalidates any earlier one.
func (m *Model) arm() tea.Cmd {
	m.gen++
	m.armed = true
	return tickCmd(m.gen)
}

// disarm invalidates the current tick chain.
func (m *Model) disarm() {
	m.gen++
	m.armed = false
}

func (m *Model) openSession(methodID string) {
	session, err := m.newSession(methodID)
	if err != nil {
		debug.Log("redirecting to picker: %v", err)
		if errors.Is(err, domain.ErrMethodNotFound) {
			m.notice = fmt.Sprintf("method %q not found", methodID)
		} else {
			m.notice = err.Error()
		}
		m.screen = screenSelect
		return
	}
	m.disarm()
	m.session = session
	m.screen = screenSession
	m.notice = ""
}

func (m *Model) closeSession() {
	m.disarm()
	if m.session != nil {
		m.session.Stop()
	}
	m.session = nil
	m.screen = screenSelect
	m.notice = ""
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.closeSession()
	return m, tea.Quit
}

// View renders the current screen.
func (m Model) View() string {
	var content string
	if m.screen == screenSession && m.session != nil {
		content = m.viewSession()
	} else {
		content = m.viewSelect()
	}
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) viewSelect() string {
	view := m.picker.view(m.width)
	if m.notice != "" {
		noticeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHold))
		view += "\n" + noticeStyle.Render("  "+m.notice) + "\n"
	}
	return view
}

// tickCmd creates a command that sends a tick message for generation gen.
func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}
