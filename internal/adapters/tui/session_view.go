package tui

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/breathe-cli/internal/debug"
	"github.com/xvierd/breathe-cli/internal/domain"
)

// Base size of the breathing circle at scale 1.0.
const (
	circleWidth  = 22
	circleHeight = 5
)

// instructionCache keeps rendered markdown per method and wrap width.
// Model is copied on every update, so the cache is shared by pointer.
type instructionCache struct {
	mu       sync.Mutex
	rendered map[string]string
}

func newInstructionCache() *instructionCache {
	return &instructionCache{rendered: make(map[string]string)}
}

func (c *instructionCache) render(method domain.BreathingMethod, width int) string {
	key := fmt.Sprintf("%s/%d", method.ID, width)

	c.mu.Lock()
	defer c.mu.Unlock()
	if out, ok := c.rendered[key]; ok {
		return out
	}

	start := time.Now()
	out := method.Instructions
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		if md, err := r.Render(method.Instructions); err == nil {
			out = strings.Trim(md, "\n")
		}
	}
	debug.LogTiming("instructions "+key, time.Since(start))
	c.rendered[key] = out
	return out
}

// renderCircle draws the breathing circle for a phase. Inhale grows it and
// exhale shrinks it; a haptic pulse thickens the outline.
func renderCircle(phase domain.Phase, color lipgloss.Color, pulsing bool) string {
	scale := phase.Scale()
	w := int(math.Round(circleWidth * scale))
	h := int(math.Round(circleHeight * scale))

	border := lipgloss.RoundedBorder()
	if pulsing {
		border = lipgloss.ThickBorder()
	}
	style := lipgloss.NewStyle().
		Border(border).
		BorderForeground(color).
		Foreground(color).
		Bold(true).
		Width(w).
		Height(h).
		Align(lipgloss.Center, lipgloss.Center)
	return style.Render(phase.Label())
}

func (m Model) viewSession() string {
	snap := m.session.Snapshot()
	method := m.session.Method()
	color := lipgloss.Color(snap.DisplayColor)

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(method.Color))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorMuted))
	phaseStyle := lipgloss.NewStyle().Foreground(color)

	var sections []string
	sections = append(sections, titleStyle.Render(fmt.Sprintf("%s %s", m.theme.IconApp, method.Name)))
	sections = append(sections, mutedStyle.Render(timingLabel(method)))
	sections = append(sections, "")

	sections = append(sections, renderCircle(snap.Phase, color, m.pulsing))
	sections = append(sections, "")
	sections = append(sections, renderBigCount(snap.DisplaySeconds(), color, m.width))
	sections = append(sections, "")

	if snap.Phase != domain.PhaseReady {
		sections = append(sections, phaseStyle.Render(fmt.Sprintf("Cycle %d / %d", snap.CurrentCycle, snap.TotalCycles)))
	}

	pbar := m.progress
	if pbar.Width <= 0 {
		pbar.Width = 40
	}
	sections = append(sections, pbar.ViewAs(snap.Percentage/100))
	sections = append(sections, helpStyle.Render(fmt.Sprintf("%.0f%% complete", snap.Percentage)))

	if snap.Phase == domain.PhaseFinished {
		sections = append(sections, "")
		sections = append(sections, phaseStyle.Bold(true).Render(fmt.Sprintf("Well done. You completed %d cycles.", snap.TotalCycles)))
	}

	if m.showInstructions && !snap.Phase.IsActive() && method.Instructions != "" {
		width := 60
		if m.width > 0 {
			width = min(width, max(20, m.width-8))
		}
		sections = append(sections, "")
		sections = append(sections, m.instructions.render(method, width))
	}

	if m.notice != "" {
		sections = append(sections, "")
		sections = append(sections, mutedStyle.Render(m.notice))
	}

	sections = append(sections, "")
	sections = append(sections, helpStyle.Render(m.sessionHelp(snap)))

	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

func (m Model) sessionHelp(snap domain.Snapshot) string {
	var keys []string
	if snap.CanStart() {
		keys = append(keys, "[s]tart")
	}
	if snap.CanStop() {
		keys = append(keys, "[x] stop")
	}
	if snap.CanRestart() {
		keys = append(keys, "[r]estart")
	}
	sound := "on"
	if !m.session.SoundEnabled() {
		sound = "off"
	}
	keys = append(keys, "[b]ack", fmt.Sprintf("[m]ute (sound %s)", sound))
	if !snap.Phase.IsActive() {
		keys = append(keys, "[i]nstructions")
	}
	keys = append(keys, "[q]uit")
	return strings.Join(keys, "  ")
}
