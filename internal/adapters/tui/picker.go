package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/xvierd/breathe-cli/internal/config"
	"github.com/xvierd/breathe-cli/internal/domain"
	"github.com/xvierd/breathe-cli/internal/ports"
)

// pickerModel is the method selection screen. It is embedded in Model and
// does not quit the program on its own.
type pickerModel struct {
	catalog   ports.MethodCatalog
	methods   []domain.BreathingMethod
	visible   []int
	cursor    int
	filtering bool
	filter    textinput.Model
	theme     config.ThemeConfig
}

func newPickerModel(catalog ports.MethodCatalog, theme config.ThemeConfig) pickerModel {
	ti := textinput.New()
	ti.Placeholder = "filter methods"
	ti.Prompt = "/ "
	ti.CharLimit = 40
	ti.Width = 30

	m := pickerModel{
		catalog: catalog,
		methods: catalog.List(),
		filter:  ti,
		theme:   theme,
	}
	m.visible = catalog.Search("")
	return m
}

// selected returns the method under the cursor.
func (m pickerModel) selected() (domain.BreathingMethod, bool) {
	if len(m.visible) == 0 || m.cursor >= len(m.visible) {
		return domain.BreathingMethod{}, false
	}
	return m.methods[m.visible[m.cursor]], true
}

// update handles a key on the picker. chosen is true when the user picked
// the method under the cursor.
func (m pickerModel) update(msg tea.KeyMsg) (pickerModel, tea.Cmd, bool) {
	if m.filtering {
		switch msg.String() {
		case "esc":
			m.filtering = false
			m.filter.Blur()
			m.filter.SetValue("")
			m.applyFilter()
			return m, nil, false
		case "enter":
			m.filtering = false
			m.filter.Blur()
			_, ok := m.selected()
			return m, nil, ok
		case "up", "down":
			m.move(msg.String())
			return m, nil, false
		}
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.applyFilter()
		return m, cmd, false
	}

	switch msg.String() {
	case "up", "k", "down", "j":
		m.move(msg.String())
	case "/":
		m.filtering = true
		return m, m.filter.Focus(), false
	case "enter":
		_, ok := m.selected()
		return m, nil, ok
	default:
		// Digits jump straight to the n-th visible method.
		if r := msg.Runes; len(r) == 1 && r[0] >= '1' && r[0] <= '9' {
			idx := int(r[0] - '1')
			if idx < len(m.visible) {
				m.cursor = idx
				return m, nil, true
			}
		}
	}
	return m, nil, false
}

func (m *pickerModel) move(dir string) {
	switch dir {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	}
}

func (m *pickerModel) applyFilter() {
	m.visible = m.catalog.Search(m.filter.Value())
	if m.cursor >= len(m.visible) {
		m.cursor = max(0, len(m.visible)-1)
	}
}

// timingLabel formats a method's rhythm. Hold is only shown when present.
func timingLabel(method domain.BreathingMethod) string {
	parts := []string{fmt.Sprintf("in %ds", method.Inhale)}
	if method.HasHold() {
		parts = append(parts, fmt.Sprintf("hold %ds", method.Hold))
	}
	parts = append(parts, fmt.Sprintf("out %ds", method.Exhale))
	return fmt.Sprintf("%s · %d cycles", strings.Join(parts, " · "), method.Cycles)
}

func (m pickerModel) view(width int) string {
	var b strings.Builder

	if width <= 0 {
		width = 80
	}
	descWidth := max(20, width-8)

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorMuted))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("  %s Choose a breathing method", m.theme.IconApp)) + "\n\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString("  " + m.filter.View() + "\n\n")
	}

	if len(m.visible) == 0 {
		b.WriteString(mutedStyle.Render("    no methods match") + "\n")
	}

	for i, idx := range m.visible {
		method := m.methods[idx]
		accent := lipgloss.NewStyle().Foreground(lipgloss.Color(method.Color)).Bold(true)
		desc := runewidth.Truncate(method.Description, descWidth, "…")

		if i == m.cursor {
			b.WriteString(fmt.Sprintf("  %s %s\n", accent.Render("▸"), accent.Render(method.Name)))
			b.WriteString(dimStyle.Render("    "+timingLabel(method)) + "\n")
			b.WriteString(dimStyle.Render("    "+desc) + "\n")
		} else {
			b.WriteString(mutedStyle.Render("    "+method.Name) + "\n")
			b.WriteString(mutedStyle.Render("    "+timingLabel(method)) + "\n")
		}
		b.WriteString("\n")
	}

	if m.filtering {
		b.WriteString(dimStyle.Render("  type to filter · enter select · esc clear") + "\n")
	} else {
		b.WriteString(dimStyle.Render("  ↑/↓ navigate · enter select · / filter · q quit") + "\n")
	}

	return b.String()
}
