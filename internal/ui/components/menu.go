package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathplay/internal/ui/theme"
)

// MenuItem is one row of a Menu. Disabled rows are shown greyed out and
// skipped by the cursor.
type MenuItem struct {
	Label string

	// Detail is rendered after the label, e.g. a level or a star rating.
	Detail string

	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list of actions.
type Menu struct {
	Items    []MenuItem
	Selected int

	// LabelWidth pads labels so details line up. Zero disables padding.
	LabelWidth int
}

// NewMenu creates a menu with the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1}
	m.step(1)
	if m.Selected < 0 {
		m.Selected = 0
	}
	return m
}

// step moves the cursor to the next enabled item in direction dir.
// The cursor stays put at either end.
func (m *Menu) step(dir int) {
	for i := m.Selected + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

// Update moves the cursor with up/down (or k/j) and runs the selected
// item's action on enter.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		m.step(-1)
	case "down", "j":
		m.step(1)
	case "enter":
		if m.Selected < 0 || m.Selected >= len(m.Items) {
			return m, nil
		}
		if item := m.Items[m.Selected]; item.Action != nil && !item.Disabled {
			return m, item.Action()
		}
	}
	return m, nil
}

func (m Menu) View() string {
	selected := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	normal := lipgloss.NewStyle().Foreground(theme.Text)

	rows := make([]string, len(m.Items))
	for i, item := range m.Items {
		label := item.Label
		if pad := m.LabelWidth - lipgloss.Width(label); pad > 0 {
			label += strings.Repeat(" ", pad)
		}
		if item.Detail != "" {
			label += "  " + item.Detail
		}

		switch {
		case item.Disabled:
			rows[i] = theme.LockedLevel.Render("    " + label)
		case i == m.Selected:
			rows[i] = selected.Render("  ▸ " + label)
		default:
			rows[i] = normal.Render("    " + label)
		}
	}
	return strings.Join(rows, "\n")
}
