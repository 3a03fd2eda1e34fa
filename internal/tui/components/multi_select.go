package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MultiSelectItem represents an option in a multi-select list.
type MultiSelectItem struct {
	Label       string
	Value       string
	Description string
	Checked     bool
}

// MultiSelect is a navigable checkbox list.
type MultiSelect struct {
	Items  []MultiSelectItem
	styles Styles
	cursor int
	done   bool
	kbd    KbdHint
}

// NewMultiSelect creates a new multi-select component.
func NewMultiSelect(items []MultiSelectItem, styles Styles) MultiSelect {
	return MultiSelect{
		Items:  items,
		styles: styles,
		kbd:    NewKbdHint(styles.KbdKey, styles.KbdDesc, MultiSelectHints()),
	}
}

// Init resets done state so the component can be re-used after back-navigation.
func (m *MultiSelect) Init() tea.Cmd {
	m.done = false
	return nil
}

// Update handles keyboard input.
func (m MultiSelect) Update(msg tea.Msg) (MultiSelect, tea.Cmd) {
	if m.done {
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.Items)-1 {
				m.cursor++
			}
		case " ":
			m.Items[m.cursor].Checked = !m.Items[m.cursor].Checked
		case "enter":
			m.done = true
		}
	}

	return m, nil
}

// View renders the multi-select list.
func (m MultiSelect) View(width int) string {
	var out string

	itemWidth := width - 6
	if itemWidth < 30 {
		itemWidth = 30
	}

	for i, item := range m.Items {
		isCursor := i == m.cursor
		var checkbox, label, desc string

		if item.Checked {
			checkbox = lipgloss.NewStyle().Foreground(m.styles.Accent).Render("☑")
		} else {
			checkbox = lipgloss.NewStyle().Foreground(m.styles.Dim).Render("☐")
		}

		if isCursor {
			label = lipgloss.NewStyle().Foreground(m.styles.Primary).Bold(true).Render(item.Label)
			if item.Description != "" {
				desc = "\n    " + lipgloss.NewStyle().Foreground(m.styles.Secondary).Render(item.Description)
			}
		} else {
			label = lipgloss.NewStyle().Foreground(m.styles.Secondary).Render(item.Label)
		}

		firstLine := "  " + label
		padding := itemWidth - lipgloss.Width(firstLine) - 4
		if padding < 1 {
			padding = 1
		}
		content := firstLine + strings.Repeat(" ", padding) + checkbox + desc

		border := m.styles.InactiveBorder
		if isCursor {
			border = m.styles.ActiveBorder
		}
		out += "  " + border.Width(itemWidth).Render(content) + "\n"
	}

	out += "\n" + m.kbd.View()
	return out
}

// Done returns true when selection is confirmed.
func (m MultiSelect) Done() bool {
	return m.done
}

// Reset clears the done state so the user can re-select.
func (m *MultiSelect) Reset() {
	m.done = false
}

// SelectedValues returns the values of all checked items, in display order.
func (m MultiSelect) SelectedValues() []string {
	var vals []string
	for _, item := range m.Items {
		if item.Checked {
			vals = append(vals, item.Value)
		}
	}
	return vals
}

// SelectedLabels returns the labels of all checked items.
func (m MultiSelect) SelectedLabels() []string {
	var labels []string
	for _, item := range m.Items {
		if item.Checked {
			labels = append(labels, item.Label)
		}
	}
	return labels
}
