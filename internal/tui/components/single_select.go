package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SingleSelectItem represents an option in a single-select list.
type SingleSelectItem struct {
	Label       string
	Value       string
	Description string
}

// SingleSelect is a navigable radio-button list.
type SingleSelect struct {
	Items    []SingleSelectItem
	styles   Styles
	cursor   int
	selected int
	done     bool
	kbd      KbdHint
}

// NewSingleSelect creates a new single-select component.
func NewSingleSelect(items []SingleSelectItem, styles Styles) SingleSelect {
	return SingleSelect{
		Items:    items,
		styles:   styles,
		selected: -1,
		kbd:      NewKbdHint(styles.KbdKey, styles.KbdDesc, SelectHints()),
	}
}

// Init resets done state so the component can be re-used after back-navigation.
func (s *SingleSelect) Init() tea.Cmd {
	s.done = false
	return nil
}

// Update handles keyboard input.
func (s SingleSelect) Update(msg tea.Msg) (SingleSelect, tea.Cmd) {
	if s.done {
		return s, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.Items)-1 {
				s.cursor++
			}
		case "enter":
			s.selected = s.cursor
			s.done = true
		}
	}

	return s, nil
}

// View renders the select list.
func (s SingleSelect) View(width int) string {
	var out string

	itemWidth := width - 6
	if itemWidth < 30 {
		itemWidth = 30
	}

	for i, item := range s.Items {
		isCursor := i == s.cursor
		var radio, label, desc string

		if isCursor {
			radio = lipgloss.NewStyle().Foreground(s.styles.Accent).Render("◉")
			label = lipgloss.NewStyle().Foreground(s.styles.Primary).Bold(true).Render(item.Label)
			if item.Description != "" {
				desc = "\n    " + lipgloss.NewStyle().Foreground(s.styles.Secondary).Render(item.Description)
			}
		} else {
			radio = lipgloss.NewStyle().Foreground(s.styles.Dim).Render("○")
			label = lipgloss.NewStyle().Foreground(s.styles.Secondary).Render(item.Label)
		}

		firstLine := "  " + label
		padding := itemWidth - lipgloss.Width(firstLine) - 4
		if padding < 1 {
			padding = 1
		}
		content := firstLine + strings.Repeat(" ", padding) + radio + desc

		border := s.styles.InactiveBorder
		if isCursor {
			border = s.styles.ActiveBorder
		}
		out += "  " + border.Width(itemWidth).Render(content) + "\n"
	}

	out += "\n" + s.kbd.View()
	return out
}

// Done returns true when a selection has been made.
func (s SingleSelect) Done() bool {
	return s.done
}

// Reset clears the selection so the user can pick again.
func (s *SingleSelect) Reset() {
	s.done = false
	s.selected = -1
}

// Selected returns the value of the selected item, or empty before Done.
func (s SingleSelect) Selected() string {
	if s.selected >= 0 && s.selected < len(s.Items) {
		return s.Items[s.selected].Value
	}
	return ""
}

// Preselect moves the cursor to the item with the given value.
func (s *SingleSelect) Preselect(value string) {
	for i, item := range s.Items {
		if item.Value == value {
			s.cursor = i
			return
		}
	}
	if len(s.Items) > 0 {
		s.cursor = 0
	}
}
