package components

import "github.com/charmbracelet/lipgloss"

// Styles bundles the colors and styles a component needs to render. The
// wizard builds one from its theme and passes it to every component.
type Styles struct {
	Accent    lipgloss.Color
	AccentDim lipgloss.Color
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Dim       lipgloss.Color

	Label          lipgloss.Style
	Error          lipgloss.Style
	Hint           lipgloss.Style
	ActiveBorder   lipgloss.Style
	InactiveBorder lipgloss.Style
	KbdKey         lipgloss.Style
	KbdDesc        lipgloss.Style
	SummaryKey     lipgloss.Style
	SummaryValue   lipgloss.Style
	Box            lipgloss.Style
}
