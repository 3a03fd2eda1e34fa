package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TextInput is a styled text entry component wrapping bubbles/textinput.
type TextInput struct {
	Label      string
	styles     Styles
	input      textinput.Model
	done       bool
	err        string
	hint       string // static hint rendered under the input
	validateFn func(string) error
	kbd        KbdHint
}

// NewTextInput creates a new styled text input. validateFn runs on submit;
// a non-nil error keeps the input active and shows the message.
func NewTextInput(label, placeholder, hint string, validateFn func(string) error, styles Styles) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 100
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(styles.Accent)

	return TextInput{
		Label:      label,
		styles:     styles,
		input:      ti,
		hint:       hint,
		validateFn: validateFn,
		kbd:        NewKbdHint(styles.KbdKey, styles.KbdDesc, InputHints()),
	}
}

// Init focuses the text input.
func (t TextInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.done {
		return t, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
		val := strings.TrimSpace(t.input.Value())
		if t.validateFn != nil {
			if err := t.validateFn(val); err != nil {
				t.err = err.Error()
				return t, nil
			}
		}
		t.done = true
		t.err = ""
		return t, nil
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	t.err = "" // clear error on typing
	return t, cmd
}

// View renders the text input.
func (t TextInput) View(width int) string {
	var out string

	out += "\n  " + t.styles.Label.Render(t.Label) + "\n\n"

	inputWidth := width - 8
	if inputWidth < 20 {
		inputWidth = 20
	}
	t.input.Width = inputWidth
	out += "  " + t.styles.InactiveBorder.Width(inputWidth).Render(t.input.View()) + "\n"

	if t.err != "" {
		out += "  " + t.styles.Error.Render("✗ "+t.err) + "\n"
	}
	if t.hint != "" {
		out += "  " + t.styles.Hint.Render(t.hint) + "\n"
	}

	out += "\n" + t.kbd.View()
	return out
}

// Done returns true when input is submitted.
func (t TextInput) Done() bool {
	return t.done
}

// Value returns the trimmed input value.
func (t TextInput) Value() string {
	return strings.TrimSpace(t.input.Value())
}

// SetValue sets the input value.
func (t *TextInput) SetValue(v string) {
	t.input.SetValue(v)
}

// Reset reopens the input for editing.
func (t *TextInput) Reset() {
	t.done = false
}
