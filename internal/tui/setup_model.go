package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andytrench/next-express/setup"
)

// logTailSize is how many recent log lines the setup view keeps on screen.
const logTailSize = 12

// SetupModel renders a running setup session: the current milestone, a
// scrolling tail of live tool output, and the final result. It stays open
// after completion until the user presses a key.
type SetupModel struct {
	styles  *StyleSet
	session *setup.Session
	spin    spinner.Model

	milestone setup.Milestone
	tail      []string
	width     int

	done   bool
	result setup.Result
}

// NewSetupModel creates a live view over session.
func NewSetupModel(styles *StyleSet, session *setup.Session) SetupModel {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(styles.Theme.Accent)

	return SetupModel{
		styles:  styles,
		session: session,
		spin:    spin,
		width:   80,
	}
}

// Init starts the spinner and the three event pumps.
func (m SetupModel) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		pumpMilestones(m.session.Milestones),
		pumpLogs(m.session.Logs),
		pumpDone(m.session.Done),
	)
}

// Update handles messages.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.done || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil

	case MilestoneMsg:
		m.milestone = msg.Milestone
		if m.session == nil {
			return m, nil
		}
		return m, pumpMilestones(m.session.Milestones)

	case LogLineMsg:
		m.tail = append(m.tail, msg.Event.Line)
		if len(m.tail) > logTailSize {
			m.tail = m.tail[len(m.tail)-logTailSize:]
		}
		if m.session == nil {
			return m, nil
		}
		return m, pumpLogs(m.session.Logs)

	case SetupDoneMsg:
		m.done = true
		m.result = msg.Result
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the setup progress screen.
func (m SetupModel) View() string {
	var out string

	if m.done {
		if m.result.Err != nil {
			out += "\n  " + m.styles.ErrorTxt.Render("✗ "+m.result.Message) + "\n"
		} else {
			out += "\n  " + m.styles.SuccessTxt.Render("✓ "+m.result.Message) + "\n"
		}
	} else {
		out += fmt.Sprintf("\n  %s %s\n", m.spin.View(), m.styles.AccentTxt.Render(string(m.milestone)))
	}

	if len(m.tail) > 0 {
		out += "\n"
		for _, line := range m.tail {
			out += "  " + m.styles.DimTxt.Render(truncate(line, m.width-4)) + "\n"
		}
	}

	if m.done {
		out += "\n  " + m.styles.SecondaryTxt.Render("Press any key to exit.") + "\n"
	}

	return out
}

// Result returns the pipeline outcome once the view reports done.
func (m SetupModel) Result() setup.Result {
	return m.result
}

func truncate(s string, max int) string {
	if max < 8 {
		max = 8
	}
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

// Each pump forwards one event and is re-issued by Update after delivery; a
// closed channel ends its pump with a nil message.
func pumpMilestones(ch <-chan setup.Milestone) tea.Cmd {
	return func() tea.Msg {
		m, ok := <-ch
		if !ok {
			return nil
		}
		return MilestoneMsg{Milestone: m}
	}
}

func pumpLogs(ch <-chan setup.LogEvent) tea.Cmd {
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return nil
		}
		return LogLineMsg{Event: e}
	}
}

func pumpDone(ch <-chan setup.Result) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return nil
		}
		return SetupDoneMsg{Result: r}
	}
}
