package steps

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andytrench/next-express/config"
	"github.com/andytrench/next-express/internal/tui"
	"github.com/andytrench/next-express/internal/tui/components"
)

// ReviewStep shows the collected configuration and asks for confirmation.
// The pipeline itself runs after the wizard exits.
type ReviewStep struct {
	styles   *tui.StyleSet
	summary  components.SummaryBox
	complete bool
	kbd      components.KbdHint
}

// NewReviewStep creates the review step.
func NewReviewStep(styles *tui.StyleSet) *ReviewStep {
	return &ReviewStep{
		styles: styles,
		kbd:    components.NewKbdHint(styles.KbdKey, styles.KbdDesc, components.ReviewHints()),
	}
}

// Prepare builds the summary from the config collected so far.
func (s *ReviewStep) Prepare(cfg *config.ProjectConfig) {
	s.complete = false

	rows := []components.SummaryRow{
		{Key: "Project", Value: cfg.ProjectPath()},
		{Key: "Style", Value: cfg.Style + " · " + cfg.BaseColor},
	}

	var toggles []string
	for _, t := range []struct {
		on    bool
		label string
	}{
		{cfg.TypeScript, "TypeScript"},
		{cfg.Tailwind, "Tailwind"},
		{cfg.ESLint, "ESLint"},
		{cfg.SrcDir, "src/"},
		{cfg.AppRouter, "App Router"},
	} {
		if t.on {
			toggles = append(toggles, t.label)
		}
	}
	if len(toggles) > 0 {
		rows = append(rows, components.SummaryRow{Key: "Scaffold", Value: strings.Join(toggles, ", ")})
	}
	if len(cfg.Features) > 0 {
		rows = append(rows, components.SummaryRow{Key: "Features", Value: strings.Join(cfg.Features, ", ")})
	}

	var actions []string
	for _, a := range []struct {
		on    bool
		label string
	}{
		{cfg.GitInit, "git init"},
		{cfg.RunBuild, "build"},
		{cfg.OpenEditor, "editor"},
		{cfg.StartDevServer, "dev server"},
		{cfg.OpenBrowser, "browser"},
	} {
		if a.on {
			actions = append(actions, a.label)
		}
	}
	if len(actions) > 0 {
		rows = append(rows, components.SummaryRow{Key: "Afterwards", Value: strings.Join(actions, ", ")})
	}

	s.summary = components.NewSummaryBox(rows, s.styles.ComponentStyles())
}

func (s *ReviewStep) Title() string { return "Review & Create" }

func (s *ReviewStep) Init() tea.Cmd {
	return nil
}

func (s *ReviewStep) Update(msg tea.Msg) (tui.Step, tea.Cmd) {
	if s.complete {
		return s, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			s.complete = true
			return s, func() tea.Msg { return tui.StepCompleteMsg{} }
		case "backspace":
			return s, func() tea.Msg { return tui.StepBackMsg{} }
		}
	}
	return s, nil
}

func (s *ReviewStep) View(width int) string {
	out := s.summary.View(width) + "\n\n"
	out += "  " + s.styles.AccentTxt.Render("Press Enter to create the project, Backspace to go back") + "\n\n"
	out += s.kbd.View()
	return out
}

func (s *ReviewStep) Summary() string {
	return "confirmed"
}

func (s *ReviewStep) Apply(cfg *config.ProjectConfig) {
	// Nothing to apply; creation happens after the wizard exits.
}
