package steps

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andytrench/next-express/config"
	"github.com/andytrench/next-express/internal/tui"
	"github.com/andytrench/next-express/internal/tui/components"
)

// OptionsStep collects the scaffold toggles passed to create-next-app.
type OptionsStep struct {
	selector components.MultiSelect
	complete bool
	chosen   map[string]bool
}

// NewOptionsStep creates the scaffold options step with the defaults of cfg
// pre-checked.
func NewOptionsStep(styles *tui.StyleSet, cfg *config.ProjectConfig) *OptionsStep {
	items := []components.MultiSelectItem{
		{Label: "TypeScript", Value: "typescript", Description: "strict typing via --ts", Checked: cfg.TypeScript},
		{Label: "Tailwind CSS", Value: "tailwind", Description: "utility-first styling, required by shadcn/ui", Checked: cfg.Tailwind},
		{Label: "ESLint", Value: "eslint", Description: "linting with the Next.js preset", Checked: cfg.ESLint},
		{Label: "src/ directory", Value: "src_dir", Description: "keep application code under src/", Checked: cfg.SrcDir},
		{Label: "App Router", Value: "app_router", Description: "app/ router instead of pages/", Checked: cfg.AppRouter},
	}
	return &OptionsStep{
		selector: components.NewMultiSelect(items, styles.ComponentStyles()),
		chosen:   map[string]bool{},
	}
}

func (s *OptionsStep) Title() string { return "Scaffold Options" }

func (s *OptionsStep) Init() tea.Cmd {
	return s.selector.Init()
}

func (s *OptionsStep) Update(msg tea.Msg) (tui.Step, tea.Cmd) {
	if s.complete {
		return s, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "backspace" {
		return s, func() tea.Msg { return tui.StepBackMsg{} }
	}

	updated, cmd := s.selector.Update(msg)
	s.selector = updated

	if s.selector.Done() {
		s.complete = true
		for _, v := range s.selector.SelectedValues() {
			s.chosen[v] = true
		}
		return s, func() tea.Msg { return tui.StepCompleteMsg{} }
	}

	return s, cmd
}

func (s *OptionsStep) View(width int) string {
	return s.selector.View(width)
}

func (s *OptionsStep) Summary() string {
	labels := s.selector.SelectedLabels()
	if len(labels) == 0 {
		return "plain JavaScript"
	}
	return strings.Join(labels, ", ")
}

func (s *OptionsStep) Apply(cfg *config.ProjectConfig) {
	cfg.TypeScript = s.chosen["typescript"]
	cfg.Tailwind = s.chosen["tailwind"]
	cfg.ESLint = s.chosen["eslint"]
	cfg.SrcDir = s.chosen["src_dir"]
	cfg.AppRouter = s.chosen["app_router"]
}
