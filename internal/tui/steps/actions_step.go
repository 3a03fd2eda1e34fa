package steps

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andytrench/next-express/config"
	"github.com/andytrench/next-express/internal/tui"
	"github.com/andytrench/next-express/internal/tui/components"
)

// ActionsStep collects the post-creation actions.
type ActionsStep struct {
	selector components.MultiSelect
	complete bool
	chosen   map[string]bool
}

// NewActionsStep creates the post-creation actions step.
func NewActionsStep(styles *tui.StyleSet, cfg *config.ProjectConfig) *ActionsStep {
	items := []components.MultiSelectItem{
		{Label: "Initialize Git repository", Value: "git", Checked: cfg.GitInit},
		{Label: "Run production build", Value: "build", Description: "npm run build after setup", Checked: cfg.RunBuild},
		{Label: "Open in VS Code", Value: "editor", Checked: cfg.OpenEditor},
		{Label: "Start dev server", Value: "dev", Description: "npm run dev, kept running after setup", Checked: cfg.StartDevServer},
		{Label: "Open browser when ready", Value: "browser", Description: "needs the dev server", Checked: cfg.OpenBrowser},
	}
	return &ActionsStep{
		selector: components.NewMultiSelect(items, styles.ComponentStyles()),
		chosen:   map[string]bool{},
	}
}

func (s *ActionsStep) Title() string { return "After Creation" }

func (s *ActionsStep) Init() tea.Cmd {
	return s.selector.Init()
}

func (s *ActionsStep) Update(msg tea.Msg) (tui.Step, tea.Cmd) {
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

func (s *ActionsStep) View(width int) string {
	return s.selector.View(width)
}

func (s *ActionsStep) Summary() string {
	labels := s.selector.SelectedLabels()
	if len(labels) == 0 {
		return "nothing, just scaffold"
	}
	return strings.Join(labels, ", ")
}

func (s *ActionsStep) Apply(cfg *config.ProjectConfig) {
	cfg.GitInit = s.chosen["git"]
	cfg.RunBuild = s.chosen["build"]
	cfg.OpenEditor = s.chosen["editor"]
	cfg.StartDevServer = s.chosen["dev"]
	cfg.OpenBrowser = s.chosen["browser"] && s.chosen["dev"]
}
