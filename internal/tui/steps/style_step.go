package steps

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andytrench/next-express/config"
	"github.com/andytrench/next-express/internal/tui"
	"github.com/andytrench/next-express/internal/tui/components"
)

type stylePhase int

const (
	stylePhaseStyle stylePhase = iota
	stylePhaseColor
	stylePhaseTheming
)

// StyleStep collects the component-kit look: style, base color, CSS
// variables, and the peer-dependency resolution mode.
type StyleStep struct {
	styles   *tui.StyleSet
	phase    stylePhase
	selector components.SingleSelect
	complete bool

	style       string
	baseColor   string
	cssVars     bool
	reactCompat string
}

// NewStyleStep creates the component-kit style step.
func NewStyleStep(styles *tui.StyleSet, cfg *config.ProjectConfig) *StyleStep {
	s := &StyleStep{
		styles:      styles,
		style:       cfg.Style,
		baseColor:   cfg.BaseColor,
		cssVars:     cfg.CSSVariables,
		reactCompat: cfg.ReactCompat,
	}
	s.selector = s.styleSelector()
	return s
}

func (s *StyleStep) styleSelector() components.SingleSelect {
	var items []components.SingleSelectItem
	for _, style := range config.Styles {
		items = append(items, components.SingleSelectItem{Label: style, Value: style})
	}
	sel := components.NewSingleSelect(items, s.styles.ComponentStyles())
	sel.Preselect(s.style)
	return sel
}

func (s *StyleStep) colorSelector() components.SingleSelect {
	var items []components.SingleSelectItem
	for _, color := range config.BaseColors {
		items = append(items, components.SingleSelectItem{Label: color, Value: color})
	}
	sel := components.NewSingleSelect(items, s.styles.ComponentStyles())
	sel.Preselect(s.baseColor)
	return sel
}

func (s *StyleStep) themingSelector() components.SingleSelect {
	items := []components.SingleSelectItem{
		{Label: "CSS variables", Value: "css-vars", Description: "theme via custom properties, recommended"},
		{Label: "Tailwind utility classes", Value: "classes", Description: "no CSS variables"},
	}
	sel := components.NewSingleSelect(items, s.styles.ComponentStyles())
	if !s.cssVars {
		sel.Preselect("classes")
	}
	return sel
}

func (s *StyleStep) Title() string { return "Component Kit" }

func (s *StyleStep) Init() tea.Cmd {
	return s.selector.Init()
}

func (s *StyleStep) Update(msg tea.Msg) (tui.Step, tea.Cmd) {
	if s.complete {
		return s, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "backspace" && s.phase == stylePhaseStyle {
		return s, func() tea.Msg { return tui.StepBackMsg{} }
	}

	updated, cmd := s.selector.Update(msg)
	s.selector = updated

	if s.selector.Done() {
		switch s.phase {
		case stylePhaseStyle:
			s.style = s.selector.Selected()
			s.phase = stylePhaseColor
			s.selector = s.colorSelector()
			return s, s.selector.Init()
		case stylePhaseColor:
			s.baseColor = s.selector.Selected()
			s.phase = stylePhaseTheming
			s.selector = s.themingSelector()
			return s, s.selector.Init()
		case stylePhaseTheming:
			s.cssVars = s.selector.Selected() == "css-vars"
			s.complete = true
			return s, func() tea.Msg { return tui.StepCompleteMsg{} }
		}
	}

	return s, cmd
}

func (s *StyleStep) View(width int) string {
	var label string
	switch s.phase {
	case stylePhaseStyle:
		label = "Which style would you like to use?"
	case stylePhaseColor:
		label = "Which color would you like to use as the base color?"
	case stylePhaseTheming:
		label = "Would you like to use CSS variables for theming?"
	}
	return "\n  " + s.styles.AccentTxt.Render(label) + "\n\n" + s.selector.View(width)
}

func (s *StyleStep) Summary() string {
	theming := "CSS variables"
	if !s.cssVars {
		theming = "utility classes"
	}
	return fmt.Sprintf("%s · %s · %s", s.style, s.baseColor, theming)
}

func (s *StyleStep) Apply(cfg *config.ProjectConfig) {
	cfg.Style = s.style
	cfg.BaseColor = s.baseColor
	cfg.CSSVariables = s.cssVars
	cfg.ReactCompat = s.reactCompat
}
