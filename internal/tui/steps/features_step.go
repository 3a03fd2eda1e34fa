package steps

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andytrench/next-express/config"
	"github.com/andytrench/next-express/internal/tui"
	"github.com/andytrench/next-express/internal/tui/components"
)

var featureItems = []components.MultiSelectItem{
	{Label: "Redux Toolkit", Value: "redux", Description: "@reduxjs/toolkit + react-redux"},
	{Label: "Axios", Value: "axios", Description: "promise-based HTTP client"},
	{Label: "React Router", Value: "router", Description: "react-router-dom"},
	{Label: "NextAuth.js", Value: "auth", Description: "authentication for Next.js"},
	{Label: "Prisma", Value: "prisma", Description: "typed database ORM"},
	{Label: "Form handling", Value: "forms", Description: "react-hook-form + zod"},
	{Label: "TanStack Query", Value: "query", Description: "server-state management"},
}

// FeaturesStep collects the optional feature packages to install.
type FeaturesStep struct {
	selector components.MultiSelect
	complete bool
	features []string
}

// NewFeaturesStep creates the feature selection step.
func NewFeaturesStep(styles *tui.StyleSet, cfg *config.ProjectConfig) *FeaturesStep {
	items := make([]components.MultiSelectItem, len(featureItems))
	copy(items, featureItems)
	for i := range items {
		items[i].Checked = cfg.HasFeature(items[i].Value)
	}
	return &FeaturesStep{selector: components.NewMultiSelect(items, styles.ComponentStyles())}
}

func (s *FeaturesStep) Title() string { return "Extra Features" }

func (s *FeaturesStep) Init() tea.Cmd {
	return s.selector.Init()
}

func (s *FeaturesStep) Update(msg tea.Msg) (tui.Step, tea.Cmd) {
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
		s.features = s.selector.SelectedValues()
		return s, func() tea.Msg { return tui.StepCompleteMsg{} }
	}

	return s, cmd
}

func (s *FeaturesStep) View(width int) string {
	return s.selector.View(width)
}

func (s *FeaturesStep) Summary() string {
	if len(s.features) == 0 {
		return "none"
	}
	return strings.Join(s.features, ", ")
}

func (s *FeaturesStep) Apply(cfg *config.ProjectConfig) {
	cfg.Features = s.features
}
