// Package tui renders the interactive wizard and the live setup view with
// Bubble Tea. The wizard writes into a ProjectConfig; the setup view
// consumes the three event streams of a running setup session.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andytrench/next-express/config"
)

// WizardModel is the top-level bubbletea model that walks the user through
// the project configuration steps, writing each answer into cfg.
type WizardModel struct {
	styles  *StyleSet
	steps   []Step
	current int
	cfg     *config.ProjectConfig
	width   int
	height  int
	done    bool
	err     error
	version string
}

// NewWizardModel creates a wizard over cfg with the given steps.
func NewWizardModel(styles *StyleSet, steps []Step, cfg *config.ProjectConfig, version string) WizardModel {
	return WizardModel{
		styles:  styles,
		steps:   steps,
		cfg:     cfg,
		width:   80,
		height:  24,
		version: version,
	}
}

// Init initializes the first step.
func (w WizardModel) Init() tea.Cmd {
	if len(w.steps) > 0 {
		return w.steps[0].Init()
	}
	return nil
}

// advanceStep applies the current step's data and moves to the next one.
func (w *WizardModel) advanceStep() tea.Cmd {
	if w.current < len(w.steps) {
		w.steps[w.current].Apply(w.cfg)
	}

	w.current++
	if w.current >= len(w.steps) {
		w.done = true
		return tea.Quit
	}

	if preparer, ok := w.steps[w.current].(interface {
		Prepare(cfg *config.ProjectConfig)
	}); ok {
		preparer.Prepare(w.cfg)
	}
	return w.steps[w.current].Init()
}

// Update handles messages for the wizard.
func (w WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = msg.Height
		return w, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "esc" {
			w.err = fmt.Errorf("wizard cancelled")
			return w, tea.Quit
		}

	case StepBackMsg:
		if w.current > 0 {
			w.current--
			return w, w.steps[w.current].Init()
		}
		return w, nil

	case StepCompleteMsg:
		// The sole path for step advancement.
		cmd := w.advanceStep()
		return w, cmd
	}

	if w.current < len(w.steps) {
		updated, cmd := w.steps[w.current].Update(msg)
		w.steps[w.current] = updated
		return w, cmd
	}

	return w, nil
}

// View renders the entire wizard UI.
func (w WizardModel) View() string {
	var out string

	out += "\n" + RenderBanner(w.styles, w.version, w.width)
	out += RenderProgress(w.steps, w.current, w.styles, w.width)
	out += "\n"

	if w.current < len(w.steps) {
		out += w.steps[w.current].View(w.width)
	}
	out += "\n"

	return out
}

// Err returns any error that occurred during the wizard.
func (w WizardModel) Err() error {
	return w.err
}

// Done reports whether the wizard completed all steps.
func (w WizardModel) Done() bool {
	return w.done
}
