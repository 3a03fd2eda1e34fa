// Package steps holds the wizard screens that collect one project config
// each, in presentation order.
package steps

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andytrench/next-express/config"
	"github.com/andytrench/next-express/internal/tui"
	"github.com/andytrench/next-express/internal/tui/components"
)

type namePhase int

const (
	namePhaseName namePhase = iota
	namePhaseDirectory
)

// NameStep collects the project name and target directory.
type NameStep struct {
	styles   *tui.StyleSet
	phase    namePhase
	input    components.TextInput
	complete bool
	name     string
	dir      string
}

// NewNameStep creates the name step, pre-filling from flag values.
func NewNameStep(styles *tui.StyleSet, prefillName, prefillDir string) *NameStep {
	s := &NameStep{styles: styles, name: prefillName, dir: prefillDir}
	s.input = s.nameInput()
	if prefillName != "" {
		s.input.SetValue(prefillName)
	}
	return s
}

func (s *NameStep) nameInput() components.TextInput {
	validate := func(val string) error {
		if val == "" {
			return fmt.Errorf("name is required")
		}
		if !config.ValidName(val) {
			return fmt.Errorf("use lowercase letters, digits, '.', '_' or '-'")
		}
		return nil
	}
	return components.NewTextInput(
		"What should we call your project?",
		"my-app",
		"the npm package name and the project directory",
		validate,
		s.styles.ComponentStyles(),
	)
}

func (s *NameStep) dirInput() components.TextInput {
	validate := func(val string) error {
		if val == "" {
			return fmt.Errorf("directory is required")
		}
		info, err := os.Stat(val)
		if err != nil {
			return fmt.Errorf("directory does not exist")
		}
		if !info.IsDir() {
			return fmt.Errorf("not a directory")
		}
		return nil
	}
	wd, _ := os.Getwd()
	input := components.NewTextInput(
		"Where should the project be created?",
		wd,
		"the project is scaffolded as a subdirectory of this path",
		validate,
		s.styles.ComponentStyles(),
	)
	if s.dir != "" {
		input.SetValue(s.dir)
	} else {
		input.SetValue(wd)
	}
	return input
}

func (s *NameStep) Title() string { return "Project" }

func (s *NameStep) Init() tea.Cmd {
	return s.input.Init()
}

func (s *NameStep) Update(msg tea.Msg) (tui.Step, tea.Cmd) {
	if s.complete {
		return s, nil
	}

	updated, cmd := s.input.Update(msg)
	s.input = updated

	if s.input.Done() {
		switch s.phase {
		case namePhaseName:
			s.name = s.input.Value()
			s.phase = namePhaseDirectory
			s.input = s.dirInput()
			return s, s.input.Init()
		case namePhaseDirectory:
			s.dir = s.input.Value()
			s.complete = true
			return s, func() tea.Msg { return tui.StepCompleteMsg{} }
		}
	}

	return s, cmd
}

func (s *NameStep) View(width int) string {
	return s.input.View(width)
}

func (s *NameStep) Summary() string {
	return filepath.Join(s.dir, s.name)
}

func (s *NameStep) Apply(cfg *config.ProjectConfig) {
	cfg.Name = s.name
	cfg.Directory = s.dir
}
