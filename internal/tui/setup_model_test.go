package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andytrench/next-express/setup"
)

func newTestSetupModel() SetupModel {
	return NewSetupModel(NewStyleSet(DarkTheme), nil)
}

func TestSetupModel_LogTailIsBounded(t *testing.T) {
	var model tea.Model = newTestSetupModel()

	for i := 0; i < logTailSize*3; i++ {
		model, _ = model.Update(LogLineMsg{Event: setup.LogEvent{Time: time.Now(), Line: "line"}})
	}

	if got := len(model.(SetupModel).tail); got != logTailSize {
		t.Errorf("tail = %d lines, want %d", got, logTailSize)
	}
}

func TestSetupModel_MilestoneOverwrites(t *testing.T) {
	m := newTestSetupModel()
	m.milestone = "Checking dependencies..."
	m.milestone = "Creating Next.js project structure..."

	view := m.View()
	if strings.Contains(view, "Checking dependencies") {
		t.Error("previous milestone still rendered")
	}
	if !strings.Contains(view, "Creating Next.js project structure...") {
		t.Error("latest milestone missing from view")
	}
}

func TestSetupModel_DoneRendersResult(t *testing.T) {
	m := newTestSetupModel()

	updated, _ := m.Update(SetupDoneMsg{Result: setup.Result{Message: "Project created successfully!"}})
	done := updated.(SetupModel)
	if !strings.Contains(done.View(), "Project created successfully!") {
		t.Error("success message missing from view")
	}

	updated, _ = m.Update(SetupDoneMsg{Result: setup.Result{
		Err:     setup.NewSetupError(setup.CodeCommandFailed, "Building project", nil),
		Message: "Error: Building project",
	}})
	failed := updated.(SetupModel)
	if !strings.Contains(failed.View(), "Error: Building project") {
		t.Error("failure message missing from view")
	}
}

func TestSetupModel_LogEventAppends(t *testing.T) {
	m := newTestSetupModel()

	updated, _ := m.Update(LogLineMsg{Event: setup.LogEvent{Time: time.Now(), Line: "npm notice"}})
	if got := updated.(SetupModel).tail; len(got) != 1 || got[0] != "npm notice" {
		t.Errorf("tail = %v, want [npm notice]", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 40); got != "short" {
		t.Errorf("truncate = %q", got)
	}
	long := strings.Repeat("x", 50)
	if got := truncate(long, 20); len(got) <= 0 || len(got) > len(long) {
		t.Errorf("truncate returned %q", got)
	}
}
