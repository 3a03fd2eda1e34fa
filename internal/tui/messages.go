package tui

import "github.com/andytrench/next-express/setup"

// StepBackMsg is emitted by a step when the user navigates back.
type StepBackMsg struct{}

// StepCompleteMsg is emitted by a step when it finishes.
type StepCompleteMsg struct{}

// MilestoneMsg carries the latest pipeline phase label.
type MilestoneMsg struct {
	Milestone setup.Milestone
}

// LogLineMsg carries one live output line from the pipeline.
type LogLineMsg struct {
	Event setup.LogEvent
}

// SetupDoneMsg delivers the pipeline's terminal result.
type SetupDoneMsg struct {
	Result setup.Result
}
