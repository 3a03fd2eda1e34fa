package setup

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/andytrench/next-express/config"
	"github.com/andytrench/next-express/runtime"
)

// scriptedRunner records every invocation in order and fails commands whose
// description appears in failOn. Capture answers from a canned table.
type scriptedRunner struct {
	responses map[string]string
	failOn    map[string]string // description -> stderr detail
	commands  []runtime.Command
}

func (f *scriptedRunner) Run(_ context.Context, cmd runtime.Command, sink runtime.LineSink) error {
	f.commands = append(f.commands, cmd)
	if detail, ok := f.failOn[cmd.Description]; ok {
		return &runtime.CommandError{Description: cmd.Description, Detail: detail, ExitCode: 1}
	}
	if sink != nil {
		sink("done: " + cmd.Description)
	}
	return nil
}

func (f *scriptedRunner) RunInteractive(ctx context.Context, cmd runtime.Command, _ runtime.PromptTable, sink runtime.LineSink) error {
	return f.Run(ctx, cmd, sink)
}

func (f *scriptedRunner) Capture(_ context.Context, argv ...string) (string, error) {
	key := strings.Join(argv, " ")
	out, ok := f.responses[key]
	if !ok {
		return "", fmt.Errorf("running %s: not found", argv[0])
	}
	return out, nil
}

func (f *scriptedRunner) descriptions() []string {
	var out []string
	for _, cmd := range f.commands {
		out = append(out, cmd.Description)
	}
	return out
}

func healthyToolchain() map[string]string {
	return map[string]string{
		"node --version":              "v20.11.1",
		"npm --version":               "10.2.4",
		"npm list -g next":            "next@15.0.0",
		"npm list -g create-next-app": "create-next-app@15.0.0",
		"npm list -g typescript":      "typescript@5.6.2",
		"git --version":               "git version 2.44.0",
	}
}

func testConfig(t *testing.T) *config.ProjectConfig {
	t.Helper()
	cfg := config.Default()
	cfg.Name = "my-app"
	cfg.Directory = t.TempDir()
	cfg.OpenBrowser = false
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return cfg
}

// runToDone executes the pipeline, drains all three channels, and returns
// the final result plus the milestones seen in order.
func runToDone(t *testing.T, runner *scriptedRunner, cfg *config.ProjectConfig) (Result, []Milestone) {
	t.Helper()
	session := NewSequencerWith(runner).Execute(context.Background(), cfg)

	var milestones []Milestone
	var result Result
	timeout := time.After(5 * time.Second)
	logsOpen, milestonesOpen, doneOpen := true, true, true
	for logsOpen || milestonesOpen || doneOpen {
		select {
		case _, ok := <-session.Logs:
			logsOpen = ok
		case m, ok := <-session.Milestones:
			if ok {
				milestones = append(milestones, m)
			}
			milestonesOpen = ok
		case res, ok := <-session.Done:
			if ok {
				result = res
			}
			doneOpen = ok
		case <-timeout:
			t.Fatal("pipeline did not finish")
		}
	}
	return result, milestones
}

func TestExecute_StepOrderInvariant(t *testing.T) {
	cfg := testConfig(t)
	cfg.Features = []string{"axios", "redux"}
	cfg.GitInit = true
	cfg.RunBuild = true
	cfg.OpenEditor = true

	runner := &scriptedRunner{responses: healthyToolchain()}
	result, _ := runToDone(t, runner, cfg)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}

	want := []string{
		"Creating Next.js project",
		"Installing redux", // canonical feature order, not config order
		"Installing axios",
		"Installing dependencies",
		"Initializing shadcn/ui",
		"Initializing Git",
		"Building project",
		"Opening VS Code",
	}
	got := runner.descriptions()
	if len(got) != len(want) {
		t.Fatalf("descriptions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExecute_MinimalConfigRunsOnlyRequiredSteps(t *testing.T) {
	cfg := testConfig(t)

	runner := &scriptedRunner{responses: healthyToolchain()}
	result, _ := runToDone(t, runner, cfg)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}

	// Dependency check, scaffold, and component-kit init are mandatory;
	// everything else is off by default.
	want := []string{
		"Creating Next.js project",
		"Installing dependencies",
		"Initializing shadcn/ui",
	}
	got := runner.descriptions()
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("descriptions = %v, want %v", got, want)
	}
}

func TestExecute_ScaffoldFailureAbortsPipeline(t *testing.T) {
	cfg := testConfig(t)
	cfg.Features = []string{"axios"}
	cfg.GitInit = true
	cfg.RunBuild = true

	runner := &scriptedRunner{
		responses: healthyToolchain(),
		failOn:    map[string]string{"Creating Next.js project": "ENOENT"},
	}
	result, _ := runToDone(t, runner, cfg)
	if result.Err == nil {
		t.Fatal("expected failure")
	}
	if CodeOf(result.Err) != CodeCommandFailed {
		t.Errorf("code = %q, want %q", CodeOf(result.Err), CodeCommandFailed)
	}
	if !strings.Contains(result.Err.Error(), "Creating Next.js project") {
		t.Errorf("error = %v, want scaffold description", result.Err)
	}

	got := runner.descriptions()
	if len(got) != 1 {
		t.Errorf("steps after failure = %v, want scaffold only", got)
	}
}

func TestExecute_MissingDependenciesFailsBeforeScaffold(t *testing.T) {
	cfg := testConfig(t)

	runner := &scriptedRunner{responses: map[string]string{}}
	result, _ := runToDone(t, runner, cfg)
	if CodeOf(result.Err) != CodeDepsMissing {
		t.Fatalf("code = %q, want %q", CodeOf(result.Err), CodeDepsMissing)
	}
	if len(runner.commands) != 0 {
		t.Errorf("commands = %v, want none", runner.descriptions())
	}
}

func TestExecute_FailureResultCarriesCommandError(t *testing.T) {
	cfg := testConfig(t)
	runner := &scriptedRunner{
		responses: healthyToolchain(),
		failOn:    map[string]string{"Initializing shadcn/ui": "conflicting peer dependency"},
	}
	result, _ := runToDone(t, runner, cfg)

	var ce *runtime.CommandError
	if !errors.As(result.Err, &ce) {
		t.Fatalf("error = %v, want wrapped CommandError", result.Err)
	}
	if ce.Detail != "conflicting peer dependency" {
		t.Errorf("Detail = %q", ce.Detail)
	}
}

func TestExecute_MilestonesInPipelineOrder(t *testing.T) {
	cfg := testConfig(t)
	cfg.GitInit = true

	runner := &scriptedRunner{responses: healthyToolchain()}
	_, milestones := runToDone(t, runner, cfg)

	want := []Milestone{
		"Checking dependencies...",
		"Creating Next.js project structure...",
		"Setting up shadcn/ui components...",
		"Initializing Git repository...",
		"Project creation completed! 🚀",
	}
	var got []Milestone
	for _, m := range milestones {
		for _, w := range want {
			if m == w {
				got = append(got, m)
			}
		}
	}
	if len(got) != len(want) {
		t.Fatalf("milestones = %v, want %v present in order", milestones, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("milestone %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSession_StopDevServerWithoutStartIsNoop(t *testing.T) {
	cfg := testConfig(t)
	runner := &scriptedRunner{responses: healthyToolchain()}
	session := NewSequencerWith(runner).Execute(context.Background(), cfg)
	for range session.Logs {
	}
	<-session.Done

	session.StopDevServer() // must not panic or block
	if session.DevServerState() != runtime.StateIdle {
		t.Errorf("state = %v, want idle", session.DevServerState())
	}
}
