package runtime

import (
	"context"
	"errors"
	goruntime "runtime"
	"strings"
	"sync"
	"testing"
)

func requirePOSIX(t *testing.T) {
	t.Helper()
	if goruntime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

// lineCollector is a LineSink safe for the runner's stream goroutines.
type lineCollector struct {
	mu    sync.Mutex
	lines []string
}

func (c *lineCollector) sink(line string) {
	c.mu.Lock()
	c.lines = append(c.lines, line)
	c.mu.Unlock()
}

func (c *lineCollector) all() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.lines...)
}

func (c *lineCollector) contains(sub string) bool {
	for _, l := range c.all() {
		if strings.Contains(l, sub) {
			return true
		}
	}
	return false
}

func TestExecRunner_StreamsLines(t *testing.T) {
	requirePOSIX(t)
	var out lineCollector

	cmd := Command{
		Argv:        []string{"sh", "-c", "echo one; echo two; echo err-line >&2"},
		Dir:         t.TempDir(),
		Description: "Listing",
	}
	if err := NewExecRunner().Run(context.Background(), cmd, out.sink); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := out.all()
	oneIdx, twoIdx := -1, -1
	for i, l := range lines {
		switch l {
		case "one":
			oneIdx = i
		case "two":
			twoIdx = i
		}
	}
	if oneIdx < 0 || twoIdx < 0 || oneIdx > twoIdx {
		t.Errorf("stdout lines out of order: %v", lines)
	}
	if !out.contains("err-line") {
		t.Errorf("stderr not streamed: %v", lines)
	}
}

func TestExecRunner_EnvOverlayWins(t *testing.T) {
	requirePOSIX(t)
	t.Setenv("NEXT_EXPRESS_TEST_VAR", "inherited")
	var out lineCollector

	cmd := Command{
		Argv:        []string{"sh", "-c", "echo val=$NEXT_EXPRESS_TEST_VAR"},
		Dir:         t.TempDir(),
		Env:         map[string]string{"NEXT_EXPRESS_TEST_VAR": "overlaid"},
		Description: "Env check",
	}
	if err := NewExecRunner().Run(context.Background(), cmd, out.sink); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.contains("val=overlaid") {
		t.Errorf("overlay did not win: %v", out.all())
	}
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	requirePOSIX(t)

	cmd := Command{
		Argv:        []string{"sh", "-c", "echo boom >&2; exit 3"},
		Dir:         t.TempDir(),
		Description: "Exploding",
	}
	err := NewExecRunner().Run(context.Background(), cmd, nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var ce *CommandError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want *CommandError", err)
	}
	if ce.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", ce.ExitCode)
	}
	if ce.Description != "Exploding" {
		t.Errorf("Description = %q, want Exploding", ce.Description)
	}
	if !strings.Contains(ce.Detail, "boom") {
		t.Errorf("Detail = %q, want stderr text", ce.Detail)
	}
}

func TestExecRunner_MissingBinary(t *testing.T) {
	cmd := Command{
		Argv:        []string{"definitely-no-such-binary-0b9f"},
		Description: "Ghost",
	}
	err := NewExecRunner().Run(context.Background(), cmd, nil)

	var ce *CommandError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want *CommandError", err)
	}
	if ce.ExitCode != -1 {
		t.Errorf("ExitCode = %d, want -1 for spawn failure", ce.ExitCode)
	}
}

func TestExecRunner_EmptyArgv(t *testing.T) {
	err := NewExecRunner().Run(context.Background(), Command{Description: "Empty"}, nil)
	var ce *CommandError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want *CommandError", err)
	}
}

func TestExecRunner_Capture(t *testing.T) {
	requirePOSIX(t)

	out, err := NewExecRunner().Capture(context.Background(), "sh", "-c", "echo '  v20.11.0  '")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "v20.11.0" {
		t.Errorf("Capture = %q, want trimmed v20.11.0", out)
	}

	if _, err := NewExecRunner().Capture(context.Background(), "sh", "-c", "exit 1"); err == nil {
		t.Error("expected error for non-zero exit")
	}
}

func TestCommandError_Error(t *testing.T) {
	withDetail := &CommandError{Description: "Building project", Detail: "missing module", ExitCode: 1}
	if got := withDetail.Error(); got != "Building project failed: missing module" {
		t.Errorf("Error() = %q", got)
	}

	bare := &CommandError{Description: "Building project", ExitCode: 2}
	if got := bare.Error(); !strings.Contains(got, "exit code 2") {
		t.Errorf("Error() = %q, want exit code mention", got)
	}
}
