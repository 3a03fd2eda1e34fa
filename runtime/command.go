// Package runtime launches and supervises the external tools that do the
// actual project work: the scaffold generator, the package manager, the
// component-kit initializer, and the dev server.
package runtime

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
)

// LineSink receives one output line at a time, in emission order. A nil sink
// discards output.
type LineSink func(line string)

// Command describes one external tool invocation.
type Command struct {
	Argv        []string          // argument vector, Argv[0] is the binary
	Dir         string            // working directory, must exist
	Env         map[string]string // overlay merged over the current environment
	Description string            // human-readable label for logs and errors
}

// CommandError reports a tool that exited non-zero or could not be started.
type CommandError struct {
	Description string
	Detail      string // the tool's stderr text, trimmed
	ExitCode    int    // -1 when the process never ran
}

func (e *CommandError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s failed with exit code %d", e.Description, e.ExitCode)
	}
	return fmt.Sprintf("%s failed: %s", e.Description, e.Detail)
}

// Runner executes external commands. Implementations must be safe to stub in
// tests.
type Runner interface {
	// Run executes cmd, streaming each non-empty output line to sink as it
	// is produced. It returns nil only on exit code 0; any other outcome is
	// a *CommandError.
	Run(ctx context.Context, cmd Command, sink LineSink) error

	// RunInteractive behaves like Run and additionally answers interactive
	// prompts: each output line is cleaned of escape sequences and checked
	// against table, and the first matching rule's response is written to
	// the child's stdin.
	RunInteractive(ctx context.Context, cmd Command, table PromptTable, sink LineSink) error

	// Capture runs a short command and returns its trimmed stdout. Used for
	// version probes and other one-line queries.
	Capture(ctx context.Context, argv ...string) (string, error)
}

// ExecRunner is the production Runner backed by os/exec.
type ExecRunner struct{}

// NewExecRunner returns a Runner that spawns real processes.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, cmd Command, sink LineSink) error {
	return r.run(ctx, cmd, nil, sink)
}

// RunInteractive implements Runner.
func (r *ExecRunner) RunInteractive(ctx context.Context, cmd Command, table PromptTable, sink LineSink) error {
	return r.run(ctx, cmd, newPromptMatcher(table), sink)
}

// Capture implements Runner.
func (r *ExecRunner) Capture(ctx context.Context, argv ...string) (string, error) {
	if len(argv) == 0 {
		return "", fmt.Errorf("empty command")
	}
	out, err := exec.CommandContext(ctx, argv[0], argv[1:]...).Output()
	if err != nil {
		return strings.TrimSpace(string(out)), fmt.Errorf("running %s: %w", argv[0], err)
	}
	return strings.TrimSpace(string(out)), nil
}

func (r *ExecRunner) run(ctx context.Context, cmd Command, matcher *promptMatcher, sink LineSink) error {
	if len(cmd.Argv) == 0 {
		return &CommandError{Description: cmd.Description, Detail: "empty argument vector", ExitCode: -1}
	}

	log.WithFields(log.Fields{
		"argv": strings.Join(cmd.Argv, " "),
		"dir":  cmd.Dir,
	}).Debug("running command")

	c := exec.CommandContext(ctx, cmd.Argv[0], cmd.Argv[1:]...)
	c.Dir = cmd.Dir
	c.Env = OverlayEnv(cmd.Env)

	stdout, err := c.StdoutPipe()
	if err != nil {
		return &CommandError{Description: cmd.Description, Detail: fmt.Sprintf("stdout pipe: %v", err), ExitCode: -1}
	}
	stderr, err := c.StderrPipe()
	if err != nil {
		return &CommandError{Description: cmd.Description, Detail: fmt.Sprintf("stderr pipe: %v", err), ExitCode: -1}
	}

	var stdin io.WriteCloser
	if matcher != nil {
		stdin, err = c.StdinPipe()
		if err != nil {
			return &CommandError{Description: cmd.Description, Detail: fmt.Sprintf("stdin pipe: %v", err), ExitCode: -1}
		}
	}

	if err := c.Start(); err != nil {
		return &CommandError{Description: cmd.Description, Detail: err.Error(), ExitCode: -1}
	}

	var errText bytes.Buffer
	var wg sync.WaitGroup
	wg.Add(2)

	// Stderr is captured for the error detail and streamed like stdout so
	// the caller sees combined output live.
	go func() {
		defer wg.Done()
		scanner := newLineScanner(stderr)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			errText.WriteString(line)
			errText.WriteByte('\n')
			emit(sink, line)
		}
	}()

	// Stdout drives prompt matching. Responses go to the child's stdin from
	// this goroutine only; a pipe write needs no separate flush.
	go func() {
		defer wg.Done()
		scanner := newLineScanner(stdout)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if matcher == nil {
				emit(sink, line)
				continue
			}
			clean := StripANSI(line)
			emit(sink, clean)
			if response, ok := matcher.Feed(clean); ok {
				emit(sink, "Responding to prompt")
				if _, werr := io.WriteString(stdin, response); werr != nil {
					log.WithError(werr).Warn("writing prompt response")
				}
			}
		}
	}()

	wg.Wait()
	if stdin != nil {
		stdin.Close() //nolint:errcheck
	}

	if err := c.Wait(); err != nil {
		code := -1
		if ee, ok := err.(*exec.ExitError); ok {
			code = ee.ExitCode()
		}
		detail := strings.TrimSpace(errText.String())
		if detail == "" {
			detail = err.Error()
		}
		return &CommandError{Description: cmd.Description, Detail: detail, ExitCode: code}
	}
	return nil
}

// newLineScanner wraps r with a scanner whose buffer is large enough for the
// very long progress lines package managers emit.
func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return scanner
}

func emit(sink LineSink, line string) {
	if sink != nil {
		sink(line)
	}
}
