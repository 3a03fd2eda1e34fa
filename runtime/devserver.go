package runtime

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// LaunchState tracks a Launcher through its lifecycle.
type LaunchState int32

// Launcher states. There is no transition out of StateStopped; starting
// again takes a fresh Launcher.
const (
	StateIdle LaunchState = iota
	StateStarting
	StateReady
	StateTimedOut
	StateStopped
)

func (s LaunchState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStarting:
		return "starting"
	case StateReady:
		return "ready"
	case StateTimedOut:
		return "timed-out"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// readyMarkers are the dev server's readiness announcements across the
// framework versions in the wild.
var readyMarkers = []string{"ready - started server on", "Local:"}

const defaultDevPort = 3000

// Launcher starts the project's dev server, watches its output for the
// readiness marker, and terminates it on demand. The child handle is owned
// by the Launcher alone and intentionally outlives the setup sequence that
// created it; the controlling session must call Stop before exiting.
type Launcher struct {
	// AllowBroadKill additionally terminates every process whose command
	// line matches the dev-server name on Stop. POSIX only, and off by
	// default because it takes unrelated same-named processes with it.
	AllowBroadKill bool

	command      []string
	readyTimeout time.Duration
	settleDelay  time.Duration
	openURL      func(url string) error

	mu    sync.Mutex
	cmd   *exec.Cmd
	state LaunchState
	port  int
}

// NewLauncher returns a Launcher for the standard dev-server command.
func NewLauncher() *Launcher {
	return &Launcher{
		command:      []string{"npm", "run", "dev"},
		readyTimeout: 30 * time.Second,
		settleDelay:  2 * time.Second,
		openURL:      OpenBrowser,
	}
}

// State returns the current lifecycle state.
func (l *Launcher) State() LaunchState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Port returns the port parsed from the readiness line, or 0 before Ready.
func (l *Launcher) Port() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.port
}

// Start spawns the dev server in projectDir and waits for its readiness
// marker. The wait is bounded: if the marker does not appear in time the
// server is left running and Start returns nil with the Launcher in
// StateTimedOut, since a slow server is not a failure. The child process is
// deliberately not bound to ctx; ctx bounds only the readiness wait.
func (l *Launcher) Start(ctx context.Context, projectDir string, openBrowser bool, sink LineSink) error {
	l.mu.Lock()
	if l.state != StateIdle {
		l.mu.Unlock()
		return fmt.Errorf("dev server launcher already used (state %s)", l.state)
	}
	l.state = StateStarting

	cmd := exec.Command(l.command[0], l.command[1:]...)
	cmd.Dir = projectDir

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		l.state = StateIdle
		l.mu.Unlock()
		return fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		l.state = StateIdle
		l.mu.Unlock()
		return fmt.Errorf("stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		l.state = StateIdle
		l.mu.Unlock()
		return fmt.Errorf("starting dev server: %w", err)
	}
	l.cmd = cmd
	l.mu.Unlock()

	lines := make(chan string, 64)
	var wg sync.WaitGroup
	wg.Add(2)
	go scanInto(stdout, lines, &wg)
	go scanInto(stderr, lines, &wg)
	go func() {
		wg.Wait()
		close(lines)
	}()

	deadline := time.After(l.readyTimeout)
	for {
		select {
		case <-ctx.Done():
			go drain(lines, sink)
			return fmt.Errorf("waiting for dev server: %w", ctx.Err())

		case <-deadline:
			l.setState(StateTimedOut)
			emit(sink, "Dev server did not confirm readiness in time; it may still be starting")
			log.WithField("timeout", l.readyTimeout).Warn("dev server readiness timeout")
			go drain(lines, sink)
			return nil

		case line, ok := <-lines:
			if !ok {
				// Server exited before announcing readiness. Soft failure,
				// same as the timeout path.
				l.setState(StateTimedOut)
				emit(sink, "Dev server exited before confirming readiness")
				log.Warn("dev server exited before readiness marker")
				return nil
			}
			emit(sink, line)
			if !isReadyLine(line) {
				continue
			}

			port := parsePort(line)
			l.mu.Lock()
			l.port = port
			l.state = StateReady
			l.mu.Unlock()

			emit(sink, fmt.Sprintf("Development server is ready on port %d", port))
			time.Sleep(l.settleDelay)
			if openBrowser {
				url := fmt.Sprintf("http://localhost:%d", port)
				emit(sink, "Opening "+url)
				if err := l.openURL(url); err != nil {
					log.WithError(err).Warn("opening browser")
				}
			}
			go drain(lines, sink)
			return nil
		}
	}
}

// Stop terminates a started dev server: interrupt the tracked child, wait up
// to five seconds, then kill it. With AllowBroadKill set, every process
// matching the dev-server name is terminated first, restoring the legacy
// sweep. Errors are logged, never returned, and calling Stop without a
// started server is a no-op.
func (l *Launcher) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cmd == nil || l.cmd.Process == nil || l.state == StateStopped {
		return
	}

	if l.AllowBroadKill {
		broadKill("next")
	}

	if err := l.cmd.Process.Signal(os.Interrupt); err != nil {
		log.WithError(err).Debug("interrupting dev server")
	}

	done := make(chan error, 1)
	go func() { done <- l.cmd.Wait() }()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		if err := l.cmd.Process.Kill(); err != nil {
			log.WithError(err).Warn("dev server did not exit; kill failed")
		}
	}

	l.state = StateStopped
	log.Info("dev server stopped")
}

func (l *Launcher) setState(s LaunchState) {
	l.mu.Lock()
	l.state = s
	l.mu.Unlock()
}

func scanInto(r io.Reader, lines chan<- string, wg *sync.WaitGroup) {
	defer wg.Done()
	scanner := newLineScanner(r)
	for scanner.Scan() {
		line := StripANSI(strings.TrimSpace(scanner.Text()))
		if line != "" {
			lines <- line
		}
	}
}

// drain keeps forwarding server output after the readiness wait so the child
// never blocks on a full pipe.
func drain(lines <-chan string, sink LineSink) {
	for line := range lines {
		emit(sink, line)
	}
}

func isReadyLine(line string) bool {
	for _, marker := range readyMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

// parsePort extracts the listening port from a readiness line: the digits
// following the last "localhost:" marker. Lines without a parseable port
// fall back to the framework's default.
func parsePort(line string) int {
	idx := strings.LastIndex(line, "localhost:")
	if idx < 0 {
		return defaultDevPort
	}
	rest := strings.TrimSpace(line[idx+len("localhost:"):])
	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	port, err := strconv.Atoi(rest[:end])
	if err != nil {
		return defaultDevPort
	}
	return port
}
