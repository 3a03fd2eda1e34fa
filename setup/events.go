package setup

import (
	"sync"
	"time"

	"github.com/andytrench/next-express/runtime"
)

// LogEvent is one timestamped output line. Events are delivered in emission
// order, which for child-process output is the order the process produced it.
type LogEvent struct {
	Time time.Time
	Line string
}

// Milestone is a short phase label. Only the latest milestone matters to a
// consumer; no history is kept.
type Milestone string

// Result is the terminal outcome of one pipeline run. A nil Err means every
// step completed.
type Result struct {
	Err     error
	Message string
}

// Session is the live view of a running pipeline: three independent event
// streams plus the dev-server handle that outlives the run. All three
// channels are closed by the worker after Done delivers its single Result.
type Session struct {
	Milestones <-chan Milestone
	Logs       <-chan LogEvent
	Done       <-chan Result

	milestones chan Milestone
	logs       chan LogEvent
	done       chan Result
	launcher   *runtime.Launcher

	// The dev server outlives the pipeline and its drain goroutine keeps
	// offering output lines after the worker has closed the channels;
	// those late events are dropped under mu.
	mu     sync.Mutex
	closed bool
}

func newSession() *Session {
	s := &Session{
		milestones: make(chan Milestone, 16),
		logs:       make(chan LogEvent, 256),
		done:       make(chan Result, 1),
	}
	s.Milestones = s.milestones
	s.Logs = s.logs
	s.Done = s.done
	return s
}

func (s *Session) log(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.logs <- LogEvent{Time: time.Now(), Line: line}
}

func (s *Session) milestone(m Milestone) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.milestones <- m
}

func (s *Session) finish(res Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.done <- res
	close(s.milestones)
	close(s.logs)
	close(s.done)
}

func (s *Session) setLauncher(l *runtime.Launcher) {
	s.mu.Lock()
	s.launcher = l
	s.mu.Unlock()
}

// StopDevServer terminates the dev server left running by the pipeline.
// It is safe to call at any time, including when no server was started.
func (s *Session) StopDevServer() {
	s.mu.Lock()
	l := s.launcher
	s.mu.Unlock()
	if l != nil {
		l.Stop()
	}
}

// DevServerState reports the launcher's lifecycle state, or StateIdle when
// the dev-server step never ran.
func (s *Session) DevServerState() runtime.LaunchState {
	s.mu.Lock()
	l := s.launcher
	s.mu.Unlock()
	if l == nil {
		return runtime.StateIdle
	}
	return l.State()
}
