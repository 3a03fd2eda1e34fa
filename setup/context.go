package setup

import (
	"github.com/andytrench/next-express/config"
	"github.com/andytrench/next-express/npm"
	"github.com/andytrench/next-express/runtime"
)

// SetupContext carries shared state through the pipeline stages. The config
// is validated before Execute and treated as read-only from here on.
type SetupContext struct {
	Config *config.ProjectConfig
	Runner runtime.Runner
	NPM    *npm.Client

	// Launcher is set by the dev-server stage and left running; it is the
	// only child handle that survives the pipeline.
	Launcher *runtime.Launcher

	session *Session
}

// Log emits one line to the session's log stream.
func (sc *SetupContext) Log(line string) {
	sc.session.log(line)
}

// Milestone publishes the current phase label.
func (sc *SetupContext) Milestone(m Milestone) {
	sc.session.milestone(m)
}

// Sink returns a LineSink forwarding child-process output to the log stream.
func (sc *SetupContext) Sink() runtime.LineSink {
	return func(line string) { sc.session.log(line) }
}
