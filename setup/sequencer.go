// Package setup runs the project-creation pipeline: dependency check,
// scaffold, feature installs, component-kit init, and the optional
// git/build/editor/dev-server tail. The pipeline runs on its own goroutine
// and reports through a Session's event channels.
package setup

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/andytrench/next-express/config"
	"github.com/andytrench/next-express/npm"
	"github.com/andytrench/next-express/runtime"
)

// Sequencer drives one setup pipeline per Execute call. The zero value is
// not usable; construct with NewSequencer.
type Sequencer struct {
	runner runtime.Runner
	npm    *npm.Client
	stages []Stage
}

// NewSequencer returns a Sequencer running real external commands.
func NewSequencer() *Sequencer {
	runner := runtime.NewExecRunner()
	return &Sequencer{
		runner: runner,
		npm:    npm.New(runner),
		stages: stages(),
	}
}

// NewSequencerWith returns a Sequencer using the given runner, so tests can
// substitute a stub that records invocations instead of spawning processes.
func NewSequencerWith(runner runtime.Runner) *Sequencer {
	return &Sequencer{
		runner: runner,
		npm:    npm.New(runner),
		stages: stages(),
	}
}

// Execute starts the pipeline for cfg on a worker goroutine and returns the
// Session immediately. cfg must already be validated; the pipeline performs
// no validation of its own. Exactly one Result arrives on Session.Done,
// after which all three event channels are closed.
func (s *Sequencer) Execute(ctx context.Context, cfg *config.ProjectConfig) *Session {
	session := newSession()
	sc := &SetupContext{
		Config:  cfg,
		Runner:  s.runner,
		NPM:     s.npm,
		session: session,
	}

	go func() {
		log.WithFields(log.Fields{
			"project": cfg.Name,
			"dir":     cfg.Directory,
		}).Info("starting project setup")

		err := runPipeline(ctx, sc, s.stages)

		// The dev-server handle deliberately outlives the pipeline; hand
		// it to the session so StopDevServer can reach it.
		session.setLauncher(sc.Launcher)

		if err != nil {
			log.WithError(err).Error("project setup failed")
			sc.Log("Error: " + err.Error())
			session.milestone("Error occurred during project creation")
			session.finish(Result{Err: err, Message: "Error: " + err.Error()})
			return
		}

		log.Info("project setup complete")
		session.milestone("Project creation completed! 🚀")
		session.finish(Result{Message: "Project created successfully!"})
	}()

	return session
}
