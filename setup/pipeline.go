package setup

import (
	"context"
	"errors"

	"github.com/andytrench/next-express/config"
	"github.com/andytrench/next-express/runtime"
)

// Stage is one step of the setup pipeline. Stages run strictly in slice
// order; the first error aborts the remaining stages with no rollback.
type Stage interface {
	// Name is the milestone label shown while the stage runs.
	Name() string
	// Skip reports whether the stage is disabled by the config.
	Skip(cfg *config.ProjectConfig) bool
	// Run performs the stage's work.
	Run(ctx context.Context, sc *SetupContext) error
}

// stages returns the fixed pipeline: dependency check, scaffold, feature
// installs, component-kit init, then the optional git/build/editor/dev-server
// tail. The order never varies; config flags only skip steps.
func stages() []Stage {
	return []Stage{
		&depsStage{},
		&scaffoldStage{},
		&featuresStage{},
		&componentKitStage{},
		&gitStage{},
		&buildStage{},
		&editorStage{},
		&devServerStage{},
	}
}

// runPipeline executes each non-skipped stage in order and returns the first
// failure wrapped as a *SetupError.
func runPipeline(ctx context.Context, sc *SetupContext, stages []Stage) error {
	for _, stage := range stages {
		if stage.Skip(sc.Config) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return NewSetupError(CodeCommandFailed, "setup cancelled before "+stage.Name(), err)
		}
		sc.Milestone(Milestone(stage.Name()))
		if err := stage.Run(ctx, sc); err != nil {
			return asSetupError(err)
		}
	}
	return nil
}

// asSetupError normalizes a stage failure: coded errors pass through,
// command failures pick up the COMMAND_FAILED code and keep the tool's
// description and error text.
func asSetupError(err error) error {
	var se *SetupError
	if errors.As(err, &se) {
		return err
	}
	var ce *runtime.CommandError
	if errors.As(err, &ce) {
		return NewSetupError(CodeCommandFailed, ce.Description, err)
	}
	return NewSetupError(CodeCommandFailed, "setup step failed", err)
}
