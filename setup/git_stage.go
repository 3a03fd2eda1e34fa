package setup

import (
	"context"

	"github.com/andytrench/next-express/config"
	"github.com/andytrench/next-express/runtime"
)

// gitStage initializes a repository in the project directory.
type gitStage struct{}

func (s *gitStage) Name() string { return "Initializing Git repository..." }

func (s *gitStage) Skip(cfg *config.ProjectConfig) bool { return !cfg.GitInit }

func (s *gitStage) Run(ctx context.Context, sc *SetupContext) error {
	return sc.Runner.Run(ctx, runtime.Command{
		Argv:        []string{"git", "init"},
		Dir:         sc.Config.ProjectPath(),
		Description: "Initializing Git",
	}, sc.Sink())
}
