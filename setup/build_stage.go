package setup

import (
	"context"

	"github.com/andytrench/next-express/config"
)

// buildStage runs a production build of the scaffolded project.
type buildStage struct{}

func (s *buildStage) Name() string { return "Building project..." }

func (s *buildStage) Skip(cfg *config.ProjectConfig) bool { return !cfg.RunBuild }

func (s *buildStage) Run(ctx context.Context, sc *SetupContext) error {
	return sc.NPM.RunScript(ctx, sc.Config.ProjectPath(), "Building project", "build", sc.Sink())
}
