package setup

import (
	"context"

	"github.com/andytrench/next-express/config"
	"github.com/andytrench/next-express/runtime"
)

// devServerStage starts the dev server and hands its handle to the session.
// A readiness timeout is a soft failure inside Start, never a stage error.
type devServerStage struct{}

func (s *devServerStage) Name() string { return "Starting development server..." }

func (s *devServerStage) Skip(cfg *config.ProjectConfig) bool { return !cfg.StartDevServer }

func (s *devServerStage) Run(ctx context.Context, sc *SetupContext) error {
	launcher := runtime.NewLauncher()
	launcher.AllowBroadKill = sc.Config.AllowBroadKill
	sc.Launcher = launcher
	return launcher.Start(ctx, sc.Config.ProjectPath(), sc.Config.OpenBrowser, sc.Sink())
}
