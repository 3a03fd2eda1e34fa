package setup

import (
	"context"

	"github.com/andytrench/next-express/config"
	"github.com/andytrench/next-express/runtime"
)

// editorStage opens the project in the editor. The editor CLI detaches on
// its own, so this is an ordinary short-lived command.
type editorStage struct{}

func (s *editorStage) Name() string { return "Opening in VS Code..." }

func (s *editorStage) Skip(cfg *config.ProjectConfig) bool { return !cfg.OpenEditor }

func (s *editorStage) Run(ctx context.Context, sc *SetupContext) error {
	return sc.Runner.Run(ctx, runtime.Command{
		Argv:        []string{"code", "."},
		Dir:         sc.Config.ProjectPath(),
		Description: "Opening VS Code",
	}, sc.Sink())
}
