package setup

import (
	"context"
	"strings"

	"github.com/andytrench/next-express/config"
	"github.com/andytrench/next-express/runtime"
)

// scaffoldEnv forces the generator into non-interactive CI behavior and
// keeps telemetry out of the logs.
var scaffoldEnv = map[string]string{
	"CI":                      "true",
	"NEXT_TELEMETRY_DISABLED": "1",
}

// scaffoldStage runs the project generator with an argument vector built
// from the config toggles.
type scaffoldStage struct{}

func (s *scaffoldStage) Name() string { return "Creating Next.js project structure..." }

func (s *scaffoldStage) Skip(*config.ProjectConfig) bool { return false }

func (s *scaffoldStage) Run(ctx context.Context, sc *SetupContext) error {
	argv := scaffoldArgs(sc.Config)
	sc.Log("Creating project at: " + sc.Config.ProjectPath())
	sc.Log("Running command: " + strings.Join(argv, " "))

	sink := sc.Sink()
	return sc.Runner.Run(ctx, runtime.Command{
		Argv:        argv,
		Dir:         sc.Config.Directory,
		Env:         scaffoldEnv,
		Description: "Creating Next.js project",
	}, func(line string) {
		sink(line)
		// The generator announces its phases in its output; surface them
		// as finer-grained milestones.
		switch {
		case strings.Contains(line, "Creating"):
			sc.Milestone("Creating project structure...")
		case strings.Contains(line, "Installing"):
			sc.Milestone("Installing dependencies...")
		case strings.Contains(line, "Success"):
			sc.Milestone("Project structure created!")
		}
	})
}

// scaffoldArgs builds the create-next-app argument vector. Every toggle is
// passed explicitly in both directions so the generator never falls back to
// prompting, and --use-npm pins the package manager.
func scaffoldArgs(cfg *config.ProjectConfig) []string {
	argv := []string{"npx", "--yes", "create-next-app@latest", cfg.Name}

	argv = append(argv, pick(cfg.TypeScript, "--ts", "--js"))
	argv = append(argv, pick(cfg.Tailwind, "--tailwind", "--no-tailwind"))
	argv = append(argv, pick(cfg.ESLint, "--eslint", "--no-eslint"))
	argv = append(argv, pick(cfg.SrcDir, "--src-dir", "--no-src-dir"))
	argv = append(argv, pick(cfg.AppRouter, "--app", "--pages"))

	if cfg.ImportAlias != "" {
		argv = append(argv, "--import-alias", cfg.ImportAlias)
	} else {
		argv = append(argv, "--no-import-alias")
	}

	return append(argv, "--use-npm")
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
