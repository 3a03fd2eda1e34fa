package setup

import (
	"context"

	"github.com/andytrench/next-express/config"
	"github.com/andytrench/next-express/runtime"
)

// componentKitDeps are the base packages the component kit expects before
// its initializer runs.
var componentKitDeps = []string{
	"@radix-ui/react-icons",
	"@radix-ui/react-slot",
	"class-variance-authority",
	"clsx",
	"tailwind-merge",
	"lucide-react",
	"tailwindcss-animate",
}

// componentKitStage installs the component-kit base packages and drives the
// interactive shadcn initializer, answering its prompts from the config.
type componentKitStage struct{}

func (s *componentKitStage) Name() string { return "Setting up shadcn/ui components..." }

func (s *componentKitStage) Skip(*config.ProjectConfig) bool { return false }

func (s *componentKitStage) Run(ctx context.Context, sc *SetupContext) error {
	sc.Log("Setting up shadcn/ui with selected options...")

	projectPath := sc.Config.ProjectPath()
	if err := sc.NPM.Install(ctx, projectPath, "Installing dependencies", componentKitDeps, true, sc.Sink()); err != nil {
		return err
	}

	err := sc.Runner.RunInteractive(ctx, runtime.Command{
		Argv: []string{"npx", "shadcn@latest", "init"},
		Dir:  projectPath,
		// The initializer's own npm runs hit React peer-dependency
		// conflicts; relax them for this one child.
		Env:         map[string]string{"NPM_CONFIG_LEGACY_PEER_DEPS": "true"},
		Description: "Initializing shadcn/ui",
	}, promptTable(sc.Config), sc.Sink())
	if err != nil {
		return err
	}

	sc.Log("shadcn/ui has been initialized with selected settings.")
	return nil
}

// promptTable maps the initializer's interactive prompts to the answers the
// config implies. Built fresh per run and discarded afterwards; order is
// priority, first matching prompt wins per line.
func promptTable(cfg *config.ProjectConfig) runtime.PromptTable {
	cssVars := "no\n"
	if cfg.CSSVariables {
		cssVars = "yes\n"
	}
	return runtime.PromptTable{
		{Prompt: "Which style would you like to use?", Response: cfg.Style + "\n"},
		{Prompt: "Which color would you like to use as the base color?", Response: cfg.BaseColor + "\n"},
		{Prompt: "Would you like to use CSS variables for theming?", Response: cssVars},
		{Prompt: "How would you like to proceed?", Response: "Use --" + cfg.ReactCompat + "\n"},
	}
}
