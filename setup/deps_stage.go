package setup

import (
	"context"
	"fmt"
	"strings"

	"github.com/andytrench/next-express/config"
	"github.com/andytrench/next-express/preflight"
)

// depsStage verifies the local toolchain before any project work starts.
type depsStage struct{}

func (s *depsStage) Name() string { return "Checking dependencies..." }

func (s *depsStage) Skip(*config.ProjectConfig) bool { return false }

func (s *depsStage) Run(ctx context.Context, sc *SetupContext) error {
	report := preflight.Check(ctx, sc.Runner, sc.NPM)
	for _, res := range report.Results {
		sc.Log(fmt.Sprintf("%s: %s", res.Name, res.Detail))
	}
	if missing := report.Missing(); len(missing) > 0 {
		return NewSetupError(CodeDepsMissing,
			fmt.Sprintf("required tools not found: %s (run 'next-express doctor --fix')", strings.Join(missing, ", ")),
			nil)
	}
	return nil
}
