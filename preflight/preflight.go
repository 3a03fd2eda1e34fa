// Package preflight verifies the local toolchain before any project work
// starts, and can install the missing global packages.
package preflight

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/andytrench/next-express/npm"
	"github.com/andytrench/next-express/runtime"
)

// MinNodeVersion is the oldest Node.js release the generated projects
// support.
var MinNodeVersion = semver.MustParse("20.0.0")

// requiredGlobals must be installed globally for the scaffold tooling to run
// offline-fast; Fix installs them.
var requiredGlobals = []string{"next", "create-next-app", "typescript"}

// fixPackages is what Fix installs.
var fixPackages = []string{"next@latest", "create-next-app@latest", "typescript@latest", "shadcn@latest"}

// ToolResult is the outcome of a single check.
type ToolResult struct {
	Name   string
	OK     bool
	Detail string // version string when OK, reason when not
	Fatal  bool   // a failed fatal check blocks project creation
}

// Report holds every check outcome in display order.
type Report struct {
	Results []ToolResult
}

// Missing lists the failed fatal checks.
func (r *Report) Missing() []string {
	var missing []string
	for _, res := range r.Results {
		if res.Fatal && !res.OK {
			missing = append(missing, res.Name)
		}
	}
	return missing
}

// OK reports whether every fatal check passed.
func (r *Report) OK() bool {
	return len(r.Missing()) == 0
}

// Check probes the toolchain: Node.js presence and version, npm presence,
// the required global packages, and git. Git is informational only; the
// pipeline checks it separately when source-control init is requested.
func Check(ctx context.Context, runner runtime.Runner, client *npm.Client) *Report {
	report := &Report{}

	if out, err := runner.Capture(ctx, "node", "--version"); err != nil {
		report.add("node", false, "not found", true)
	} else if version, perr := semver.NewVersion(strings.TrimSpace(out)); perr != nil {
		report.add("node", false, fmt.Sprintf("unrecognized version %q", out), true)
	} else if version.LessThan(MinNodeVersion) {
		report.add("node", false, fmt.Sprintf("%s installed, %s or newer required", out, MinNodeVersion), true)
	} else {
		report.add("node", true, out, true)
	}

	npmOK := false
	if out, err := client.Version(ctx); err != nil {
		report.add("npm", false, "not found", true)
	} else {
		npmOK = true
		report.add("npm", true, out, true)
	}

	for _, pkg := range requiredGlobals {
		if !npmOK {
			report.add(pkg, false, "npm unavailable", true)
			continue
		}
		if err := client.GlobalList(ctx, pkg); err != nil {
			report.add(pkg, false, "not installed globally", true)
			continue
		}
		report.add(pkg, true, "installed globally", true)
	}

	if out, err := runner.Capture(ctx, "git", "--version"); err != nil {
		report.add("git", false, "not found", false)
	} else {
		report.add("git", true, out, false)
	}

	return report
}

// Fix installs the required global packages, pinned to latest.
func Fix(ctx context.Context, client *npm.Client, sink runtime.LineSink) error {
	if err := client.GlobalInstall(ctx, fixPackages, sink); err != nil {
		return fmt.Errorf("installing global packages: %w", err)
	}
	return nil
}

func (r *Report) add(name string, ok bool, detail string, fatal bool) {
	r.Results = append(r.Results, ToolResult{Name: name, OK: ok, Detail: detail, Fatal: fatal})
}
