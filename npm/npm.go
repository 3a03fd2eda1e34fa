// Package npm drives the npm CLI: project installs, script runs, and global
// package queries.
package npm

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/andytrench/next-express/runtime"
)

// Client wraps the npm binary. All invocations go through a Runner so output
// streams live and tests can substitute a stub.
type Client struct {
	runner runtime.Runner
}

// New returns a Client using the given runner.
func New(runner runtime.Runner) *Client {
	return &Client{runner: runner}
}

// Available reports whether the npm binary is on PATH.
func (c *Client) Available() bool {
	_, err := exec.LookPath("npm")
	return err == nil
}

// Version returns the installed npm version.
func (c *Client) Version(ctx context.Context) (string, error) {
	return c.runner.Capture(ctx, "npm", "--version")
}

// Install adds packages to the project at dir. Dev routes them to
// devDependencies. The description labels log lines and failures.
func (c *Client) Install(ctx context.Context, dir, description string, pkgs []string, dev bool, sink runtime.LineSink) error {
	if len(pkgs) == 0 {
		return nil
	}
	argv := []string{"npm", "install"}
	if dev {
		argv = append(argv, "--save-dev")
	}
	argv = append(argv, pkgs...)
	return c.runner.Run(ctx, runtime.Command{
		Argv:        argv,
		Dir:         dir,
		Description: description,
	}, sink)
}

// RunScript runs a package.json script in dir.
func (c *Client) RunScript(ctx context.Context, dir, description, script string, sink runtime.LineSink) error {
	return c.runner.Run(ctx, runtime.Command{
		Argv:        []string{"npm", "run", script},
		Dir:         dir,
		Description: description,
	}, sink)
}

// GlobalList checks whether pkg is installed globally; the npm exit status
// is the answer.
func (c *Client) GlobalList(ctx context.Context, pkg string) error {
	if _, err := c.runner.Capture(ctx, "npm", "list", "-g", pkg); err != nil {
		return fmt.Errorf("global package %s not found: %w", pkg, err)
	}
	return nil
}

// GlobalInstall installs packages globally.
func (c *Client) GlobalInstall(ctx context.Context, pkgs []string, sink runtime.LineSink) error {
	if len(pkgs) == 0 {
		return nil
	}
	argv := append([]string{"npm", "install", "-g"}, pkgs...)
	return c.runner.Run(ctx, runtime.Command{
		Argv:        argv,
		Description: "Installing global packages " + strings.Join(pkgs, " "),
	}, sink)
}
