// Package config holds the project configuration collected by the wizard
// or loaded from a next-express.yaml file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Styles are the component-kit styles offered by the initializer.
var Styles = []string{"default", "new-york", "zinc", "slate", "stone", "gray"}

// BaseColors are the theme base colors offered by the initializer.
var BaseColors = []string{"neutral", "gray", "zinc", "stone", "slate"}

// Features are the optional feature toggles and their install order.
var Features = []string{"redux", "axios", "router", "auth", "prisma", "forms", "query"}

// React peer-dependency resolution modes.
const (
	CompatForce          = "force"
	CompatLegacyPeerDeps = "legacy-peer-deps"
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// ValidName reports whether name is acceptable as a project name.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// ProjectConfig collects all user choices for one project. It is built once,
// validated, and never mutated after the setup sequence starts.
type ProjectConfig struct {
	Name           string   `yaml:"name"`
	Directory      string   `yaml:"directory"`
	PackageManager string   `yaml:"package_manager,omitempty"`
	TypeScript     bool     `yaml:"typescript"`
	Tailwind       bool     `yaml:"tailwind"`
	ESLint         bool     `yaml:"eslint"`
	SrcDir         bool     `yaml:"src_dir"`
	AppRouter      bool     `yaml:"app_router"`
	ImportAlias    string   `yaml:"import_alias,omitempty"` // empty means no custom alias
	Style          string   `yaml:"style,omitempty"`
	BaseColor      string   `yaml:"base_color,omitempty"`
	CSSVariables   bool     `yaml:"css_variables"`
	ReactCompat    string   `yaml:"react_compat,omitempty"`
	Features       []string `yaml:"features,omitempty"`

	GitInit        bool `yaml:"git_init"`
	RunBuild       bool `yaml:"run_build"`
	OpenEditor     bool `yaml:"open_editor"`
	StartDevServer bool `yaml:"start_dev_server"`
	OpenBrowser    bool `yaml:"open_browser"`

	// AllowBroadKill opts in to the legacy stop behavior that kills every
	// process whose command line matches the dev-server name, accepting
	// collateral termination of unrelated processes.
	AllowBroadKill bool `yaml:"allow_broad_kill,omitempty"`
}

// Default returns a ProjectConfig with the standard wizard defaults.
func Default() *ProjectConfig {
	return &ProjectConfig{
		PackageManager: "npm",
		TypeScript:     true,
		Tailwind:       true,
		ESLint:         true,
		SrcDir:         true,
		AppRouter:      true,
		Style:          "default",
		BaseColor:      "neutral",
		CSSVariables:   true,
		ReactCompat:    CompatForce,
		OpenBrowser:    true,
	}
}

// Parse parses raw YAML bytes into a ProjectConfig layered over the defaults
// and validates it.
func Parse(data []byte) (*ProjectConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing project config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses a project config file from the given path.
func Load(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project config %s: %w", path, err)
	}
	return Parse(data)
}

// Validate checks required fields and enum values. The setup sequence relies
// on this having passed and performs no validation of its own.
func (c *ProjectConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("project config: name is required")
	}
	if !namePattern.MatchString(c.Name) {
		return fmt.Errorf("project config: name %q must be lowercase letters, digits, '.', '_' or '-'", c.Name)
	}
	if c.Directory == "" {
		return fmt.Errorf("project config: directory is required")
	}
	info, err := os.Stat(c.Directory)
	if err != nil {
		return fmt.Errorf("project config: directory %s: %w", c.Directory, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("project config: %s is not a directory", c.Directory)
	}
	if !contains(Styles, c.Style) {
		return fmt.Errorf("project config: unknown style %q", c.Style)
	}
	if !contains(BaseColors, c.BaseColor) {
		return fmt.Errorf("project config: unknown base color %q", c.BaseColor)
	}
	if c.ReactCompat != CompatForce && c.ReactCompat != CompatLegacyPeerDeps {
		return fmt.Errorf("project config: react_compat must be %q or %q", CompatForce, CompatLegacyPeerDeps)
	}
	for _, f := range c.Features {
		if !contains(Features, f) {
			return fmt.Errorf("project config: unknown feature %q", f)
		}
	}
	return nil
}

// ProjectPath is the directory the scaffolded project lives in.
func (c *ProjectConfig) ProjectPath() string {
	return filepath.Join(c.Directory, c.Name)
}

// HasFeature reports whether the given feature toggle is set.
func (c *ProjectConfig) HasFeature(name string) bool {
	return contains(c.Features, name)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
