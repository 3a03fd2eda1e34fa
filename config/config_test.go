package config

import (
	"strings"
	"testing"
)

func validConfig(t *testing.T) *ProjectConfig {
	t.Helper()
	cfg := Default()
	cfg.Name = "my-app"
	cfg.Directory = t.TempDir()
	return cfg
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if !cfg.TypeScript || !cfg.Tailwind || !cfg.ESLint {
		t.Error("expected language and styling toggles on by default")
	}
	if cfg.Style != "default" {
		t.Errorf("Style = %q, want %q", cfg.Style, "default")
	}
	if cfg.BaseColor != "neutral" {
		t.Errorf("BaseColor = %q, want %q", cfg.BaseColor, "neutral")
	}
	if cfg.ReactCompat != CompatForce {
		t.Errorf("ReactCompat = %q, want %q", cfg.ReactCompat, CompatForce)
	}
	if cfg.GitInit || cfg.RunBuild || cfg.OpenEditor || cfg.StartDevServer {
		t.Error("expected post-creation toggles off by default")
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := validConfig(t)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Rejects(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*ProjectConfig)
		wantSub string
	}{
		{"empty name", func(c *ProjectConfig) { c.Name = "" }, "name is required"},
		{"bad name", func(c *ProjectConfig) { c.Name = "My App" }, "lowercase"},
		{"empty directory", func(c *ProjectConfig) { c.Directory = "" }, "directory is required"},
		{"missing directory", func(c *ProjectConfig) { c.Directory = "/no/such/dir" }, "directory"},
		{"unknown style", func(c *ProjectConfig) { c.Style = "brutalist" }, "unknown style"},
		{"unknown color", func(c *ProjectConfig) { c.BaseColor = "mauve" }, "unknown base color"},
		{"bad compat", func(c *ProjectConfig) { c.ReactCompat = "yolo" }, "react_compat"},
		{"unknown feature", func(c *ProjectConfig) { c.Features = []string{"graphql"} }, "unknown feature"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig(t)
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Errorf("error = %q, want substring %q", err, tc.wantSub)
			}
		})
	}
}

func TestParse_LayersOverDefaults(t *testing.T) {
	dir := t.TempDir()
	data := []byte("name: shop\ndirectory: " + dir + "\ntailwind: false\nfeatures: [axios, query]\n")

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Tailwind {
		t.Error("expected tailwind off")
	}
	if !cfg.TypeScript {
		t.Error("expected typescript default to survive")
	}
	if !cfg.HasFeature("axios") || !cfg.HasFeature("query") {
		t.Errorf("Features = %v, want axios and query", cfg.Features)
	}
	if cfg.HasFeature("redux") {
		t.Error("HasFeature(redux) = true, want false")
	}
}

func TestParse_BadYAML(t *testing.T) {
	if _, err := Parse([]byte(": not yaml")); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestProjectPath(t *testing.T) {
	cfg := validConfig(t)
	got := cfg.ProjectPath()
	if !strings.HasSuffix(got, "my-app") {
		t.Errorf("ProjectPath = %q, want suffix my-app", got)
	}
	if !strings.HasPrefix(got, cfg.Directory) {
		t.Errorf("ProjectPath = %q, want prefix %q", got, cfg.Directory)
	}
}
