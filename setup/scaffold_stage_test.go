package setup

import (
	"strings"
	"testing"

	"github.com/andytrench/next-express/config"
)

func TestScaffoldArgs_Defaults(t *testing.T) {
	cfg := config.Default()
	cfg.Name = "my-app"

	got := strings.Join(scaffoldArgs(cfg), " ")
	want := "npx --yes create-next-app@latest my-app --ts --tailwind --eslint --src-dir --app --no-import-alias --use-npm"
	if got != want {
		t.Errorf("argv = %q, want %q", got, want)
	}
}

func TestScaffoldArgs_EveryToggleOff(t *testing.T) {
	cfg := &config.ProjectConfig{Name: "plain"}

	got := strings.Join(scaffoldArgs(cfg), " ")
	want := "npx --yes create-next-app@latest plain --js --no-tailwind --no-eslint --no-src-dir --pages --no-import-alias --use-npm"
	if got != want {
		t.Errorf("argv = %q, want %q", got, want)
	}
}

func TestScaffoldArgs_ImportAlias(t *testing.T) {
	cfg := config.Default()
	cfg.Name = "aliased"
	cfg.ImportAlias = "~/*"

	argv := scaffoldArgs(cfg)
	joined := strings.Join(argv, " ")
	if !strings.Contains(joined, "--import-alias ~/*") {
		t.Errorf("argv = %q, want --import-alias ~/*", joined)
	}
	if strings.Contains(joined, "--no-import-alias") {
		t.Errorf("argv = %q, must not disable the alias", joined)
	}
}
