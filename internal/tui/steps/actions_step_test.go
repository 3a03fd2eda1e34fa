package steps

import (
	"testing"

	"github.com/andytrench/next-express/config"
	"github.com/andytrench/next-express/internal/tui"
)

func TestActionsStep_BrowserRequiresDevServer(t *testing.T) {
	styles := tui.NewStyleSet(tui.DarkTheme)
	step := NewActionsStep(styles, config.Default())
	step.chosen = map[string]bool{"browser": true} // browser checked, dev server not

	cfg := config.Default()
	step.Apply(cfg)
	if cfg.OpenBrowser {
		t.Error("browser open must be dropped without a dev server")
	}

	step.chosen = map[string]bool{"browser": true, "dev": true}
	step.Apply(cfg)
	if !cfg.StartDevServer || !cfg.OpenBrowser {
		t.Error("dev server plus browser must both apply")
	}
}

func TestOptionsStep_ApplyWritesAllToggles(t *testing.T) {
	styles := tui.NewStyleSet(tui.DarkTheme)
	step := NewOptionsStep(styles, config.Default())
	step.chosen = map[string]bool{"typescript": true, "app_router": true}

	cfg := config.Default()
	step.Apply(cfg)

	if !cfg.TypeScript || !cfg.AppRouter {
		t.Error("checked toggles not applied")
	}
	if cfg.Tailwind || cfg.ESLint || cfg.SrcDir {
		t.Error("unchecked toggles must be cleared")
	}
}

func TestStyleStep_SummaryReflectsChoices(t *testing.T) {
	styles := tui.NewStyleSet(tui.DarkTheme)
	cfg := config.Default()
	cfg.Style = "new-york"
	cfg.BaseColor = "zinc"
	cfg.CSSVariables = false

	step := NewStyleStep(styles, cfg)
	got := step.Summary()
	if got != "new-york · zinc · utility classes" {
		t.Errorf("Summary = %q", got)
	}
}
