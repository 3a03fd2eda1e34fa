package setup

import (
	"strings"
	"testing"

	"github.com/andytrench/next-express/config"
)

func TestPromptTable_Derivation(t *testing.T) {
	cfg := config.Default()
	cfg.Style = "new-york"
	cfg.BaseColor = "zinc"
	cfg.CSSVariables = false
	cfg.ReactCompat = config.CompatLegacyPeerDeps

	table := promptTable(cfg)
	if len(table) != 4 {
		t.Fatalf("table = %d rules, want 4", len(table))
	}

	wantResponses := []string{"new-york\n", "zinc\n", "no\n", "Use --legacy-peer-deps\n"}
	for i, want := range wantResponses {
		if table[i].Response != want {
			t.Errorf("rule %d response = %q, want %q", i, table[i].Response, want)
		}
	}
}

func TestPromptTable_ResponsesEndWithNewline(t *testing.T) {
	for _, rule := range promptTable(config.Default()) {
		if !strings.HasSuffix(rule.Response, "\n") {
			t.Errorf("response %q lacks trailing newline", rule.Response)
		}
	}
}

func TestPromptTable_CompatForce(t *testing.T) {
	cfg := config.Default()
	cfg.ReactCompat = config.CompatForce

	table := promptTable(cfg)
	last := table[len(table)-1]
	if last.Prompt != "How would you like to proceed?" {
		t.Errorf("prompt = %q", last.Prompt)
	}
	if last.Response != "Use --force\n" {
		t.Errorf("response = %q, want Use --force", last.Response)
	}
}
