package runtime

import (
	"context"
	"testing"
)

func TestPromptMatcher_FirstRuleWins(t *testing.T) {
	// Both prompts are substrings of the line; table order decides.
	table := PromptTable{
		{Prompt: "color", Response: "slate\n"},
		{Prompt: "would you like", Response: "yes\n"},
	}
	m := newPromptMatcher(table)

	response, ok := m.Feed("Which color would you like to use as the base color?")
	if !ok {
		t.Fatal("expected a match")
	}
	if response != "slate\n" {
		t.Errorf("response = %q, want the first rule's", response)
	}

	// Reversed order flips the winner.
	m = newPromptMatcher(PromptTable{table[1], table[0]})
	response, ok = m.Feed("Which color would you like to use as the base color?")
	if !ok {
		t.Fatal("expected a match")
	}
	if response != "yes\n" {
		t.Errorf("response = %q, want the first rule's after reorder", response)
	}
}

func TestPromptMatcher_NoMatch(t *testing.T) {
	m := newPromptMatcher(PromptTable{{Prompt: "Which style", Response: "default\n"}})
	if _, ok := m.Feed("Installing dependencies..."); ok {
		t.Error("unexpected match")
	}
}

func TestPromptMatcher_BufferResetOnMatch(t *testing.T) {
	m := newPromptMatcher(PromptTable{{Prompt: "proceed", Response: "Use --force\n"}})

	m.Feed("resolving peer dependency conflict")
	m.Feed("found 3 conflicting packages")
	if m.buf.Len() == 0 {
		t.Fatal("expected accumulation across unmatched lines")
	}

	if _, ok := m.Feed("How would you like to proceed?"); !ok {
		t.Fatal("expected a match")
	}
	if m.buf.Len() != 0 {
		t.Error("expected buffer reset after response")
	}
}

func TestRunInteractive_AnswersPrompt(t *testing.T) {
	requirePOSIX(t)
	var out lineCollector

	cmd := Command{
		Argv: []string{"sh", "-c",
			`printf 'Which style would you like to use?\n'; read ans; printf 'style=%s\n' "$ans"`},
		Dir:         t.TempDir(),
		Description: "Initializing component kit",
	}
	table := PromptTable{{Prompt: "Which style would you like to use?", Response: "new-york\n"}}

	if err := NewExecRunner().RunInteractive(context.Background(), cmd, table, out.sink); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.contains("style=new-york") {
		t.Errorf("prompt was not answered: %v", out.all())
	}
}

func TestRunInteractive_StripsEscapesBeforeMatching(t *testing.T) {
	requirePOSIX(t)
	var out lineCollector

	// The prompt arrives wrapped in color codes, as interactive tools emit it.
	cmd := Command{
		Argv: []string{"sh", "-c",
			`printf '\033[1mWould you like to use CSS variables for theming?\033[0m\n'; read ans; printf 'vars=%s\n' "$ans"`},
		Dir:         t.TempDir(),
		Description: "Initializing component kit",
	}
	table := PromptTable{{Prompt: "Would you like to use CSS variables for theming?", Response: "yes\n"}}

	if err := NewExecRunner().RunInteractive(context.Background(), cmd, table, out.sink); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.contains("vars=yes") {
		t.Errorf("escaped prompt was not matched: %v", out.all())
	}
}

func TestRunInteractive_NonZeroExit(t *testing.T) {
	requirePOSIX(t)

	cmd := Command{
		Argv:        []string{"sh", "-c", "echo 'init failed' >&2; exit 1"},
		Dir:         t.TempDir(),
		Description: "Initializing component kit",
	}
	err := NewExecRunner().RunInteractive(context.Background(), cmd, PromptTable{}, nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
