package setup

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"direct", NewSetupError(CodeDepsMissing, "tools missing", nil), CodeDepsMissing},
		{"wrapped", fmt.Errorf("running pipeline: %w", NewSetupError(CodeCommandFailed, "git failed", nil)), CodeCommandFailed},
		{"plain error", errors.New("boom"), ""},
		{"nil cause unwrap", NewSetupError(CodeReadyTimeout, "slow server", nil), CodeReadyTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetupError_MessageIncludesCause(t *testing.T) {
	cause := errors.New("exit status 1")
	err := NewSetupError(CodeCommandFailed, "Building project", cause)
	if got := err.Error(); got != "Building project: exit status 1" {
		t.Errorf("Error = %q", got)
	}
	if !errors.Is(err, cause) {
		t.Error("cause must be reachable through Unwrap")
	}
}
