package runtime

import (
	"strings"
	"testing"
)

func TestOverlayEnv_AppendsOverlayEntries(t *testing.T) {
	env := OverlayEnv(map[string]string{
		"CI":                      "true",
		"NEXT_TELEMETRY_DISABLED": "1",
	})

	if !envHas(env, "CI=true") {
		t.Error("CI=true missing from merged environment")
	}
	if !envHas(env, "NEXT_TELEMETRY_DISABLED=1") {
		t.Error("NEXT_TELEMETRY_DISABLED=1 missing from merged environment")
	}
}

func TestOverlayEnv_OverlayWinsOnCollision(t *testing.T) {
	t.Setenv("NPM_CONFIG_LEGACY_PEER_DEPS", "false")

	env := OverlayEnv(map[string]string{"NPM_CONFIG_LEGACY_PEER_DEPS": "true"})

	// os/exec honors the last occurrence of a duplicated key, so the
	// overlay value must come after the inherited one.
	last := ""
	for _, kv := range env {
		if strings.HasPrefix(kv, "NPM_CONFIG_LEGACY_PEER_DEPS=") {
			last = kv
		}
	}
	if last != "NPM_CONFIG_LEGACY_PEER_DEPS=true" {
		t.Errorf("last occurrence = %q, want overlay value", last)
	}
}

func TestOverlayEnv_NilOverlayKeepsEnvironment(t *testing.T) {
	t.Setenv("NE_TEST_MARKER", "present")

	env := OverlayEnv(nil)
	if !envHas(env, "NE_TEST_MARKER=present") {
		t.Error("inherited variable missing with nil overlay")
	}
}

func envHas(env []string, kv string) bool {
	for _, e := range env {
		if e == kv {
			return true
		}
	}
	return false
}
