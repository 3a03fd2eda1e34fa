package runtime

import "os"

// OverlayEnv merges overlay onto the current process environment and returns
// the combined list in the KEY=value form os/exec expects. Overlay entries
// win on key collision because os/exec honors the last occurrence of a key.
func OverlayEnv(overlay map[string]string) []string {
	env := os.Environ()
	for k, v := range overlay {
		env = append(env, k+"="+v)
	}
	return env
}
