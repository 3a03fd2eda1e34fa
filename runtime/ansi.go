package runtime

import "regexp"

// ansiPattern matches 7-bit C1 Fe escapes and CSI sequences including their
// parameter, intermediate and final bytes.
var ansiPattern = regexp.MustCompile(`\x1b(?:[@-Z\\-_]|\[[0-?]*[ -/]*[@-~])`)

// StripANSI removes terminal escape sequences from a line so it can be
// matched and logged cleanly. Stripping an already-clean line returns it
// unchanged.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
