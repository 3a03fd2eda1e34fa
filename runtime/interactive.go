package runtime

import "strings"

// PromptRule pairs a prompt substring with the response written back when an
// output line contains it. Response is written verbatim, so it must include
// the trailing newline the prompting tool expects.
type PromptRule struct {
	Prompt   string
	Response string
}

// PromptTable is an ordered list of prompt rules. Rules are checked in slice
// order against every cleaned line and the first match wins, so order encodes
// priority. A table is built for a single tool invocation and discarded
// afterwards; one invocation drives one child at a time.
type PromptTable []PromptRule

// promptMatcher scans cleaned output lines for known prompts. It keeps an
// accumulation buffer across lines for prompts that arrive over several
// writes; the buffer is reset whenever a response is sent.
type promptMatcher struct {
	table PromptTable
	buf   strings.Builder
}

func newPromptMatcher(table PromptTable) *promptMatcher {
	return &promptMatcher{table: table}
}

// Feed offers one cleaned line to the matcher and returns the response for
// the first rule whose prompt is contained in it. At most one response is
// returned per line, even when several rules would match.
func (m *promptMatcher) Feed(line string) (string, bool) {
	m.buf.WriteString(line)
	m.buf.WriteByte('\n')
	for _, rule := range m.table {
		if strings.Contains(line, rule.Prompt) {
			m.buf.Reset()
			return rule.Response, true
		}
	}
	return "", false
}
