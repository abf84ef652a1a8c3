package codegen

import "strings"

// Quote escapes s into a single-quoted JavaScript string literal. Embedded
// newlines become a backslash followed by a real line break (a line
// continuation), so the literal stays legal without altering its value.
func Quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "\n", "\\\n")
	s = strings.ReplaceAll(s, "'", `\'`)
	return "'" + s + "'"
}

// MultilineQuote encodes s as a concatenation of per-line single-quoted
// literals joined by explicit '\n' terms, so the target runtime rebuilds the
// original multi-line content at run time.
func MultilineQuote(s string) string {
	lines := strings.Split(s, "\n")
	quoted := make([]string, len(lines))
	for i, line := range lines {
		quoted[i] = Quote(line)
	}
	return strings.Join(quoted, " + '\\n' + ")
}
