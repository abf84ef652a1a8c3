package codegen

import "strings"

// scrub attaches comment text to a block's own code and chains the
// successor statement. Blocks plugged into a parent expression contribute no
// comment here; the nearest enclosing statement surfaces those through
// nested collection, so nothing is ever emitted twice.
func (c *Context) scrub(b Block, code string, thisOnly bool) string {
	var comments strings.Builder
	if !b.OutputConnected() {
		if comment := b.Comment(); comment != "" {
			wrapped := wrapText(comment, commentWrap-len(commentPrefix))
			comments.WriteString(prefixLines(wrapped+"\n", commentPrefix))
		}
		// Surface comments buried in value-input subtrees. Statement inputs
		// are skipped; their blocks emit comments on their own pass.
		for _, in := range b.Inputs() {
			if !in.IsValue || in.Child == nil {
				continue
			}
			if nested := allNestedComments(in.Child); nested != "" {
				comments.WriteString(prefixLines(nested, commentPrefix))
			}
		}
	}
	next := ""
	if !thisOnly {
		next = c.BlockToCode(b.Next(), false)
	}
	return comments.String() + code + next
}

// allNestedComments gathers every comment in an expression subtree, one per
// line, without following successor-statement chains.
func allNestedComments(b Block) string {
	var sb strings.Builder
	collectComments(b, &sb)
	return sb.String()
}

func collectComments(b Block, sb *strings.Builder) {
	if comment := b.Comment(); comment != "" {
		sb.WriteString(comment + "\n")
	}
	for _, in := range b.Inputs() {
		if in.IsValue && in.Child != nil {
			collectComments(in.Child, sb)
		}
	}
}

// prefixLines prepends prefix to every line of text. A trailing newline is
// preserved without starting an empty prefixed line after it.
func prefixLines(text, prefix string) string {
	trailing := strings.HasSuffix(text, "\n")
	if trailing {
		text = strings.TrimSuffix(text, "\n")
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	out := strings.Join(lines, "\n")
	if trailing {
		out += "\n"
	}
	return out
}

// wrapText greedily word-wraps text to the given column. Words longer than
// the limit stay whole on their own line. Existing line breaks are kept.
func wrapText(text string, limit int) string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		words := strings.Fields(line)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		cur := words[0]
		for _, w := range words[1:] {
			if len(cur)+1+len(w) > limit {
				out = append(out, cur)
				cur = w
				continue
			}
			cur += " " + w
		}
		out = append(out, cur)
	}
	return strings.Join(out, "\n")
}
