package llm

import "strings"

// ExtractCode normalizes a model reply into plain source text. Replies often
// arrive wrapped in a markdown fence, sometimes with a language tag and
// surrounding prose; only the first fenced block is kept. A reply with no
// fence is returned trimmed as-is.
func ExtractCode(reply string) string {
	reply = strings.TrimSpace(reply)

	start := strings.Index(reply, "```")
	if start == -1 {
		return reply
	}

	rest := reply[start+3:]

	// Drop the language tag on the fence line, e.g. ```python
	if nl := strings.Index(rest, "\n"); nl != -1 {
		rest = rest[nl+1:]
	}

	if end := strings.Index(rest, "```"); end != -1 {
		rest = rest[:end]
	}

	return strings.TrimRight(rest, "\n") + "\n"
}
