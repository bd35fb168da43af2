package diff

import "strings"

// marker is a token whose appearance in the refactored text but not the
// original indicates a category of change.
type marker struct {
	Change string
	Token  string
}

// registered markers, checked in order
var markers = []marker{
	{Change: "added docstrings", Token: `"""`},
	{Change: "added type hints", Token: "->"},
}

// Summarize produces a heuristic description of how the refactored source
// differs from the original. Each check is a boolean string-containment
// test, not a semantic diff.
func Summarize(original, refactored string) []string {
	var changes []string

	if countLines(original) != countLines(refactored) {
		changes = append(changes, "line count changed")
	}

	for _, m := range markers {
		if strings.Contains(refactored, m.Token) && !strings.Contains(original, m.Token) {
			changes = append(changes, m.Change)
		}
	}

	if len(changes) == 0 {
		changes = append(changes, "no significant changes detected")
	}

	return changes
}

func countLines(s string) int {
	return len(strings.Split(s, "\n"))
}
