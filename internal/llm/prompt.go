package llm

import (
	"fmt"
	"strings"

	"pyscribe/internal/types"
)

const systemPrompt = "You are an expert Python developer. You refactor code to " +
	"fix the quality issues you are given while preserving its behavior. " +
	"Reply with the complete refactored file and nothing else."

// BuildPrompt assembles the user message: the flagged issues followed by the
// full source to refactor.
func BuildPrompt(source string, issues []types.Issue) string {
	var b strings.Builder

	b.WriteString("Refactor the following Python file. Address these issues:\n\n")
	for _, issue := range issues {
		fmt.Fprintf(&b, "- line %d [%s] %s: %s\n", issue.Line, issue.Severity, issue.Type, issue.Describe())
	}

	b.WriteString("\nAdd missing docstrings, split overly long functions, and flatten deep nesting. ")
	b.WriteString("Add type hints where they are obvious. Do not change behavior.\n\n")
	b.WriteString("```python\n")
	b.WriteString(source)
	if !strings.HasSuffix(source, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("```\n")

	return b.String()
}
