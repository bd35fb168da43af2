package types

import "fmt"

// Kind identifies a category of code-quality issue.
type Kind string

const (
	KindMissingDocstring Kind = "missing_docstring"
	KindLongFunction     Kind = "long_function"
	KindDeepNesting      Kind = "deep_nesting"
	KindSyntaxError      Kind = "syntax_error"
)

// Severity is the urgency label attached to an issue.
type Severity string

const (
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// SeverityFor maps an issue kind to its fixed severity.
func SeverityFor(k Kind) Severity {
	switch k {
	case KindMissingDocstring:
		return SeverityMedium
	case KindLongFunction, KindDeepNesting:
		return SeverityHigh
	case KindSyntaxError:
		return SeverityCritical
	}
	return SeverityMedium
}

// Issue represents a single code-quality finding in one source file.
// Name, Lines, Depth and Message are kind-specific; the rest are always set.
type Issue struct {
	Type     Kind     `json:"type"`
	Line     int      `json:"line"`
	Severity Severity `json:"severity"`
	Name     string   `json:"name,omitempty"`
	Lines    int      `json:"lines,omitempty"`
	Depth    int      `json:"depth,omitempty"`
	Message  string   `json:"message,omitempty"`
}

// Describe returns a human-readable message for the issue.
func (i Issue) Describe() string {
	switch i.Type {
	case KindMissingDocstring:
		return fmt.Sprintf("%q has no docstring", i.Name)
	case KindLongFunction:
		return fmt.Sprintf("%q is %d lines long", i.Name, i.Lines)
	case KindDeepNesting:
		return fmt.Sprintf("nesting depth %d exceeds limit", i.Depth)
	case KindSyntaxError:
		return i.Message
	}
	return string(i.Type)
}
