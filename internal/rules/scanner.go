package rules

import (
	sitter "github.com/smacker/go-tree-sitter"

	"pyscribe/internal/config"
	"pyscribe/internal/python"
	"pyscribe/internal/types"
)

// Default thresholds, matching the reference tool.
const (
	DefaultMaxFunctionLines = 50
	DefaultMaxNestingDepth  = 4
)

// Scanner computes code-quality issues from parsed Python source.
type Scanner struct {
	maxFunctionLines int
	maxNestingDepth  int
	passes           []pass
}

// pass defines one analysis pass over the full tree
type pass struct {
	ID       string
	Disabled bool
	Run      func(*python.File) []types.Issue
}

// NewScanner creates a scanner with default passes and thresholds.
func NewScanner() *Scanner {
	s := &Scanner{
		maxFunctionLines: DefaultMaxFunctionLines,
		maxNestingDepth:  DefaultMaxNestingDepth,
	}

	s.registerDefaultPasses()

	return s
}

// ApplyConfig disables passes and tunes thresholds from configuration.
// Severity is a fixed function of issue kind and is never configurable.
func (s *Scanner) ApplyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	if cfg.Thresholds.MaxFunctionLines > 0 {
		s.maxFunctionLines = cfg.Thresholds.MaxFunctionLines
	}
	if cfg.Thresholds.MaxNestingDepth > 0 {
		s.maxNestingDepth = cfg.Thresholds.MaxNestingDepth
	}
	for i := range s.passes {
		if pc, ok := cfg.Passes[s.passes[i].ID]; ok && pc.Disabled {
			s.passes[i].Disabled = true
		}
	}
}

// Scan parses the source and runs all enabled passes in registration order.
// A file that fails to parse yields exactly one critical syntax_error issue
// and nothing else.
func (s *Scanner) Scan(src []byte) []types.Issue {
	file, perr := python.Parse(src)
	if perr != nil {
		return []types.Issue{{
			Type:     types.KindSyntaxError,
			Line:     perr.Line,
			Severity: types.SeverityFor(types.KindSyntaxError),
			Message:  perr.Message,
		}}
	}

	var issues []types.Issue

	for _, p := range s.passes {
		if p.Disabled {
			continue
		}
		issues = append(issues, p.Run(file)...)
	}

	return issues
}

// registerDefaultPasses registers the built-in passes. Each pass is an
// independent full-tree traversal; output order is all docstring issues,
// then all long-function issues, then all deep-nesting issues, each in
// source order.
func (s *Scanner) registerDefaultPasses() {
	s.passes = append(s.passes, pass{
		ID:  "missing_docstring",
		Run: s.checkDocstrings,
	})
	s.passes = append(s.passes, pass{
		ID:  "long_function",
		Run: s.checkFunctionLength,
	})
	s.passes = append(s.passes, pass{
		ID:  "deep_nesting",
		Run: s.checkNesting,
	})
}

// checkDocstrings flags every function or class definition whose body does
// not start with a docstring.
func (s *Scanner) checkDocstrings(f *python.File) []types.Issue {
	var issues []types.Issue

	f.Walk(func(n *sitter.Node) {
		if !python.IsDefinition(n) || f.HasDocstring(n) {
			return
		}
		issues = append(issues, types.Issue{
			Type:     types.KindMissingDocstring,
			Line:     python.Line(n),
			Severity: types.SeverityFor(types.KindMissingDocstring),
			Name:     f.Name(n),
		})
	})

	return issues
}

// checkFunctionLength flags every function definition spanning more than
// maxFunctionLines lines (end line minus start line).
func (s *Scanner) checkFunctionLength(f *python.File) []types.Issue {
	var issues []types.Issue

	f.Walk(func(n *sitter.Node) {
		if !python.IsFunction(n) {
			return
		}
		span := python.EndLine(n) - python.Line(n)
		if span <= s.maxFunctionLines {
			return
		}
		issues = append(issues, types.Issue{
			Type:     types.KindLongFunction,
			Line:     python.Line(n),
			Severity: types.SeverityFor(types.KindLongFunction),
			Name:     f.Name(n),
			Lines:    span,
		})
	})

	return issues
}

// checkNesting flags every node whose descendants nest conditional, loop or
// with constructs deeper than maxNestingDepth. Depth is recomputed from
// scratch for each node, so a chain of nested blocks reports once per node
// along it; the reference tool behaves the same way.
func (s *Scanner) checkNesting(f *python.File) []types.Issue {
	var issues []types.Issue

	f.Walk(func(n *sitter.Node) {
		depth := nestingDepth(n, 0)
		if depth <= s.maxNestingDepth {
			return
		}
		issues = append(issues, types.Issue{
			Type:     types.KindDeepNesting,
			Line:     python.Line(n),
			Severity: types.SeverityFor(types.KindDeepNesting),
			Depth:    depth,
		})
	})

	return issues
}
