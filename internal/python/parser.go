package python

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	tspython "github.com/smacker/go-tree-sitter/python"
)

// File represents a parsed Python source file.
type File struct {
	root *sitter.Node
	src  []byte
}

// ParseError describes the first syntax error found while parsing a file.
type ParseError struct {
	Line    int // 1-based; 0 if unknown
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Parse parses raw Python source. Tree-sitter reports syntax errors inside
// the tree rather than failing the parse call, so a tree containing any
// ERROR or missing node is converted into a ParseError here.
func Parse(src []byte) (*File, *ParseError) {
	parser := sitter.NewParser()
	parser.SetLanguage(tspython.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, &ParseError{Line: 0, Message: err.Error()}
	}

	root := tree.RootNode()
	if root.HasError() {
		return nil, firstError(root, src)
	}

	return &File{root: root, src: src}, nil
}

// firstError locates the first ERROR or missing node in document order.
func firstError(n *sitter.Node, src []byte) *ParseError {
	if n.Type() == "ERROR" {
		return &ParseError{
			Line:    Line(n),
			Message: fmt.Sprintf("invalid syntax near %q", errorContext(n, src)),
		}
	}
	if n.IsMissing() {
		return &ParseError{
			Line:    Line(n),
			Message: fmt.Sprintf("missing %s", n.Type()),
		}
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if child := n.Child(i); child.HasError() || child.IsMissing() {
			if perr := firstError(child, src); perr != nil {
				return perr
			}
		}
	}
	// HasError was set but no ERROR node was reachable; report the file start.
	return &ParseError{Line: 1, Message: "invalid syntax"}
}

func errorContext(n *sitter.Node, src []byte) string {
	text := strings.TrimSpace(n.Content(src))
	if len(text) > 40 {
		text = text[:40] + "..."
	}
	return text
}

// Root returns the module node of the parsed file.
func (f *File) Root() *sitter.Node { return f.root }

// Walk visits every named node in pre-order (source/definition order).
func (f *File) Walk(fn func(n *sitter.Node)) {
	walk(f.root, fn)
}

func walk(n *sitter.Node, fn func(n *sitter.Node)) {
	fn(n)
	for i := 0; i < int(n.NamedChildCount()); i++ {
		walk(n.NamedChild(i), fn)
	}
}

// Name returns the declared name of a function or class definition,
// or "" for nodes without a name field.
func (f *File) Name(n *sitter.Node) string {
	name := n.ChildByFieldName("name")
	if name == nil {
		return ""
	}
	return name.Content(f.src)
}

// HasDocstring reports whether a definition's body starts with a string
// literal expression.
func (f *File) HasDocstring(n *sitter.Node) bool {
	body := n.ChildByFieldName("body")
	if body == nil || body.NamedChildCount() == 0 {
		return false
	}
	first := body.NamedChild(0)
	if first.Type() != "expression_statement" || first.NamedChildCount() == 0 {
		return false
	}
	return first.NamedChild(0).Type() == "string"
}

// Line returns the 1-based starting line of a node.
func Line(n *sitter.Node) int {
	return int(n.StartPoint().Row) + 1
}

// EndLine returns the 1-based ending line of a node.
func EndLine(n *sitter.Node) int {
	return int(n.EndPoint().Row) + 1
}

// IsFunction reports whether the node is a function definition.
func IsFunction(n *sitter.Node) bool {
	return n.Type() == "function_definition"
}

// IsDefinition reports whether the node is a function or class definition.
func IsDefinition(n *sitter.Node) bool {
	switch n.Type() {
	case "function_definition", "class_definition":
		return true
	}
	return false
}

// IsNestingKind reports whether the node is one of the constructs that
// contribute to nesting depth.
func IsNestingKind(n *sitter.Node) bool {
	switch n.Type() {
	case "if_statement", "for_statement", "while_statement", "with_statement":
		return true
	}
	return false
}
