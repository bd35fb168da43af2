package rules

import (
	sitter "github.com/smacker/go-tree-sitter"

	"pyscribe/internal/python"
)

// nestingDepth returns the maximum nesting level found among a node's
// descendants. A child that is itself a nesting construct (if/for/while/with)
// is descended into at depth+1; any other child is descended into at the
// same depth, so nested constructs below it are still discovered. The node
// itself does not count toward its own depth.
func nestingDepth(n *sitter.Node, depth int) int {
	max := depth
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		childDepth := depth
		if python.IsNestingKind(child) {
			childDepth = depth + 1
		}
		if got := nestingDepth(child, childDepth); got > max {
			max = got
		}
	}
	return max
}
