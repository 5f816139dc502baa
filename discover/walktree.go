package discover

import "github.com/awaitly-go/analyzer/syntax"

// visitFn is called for every node in the tree, along with the chain of
// ancestors from the root down to (but not including) the node itself.
type visitFn func(n *syntax.Node, ancestors []*syntax.Node)

// walkAll visits every node in the tree in depth-first, pre-order
// fashion. It is the one generic traversal discover needs on top of the
// syntax package's named/unnamed-child accessors; the walk package has
// its own, DSL-aware traversal and does not share this one.
func walkAll(n *syntax.Node, ancestors []*syntax.Node, visit visitFn) {
	if n == nil {
		return
	}
	visit(n, ancestors)
	next := make([]*syntax.Node, len(ancestors)+1)
	copy(next, ancestors)
	next[len(ancestors)] = n
	for _, c := range n.Children() {
		walkAll(c, next, visit)
	}
}

// nearestAncestor returns the closest ancestor of the given kind,
// searching from the node outward (i.e. from the end of the slice).
func nearestAncestor(ancestors []*syntax.Node, kind string) *syntax.Node {
	for i := len(ancestors) - 1; i >= 0; i-- {
		if ancestors[i].Kind == kind {
			return ancestors[i]
		}
	}
	return nil
}

func isCallTo(n *syntax.Node, name string) bool {
	if n == nil || n.Kind != syntax.KindCallExpression {
		return false
	}
	callee := n.Function()
	return callee != nil && callee.Text() == name
}

func isFunctionLiteral(n *syntax.Node) bool {
	return n != nil && (n.Kind == syntax.KindArrowFunction || n.Kind == syntax.KindFunctionExpression)
}
