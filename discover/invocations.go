package discover

import "github.com/awaitly-go/analyzer/syntax"

// Invocation is one call site that invokes a discovered workflow with a
// callback, per SPEC_FULL.md §4.2 pass 2.
type Invocation struct {
	WorkflowName string
	CallNode     *syntax.Node
	Callback     *syntax.Node

	// ResolvedLocally is false when the callee did not match any
	// Definition found in this file, but the call was still retained as
	// a probable cross-file workflow invocation because its callback's
	// parameter list mentions `step` or `deps`.
	ResolvedLocally bool
}

// Invocations runs discovery pass 2 against a set of already-collected
// local definitions.
func Invocations(tree *syntax.Tree, defs []Definition) []Invocation {
	known := make(map[string]bool, len(defs))
	for _, d := range defs {
		if d.Name != "" {
			known[d.Name] = true
		}
	}

	var invocations []Invocation
	walkAll(tree.Root, nil, func(n *syntax.Node, _ []*syntax.Node) {
		if n.Kind != syntax.KindCallExpression {
			return
		}
		callee := n.Function()
		if callee == nil {
			return
		}
		args := n.Arguments()
		if len(args) == 0 || !isFunctionLiteral(args[0]) {
			return
		}
		name := callee.Text()
		if known[name] {
			invocations = append(invocations, Invocation{
				WorkflowName: name, CallNode: n, Callback: args[0], ResolvedLocally: true,
			})
			return
		}
		if looksLikeWorkflowCallback(args[0]) {
			invocations = append(invocations, Invocation{
				WorkflowName: name, CallNode: n, Callback: args[0], ResolvedLocally: false,
			})
		}
	})
	return invocations
}

// looksLikeWorkflowCallback is the secondary heuristic for cross-file
// workflow references: the callback's parameter list names `step` or
// `deps`, whether as a bare identifier or via destructuring.
func looksLikeWorkflowCallback(fn *syntax.Node) bool {
	for _, param := range fn.Parameters() {
		pattern := param.Named("pattern")
		if pattern == nil {
			continue
		}
		if pattern.Kind == syntax.KindIdentifier {
			if pattern.Text() == "step" || pattern.Text() == "deps" {
				return true
			}
			continue
		}
		if pattern.Kind == syntax.KindObjectPattern {
			for _, prop := range pattern.Properties() {
				if prop.Kind == syntax.KindAssignmentPattern {
					prop = prop.Left()
				}
				if prop == nil {
					continue
				}
				key := prop.Key()
				if key == nil {
					continue
				}
				if key.Text() == "step" || key.Text() == "deps" {
					return true
				}
			}
		}
	}
	return false
}
