package walk

import (
	"github.com/awaitly-go/analyzer/ir"
	"github.com/awaitly-go/analyzer/syntax"
)

// walkSyntax is a generic, unordered-purpose recursive visitor over the
// syntax tree, used only for the bounded, single-function-body scans
// this file needs (ctx.ref('K') occurrences, deps.X(...)
// auto-detection). It is deliberately separate from the DSL-aware
// statement/expression dispatch in control.go/dispatch.go, which tracks
// far more state than a plain visitor needs.
func walkSyntax(n *syntax.Node, visit func(*syntax.Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, c := range n.Children() {
		walkSyntax(c, visit)
	}
}

func isFunctionLike(n *syntax.Node) bool {
	return n != nil && (n.Kind == syntax.KindArrowFunction || n.Kind == syntax.KindFunctionExpression)
}

// unwrapDepWrapper detects the `step.dep('name', fn)` wrapper per
// SPEC_FULL.md §4.3 "Dep source tracking" and returns the inner callback
// plus the declared dependency name.
func (s *state) unwrapDepWrapper(fnArg *syntax.Node) (inner *syntax.Node, depName string, wrapped bool) {
	if fnArg == nil || fnArg.Kind != syntax.KindCallExpression {
		return fnArg, "", false
	}
	callee := fnArg.Function()
	if callee == nil || callee.Kind != syntax.KindMemberExpression {
		return fnArg, "", false
	}
	obj, prop := callee.Object(), callee.Property()
	if obj == nil || prop == nil || obj.Text() != s.stepParam || prop.Text() != "dep" {
		return fnArg, "", false
	}
	args := fnArg.Arguments()
	if len(args) < 2 {
		return fnArg, "", false
	}
	name, _ := args[0].StringValue()
	return args[1], name, true
}

// autoDetectDepSource is the lowest-priority leg of the dep-source chain:
// the first call in the callback body whose callee is `deps.X(...)` or
// `ctx.deps.X(...)`.
func autoDetectDepSource(fn *syntax.Node) (string, bool) {
	found := ""
	walkSyntax(fn, func(n *syntax.Node) {
		if found != "" || n.Kind != syntax.KindCallExpression {
			return
		}
		callee := n.Function()
		if callee == nil || callee.Kind != syntax.KindMemberExpression {
			return
		}
		obj, prop := callee.Object(), callee.Property()
		if obj == nil || prop == nil {
			return
		}
		switch obj.Text() {
		case "deps", "ctx.deps":
			found = prop.Text()
		}
	})
	return found, found != ""
}

// resolveDepSource applies the full priority chain: explicit {dep:}
// option, then the step.dep wrapper, then auto-detection.
func (s *state) resolveDepSource(st *ir.Step, fnArg *syntax.Node, opts options) {
	if opts.hasDep {
		st.DepSource = opts.dep
		return
	}
	if _, name, wrapped := s.unwrapDepWrapper(fnArg); wrapped {
		st.DepSource = name
		return
	}
	if fnArg != nil {
		if name, ok := autoDetectDepSource(fnArg); ok {
			st.DepSource = name
		}
	}
}

// findCtxRefs returns every literal key passed to ctx.ref('K') found
// anywhere in a callback's body.
func findCtxRefs(body *syntax.Node) []string {
	var out []string
	walkSyntax(body, func(n *syntax.Node) {
		if n.Kind != syntax.KindCallExpression {
			return
		}
		callee := n.Function()
		if callee == nil || callee.Kind != syntax.KindMemberExpression {
			return
		}
		obj, prop := callee.Object(), callee.Property()
		if obj == nil || prop == nil || obj.Text() != "ctx" || prop.Text() != "ref" {
			return
		}
		args := n.Arguments()
		if len(args) == 0 {
			return
		}
		if v, ok := args[0].StringValue(); ok {
			out = append(out, v)
		}
	})
	return out
}

// scanRootFor resolves the node collectReads should search: a function
// literal's body, or (for the `(id, result, opts)` step overload and
// implicit steps synthesized from a bare call expression) the expression
// itself.
func scanRootFor(n *syntax.Node) *syntax.Node {
	if n == nil {
		return nil
	}
	if isFunctionLike(n) {
		return n.Body()
	}
	return n
}

// collectReads is the union of a step's explicit reads option and every
// literal ctx.ref('K') found under scanRoot, de-duplicated in first-seen
// order.
func (s *state) collectReads(scanRoot *syntax.Node, explicit []string) []string {
	seen := map[string]bool{}
	var out []string
	add := func(k string) {
		if k == "" || seen[k] {
			return
		}
		seen[k] = true
		out = append(out, k)
	}
	for _, k := range explicit {
		add(k)
	}
	for _, k := range findCtxRefs(scanRoot) {
		add(k)
	}
	return out
}
