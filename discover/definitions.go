package discover

import (
	"github.com/awaitly-go/analyzer/ir"
	"github.com/awaitly-go/analyzer/syntax"
)

// reservedDepKeys are dependency-object keys that belong to createWorkflow's
// options rather than to the Dep list, per SPEC_FULL.md §4.2.
var reservedDepKeys = map[string]bool{
	"strict": true, "errors": true, "id": true, "description": true, "markdown": true,
}

// Definition is one createWorkflow(...) binding found in a file.
type Definition struct {
	// Name is the identifier the call was bound to via its enclosing
	// variable_declarator, e.g. `orderWorkflow` in
	// `const orderWorkflow = createWorkflow(...)`.
	Name string

	CallNode *syntax.Node

	Dependencies   []ir.Dep
	Strict         bool
	DeclaredErrors []string
	HasErrorsField bool
	Description    string
}

// Definitions runs discovery pass 1: every createWorkflow(...) call,
// bound to its declaring identifier, with its Dep list and workflow-level
// options extracted.
func Definitions(tree *syntax.Tree) []Definition {
	tagsConsts := ResolveTagsConstants(tree)

	var defs []Definition
	walkAll(tree.Root, nil, func(n *syntax.Node, ancestors []*syntax.Node) {
		if !isCallTo(n, "createWorkflow") {
			return
		}
		decl := nearestAncestor(ancestors, syntax.KindVariableDeclarator)
		name := ""
		if decl != nil {
			if nameNode := decl.Named("name"); nameNode != nil {
				name = nameNode.Text()
			}
		}

		var depsObj, optsObj *syntax.Node
		for _, a := range n.Arguments() {
			if a.Kind != syntax.KindObject {
				continue
			}
			if depsObj == nil {
				depsObj = a
			} else if optsObj == nil {
				optsObj = a
			}
		}

		d := Definition{Name: name, CallNode: n}
		if depsObj != nil {
			d.Dependencies = buildDeps(depsObj)
		}
		applyReservedOptions(optsObj, tagsConsts, &d)
		if optsObj == nil {
			applyReservedOptions(depsObj, tagsConsts, &d)
		}
		defs = append(defs, d)
	})
	return defs
}

func buildDeps(obj *syntax.Node) []ir.Dep {
	var deps []ir.Dep
	for _, prop := range obj.Properties() {
		if prop.Kind != syntax.KindPair {
			continue
		}
		name := KeyName(prop.Key())
		if name == "" || reservedDepKeys[name] {
			continue
		}
		deps = append(deps, ir.Dep{Name: name, Location: prop.Loc})
	}
	return deps
}

func applyReservedOptions(obj *syntax.Node, tagsConsts map[string][]string, d *Definition) {
	if obj == nil {
		return
	}
	for _, prop := range obj.Properties() {
		if prop.Kind != syntax.KindPair {
			continue
		}
		switch KeyName(prop.Key()) {
		case "strict":
			if b, ok := prop.Value().BoolValue(); ok {
				d.Strict = b
			}
		case "description":
			if s, ok := prop.Value().StringValue(); ok {
				d.Description = s
			}
		case "errors":
			d.HasErrorsField = true
			d.DeclaredErrors = ResolveStringListOrTagsRef(prop.Value(), tagsConsts)
		}
	}
}

// KeyName returns the textual key of a pair/shorthand property, whether
// the key is an identifier or a string literal.
func KeyName(key *syntax.Node) string {
	if key == nil {
		return ""
	}
	if s, ok := key.StringValue(); ok {
		return s
	}
	return key.Text()
}

// ResolveStringListOrTagsRef handles the three literal shapes a
// declaredErrors-like/errors-like field can take: an array literal of
// strings, an inline tags('A','B') call, or an identifier bound to one
// via a same-file const declaration. Shared with walk's option
// extraction.
func ResolveStringListOrTagsRef(n *syntax.Node, tagsConsts map[string][]string) []string {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case syntax.KindArray:
		var out []string
		for _, el := range n.Elements() {
			if s, ok := el.StringValue(); ok {
				out = append(out, s)
			}
		}
		return out
	case syntax.KindCallExpression:
		if callee := n.Function(); callee != nil && callee.Text() == "tags" {
			return StringArgsOf(n)
		}
	case syntax.KindIdentifier:
		if vals, ok := tagsConsts[n.Text()]; ok {
			return vals
		}
	}
	return nil
}

// StringArgsOf returns the literal string arguments of a call, skipping
// any non-literal ones.
func StringArgsOf(call *syntax.Node) []string {
	var out []string
	for _, a := range call.Arguments() {
		if s, ok := a.StringValue(); ok {
			out = append(out, s)
		}
	}
	return out
}

// ResolveTagsConstants finds every `const X = tags('A', 'B', ...)` at any
// scope in the file and returns name -> literal tag list, so errors
// options referencing X by identifier resolve to their contents.
func ResolveTagsConstants(tree *syntax.Tree) map[string][]string {
	consts := map[string][]string{}
	walkAll(tree.Root, nil, func(n *syntax.Node, _ []*syntax.Node) {
		if n.Kind != syntax.KindVariableDeclarator {
			return
		}
		nameNode := n.Named("name")
		val := n.Named("value")
		if nameNode == nil || val == nil || val.Kind != syntax.KindCallExpression {
			return
		}
		callee := val.Function()
		if callee == nil || callee.Text() != "tags" {
			return
		}
		consts[nameNode.Text()] = StringArgsOf(val)
	})
	return consts
}
