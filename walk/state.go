package walk

import (
	"github.com/awaitly-go/analyzer/ir"
	"github.com/awaitly-go/analyzer/syntax"
)

// Result is everything one callback walk produces: the IR children of the
// workflow root, aggregate stats, non-fatal warnings, and a side-table of
// structural parentage that is not part of the closed IR sum itself
// (SPEC_FULL.md §4.3 ADDED).
type Result struct {
	Children []ir.Node
	Stats    ir.Stats
	Warnings []string
	ParentOf map[ir.NodeID]ir.NodeID
}

// state is threaded through every walk function. It is analogous to the
// teacher's workflow.State: one mutable bag passed down the recursion
// instead of returned/merged at every call site.
type state struct {
	arena      *ir.Arena
	stepParam  string
	tagsConsts map[string][]string
	warnings   []string
	stats      ir.Stats
	parentOf   map[ir.NodeID]ir.NodeID

	// knownWorkflows is the set of createWorkflow-bound names discovered
	// elsewhere in the file, used to recognize workflow-ref calls inside
	// a callback body. selfName excludes a workflow's own name from that
	// set (a recursive self-call is not a cross-workflow reference).
	knownWorkflows map[string]bool
	selfName       string
}

func newState(arena *ir.Arena, stepParam string, tagsConsts map[string][]string, knownWorkflows map[string]bool, selfName string) *state {
	return &state{
		arena:          arena,
		stepParam:      stepParam,
		tagsConsts:     tagsConsts,
		parentOf:       map[ir.NodeID]ir.NodeID{},
		knownWorkflows: knownWorkflows,
		selfName:       selfName,
	}
}

func (s *state) warn(msg string) {
	s.warnings = append(s.warnings, msg)
}

func (s *state) link(parent ir.NodeID, children []ir.Node) {
	for _, c := range children {
		s.parentOf[c.ID()] = parent
	}
}

// Walk traverses a discovered workflow invocation's callback body and
// returns its top-level IR children plus aggregate stats and warnings.
// callback must be an arrow_function or function_expression node (the
// caller is expected to have already verified this via discover).
// knownWorkflows is the set of other createWorkflow-bound names in the
// same file, used to recognize workflow-ref calls; selfName (may be
// empty) is excluded from that recognition.
func Walk(arena *ir.Arena, callback *syntax.Node, tagsConsts map[string][]string, knownWorkflows map[string]bool, selfName string) Result {
	s := newState(arena, resolveStepParamName(callback), tagsConsts, knownWorkflows, selfName)

	body := callback.Body()
	var stmts []*syntax.Node
	if body != nil && body.Kind == syntax.KindStatementBlock {
		stmts = body.Statements()
	} else if body != nil {
		// Concise-body arrow function: `(step, deps) => step(...)`.
		stmts = []*syntax.Node{body}
	}

	children := s.walkStatements(stmts)
	return Result{Children: children, Stats: s.stats, Warnings: s.warnings, ParentOf: s.parentOf}
}

// resolveStepParamName binds the identifier used for DSL method calls,
// per SPEC_FULL.md §4.3 "Step-parameter resolution": plain identifier,
// typed parameter (the syntax package already discards type annotations
// so the pattern is a bare identifier either way), or destructuring of
// `{ step }` / `{ step: alias }`, including defaulted forms.
func resolveStepParamName(fn *syntax.Node) string {
	params := fn.Parameters()
	if len(params) == 0 {
		return ""
	}
	return bindingNameForKey(params[0].Named("pattern"), "step")
}

// bindingNameForKey returns the identifier ultimately bound to a given
// destructured key, or the pattern's own name if it is a bare identifier
// (in which case key is ignored — a bare first parameter is assumed to be
// the step function itself, matching the DSL's `(step, deps, ctx)` form).
func bindingNameForKey(pattern *syntax.Node, key string) string {
	if pattern == nil {
		return ""
	}
	switch pattern.Kind {
	case syntax.KindIdentifier:
		return pattern.Text()
	case syntax.KindObjectPattern:
		for _, prop := range pattern.Properties() {
			p := prop
			if p.Kind == syntax.KindAssignmentPattern {
				p = p.Left()
			}
			if p == nil {
				continue
			}
			k := p.Key()
			if k == nil || k.Text() != key {
				continue
			}
			if v := p.Value(); v != nil && v.Kind == syntax.KindIdentifier {
				return v.Text()
			}
		}
	}
	return ""
}
