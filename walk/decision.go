package walk

import (
	"github.com/awaitly-go/analyzer/discover"
	"github.com/awaitly-go/analyzer/ir"
	"github.com/awaitly-go/analyzer/syntax"
)

// buildDecisionFromIf handles step.if/step.label used as an if
// statement's condition expression: `if (step.if('d', 'label', cond)) {
// ... } else { ... }` produces one decision node whose bodies come from
// the surrounding if/else, per SPEC_FULL.md §4.3.
func (s *state) buildDecisionFromIf(call *syntax.Node, ifStmt *syntax.Node) ir.Node {
	args := call.Arguments()
	d := ir.NewDecision(s.arena, ifStmt.Loc)
	d.DecisionID = ir.Dynamic
	if len(args) > 0 {
		if v, ok := args[0].StringValue(); ok {
			d.DecisionID = v
		}
	}
	if len(args) > 1 {
		if v, ok := args[1].StringValue(); ok {
			d.ConditionLabel = v
		}
	}
	if len(args) > 2 {
		d.Condition = args[2].Text()
	}
	d.Consequent = s.childListFrom(ifStmt.Consequence())
	if alt := ifStmt.Alternative(); alt != nil {
		d.Alternate = s.childListFrom(alt.Body())
	}
	s.link(d.ID(), d.Consequent)
	s.link(d.ID(), d.Alternate)
	return d
}

// buildStepBranch handles step.branch('id', { conditionLabel, condition,
// then, else, thenErrors?, elseErrors?, out? }), synthesizing branch
// steps from `then`/`else` and propagating `out`/errors onto them.
func (s *state) buildStepBranch(call *syntax.Node) ir.Node {
	args := call.Arguments()
	d := ir.NewDecision(s.arena, call.Loc)
	d.DecisionID = ir.Dynamic
	if len(args) > 0 {
		if v, ok := args[0].StringValue(); ok {
			d.DecisionID = v
		}
	}
	if len(args) < 2 || args[1].Kind != syntax.KindObject {
		return d
	}

	obj := args[1]
	var condNode, thenNode, elseNode, thenErrorsNode, elseErrorsNode, outNode *syntax.Node
	for _, prop := range obj.Properties() {
		if prop.Kind != syntax.KindPair {
			continue
		}
		switch discover.KeyName(prop.Key()) {
		case "conditionLabel":
			if v, ok := prop.Value().StringValue(); ok {
				d.ConditionLabel = v
			}
		case "condition":
			condNode = prop.Value()
		case "then":
			thenNode = prop.Value()
		case "else":
			elseNode = prop.Value()
		case "thenErrors":
			thenErrorsNode = prop.Value()
		case "elseErrors":
			elseErrorsNode = prop.Value()
		case "out":
			outNode = prop.Value()
		}
	}
	if condNode != nil {
		d.Condition = condNode.Text()
	}

	out := ""
	if outNode != nil {
		if v, ok := outNode.StringValue(); ok {
			out = v
		} else {
			out = ir.Dynamic
		}
	}

	thenErrs, hasThenErrs := literalStringListOverride(thenErrorsNode)
	elseErrs, hasElseErrs := literalStringListOverride(elseErrorsNode)

	d.Consequent = s.synthesizeBranchSteps(thenNode, out, thenErrs, hasThenErrs)
	d.Alternate = s.synthesizeBranchSteps(elseNode, out, elseErrs, hasElseErrs)
	s.link(d.ID(), d.Consequent)
	s.link(d.ID(), d.Alternate)
	return d
}

// literalStringListOverride reports whether a literal array was present
// (so an explicit `[]` can be told apart from "field absent").
func literalStringListOverride(n *syntax.Node) (val []string, has bool) {
	if n == nil {
		return nil, false
	}
	if n.Kind != syntax.KindArray {
		return nil, false
	}
	list := literalStringList(n)
	if list == nil {
		list = []string{}
	}
	return list, true
}

// synthesizeBranchSteps walks a then/else callback (or bare call) into IR
// nodes and propagates the branch's out/errors onto any Step nodes found.
// A callback with no DSL construct of its own yields one implicit step for
// the call it returns.
func (s *state) synthesizeBranchSteps(fnNode *syntax.Node, out string, errs []string, hasErrs bool) []ir.Node {
	fnNode = unwrap(fnNode)
	if fnNode == nil {
		return nil
	}
	var nodes []ir.Node
	if isFunctionLike(fnNode) {
		nodes = s.flattenBody(fnNode.Body())
		if len(nodes) == 0 {
			if call := unwrap(soleBodyExpression(fnNode)); call != nil && call.Kind == syntax.KindCallExpression {
				nodes = []ir.Node{s.buildImplicitStep(call)}
			}
		}
	} else if fnNode.Kind == syntax.KindCallExpression {
		nodes = []ir.Node{s.buildImplicitStep(fnNode)}
	}
	for _, n := range nodes {
		if st, ok := n.(*ir.Step); ok {
			if out != "" {
				st.Out = out
			}
			if hasErrs {
				st.Errors = errs
			}
		}
	}
	return nodes
}

// buildConditionalHelper handles when/unless/whenOr/unlessOr(condition,
// callback, default?).
func (s *state) buildConditionalHelper(call *syntax.Node, helper ir.Helper) ir.Node {
	args := call.Arguments()
	c := ir.NewConditional(s.arena, call.Loc)
	c.Helper = helper
	if len(args) > 0 {
		c.Condition = args[0].Text()
	}
	if len(args) > 1 {
		cb := unwrap(args[1])
		if isFunctionLike(cb) {
			c.Consequent = s.flattenBody(cb.Body())
		} else if cb != nil && cb.Kind == syntax.KindCallExpression {
			c.Consequent = []ir.Node{s.buildImplicitStep(cb)}
		}
	}
	if len(args) > 2 {
		v := literalOptionValue(args[2])
		c.DefaultValue = &v
	}
	s.link(c.ID(), c.Consequent)
	s.stats.ConditionalCount++
	return c
}
