package walk

import (
	"github.com/awaitly-go/analyzer/ir"
	"github.com/awaitly-go/analyzer/syntax"
)

// calleeOnStepParam reports whether call's callee is `<stepParam>.<method>`
// and returns the method segment.
func (s *state) calleeOnStepParam(call *syntax.Node) (obj, method string, ok bool) {
	fn := call.Function()
	if fn == nil || fn.Kind != syntax.KindMemberExpression {
		return "", "", false
	}
	object, prop := fn.Object(), fn.Property()
	if object == nil || prop == nil || object.Text() != s.stepParam {
		return "", "", false
	}
	return object.Text(), prop.Text(), true
}

// recognizeCall is the single dispatch point over the DSL matrix in
// SPEC_FULL.md §4.3. It returns (node, recognized): recognized is true
// whenever the call was DSL-shaped even if no node could be built, so
// the caller can emit an explicit `unknown` node instead of silently
// ignoring a shape it almost understood.
func (s *state) recognizeCall(call *syntax.Node) (ir.Node, bool) {
	fn := call.Function()
	if fn == nil {
		return nil, false
	}

	switch fn.Kind {
	case syntax.KindIdentifier:
		return s.recognizeFreeCall(call, fn.Text())
	case syntax.KindMemberExpression:
		return s.recognizeMemberCall(call, fn)
	default:
		return nil, false
	}
}

// recognizeFreeCall dispatches a bare identifier callee: the bound step
// parameter itself, the allAsync/allSettledAsync/anyAsync/when/unless/
// whenOr/unlessOr free helpers, or a reference to another known workflow.
func (s *state) recognizeFreeCall(call *syntax.Node, name string) (ir.Node, bool) {
	switch {
	case s.stepParam != "" && name == s.stepParam:
		return s.buildStep(call), true
	case name == "allAsync":
		return s.buildParallelFromArray(call, ir.ParallelAll, name), true
	case name == "allSettledAsync":
		return s.buildParallelFromArray(call, ir.ParallelAllSettled, name), true
	case name == "anyAsync":
		return s.buildRaceFromArray(call, name), true
	case name == "when":
		return s.buildConditionalHelper(call, ir.HelperWhen), true
	case name == "unless":
		return s.buildConditionalHelper(call, ir.HelperUnless), true
	case name == "whenOr":
		return s.buildConditionalHelper(call, ir.HelperWhenOr), true
	case name == "unlessOr":
		return s.buildConditionalHelper(call, ir.HelperUnlessOr), true
	}
	if s.knownWorkflows != nil && name != s.selfName && s.knownWorkflows[name] {
		ref := ir.NewWorkflowRef(s.arena, call.Loc)
		ref.WorkflowName = name
		ref.Resolved = true
		s.stats.WorkflowRefCount++
		return ref, true
	}
	return nil, false
}

// recognizeMemberCall dispatches a `<object>.<method>(...)` callee: the
// bound step parameter's method-chain variants, or saga.step/tryStep.
func (s *state) recognizeMemberCall(call *syntax.Node, fn *syntax.Node) (ir.Node, bool) {
	object, prop := fn.Object(), fn.Property()
	if object == nil || prop == nil {
		return nil, false
	}
	objText, method := object.Text(), prop.Text()

	if s.stepParam != "" && objText == s.stepParam {
		switch method {
		case "retry", "withTimeout", "try":
			return s.buildStepVariant(call, s.stepParam+"."+method), true
		case "parallel":
			return s.buildStepParallel(call), true
		case "race":
			return s.buildStepRace(call), true
		case "forEach":
			return s.buildStepForEach(call), true
		case "branch":
			return s.buildStepBranch(call), true
		case "if", "label":
			// Normally intercepted by walkIfStatement when used as an
			// if-statement's condition; a bare `step.if(...)`/`step.label(...)`
			// expression statement has no surrounding branches to draw
			// consequent/alternate from.
			d := ir.NewDecision(s.arena, call.Loc)
			d.DecisionID = ir.Dynamic
			if args := call.Arguments(); len(args) > 0 {
				if v, ok := args[0].StringValue(); ok {
					d.DecisionID = v
				}
			}
			return d, true
		case "dep":
			// A bare step.dep(...) statement only has meaning nested inside
			// another step's callback; standing alone it is a recognized
			// no-op.
			return nil, true
		}
		return nil, true
	}

	if objText == "saga" {
		switch method {
		case "step":
			return s.buildSagaStep(call, false), true
		case "tryStep":
			return s.buildSagaStep(call, true), true
		}
	}

	return nil, false
}
