package walk

import (
	"github.com/awaitly-go/analyzer/discover"
	"github.com/awaitly-go/analyzer/ir"
	"github.com/awaitly-go/analyzer/syntax"
)

// buildSagaStep handles saga.step/saga.tryStep(name, fn, { compensate?,
// key? }), per SPEC_FULL.md §4.3's saga-step row.
func (s *state) buildSagaStep(call *syntax.Node, isTryStep bool) ir.Node {
	args := call.Arguments()
	st := ir.NewSagaStep(s.arena, call.Loc)
	st.Callee = "saga.step"
	if isTryStep {
		st.Callee = "saga.tryStep"
	}
	st.IsTryStep = isTryStep

	if len(args) > 0 {
		if v, ok := args[0].StringValue(); ok {
			st.Name = v
		} else {
			st.Name = ir.Dynamic
		}
	}

	var optsArg *syntax.Node
	if len(args) > 2 {
		optsArg = args[2]
	}
	if optsArg != nil && optsArg.Kind == syntax.KindObject {
		for _, prop := range optsArg.Properties() {
			if prop.Kind != syntax.KindPair {
				continue
			}
			switch discover.KeyName(prop.Key()) {
			case "compensate":
				st.HasCompensation = true
				if callee := prop.Value(); callee != nil {
					st.CompensationCallee = callee.Text()
				}
			case "key":
				if v, ok := prop.Value().StringValue(); ok {
					st.Key = v
				} else {
					st.Key = ir.Dynamic
				}
			}
		}
	}

	return st
}
