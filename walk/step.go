package walk

import (
	"github.com/awaitly-go/analyzer/discover"
	"github.com/awaitly-go/analyzer/ir"
	"github.com/awaitly-go/analyzer/syntax"
)

// literalStepID implements SPEC_FULL.md §4.3's stepId rule: the literal
// first argument if a string literal or no-substitution template, else
// the Dynamic sentinel.
func literalStepID(n *syntax.Node) string {
	if n == nil {
		return ir.Dynamic
	}
	if v, ok := n.StringValue(); ok {
		return v
	}
	return ir.Dynamic
}

// splitStepArgs disambiguates the three `step` overloads named in
// SPEC_FULL.md §4.3: (id, fn, opts?), (fn, opts?), and (id, result, opts?).
func splitStepArgs(args []*syntax.Node) (idArg, fnArg, optsArg *syntax.Node, noID bool) {
	if len(args) == 0 {
		return nil, nil, nil, false
	}
	if isFunctionLike(args[0]) {
		fnArg = args[0]
		if len(args) > 1 {
			optsArg = args[1]
		}
		return nil, fnArg, optsArg, true
	}
	idArg = args[0]
	if len(args) > 1 {
		fnArg = args[1]
	}
	if len(args) > 2 {
		optsArg = args[2]
	}
	return idArg, fnArg, optsArg, false
}

func (s *state) applyStepOptions(st *ir.Step, opts options) {
	if opts.hasKey {
		st.Key = opts.key
	}
	if opts.hasName {
		st.Name = opts.name
	}
	if opts.hasErrors {
		if opts.errors == nil {
			st.Errors = []string{}
		} else {
			st.Errors = opts.errors
		}
	}
	if opts.hasOut {
		st.Out = opts.out
	}
	if opts.hasRetry {
		r := opts.retry
		st.Retry = &r
	}
	if opts.hasTimeout {
		t := opts.timeout
		st.Timeout = &t
	}
}

// buildStep handles the bare `step(...)` callee per the three-overload
// table.
func (s *state) buildStep(call *syntax.Node) ir.Node {
	idArg, fnArg, optsArg, noID := splitStepArgs(call.Arguments())
	inner, depName, wrapped := s.unwrapDepWrapper(fnArg)
	scanFn := fnArg
	if wrapped {
		scanFn = inner
	}

	st := ir.NewStep(s.arena, call.Loc)
	st.Callee = s.stepParam
	st.NoIDOverload = noID
	st.StepID = literalStepID(idArg)

	opts := s.parseOptions(optsArg)
	s.applyStepOptions(st, opts)
	st.Reads = s.collectReads(scanRootFor(scanFn), opts.reads)

	if wrapped {
		st.DepSource = depName
	} else {
		s.resolveDepSource(st, fnArg, opts)
	}

	s.stats.TotalSteps++
	return st
}

// buildStepVariant handles step.retry/step.withTimeout/step.try, which
// all share the (id, fn, opts) shape but tag the resulting Step
// differently.
func (s *state) buildStepVariant(call *syntax.Node, calleeText string) ir.Node {
	args := call.Arguments()
	var idArg, fnArg, optsArg *syntax.Node
	if len(args) > 0 {
		idArg = args[0]
	}
	if len(args) > 1 {
		fnArg = args[1]
	}
	if len(args) > 2 {
		optsArg = args[2]
	}

	st := ir.NewStep(s.arena, call.Loc)
	st.Callee = calleeText
	st.StepID = literalStepID(idArg)

	opts := s.parseOptions(optsArg)
	s.applyStepOptions(st, opts)
	st.Reads = s.collectReads(scanRootFor(fnArg), opts.reads)
	s.resolveDepSource(st, fnArg, opts)

	switch calleeText {
	case s.stepParam + ".retry":
		// step.retry's third argument IS the retry config, not a
		// wrapper carrying a nested `retry:` key.
		r := ir.RetryOptions(literalOptionMap(optsArg))
		st.Retry = &r
	case s.stepParam + ".withTimeout":
		t := ir.TimeoutOptions(literalOptionMap(optsArg))
		st.Timeout = &t
	case s.stepParam + ".try":
		st.IsTryStep = true
		// step.try's options carry `error`/`onError` in place of a plain
		// errors list; accept either spelling as the errors source if the
		// errors option itself was absent.
		if !opts.hasErrors {
			if errs := tryStepErrorOption(optsArg, s.tagsConsts); errs != nil {
				st.Errors = errs
			}
		}
	}

	s.stats.TotalSteps++
	return st
}

func tryStepErrorOption(optsArg *syntax.Node, tagsConsts map[string][]string) []string {
	if optsArg == nil || optsArg.Kind != syntax.KindObject {
		return nil
	}
	for _, prop := range optsArg.Properties() {
		if prop.Kind != syntax.KindPair {
			continue
		}
		k := discover.KeyName(prop.Key())
		if k == "error" || k == "onError" {
			if v, ok := prop.Value().StringValue(); ok {
				return []string{v}
			}
		}
	}
	return nil
}
