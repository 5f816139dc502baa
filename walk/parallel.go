package walk

import (
	"strings"

	"github.com/awaitly-go/analyzer/ir"
	"github.com/awaitly-go/analyzer/syntax"
)

// buildParallelFromArray handles allAsync(array) / allSettledAsync(array),
// per SPEC_FULL.md §4.3: array elements become branches, and a bare
// call-expression element (not wrapped in a thunk) yields an implicit
// step node.
func (s *state) buildParallelFromArray(call *syntax.Node, mode ir.ParallelMode, calleeText string) ir.Node {
	args := call.Arguments()
	p := ir.NewParallel(s.arena, call.Loc)
	p.Mode = mode
	p.Callee = calleeText
	if len(args) == 0 || args[0].Kind != syntax.KindArray {
		return p
	}
	for _, el := range args[0].Elements() {
		if branch := s.buildBranchNode(el); branch != nil {
			p.Children = append(p.Children, branch)
		}
	}
	s.link(p.ID(), p.Children)
	s.stats.ParallelCount++
	return p
}

// buildRaceFromArray handles anyAsync(array).
func (s *state) buildRaceFromArray(call *syntax.Node, calleeText string) ir.Node {
	args := call.Arguments()
	r := ir.NewRace(s.arena, call.Loc)
	r.Callee = calleeText
	if len(args) == 0 || args[0].Kind != syntax.KindArray {
		return r
	}
	for _, el := range args[0].Elements() {
		if branch := s.buildBranchNode(el); branch != nil {
			r.Children = append(r.Children, branch)
		}
	}
	s.link(r.ID(), r.Children)
	s.stats.RaceCount++
	return r
}

// buildBranchNode walks one array element of allAsync/allSettledAsync/
// anyAsync: a thunk's body is walked and collapsed via wrapSequence, and
// a bare call expression becomes an implicit step.
func (s *state) buildBranchNode(el *syntax.Node) ir.Node {
	el = unwrap(el)
	if el == nil {
		return nil
	}
	if isFunctionLike(el) {
		return s.walkBodyNode(el.Body())
	}
	if el.Kind == syntax.KindCallExpression {
		return s.buildImplicitStep(el)
	}
	s.stats.UnknownCount++
	return ir.NewUnknown(s.arena, el.Loc, "unrecognized parallel/race branch shape")
}

// buildImplicitStep synthesizes a step node for a bare call expression
// used directly as a parallel/race branch, whose Name is the method
// segment of its callee text (e.g. `deps.fetchUser()` -> "fetchUser").
func (s *state) buildImplicitStep(call *syntax.Node) ir.Node {
	st := ir.NewStep(s.arena, call.Loc)
	st.StepID = ir.Dynamic
	if callee := call.Function(); callee != nil {
		st.Callee = callee.Text()
		st.Name = lastCalleeSegment(st.Callee)
	}
	if depName, ok := autoDetectDepSource(call); ok {
		st.DepSource = depName
	}
	st.Reads = s.collectReads(call, nil)
	s.stats.TotalSteps++
	return st
}

func lastCalleeSegment(callee string) string {
	if idx := strings.LastIndex(callee, "."); idx != -1 {
		return callee[idx+1:]
	}
	return callee
}

// buildStepParallel handles step.parallel's three call shapes: the
// object-literal form (branches are the object's own properties), the
// (name, object) form, and the (name, () => allAsync(...)) composition
// form, which must NOT double-count towards stats.ParallelCount per
// SPEC_FULL.md §4.3 "Stats".
func (s *state) buildStepParallel(call *syntax.Node) ir.Node {
	args := call.Arguments()
	p := ir.NewParallel(s.arena, call.Loc)
	p.Mode = ir.ParallelAll
	p.Callee = s.stepParam + ".parallel"

	var nameArg, bodyArg *syntax.Node
	switch len(args) {
	case 0:
		return p
	case 1:
		bodyArg = args[0]
	default:
		nameArg = args[0]
		bodyArg = args[1]
	}
	if nameArg != nil {
		if v, ok := nameArg.StringValue(); ok {
			p.Name = v
		} else {
			p.Name = ir.Dynamic
		}
	}

	bodyArg = unwrap(bodyArg)
	if bodyArg != nil && isFunctionLike(bodyArg) {
		// (name, () => allAsync(...)) composition: delegate to the inner
		// call directly and adopt its children without incrementing
		// ParallelCount a second time.
		inner := unwrap(soleBodyExpression(bodyArg))
		if inner != nil && inner.Kind == syntax.KindCallExpression {
			if node, _ := s.recognizeCall(inner); node != nil {
				if innerParallel, ok := node.(*ir.Parallel); ok {
					// recognizeCall already counted the inner allAsync/
					// allSettledAsync call; undo that so this composition
					// contributes exactly one ParallelCount, not two.
					s.stats.ParallelCount--
					p.Children = innerParallel.Children
					s.link(p.ID(), p.Children)
					s.stats.ParallelCount++
					return p
				}
			}
		}
		p.Children = s.flattenBody(bodyArg.Body())
		s.link(p.ID(), p.Children)
		s.stats.ParallelCount++
		return p
	}

	if bodyArg != nil && bodyArg.Kind == syntax.KindObject {
		p.NamedBranches = true
		for _, prop := range bodyArg.Properties() {
			if prop.Kind != syntax.KindPair {
				continue
			}
			branch := s.buildParallelBranchValue(prop.Value())
			if branch == nil {
				continue
			}
			setBranchName(branch, textOrKeyName(prop.Key()))
			p.Children = append(p.Children, branch)
		}
	}
	s.link(p.ID(), p.Children)
	s.stats.ParallelCount++
	return p
}

// buildStepRace handles step.race's object-literal form, one branch per
// property.
func (s *state) buildStepRace(call *syntax.Node) ir.Node {
	args := call.Arguments()
	r := ir.NewRace(s.arena, call.Loc)
	r.Callee = s.stepParam + ".race"
	if len(args) == 0 {
		return r
	}
	obj := args[0]
	var nameArg *syntax.Node
	if len(args) > 1 {
		nameArg, obj = args[0], args[1]
	}
	if nameArg != nil {
		if v, ok := nameArg.StringValue(); ok {
			r.Name = v
		} else {
			r.Name = ir.Dynamic
		}
	}
	if obj == nil || obj.Kind != syntax.KindObject {
		return r
	}
	r.NamedBranches = true
	for _, prop := range obj.Properties() {
		if prop.Kind != syntax.KindPair {
			continue
		}
		branch := s.buildParallelBranchValue(prop.Value())
		if branch == nil {
			continue
		}
		setBranchName(branch, textOrKeyName(prop.Key()))
		r.Children = append(r.Children, branch)
	}
	s.link(r.ID(), r.Children)
	s.stats.RaceCount++
	return r
}

// buildParallelBranchValue handles one property value of a strict-mode
// parallel/race object: either the canonical `{ fn, errors }` shape or
// shorthand `() => ...`. A shorthand thunk whose body has no DSL construct
// becomes an implicit step for the call it returns. The strict-diagnostics
// rule parallel-missing-errors fires later, in the diagnose package,
// against whichever shape this produced.
func (s *state) buildParallelBranchValue(val *syntax.Node) ir.Node {
	val = unwrap(val)
	if val == nil {
		return nil
	}
	if isFunctionLike(val) {
		if n := s.walkBodyNode(val.Body()); n != nil {
			return n
		}
		if call := unwrap(soleBodyExpression(val)); call != nil && call.Kind == syntax.KindCallExpression {
			return s.buildImplicitStep(call)
		}
		return nil
	}
	if val.Kind == syntax.KindObject {
		var fn, errsNode *syntax.Node
		for _, prop := range val.Properties() {
			if prop.Kind != syntax.KindPair {
				continue
			}
			switch textOrKeyName(prop.Key()) {
			case "fn":
				fn = prop.Value()
			case "errors":
				errsNode = prop.Value()
			}
		}
		node := s.buildParallelBranchValue(fn)
		if st, ok := node.(*ir.Step); ok && errsNode != nil {
			errs := literalStringList(errsNode)
			if errs == nil {
				errs = []string{}
			}
			st.Errors = errs
		}
		return node
	}
	if val.Kind == syntax.KindCallExpression {
		return s.buildImplicitStep(val)
	}
	return nil
}

func setBranchName(n ir.Node, name string) {
	switch v := n.(type) {
	case *ir.Step:
		v.Name = name
	case *ir.SagaStep:
		v.Name = name
	}
}

func textOrKeyName(key *syntax.Node) string {
	if key == nil {
		return ""
	}
	if v, ok := key.StringValue(); ok {
		return v
	}
	return key.Text()
}

// soleBodyExpression returns the single expression a concise arrow body
// evaluates to, or the lone return statement's argument in a block body —
// the two shapes `() => allAsync(...)` can take.
func soleBodyExpression(fn *syntax.Node) *syntax.Node {
	body := fn.Body()
	if body == nil {
		return nil
	}
	if body.Kind != syntax.KindStatementBlock {
		return body
	}
	stmts := body.Statements()
	if len(stmts) != 1 {
		return nil
	}
	if stmts[0].Kind == syntax.KindReturnStatement {
		return stmts[0].Named("argument")
	}
	if stmts[0].Kind == syntax.KindExpressionStatement {
		return stmts[0].Named("expression")
	}
	return nil
}

// flattenBody walks a function body's statements into a flat node list,
// without collapsing to a single Node (used when the caller wants
// Children directly rather than a wrapped Sequence).
func (s *state) flattenBody(body *syntax.Node) []ir.Node {
	if body == nil {
		return nil
	}
	if body.Kind == syntax.KindStatementBlock {
		return s.walkStatements(body.Statements())
	}
	return s.walkStatements([]*syntax.Node{body})
}
