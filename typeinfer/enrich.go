package typeinfer

import (
	"strings"

	"github.com/awaitly-go/analyzer/ir"
)

// classifyKind probes a type's display text per SPEC_FULL.md §4.4 item 1.
// Order matters: AsyncResult and Promise<Result<...>> both contain the
// substring "Result", so the more specific prefixes are checked first.
func classifyKind(display string) string {
	switch {
	case strings.HasPrefix(display, "AsyncResult"):
		return "asyncResult"
	case strings.HasPrefix(display, "Promise<Result"):
		return "promiseResult"
	case strings.HasPrefix(display, "Result<"):
		return "result"
	default:
		return "plain"
	}
}

// Enrich decorates wf's dependencies and steps with Result-generic
// extraction, per SPEC_FULL.md §4.4. A nil checker is a no-op: the
// analyzer must be fully usable without one.
func Enrich(checker Checker, wf *ir.Workflow) {
	if checker == nil || wf == nil {
		return
	}

	for i := range wf.Dependencies {
		dep := &wf.Dependencies[i]
		display, ok := checker.TypeDisplayAt(dep.Location)
		if !ok {
			continue
		}
		dep.TypeSignature = display

		kind := classifyKind(display)
		sig := &ir.Signature{ReturnType: ir.ReturnSignature{Display: display, Kind: kind}}
		if kind != "plain" {
			if args, ok := checker.GenericArgumentsAt(dep.Location); ok && len(args) >= 2 {
				sig.ReturnType.ResultLike = &ir.ResultLike{
					OkType:    ir.TypeInfo{Display: args[0], Kind: "plain"},
					ErrorType: ir.TypeInfo{Display: args[1], Kind: "plain"},
				}
			}
		}
		dep.Signature = sig
	}

	byName := make(map[string]*ir.Dep, len(wf.Dependencies))
	for i := range wf.Dependencies {
		byName[wf.Dependencies[i].Name] = &wf.Dependencies[i]
	}

	ir.Visit(wf.Children, func(n ir.Node) {
		st, ok := n.(*ir.Step)
		if !ok || st.DepSource == "" {
			return
		}
		dep, ok := byName[st.DepSource]
		if !ok || dep.Signature == nil || dep.Signature.ReturnType.ResultLike == nil {
			return
		}
		rl := dep.Signature.ReturnType.ResultLike
		ok1, err1 := rl.OkType, rl.ErrorType
		st.OutputTypeInfo = &ok1
		st.ErrorTypeInfo = &err1
	})
}
