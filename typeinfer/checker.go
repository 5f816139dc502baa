package typeinfer

import "github.com/awaitly-go/analyzer/ir"

// Checker is the one semantic capability the enricher needs from a host
// type system, narrowed to two lookups keyed by source span. A real
// implementation backs this with a TypeScript language-service handle;
// tests can supply a table-driven fake. Both methods report ok=false
// rather than erroring when a span has no type information, matching
// "type enrichment failure" in the error taxonomy: a silent, per-call
// degradation, never an abort.
type Checker interface {
	// TypeDisplayAt returns the display string of the type at loc (e.g.
	// a dependency's return type), with one level of type-alias
	// expansion already applied.
	TypeDisplayAt(loc ir.Location) (string, bool)

	// GenericArgumentsAt returns the type arguments of a generic type at
	// loc (e.g. ["User", "Error"] for AsyncResult<User, Error>).
	GenericArgumentsAt(loc ir.Location) ([]string, bool)
}
